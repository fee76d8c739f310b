// Package whitelistconfig loads a frame.Whitelist from YAML.
//
// Example document:
//
//	supported_kinds: [logical, integer, double, character]
//	rejected_classes: [POSIXlt]
//	matrix_always_supported: true
//
// Omitted fields keep the values of frame.DefaultWhitelist.
package whitelistconfig

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/frameshare/frameshare-go/frame"
)

// ErrInvalidConfig wraps every parse and validation failure of this package.
var ErrInvalidConfig = errors.New("invalid whitelist config")

// Config is the YAML shape of a whitelist.
type Config struct {
	SupportedKinds        []string `yaml:"supported_kinds"`
	RejectedClasses       []string `yaml:"rejected_classes"`
	MatrixAlwaysSupported *bool    `yaml:"matrix_always_supported"`
}

// Parse decodes data and builds the whitelist it describes. Unknown fields are rejected.
func Parse(data []byte) (frame.Whitelist, error) {
	return Load(bytes.NewReader(data))
}

// Load decodes a single YAML document from r and builds the whitelist it describes.
// An empty document yields frame.DefaultWhitelist.
func Load(r io.Reader) (frame.Whitelist, error) {
	var cfg Config

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return frame.Whitelist{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return cfg.Whitelist()
}

// Whitelist builds a frame.Whitelist from c, starting from frame.DefaultWhitelist.
func (c Config) Whitelist() (frame.Whitelist, error) {
	var options []frame.WhitelistOption

	if c.SupportedKinds != nil {
		kinds := make([]frame.Kind, 0, len(c.SupportedKinds))
		for _, name := range c.SupportedKinds {
			kind, err := frame.ParseKind(name)
			if err != nil {
				return frame.Whitelist{}, fmt.Errorf("%w: supported_kinds: %w", ErrInvalidConfig, err)
			}
			kinds = append(kinds, kind)
		}
		options = append(options, frame.WithSupportedKinds(kinds...))
	}

	if c.RejectedClasses != nil {
		options = append(options, frame.WithRejectedClasses(c.RejectedClasses...))
	}

	if c.MatrixAlwaysSupported != nil {
		options = append(options, frame.WithMatrixAlwaysSupported(*c.MatrixAlwaysSupported))
	}

	w, err := frame.NewWhitelist(options...)
	if err != nil {
		return frame.Whitelist{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return w, nil
}
