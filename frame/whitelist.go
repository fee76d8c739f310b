package frame

import (
	"slices"
)

// SupportedPredicate decides whether a column representation can be processed.
type SupportedPredicate interface {
	IsSupported(v *Value) bool
}

// SupportedPredicateFunc adapts a function to SupportedPredicate.
type SupportedPredicateFunc func(v *Value) bool

func (f SupportedPredicateFunc) IsSupported(v *Value) bool {
	return f(v)
}

// Whitelist is the default SupportedPredicate: a fixed set of kinds,
// a list of rejected classes, and whether matrix-shaped values are always accepted.
type Whitelist struct {
	kinds                 map[Kind]struct{}
	rejectedClasses       []string
	matrixAlwaysSupported bool
}

// WhitelistOption defines a functional option for configuring a Whitelist.
type WhitelistOption func(*Whitelist) error

// WithSupportedKinds replaces the set of supported kinds.
func WithSupportedKinds(kinds ...Kind) WhitelistOption {
	return func(w *Whitelist) error {
		if len(kinds) == 0 {
			return ErrEmptyWhitelist
		}

		w.kinds = make(map[Kind]struct{}, len(kinds))
		for _, kind := range kinds {
			w.kinds[kind] = struct{}{}
		}

		return nil
	}
}

// WithRejectedClasses replaces the classes that are rejected even when their kind is supported.
func WithRejectedClasses(classes ...string) WhitelistOption {
	return func(w *Whitelist) error {
		w.rejectedClasses = slices.Clone(classes)
		return nil
	}
}

// WithMatrixAlwaysSupported toggles whether matrix-shaped values bypass the kind check.
func WithMatrixAlwaysSupported(supported bool) WhitelistOption {
	return func(w *Whitelist) error {
		w.matrixAlwaysSupported = supported
		return nil
	}
}

// NewWhitelist creates a Whitelist starting from the defaults of DefaultWhitelist.
func NewWhitelist(options ...WhitelistOption) (Whitelist, error) {
	w := DefaultWhitelist()

	for _, option := range options {
		if err := option(&w); err != nil {
			return Whitelist{}, err
		}
	}

	return w, nil
}

// DefaultWhitelist accepts matrices, logical, integer, double, complex, character, and
// list columns, except lists inheriting POSIXlt.
func DefaultWhitelist() Whitelist {
	return Whitelist{
		kinds: map[Kind]struct{}{
			KindLogical:   {},
			KindInteger:   {},
			KindDouble:    {},
			KindComplex:   {},
			KindCharacter: {},
			KindList:      {},
		},
		rejectedClasses:       []string{"POSIXlt"},
		matrixAlwaysSupported: true,
	}
}

// IsSupported implements SupportedPredicate.
func (w Whitelist) IsSupported(v *Value) bool {
	if v == nil {
		return false
	}

	if w.matrixAlwaysSupported && v.IsMatrix() {
		return true
	}

	if _, ok := w.kinds[v.Kind()]; !ok {
		return false
	}

	for _, class := range w.rejectedClasses {
		if v.Inherits(class) {
			return false
		}
	}

	return true
}

// SupportedKinds returns the supported kinds in ascending order.
func (w Whitelist) SupportedKinds() []Kind {
	kinds := make([]Kind, 0, len(w.kinds))
	for kind := range w.kinds {
		kinds = append(kinds, kind)
	}

	slices.Sort(kinds)

	return kinds
}

// RejectedClasses returns a copy of the rejected classes.
func (w Whitelist) RejectedClasses() []string {
	return slices.Clone(w.rejectedClasses)
}

// MatrixAlwaysSupported reports whether matrix-shaped values bypass the kind check.
func (w Whitelist) MatrixAlwaysSupported() bool {
	return w.matrixAlwaysSupported
}
