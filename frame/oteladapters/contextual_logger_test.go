package oteladapters_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/log/noop"

	"github.com/frameshare/frameshare-go/frame/oteladapters"
)

func Test_SlogBridgeLoggerWithHandler_WritesAllLevels(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})

	logger := oteladapters.NewSlogBridgeLoggerWithHandler(handler)
	ctx := context.Background()

	logger.DebugContext(ctx, "copying attributes", "attribute_keys", []string{"names", "class"})
	logger.InfoContext(ctx, "frame operation: shallow copy completed", "column_count", 3)
	logger.WarnContext(ctx, "warn message")
	logger.ErrorContext(ctx, "unsupported column", "column", "y")

	output := buf.String()

	assert.Contains(t, output, `"msg":"copying attributes"`)
	assert.Contains(t, output, `"attribute_keys":["names","class"]`)
	assert.Contains(t, output, `"column_count":3`)
	assert.Contains(t, output, `"level":"WARN"`)
	assert.Contains(t, output, `"column":"y"`)
}

func Test_NewSlogBridgeLogger_UsesGlobalProvider(t *testing.T) {
	logger := oteladapters.NewSlogBridgeLogger("frameshare-test")

	assert.NotPanics(t, func() {
		logger.InfoContext(context.Background(), "frame operation: validation passed", "column_count", 1)
	})
}

func Test_OTelLogger_ArgumentHandling(t *testing.T) {
	logger := oteladapters.NewOTelLogger(noop.NewLoggerProvider().Logger("test"))
	ctx := context.Background()

	tests := []struct {
		name string
		args []any
	}{
		{name: "no args", args: nil},
		{name: "typed args", args: []any{"column", "y", "column_index", 1, "duration_ms", 0.25, "newly_shared", int64(2), "ok", true}},
		{name: "slice arg", args: []any{"attribute_keys", []string{"names"}}},
		{name: "odd number of args", args: []any{"column", "y", "dangling"}},
		{name: "non string key", args: []any{42, "value"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				logger.DebugContext(ctx, "debug", tt.args...)
				logger.InfoContext(ctx, "info", tt.args...)
				logger.WarnContext(ctx, "warn", tt.args...)
				logger.ErrorContext(ctx, "error", tt.args...)
			})
		})
	}
}
