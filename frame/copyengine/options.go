package copyengine

import (
	"github.com/frameshare/frameshare-go/frame"
)

type (
	// Logger is the dependency-free logger interface, see frame.Logger.
	Logger = frame.Logger

	// ContextualLogger is the context-aware logger interface, see frame.ContextualLogger.
	ContextualLogger = frame.ContextualLogger

	// MetricsCollector is the metrics interface, see frame.MetricsCollector.
	MetricsCollector = frame.MetricsCollector

	// TracingCollector is the tracing interface, see frame.TracingCollector.
	TracingCollector = frame.TracingCollector

	// SpanContext is an active span, see frame.SpanContext.
	SpanContext = frame.SpanContext
)

// Option defines a functional option for configuring Engine.
type Option func(*Engine) error

// WithWhitelist sets the predicate used by AssertSupported.
func WithWhitelist(predicate frame.SupportedPredicate) Option {
	return func(e *Engine) error {
		if predicate == nil {
			return ErrNilWhitelist
		}

		e.whitelist = predicate

		return nil
	}
}

// WithClassResolver sets the resolver used for diagnostics and UnsupportedClassError messages.
func WithClassResolver(resolver frame.ClassResolver) Option {
	return func(e *Engine) error {
		if resolver == nil {
			return ErrNilClassResolver
		}

		e.classResolver = resolver

		return nil
	}
}

// WithOperationIDGenerator replaces the generator for the operation_id attached to spans and logs.
func WithOperationIDGenerator(generate func() string) Option {
	return func(e *Engine) error {
		if generate == nil {
			return ErrNilOperationIDGenerator
		}

		e.newOperationID = generate

		return nil
	}
}

// WithLogger sets the logger for the Engine.
// The logger will receive messages at different levels based on the logger's configured level:
//
// Debug level: attribute keys being copied and dropped (development use)
// Info level: column counts and durations of completed operations (production-safe)
// Error level: the unsupported column that stopped a validation.
func WithLogger(logger Logger) Option {
	return func(e *Engine) error {
		e.logger = logger
		return nil
	}
}

// WithContextualLogger sets the contextual logger for the Engine.
// It receives the same messages as the Logger, with the operation context for trace correlation.
func WithContextualLogger(logger ContextualLogger) Option {
	return func(e *Engine) error {
		e.contextualLogger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector for the Engine.
// It receives copy and validation durations, shared column counts, and unsupported column counters.
func WithMetrics(collector MetricsCollector) Option {
	return func(e *Engine) error {
		e.metricsCollector = collector
		return nil
	}
}

// WithTracing sets the tracing collector for the Engine.
// It receives one span per shallow copy and per validation.
func WithTracing(collector TracingCollector) Option {
	return func(e *Engine) error {
		e.tracingCollector = collector
		return nil
	}
}
