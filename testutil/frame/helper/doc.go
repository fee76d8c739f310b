// Package helper provides fixtures and observability spies for testing the frame packages.
//
// The spies capture calls made through the frame observability interfaces
// (slog handler, metrics, tracing, contextual logger) so tests can assert on them
// without a real backend.
package helper
