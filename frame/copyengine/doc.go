// Package copyengine runs the frame copy-on-write primitives with optional observability.
//
// The Engine wraps frame.AssertSupported, frame.ShallowCopy, frame.ResolveClassName,
// and the three attribute-copy levels, adding structured logging, metrics, and tracing
// through the dependency-free interfaces of the frame package.
//
// Key features:
//   - Configurable whitelist and class resolver
//   - Logger and ContextualLogger support (*slog.Logger satisfies both)
//   - Metrics and tracing through frame.MetricsCollector and frame.TracingCollector
//   - An operation_id (UUID) on every span and log line of an operation
//
// Usage examples:
//
//	// Basic usage
//	engine, _ := copyengine.NewEngine()
//
//	// With logging and a whitelist loaded from YAML
//	whitelist, _ := whitelistconfig.Load(file)
//	engine, _ := copyengine.NewEngine(
//		copyengine.WithWhitelist(whitelist),
//		copyengine.WithLogger(slog.Default()),
//	)
//
//	if err := engine.AssertSupported(ctx, c); err != nil {
//		return err
//	}
//	clone, _ := engine.ShallowCopy(ctx, c)
package copyengine
