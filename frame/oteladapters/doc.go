// Package oteladapters implements the frame observability interfaces on top of OpenTelemetry.
//
// Wire them into a copy engine like this:
//
//	engine, err := copyengine.NewEngine(
//		copyengine.WithContextualLogger(oteladapters.NewSlogBridgeLogger("frameshare")),
//		copyengine.WithMetrics(oteladapters.NewMetricsCollector(otel.Meter("frameshare"))),
//		copyengine.WithTracing(oteladapters.NewTracingCollector(otel.Tracer("frameshare"))),
//	)
//
// It lives in its own module so the core packages stay free of OpenTelemetry.
package oteladapters
