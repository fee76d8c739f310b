package oteladapters_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/frameshare/frameshare-go/frame"
	"github.com/frameshare/frameshare-go/frame/copyengine"
	"github.com/frameshare/frameshare-go/frame/oteladapters"
	"github.com/frameshare/frameshare-go/testutil/frame/helper"
)

func Test_Engine_WithOpenTelemetryAdapters(t *testing.T) {
	tracing, exporter := givenTracer(t)
	meter, reader := givenMeter(t)

	var buf bytes.Buffer
	logger := oteladapters.NewSlogBridgeLoggerWithHandler(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	engine, err := copyengine.NewEngine(
		copyengine.WithContextualLogger(logger),
		copyengine.WithMetrics(oteladapters.NewMetricsCollector(meter)),
		copyengine.WithTracing(tracing),
	)
	require.NoError(t, err)

	c := helper.GivenContainer(t,
		frame.Column{Name: "x", Value: helper.GivenIntegerColumn(t, 1, 2)},
		frame.Column{Name: "when", Value: helper.GivenPOSIXltColumn(t)},
	)

	_, err = engine.ShallowCopy(context.Background(), c)
	require.NoError(t, err)

	err = engine.AssertSupported(context.Background(), c)
	require.EqualError(t, err, "column 'when' has unsupported class : POSIXlt POSIXt")

	spans := exporter.GetSpans()
	require.Len(t, spans, 2)
	assert.Equal(t, "frame.shallow_copy", spans[0].Name)
	assert.Equal(t, codes.Ok, spans[0].Status.Code)
	assert.Equal(t, "frame.assert_supported", spans[1].Name)
	assert.Equal(t, codes.Error, spans[1].Status.Code)

	rm := collect(t, reader)
	counter, ok := findMetric(t, rm, "frame_unsupported_columns_total").(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, counter.DataPoints, 1)
	assert.Equal(t, int64(1), counter.DataPoints[0].Value)

	output := buf.String()
	assert.Contains(t, output, "frame operation: shallow copy completed")
	assert.Contains(t, output, `"column":"when"`)
}
