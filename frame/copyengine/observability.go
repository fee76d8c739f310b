package copyengine

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/frameshare/frameshare-go/frame"
)

const (
	spanNameShallowCopy       = "frame.shallow_copy"
	spanNameAssertSupported   = "frame.assert_supported"
	spanAttrOperation         = "operation"
	spanAttrOperationID       = "operation_id"
	spanAttrColumnCount       = "column_count"
	spanAttrNewlyShared       = "newly_shared"
	spanAttrColumn            = "column"
	spanAttrErrorType         = "error_type"
	spanAttrDurationMS        = "duration_ms"
	operationShallowCopy      = "shallow_copy"
	operationAssertSupported  = "assert_supported"
	metricShallowCopyDuration = "frame_shallow_copy_duration_seconds"
	metricColumnsShared       = "frame_columns_shared"
	metricValidationDuration  = "frame_validation_duration_seconds"
	metricUnsupportedColumns  = "frame_unsupported_columns_total"
	labelReason               = "reason"
	labelStatus               = "status"
	statusSuccess             = "success"
	statusError               = "error"
	reasonType                = "unsupported_type"
	reasonClass               = "unsupported_class"
	reasonUnknown             = "unknown"
)

// === Logging ===
// Every message goes to the Logger and to the ContextualLogger, whichever are configured.

// logDebug logs attribute-level detail at debug level.
func (e Engine) logDebug(ctx context.Context, msg string, args ...any) {
	if e.logger != nil {
		e.logger.Debug(msg, args...)
	}

	if e.contextualLogger != nil {
		e.contextualLogger.DebugContext(ctx, msg, args...)
	}
}

// logOperation logs operational information at info level.
func (e Engine) logOperation(ctx context.Context, action string, args ...any) {
	if e.logger != nil {
		e.logger.Info(logMsgOperation+action, args...)
	}

	if e.contextualLogger != nil {
		e.contextualLogger.InfoContext(ctx, logMsgOperation+action, args...)
	}
}

// logError logs error information at the error level.
func (e Engine) logError(ctx context.Context, message string, err error, args ...any) {
	allArgs := []any{logAttrError, err.Error()}
	allArgs = append(allArgs, args...)

	if e.logger != nil {
		e.logger.Error(message, allArgs...)
	}

	if e.contextualLogger != nil {
		e.contextualLogger.ErrorContext(ctx, message, allArgs...)
	}
}

// toMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func toMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}

// === Metrics ===

// recordDurationMetricsContext records duration metrics with context if the collector supports it.
func (e Engine) recordDurationMetricsContext(ctx context.Context, metricName string, duration time.Duration, labels map[string]string) {
	if e.metricsCollector == nil {
		return
	}

	if contextualCollector, ok := e.metricsCollector.(frame.ContextualMetricsCollector); ok {
		contextualCollector.RecordDurationContext(ctx, metricName, duration, labels)
	} else {
		e.metricsCollector.RecordDuration(metricName, duration, labels)
	}
}

// recordValueMetricsContext records value metrics with context if the collector supports it.
func (e Engine) recordValueMetricsContext(ctx context.Context, metricName string, value float64, labels map[string]string) {
	if e.metricsCollector == nil {
		return
	}

	if contextualCollector, ok := e.metricsCollector.(frame.ContextualMetricsCollector); ok {
		contextualCollector.RecordValueContext(ctx, metricName, value, labels)
	} else {
		e.metricsCollector.RecordValue(metricName, value, labels)
	}
}

// incrementCounterContext increments a counter with context if the collector supports it.
func (e Engine) incrementCounterContext(ctx context.Context, metricName string, labels map[string]string) {
	if e.metricsCollector == nil {
		return
	}

	if contextualCollector, ok := e.metricsCollector.(frame.ContextualMetricsCollector); ok {
		contextualCollector.IncrementCounterContext(ctx, metricName, labels)
	} else {
		e.metricsCollector.IncrementCounter(metricName, labels)
	}
}

// shallowCopyMetricsObserver records metrics for one shallow copy.
type shallowCopyMetricsObserver struct {
	e   Engine
	ctx context.Context
}

// validationMetricsObserver records metrics for one validation.
type validationMetricsObserver struct {
	e   Engine
	ctx context.Context
}

func (e Engine) startShallowCopyMetrics(ctx context.Context) *shallowCopyMetricsObserver {
	return &shallowCopyMetricsObserver{e: e, ctx: ctx}
}

func (e Engine) startValidationMetrics(ctx context.Context) *validationMetricsObserver {
	return &validationMetricsObserver{e: e, ctx: ctx}
}

func (o *shallowCopyMetricsObserver) recordSuccess(columnCount int, duration time.Duration) {
	labels := map[string]string{spanAttrOperation: operationShallowCopy, labelStatus: statusSuccess}
	o.e.recordDurationMetricsContext(o.ctx, metricShallowCopyDuration, duration, labels)
	o.e.recordValueMetricsContext(o.ctx, metricColumnsShared, float64(columnCount), labels)
}

func (o *validationMetricsObserver) recordSuccess(duration time.Duration) {
	labels := map[string]string{spanAttrOperation: operationAssertSupported, labelStatus: statusSuccess}
	o.e.recordDurationMetricsContext(o.ctx, metricValidationDuration, duration, labels)
}

func (o *validationMetricsObserver) recordError(reason string, duration time.Duration) {
	o.e.recordDurationMetricsContext(o.ctx, metricValidationDuration, duration, map[string]string{
		spanAttrOperation: operationAssertSupported,
		labelStatus:       statusError,
	})
	o.e.incrementCounterContext(o.ctx, metricUnsupportedColumns, map[string]string{
		spanAttrOperation: operationAssertSupported,
		labelReason:       reason,
	})
}

// === Tracing ===

// startTraceSpan starts a tracing span if the tracing collector is configured.
func (e Engine) startTraceSpan(ctx context.Context, name string, attrs map[string]string) (context.Context, SpanContext) {
	if e.tracingCollector != nil {
		return e.tracingCollector.StartSpan(ctx, name, attrs)
	}

	return ctx, nil
}

// finishTraceSpan finishes a tracing span if the tracing collector is configured.
func (e Engine) finishTraceSpan(span SpanContext, status string, attrs map[string]string) {
	if e.tracingCollector != nil && span != nil {
		e.tracingCollector.FinishSpan(span, status, attrs)
	}
}

// shallowCopyTracingObserver encapsulates the span lifecycle of one shallow copy.
type shallowCopyTracingObserver struct {
	e    Engine
	span SpanContext
}

// validationTracingObserver encapsulates the span lifecycle of one validation.
type validationTracingObserver struct {
	e    Engine
	span SpanContext
}

func (e Engine) startShallowCopyTracing(ctx context.Context, operationID string, columnCount int) (*shallowCopyTracingObserver, context.Context) {
	newCtx, span := e.startTraceSpan(ctx, spanNameShallowCopy, map[string]string{
		spanAttrOperation:   operationShallowCopy,
		spanAttrOperationID: operationID,
		spanAttrColumnCount: fmt.Sprintf("%d", columnCount),
	})

	return &shallowCopyTracingObserver{e: e, span: span}, newCtx
}

func (e Engine) startValidationTracing(ctx context.Context, operationID string, columnCount int) (*validationTracingObserver, context.Context) {
	newCtx, span := e.startTraceSpan(ctx, spanNameAssertSupported, map[string]string{
		spanAttrOperation:   operationAssertSupported,
		spanAttrOperationID: operationID,
		spanAttrColumnCount: fmt.Sprintf("%d", columnCount),
	})

	return &validationTracingObserver{e: e, span: span}, newCtx
}

func (o *shallowCopyTracingObserver) finishSuccess(columnCount, newlyShared int, duration time.Duration) {
	if o.span != nil {
		o.span.SetStatus(statusSuccess)
		o.span.AddAttribute(spanAttrDurationMS, fmt.Sprintf("%.2f", float64(duration.Nanoseconds())/1e6))
	}

	o.e.finishTraceSpan(o.span, statusSuccess, map[string]string{
		spanAttrColumnCount: fmt.Sprintf("%d", columnCount),
		spanAttrNewlyShared: fmt.Sprintf("%d", newlyShared),
	})
}

func (o *validationTracingObserver) finishSuccess(duration time.Duration) {
	if o.span != nil {
		o.span.SetStatus(statusSuccess)
		o.span.AddAttribute(spanAttrDurationMS, fmt.Sprintf("%.2f", float64(duration.Nanoseconds())/1e6))
	}

	o.e.finishTraceSpan(o.span, statusSuccess, nil)
}

func (o *validationTracingObserver) finishError(reason, column string) {
	if o.span != nil {
		o.span.SetStatus(statusError)
		o.span.AddAttribute(spanAttrErrorType, reason)
	}

	o.e.finishTraceSpan(o.span, statusError, map[string]string{
		spanAttrErrorType: reason,
		spanAttrColumn:    column,
	})
}
