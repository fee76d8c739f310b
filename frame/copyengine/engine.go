package copyengine

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/frameshare/frameshare-go/frame"
)

const (
	logMsgCopyingAttributes    = "copying attributes"
	logMsgDroppingNames        = "dropping name attribute"
	logMsgDroppingDim          = "dropping dim and dimnames attributes"
	logMsgUnsupportedColumn    = "unsupported column"
	logMsgShallowCopyCompleted = "shallow copy completed"
	logMsgValidationPassed     = "validation passed"
	logMsgOperation            = "frame operation: "
	logAttrError               = "error"
	logAttrOperationID         = "operation_id"
	logAttrAttributeKeys       = "attribute_keys"
	logAttrColumn              = "column"
	logAttrColumnIndex         = "column_index"
	logAttrColumnCount         = "column_count"
	logAttrNewlyShared         = "newly_shared"
	logAttrDescriptor          = "descriptor"
	logAttrDurationMS          = "duration_ms"
)

var (
	// ErrNilWhitelist is returned by WithWhitelist for a nil predicate.
	ErrNilWhitelist = errors.New("nil whitelist supplied")

	// ErrNilClassResolver is returned by WithClassResolver for a nil resolver.
	ErrNilClassResolver = errors.New("nil class resolver supplied")

	// ErrNilOperationIDGenerator is returned by WithOperationIDGenerator for a nil function.
	ErrNilOperationIDGenerator = errors.New("nil operation id generator supplied")
)

// Engine runs the frame primitives with logging, metrics, and tracing around them.
//
// It holds no mutable state after construction and is safe for concurrent use,
// as long as callers do not mutate the same Container concurrently.
type Engine struct {
	whitelist        frame.SupportedPredicate
	classResolver    frame.ClassResolver
	newOperationID   func() string
	logger           Logger
	contextualLogger ContextualLogger
	metricsCollector MetricsCollector
	tracingCollector TracingCollector
}

// NewEngine creates an Engine with the default whitelist and class resolver, and optional configuration.
func NewEngine(options ...Option) (Engine, error) {
	e := Engine{
		whitelist:      frame.DefaultWhitelist(),
		classResolver:  frame.NewClassNameResolver(nil),
		newOperationID: uuid.NewString,
	}

	for _, option := range options {
		if err := option(&e); err != nil {
			return Engine{}, err
		}
	}

	return e, nil
}

// AssertSupported checks every column of c against the configured whitelist and
// returns the first violation unmodified: *frame.UnsupportedTypeError or *frame.UnsupportedClassError.
func (e Engine) AssertSupported(ctx context.Context, c *frame.Container) error {
	if c == nil {
		return frame.ErrNilContainer
	}

	operationID := e.newOperationID()
	tracer, ctx := e.startValidationTracing(ctx, operationID, c.Len())
	metrics := e.startValidationMetrics(ctx)

	start := time.Now()
	err := frame.AssertSupportedWith(c, e.whitelist, e.classResolver)
	duration := time.Since(start)

	if err != nil {
		column, index, reason := unsupportedColumnDetails(err)
		e.logError(ctx, logMsgUnsupportedColumn, err,
			logAttrOperationID, operationID,
			logAttrColumn, column,
			logAttrColumnIndex, index,
			logAttrDescriptor, e.describeColumn(c, index))
		metrics.recordError(reason, duration)
		tracer.finishError(reason, column)

		return err
	}

	e.logOperation(ctx, logMsgValidationPassed,
		logAttrOperationID, operationID,
		logAttrColumnCount, c.Len(),
		logAttrDurationMS, toMilliseconds(duration))
	metrics.recordSuccess(duration)
	tracer.finishSuccess(duration)

	return nil
}

// ShallowCopy returns a new Container sharing every column of c, with its own attribute list.
// All columns of c are Shared afterwards.
func (e Engine) ShallowCopy(ctx context.Context, c *frame.Container) (*frame.Container, error) {
	if c == nil {
		return nil, frame.ErrNilContainer
	}

	operationID := e.newOperationID()
	tracer, ctx := e.startShallowCopyTracing(ctx, operationID, c.Len())
	metrics := e.startShallowCopyMetrics(ctx)

	start := time.Now()
	out, newlyShared := frame.ShallowCopyCounted(c)
	duration := time.Since(start)

	if !out.Attributes().IsEmpty() {
		e.logDebug(ctx, logMsgCopyingAttributes,
			logAttrOperationID, operationID,
			logAttrAttributeKeys, attributeKeys(out))
	}

	e.logOperation(ctx, logMsgShallowCopyCompleted,
		logAttrOperationID, operationID,
		logAttrColumnCount, out.Len(),
		logAttrNewlyShared, newlyShared,
		logAttrDurationMS, toMilliseconds(duration))
	metrics.recordSuccess(out.Len(), duration)
	tracer.finishSuccess(out.Len(), newlyShared, duration)

	return out, nil
}

// ResolveClassName returns the single descriptive class name of v using the configured resolver.
func (e Engine) ResolveClassName(v *frame.Value) string {
	return e.classResolver.ResolveClassName(v)
}

// CopyAttributes is frame.CopyAttributes with debug logging.
func (e Engine) CopyAttributes(ctx context.Context, out, src frame.Attributed) bool {
	keys := attributeKeys(src)
	copied := frame.CopyAttributes(out, src)
	if copied {
		e.logDebug(ctx, logMsgCopyingAttributes, logAttrAttributeKeys, keys)
	}

	return copied
}

// CopyMostAttributes is frame.CopyMostAttributes with debug logging.
func (e Engine) CopyMostAttributes(ctx context.Context, out, src frame.Attributed) bool {
	keys := attributeKeys(src)
	copied := frame.CopyMostAttributes(out, src)
	if copied {
		e.logDebug(ctx, logMsgCopyingAttributes, logAttrAttributeKeys, keys)
		e.logDebug(ctx, logMsgDroppingNames)
	}

	return copied
}

// CopyColumnAttributes is frame.CopyColumnAttributes with debug logging.
func (e Engine) CopyColumnAttributes(ctx context.Context, out, src frame.Attributed) bool {
	keys := attributeKeys(src)
	copied := frame.CopyColumnAttributes(out, src)
	if copied {
		e.logDebug(ctx, logMsgCopyingAttributes, logAttrAttributeKeys, keys)
		e.logDebug(ctx, logMsgDroppingNames)
		e.logDebug(ctx, logMsgDroppingDim)
	}

	return copied
}

func (e Engine) describeColumn(c *frame.Container, index int) string {
	if index < 0 || index >= c.Len() {
		return ""
	}

	return frame.Describe(c.Column(index))
}

func unsupportedColumnDetails(err error) (column string, index int, reason string) {
	var typeErr *frame.UnsupportedTypeError
	if errors.As(err, &typeErr) {
		return typeErr.Column, typeErr.Index, reasonType
	}

	var classErr *frame.UnsupportedClassError
	if errors.As(err, &classErr) {
		return classErr.Column, classErr.Index, reasonClass
	}

	return "", -1, reasonUnknown
}

func attributeKeys(a frame.Attributed) []string {
	keys := a.Attributes().Keys()
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = string(k)
	}

	return out
}
