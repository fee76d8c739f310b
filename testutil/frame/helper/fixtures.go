package helper

import (
	"testing"

	"github.com/frameshare/frameshare-go/frame"
)

// ExternalHandle is a stand-in for a foreign payload that no whitelist accepts.
type ExternalHandle struct {
	Address uintptr
}

// GivenIntegerColumn builds an unshared integer column with the given values.
func GivenIntegerColumn(t testing.TB, values ...int) *frame.Value {
	t.Helper()

	return frame.Integer(values...)
}

// GivenDoubleColumn builds an unshared double column with the given values.
func GivenDoubleColumn(t testing.TB, values ...float64) *frame.Value {
	t.Helper()

	return frame.Double(values...)
}

// GivenCharacterColumn builds an unshared character column with the given values.
func GivenCharacterColumn(t testing.TB, values ...string) *frame.Value {
	t.Helper()

	return frame.Character(values...)
}

// GivenExternalPtrColumn builds a column whose payload is an opaque foreign handle.
func GivenExternalPtrColumn(t testing.TB) *frame.Value {
	t.Helper()

	return frame.NewValue(frame.KindExternalPtr, &ExternalHandle{Address: 0xbeef})
}

// GivenPOSIXltColumn builds a list column carrying the POSIXlt class, which the default whitelist rejects.
func GivenPOSIXltColumn(t testing.TB) *frame.Value {
	t.Helper()

	return frame.NewValue(
		frame.KindList,
		[]*frame.Value{frame.Double(0.5), frame.Integer(12)},
		frame.WithClass("POSIXlt", "POSIXt"),
	)
}

// GivenMatrixColumn builds a rows x cols double matrix column with dimnames.
func GivenMatrixColumn(t testing.TB, rows, cols int) *frame.Value {
	t.Helper()

	values := make([]float64, rows*cols)
	for i := range values {
		values[i] = float64(i)
	}

	return frame.NewValue(
		frame.KindDouble,
		values,
		frame.WithDim(rows, cols),
		frame.WithAttribute(frame.AttrDimNames, frame.List(nil, nil)),
	)
}

// GivenContainer builds a data.frame-classed container with names, class and row.names attributes.
func GivenContainer(t testing.TB, columns ...frame.Column) *frame.Container {
	t.Helper()

	return frame.NewContainer(
		columns,
		frame.WithContainerClass("data.frame"),
		frame.WithContainerAttribute(frame.AttrRowNames, frame.Integer()),
	)
}

// AttributeKeys returns the attribute keys of a as plain strings, for readable comparisons.
func AttributeKeys(a frame.Attributed) []string {
	keys := a.Attributes().Keys()
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = string(k)
	}

	return out
}
