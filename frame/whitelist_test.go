package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_DefaultWhitelist_IsSupported(t *testing.T) {
	w := DefaultWhitelist()

	tests := []struct {
		name     string
		value    *Value
		expected bool
	}{
		{name: "logical", value: Logical(true), expected: true},
		{name: "integer", value: Integer(1), expected: true},
		{name: "double", value: Double(1), expected: true},
		{name: "complex", value: NewValue(KindComplex, []complex128{1i}), expected: true},
		{name: "character", value: Character("a"), expected: true},
		{name: "list", value: List(Integer(1)), expected: true},
		{name: "classed integer", value: NewValue(KindInteger, []int{1}, WithClass("factor")), expected: true},
		{name: "POSIXlt list", value: NewValue(KindList, []*Value{}, WithClass("POSIXlt", "POSIXt")), expected: false},
		{name: "raw", value: NewValue(KindRaw, []byte{1}), expected: false},
		{name: "raw matrix", value: NewValue(KindRaw, []byte{1}, WithDim(1, 1)), expected: true},
		{name: "closure", value: NewValue(KindClosure, func() {}), expected: false},
		{name: "external pointer", value: NewValue(KindExternalPtr, struct{}{}), expected: false},
		{name: "S4 object", value: NewValue(KindS4, struct{}{}, WithForeignObject()), expected: false},
		{name: "nil", value: nil, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, w.IsSupported(tt.value))
		})
	}
}

func Test_NewWhitelist_Options(t *testing.T) {
	w, err := NewWhitelist(
		WithSupportedKinds(KindCharacter, KindInteger),
		WithRejectedClasses("factor"),
		WithMatrixAlwaysSupported(false),
	)

	require.NoError(t, err)
	assert.Equal(t, []Kind{KindInteger, KindCharacter}, w.SupportedKinds())
	assert.Equal(t, []string{"factor"}, w.RejectedClasses())
	assert.False(t, w.MatrixAlwaysSupported())

	assert.True(t, w.IsSupported(Integer(1)))
	assert.False(t, w.IsSupported(NewValue(KindInteger, []int{1}, WithClass("factor"))))
	assert.False(t, w.IsSupported(NewValue(KindDouble, []float64{1}, WithDim(1, 1))))
}

func Test_NewWhitelist_RejectsEmptyKindSet(t *testing.T) {
	_, err := NewWhitelist(WithSupportedKinds())

	assert.ErrorIs(t, err, ErrEmptyWhitelist)
}

func Test_Whitelist_ZeroValueSupportsNothing(t *testing.T) {
	var w Whitelist

	assert.False(t, w.IsSupported(Integer(1)))
}

func Test_ParseKind(t *testing.T) {
	for kind := KindNull; kind <= KindOther; kind++ {
		parsed, err := ParseKind(kind.TypeName())

		require.NoError(t, err)
		assert.Equal(t, kind, parsed)
	}

	_, err := ParseKind("numeric")
	assert.ErrorIs(t, err, ErrUnknownKind)
}
