package frame_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frameshare/frameshare-go/frame"
	. "github.com/frameshare/frameshare-go/testutil/frame/helper" //nolint:revive
)

func Test_AttributeList_Copy(t *testing.T) {
	names := frame.Character("a", "b")
	class := frame.Character("tagged")
	custom := frame.Integer(42)

	tests := []struct {
		name    string
		source  frame.AttributeList
		wantKey []frame.Symbol
	}{
		{
			name:    "single entry keeps its head key",
			source:  frame.NewAttributeList(frame.AttributeEntry{Key: frame.AttrClass, Value: class}),
			wantKey: []frame.Symbol{frame.AttrClass},
		},
		{
			name: "many entries keep their order",
			source: frame.NewAttributeList(
				frame.AttributeEntry{Key: frame.AttrNames, Value: names},
				frame.AttributeEntry{Key: frame.AttrClass, Value: class},
				frame.AttributeEntry{Key: "custom", Value: custom},
			),
			wantKey: []frame.Symbol{frame.AttrNames, frame.AttrClass, "custom"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			copied, ok := tt.source.Copy()

			require.True(t, ok)
			if diff := cmp.Diff(tt.wantKey, copied.Keys()); diff != "" {
				t.Errorf("copied keys mismatch (-want +got):\n%s", diff)
			}

			for i := 0; i < tt.source.Len(); i++ {
				assert.Same(t, tt.source.At(i).Value, copied.At(i).Value, "entry payloads must be shared by reference")
			}
		})
	}
}

func Test_AttributeList_Copy_Empty(t *testing.T) {
	copied, ok := frame.AttributeList{}.Copy()

	assert.False(t, ok)
	assert.True(t, copied.IsEmpty())
}

func Test_AttributeList_Copy_IsStructurallyIndependent(t *testing.T) {
	source := frame.NewAttributeList(
		frame.AttributeEntry{Key: frame.AttrNames, Value: frame.Character("a")},
		frame.AttributeEntry{Key: "custom", Value: frame.Integer(1)},
	)

	copied, _ := source.Copy()
	replaced := copied.With("custom", frame.Integer(2))
	trimmed := copied.Without(frame.AttrNames)

	original, _ := source.Get("custom")
	assert.Equal(t, []int{1}, original.Payload())
	assert.Equal(t, []frame.Symbol{frame.AttrNames, "custom"}, source.Keys())
	assert.Equal(t, []frame.Symbol{frame.AttrNames, "custom"}, copied.Keys())
	assert.Equal(t, []frame.Symbol{frame.AttrNames, "custom"}, replaced.Keys())
	assert.Equal(t, []frame.Symbol{"custom"}, trimmed.Keys())
}

func Test_AttributeList_With(t *testing.T) {
	l := frame.NewAttributeList(
		frame.AttributeEntry{Key: frame.AttrNames, Value: frame.Character("a")},
		frame.AttributeEntry{Key: frame.AttrClass, Value: frame.Character("x")},
	)

	replacement := frame.Character("b")
	l = l.With(frame.AttrNames, replacement)
	l = l.With(frame.AttrDim, frame.Integer(1, 1))

	got, ok := l.Get(frame.AttrNames)
	require.True(t, ok)
	assert.Same(t, replacement, got)
	assert.Equal(t, []frame.Symbol{frame.AttrNames, frame.AttrClass, frame.AttrDim}, l.Keys(), "replacing keeps position, adding appends")

	l = l.With(frame.AttrClass, nil)
	assert.Equal(t, []frame.Symbol{frame.AttrNames, frame.AttrDim}, l.Keys(), "a nil value removes the entry")
}

func Test_AttributeList_NewAttributeList_SkipsNilValues(t *testing.T) {
	l := frame.NewAttributeList(
		frame.AttributeEntry{Key: frame.AttrNames, Value: nil},
		frame.AttributeEntry{Key: frame.AttrClass, Value: frame.Character("x")},
	)

	assert.Equal(t, []frame.Symbol{frame.AttrClass}, l.Keys())
}

func Test_AttributeList_All(t *testing.T) {
	l := frame.NewAttributeList(
		frame.AttributeEntry{Key: frame.AttrNames, Value: frame.Character("a")},
		frame.AttributeEntry{Key: frame.AttrClass, Value: frame.Character("x")},
		frame.AttributeEntry{Key: "custom", Value: frame.Integer(1)},
	)

	var keys []frame.Symbol
	for key := range l.All() {
		keys = append(keys, key)
		if key == frame.AttrClass {
			break
		}
	}

	assert.Equal(t, []frame.Symbol{frame.AttrNames, frame.AttrClass}, keys)
}

func Test_CopyAttributes(t *testing.T) {
	source := frame.NewValue(
		frame.KindInteger,
		[]int{1, 2},
		frame.WithNames("a", "b"),
		frame.WithClass("tagged"),
		frame.WithAttribute("custom", frame.Integer(7)),
	)
	out := frame.Integer(1, 2)

	copied := frame.CopyAttributes(out, source)

	assert.True(t, copied)
	assert.True(t, out.IsObject(), "object flag must be copied")
	assert.Equal(t, []string{"names", "class", "custom"}, AttributeKeys(out))
	assert.Equal(t, []string{"names", "class", "custom"}, AttributeKeys(source), "source must be untouched")
}

func Test_CopyAttributes_ForeignObjectFlag(t *testing.T) {
	source := frame.NewValue(frame.KindS4, struct{}{}, frame.WithForeignObject())
	out := frame.NewValue(frame.KindS4, struct{}{})

	copied := frame.CopyAttributes(out, source)

	assert.False(t, copied, "nothing to copy")
	assert.True(t, out.IsObject())
	assert.True(t, out.IsForeignObject())
}

func Test_CopyAttributes_EmptySource(t *testing.T) {
	source := frame.Integer(1)
	out := frame.NewValue(frame.KindInteger, []int{1}, frame.WithAttribute("stale", frame.Integer(0)))

	copied := frame.CopyAttributes(out, source)

	assert.False(t, copied)
	assert.True(t, out.Attributes().IsEmpty())
	assert.False(t, out.IsObject())
}

func Test_CopyOnlyAttributes_LeavesFlagsAlone(t *testing.T) {
	source := frame.NewValue(frame.KindInteger, []int{1}, frame.WithClass("tagged"), frame.WithForeignObject())
	out := frame.Integer(1)

	copied := frame.CopyOnlyAttributes(out, source)

	assert.True(t, copied)
	assert.Equal(t, []string{"class"}, AttributeKeys(out))
	assert.False(t, out.IsObject())
	assert.False(t, out.IsForeignObject())
}

func Test_CopyMostAttributes(t *testing.T) {
	source := frame.NewValue(
		frame.KindInteger,
		[]int{1, 2},
		frame.WithNames("a", "b"),
		frame.WithClass("tagged"),
		frame.WithAttribute("custom", frame.Integer(7)),
	)
	out := frame.Integer(1, 2)

	copied := frame.CopyMostAttributes(out, source)

	assert.True(t, copied)
	if diff := cmp.Diff([]string{"class", "custom"}, AttributeKeys(out)); diff != "" {
		t.Errorf("attribute keys mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, source.Attributes().Has(frame.AttrNames), "source must keep its names")
}

func Test_CopyColumnAttributes(t *testing.T) {
	source := frame.NewValue(
		frame.KindDouble,
		[]float64{1, 2, 3, 4},
		frame.WithNames("a", "b", "c", "d"),
		frame.WithDim(2, 2),
		frame.WithAttribute(frame.AttrDimNames, frame.List(nil, nil)),
		frame.WithClass("tagged"),
	)
	out := frame.Double(1, 2, 3, 4)

	copied := frame.CopyColumnAttributes(out, source)

	assert.True(t, copied)
	if diff := cmp.Diff([]string{"class"}, AttributeKeys(out)); diff != "" {
		t.Errorf("attribute keys mismatch (-want +got):\n%s", diff)
	}
	assert.False(t, out.IsMatrix())
	assert.True(t, source.IsMatrix(), "source must keep its dim")
}

func Test_CopyWrappers_AreNested(t *testing.T) {
	source := GivenMatrixColumn(t, 2, 2)
	source.SetAttribute(frame.AttrNames, frame.Character("a", "b", "c", "d"))
	source.SetAttribute(frame.AttrClass, frame.Character("tagged"))

	full := frame.Double()
	most := frame.Double()
	column := frame.Double()
	frame.CopyAttributes(full, source)
	frame.CopyMostAttributes(most, source)
	frame.CopyColumnAttributes(column, source)

	assert.Subset(t, AttributeKeys(full), AttributeKeys(most))
	assert.Subset(t, AttributeKeys(most), AttributeKeys(column))
}

func Test_CopyWrappers_AreIdempotent(t *testing.T) {
	source := frame.NewValue(frame.KindInteger, []int{1}, frame.WithNames("a"), frame.WithClass("tagged"))

	first := frame.Integer(1)
	second := frame.Integer(1)
	frame.CopyMostAttributes(first, source)
	frame.CopyMostAttributes(second, source)
	frame.CopyMostAttributes(second, source)

	assert.Equal(t, AttributeKeys(first), AttributeKeys(second))
}
