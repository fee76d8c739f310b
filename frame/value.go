package frame

import (
	"slices"
	"sync/atomic"
)

// SharingState tells a mutator whether a Value may be written in place.
type SharingState uint32

const (
	// Unshared values are referenced by a single container and may be mutated in place.
	Unshared SharingState = iota

	// Shared values are aliased. A mutator must copy the payload before writing.
	Shared
)

// String provides a string representation of SharingState for logging and debugging.
func (s SharingState) String() string {
	switch s {
	case Unshared:
		return "unshared"
	case Shared:
		return "shared"
	default:
		return "unknown"
	}
}

// Value is a reference handle to an opaque column payload.
//
// The payload is never copied by this package. Only the attribute list and the sharing
// state are managed here. A Value must not be copied by value after construction;
// always pass *Value around. A nil *Value behaves like an attribute-less KindNull value.
type Value struct {
	kind    Kind
	payload any
	attrs   AttributeList
	object  bool
	foreign bool
	state   atomic.Uint32
}

// ValueOption defines a functional option for NewValue.
type ValueOption func(*Value)

// WithAttribute appends (or replaces) a single attribute entry.
func WithAttribute(key Symbol, v *Value) ValueOption {
	return func(val *Value) {
		val.SetAttribute(key, v)
	}
}

// WithClass sets the declared class names and flags the value as an object.
func WithClass(classes ...string) ValueOption {
	return func(val *Value) {
		val.SetAttribute(AttrClass, Character(classes...))
	}
}

// WithNames sets the element names.
func WithNames(names ...string) ValueOption {
	return func(val *Value) {
		val.SetAttribute(AttrNames, Character(names...))
	}
}

// WithDim sets the dimensions. Two dimensions make the value matrix-shaped.
func WithDim(dims ...int) ValueOption {
	return func(val *Value) {
		val.SetAttribute(AttrDim, Integer(dims...))
	}
}

// WithForeignObject flags the value as a foreign object.
func WithForeignObject() ValueOption {
	return func(val *Value) {
		val.object = true
		val.foreign = true
	}
}

// WithSharedState creates the value directly in the Shared state,
// e.g. when it was produced by a shallow copy elsewhere.
func WithSharedState() ValueOption {
	return func(val *Value) {
		val.state.Store(uint32(Shared))
	}
}

// NewValue wraps payload into a Value handle of the given kind.
func NewValue(kind Kind, payload any, options ...ValueOption) *Value {
	v := &Value{
		kind:    kind,
		payload: payload,
	}

	for _, option := range options {
		option(v)
	}

	return v
}

// Logical builds a KindLogical value backed by a []bool payload.
func Logical(values ...bool) *Value {
	return NewValue(KindLogical, values)
}

// Integer builds a KindInteger value backed by a []int payload.
func Integer(values ...int) *Value {
	return NewValue(KindInteger, values)
}

// Double builds a KindDouble value backed by a []float64 payload.
func Double(values ...float64) *Value {
	return NewValue(KindDouble, values)
}

// Character builds a KindCharacter value backed by a []string payload.
func Character(values ...string) *Value {
	return NewValue(KindCharacter, values)
}

// List builds a KindList value backed by a []*Value payload.
func List(values ...*Value) *Value {
	return NewValue(KindList, values)
}

func (v *Value) Kind() Kind {
	if v == nil {
		return KindNull
	}

	return v.kind
}

func (v *Value) Payload() any {
	if v == nil {
		return nil
	}

	return v.payload
}

// Len returns the element count for the payload types built by this package and 1 for anything else.
func (v *Value) Len() int {
	if v == nil {
		return 0
	}

	switch p := v.payload.(type) {
	case []bool:
		return len(p)
	case []int:
		return len(p)
	case []float64:
		return len(p)
	case []complex128:
		return len(p)
	case []string:
		return len(p)
	case []byte:
		return len(p)
	case []*Value:
		return len(p)
	case nil:
		return 0
	default:
		return 1
	}
}

// SharingState returns the current sharing state.
func (v *Value) SharingState() SharingState {
	if v == nil {
		return Unshared
	}

	return SharingState(v.state.Load())
}

// IsShared reports whether the value is aliased and must be copied before a write.
func (v *Value) IsShared() bool {
	return v.SharingState() == Shared
}

// MarkShared moves the value into the Shared state. There is no way back to Unshared.
// It reports whether this call performed the transition.
func (v *Value) MarkShared() bool {
	if v == nil {
		return false
	}

	return v.state.CompareAndSwap(uint32(Unshared), uint32(Shared))
}

// DeclaredClasses returns the class names in declared order, or nil.
// A class attribute that does not hold character data declares nothing.
func (v *Value) DeclaredClasses() []string {
	return declaredClasses(v.Attributes())
}

// HasClass reports whether the value declares at least one class name.
func (v *Value) HasClass() bool {
	return len(v.DeclaredClasses()) > 0
}

// Inherits reports whether class is one of the declared classes.
func (v *Value) Inherits(class string) bool {
	return slices.Contains(v.DeclaredClasses(), class)
}

// Dim returns the dim attribute, or nil.
func (v *Value) Dim() []int {
	dim, ok := v.Attributes().Get(AttrDim)
	if !ok {
		return nil
	}

	dims, _ := dim.Payload().([]int)

	return dims
}

// IsMatrix reports whether the value is matrix-shaped, i.e. has exactly two dimensions.
func (v *Value) IsMatrix() bool {
	return len(v.Dim()) == 2
}

func (v *Value) Attributes() AttributeList {
	if v == nil {
		return AttributeList{}
	}

	return v.attrs
}

// SetAttributes installs attrs as the attribute list. The object flags are left untouched.
func (v *Value) SetAttributes(attrs AttributeList) {
	v.attrs = attrs
}

// SetAttribute replaces the first entry for key, or appends it. A nil value removes the entry,
// and so does an empty character vector for the class attribute.
// Setting or removing the class attribute updates the object flag accordingly.
func (v *Value) SetAttribute(key Symbol, val *Value) {
	if key == AttrClass {
		val = normalizeClass(val)
	}

	v.attrs = v.attrs.With(key, val)
	if key == AttrClass {
		v.object = v.HasClass() || v.foreign
	}
}

func (v *Value) IsObject() bool {
	return v != nil && v.object
}

func (v *Value) SetObject(object bool) {
	v.object = object
}

func (v *Value) IsForeignObject() bool {
	return v != nil && v.foreign
}

func (v *Value) MarkForeignObject() {
	v.foreign = true
}
