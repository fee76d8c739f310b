package frame

import (
	"fmt"
	"strings"
)

const (
	classNameSeparator = " "
	classNameMatrix    = "matrix"
)

// ClassResolver produces the single descriptive class name used in diagnostics.
type ClassResolver interface {
	ResolveClassName(v *Value) string
}

// GenericClassResolver is the host-level class facility consulted when the fast table misses.
// It may return several names. Only the first one is used.
type GenericClassResolver interface {
	GenericClassOf(v *Value) []string
}

// GenericClassResolverFunc adapts a function to GenericClassResolver.
type GenericClassResolverFunc func(v *Value) []string

func (f GenericClassResolverFunc) GenericClassOf(v *Value) []string {
	return f(v)
}

var fastClassNames = map[Kind]string{
	KindInteger:   "integer",
	KindDouble:    "numeric",
	KindLogical:   "logical",
	KindCharacter: "character",
	KindList:      "list",
}

// ClassNameResolver is the default ClassResolver.
//
// It consults, in order: the declared classes (joined by a space, in declared order),
// the matrix shape, a table of the common kinds, and finally the GenericClassResolver.
type ClassNameResolver struct {
	fallback GenericClassResolver
}

// NewClassNameResolver creates a ClassNameResolver with the given fallback.
// A nil fallback selects ImplicitClassResolver.
func NewClassNameResolver(fallback GenericClassResolver) ClassNameResolver {
	if fallback == nil {
		fallback = ImplicitClassResolver{}
	}

	return ClassNameResolver{fallback: fallback}
}

// ResolveClassName returns the single descriptive class name of v.
func (r ClassNameResolver) ResolveClassName(v *Value) string {
	if classes := v.DeclaredClasses(); len(classes) > 0 {
		return strings.Join(classes, classNameSeparator)
	}

	if v.IsMatrix() {
		return classNameMatrix
	}

	if name, ok := fastClassNames[v.Kind()]; ok {
		return name
	}

	fallback := r.fallback
	if fallback == nil {
		fallback = ImplicitClassResolver{}
	}

	if classes := fallback.GenericClassOf(v); len(classes) > 0 {
		return classes[0]
	}

	return v.Kind().TypeName()
}

// ResolveClassName resolves v with the default ClassNameResolver.
func ResolveClassName(v *Value) string {
	return NewClassNameResolver(nil).ResolveClassName(v)
}

var implicitClassNames = map[Kind]string{
	KindNull:        "NULL",
	KindLogical:     "logical",
	KindInteger:     "integer",
	KindDouble:      "numeric",
	KindComplex:     "complex",
	KindCharacter:   "character",
	KindList:        "list",
	KindRaw:         "raw",
	KindClosure:     "function",
	KindEnvironment: "environment",
	KindExternalPtr: "externalptr",
	KindS4:          "S4",
}

// ImplicitClassResolver is the default GenericClassResolver.
//
// It mirrors a dynamic host's class() builtin: the declared classes when present,
// "matrix", "array" for shaped values, the implicit class of the kind, and the Go
// dynamic type of the payload for KindOther.
type ImplicitClassResolver struct{}

func (ImplicitClassResolver) GenericClassOf(v *Value) []string {
	if classes := v.DeclaredClasses(); len(classes) > 0 {
		return classes
	}

	switch dims := len(v.Dim()); {
	case dims == 2:
		return []string{classNameMatrix, "array"}
	case dims > 0:
		return []string{"array"}
	}

	if name, ok := implicitClassNames[v.Kind()]; ok {
		return []string{name}
	}

	if payload := v.Payload(); payload != nil {
		return []string{fmt.Sprintf("%T", payload)}
	}

	return nil
}
