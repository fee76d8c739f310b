package frame

import (
	"fmt"
)

// Kind is the representation tag of a Value.
type Kind int

const (
	KindNull Kind = iota
	KindLogical
	KindInteger
	KindDouble
	KindComplex
	KindCharacter
	KindList
	KindRaw
	KindClosure
	KindEnvironment
	KindExternalPtr
	KindS4
	KindOther
)

var kindTypeNames = map[Kind]string{
	KindNull:        "NULL",
	KindLogical:     "logical",
	KindInteger:     "integer",
	KindDouble:      "double",
	KindComplex:     "complex",
	KindCharacter:   "character",
	KindList:        "list",
	KindRaw:         "raw",
	KindClosure:     "closure",
	KindEnvironment: "environment",
	KindExternalPtr: "externalptr",
	KindS4:          "S4",
	KindOther:       "other",
}

// TypeName returns the primitive tag name, e.g. "double" for KindDouble.
// This is the name reported by UnsupportedTypeError.
func (k Kind) TypeName() string {
	if name, ok := kindTypeNames[k]; ok {
		return name
	}

	return kindTypeNames[KindOther]
}

// String provides a string representation of Kind for logging and debugging.
func (k Kind) String() string {
	return k.TypeName()
}

// ParseKind maps a primitive tag name back to its Kind.
func ParseKind(name string) (Kind, error) {
	for kind, typeName := range kindTypeNames {
		if typeName == name {
			return kind, nil
		}
	}

	return KindOther, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}
