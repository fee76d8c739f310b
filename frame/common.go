package frame

import (
	"errors"
	"fmt"
)

var (
	// ErrNilContainer is returned when an operation receives a nil *Container.
	ErrNilContainer = errors.New("nil container supplied")

	// ErrUnsupportedColumn matches every column that fails the whitelist check.
	ErrUnsupportedColumn = errors.New("column has unsupported representation")

	// ErrUnsupportedType is the sentinel behind UnsupportedTypeError.
	ErrUnsupportedType = fmt.Errorf("%w: unsupported type", ErrUnsupportedColumn)

	// ErrUnsupportedClass is the sentinel behind UnsupportedClassError.
	ErrUnsupportedClass = fmt.Errorf("%w: unsupported class", ErrUnsupportedColumn)

	// ErrUnknownKind is returned by ParseKind for names outside the fixed Kind set.
	ErrUnknownKind = errors.New("unknown kind name")

	// ErrEmptyWhitelist is returned when a Whitelist would accept no kind at all.
	ErrEmptyWhitelist = errors.New("whitelist must support at least one kind")
)

// UnsupportedTypeError reports a column whose Kind is not whitelisted and which carries no class attribute.
type UnsupportedTypeError struct {
	Column   string
	Index    int
	TypeName string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("column '%s' has unsupported type : %s", e.Column, e.TypeName)
}

func (e *UnsupportedTypeError) Unwrap() error {
	return ErrUnsupportedType
}

// UnsupportedClassError reports a column that carries a class attribute and is not whitelisted.
// ClassName is the single descriptive name produced by a ClassResolver.
type UnsupportedClassError struct {
	Column    string
	Index     int
	ClassName string
}

func (e *UnsupportedClassError) Error() string {
	return fmt.Sprintf("column '%s' has unsupported class : %s", e.Column, e.ClassName)
}

func (e *UnsupportedClassError) Unwrap() error {
	return ErrUnsupportedClass
}
