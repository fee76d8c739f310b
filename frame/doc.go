// Package frame provides the copy-on-write primitives for columnar frames:
// a Container of named columns that can be duplicated without copying the
// underlying column storage.
//
// Column payloads are reference handles (*Value). Duplicating a Container only
// allocates a fresh column slice and a fresh attribute list; every column is
// marked Shared so that a mutator knows it must copy the payload before writing.
// The Shared state is a one-way transition.
//
// Before a Container is processed it is checked against a Whitelist of supported
// column representations. The first unsupported column stops the check and is
// reported with its name and a resolved type or class descriptor.
//
// Key types:
//   - Value: an opaque column payload with a Kind, attributes and a sharing state
//   - AttributeList: ordered (key, value) metadata attached to a Value or Container
//   - Container: ordered columns plus container-level attributes
//   - Whitelist: the default SupportedPredicate
//   - ClassNameResolver: the default ClassResolver, used for diagnostics
//
// Common usage pattern:
//
//	c := frame.NewContainer([]frame.Column{
//		{Name: "x", Value: frame.Integer(1, 2, 3)},
//		{Name: "y", Value: frame.Character("a", "b", "c")},
//	})
//
//	if err := frame.AssertSupported(c); err != nil {
//		// handle error, e.g. errors.As(err, &unsupportedTypeErr)
//	}
//
//	clone := frame.ShallowCopy(c)
//	clone.Column(0).IsShared() // true, and so is c.Column(0)
package frame
