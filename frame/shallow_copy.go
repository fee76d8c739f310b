package frame

// Share marks v as Shared and returns it, so it can be placed into a second container.
func Share(v *Value) *Value {
	v.MarkShared()
	return v
}

// ShallowCopy returns a new Container with the same column references as c.
//
// Every column is marked Shared before it is placed into the new container,
// and the container-level attributes and object flags are copied with CopyAttributes.
// Column payloads are not copied: a mutator must check IsShared and copy before writing.
// A nil container yields nil.
func ShallowCopy(c *Container) *Container {
	out, _ := ShallowCopyCounted(c)
	return out
}

// ShallowCopyCounted is ShallowCopy that also reports how many columns this call moved
// from Unshared to Shared. Concurrent copies of one container never count a column twice.
func ShallowCopyCounted(c *Container) (*Container, int) {
	if c == nil {
		return nil, 0
	}

	newlyShared := 0
	out := newContainerOfLength(len(c.columns))
	for i, v := range c.columns {
		if v.MarkShared() {
			newlyShared++
		}
		out.columns[i] = v
	}

	CopyAttributes(out, c)

	return out, newlyShared
}

// CopyOnlyAttributes installs a structural copy of src's attribute list on out.
// It returns false, and leaves out without attributes, when src has none.
// The object flags are not touched.
func CopyOnlyAttributes(out, src Attributed) bool {
	attrs, copied := src.Attributes().Copy()
	out.SetAttributes(attrs)

	return copied
}

// CopyAttributes copies the object flags and the full attribute list from src onto out.
// It reports whether src had any attributes.
func CopyAttributes(out, src Attributed) bool {
	out.SetObject(src.IsObject())
	if src.IsForeignObject() {
		out.MarkForeignObject()
	}

	return CopyOnlyAttributes(out, src)
}

// CopyMostAttributes is CopyAttributes without the names attribute.
func CopyMostAttributes(out, src Attributed) bool {
	if !CopyAttributes(out, src) {
		return false
	}

	out.SetAttribute(AttrNames, nil)

	return true
}

// CopyColumnAttributes is CopyMostAttributes without dim and dimnames,
// for flattening a matrix-shaped column into a plain column.
func CopyColumnAttributes(out, src Attributed) bool {
	if !CopyMostAttributes(out, src) {
		return false
	}

	out.SetAttribute(AttrDim, nil)
	out.SetAttribute(AttrDimNames, nil)

	return true
}
