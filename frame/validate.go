package frame

// AssertSupported checks every column of c against DefaultWhitelist, in order,
// and returns the first violation.
func AssertSupported(c *Container) error {
	return AssertSupportedWith(c, DefaultWhitelist(), NewClassNameResolver(nil))
}

// AssertSupportedWith checks every column of c against predicate, in order.
//
// It stops at the first unsupported column and returns an *UnsupportedClassError when
// that column carries a class attribute (named by resolver), or an *UnsupportedTypeError
// with the column's Kind.TypeName otherwise. Nil predicate or resolver select the defaults.
// Nothing is modified.
func AssertSupportedWith(c *Container, predicate SupportedPredicate, resolver ClassResolver) error {
	if c == nil {
		return ErrNilContainer
	}

	if predicate == nil {
		predicate = DefaultWhitelist()
	}

	if resolver == nil {
		resolver = NewClassNameResolver(nil)
	}

	for i, v := range c.columns {
		if predicate.IsSupported(v) {
			continue
		}

		if v.HasClass() {
			return &UnsupportedClassError{
				Column:    c.ColumnName(i),
				Index:     i,
				ClassName: resolver.ResolveClassName(v),
			}
		}

		return &UnsupportedTypeError{
			Column:   c.ColumnName(i),
			Index:    i,
			TypeName: v.Kind().TypeName(),
		}
	}

	return nil
}
