package frame

// Attributed is anything that carries an AttributeList and the object flag pair.
// Both *Value and *Container implement it, so the attribute-copy functions work across them.
type Attributed interface {
	Attributes() AttributeList
	SetAttributes(attrs AttributeList)
	SetAttribute(key Symbol, val *Value)
	IsObject() bool
	SetObject(object bool)
	IsForeignObject() bool
	MarkForeignObject()
}

// Column is a named Value, used to build a Container.
type Column struct {
	Name  string
	Value *Value
}

// Container is an ordered sequence of columns plus container-level attributes.
// Column names are kept in the names attribute.
type Container struct {
	columns []*Value
	attrs   AttributeList
	object  bool
	foreign bool
}

// ContainerOption defines a functional option for NewContainer.
type ContainerOption func(*Container)

// WithContainerClass sets the class attribute of the container and flags it as an object.
func WithContainerClass(classes ...string) ContainerOption {
	return func(c *Container) {
		c.SetAttribute(AttrClass, Character(classes...))
	}
}

// WithContainerAttribute appends (or replaces) a container-level attribute.
func WithContainerAttribute(key Symbol, val *Value) ContainerOption {
	return func(c *Container) {
		c.SetAttribute(key, val)
	}
}

// NewContainer builds a Container from columns in the given order.
// The names attribute is always the first attribute of the result.
func NewContainer(columns []Column, options ...ContainerOption) *Container {
	c := newContainerOfLength(len(columns))
	names := make([]string, len(columns))

	for i, col := range columns {
		c.columns[i] = col.Value
		names[i] = col.Name
	}

	c.SetAttribute(AttrNames, Character(names...))

	for _, option := range options {
		option(c)
	}

	return c
}

func newContainerOfLength(n int) *Container {
	return &Container{columns: make([]*Value, n)}
}

// Len returns the number of columns.
func (c *Container) Len() int {
	if c == nil {
		return 0
	}

	return len(c.columns)
}

// Column returns the i-th column reference.
func (c *Container) Column(i int) *Value {
	return c.columns[i]
}

// Columns returns the column references in order. The slice is a copy, the Values are not.
func (c *Container) Columns() []*Value {
	columns := make([]*Value, len(c.columns))
	copy(columns, c.columns)

	return columns
}

// Names returns the names attribute, or nil.
func (c *Container) Names() []string {
	names, ok := c.Attributes().Get(AttrNames)
	if !ok {
		return nil
	}

	n, _ := names.Payload().([]string)

	return n
}

// ColumnName returns the name of the i-th column, or "" when the container is unnamed.
func (c *Container) ColumnName(i int) string {
	names := c.Names()
	if i < 0 || i >= len(names) {
		return ""
	}

	return names[i]
}

func (c *Container) Attributes() AttributeList {
	if c == nil {
		return AttributeList{}
	}

	return c.attrs
}

// SetAttributes installs attrs as the attribute list. The object flags are left untouched.
func (c *Container) SetAttributes(attrs AttributeList) {
	c.attrs = attrs
}

// SetAttribute replaces the first entry for key, or appends it. A nil value removes the entry,
// and so does an empty character vector for the class attribute.
func (c *Container) SetAttribute(key Symbol, val *Value) {
	if key == AttrClass {
		val = normalizeClass(val)
	}

	c.attrs = c.attrs.With(key, val)
	if key == AttrClass {
		c.object = len(declaredClasses(c.attrs)) > 0 || c.foreign
	}
}

func (c *Container) IsObject() bool {
	return c != nil && c.object
}

func (c *Container) SetObject(object bool) {
	c.object = object
}

func (c *Container) IsForeignObject() bool {
	return c != nil && c.foreign
}

func (c *Container) MarkForeignObject() {
	c.foreign = true
}
