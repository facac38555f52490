package object

import (
	"fmt"
	"reflect"
	"slices"

	"go.uber.org/zap"
)

// Selectable is implemented by every query object.
//
// Concrete query objects embed *Object which provides the implementation.
type Selectable interface {
	QueryObject() *Object
}

// Selection is an entry of an object selection set.
//
// The set of implementations is closed: a Selection is either a Field or a Nested.
type Selection interface {
	isSelection()
}

// Field selects a field by name.
type Field string

// Nested selects a nested query object.
type Nested struct {
	Object Selectable
}

func (Field) isSelection()  {}
func (Nested) isSelection() {}

// Object contains the state shared by all query objects.
type Object struct {
	typeName   string
	alias      string
	selections []Selection
	declared   []Argument
}

// New returns a new object for the given schema type.
//
// The alias is used as the rendered name and defaults to the type name.
func New(typeName, alias string) *Object {
	if alias == "" {
		alias = typeName
	}
	return &Object{
		typeName: typeName,
		alias:    alias,
	}
}

// QueryObject returns the object itself.
func (o *Object) QueryObject() *Object {
	return o
}

// TypeName returns the schema type name of the object.
func (o *Object) TypeName() string {
	return o.typeName
}

// Alias returns the name rendered for the object.
func (o *Object) Alias() string {
	return o.alias
}

// Declare registers argument descriptors in declaration order.
//
// Only declared arguments are considered when the argument list is built.
func (o *Object) Declare(args ...Argument) {
	o.declared = append(o.declared, args...)
}

// SelectField appends a field to the selection set.
func (o *Object) SelectField(name string) {
	o.selections = append(o.selections, Field(name))
}

// SelectObject appends a nested object to the selection set.
//
// Nil objects and objects without an embedded *Object are ignored.
func (o *Object) SelectObject(child Selectable) {
	if isNil(child) || child.QueryObject() == nil {
		return
	}
	o.selections = append(o.selections, Nested{Object: child})
}

// Select appends a field name or a nested object to the selection set.
//
// Values of any other type are ignored.
func (o *Object) Select(v any) {
	switch t := v.(type) {
	case string:
		o.SelectField(t)
	case Selectable:
		o.SelectObject(t)
	default:
		zap.L().Debug("ignoring unsupported selection",
			zap.String("object", o.typeName),
			zap.String("selection", fmt.Sprintf("%T", v)))
	}
}

// Selections returns a copy of the selection set.
func (o *Object) Selections() []Selection {
	return slices.Clone(o.selections)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
