package object

import (
	"fmt"

	"github.com/nasdf/gqlselect/query"
)

// InputObject is implemented by compound argument values.
type InputObject interface {
	// RawObject returns the object literal for the value.
	RawObject() (query.Object, error)
}

// Input contains the state shared by all input objects.
//
// Concrete input objects embed Input and declare their fields.
type Input struct {
	fields []Argument
}

// Declare registers input fields in declaration order.
func (in *Input) Declare(fields ...Argument) {
	in.fields = append(in.fields, fields...)
}

// RawObject returns an ordered object literal containing all non empty fields.
func (in *Input) RawObject() (query.Object, error) {
	obj := make(query.Object, 0, len(in.fields))
	for _, f := range in.fields {
		if f.Empty() {
			continue
		}
		v, err := flatten(f.ArgumentValue())
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.ArgumentName(), err)
		}
		obj = append(obj, query.ObjectField{Name: f.ArgumentName(), Value: v})
	}
	return obj, nil
}

// flatten replaces input objects with their raw object literals.
func flatten(v any) (any, error) {
	switch t := v.(type) {
	case InputObject:
		if isNil(t) {
			return nil, nil
		}
		return t.RawObject()
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			f, err := flatten(e)
			if err != nil {
				return nil, err
			}
			out[i] = f
		}
		return out, nil
	default:
		return v, nil
	}
}
