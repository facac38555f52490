package object

import (
	"fmt"
	"slices"

	"github.com/nasdf/gqlselect/query"
)

// Arguments returns the argument list built from the current state of the declared arguments.
//
// Empty arguments are skipped and input object values are replaced by their raw objects.
// The list is rebuilt on every call.
func (o *Object) Arguments() ([]query.Argument, error) {
	args := make([]query.Argument, 0, len(o.declared))
	for _, a := range o.declared {
		if a.Empty() {
			continue
		}
		v, err := flatten(a.ArgumentValue())
		if err != nil {
			return nil, fmt.Errorf("%s argument %s: %w", o.typeName, a.ArgumentName(), err)
		}
		args = append(args, query.Argument{Name: a.ArgumentName(), Value: v})
	}
	return args, nil
}

// Build returns a new query node for the object and all of its nested selections.
//
// The object selection set is left untouched.
func (o *Object) Build() (*query.Node, error) {
	return o.build(nil)
}

// QueryString returns the query text of the object.
func (o *Object) QueryString() (string, error) {
	node, err := o.Build()
	if err != nil {
		return "", err
	}
	return node.Render()
}

func (o *Object) build(path []*Object) (*query.Node, error) {
	if slices.Contains(path, o) {
		return nil, &CyclicSelectionError{
			TypeName: o.typeName,
			Path:     append(typeNames(path), o.typeName),
		}
	}
	if len(o.selections) == 0 {
		return nil, &EmptySelectionSetError{TypeName: o.typeName, Alias: o.alias}
	}
	args, err := o.Arguments()
	if err != nil {
		return nil, err
	}
	node := query.NewNode(o.alias)
	node.SetArguments(args)

	path = append(path, o)
	for _, s := range o.selections {
		switch v := s.(type) {
		case Field:
			node.AddField(string(v))
		case Nested:
			child, err := v.Object.QueryObject().build(path)
			if err != nil {
				return nil, err
			}
			node.AddNode(child)
		}
	}
	return node, nil
}

func typeNames(path []*Object) []string {
	names := make([]string, len(path))
	for i, o := range path {
		names[i] = o.typeName
	}
	return names
}
