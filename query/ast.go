package query

import (
	"fmt"
	"io"

	"github.com/vektah/gqlparser/v2/ast"
)

// AST returns the gqlparser field for the node.
func (n *Node) AST() (*ast.Field, error) {
	field := &ast.Field{
		Alias: n.Name,
		Name:  n.Name,
	}
	for _, arg := range n.Arguments {
		value, err := ValueAST(arg.Value)
		if err != nil {
			return nil, fmt.Errorf("%s argument %s: %w", n.Name, arg.Name, err)
		}
		field.Arguments = append(field.Arguments, &ast.Argument{
			Name:  arg.Name,
			Value: value,
		})
	}
	set, err := selectionSetAST(n.Selections)
	if err != nil {
		return nil, err
	}
	field.SelectionSet = set
	return field, nil
}

// Format writes the node as an anonymous query operation to w.
func (n *Node) Format(w io.Writer) error {
	return NewDocument(n).Format(w)
}

// ValueAST returns the gqlparser value for the given argument value.
func ValueAST(v any) (*ast.Value, error) {
	lit, err := newLiteral(v)
	if err != nil {
		return nil, err
	}
	return lit.ast(), nil
}

func selectionSetAST(selections []Selection) (ast.SelectionSet, error) {
	set := make(ast.SelectionSet, 0, len(selections))
	for _, s := range selections {
		switch v := s.(type) {
		case Field:
			set = append(set, &ast.Field{Alias: string(v), Name: string(v)})
		case *Node:
			field, err := v.AST()
			if err != nil {
				return nil, err
			}
			set = append(set, field)
		}
	}
	return set, nil
}
