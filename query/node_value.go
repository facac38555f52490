package query

import (
	"encoding/base64"
	"fmt"

	"github.com/99designs/gqlgen/graphql"
	"github.com/ipld/go-ipld-prime/datamodel"
	"github.com/vektah/gqlparser/v2/ast"
)

// nodeLiteral returns the literal for the given IPLD node.
//
// Map entries keep the iteration order of the node.
func nodeLiteral(n datamodel.Node) (literal, error) {
	switch n.Kind() {
	case datamodel.Kind_Null:
		return nullLiteral, nil
	case datamodel.Kind_Bool:
		v, err := n.AsBool()
		if err != nil {
			return literal{}, err
		}
		return marshaledLiteral(ast.BooleanValue, graphql.MarshalBoolean(v)), nil
	case datamodel.Kind_Int:
		v, err := n.AsInt()
		if err != nil {
			return literal{}, err
		}
		return marshaledLiteral(ast.IntValue, graphql.MarshalInt64(v)), nil
	case datamodel.Kind_Float:
		v, err := n.AsFloat()
		if err != nil {
			return literal{}, err
		}
		return floatLiteral(v)
	case datamodel.Kind_String:
		v, err := n.AsString()
		if err != nil {
			return literal{}, err
		}
		return stringLiteral(v), nil
	case datamodel.Kind_Bytes:
		v, err := n.AsBytes()
		if err != nil {
			return literal{}, err
		}
		return stringLiteral(base64.StdEncoding.EncodeToString(v)), nil
	case datamodel.Kind_Link:
		v, err := n.AsLink()
		if err != nil {
			return literal{}, err
		}
		return stringLiteral(v.String()), nil
	case datamodel.Kind_List:
		return nodeListLiteral(n)
	case datamodel.Kind_Map:
		return nodeMapLiteral(n)
	default:
		return literal{}, fmt.Errorf("cannot format node of kind %s", n.Kind().String())
	}
}

func nodeListLiteral(n datamodel.Node) (literal, error) {
	lit := literal{kind: ast.ListValue}
	for iter := n.ListIterator(); !iter.Done(); {
		_, v, err := iter.Next()
		if err != nil {
			return literal{}, err
		}
		value, err := nodeLiteral(v)
		if err != nil {
			return literal{}, err
		}
		lit.children = append(lit.children, childLiteral{value: value})
	}
	return lit, nil
}

func nodeMapLiteral(n datamodel.Node) (literal, error) {
	lit := literal{kind: ast.ObjectValue}
	for iter := n.MapIterator(); !iter.Done(); {
		k, v, err := iter.Next()
		if err != nil {
			return literal{}, err
		}
		name, err := k.AsString()
		if err != nil {
			return literal{}, err
		}
		value, err := nodeLiteral(v)
		if err != nil {
			return literal{}, err
		}
		lit.children = append(lit.children, childLiteral{name: name, value: value})
	}
	return lit, nil
}
