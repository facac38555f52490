// Package gqlselect builds GraphQL query text from trees of typed query objects.
package gqlselect

import (
	"github.com/nasdf/gqlselect/object"
	"github.com/nasdf/gqlselect/query"
)

// Build returns an anonymous query document selecting all of the given objects.
func Build(objects ...object.Selectable) (*query.Document, error) {
	return BuildNamed("", objects...)
}

// BuildNamed returns a query document with the given operation name selecting all of the given objects.
func BuildNamed(name string, objects ...object.Selectable) (*query.Document, error) {
	doc := query.NewDocument()
	doc.Name = name
	for _, o := range objects {
		node, err := o.QueryObject().Build()
		if err != nil {
			return nil, err
		}
		doc.Selections = append(doc.Selections, node)
	}
	return doc, nil
}

// Document returns the query text of an anonymous operation selecting all of the given objects.
func Document(objects ...object.Selectable) (string, error) {
	doc, err := Build(objects...)
	if err != nil {
		return "", err
	}
	return doc.Render()
}

// NamedDocument returns the query text of a named operation selecting all of the given objects.
func NamedDocument(name string, objects ...object.Selectable) (string, error) {
	doc, err := BuildNamed(name, objects...)
	if err != nil {
		return "", err
	}
	return doc.Render()
}
