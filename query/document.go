package query

import (
	"io"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"
)

// Document is a single operation wrapping top level nodes.
type Document struct {
	// Operation is the operation type. The empty value is a query.
	Operation ast.Operation
	// Name is the optional operation name.
	Name string
	// Selections is the ordered selection set of the operation.
	Selections []Selection
}

// NewDocument returns an anonymous query document selecting the given nodes.
func NewDocument(nodes ...*Node) *Document {
	doc := &Document{Operation: ast.Query}
	for _, n := range nodes {
		doc.Selections = append(doc.Selections, n)
	}
	return doc
}

func (d *Document) operation() ast.Operation {
	if d.Operation == "" {
		return ast.Query
	}
	return d.Operation
}

// Render returns the query text of the document.
func (d *Document) Render() (string, error) {
	var b strings.Builder
	if err := d.write(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

// String returns the query text of the document.
//
// Arguments without a literal form are rendered as null.
func (d *Document) String() string {
	var b strings.Builder
	_ = d.write(&b)
	return b.String()
}

func (d *Document) write(b *strings.Builder) error {
	b.WriteString(string(d.operation()))
	if d.Name != "" {
		b.WriteString(" ")
		b.WriteString(d.Name)
	}
	b.WriteString(" ")
	return writeSelections(b, d.Selections)
}

// AST returns the gqlparser representation of the document.
func (d *Document) AST() (*ast.QueryDocument, error) {
	set, err := selectionSetAST(d.Selections)
	if err != nil {
		return nil, err
	}
	return &ast.QueryDocument{
		Operations: ast.OperationList{{
			Operation:    d.operation(),
			Name:         d.Name,
			SelectionSet: set,
		}},
	}, nil
}

// Format writes the document to w as indented multi-line text.
func (d *Document) Format(w io.Writer) error {
	doc, err := d.AST()
	if err != nil {
		return err
	}
	formatter.NewFormatter(w).FormatQueryDocument(doc)
	return nil
}
