package query

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

func TestDocument(t *testing.T) {
	user := NewNode("user")
	user.SetArguments([]Argument{{Name: "id", Value: Variable("id")}})
	user.AddField("name")

	viewer := NewNode("viewer")
	viewer.AddField("login")

	doc := NewDocument(user, viewer)
	assert.Equal(t, "query { user(id: $id) { name } viewer { login } }", doc.String())

	doc.Name = "Users"
	out, err := doc.Render()
	require.NoError(t, err)
	assert.Equal(t, "query Users { user(id: $id) { name } viewer { login } }", out)

	parsed, err := parser.ParseQuery(&ast.Source{Input: out})
	require.NoError(t, err)
	require.Len(t, parsed.Operations, 1)
	assert.Equal(t, "Users", parsed.Operations[0].Name)
}

func TestDocumentZeroOperation(t *testing.T) {
	doc := &Document{Selections: []Selection{Field("version")}}
	assert.Equal(t, "query { version }", doc.String())

	qd, err := doc.AST()
	require.NoError(t, err)
	require.Len(t, qd.Operations, 1)
	assert.Equal(t, ast.Query, qd.Operations[0].Operation)
}

func TestDocumentFormat(t *testing.T) {
	doc := NewDocument(NewNode("viewer"))
	doc.Name = "Viewer"
	doc.Selections[0].(*Node).AddField("login")

	var b strings.Builder
	require.NoError(t, doc.Format(&b))
	assert.Contains(t, b.String(), "Viewer")
	assert.Contains(t, b.String(), "login")
}

func TestDocumentRenderUnsupported(t *testing.T) {
	user := NewNode("user")
	user.SetArguments([]Argument{{Name: "id", Value: func() {}}})
	user.AddField("name")

	doc := NewDocument(user)
	out, err := doc.Render()
	var target *UnsupportedValueError
	require.ErrorAs(t, err, &target)
	assert.Empty(t, out)
	assert.Equal(t, "query { user(id: null) { name } }", doc.String())
}
