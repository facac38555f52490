package types

import (
	"testing"

	"github.com/nasdf/gqlselect/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/ast"
)

const kitchenSink = `
type KitchenSink {
	int(value: Int): Int
	float(value: Float): Float
	string(value: String!): String
	id(value: ID): ID
	boolean(value: Boolean): Boolean
	intList(value: [Int!]!): [Int]
	nestedList(value: [[String]]): String
	role(value: Role): Role
	filter(value: Filter): String
	when(value: DateTime): DateTime
	json(value: JSON): String
}

enum Role { ADMIN }

input Filter { name: String }

scalar DateTime
scalar JSON
`

func TestGoType(t *testing.T) {
	s, err := schema.LoadString(kitchenSink)
	require.NoError(t, err)

	sys := NewSystem(s, map[string]Scalar{
		"DateTime": {Type: "time.Time", Import: "time"},
	})

	expect := map[string]string{
		"int":        "int64",
		"float":      "float64",
		"string":     "string",
		"id":         "string",
		"boolean":    "bool",
		"intList":    "[]int64",
		"nestedList": "[][]string",
		"role":       "Role",
		"filter":     "*Filter",
		"when":       "time.Time",
		"json":       "string",
	}
	for _, f := range s.Types["KitchenSink"].Fields {
		if f.Name == "__typename" {
			continue
		}
		arg := f.Arguments.ForName("value")
		require.NotNil(t, arg, f.Name)
		assert.Equal(t, expect[f.Name], sys.GoType(arg.Type), f.Name)
	}
	assert.Equal(t, []string{"time"}, sys.Imports())
}

func TestIsList(t *testing.T) {
	assert.True(t, IsList(ast.ListType(ast.NamedType("Int", nil), nil)))
	assert.False(t, IsList(ast.NamedType("Int", nil)))
}

func TestGoName(t *testing.T) {
	tests := map[string]string{
		"name":       "Name",
		"user_id":    "UserID",
		"id":         "ID",
		"createdAt":  "CreatedAt",
		"html_url":   "HTMLURL",
		"_private":   "Private",
		"__typename": "Typename",
		"_":          "X",
	}
	for in, out := range tests {
		assert.Equal(t, out, GoName(in), in)
	}
}

func TestEnumName(t *testing.T) {
	assert.Equal(t, "RoleAdmin", EnumName("Role", "ADMIN"))
	assert.Equal(t, "RoleSuperUser", EnumName("Role", "SUPER_USER"))
}
