package gen

import (
	"context"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"github.com/nasdf/gqlselect/schema"
	"github.com/nasdf/gqlselect/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `
scalar DateTime

enum Role {
	ADMIN
	USER
}

input PostFilter {
	title: String
	tags: [String!]
	and: [PostFilter!]
	after: DateTime
}

interface Node {
	id: ID!
}

type User implements Node {
	id: ID!
	name: String
	role: Role
	posts(first: Int, where: PostFilter): [Post!]!
}

type Post implements Node {
	id: ID!
	title: String!
	author: User!
	created: DateTime
}

union SearchResult = User | Post

type Query {
	user(id: ID!): User
	users(roles: [Role!]): [User!]!
	search(text: String!): [SearchResult!]!
	node(id: ID!): Node
}

type Mutation {
	createUser(name: String!): User
}
`

var testConfig = Config{
	Package: "blog",
	Output:  "blog_gen.go",
	Schema:  []string{"schema.graphql"},
	Scalars: map[string]types.Scalar{
		"DateTime": {Type: "time.Time", Import: "time"},
	},
}

// declarations returns the names of the top level types and the methods per receiver.
func declarations(t *testing.T, src []byte) (map[string]bool, map[string][]string) {
	t.Helper()
	f, err := parser.ParseFile(token.NewFileSet(), "blog_gen.go", src, 0)
	require.NoError(t, err)

	typeNames := make(map[string]bool)
	methods := make(map[string][]string)
	for _, decl := range f.Decls {
		switch d := decl.(type) {
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				if ts, ok := spec.(*ast.TypeSpec); ok {
					typeNames[ts.Name.Name] = true
				}
			}
		case *ast.FuncDecl:
			if d.Recv == nil {
				methods[""] = append(methods[""], d.Name.Name)
				continue
			}
			recv := d.Recv.List[0].Type
			if star, ok := recv.(*ast.StarExpr); ok {
				recv = star.X
			}
			name := recv.(*ast.Ident).Name
			methods[name] = append(methods[name], d.Name.Name)
		}
	}
	return typeNames, methods
}

func TestGenerate(t *testing.T) {
	s, err := schema.LoadString(testSchema)
	require.NoError(t, err)

	src, err := Generate(testConfig, s)
	require.NoError(t, err)

	typeNames, methods := declarations(t, src)

	for _, name := range []string{
		"Role",
		"PostFilter",
		"UserArguments",
		"UsersArguments",
		"NodeArguments",
		"UserPostsArguments",
		"RootQuery",
		"UserQuery",
		"PostQuery",
		"NodeQuery",
	} {
		assert.True(t, typeNames[name], "missing type %s", name)
	}
	assert.False(t, typeNames["MutationQuery"])
	assert.False(t, typeNames["SearchResultQuery"])

	assert.ElementsMatch(t, []string{"SelectUser", "SelectUsers", "SelectNode"}, methods["RootQuery"])
	assert.ElementsMatch(t, []string{"SelectID", "SelectName", "SelectRole", "SelectPosts"}, methods["UserQuery"])
	assert.ElementsMatch(t, []string{"SelectID", "SelectTitle", "SelectAuthor", "SelectCreated"}, methods["PostQuery"])
	assert.ElementsMatch(t, []string{"SetTitle", "SetTags", "SetAnd", "SetAfter"}, methods["PostFilter"])
	assert.ElementsMatch(t, []string{"SetFirst", "SetWhere", "arguments"}, methods["UserPostsArguments"])
	assert.ElementsMatch(t, []string{"EnumValue"}, methods["Role"])
	assert.Contains(t, methods[""], "NewRootQuery")
	assert.Contains(t, methods[""], "NewUserQuery")
	assert.Contains(t, methods[""], "NewPostFilter")

	out := string(src)
	assert.Contains(t, out, "// Code generated by gqlselect. DO NOT EDIT.")
	assert.Contains(t, out, `"time"`)
	assert.Contains(t, out, `"github.com/nasdf/gqlselect/object"`)
	assert.Contains(t, out, `RoleAdmin Role = "ADMIN"`)
	assert.Contains(t, out, `object.New("Query", "query")`)
	assert.Contains(t, out, `After *object.Arg[time.Time]`)
	assert.Contains(t, out, `And   *object.ListArg[*PostFilter]`)
	assert.Contains(t, out, `Where *object.Arg[*PostFilter]`)
	assert.Contains(t, out, `Roles *object.ListArg[Role]`)
	assert.Contains(t, out, `func (q *UserQuery) SelectPosts(args *UserPostsArguments) *PostQuery`)
	assert.Contains(t, out, `func (q *PostQuery) SelectAuthor() *UserQuery`)
}

func TestGenerateDeterministic(t *testing.T) {
	s, err := schema.LoadString(testSchema)
	require.NoError(t, err)

	first, err := Generate(testConfig, s)
	require.NoError(t, err)
	second, err := Generate(testConfig, s)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestGenerateMethodConflict(t *testing.T) {
	s, err := schema.LoadString(`
type Query {
	user_id: ID
	user__id: ID
}
`)
	require.NoError(t, err)

	_, err = Generate(testConfig, s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "both map to SelectUserID")
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "schema.graphql")
	require.NoError(t, os.WriteFile(schemaPath, []byte(testSchema), 0o644))

	cfg := testConfig
	cfg.Schema = []string{schemaPath}
	cfg.Output = filepath.Join(dir, "blog", "blog_gen.go")

	require.NoError(t, Run(context.Background(), cfg))

	src, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)
	typeNames, _ := declarations(t, src)
	assert.True(t, typeNames["RootQuery"])
}

func TestRunCanceled(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "schema.graphql")
	require.NoError(t, os.WriteFile(schemaPath, []byte(testSchema), 0o644))

	cfg := testConfig
	cfg.Schema = []string{schemaPath}
	cfg.Output = filepath.Join(dir, "blog_gen.go")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, Run(ctx, cfg), context.Canceled)
	assert.NoFileExists(t, cfg.Output)
}
