package schema

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

// Load parses and validates the given schema sources.
//
// The built in prelude is always included.
func Load(sources ...*ast.Source) (*ast.Schema, error) {
	s, err := gqlparser.LoadSchema(sources...)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// LoadString parses and validates a single schema document.
func LoadString(input string) (*ast.Schema, error) {
	return Load(&ast.Source{Name: "schema.graphql", Input: input})
}

// LoadFiles reads, parses and validates the schema files at the given paths.
func LoadFiles(paths ...string) (*ast.Schema, error) {
	sources := make([]*ast.Source, len(paths))
	for i, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("failed to read schema %s: %w", p, err)
		}
		sources[i] = &ast.Source{Name: p, Input: string(data)}
	}
	return Load(sources...)
}

// Definitions returns the user defined types of the given kinds sorted by name.
//
// Introspection types and built in scalars are never included.
func Definitions(s *ast.Schema, kinds ...ast.DefinitionKind) []*ast.Definition {
	var defs []*ast.Definition
	for _, d := range s.Types {
		if d.BuiltIn || strings.HasPrefix(d.Name, "__") {
			continue
		}
		if slices.Contains(kinds, d.Kind) {
			defs = append(defs, d)
		}
	}
	slices.SortFunc(defs, func(a, b *ast.Definition) int {
		return strings.Compare(a.Name, b.Name)
	})
	return defs
}

// IsRoot reports whether the definition is one of the schema operation root types.
func IsRoot(s *ast.Schema, d *ast.Definition) bool {
	return d == s.Query || d == s.Mutation || d == s.Subscription
}
