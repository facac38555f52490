package types

import (
	"slices"
	"strings"
	"unicode"

	"github.com/vektah/gqlparser/v2/ast"
)

// Scalar maps a custom GraphQL scalar to a Go type.
type Scalar struct {
	// Type is the Go type expression, for example time.Time.
	Type string `yaml:"type"`
	// Import is the import path of the package declaring Type.
	Import string `yaml:"import"`
}

// builtinScalars contains the Go types of the built in scalars.
var builtinScalars = map[string]string{
	"Int":     "int64",
	"Float":   "float64",
	"String":  "string",
	"ID":      "string",
	"Boolean": "bool",
}

// initialisms are name parts rendered in upper case.
var initialisms = map[string]bool{
	"api":  true,
	"html": true,
	"http": true,
	"id":   true,
	"json": true,
	"sql":  true,
	"uri":  true,
	"url":  true,
	"uuid": true,
}

// System resolves GraphQL types of a schema to Go types.
type System struct {
	schema  *ast.Schema
	scalars map[string]Scalar
	imports map[string]struct{}
}

// NewSystem returns a new System for the given schema and custom scalar mapping.
func NewSystem(s *ast.Schema, scalars map[string]Scalar) *System {
	return &System{
		schema:  s,
		scalars: scalars,
		imports: make(map[string]struct{}),
	}
}

// GoType returns the Go type used for values of the given GraphQL type.
//
// Non null markers are ignored: emptiness of an argument decides whether it is sent.
func (s *System) GoType(t *ast.Type) string {
	if t.Elem != nil {
		return "[]" + s.GoType(t.Elem)
	}
	if typ, ok := builtinScalars[t.NamedType]; ok {
		return typ
	}
	d := s.schema.Types[t.NamedType]
	if d == nil {
		return "string"
	}
	switch d.Kind {
	case ast.Enum:
		return GoName(d.Name)
	case ast.InputObject:
		return "*" + GoName(d.Name)
	case ast.Scalar:
		scalar, ok := s.scalars[d.Name]
		if !ok || scalar.Type == "" {
			return "string"
		}
		if scalar.Import != "" {
			s.imports[scalar.Import] = struct{}{}
		}
		return scalar.Type
	default:
		return "string"
	}
}

// IsList reports whether the type is a list type.
func IsList(t *ast.Type) bool {
	return t.Elem != nil
}

// Imports returns the sorted import paths of all custom scalar types resolved so far.
func (s *System) Imports() []string {
	out := make([]string, 0, len(s.imports))
	for p := range s.imports {
		out = append(out, p)
	}
	slices.Sort(out)
	return out
}

// GoName returns the exported Go identifier for a GraphQL name.
//
// Underscore separated parts are joined in camel case and known initialisms are upper cased.
func GoName(name string) string {
	var b strings.Builder
	for _, part := range strings.Split(name, "_") {
		if part == "" {
			continue
		}
		if initialisms[strings.ToLower(part)] {
			b.WriteString(strings.ToUpper(part))
			continue
		}
		r := []rune(part)
		r[0] = unicode.ToUpper(r[0])
		b.WriteString(string(r))
	}
	if b.Len() == 0 {
		return "X"
	}
	return b.String()
}

// EnumName returns the Go constant name for an enum value.
func EnumName(enum, value string) string {
	return GoName(enum) + GoName(strings.ToLower(value))
}
