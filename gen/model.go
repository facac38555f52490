package gen

import (
	"fmt"
	"slices"
	"strings"

	"github.com/nasdf/gqlselect/schema"
	"github.com/nasdf/gqlselect/types"

	"github.com/vektah/gqlparser/v2/ast"
	"go.uber.org/zap"
)

const (
	rootQueryName  = "RootQuery"
	rootQueryAlias = "query"
	querySuffix    = "Query"
	argsSuffix     = "Arguments"
)

// file is the template model of a generated file.
type file struct {
	Package    string
	Imports    []string
	UsesObject bool
	Enums      []enumType
	Inputs     []inputType
	Arguments  []inputType
	Objects    []objectType
}

type enumType struct {
	Name        string
	GraphQLName string
	Values      []enumValue
}

type enumValue struct {
	Const string
	Value string
}

// inputType is an input object or the arguments of a single field.
type inputType struct {
	Name        string
	GraphQLName string
	Fields      []argField
}

type argField struct {
	// Field is the Go struct field name.
	Field string
	// Name is the GraphQL name.
	Name string
	// Type is the Go element type.
	Type string
	// List is set for list values.
	List bool
}

// FieldType returns the descriptor type of the field.
func (f argField) FieldType() string {
	if f.List {
		return fmt.Sprintf("*object.ListArg[%s]", f.Type)
	}
	return fmt.Sprintf("*object.Arg[%s]", f.Type)
}

// Constructor returns the expression creating the descriptor of the field.
func (f argField) Constructor() string {
	if f.List {
		return fmt.Sprintf("object.NewListArg[%s](%q)", f.Type, f.Name)
	}
	return fmt.Sprintf("object.NewArg[%s](%q)", f.Type, f.Name)
}

// SetterParam returns the parameter list of the field setter.
func (f argField) SetterParam() string {
	if f.List {
		return "v ..." + f.Type
	}
	return "v " + f.Type
}

// SetterArg returns the argument passed to Set by the field setter.
func (f argField) SetterArg() string {
	if f.List {
		return "v..."
	}
	return "v"
}

type objectType struct {
	Name        string
	GraphQLName string
	Root        bool
	Fields      []selectField
}

type selectField struct {
	Method string
	Name   string
	Leaf   bool
	// Child is the Go type of the nested query object.
	Child string
	// Arguments is the Go type of the field arguments.
	Arguments string
}

type modelBuilder struct {
	schema *ast.Schema
	system *types.System
	file   file
}

func buildModel(cfg Config, s *ast.Schema) (file, error) {
	b := &modelBuilder{
		schema: s,
		system: types.NewSystem(s, cfg.Scalars),
		file:   file{Package: cfg.Package},
	}
	for _, d := range schema.Definitions(s, ast.Enum) {
		b.addEnum(d)
	}
	for _, d := range schema.Definitions(s, ast.InputObject) {
		b.addInput(d)
	}
	for _, d := range schema.Definitions(s, ast.Object, ast.Interface) {
		if schema.IsRoot(s, d) && d != s.Query {
			zap.L().Debug("skipping operation root type", zap.String("type", d.Name))
			continue
		}
		if err := b.addObject(d); err != nil {
			return file{}, err
		}
	}
	b.file.Imports = b.system.Imports()
	b.file.UsesObject = len(b.file.Inputs) > 0 || len(b.file.Objects) > 0
	return b.file, nil
}

func (b *modelBuilder) addEnum(d *ast.Definition) {
	enum := enumType{
		Name:        types.GoName(d.Name),
		GraphQLName: d.Name,
	}
	for _, v := range d.EnumValues {
		enum.Values = append(enum.Values, enumValue{
			Const: types.EnumName(d.Name, v.Name),
			Value: v.Name,
		})
	}
	b.file.Enums = append(b.file.Enums, enum)
}

func (b *modelBuilder) addInput(d *ast.Definition) {
	input := inputType{
		Name:        types.GoName(d.Name),
		GraphQLName: d.Name,
	}
	for _, f := range d.Fields {
		input.Fields = append(input.Fields, b.argField(f.Name, f.Type))
	}
	b.file.Inputs = append(b.file.Inputs, input)
}

func (b *modelBuilder) argField(name string, t *ast.Type) argField {
	field := argField{
		Field: types.GoName(name),
		Name:  name,
		List:  types.IsList(t),
	}
	if field.List {
		field.Type = b.system.GoType(t.Elem)
	} else {
		field.Type = b.system.GoType(t)
	}
	return field
}

func (b *modelBuilder) objectName(d *ast.Definition) string {
	if d == b.schema.Query {
		return rootQueryName
	}
	return types.GoName(d.Name) + querySuffix
}

func (b *modelBuilder) addObject(d *ast.Definition) error {
	obj := objectType{
		Name:        b.objectName(d),
		GraphQLName: d.Name,
		Root:        d == b.schema.Query,
	}
	methods := make(map[string]string)
	for _, f := range d.Fields {
		if strings.HasPrefix(f.Name, "__") {
			continue
		}
		field, ok := b.selectField(d, f)
		if !ok {
			continue
		}
		if other, exists := methods[field.Method]; exists {
			return fmt.Errorf("%s: fields %s and %s both map to %s", d.Name, other, f.Name, field.Method)
		}
		methods[field.Method] = f.Name
		obj.Fields = append(obj.Fields, field)
	}
	b.file.Objects = append(b.file.Objects, obj)
	return nil
}

func (b *modelBuilder) selectField(parent *ast.Definition, f *ast.FieldDefinition) (selectField, bool) {
	field := selectField{
		Method: "Select" + types.GoName(f.Name),
		Name:   f.Name,
	}
	d := b.schema.Types[f.Type.Name()]
	if d == nil {
		return selectField{}, false
	}
	switch d.Kind {
	case ast.Scalar, ast.Enum:
		field.Leaf = true
		return field, true
	case ast.Object, ast.Interface:
		if schema.IsRoot(b.schema, d) {
			zap.L().Debug("skipping root type field", zap.String("type", parent.Name), zap.String("field", f.Name))
			return selectField{}, false
		}
		field.Child = b.objectName(d)
	default:
		zap.L().Debug("skipping unsupported field", zap.String("type", parent.Name), zap.String("field", f.Name), zap.String("kind", string(d.Kind)))
		return selectField{}, false
	}
	if len(f.Arguments) == 0 {
		return field, true
	}
	args := inputType{
		Name:        types.GoName(parent.Name) + types.GoName(f.Name) + argsSuffix,
		GraphQLName: parent.Name + "." + f.Name,
	}
	if parent == b.schema.Query {
		args.Name = types.GoName(f.Name) + argsSuffix
	}
	for _, a := range f.Arguments {
		args.Fields = append(args.Fields, b.argField(a.Name, a.Type))
	}
	if slices.ContainsFunc(b.file.Arguments, func(o inputType) bool { return o.Name == args.Name }) {
		args.Name = types.GoName(parent.Name) + args.Name
	}
	b.file.Arguments = append(b.file.Arguments, args)
	field.Arguments = args.Name
	return field, true
}
