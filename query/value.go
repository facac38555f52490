package query

import (
	"bytes"
	"encoding"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/99designs/gqlgen/graphql"
	"github.com/ipld/go-ipld-prime/datamodel"
	"github.com/vektah/gqlparser/v2/ast"
)

// Enum is implemented by values rendered as bare enum names.
type Enum interface {
	EnumValue() string
}

// Variable is a reference to an operation variable and is rendered as $name.
type Variable string

// ObjectField is a single entry of an Object.
type ObjectField struct {
	Name  string
	Value any
}

// Object is an ordered input object literal.
type Object []ObjectField

// Get returns the value of the named field.
func (o Object) Get(name string) (any, bool) {
	for _, f := range o {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// UnsupportedValueError is returned when a value has no literal form.
type UnsupportedValueError struct {
	Value any
}

func (e *UnsupportedValueError) Error() string {
	return fmt.Sprintf("unsupported argument value of type %T", e.Value)
}

// literal is a value reduced to one of the literal kinds of the query language.
type literal struct {
	kind ast.ValueKind
	// raw is the literal text, unescaped for string values and without the $ for variables.
	raw      string
	children []childLiteral
}

type childLiteral struct {
	name  string
	value literal
}

// FormatValue returns the literal text of the given value.
//
// Strings are quoted, numbers and booleans are bare, Enum values are bare names,
// slices become lists, Object and string keyed maps become object literals.
// Values implementing graphql.Marshaler are written with MarshalGQL, values
// implementing encoding.TextMarshaler or fmt.Stringer become strings and
// datamodel.Node values are rendered by kind.
func FormatValue(v any) (string, error) {
	var b strings.Builder
	err := writeValue(&b, v)
	return b.String(), err
}

func writeValue(b *strings.Builder, v any) error {
	lit, err := newLiteral(v)
	if err != nil {
		b.WriteString("null")
		return err
	}
	lit.write(b)
	return nil
}

func (l literal) write(b *strings.Builder) {
	switch l.kind {
	case ast.StringValue, ast.BlockValue:
		graphql.MarshalString(l.raw).MarshalGQL(b)
	case ast.Variable:
		b.WriteString("$")
		b.WriteString(l.raw)
	case ast.ListValue:
		b.WriteString("[")
		for i, c := range l.children {
			if i > 0 {
				b.WriteString(", ")
			}
			c.value.write(b)
		}
		b.WriteString("]")
	case ast.ObjectValue:
		b.WriteString("{")
		for i, c := range l.children {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(c.name)
			b.WriteString(": ")
			c.value.write(b)
		}
		b.WriteString("}")
	default:
		b.WriteString(l.raw)
	}
}

func (l literal) ast() *ast.Value {
	value := &ast.Value{
		Kind: l.kind,
		Raw:  l.raw,
	}
	for _, c := range l.children {
		value.Children = append(value.Children, &ast.ChildValue{
			Name:  c.name,
			Value: c.value.ast(),
		})
	}
	return value
}

var nullLiteral = literal{kind: ast.NullValue, raw: "null"}

func stringLiteral(s string) literal {
	return literal{kind: ast.StringValue, raw: s}
}

func marshaledLiteral(kind ast.ValueKind, m graphql.Marshaler) literal {
	var buf bytes.Buffer
	m.MarshalGQL(&buf)
	return literal{kind: kind, raw: buf.String()}
}

func newLiteral(v any) (literal, error) {
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nullLiteral, nil
	}
	switch t := v.(type) {
	case nil:
		return nullLiteral, nil
	case Variable:
		return literal{kind: ast.Variable, raw: string(t)}, nil
	case Enum:
		name := t.EnumValue()
		if name == "" {
			return literal{}, &UnsupportedValueError{Value: v}
		}
		return literal{kind: ast.EnumValue, raw: name}, nil
	case Object:
		return objectLiteral(t)
	case datamodel.Node:
		return nodeLiteral(t)
	case graphql.Marshaler:
		return marshalerLiteral(t)
	case string:
		return stringLiteral(t), nil
	case bool:
		return marshaledLiteral(ast.BooleanValue, graphql.MarshalBoolean(t)), nil
	case int:
		return marshaledLiteral(ast.IntValue, graphql.MarshalInt64(int64(t))), nil
	case int32:
		return marshaledLiteral(ast.IntValue, graphql.MarshalInt64(int64(t))), nil
	case int64:
		return marshaledLiteral(ast.IntValue, graphql.MarshalInt64(t)), nil
	case uint64:
		return marshaledLiteral(ast.IntValue, graphql.MarshalUint64(t)), nil
	case float64:
		return floatLiteral(t)
	case float32:
		return floatLiteral(float64(t))
	case []byte:
		return stringLiteral(base64.StdEncoding.EncodeToString(t)), nil
	case []any:
		return listLiteral(t)
	case map[string]any:
		return mapLiteral(t)
	case encoding.TextMarshaler:
		text, err := t.MarshalText()
		if err != nil {
			return literal{}, err
		}
		return stringLiteral(string(text)), nil
	case fmt.Stringer:
		return stringLiteral(t.String()), nil
	}
	return reflectLiteral(v, reflect.ValueOf(v))
}

func floatLiteral(f float64) (literal, error) {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return literal{}, &UnsupportedValueError{Value: f}
	}
	lit := marshaledLiteral(ast.FloatValue, graphql.MarshalFloat(f))
	lit.kind = numberKind(lit.raw)
	return lit, nil
}

// numberKind reports whether the number text is a float or an int literal.
func numberKind(raw string) ast.ValueKind {
	if strings.ContainsAny(raw, ".eE") {
		return ast.FloatValue
	}
	return ast.IntValue
}

// marshalerLiteral classifies the output of a custom scalar marshaler.
func marshalerLiteral(m graphql.Marshaler) (literal, error) {
	var buf bytes.Buffer
	m.MarshalGQL(&buf)
	raw := strings.TrimSpace(buf.String())
	switch {
	case raw == "null":
		return nullLiteral, nil
	case raw == "true" || raw == "false":
		return literal{kind: ast.BooleanValue, raw: raw}, nil
	case strings.HasPrefix(raw, `"`):
		var s string
		if err := json.Unmarshal([]byte(raw), &s); err != nil {
			return literal{}, err
		}
		return stringLiteral(s), nil
	case raw != "" && (raw[0] == '-' || (raw[0] >= '0' && raw[0] <= '9')):
		if _, err := strconv.ParseFloat(raw, 64); err != nil {
			return literal{}, &UnsupportedValueError{Value: m}
		}
		return literal{kind: numberKind(raw), raw: raw}, nil
	default:
		return literal{}, &UnsupportedValueError{Value: m}
	}
}

func objectLiteral(o Object) (literal, error) {
	lit := literal{kind: ast.ObjectValue}
	for _, f := range o {
		value, err := newLiteral(f.Value)
		if err != nil {
			return literal{}, err
		}
		lit.children = append(lit.children, childLiteral{name: f.Name, value: value})
	}
	return lit, nil
}

func listLiteral(items []any) (literal, error) {
	lit := literal{kind: ast.ListValue}
	for _, item := range items {
		value, err := newLiteral(item)
		if err != nil {
			return literal{}, err
		}
		lit.children = append(lit.children, childLiteral{value: value})
	}
	return lit, nil
}

func mapLiteral(m map[string]any) (literal, error) {
	o := make(Object, 0, len(m))
	for _, k := range slices.Sorted(maps.Keys(m)) {
		o = append(o, ObjectField{Name: k, Value: m[k]})
	}
	return objectLiteral(o)
}

func reflectLiteral(v any, rv reflect.Value) (literal, error) {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nullLiteral, nil
		}
		return newLiteral(rv.Elem().Interface())
	case reflect.String:
		return stringLiteral(rv.String()), nil
	case reflect.Bool:
		return marshaledLiteral(ast.BooleanValue, graphql.MarshalBoolean(rv.Bool())), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return marshaledLiteral(ast.IntValue, graphql.MarshalInt64(rv.Int())), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return marshaledLiteral(ast.IntValue, graphql.MarshalUint64(rv.Uint())), nil
	case reflect.Float32, reflect.Float64:
		return floatLiteral(rv.Float())
	case reflect.Slice, reflect.Array:
		items := make([]any, rv.Len())
		for i := range items {
			items[i] = rv.Index(i).Interface()
		}
		return listLiteral(items)
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return literal{}, &UnsupportedValueError{Value: v}
		}
		m := make(map[string]any, rv.Len())
		for iter := rv.MapRange(); iter.Next(); {
			m[iter.Key().String()] = iter.Value().Interface()
		}
		return mapLiteral(m)
	default:
		return literal{}, &UnsupportedValueError{Value: v}
	}
}
