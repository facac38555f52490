package query

import (
	"fmt"
	"io"
	"strings"
)

// Render returns the query text of the node.
//
// The first argument without a literal form fails the render.
func (n *Node) Render() (string, error) {
	var b strings.Builder
	if err := n.write(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

// String returns the query text of the node.
//
// Arguments without a literal form are rendered as null.
func (n *Node) String() string {
	var b strings.Builder
	_ = n.write(&b)
	return b.String()
}

// WriteTo writes the query text of the node to w.
func (n *Node) WriteTo(w io.Writer) (int64, error) {
	out, err := n.Render()
	if err != nil {
		return 0, err
	}
	c, err := io.WriteString(w, out)
	return int64(c), err
}

func (n *Node) write(b *strings.Builder) error {
	var first error
	b.WriteString(n.Name)
	if len(n.Arguments) > 0 {
		b.WriteString("(")
		for i, arg := range n.Arguments {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(arg.Name)
			b.WriteString(": ")
			err := writeValue(b, arg.Value)
			if err != nil && first == nil {
				first = fmt.Errorf("%s argument %s: %w", n.Name, arg.Name, err)
			}
		}
		b.WriteString(")")
	}
	b.WriteString(" ")
	if err := writeSelections(b, n.Selections); err != nil && first == nil {
		first = err
	}
	return first
}

func writeSelections(b *strings.Builder, selections []Selection) error {
	var first error
	b.WriteString("{")
	for _, s := range selections {
		b.WriteString(" ")
		switch v := s.(type) {
		case Field:
			b.WriteString(string(v))
		case *Node:
			if err := v.write(b); err != nil && first == nil {
				first = err
			}
		}
	}
	b.WriteString(" }")
	return first
}
