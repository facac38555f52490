package query

import (
	"maps"
	"slices"
)

// Selection is an entry of a node selection set.
//
// The set of implementations is closed: a Selection is either a Field or a *Node.
type Selection interface {
	isSelection()
}

// Field is a plain field name selection.
type Field string

func (Field) isSelection() {}
func (*Node) isSelection() {}

// Argument is a single named argument of a node.
type Argument struct {
	// Name is the argument name.
	Name string
	// Value is the argument value. See FormatValue for the supported types.
	Value any
}

// Node is the renderable form of a selection object.
//
// A Node holds no references to the objects it was built from.
type Node struct {
	// Name is the field name or alias rendered for this node.
	Name string
	// Arguments is the ordered list of arguments.
	Arguments []Argument
	// Selections is the ordered selection set.
	Selections []Selection
}

// NewNode returns a new node with the given name and no selections.
func NewNode(name string) *Node {
	return &Node{Name: name}
}

// SetArguments replaces the arguments of the node.
func (n *Node) SetArguments(args []Argument) {
	n.Arguments = args
}

// SetArgumentMap replaces the arguments of the node with the entries of args sorted by name.
func (n *Node) SetArgumentMap(args map[string]any) {
	n.Arguments = make([]Argument, 0, len(args))
	for _, k := range slices.Sorted(maps.Keys(args)) {
		n.Arguments = append(n.Arguments, Argument{Name: k, Value: args[k]})
	}
}

// SetSelections replaces the selection set of the node.
func (n *Node) SetSelections(selections []Selection) {
	n.Selections = selections
}

// AddField appends field selections to the node.
func (n *Node) AddField(names ...string) {
	for _, name := range names {
		n.Selections = append(n.Selections, Field(name))
	}
}

// AddNode appends a nested node to the selection set.
func (n *Node) AddNode(child *Node) {
	n.Selections = append(n.Selections, child)
}
