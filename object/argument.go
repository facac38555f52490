package object

import (
	"slices"

	"github.com/nasdf/gqlselect/optional"
)

// Argument declares an argument eligible field of a query or input object.
type Argument interface {
	// ArgumentName returns the name of the argument.
	ArgumentName() string
	// Empty reports whether the argument is left out of the query.
	Empty() bool
	// ArgumentValue returns the current value of the argument.
	ArgumentValue() any
}

// Arg is a single valued argument.
//
// An Arg is empty when it is unset or set to the zero value of T with Set.
// This covers empty strings, zero numbers, false and nil pointers.
// Use SetExplicit to send a zero value.
type Arg[T comparable] struct {
	name  string
	value optional.Option[T]
}

// NewArg returns a new unset argument with the given name.
func NewArg[T comparable](name string) *Arg[T] {
	return &Arg[T]{name: name}
}

func (a *Arg[T]) ArgumentName() string {
	return a.name
}

// Set assigns the argument value.
func (a *Arg[T]) Set(v T) {
	a.value = optional.NonZero(v)
}

// SetExplicit assigns the argument value and keeps it even when it is the zero value of T.
func (a *Arg[T]) SetExplicit(v T) {
	a.value = optional.Some(v)
}

// Unset clears the argument value.
func (a *Arg[T]) Unset() {
	a.value = optional.None[T]()
}

// Get returns the argument value and whether it is set.
func (a *Arg[T]) Get() (T, bool) {
	return a.value.Get(), a.value.IsSet()
}

func (a *Arg[T]) Empty() bool {
	return !a.value.IsSet()
}

func (a *Arg[T]) ArgumentValue() any {
	return a.value.Get()
}

// ListArg is a list valued argument. A ListArg is empty when it has no elements.
type ListArg[T any] struct {
	name   string
	values []T
}

// NewListArg returns a new empty list argument with the given name.
func NewListArg[T any](name string) *ListArg[T] {
	return &ListArg[T]{name: name}
}

func (a *ListArg[T]) ArgumentName() string {
	return a.name
}

// Set replaces the argument values.
func (a *ListArg[T]) Set(values ...T) {
	a.values = slices.Clone(values)
}

// Append adds values to the argument.
func (a *ListArg[T]) Append(values ...T) {
	a.values = append(a.values, values...)
}

// Unset removes all values.
func (a *ListArg[T]) Unset() {
	a.values = nil
}

// Values returns a copy of the argument values.
func (a *ListArg[T]) Values() []T {
	return slices.Clone(a.values)
}

func (a *ListArg[T]) Empty() bool {
	return len(a.values) == 0
}

func (a *ListArg[T]) ArgumentValue() any {
	out := make([]any, len(a.values))
	for i, v := range a.values {
		out[i] = v
	}
	return out
}
