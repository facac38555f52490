package object

import (
	"fmt"
	"strings"
)

// EmptySelectionSetError is returned when an object without selections is built.
type EmptySelectionSetError struct {
	// TypeName is the schema type name of the object.
	TypeName string
	// Alias is the rendered name of the object.
	Alias string
}

func (e *EmptySelectionSetError) Error() string {
	if e.Alias != "" && e.Alias != e.TypeName {
		return fmt.Sprintf("empty selection set for %s (%s)", e.TypeName, e.Alias)
	}
	return fmt.Sprintf("empty selection set for %s", e.TypeName)
}

// CyclicSelectionError is returned when an object is selected by one of its own descendants.
type CyclicSelectionError struct {
	// TypeName is the schema type name of the object selected twice.
	TypeName string
	// Path contains the type names from the root object to the repeated object.
	Path []string
}

func (e *CyclicSelectionError) Error() string {
	return fmt.Sprintf("cyclic selection of %s: %s", e.TypeName, strings.Join(e.Path, " -> "))
}
