package rowmap

import (
	"reflect"

	"github.com/jjeffery/rowmap/private/matcher"
)

// Binding identifies the column bound to a field: either a
// fixed column position or a column name to be resolved.
type Binding = matcher.Binding

// ByName returns a binding to the column with the given name.
func ByName(name string) Binding {
	return matcher.ByName(name)
}

// ByIndex returns a binding to the column at a fixed position.
func ByIndex(index int) Binding {
	return matcher.ByIndex(index)
}

// FieldSpec describes one field of a table.
type FieldSpec struct {
	// Ordinal is the position of the field within the table.
	Ordinal int

	// Binding is the column bound to the field.
	Binding Binding

	// Type is the declared Go type of the field.
	Type reflect.Type

	// Path identifies the field in error messages. For tables
	// built by reflection it is the Go selector, eg "Home.Street".
	Path string
}
