package column

import (
	"strings"

	"github.com/jjeffery/rowmap/private/naming"
)

// Field contains the name of a StructField, and the associated
// column name specified in its StructTag, if any.
type Field struct {
	// FieldName is the name of the associated StructField.
	FieldName string

	// ColumnName is the column name from the struct tag, or
	// the empty string if the tag does not name the column.
	ColumnName string
}

// A Path contains all the StructFields traversed to reach a field.
// It is used to construct the column name, either from the names
// given in struct tags, or by applying a naming convention to the
// field names.
type Path []Field

// NewPath returns a new path with a single field.
func NewPath(fieldName, columnName string) Path {
	var path Path
	return path.Append(fieldName, columnName)
}

// Append details of a field to an existing path to create
// a new path. The original path is unchanged.
func (path Path) Append(fieldName, columnName string) Path {
	clone := make(Path, len(path), len(path)+1)
	copy(clone, path)
	return append(clone, Field{
		FieldName:  fieldName,
		ColumnName: columnName,
	})
}

// Equal reports whether path and other contain the same fields.
func (path Path) Equal(other Path) bool {
	if len(path) != len(other) {
		return false
	}
	for i, f := range path {
		if f != other[i] {
			return false
		}
	}
	return true
}

// ColumnName returns the column name for the path. Each element
// contributes its tag name if it has one, or else its field name
// converted by nc.
func (path Path) ColumnName(nc naming.Convention) string {
	if len(path) == 1 && path[0].ColumnName != "" {
		return path[0].ColumnName
	}
	frags := make([]string, 0, len(path))
	for _, f := range path {
		if f.ColumnName != "" {
			frags = append(frags, f.ColumnName)
			continue
		}
		frags = append(frags, nc.Convert(naming.FieldName(f.FieldName)))
	}
	return nc.Join(frags)
}

// String returns the Go selector for the path, eg "Address.Street".
func (path Path) String() string {
	names := make([]string, 0, len(path))
	for _, f := range path {
		names = append(names, f.FieldName)
	}
	return strings.Join(names, ".")
}
