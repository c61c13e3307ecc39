// Package naming provides the conventions used to derive column
// names from Go struct field names.
package naming

import (
	"sort"
	"strings"
	"unicode"
)

// Convention converts Go struct field names into column names.
type Convention interface {
	// Convert accepts the name of a Go struct field, and returns
	// the column name according to the convention.
	Convert(fieldName string) string

	// Join joins the converted names of a nested field and its
	// enclosing struct fields to form one column name.
	Join(frags []string) string
}

// Instances of the different naming conventions
var (
	Snake SnakeConvention
	Lower LowerConvention
	Same  SameConvention
)

var byName = map[string]Convention{
	"snake": Snake,
	"lower": Lower,
	"same":  Same,
}

// Lookup returns the convention with the given name, which
// is one of "snake", "lower" or "same".
func Lookup(name string) (Convention, bool) {
	c, ok := byName[strings.ToLower(name)]
	return c, ok
}

// Names returns the names accepted by Lookup, sorted.
func Names() []string {
	var names []string
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FieldName returns the identifier a Go field name stands for.
// A single trailing underscore is removed, so a field named "Type_"
// stands for "Type".
func FieldName(name string) string {
	if len(name) > 1 && strings.HasSuffix(name, "_") {
		return name[:len(name)-1]
	}
	return name
}

// SnakeConvention converts Go struct fields into "snake_case".
// So the field name "UserID" would be converted to "user_id".
type SnakeConvention struct{}

// Convert converts fieldName into snake_case.
func (SnakeConvention) Convert(name string) string {
	runes := []rune(name)
	n := len(runes)
	var sb strings.Builder

	for i := 0; i < n; i++ {
		if i > 0 && unicode.IsUpper(runes[i]) && ((i+1 < n && unicode.IsLower(runes[i+1])) || unicode.IsLower(runes[i-1])) {
			sb.WriteRune('_')
		}
		sb.WriteRune(unicode.ToLower(runes[i]))
	}

	return sb.String()
}

// Join joins together the names with underscores.
func (SnakeConvention) Join(names []string) string {
	return strings.Join(names, "_")
}

// LowerConvention converts field names to lower case.
type LowerConvention struct{}

// Convert converts the field name to lower case.
func (LowerConvention) Convert(fieldName string) string {
	return strings.ToLower(fieldName)
}

// Join joins together the names with no separating characters between them.
func (LowerConvention) Join(names []string) string {
	return strings.Join(names, "")
}

// SameConvention does not alter field names.
type SameConvention struct{}

// Convert returns fieldName unchanged.
func (SameConvention) Convert(fieldName string) string {
	return fieldName
}

// Join joins together the names with no separating characters between them.
func (SameConvention) Join(names []string) string {
	return strings.Join(names, "")
}
