package rowmap

import (
	"github.com/jjeffery/kv"
)

// MissingColumnError is returned when a field is bound to a
// column name that does not appear in the row.
type MissingColumnError struct {
	Column string // column name
	Field  string // field path
}

func (e *MissingColumnError) Error() string {
	return "missing column " + kv.List{"column", e.Column, "field", e.Field}.String()
}

// DecodeError is returned when the value at a column position
// cannot be decoded into its field.
type DecodeError struct {
	Field  string // field path
	Index  int    // column position
	Column string // column name, empty when Index is out of range
	Err    error  // error from the row
}

func (e *DecodeError) Error() string {
	keyvals := kv.List{"field", e.Field, "index", e.Index}
	if e.Column != "" {
		keyvals = append(keyvals, "column", e.Column)
	}
	return "cannot decode column " + keyvals.String() + ": " + e.Err.Error()
}

// Unwrap returns the error reported by the row.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ConfigError is returned when a table cannot be built because
// the binding for a field is invalid.
type ConfigError struct {
	Type  string // record type
	Field string // field path, empty if the error is not for one field
	Msg   string
}

func (e *ConfigError) Error() string {
	keyvals := kv.List{"type", e.Type}
	if e.Field != "" {
		keyvals = append(keyvals, "field", e.Field)
	}
	return "invalid column binding " + keyvals.String() + ": " + e.Msg
}
