package rowmap

import (
	"reflect"
	"strconv"

	"github.com/jjeffery/rowmap/private/matcher"
)

// Table binds the fields of the record type T to columns.
//
// A Table is immutable once created, and is safe for concurrent use.
type Table[T any] struct {
	typeName string
	specs    []FieldSpec
	addrs    []func(*T) interface{}
	plan     *matcher.Plan
}

// Field is a field of T and its column binding, for use with NewTable.
type Field[T any] struct {
	binding    Binding
	positional bool
	typ        reflect.Type
	path       string
	addr       func(*T) interface{}
}

func newField[T, V any](binding Binding, addr func(*T) *V) Field[T] {
	f := Field[T]{
		binding: binding,
		typ:     reflect.TypeFor[V](),
	}
	if addr != nil {
		f.addr = func(row *T) interface{} { return addr(row) }
	}
	return f
}

// Named returns a field bound to the column with the given name.
// The addr function returns the address of the field within a record.
func Named[T, V any](name string, addr func(*T) *V) Field[T] {
	return newField(ByName(name), addr)
}

// At returns a field bound to the column at position index.
func At[T, V any](index int, addr func(*T) *V) Field[T] {
	return newField(ByIndex(index), addr)
}

// Positional returns a field bound to the column whose position
// is the same as the field's position in the table.
func Positional[T, V any](addr func(*T) *V) Field[T] {
	f := newField(ByIndex(0), addr)
	f.positional = true
	return f
}

// WithPath returns a copy of f which is identified by path in error
// messages. The default path is the column name, or the column
// position in brackets.
func (f Field[T]) WithPath(path string) Field[T] {
	f.path = path
	return f
}

// NewTable returns a table for the fields, in order.
func NewTable[T any](fields ...Field[T]) (*Table[T], error) {
	tbl := &Table[T]{
		typeName: reflect.TypeFor[T]().String(),
		specs:    make([]FieldSpec, 0, len(fields)),
		addrs:    make([]func(*T) interface{}, 0, len(fields)),
	}
	for i, f := range fields {
		binding := f.binding
		if f.positional {
			binding = ByIndex(i)
		}
		path := f.path
		if path == "" {
			if binding.Named() {
				path = binding.Name()
			} else {
				path = "[" + strconv.Itoa(binding.Index()) + "]"
			}
		}
		if f.addr == nil {
			return nil, tbl.configError(path, "missing field address")
		}
		if binding.Named() && binding.Name() == "" {
			return nil, tbl.configError(path, "empty column name")
		}
		if !binding.Named() && binding.Index() < 0 {
			return nil, tbl.configError(path, "negative column index")
		}
		tbl.specs = append(tbl.specs, FieldSpec{
			Ordinal: i,
			Binding: binding,
			Type:    f.typ,
			Path:    path,
		})
		tbl.addrs = append(tbl.addrs, f.addr)
	}
	tbl.compile()
	return tbl, nil
}

// MustNewTable is like NewTable, but panics on error. It is
// intended for package level variables.
func MustNewTable[T any](fields ...Field[T]) *Table[T] {
	tbl, err := NewTable(fields...)
	if err != nil {
		panic(err)
	}
	return tbl
}

func (tbl *Table[T]) compile() {
	bindings := make([]Binding, len(tbl.specs))
	for i, spec := range tbl.specs {
		bindings[i] = spec.Binding
	}
	tbl.plan = matcher.Compile(bindings)
}

func (tbl *Table[T]) configError(field string, msg string) error {
	return &ConfigError{
		Type:  tbl.typeName,
		Field: field,
		Msg:   msg,
	}
}

// Len returns the number of fields in the table.
func (tbl *Table[T]) Len() int {
	return len(tbl.specs)
}

// Fields returns a description of each field in the table.
func (tbl *Table[T]) Fields() []FieldSpec {
	return append([]FieldSpec(nil), tbl.specs...)
}
