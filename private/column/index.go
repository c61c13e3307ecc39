package column

import (
	"reflect"
)

// Index locates a field within a structure. In most cases an index
// is a single integer, which is the index of the field in the
// structure. Fields of embedded structs have an index of more
// than one integer.
type Index []int

// NewIndex returns an index with the specified values.
func NewIndex(vals ...int) Index {
	return Index(vals)
}

// Append a number to an existing index to create
// a new index. The original index ix is unchanged.
//
// If ix is nil, then Append returns an index
// with a single index value.
func (ix Index) Append(index int) Index {
	clone := ix.Clone()
	return append(clone, index)
}

// Clone creates a deep copy of ix.
func (ix Index) Clone() Index {
	// capacity for the append that usually follows
	clone := make(Index, len(ix), len(ix)+1)
	copy(clone, ix)
	return clone
}

// Equal returns true if ix is equal to v.
func (ix Index) Equal(v Index) bool {
	if len(ix) != len(v) {
		return false
	}
	for i := range ix {
		if ix[i] != v[i] {
			return false
		}
	}
	return true
}

// Field returns the field of the struct pointed to by ptr. Nil pointers
// to enclosing structs are allocated on the way. The field itself is
// returned as is, and is addressable.
func (ix Index) Field(ptr reflect.Value) reflect.Value {
	v := ptr.Elem()
	for n, i := range ix {
		if n > 0 {
			if v.Kind() == reflect.Ptr {
				if v.IsNil() {
					v.Set(reflect.New(v.Type().Elem()))
				}
				v = v.Elem()
			}
		}
		v = v.Field(i)
	}
	return v
}
