package rowmap

import (
	"reflect"
	"sync"
)

// tables holds the tables built by reflection with default options.
var tables tableMap

// tableMap is used to lookup a table based on its record type.
// It is safe for concurrent access because tables can be added
// at any time during program execution.
//
// A sync.Map is used because this use case is one that it was
// designed for, namely a cache that is only ever added to.
type tableMap struct {
	tables sync.Map
}

// add a table to the map and return the value for the table in
// the map. The value returned will be different to tbl if another
// goroutine has already added an entry for the record type.
func (tm *tableMap) add(rowType reflect.Type, tbl interface{}) interface{} {
	v, _ := tm.tables.LoadOrStore(rowType, tbl)
	return v
}

// lookup a table based on its record type. Returns nil if not found.
func (tm *tableMap) lookup(rowType reflect.Type) interface{} {
	v, _ := tm.tables.Load(rowType)
	return v
}
