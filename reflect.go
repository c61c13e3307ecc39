package rowmap

import (
	"reflect"

	"github.com/jjeffery/rowmap/private/column"
)

// TableOf returns a table for the struct type T, built by reflection
// from its fields and struct tags. The table built with no options is
// cached, so TableOf[T]() is cheap after the first call.
func TableOf[T any](opts ...TableOption) (*Table[T], error) {
	rowType := reflect.TypeFor[T]()
	if len(opts) == 0 {
		if tbl, ok := tables.lookup(rowType).(*Table[T]); ok {
			return tbl, nil
		}
	}
	tbl, err := tableOf[T](rowType, newTableConfig(opts))
	if err != nil {
		return nil, err
	}
	if len(opts) == 0 {
		tbl = tables.add(rowType, tbl).(*Table[T])
	}
	return tbl, nil
}

// MustTableOf is like TableOf, but panics on error.
func MustTableOf[T any](opts ...TableOption) *Table[T] {
	tbl, err := TableOf[T](opts...)
	if err != nil {
		panic(err)
	}
	return tbl
}

func tableOf[T any](rowType reflect.Type, cfg *tableConfig) (*Table[T], error) {
	tbl := &Table[T]{typeName: rowType.String()}
	infos, err := column.ListForType(rowType, cfg.tagKey)
	if err != nil {
		if ferr, ok := err.(*column.FieldError); ok {
			return nil, tbl.configError(ferr.Field, ferr.Err.Error())
		}
		return nil, tbl.configError("", err.Error())
	}

	used := make(map[string]bool, len(cfg.fields))
	for i, info := range infos {
		path := info.Path.String()
		var binding Binding
		if name, ok := cfg.fields[path]; ok {
			if name == "" {
				return nil, tbl.configError(path, "empty column name")
			}
			binding = ByName(name)
			used[path] = true
		} else if info.Tag.HasIdx {
			binding = ByIndex(info.Tag.Idx)
		} else {
			binding = ByName(info.Path.ColumnName(cfg.convention))
		}
		tbl.specs = append(tbl.specs, FieldSpec{
			Ordinal: i,
			Binding: binding,
			Type:    info.Field.Type,
			Path:    path,
		})
		index := info.Index
		tbl.addrs = append(tbl.addrs, func(row *T) interface{} {
			return index.Field(reflect.ValueOf(row)).Addr().Interface()
		})
	}
	for path := range cfg.fields {
		if !used[path] {
			return nil, tbl.configError(path, "no such field")
		}
	}
	tbl.compile()
	return tbl, nil
}
