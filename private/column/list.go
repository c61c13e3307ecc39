package column

import (
	"database/sql"
	"reflect"
	"time"

	"github.com/jjeffery/errors"
)

// Standard types.
var (
	sqlScanType = reflect.TypeOf((*sql.Scanner)(nil)).Elem()
	timeType    = reflect.TypeOf(time.Time{})
)

// newList returns the bound fields of rowType, in declaration order,
// with the fields of embedded and nested structs in place.
func newList(rowType reflect.Type, tagKey string) ([]*Info, error) {
	if rowType.Kind() != reflect.Struct {
		return nil, errors.New("expected a struct type").With("type", rowType)
	}
	list := columnList{tagKey: tagKey}
	if err := list.addFields(rowType, stateT{}); err != nil {
		return nil, err
	}
	return list.infos, nil
}

type stateT struct {
	index Index
	path  Path
}

type columnList struct {
	tagKey string
	infos  []*Info
}

func (list *columnList) addFields(rowType reflect.Type, state stateT) error {
	for i := 0; i < rowType.NumField(); i++ {
		if err := list.addField(rowType.Field(i), i, state); err != nil {
			return err
		}
	}
	return nil
}

func (list *columnList) addField(field reflect.StructField, i int, state stateT) error {
	if len(field.PkgPath) != 0 && !field.Anonymous {
		// ignore unexported field
		return nil
	}

	tag, err := ParseTag(field.Tag.Get(list.tagKey))
	if err != nil {
		return &FieldError{Field: state.path.Append(field.Name, "").String(), Err: err}
	}
	if tag.Skip {
		return nil
	}

	fieldType := field.Type
	for fieldType.Kind() == reflect.Ptr {
		fieldType = fieldType.Elem()
	}

	switch fieldType.Kind() {
	case reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return nil
	}

	state.index = state.index.Append(i)

	// An embedded or nested structure is flattened unless it is
	// time.Time, or it or its pointer implements sql.Scanner.
	flatten := fieldType.Kind() == reflect.Struct &&
		fieldType != timeType &&
		!fieldType.Implements(sqlScanType) &&
		!reflect.PointerTo(fieldType).Implements(sqlScanType)

	if flatten && tag.HasIdx {
		return &FieldError{
			Field: state.path.Append(field.Name, "").String(),
			Err:   errors.New("idx cannot be used on a struct field"),
		}
	}

	if len(field.PkgPath) != 0 {
		// Unexported embedded struct: its exported fields can only be
		// set when it is not behind a pointer.
		if !flatten || field.Type.Kind() == reflect.Ptr {
			return nil
		}
	}
	if flatten && field.Anonymous {
		return list.addFields(fieldType, state)
	}

	state.path = state.path.Append(field.Name, tag.Name)

	if flatten {
		return list.addFields(fieldType, state)
	}

	list.infos = append(list.infos, &Info{
		Field: field,
		Index: state.index,
		Path:  state.path,
		Tag:   tag,
	})
	return nil
}
