// Package convert stores driver values into Go destinations.
//
// Source values are the types produced by database drivers: nil, int64,
// float64, bool, []byte, string and time.Time. Conversions between basic
// kinds follow the rules of package database/sql, because the value is
// first scanned into the matching sql.Null type.
package convert

import (
	"database/sql"
	"fmt"
	"math"
	"reflect"
	"time"
)

// ErrNull is returned when a NULL value is assigned to a destination
// that cannot represent it.
var ErrNull = nullError{}

type nullError struct{}

func (nullError) Error() string {
	return "value is NULL"
}

var (
	scannerType = reflect.TypeOf((*sql.Scanner)(nil)).Elem()
	timeType    = reflect.TypeOf(time.Time{})
	bytesType   = reflect.TypeOf([]byte(nil))
)

// Assign stores src in the value pointed to by dest.
//
// If dest implements sql.Scanner, its Scan method receives src unchanged.
// A NULL src (nil) sets pointer, slice, map and interface destinations to
// nil, and returns ErrNull for any other destination.
func Assign(dest interface{}, src interface{}) error {
	if scanner, ok := dest.(sql.Scanner); ok {
		return scanner.Scan(src)
	}
	dv := reflect.ValueOf(dest)
	if dv.Kind() != reflect.Ptr || dv.IsNil() {
		return fmt.Errorf("destination must be a non-nil pointer, got %T", dest)
	}
	return assignValue(dv.Elem(), src)
}

func assignValue(v reflect.Value, src interface{}) (err error) {
	if v.CanAddr() && v.Addr().Type().Implements(scannerType) {
		return v.Addr().Interface().(sql.Scanner).Scan(src)
	}

	switch v.Kind() {
	case reflect.Ptr:
		if src == nil {
			v.Set(reflect.Zero(v.Type()))
			return nil
		}
		elem := reflect.New(v.Type().Elem())
		if err := assignValue(elem.Elem(), src); err != nil {
			return err
		}
		v.Set(elem)
		return nil
	case reflect.Interface:
		if src == nil {
			v.Set(reflect.Zero(v.Type()))
			return nil
		}
		sv := reflect.ValueOf(src)
		if !sv.Type().AssignableTo(v.Type()) {
			return incompatible(src, v.Type())
		}
		v.Set(sv)
		return nil
	}

	if src == nil {
		if v.Kind() == reflect.Slice || v.Kind() == reflect.Map {
			v.Set(reflect.Zero(v.Type()))
			return nil
		}
		return ErrNull
	}

	switch v.Kind() {
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64, reflect.Int:
		var nullable sql.NullInt64
		if err := nullable.Scan(src); err != nil {
			return err
		}
		if v.OverflowInt(nullable.Int64) {
			return overflow(src, v.Type())
		}
		v.SetInt(nullable.Int64)
		return nil
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uint:
		var nullable sql.NullInt64
		if err := nullable.Scan(src); err != nil {
			return err
		}
		if nullable.Int64 < 0 || v.OverflowUint(uint64(nullable.Int64)) {
			return overflow(src, v.Type())
		}
		v.SetUint(uint64(nullable.Int64))
		return nil
	case reflect.Float32, reflect.Float64:
		var nullable sql.NullFloat64
		if err := nullable.Scan(src); err != nil {
			return err
		}
		if v.Kind() == reflect.Float32 && math.Abs(nullable.Float64) > math.MaxFloat32 {
			return overflow(src, v.Type())
		}
		v.SetFloat(nullable.Float64)
		return nil
	case reflect.Bool:
		var nullable sql.NullBool
		if err := nullable.Scan(src); err != nil {
			return err
		}
		v.SetBool(nullable.Bool)
		return nil
	case reflect.String:
		var nullable sql.NullString
		if err := nullable.Scan(src); err != nil {
			return err
		}
		v.SetString(nullable.String)
		return nil
	case reflect.Slice:
		if v.Type() == bytesType || v.Type().Elem().Kind() == reflect.Uint8 {
			var b []byte
			switch s := src.(type) {
			case []byte:
				b = append([]byte{}, s...)
			case string:
				b = []byte(s)
			default:
				return incompatible(src, v.Type())
			}
			v.SetBytes(b)
			return nil
		}
	case reflect.Struct:
		if v.Type() == timeType {
			return assignTime(v, src)
		}
	}

	sv := reflect.ValueOf(src)
	if sv.Type().AssignableTo(v.Type()) {
		v.Set(sv)
		return nil
	}
	return incompatible(src, v.Type())
}

func assignTime(v reflect.Value, src interface{}) error {
	switch s := src.(type) {
	case time.Time:
		v.Set(reflect.ValueOf(s))
		return nil
	case string:
		return parseTime(v, s)
	case []byte:
		return parseTime(v, string(s))
	}
	return incompatible(src, v.Type())
}

func parseTime(v reflect.Value, s string) error {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return err
	}
	v.Set(reflect.ValueOf(t))
	return nil
}

func incompatible(src interface{}, t reflect.Type) error {
	return fmt.Errorf("cannot store %T into %v", src, t)
}

func overflow(src interface{}, t reflect.Type) error {
	return fmt.Errorf("value %v overflows %v", src, t)
}
