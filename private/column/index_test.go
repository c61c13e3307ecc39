package column

import (
	"reflect"
	"testing"
)

func TestIndexEqual(t *testing.T) {
	tests := []struct {
		ix1   Index
		ix2   Index
		equal bool
	}{
		{
			ix1:   nil,
			ix2:   NewIndex(),
			equal: true,
		},
		{
			ix1:   nil,
			ix2:   nil,
			equal: true,
		},
		{
			ix1:   NewIndex(),
			ix2:   NewIndex(),
			equal: true,
		},
		{
			ix1:   NewIndex(0),
			ix2:   NewIndex(0),
			equal: true,
		},
		{
			ix1:   NewIndex(0, 1),
			ix2:   NewIndex(0, 1),
			equal: true,
		},
		{
			ix1:   nil,
			ix2:   NewIndex(0, 1),
			equal: false,
		},
		{
			ix1:   NewIndex(1, 0),
			ix2:   NewIndex(0, 1),
			equal: false,
		},
	}

	for _, tt := range tests {
		equal := tt.ix1.Equal(tt.ix2)
		if tt.equal != equal {
			t.Errorf("expected %v, actual %v", tt.equal, equal)
		}
		equal = tt.ix2.Equal(tt.ix1)
		if tt.equal != equal {
			t.Errorf("expected %v, actual %v", tt.equal, equal)
		}
	}
}

func TestIndexField(t *testing.T) {
	type Inner struct {
		C string
	}
	type Row struct {
		A int
		B *Inner
		D *string
	}

	var row Row
	ptr := reflect.ValueOf(&row)

	NewIndex(0).Field(ptr).SetInt(4)
	NewIndex(1, 0).Field(ptr).SetString("xyz")
	d := NewIndex(2).Field(ptr)

	if row.A != 4 {
		t.Errorf("expected=4, actual=%d", row.A)
	}
	if row.B == nil || row.B.C != "xyz" {
		t.Errorf("expected nested pointer to be allocated, actual=%#v", row.B)
	}
	if !d.IsNil() {
		t.Errorf("expected leaf pointer to stay nil")
	}
	if !d.CanAddr() {
		t.Errorf("expected addressable field")
	}
}
