package convert

import (
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssign(t *testing.T) {
	when := time.Date(2020, 5, 6, 7, 8, 9, 0, time.UTC)
	tests := []struct {
		src  interface{}
		dest func() interface{}
		want interface{}
	}{
		{src: int64(12), dest: func() interface{} { return new(int) }, want: 12},
		{src: int64(12), dest: func() interface{} { return new(int8) }, want: int8(12)},
		{src: int64(12), dest: func() interface{} { return new(uint16) }, want: uint16(12)},
		{src: []byte("42"), dest: func() interface{} { return new(int32) }, want: int32(42)},
		{src: "42", dest: func() interface{} { return new(int64) }, want: int64(42)},
		{src: 1.5, dest: func() interface{} { return new(float64) }, want: 1.5},
		{src: int64(2), dest: func() interface{} { return new(float32) }, want: float32(2)},
		{src: int64(1), dest: func() interface{} { return new(bool) }, want: true},
		{src: "false", dest: func() interface{} { return new(bool) }, want: false},
		{src: []byte("abc"), dest: func() interface{} { return new(string) }, want: "abc"},
		{src: int64(7), dest: func() interface{} { return new(string) }, want: "7"},
		{src: "abc", dest: func() interface{} { return new([]byte) }, want: []byte("abc")},
		{src: nil, dest: func() interface{} { return new([]byte) }, want: []byte(nil)},
		{src: when, dest: func() interface{} { return new(time.Time) }, want: when},
		{src: "2020-05-06T07:08:09Z", dest: func() interface{} { return new(time.Time) }, want: when},
		{src: nil, dest: func() interface{} { return new(*string) }, want: (*string)(nil)},
		{src: "x", dest: func() interface{} { return new(interface{}) }, want: interface{}("x")},
		{src: nil, dest: func() interface{} { return new(interface{}) }, want: interface{}(nil)},
		{
			src:  "abc",
			dest: func() interface{} { return new(sql.NullString) },
			want: sql.NullString{String: "abc", Valid: true},
		},
		{
			src:  nil,
			dest: func() interface{} { return new(sql.NullInt64) },
			want: sql.NullInt64{},
		},
		{
			src:  "8f0b2c4e-3a1d-4c5e-9b7a-2d6f1e3c4b5a",
			dest: func() interface{} { return new(uuid.UUID) },
			want: uuid.MustParse("8f0b2c4e-3a1d-4c5e-9b7a-2d6f1e3c4b5a"),
		},
	}

	for i, tt := range tests {
		dest := tt.dest()
		if !assert.NoError(t, Assign(dest, tt.src), "%d", i) {
			continue
		}
		got := deref(dest)
		assert.Equal(t, tt.want, got, "%d", i)
	}
}

func TestAssignPointer(t *testing.T) {
	var s *string
	require.NoError(t, Assign(&s, []byte("value")))
	require.NotNil(t, s)
	assert.Equal(t, "value", *s)

	require.NoError(t, Assign(&s, nil))
	assert.Nil(t, s)

	var n **int
	require.NoError(t, Assign(&n, int64(3)))
	assert.Equal(t, 3, **n)
}

func TestAssignErrors(t *testing.T) {
	tests := []struct {
		src  interface{}
		dest interface{}
	}{
		{src: int64(300), dest: new(int8)},
		{src: int64(-1), dest: new(uint)},
		{src: 1e300, dest: new(float32)},
		{src: "abc", dest: new(int)},
		{src: "maybe", dest: new(bool)},
		{src: "yesterday", dest: new(time.Time)},
		{src: int64(1), dest: new(time.Time)},
		{src: int64(1), dest: new([]byte)},
		{src: int64(1), dest: new(struct{ A int })},
		{src: int64(1), dest: 1},
		{src: int64(1), dest: (*int)(nil)},
	}
	for i, tt := range tests {
		assert.Error(t, Assign(tt.dest, tt.src), "%d: %T into %T", i, tt.src, tt.dest)
	}
}

func TestAssignNull(t *testing.T) {
	for _, dest := range []interface{}{new(int), new(string), new(bool), new(float64), new(time.Time)} {
		assert.Equal(t, ErrNull, Assign(dest, nil), "%T", dest)
	}
}

func TestAssignCopiesBytes(t *testing.T) {
	src := []byte("abc")
	var b []byte
	require.NoError(t, Assign(&b, src))
	src[0] = 'x'
	assert.Equal(t, []byte("abc"), b)
}

func deref(v interface{}) interface{} {
	switch p := v.(type) {
	case *int:
		return *p
	case *int8:
		return *p
	case *int32:
		return *p
	case *int64:
		return *p
	case *uint16:
		return *p
	case *float32:
		return *p
	case *float64:
		return *p
	case *bool:
		return *p
	case *string:
		return *p
	case *[]byte:
		return *p
	case *time.Time:
		return *p
	case **string:
		return *p
	case *interface{}:
		return *p
	case *sql.NullString:
		return *p
	case *sql.NullInt64:
		return *p
	case *uuid.UUID:
		return *p
	}
	return v
}
