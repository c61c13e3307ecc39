package column

import (
	"testing"

	"github.com/jjeffery/rowmap/private/naming"
)

func TestPathString(t *testing.T) {
	tests := []struct {
		path Path
		text string
	}{
		{
			path: nil,
			text: "",
		},
		{
			path: NewPath("A", ""),
			text: "A",
		},
		{
			path: NewPath("A", "").Append("B", ""),
			text: "A.B",
		},
		{
			path: NewPath("A", "a").Append("B", "b"),
			text: "A.B",
		},
	}

	for _, tt := range tests {
		text := tt.path.String()
		if text != tt.text {
			t.Errorf("expected=%q, actual=%q", tt.text, text)
		}
	}
}

func TestPathEqual(t *testing.T) {
	tests := []struct {
		path  Path
		other Path
		equal bool
	}{
		{
			path:  nil,
			other: nil,
			equal: true,
		},
		{
			path:  nil,
			other: NewPath("", ""),
			equal: false,
		},
		{
			path:  NewPath("A", "a"),
			other: NewPath("A", ""),
			equal: false,
		},
	}

	for _, tt := range tests {
		equal := tt.path.Equal(tt.other)
		if equal != tt.equal {
			t.Errorf("expected=%v, actual=%v", tt.equal, equal)
		}
		equal = tt.other.Equal(tt.path)
		if equal != tt.equal {
			t.Errorf("expected=%v, actual=%v", tt.equal, equal)
		}
	}
}

func TestPathColumnName(t *testing.T) {
	tests := []struct {
		path Path
		nc   naming.Convention
		want string
	}{
		{
			path: NewPath("UserID", ""),
			nc:   naming.Same,
			want: "UserID",
		},
		{
			path: NewPath("UserID", ""),
			nc:   naming.Snake,
			want: "user_id",
		},
		{
			path: NewPath("Type_", ""),
			nc:   naming.Same,
			want: "Type",
		},
		{
			path: NewPath("Home", "").Append("StreetName", ""),
			nc:   naming.Snake,
			want: "home_street_name",
		},
		{
			path: NewPath("Home", "addr").Append("StreetName", ""),
			nc:   naming.Snake,
			want: "addr_street_name",
		},
		{
			path: NewPath("Name", "Full Name"),
			nc:   naming.Snake,
			want: "Full Name",
		},
	}
	for _, tt := range tests {
		if got := tt.path.ColumnName(tt.nc); got != tt.want {
			t.Errorf("%s: expected=%q, actual=%q", tt.path, tt.want, got)
		}
	}
}
