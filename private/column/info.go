package column

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/jjeffery/errors"
)

// DefaultTagKey is the struct tag key read when no other key is given.
const DefaultTagKey = "column"

// Tag is the parsed content of a field's struct tag.
//
//	column:"name=account_id"
//	column:"idx=2"
//	column:"-"
type Tag struct {
	Name    string
	HasName bool
	Idx     int
	HasIdx  bool
	Skip    bool
}

// ParseTag parses the value of a struct tag. Elements are separated
// by commas, and each element has the form key=value.
func ParseTag(s string) (Tag, error) {
	var tag Tag
	s = strings.TrimSpace(s)
	if s == "" {
		return tag, nil
	}
	if s == "-" {
		tag.Skip = true
		return tag, nil
	}
	for _, elem := range strings.Split(s, ",") {
		elem = strings.TrimSpace(elem)
		key, value, ok := strings.Cut(elem, "=")
		if !ok {
			return Tag{}, errors.New("expected key=value").With("tag", elem)
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		switch key {
		case "name":
			if tag.HasName {
				return Tag{}, errors.New("duplicate key").With("key", key)
			}
			if value == "" {
				return Tag{}, errors.New("empty column name")
			}
			tag.Name = value
			tag.HasName = true
		case "idx":
			if tag.HasIdx {
				return Tag{}, errors.New("duplicate key").With("key", key)
			}
			n, err := strconv.Atoi(value)
			if err != nil || n < 0 {
				return Tag{}, errors.New("idx must be a non-negative integer").With("idx", value)
			}
			tag.Idx = n
			tag.HasIdx = true
		default:
			return Tag{}, errors.New("unknown key").With("key", key)
		}
	}
	if tag.HasName && tag.HasIdx {
		return Tag{}, errors.New("name and idx cannot both be specified")
	}
	return tag, nil
}

// Info contains information about a struct field that is
// bound to a column.
type Info struct {
	Field reflect.StructField
	Index Index
	Path  Path
	Tag   Tag
}

// FieldError reports a struct field whose binding is invalid.
type FieldError struct {
	Field string // Go selector of the field
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error()
}
