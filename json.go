package rowmap

import (
	"encoding/json"

	"github.com/jjeffery/errors"
)

// JSON is a field type for columns holding JSON text. The text is
// unmarshaled into V when the column is decoded.
//
//	type UserRow struct {
//		ID    int64
//		Prefs rowmap.JSON[Preferences]
//	}
type JSON[V any] struct {
	V V
}

// Scan implements sql.Scanner. NULL and empty text set V to its zero value.
func (j *JSON[V]) Scan(src interface{}) error {
	var data []byte
	switch s := src.(type) {
	case nil:
	case []byte:
		data = s
	case string:
		data = []byte(s)
	default:
		return errors.New("cannot unmarshal JSON from non-text value").With("type", typeName(src))
	}
	var v V
	if len(data) > 0 {
		if err := json.Unmarshal(data, &v); err != nil {
			return errors.Wrap(err, "cannot unmarshal JSON")
		}
	}
	j.V = v
	return nil
}
