package rowmap

import (
	"context"
	"reflect"

	"github.com/jjeffery/errors"
	"github.com/jjeffery/rowmap/private/convert"
)

// Row is a single row of a self-describing result.
type Row interface {
	// Columns returns the column names of the row. The position
	// of a name in the slice is its column position. The slice
	// must not be modified.
	Columns() []string

	// ScanColumn decodes the value at column position index
	// into dest, which is a pointer to a field.
	ScanColumn(index int, dest interface{}) error
}

// RowStream is a source of rows that may block, such as the
// result of a query.
type RowStream interface {
	// Next returns the next row, or io.EOF when there are no more rows.
	Next(ctx context.Context) (Row, error)

	// Close releases the resources of the stream.
	Close() error
}

// NewRow returns a row holding values, which are driver values such
// as nil, int64, float64, bool, []byte, string and time.Time.
// Values are decoded using the conversion rules of database/sql.
func NewRow(columns []string, values []interface{}) Row {
	return &valueRow{columns: columns, values: values}
}

type valueRow struct {
	columns []string
	values  []interface{}
}

func (r *valueRow) Columns() []string {
	return r.columns
}

func (r *valueRow) ScanColumn(index int, dest interface{}) error {
	if index < 0 || index >= len(r.values) {
		return errors.New("column index out of range").With(
			"index", index,
			"values", len(r.values),
		)
	}
	return convert.Assign(dest, r.values[index])
}

func typeName(v interface{}) string {
	if v == nil {
		return "nil"
	}
	return reflect.TypeOf(v).String()
}
