// Package csvrow provides rows from CSV input.
//
// The first record is the header, giving the column names. Each
// following record is a row of strings, decoded into fields with the
// conversion rules of database/sql.
package csvrow

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"

	"github.com/jjeffery/errors"
	"github.com/jjeffery/rowmap"
	"github.com/jjeffery/rowmap/private/convert"
)

// An Option configures a Reader.
type Option func(r *Reader)

// WithComma sets the field delimiter, which is ',' by default.
func WithComma(comma rune) Option {
	return func(r *Reader) {
		r.csv.Comma = comma
	}
}

// WithNullValues sets the field values that are read as NULL.
// No value is NULL by default.
func WithNullValues(values ...string) Option {
	return func(r *Reader) {
		r.nulls = make(map[string]struct{}, len(values))
		for _, v := range values {
			r.nulls[v] = struct{}{}
		}
	}
}

// WithHeader sets the column names, for input that has no header
// record. The first record of the input is then a row.
func WithHeader(columns ...string) Option {
	return func(r *Reader) {
		r.columns = append([]string{}, columns...)
	}
}

// WithoutHeader names the columns "col_1", "col_2" and so on, for
// input with no header record.
func WithoutHeader() Option {
	return func(r *Reader) {
		r.generate = true
	}
}

// Reader is a rowmap.RowStream reading CSV records.
type Reader struct {
	csv      *csv.Reader
	src      io.Reader
	columns  []string
	generate bool
	nulls    map[string]struct{}
	line     int
}

// NewReader returns a reader of the CSV input in r.
func NewReader(r io.Reader, opts ...Option) *Reader {
	cr := &Reader{
		csv: csv.NewReader(r),
		src: r,
	}
	for _, opt := range opts {
		opt(cr)
	}
	return cr
}

// Columns returns the column names, reading the header record
// if it has not been read yet.
func (r *Reader) Columns() ([]string, error) {
	if r.columns != nil {
		return r.columns, nil
	}
	if r.generate {
		return nil, errors.New("column names are not known until the first row is read")
	}
	header, err := r.csv.Read()
	if err == io.EOF {
		return nil, errors.New("csv input is empty")
	}
	if err != nil {
		return nil, errors.Wrap(err, "cannot read header")
	}
	r.line++
	r.columns = header
	return r.columns, nil
}

// Next implements rowmap.RowStream.
func (r *Reader) Next(ctx context.Context) (rowmap.Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !r.generate || r.columns != nil {
		if _, err := r.Columns(); err != nil {
			return nil, err
		}
	}
	record, err := r.csv.Read()
	if err == io.EOF {
		return nil, io.EOF
	}
	if err != nil {
		return nil, errors.Wrap(err, "cannot read record")
	}
	r.line++
	if r.columns == nil {
		r.columns = make([]string, len(record))
		for i := range r.columns {
			r.columns[i] = "col_" + strconv.Itoa(i+1)
		}
	}
	return &row{reader: r, values: record}, nil
}

// Close implements rowmap.RowStream. It closes the input
// if it implements io.Closer.
func (r *Reader) Close() error {
	if closer, ok := r.src.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// Line returns the number of records read, including the header.
func (r *Reader) Line() int {
	return r.line
}

type row struct {
	reader *Reader
	values []string
}

func (r *row) Columns() []string {
	return r.reader.columns
}

func (r *row) ScanColumn(index int, dest interface{}) error {
	if index < 0 || index >= len(r.values) {
		return errors.New("column index out of range").With("index", index)
	}
	value := r.values[index]
	if _, ok := r.reader.nulls[value]; ok {
		return convert.Assign(dest, nil)
	}
	return convert.Assign(dest, value)
}
