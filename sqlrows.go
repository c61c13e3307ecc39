package rowmap

import (
	"context"
	"io"

	"github.com/jjeffery/errors"
)

// SQLResult is the subset of *sql.Rows read by SQLRows. The *sql.Rows
// type, and *sqlx.Rows which embeds it, both implement this interface.
type SQLResult interface {
	Columns() ([]string, error)
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
	Close() error
}

// SQLStream is a RowStream reading from a database/sql result.
type SQLStream struct {
	rows    SQLResult
	columns []string
	count   int
}

// SQLRows returns a stream of the rows in a database/sql result.
// Each row is scanned once into driver values, which are then
// decoded by column position.
func SQLRows(rows SQLResult) *SQLStream {
	return &SQLStream{rows: rows}
}

// Next implements RowStream.
func (s *SQLStream) Next(ctx context.Context) (Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.columns == nil {
		columns, err := s.rows.Columns()
		if err != nil {
			return nil, errors.Wrap(err, "cannot get columns")
		}
		if columns == nil {
			columns = []string{}
		}
		s.columns = columns
	}
	if !s.rows.Next() {
		if err := s.rows.Err(); err != nil {
			return nil, errors.Wrap(err, "cannot get next row").With("count", s.count)
		}
		return nil, io.EOF
	}
	values := make([]interface{}, len(s.columns))
	dest := make([]interface{}, len(values))
	for i := range values {
		dest[i] = &values[i]
	}
	if err := s.rows.Scan(dest...); err != nil {
		return nil, errors.Wrap(err, "cannot scan row").With("count", s.count)
	}
	s.count++
	return NewRow(s.columns, values), nil
}

// Close implements RowStream. It closes the underlying result.
func (s *SQLStream) Close() error {
	return s.rows.Close()
}

// Count returns the number of rows read so far.
func (s *SQLStream) Count() int {
	return s.count
}
