// Package pgxrow provides rows from pgx query results.
//
// Values are decoded from their wire representation with the type map
// of the connection, so each column decodes independently of the others
// and into any destination type that pgx supports.
package pgxrow

import (
	"context"
	"io"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jjeffery/errors"
	"github.com/jjeffery/rowmap"
)

// Querier is implemented by *pgx.Conn, *pgxpool.Pool and pgx.Tx.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Stream is a rowmap.RowStream reading from pgx.Rows.
type Stream struct {
	rows    pgx.Rows
	typeMap *pgtype.Map
	fields  []pgconn.FieldDescription
	columns []string
}

// New returns a stream of the rows in rows.
func New(rows pgx.Rows) *Stream {
	s := &Stream{rows: rows}
	if conn := rows.Conn(); conn != nil {
		s.typeMap = conn.TypeMap()
	} else {
		s.typeMap = pgtype.NewMap()
	}
	return s
}

// Query executes sql and returns a stream of the rows it returns.
func Query(ctx context.Context, q Querier, sql string, args ...any) (*Stream, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, errors.Wrap(err, "cannot query").With("query", sql)
	}
	return New(rows), nil
}

// Next implements rowmap.RowStream.
func (s *Stream) Next(ctx context.Context) (rowmap.Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !s.rows.Next() {
		if err := s.rows.Err(); err != nil {
			return nil, errors.Wrap(err, "cannot get next row")
		}
		return nil, io.EOF
	}
	if s.columns == nil {
		s.fields = s.rows.FieldDescriptions()
		s.columns = make([]string, len(s.fields))
		for i, fd := range s.fields {
			s.columns[i] = fd.Name
		}
	}

	// raw values are only valid until the next call to Next
	raw := s.rows.RawValues()
	values := make([][]byte, len(raw))
	for i, b := range raw {
		if b != nil {
			values[i] = append([]byte{}, b...)
		}
	}
	return &row{stream: s, values: values}, nil
}

// Close implements rowmap.RowStream.
func (s *Stream) Close() error {
	s.rows.Close()
	if err := s.rows.Err(); err != nil {
		return errors.Wrap(err, "cannot close rows")
	}
	return nil
}

// CommandTag returns the command tag of the query. It is only
// complete once all rows have been read.
func (s *Stream) CommandTag() pgconn.CommandTag {
	return s.rows.CommandTag()
}

type row struct {
	stream *Stream
	values [][]byte
}

func (r *row) Columns() []string {
	return r.stream.columns
}

func (r *row) ScanColumn(index int, dest interface{}) error {
	if index < 0 || index >= len(r.values) {
		return errors.New("column index out of range").With("index", index)
	}
	fd := r.stream.fields[index]
	return r.stream.typeMap.Scan(fd.DataTypeOID, fd.Format, r.values[index], dest)
}
