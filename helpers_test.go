package rowmap

import (
	"context"
	"io"
)

// memStream is a RowStream over rows held in memory.
type memStream struct {
	rows   []Row
	err    error // returned after the rows
	pos    int
	closed int
}

func (s *memStream) Next(ctx context.Context) (Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.closed > 0 {
		return nil, io.ErrClosedPipe
	}
	if s.pos >= len(s.rows) {
		if s.err != nil {
			return nil, s.err
		}
		return nil, io.EOF
	}
	row := s.rows[s.pos]
	s.pos++
	return row, nil
}

func (s *memStream) Close() error {
	s.closed++
	return nil
}

func row(kv ...interface{}) Row {
	var columns []string
	var values []interface{}
	for i := 0; i+1 < len(kv); i += 2 {
		columns = append(columns, kv[i].(string))
		values = append(values, kv[i+1])
	}
	return NewRow(columns, values)
}

type XY struct {
	X int64 `column:"name=x"`
	Y int64 `column:"name=y"`
}

type AB struct {
	A string `column:"name=a"`
	B int    `column:"name=b"`
}
