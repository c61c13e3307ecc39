package rowmap

import (
	"context"
	"io"
	"iter"

	"github.com/jjeffery/errors"
)

// Stream is a stream of records extracted from a RowStream. The columns
// are resolved from the first row, and the index is reused for the rows
// that follow.
//
// A Stream is not safe for concurrent use.
type Stream[T any] struct {
	// Source is the underlying row stream. It remains available after
	// the stream is drained, for inspecting any state it reports.
	Source RowStream

	tbl    *Table[T]
	cache  Cache
	owned  bool
	done   bool
	closed bool
}

// Stream returns a stream of records read from rows. The stream owns
// rows, and closing the stream closes rows.
func (tbl *Table[T]) Stream(rows RowStream) *Stream[T] {
	return &Stream[T]{Source: rows, tbl: tbl, owned: true}
}

// BorrowStream returns a stream of records read from rows. Closing
// the stream leaves rows open, and the caller remains responsible
// for closing it.
func (tbl *Table[T]) BorrowStream(rows RowStream) *Stream[T] {
	return &Stream[T]{Source: rows, tbl: tbl}
}

// Next returns the next record. It returns io.EOF when the source has
// no more rows.
//
// An error reading the source ends the stream, and io.EOF is returned
// from then on. An error extracting a row is returned for that row only,
// and the following row can be read with the next call.
func (s *Stream[T]) Next(ctx context.Context) (T, error) {
	var zero T
	if s.done || s.closed {
		return zero, io.EOF
	}
	row, err := s.Source.Next(ctx)
	if err != nil {
		s.done = true
		if err == io.EOF {
			return zero, io.EOF
		}
		return zero, errors.Wrap(err, "cannot read row").With("type", s.tbl.typeName)
	}
	return s.tbl.Extract(&s.cache, row)
}

// All returns a sequence of the remaining records. A source error is
// yielded and ends the sequence.
func (s *Stream[T]) All(ctx context.Context) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for {
			rec, err := s.Next(ctx)
			if err == io.EOF {
				return
			}
			if !yield(rec, err) {
				return
			}
			if err != nil && s.done {
				return
			}
		}
	}
}

// Close stops the stream. If the stream owns its source, the source
// is closed. Calling Close more than once has no further effect.
func (s *Stream[T]) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if !s.owned {
		return nil
	}
	if err := s.Source.Close(); err != nil {
		return errors.Wrap(err, "cannot close rows")
	}
	return nil
}

// Collect reads the remaining records of s into a slice. It stops at
// the first error, and returns only the error.
func Collect[T any](ctx context.Context, s *Stream[T]) ([]T, error) {
	var recs []T
	for {
		rec, err := s.Next(ctx)
		if err == io.EOF {
			return recs, nil
		}
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
}
