// Package bsonrow provides rows from MongoDB documents.
//
// The keys of a document, in document order, are the column names of
// the row. Documents in a collection do not always share one layout,
// and a resolved index is only valid for documents whose keys are in
// the same order. Use ExtractOnce for documents of varying layout.
package bsonrow

import (
	"context"
	"io"

	"github.com/jjeffery/errors"
	"github.com/jjeffery/rowmap"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// FromRaw returns the document doc as a row.
func FromRaw(doc bson.Raw) (rowmap.Row, error) {
	elems, err := doc.Elements()
	if err != nil {
		return nil, errors.Wrap(err, "invalid document")
	}
	r := &row{
		columns: make([]string, len(elems)),
		values:  make([]bson.RawValue, len(elems)),
	}
	for i, elem := range elems {
		r.columns[i] = elem.Key()
		r.values[i] = elem.Value()
	}
	return r, nil
}

// Marshal encodes doc, which is any value that can be marshaled
// as a BSON document, and returns it as a row.
func Marshal(doc interface{}) (rowmap.Row, error) {
	b, err := bson.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(err, "cannot marshal document")
	}
	return FromRaw(b)
}

type row struct {
	columns []string
	values  []bson.RawValue
}

func (r *row) Columns() []string {
	return r.columns
}

func (r *row) ScanColumn(index int, dest interface{}) error {
	if index < 0 || index >= len(r.values) {
		return errors.New("column index out of range").With("index", index)
	}
	return r.values[index].Unmarshal(dest)
}

// Stream is a rowmap.RowStream reading the documents of a cursor.
type Stream struct {
	cursor *mongo.Cursor
	count  int
}

// NewCursor returns a stream of the documents of cursor.
func NewCursor(cursor *mongo.Cursor) *Stream {
	return &Stream{cursor: cursor}
}

// Next implements rowmap.RowStream.
func (s *Stream) Next(ctx context.Context) (rowmap.Row, error) {
	if !s.cursor.Next(ctx) {
		if err := s.cursor.Err(); err != nil {
			return nil, errors.Wrap(err, "cannot get next document").With("count", s.count)
		}
		return nil, io.EOF
	}
	s.count++
	// the current document is only valid until the next call to Next
	doc := append(bson.Raw{}, s.cursor.Current...)
	return FromRaw(doc)
}

// Close implements rowmap.RowStream.
func (s *Stream) Close() error {
	if err := s.cursor.Close(context.Background()); err != nil {
		return errors.Wrap(err, "cannot close cursor")
	}
	return nil
}

// Count returns the number of documents read so far.
func (s *Stream) Count() int {
	return s.count
}
