package rowmap

import (
	"github.com/jjeffery/errors"
	"github.com/jjeffery/rowmap/private/matcher"
)

// Index maps each field of a table, by ordinal, to a column position.
// An Index resolved from one row is valid for any row with the same
// column layout.
type Index []int

// Cache holds the Index resolved from the first row of a sequence,
// for reuse with the rows that follow. The zero value is an empty
// cache, ready to use.
//
// A Cache is not safe for concurrent use.
type Cache struct {
	index Index
	ok    bool
}

// Index returns the cached index, and false if the cache is empty.
func (c *Cache) Index() (Index, bool) {
	return c.index, c.ok
}

// Reset empties the cache, so that the next row is resolved again.
func (c *Cache) Reset() {
	c.index = nil
	c.ok = false
}

// Resolve matches the fields of the table against the columns of row.
//
// When a column name appears more than once in the row, the first
// column with that name is used. If a field is bound to a column name
// that is not in the row, Resolve returns a *MissingColumnError.
func (tbl *Table[T]) Resolve(row Row) (Index, error) {
	positions, err := tbl.plan.Resolve(row.Columns())
	if err != nil {
		if merr, ok := err.(*matcher.MissingError); ok {
			return nil, &MissingColumnError{
				Column: merr.Name,
				Field:  tbl.specs[merr.Ordinal].Path,
			}
		}
		return nil, err
	}
	return Index(positions), nil
}

// ExtractOnce resolves the columns of row and decodes it into a record.
// The resolved index is discarded.
func (tbl *Table[T]) ExtractOnce(row Row) (T, error) {
	index, err := tbl.Resolve(row)
	if err != nil {
		var zero T
		return zero, err
	}
	return tbl.decode(index, row)
}

// Extract decodes row into a record, using the index in cache. If the
// cache is empty, the columns of row are resolved first and the index
// is stored in the cache, but only if resolution succeeds.
//
// The caller must ensure that every row extracted with the same cache
// has the same column layout. A row of a different layout is decoded
// by position, and its values can end up in the wrong fields.
func (tbl *Table[T]) Extract(cache *Cache, row Row) (T, error) {
	if !cache.ok {
		index, err := tbl.Resolve(row)
		if err != nil {
			var zero T
			return zero, err
		}
		cache.index = index
		cache.ok = true
	}
	return tbl.decode(cache.index, row)
}

// ExtractWith decodes row into a record using an index resolved
// earlier. No column names are compared.
func (tbl *Table[T]) ExtractWith(index Index, row Row) (T, error) {
	if len(index) != len(tbl.specs) {
		var zero T
		return zero, errors.New("index does not match table").With(
			"type", tbl.typeName,
			"fields", len(tbl.specs),
			"index", len(index),
		)
	}
	return tbl.decode(index, row)
}

// decode fills a new record. If any field fails, the zero record is
// returned with the error.
func (tbl *Table[T]) decode(index Index, row Row) (T, error) {
	var rec T
	columns := row.Columns()
	for i, pos := range index {
		if pos < 0 || pos >= len(columns) {
			var zero T
			return zero, &DecodeError{
				Field: tbl.specs[i].Path,
				Index: pos,
				Err: errors.New("column index out of range").With(
					"columns", len(columns),
				),
			}
		}
		if err := row.ScanColumn(pos, tbl.addrs[i](&rec)); err != nil {
			var zero T
			return zero, &DecodeError{
				Field:  tbl.specs[i].Path,
				Index:  pos,
				Column: columns[pos],
				Err:    err,
			}
		}
	}
	return rec, nil
}

// ExtractOnce decodes row into a record of type T, using the table
// built by reflection for T.
func ExtractOnce[T any](row Row) (T, error) {
	tbl, err := TableOf[T]()
	if err != nil {
		var zero T
		return zero, err
	}
	return tbl.ExtractOnce(row)
}

// Extract decodes row into a record of type T, using the table built
// by reflection for T and the index in cache.
func Extract[T any](cache *Cache, row Row) (T, error) {
	tbl, err := TableOf[T]()
	if err != nil {
		var zero T
		return zero, err
	}
	return tbl.Extract(cache, row)
}

// ExtractWith decodes row into a record of type T, using the table
// built by reflection for T and an index resolved earlier.
func ExtractWith[T any](index Index, row Row) (T, error) {
	tbl, err := TableOf[T]()
	if err != nil {
		var zero T
		return zero, err
	}
	return tbl.ExtractWith(index, row)
}
