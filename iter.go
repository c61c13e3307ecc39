package rowmap

import "iter"

// Seq returns a sequence of records extracted from rows. All rows must
// share one column layout. The columns are resolved from the first row,
// and again after any row that fails to resolve.
//
// A row that cannot be extracted yields its error in place of a record,
// and the sequence continues with the next row. Each iteration of the
// returned sequence iterates rows once, with its own cache.
func (tbl *Table[T]) Seq(rows iter.Seq[Row]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var cache Cache
		for row := range rows {
			if !yield(tbl.Extract(&cache, row)) {
				return
			}
		}
	}
}

// Slice returns a sequence of records extracted from rows, in order,
// as for Seq. The slice is not modified.
func (tbl *Table[T]) Slice(rows []Row) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var cache Cache
		for _, row := range rows {
			if !yield(tbl.Extract(&cache, row)) {
				return
			}
		}
	}
}
