package rowmap

import (
	"context"
	"database/sql"

	"github.com/jjeffery/errors"
)

// The Querier interface defines the query method used by Query.
//
// The *DB, *Tx and *Conn types in the standard library package
// "database/sql" all implement this interface, as do the *DB and
// *Tx types of package sqlx.
type Querier interface {
	// QueryContext executes a query that returns rows, typically a SELECT.
	// The args are for any placeholder parameters in the query.
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
}

var (
	_ Querier = &sql.DB{}
	_ Querier = &sql.Tx{}
	_ Querier = &sql.Conn{}
)

// Query executes query and returns a stream of records of the rows it
// returns. The stream owns the rows, so the caller closes the stream.
func Query[T any](ctx context.Context, tbl *Table[T], db Querier, query string, args ...interface{}) (*Stream[T], error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "cannot query").With(
			"query", query,
		)
	}
	return tbl.Stream(SQLRows(rows)), nil
}

// Select executes query and returns all of the records it returns.
func Select[T any](ctx context.Context, tbl *Table[T], db Querier, query string, args ...interface{}) ([]T, error) {
	stream, err := Query(ctx, tbl, db, query, args...)
	if err != nil {
		return nil, err
	}
	defer stream.Close()
	return Collect(ctx, stream)
}
