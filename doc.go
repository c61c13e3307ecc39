/*
Package rowmap maps the rows of self-describing tabular results onto
Go structs.

A row of a query result carries its column names, but a Go struct
only knows its field names. Looking up every field by name for every
row is wasteful, because rows of the same result share one layout.
Package rowmap resolves the names once, producing an Index that maps
each field to a column position, and then decodes every following
row positionally.

# Tables

A Table describes how the fields of a struct type are bound to columns.
Each field is bound either to a column name or to a fixed column
position. Tables can be built by reflection:

	type UserRow struct {
		ID         int64  `column:"name=id"`
		GivenName  string `column:"name=given_name"`
		FamilyName string `column:"name=family_name"`
		Tag        string `column:"idx=3"`
	}

	tbl, err := rowmap.TableOf[UserRow]()

Or explicitly, which is also what the rowmap-gen tool writes:

	tbl, err := rowmap.NewTable(
		rowmap.Named("id", func(u *UserRow) *int64 { return &u.ID }),
		rowmap.Named("given_name", func(u *UserRow) *string { return &u.GivenName }),
		rowmap.At(3, func(u *UserRow) *string { return &u.Tag }),
	)

Struct tags use the key "column". The value "name=X" binds the
field to the column named X, "idx=N" binds it to position N and "-"
ignores the field. Untagged fields are bound to a column with the
field's name, converted by the table's naming convention. A single
trailing underscore is removed from field names, so a field named
Type_ binds to the column "Type".

# Extracting rows

A Row is anything that reports its column names and can decode the
value at a position. ExtractOnce resolves and decodes a single row.
Extract keeps the resolved Index in a Cache and reuses it for each
subsequent row, which is only correct while all rows share a layout.
ExtractWith decodes using an Index resolved earlier.

	var cache rowmap.Cache
	for _, row := range rows {
		user, err := tbl.Extract(&cache, row)
		...
	}

# Sequences and streams

Seq and Slice adapt sequences of rows into sequences of records. Stream
and BorrowStream adapt a RowStream, whose Next method can block, into a
Stream of records. A Stream created with Stream closes its source when
closed; one created with BorrowStream leaves the source to the caller.

SQLRows adapts *sql.Rows and *sqlx.Rows into a RowStream. The pgxrow,
bsonrow and csvrow packages provide rows for pgx, MongoDB and CSV.
*/
package rowmap
