package testdata

//go:generate rowmap-gen

import (
	"database/sql"
	"time"

	uuidpkg "github.com/google/uuid"
)

//rowmap:table
type User struct {
	ID        int64 `column:"name=id"`
	Key       uuidpkg.UUID
	Name      string `column:"name=full_name"`
	Email     sql.NullString
	Tag       string `column:"idx=5"`
	Ignored   string `column:"-"`
	internal  string
	CreatedAt *time.Time
}

// Address is a postal address.
//
//rowmap:table var=addressRows convention=snake
type Address struct {
	StreetName, Locality string
	Type_                string
	Lines                []string
}

// Other has no directive.
type Other struct {
	A int
}
