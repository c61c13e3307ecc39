package rowmap

import "github.com/jjeffery/rowmap/private/naming"

// Convention provides naming convention methods for inferring
// column names from Go struct field names.
type Convention interface {
	// Convert returns the column name for a Go struct field name.
	Convert(fieldName string) string

	// Join joins the names of a nested field and its enclosing
	// struct fields to form a column name.
	Join(frags []string) string
}

// Naming conventions.
var (
	// ConventionSame is the default naming convention, where the
	// column name is identical to the Go struct field name.
	ConventionSame Convention = naming.Same

	// ConventionSnake converts field names to snake case, so that
	// "UserID" becomes "user_id".
	ConventionSnake Convention = naming.Snake

	// ConventionLower converts field names to lower case.
	ConventionLower Convention = naming.Lower
)
