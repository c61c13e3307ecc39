package rowmap

import "github.com/jjeffery/rowmap/private/column"

// A TableOption provides optional configuration when building a
// table by reflection.
type TableOption func(cfg *tableConfig)

type tableConfig struct {
	convention Convention
	tagKey     string
	fields     map[string]string
}

func newTableConfig(opts []TableOption) *tableConfig {
	cfg := &tableConfig{
		convention: ConventionSame,
		tagKey:     column.DefaultTagKey,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithConvention sets the naming convention used for fields
// that do not name their column in a struct tag.
func WithConvention(convention Convention) TableOption {
	return func(cfg *tableConfig) {
		cfg.convention = convention
	}
}

// WithTagKey sets the struct tag key, which is "column" by default.
func WithTagKey(key string) TableOption {
	return func(cfg *tableConfig) {
		cfg.tagKey = key
	}
}

// WithField binds the field at the Go selector path to the named
// column, overriding its struct tag.
//
// This is useful for fields within nested structures. For example,
// with the following structures:
//
//	type UserRow struct {
//		Name        string
//		HomeAddress Address
//		WorkAddress Address
//	}
//
//	type Address struct {
//		Street   string
//		Locality string
//	}
//
// If the column for HomeAddress.Locality is called "home_suburb", a struct
// tag on Address.Locality would also rename WorkAddress.Locality. Instead:
//
//	tbl, err := rowmap.TableOf[UserRow](
//		rowmap.WithConvention(rowmap.ConventionSnake),
//		rowmap.WithField("HomeAddress.Locality", "home_suburb"),
//	)
func WithField(path string, columnName string) TableOption {
	return func(cfg *tableConfig) {
		if cfg.fields == nil {
			cfg.fields = make(map[string]string)
		}
		cfg.fields[path] = columnName
	}
}
