package rowmap

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractReorderedColumns(t *testing.T) {
	tbl := MustTableOf[XY]()
	r := row("y", int64(2), "x", int64(1))

	index, err := tbl.Resolve(r)
	require.NoError(t, err)
	assert.Equal(t, Index{1, 0}, index)

	rec, err := tbl.ExtractOnce(r)
	require.NoError(t, err)
	assert.Equal(t, XY{X: 1, Y: 2}, rec)
}

func TestExtractAliasedFields(t *testing.T) {
	type Twice struct {
		First  int `column:"name=x"`
		Second int `column:"name=x"`
	}
	tbl := MustTableOf[Twice]()
	r := row("x", int64(1), "x", int64(5))

	index, err := tbl.Resolve(r)
	require.NoError(t, err)
	assert.Equal(t, Index{0, 0}, index)

	rec, err := tbl.ExtractOnce(r)
	require.NoError(t, err)
	assert.Equal(t, Twice{First: 1, Second: 1}, rec)
}

func TestExtractCacheReuse(t *testing.T) {
	tbl := MustTableOf[AB]()
	rows := []Row{row("a", "row0", "b", int64(0))}
	for i := 1; i < 100; i++ {
		// Same layout, different names: these rows only extract
		// correctly if the index from the first row is reused.
		rows = append(rows, row("p", fmt.Sprintf("row%d", i), "q", int64(i)))
	}

	var cache Cache
	_, ok := cache.Index()
	assert.False(t, ok)

	for i, r := range rows {
		rec, err := tbl.Extract(&cache, r)
		require.NoError(t, err, "row %d", i)
		assert.Equal(t, AB{A: fmt.Sprintf("row%d", i), B: i}, rec)
		index, ok := cache.Index()
		assert.True(t, ok)
		assert.Equal(t, Index{0, 1}, index)
	}
}

func TestExtractFixedIndexOutOfRange(t *testing.T) {
	type Fixed struct {
		A int64 `column:"name=a"`
		C int64 `column:"idx=2"`
	}
	tbl := MustTableOf[Fixed]()
	r := row("a", int64(1), "b", int64(2))

	index, err := tbl.Resolve(r)
	require.NoError(t, err)
	assert.Equal(t, Index{0, 2}, index)

	rec, err := tbl.ExtractOnce(r)
	require.Error(t, err)
	assert.Equal(t, Fixed{}, rec)

	var derr *DecodeError
	require.True(t, errors.As(err, &derr), "%T", err)
	assert.Equal(t, "C", derr.Field)
	assert.Equal(t, 2, derr.Index)
	assert.Equal(t, "", derr.Column)

	var merr *MissingColumnError
	assert.False(t, errors.As(err, &merr))
}

func TestExtractMissingColumn(t *testing.T) {
	type User struct {
		ID   int64  `column:"name=id"`
		Name string `column:"name=name"`
		Role string `column:"name=role"`
		Also string `column:"name=role"`
	}
	tbl := MustTableOf[User]()

	var cache Cache
	_, err := tbl.Extract(&cache, row("id", int64(1), "name", "x"))
	require.Error(t, err)
	merr, ok := err.(*MissingColumnError)
	require.True(t, ok, "%T", err)
	assert.Equal(t, "role", merr.Column)
	assert.Equal(t, "Role", merr.Field)
	assert.True(t, strings.HasPrefix(merr.Error(), "missing column"), merr.Error())
	assert.Contains(t, merr.Error(), "Role")

	// a failed resolution leaves the cache empty
	_, ok = cache.Index()
	assert.False(t, ok)
}

func TestExtractDecodeError(t *testing.T) {
	tbl := MustTableOf[AB]()
	rec, err := tbl.ExtractOnce(row("a", "x", "b", "not a number"))
	require.Error(t, err)
	assert.Equal(t, AB{}, rec)

	derr, ok := err.(*DecodeError)
	require.True(t, ok, "%T", err)
	assert.Equal(t, "B", derr.Field)
	assert.Equal(t, 1, derr.Index)
	assert.Equal(t, "b", derr.Column)
	assert.NotNil(t, derr.Unwrap())
}

func TestExtractNullIntoValue(t *testing.T) {
	type Nullable struct {
		A *string `column:"name=a"`
		B int     `column:"name=b"`
	}
	tbl := MustTableOf[Nullable]()

	rec, err := tbl.ExtractOnce(row("a", nil, "b", int64(3)))
	require.NoError(t, err)
	assert.Nil(t, rec.A)
	assert.Equal(t, 3, rec.B)

	_, err = tbl.ExtractOnce(row("a", "x", "b", nil))
	require.Error(t, err)
	assert.IsType(t, &DecodeError{}, err)
}

func TestExtractWith(t *testing.T) {
	tbl := MustTableOf[XY]()
	index, err := tbl.Resolve(row("y", int64(0), "x", int64(0)))
	require.NoError(t, err)

	rec, err := tbl.ExtractWith(index, row("w", int64(8), "z", int64(9)))
	require.NoError(t, err)
	assert.Equal(t, XY{X: 9, Y: 8}, rec)

	_, err = tbl.ExtractWith(Index{0}, row("x", int64(1)))
	assert.Error(t, err)

	rec, err = ExtractWith[XY](index, row("y", int64(4), "x", int64(3)))
	require.NoError(t, err)
	assert.Equal(t, XY{X: 3, Y: 4}, rec)
}

func TestExtractPackageFunctions(t *testing.T) {
	rec, err := ExtractOnce[XY](row("x", int64(1), "y", int64(2)))
	require.NoError(t, err)
	assert.Equal(t, XY{X: 1, Y: 2}, rec)

	var cache Cache
	rec, err = Extract[XY](&cache, row("y", int64(5), "x", int64(6)))
	require.NoError(t, err)
	assert.Equal(t, XY{X: 6, Y: 5}, rec)

	_, err = ExtractOnce[int](row("x", int64(1)))
	assert.IsType(t, &ConfigError{}, err)
}

// A cache reused for a row of another layout decodes by position.
func TestExtractMixedLayouts(t *testing.T) {
	tbl := MustTableOf[XY]()
	var cache Cache

	rec, err := tbl.Extract(&cache, row("x", int64(1), "y", int64(2)))
	require.NoError(t, err)
	assert.Equal(t, XY{X: 1, Y: 2}, rec)

	rec, err = tbl.Extract(&cache, row("y", int64(2), "x", int64(1)))
	require.NoError(t, err)
	assert.Equal(t, XY{X: 2, Y: 1}, rec)

	cache.Reset()
	rec, err = tbl.Extract(&cache, row("y", int64(2), "x", int64(1)))
	require.NoError(t, err)
	assert.Equal(t, XY{X: 1, Y: 2}, rec)
}

func TestExtractPermutations(t *testing.T) {
	type Wide struct {
		ID        int64  `column:"name=id"`
		Given     string `column:"name=given_name"`
		Family    string `column:"name=family_name"`
		Email     string `column:"name=email"`
		Version   int64  `column:"name=version"`
		Extra     int64  `column:"idx=0"`
		Duplicate string `column:"name=email"`
	}
	tbl := MustTableOf[Wide]()
	columns := []string{"extra", "id", "given_name", "family_name", "email", "version", "other"}
	values := map[string]interface{}{
		"extra":       int64(42),
		"id":          int64(7),
		"given_name":  "Ada",
		"family_name": "Lovelace",
		"email":       "ada@example.com",
		"version":     int64(3),
		"other":       "ignored",
	}

	rnd := rand.New(rand.NewSource(1))
	for n := 0; n < 50; n++ {
		// keep "extra" at position 0 for the fixed index field
		rest := append([]string(nil), columns[1:]...)
		rnd.Shuffle(len(rest), func(i, j int) { rest[i], rest[j] = rest[j], rest[i] })
		names := append([]string{"extra"}, rest...)
		var vals []interface{}
		for _, name := range names {
			vals = append(vals, values[name])
		}
		rec, err := tbl.ExtractOnce(NewRow(names, vals))
		require.NoError(t, err)
		assert.Equal(t, Wide{
			ID:        7,
			Given:     "Ada",
			Family:    "Lovelace",
			Email:     "ada@example.com",
			Version:   3,
			Extra:     42,
			Duplicate: "ada@example.com",
		}, rec, "permutation %d: %v", n, names)
	}
}
