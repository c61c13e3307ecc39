package testdata

//rowmap:table
type Unknown struct {
	A decimal.Decimal
}
