package testdata

//rowmap:table
type Embedded struct {
	Other
	A int
}
