package testdata

//rowmap:table convention=kebab
type BadConvention struct {
	A int
}
