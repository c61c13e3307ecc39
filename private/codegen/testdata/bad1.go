package testdata

//rowmap:table
type BadTag struct {
	A int `column:"name=a,idx=1"`
}
