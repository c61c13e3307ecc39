package codegen

import "text/template"

// DefaultTemplate is the template used to generate a file from a Model.
var DefaultTemplate = template.Must(template.New("rowmap").Parse(`// Code generated by "{{.CommandLine}}"; DO NOT EDIT.

package {{.Package}}

import (
	"github.com/jjeffery/rowmap"
{{- range .Imports}}
	{{.}}
{{- end}}
)
{{range $tbl := .Tables}}
// {{$tbl.VarName}} binds the fields of {{$tbl.TypeName}} to columns.
var {{$tbl.VarName}} = rowmap.MustNewTable[{{$tbl.TypeName}}](
{{- range $tbl.Fields}}
	rowmap.{{.Func}}({{.Arg}}, func(row *{{$tbl.TypeName}}) *{{.Type}} { return &row.{{.Name}} }).WithPath("{{.Name}}"),
{{- end}}
)
{{end}}`))
