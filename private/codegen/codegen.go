// Package codegen generates table definitions for struct types, for
// the rowmap-gen tool.
package codegen

import (
	"go/ast"
	"go/parser"
	"go/token"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"unicode"

	"github.com/jjeffery/errors"
	"github.com/jjeffery/rowmap/private/column"
	"github.com/jjeffery/rowmap/private/naming"
)

// Directive marks a struct type for which a table is generated.
// It is written as a comment on the type declaration, optionally
// followed by options:
//
//	//rowmap:table var=userTable convention=snake
//	type User struct { ... }
const Directive = "//rowmap:table"

// DefaultOutput returns the default filename for generated output
// given the filename of the input file.
func DefaultOutput(filename string) string {
	if filename == "" {
		return ""
	}
	output := strings.TrimSuffix(filename, filepath.Ext(filename))
	output = output + "_rowmap.go"
	return output
}

// Model contains all of the information required by the template
// to generate code.
type Model struct {
	CommandLine string
	Package     string
	Imports     []*Import
	Tables      []*Table
}

// Import describes a single import line required for the generated file.
type Import struct {
	Name string // Local name, or blank
	Path string // Quoted import path
}

func (imp *Import) String() string {
	if imp.Name != "" {
		return imp.Name + " " + imp.Path
	}
	return imp.Path
}

// Table contains the information the template needs about
// one struct type.
type Table struct {
	TypeName string
	VarName  string
	Fields   []*Field
}

// Field is one field of a table.
type Field struct {
	Name string // Go field name
	Type string // Go type expression
	Func string // rowmap builder function: Named or At
	Arg  string // Go literal for the column name or position
}

// Parse the file and build the model, which can be
// used to generate the code.
func Parse(filename string) (*Model, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, nil, parser.ParseComments)
	if err != nil {
		return nil, errors.Wrap(err, "cannot parse file").With(
			"filename", filename,
		)
	}

	model := &Model{
		Package: file.Name.Name,
	}
	ir, err := newImportResolver(file.Imports)
	if err != nil {
		return nil, err
	}

	for _, decl := range file.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			continue
		}
		for _, spec := range genDecl.Specs {
			typeSpec := spec.(*ast.TypeSpec)
			doc := typeSpec.Doc
			if doc == nil && len(genDecl.Specs) == 1 {
				doc = genDecl.Doc
			}
			opts, ok := findDirective(doc)
			if !ok {
				continue
			}
			structType, ok := typeSpec.Type.(*ast.StructType)
			if !ok || typeSpec.TypeParams != nil {
				return nil, errors.New("directive is not on a non-generic struct type").With(
					"type", typeSpec.Name.Name,
				)
			}
			tbl, err := newTable(ir, typeSpec.Name.Name, structType, opts)
			if err != nil {
				return nil, err
			}
			model.Tables = append(model.Tables, tbl)
		}
	}
	model.Imports = ir.Imports()

	return model, nil
}

// findDirective returns the options following the directive
// in the comment group, and false if there is no directive.
func findDirective(doc *ast.CommentGroup) ([]string, bool) {
	if doc == nil {
		return nil, false
	}
	for _, comment := range doc.List {
		text := comment.Text
		if text == Directive {
			return nil, true
		}
		if strings.HasPrefix(text, Directive+" ") {
			return strings.Fields(strings.TrimPrefix(text, Directive)), true
		}
	}
	return nil, false
}

func newTable(ir *importResolver, typeName string, structType *ast.StructType, opts []string) (*Table, error) {
	tbl := &Table{
		TypeName: typeName,
		VarName:  lowerCaseField(typeName) + "Table",
	}
	var convention naming.Convention = naming.Same
	for _, opt := range opts {
		key, value, ok := strings.Cut(opt, "=")
		if !ok {
			return nil, errors.New("expected key=value").With("type", typeName, "option", opt)
		}
		switch key {
		case "var":
			tbl.VarName = value
		case "convention":
			c, ok := naming.Lookup(value)
			if !ok {
				return nil, errors.New("unknown convention").With(
					"type", typeName,
					"convention", value,
				)
			}
			convention = c
		default:
			return nil, errors.New("unknown option").With("type", typeName, "option", key)
		}
	}

	for _, field := range structType.Fields.List {
		if len(field.Names) == 0 {
			return nil, errors.New("embedded fields are not supported").With(
				"type", typeName,
			)
		}
		var tag column.Tag
		if field.Tag != nil {
			var err error
			tag, err = column.ParseTag(reflect.StructTag(stripQuotes(field.Tag.Value)).Get(column.DefaultTagKey))
			if err != nil {
				return nil, errors.Wrap(err, "invalid struct tag").With(
					"type", typeName,
					"field", field.Names[0].Name,
				)
			}
		}
		if tag.Skip {
			continue
		}
		if !anyExported(field.Names) {
			continue
		}
		typeExpr, err := ir.exprString(field.Type)
		if err != nil {
			return nil, errors.Wrap(err, "unsupported field type").With(
				"type", typeName,
				"field", field.Names[0].Name,
			)
		}
		for _, ident := range field.Names {
			if !ident.IsExported() {
				continue
			}
			f := &Field{
				Name: ident.Name,
				Type: typeExpr,
			}
			switch {
			case tag.HasIdx:
				f.Func = "At"
				f.Arg = strconv.Itoa(tag.Idx)
			case tag.HasName:
				f.Func = "Named"
				f.Arg = strconv.Quote(tag.Name)
			default:
				f.Func = "Named"
				f.Arg = strconv.Quote(column.NewPath(ident.Name, "").ColumnName(convention))
			}
			tbl.Fields = append(tbl.Fields, f)
		}
	}
	return tbl, nil
}

func anyExported(idents []*ast.Ident) bool {
	for _, ident := range idents {
		if ident.IsExported() {
			return true
		}
	}
	return false
}

func stripQuotes(s string) string {
	if unquoted, err := strconv.Unquote(s); err == nil {
		return unquoted
	}
	return strings.Trim(s, "`")
}

func lowerCaseField(s string) string {
	var sb strings.Builder
	var metLower bool
	for _, ch := range s {
		if !metLower && unicode.IsUpper(ch) {
			sb.WriteRune(unicode.ToLower(ch))
			continue
		}
		metLower = true
		sb.WriteRune(ch)
	}
	return sb.String()
}
