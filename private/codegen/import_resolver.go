package codegen

import (
	"fmt"
	"go/ast"
	"path"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/jjeffery/errors"
)

// majorVersionRE matches the major version suffix of a module path.
var majorVersionRE = regexp.MustCompile(`^v[0-9]+$`)

// importResolver tracks the imports of the source file that are
// referenced by field types, so the generated file can import them.
type importResolver struct {
	packages map[string]*ast.ImportSpec
	used     map[string]*Import
}

func newImportResolver(imports []*ast.ImportSpec) (*importResolver, error) {
	resolver := &importResolver{
		packages: make(map[string]*ast.ImportSpec),
		used:     make(map[string]*Import),
	}
	for _, importSpec := range imports {
		if importSpec.Name != nil {
			switch importSpec.Name.Name {
			case ".":
				return nil, fmt.Errorf("dot imports are not supported: . %v", importSpec.Path.Value)
			case "_":
				continue
			}
			resolver.packages[importSpec.Name.Name] = importSpec
			continue
		}
		importPath, err := strconv.Unquote(importSpec.Path.Value)
		if err != nil {
			return nil, errors.Wrap(err, "invalid import path").With(
				"path", importSpec.Path.Value,
			)
		}
		resolver.packages[packageName(importPath)] = importSpec
	}
	return resolver, nil
}

// packageName guesses the package name from the import path, which
// is the last path element without a major version suffix or a
// "go-" prefix.
func packageName(importPath string) string {
	name := path.Base(importPath)
	if majorVersionRE.MatchString(name) {
		name = path.Base(path.Dir(importPath))
	}
	if i := strings.Index(name, ".v"); i > 0 && majorVersionRE.MatchString(name[i+1:]) {
		name = name[:i]
	}
	name = strings.TrimPrefix(name, "go-")
	return strings.ReplaceAll(name, "-", "")
}

// Resolve records that the package with the local name is used,
// and returns the import for it. It returns nil for unknown packages.
func (r *importResolver) Resolve(name string) *Import {
	if imp, ok := r.used[name]; ok {
		return imp
	}
	if importSpec, ok := r.packages[name]; ok {
		imp := &Import{
			Path: importSpec.Path.Value,
		}
		if importSpec.Name != nil {
			imp.Name = importSpec.Name.Name
		}
		r.used[name] = imp
		return imp
	}
	return nil
}

func (r *importResolver) exprString(t ast.Expr) (string, error) {
	switch v := t.(type) {
	case *ast.Ident:
		return v.Name, nil
	case *ast.ParenExpr:
		s, err := r.exprString(v.X)
		return "(" + s + ")", err
	case *ast.SelectorExpr:
		x, ok := v.X.(*ast.Ident)
		if !ok {
			return "", errors.New("unexpected selector")
		}
		if r.Resolve(x.Name) == nil {
			return "", errors.New("unknown package").With("selector", x.Name)
		}
		return x.Name + "." + v.Sel.Name, nil
	case *ast.StarExpr:
		s, err := r.exprString(v.X)
		return "*" + s, err
	case *ast.ArrayType:
		elt, err := r.exprString(v.Elt)
		if err != nil {
			return "", err
		}
		if v.Len == nil {
			return "[]" + elt, nil
		}
		lit, ok := v.Len.(*ast.BasicLit)
		if !ok {
			return "", errors.New("array length must be a literal")
		}
		return "[" + lit.Value + "]" + elt, nil
	case *ast.MapType:
		key, err := r.exprString(v.Key)
		if err != nil {
			return "", err
		}
		value, err := r.exprString(v.Value)
		if err != nil {
			return "", err
		}
		return "map[" + key + "]" + value, nil
	case *ast.IndexExpr:
		x, err := r.exprString(v.X)
		if err != nil {
			return "", err
		}
		index, err := r.exprString(v.Index)
		if err != nil {
			return "", err
		}
		return x + "[" + index + "]", nil
	case *ast.InterfaceType:
		if v.Methods == nil || len(v.Methods.List) == 0 {
			return "interface{}", nil
		}
		return "", errors.New("interface types with methods are not supported")
	}
	return "", errors.New("unsupported type expression").With("expr", fmt.Sprintf("%T", t))
}

// Imports returns the imports used, sorted by path.
func (r *importResolver) Imports() []*Import {
	var imports []*Import
	for _, imp := range r.used {
		imports = append(imports, imp)
	}
	sort.Slice(imports, func(i, j int) bool {
		return imports[i].Path < imports[j].Path
	})
	return imports
}
