// Package gen writes enum registrations for Go enumeration types.
//
// For a type declared as
//
//	type Direction int
//
//	const (
//		Invalid Direction = iota
//		North
//		East
//	)
//
// it produces a file whose init function calls
// enum.Register(Invalid, North, East), which is what the enum package
// needs to list the values of Direction at run time.
package gen

import (
	"go/ast"
	"go/parser"
	"go/token"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// ErrNoConstants is returned when a type has no constants declared in the
// package.
var ErrNoConstants = errors.New("no constants declared")

// Package is the parsed, non-test source of one Go package directory.
type Package struct {
	Name  string
	Dir   string
	fset  *token.FileSet
	files []*ast.File
}

// Parse reads every non-test .go file in dir on fs.
// Files are parsed in name order, so constants are reported in the order
// a reader of the directory would see them.
func Parse(fs afero.Fs, dir string) (*Package, error) {
	infos, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", dir)
	}

	p := &Package{
		Dir:  dir,
		fset: token.NewFileSet(),
	}
	for _, fi := range infos {
		name := fi.Name()
		if fi.IsDir() || !isSource(name) {
			continue
		}

		path := filepath.Join(dir, name)
		src, err := afero.ReadFile(fs, path)
		if err != nil {
			return nil, errors.Wrapf(err, "read %s", path)
		}

		f, err := parser.ParseFile(p.fset, path, src, parser.SkipObjectResolution)
		if err != nil {
			return nil, errors.Wrapf(err, "parse %s", path)
		}

		switch {
		case p.Name == "":
			p.Name = f.Name.Name
		case p.Name != f.Name.Name:
			return nil, errors.Errorf("%s: package %s, expected %s", path, f.Name.Name, p.Name)
		}
		p.files = append(p.files, f)
	}

	if len(p.files) == 0 {
		return nil, errors.Errorf("no Go source files in %s", dir)
	}
	return p, nil
}

func isSource(name string) bool {
	if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
		return false
	}
	return strings.HasSuffix(name, ".go") && !strings.HasSuffix(name, "_test.go")
}

// HasType reports whether the package declares a type called typeName.
func (p *Package) HasType(typeName string) bool {
	found := false
	for _, f := range p.files {
		ast.Inspect(f, func(n ast.Node) bool {
			if ts, ok := n.(*ast.TypeSpec); ok && ts.Name.Name == typeName {
				found = true
			}
			return !found
		})
		if found {
			return true
		}
	}
	return false
}

// Constants returns the names of the constants of type typeName in
// declaration order. A constant belongs to the type when its spec names
// the type, when its value is a conversion to the type, or when it
// repeats the previous spec of a const block that does either.
// Blank identifiers are skipped.
func (p *Package) Constants(typeName string) ([]string, error) {
	if !p.HasType(typeName) {
		return nil, errors.Errorf("type %s not declared in package %s", typeName, p.Name)
	}

	var names []string
	for _, f := range p.files {
		for _, decl := range f.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.CONST {
				continue
			}
			names = append(names, constBlock(gd, typeName)...)
		}
	}

	if len(names) == 0 {
		return nil, errors.Wrapf(ErrNoConstants, "%s.%s", p.Name, typeName)
	}
	return names, nil
}

// constBlock collects the names of one const declaration that have type
// typeName.
func constBlock(gd *ast.GenDecl, typeName string) []string {
	var (
		names   []string
		current bool // whether the last spec with values was of typeName
	)

	for _, spec := range gd.Specs {
		vs := spec.(*ast.ValueSpec)

		switch {
		case vs.Type != nil:
			current = isIdent(vs.Type, typeName)
		case len(vs.Values) > 0:
			current = isConversion(vs.Values[0], typeName)
		}
		// A spec with neither type nor values repeats the previous one.

		if !current {
			continue
		}
		for _, n := range vs.Names {
			if n.Name != "_" {
				names = append(names, n.Name)
			}
		}
	}
	return names
}

func isIdent(expr ast.Expr, name string) bool {
	id, ok := expr.(*ast.Ident)
	return ok && id.Name == name
}

func isConversion(expr ast.Expr, typeName string) bool {
	for {
		p, ok := expr.(*ast.ParenExpr)
		if !ok {
			break
		}
		expr = p.X
	}

	call, ok := expr.(*ast.CallExpr)
	return ok && len(call.Args) == 1 && isIdent(call.Fun, typeName)
}
