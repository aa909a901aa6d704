package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// EnumImportPath is the package the generated code registers with.
const EnumImportPath = "go.lepak.sg/gamekit/enum"

// DefaultSuffix is appended to the lower-cased type name to form the
// output file name.
const DefaultSuffix = "_enum.go"

// Header marks generated files.
const Header = "// Code generated by enumgen; DO NOT EDIT."

// Source returns the formatted source of a file in package pkgName that
// registers the constants names, in order, as the values of typeName.
// The names are registered too, so the enum package can recognise the
// sentinel of a type without a String method.
func Source(pkgName, typeName string, names []string) ([]byte, error) {
	if len(names) == 0 {
		return nil, errors.Wrap(ErrNoConstants, typeName)
	}

	qual := "enum"
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s\n\npackage %s\n\n", Header, pkgName)
	if pkgName == "enum" {
		qual = "gamekitenum"
		fmt.Fprintf(&buf, "import %s %q\n\n", qual, EnumImportPath)
	} else {
		fmt.Fprintf(&buf, "import %q\n\n", EnumImportPath)
	}

	fmt.Fprintf(&buf, "func init() {\n\t%s.RegisterNamed(\n\t\t[]string{\n", qual)
	for _, n := range names {
		fmt.Fprintf(&buf, "\t\t\t%q,\n", n)
	}
	fmt.Fprintf(&buf, "\t\t},\n")
	for _, n := range names {
		fmt.Fprintf(&buf, "\t\t%s,\n", n)
	}
	fmt.Fprintf(&buf, "\t)\n}\n")

	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, errors.Wrapf(err, "format registration of %s", typeName)
	}
	return out, nil
}

// FileName returns the name of the file generated for typeName.
func FileName(typeName, suffix string) string {
	if suffix == "" {
		suffix = DefaultSuffix
	}
	return strings.ToLower(typeName) + suffix
}

// Write generates the registration of typeName in p and writes it next
// to the package sources. It returns the path written.
func Write(fs afero.Fs, p *Package, typeName, suffix string) (string, error) {
	names, err := p.Constants(typeName)
	if err != nil {
		return "", err
	}

	src, err := Source(p.Name, typeName, names)
	if err != nil {
		return "", err
	}

	path := filepath.Join(p.Dir, FileName(typeName, suffix))
	if err := afero.WriteFile(fs, path, src, 0o644); err != nil {
		return "", errors.Wrapf(err, "write %s", path)
	}
	return path, nil
}
