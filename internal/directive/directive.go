// Package directive parses enumrefl directives from Go source files.
//
// Directives are line comments in the doc comment of a type declaration:
//
//	//enumrefl:enum [strict] [text] [consts=false] [string=false] [output=file.go]
//	//enumrefl:values Red = 1, Green,
//	//enumrefl:values Blue = 0x10
//	type Color uint8
//
// The enum directive marks the type and carries generation options.
// The values directives hold the variant list; multiple lines are joined.
package directive

import (
	"context"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/broady/enumrefl/internal/variant"
)

const prefix = "//enumrefl:"

// Verb is the directive name following the prefix.
type Verb string

const (
	VerbEnum   Verb = "enum"
	VerbValues Verb = "values"
)

// Enum is a type declaration marked with //enumrefl:enum.
type Enum struct {
	// TypeName is the declared type name.
	TypeName string `validate:"required"`

	// Underlying is the Go name of the basic integer type, e.g. "uint8".
	Underlying string `validate:"required,oneof=int int8 int16 int32 int64 uint uint8 uint16 uint32 uint64 uintptr byte rune"`

	// Kind is the width and signedness used to evaluate values.
	Kind variant.Kind

	// Values is the raw variant list, one line per values directive.
	Values string

	// Options are the key=value pairs of the enum directive.
	Options Options

	// Pos is the location of the enum directive.
	Pos token.Position
}

// Package holds the enums found in one Go package.
type Package struct {
	Name  string // package name
	Path  string // import path
	Dir   string // directory containing the package
	Enums []Enum
}

// Scan loads the packages matching patterns and collects their enum directives.
//
// Patterns follow go command semantics ("." for the current directory,
// "./..." for a tree, import paths). If dir is empty, the current directory is used.
//
// Type and import errors are ignored so that a stale generated file does not
// prevent regeneration; syntax errors, and load errors that leave no syntax,
// are returned.
func Scan(ctx context.Context, dir string, patterns ...string) ([]*Package, error) {
	if len(patterns) == 0 {
		patterns = []string{"."}
	}
	cfg := &packages.Config{
		Context: ctx,
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedSyntax |
			packages.NeedTypes | packages.NeedTypesInfo,
		Dir: dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("load packages: %w", err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages found matching %q", patterns)
	}

	var result []*Package
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			// Unresolvable imports, such as the runtime package before it is
			// required, still leave the syntax we need.
			if e.Kind == packages.ParseError || len(pkg.Syntax) == 0 {
				return nil, fmt.Errorf("package %s: %v", pkg.PkgPath, e)
			}
		}

		p := &Package{Name: pkg.Name, Path: pkg.PkgPath}
		if len(pkg.GoFiles) > 0 {
			p.Dir = filepath.Dir(pkg.GoFiles[0])
		}
		for _, f := range pkg.Syntax {
			enums, err := parseFile(pkg.Fset, pkg.TypesInfo, f)
			if err != nil {
				return nil, err
			}
			p.Enums = append(p.Enums, enums...)
		}
		result = append(result, p)
	}
	return result, nil
}

// parseFile extracts enum directives from a single file.
func parseFile(fset *token.FileSet, info *types.Info, f *ast.File) ([]Enum, error) {
	var enums []Enum
	attached := make(map[*ast.CommentGroup]bool)

	for _, decl := range f.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			continue
		}
		for _, spec := range gen.Specs {
			ts := spec.(*ast.TypeSpec)
			doc := ts.Doc
			if doc == nil && len(gen.Specs) == 1 {
				doc = gen.Doc
			}
			if doc == nil {
				continue
			}

			enum, found, err := parseDoc(fset, doc)
			if err != nil {
				return nil, err
			}
			if !found {
				continue
			}
			attached[doc] = true

			if err := resolveType(info, ts, &enum); err != nil {
				return nil, fmt.Errorf("%s: %w", enum.Pos, err)
			}
			if err := validate.Struct(enum); err != nil {
				return nil, fmt.Errorf("%s: invalid enum %s: %w", enum.Pos, enum.TypeName, err)
			}
			enums = append(enums, enum)
		}
	}

	// Directives anywhere else are mistakes.
	for _, cg := range f.Comments {
		if attached[cg] {
			continue
		}
		for _, c := range cg.List {
			if strings.HasPrefix(c.Text, prefix) {
				return nil, fmt.Errorf("%s: %s directive must precede a type declaration",
					fset.Position(c.Pos()), strings.Fields(c.Text)[0])
			}
		}
	}

	return enums, nil
}

// parseDoc reads the directives of one doc comment.
// found is false if the comment holds no enumrefl directive.
func parseDoc(fset *token.FileSet, doc *ast.CommentGroup) (enum Enum, found bool, err error) {
	var values []string
	var valuesPos token.Position

	for _, c := range doc.List {
		rest, ok := strings.CutPrefix(c.Text, prefix)
		if !ok {
			continue
		}
		pos := fset.Position(c.Pos())
		verb, args, _ := strings.Cut(rest, " ")

		switch Verb(verb) {
		case VerbEnum:
			if found {
				return Enum{}, false, fmt.Errorf("%s: duplicate %s%s directive", pos, prefix, verb)
			}
			opts, err := ParseOptions(strings.Fields(args))
			if err != nil {
				return Enum{}, false, fmt.Errorf("%s: %w", pos, err)
			}
			enum.Options = opts
			enum.Pos = pos
			found = true
		case VerbValues:
			if len(values) == 0 {
				valuesPos = pos
			}
			values = append(values, args)
		default:
			return Enum{}, false, fmt.Errorf("%s: unknown directive %s%s", pos, prefix, verb)
		}
	}

	if !found {
		if len(values) > 0 {
			return Enum{}, false, fmt.Errorf("%s: %s%s without %s%s", valuesPos, prefix, VerbValues, prefix, VerbEnum)
		}
		return Enum{}, false, nil
	}
	enum.Values = strings.Join(values, "\n")
	return enum, true, nil
}

// resolveType fills in the name and underlying integer type of the declaration.
func resolveType(info *types.Info, ts *ast.TypeSpec, enum *Enum) error {
	enum.TypeName = ts.Name.Name
	if ts.Assign.IsValid() {
		return fmt.Errorf("%s is an alias; declare a defined type", ts.Name.Name)
	}
	if ts.TypeParams != nil {
		return fmt.Errorf("%s is generic", ts.Name.Name)
	}

	obj, ok := info.Defs[ts.Name].(*types.TypeName)
	if !ok {
		return fmt.Errorf("cannot resolve type %s", ts.Name.Name)
	}
	basic, ok := obj.Type().Underlying().(*types.Basic)
	if !ok || basic.Info()&types.IsInteger == 0 || basic.Kind() == types.UntypedInt {
		return fmt.Errorf("%s has underlying type %s; want an integer type", ts.Name.Name, obj.Type().Underlying())
	}

	kind, ok := variant.KindOf(basic.Name())
	if !ok {
		return fmt.Errorf("%s: unsupported underlying type %s", ts.Name.Name, basic.Name())
	}
	enum.Underlying = basic.Name()
	enum.Kind = kind
	return nil
}
