// Package goast extracts top-level type definitions from Go source files
// using go/parser and go/ast.
package goast

import (
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
)

// ModuleDeprecatedMarker flags a whole source file as deprecated. Files
// carrying it are skipped by the doc checks.
const ModuleDeprecatedMarker = "This module is deprecated"

// TypeDef describes one top-level type declaration found in a source file.
type TypeDef struct {
	// Name is the declared type name.
	Name string

	// Line is the 1-based line of the declaration.
	Line int

	// Doc is the declaration's doc comment text, "" when absent.
	Doc string
}

// File is the parse result for one source file.
type File struct {
	// Types indexes top-level type declarations by name.
	Types map[string]TypeDef

	// Deprecated reports whether the whole file is marked deprecated.
	Deprecated bool
}

// ParseFile parses src and returns its top-level type declarations. This is
// the authoritative lookup behind the doc checks' cheap substring filters:
// a name appearing only in a comment or string never shows up here.
func ParseFile(filename string, src []byte) (*File, error) {
	fset := token.NewFileSet()
	parsed, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, err
	}

	out := &File{
		Types:      map[string]TypeDef{},
		Deprecated: strings.Contains(string(src), ModuleDeprecatedMarker),
	}

	for _, decl := range parsed.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}
		for _, spec := range gd.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}

			// A grouped declaration hangs the doc off the spec; a
			// standalone one hangs it off the outer decl.
			doc := ts.Doc
			if doc == nil {
				doc = gd.Doc
			}

			td := TypeDef{
				Name: ts.Name.Name,
				Line: fset.Position(ts.Pos()).Line,
			}
			if doc != nil {
				td.Doc = doc.Text()
			}
			out.Types[td.Name] = td
		}
	}

	return out, nil
}
