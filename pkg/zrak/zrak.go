// Package zrak is the public entry point of the zrak front end.
//
// It wraps the scanner and parser behind a single Parse call:
//
//	result, err := zrak.Parse(source)
//	if err != nil { ... }
//	use result.Program, result.Interner
//
// The returned Interner owns every identifier and string-literal payload in
// the Program; resolve ident.Str handles through it.
package zrak

import (
	"github.com/ozgrakkurt/zrak/internal/parser"
	"github.com/ozgrakkurt/zrak/pkg/ast"
	"github.com/ozgrakkurt/zrak/pkg/ident"
)

// Result is a successful parse: the program and the interner its
// identifiers live in.
type Result struct {
	Program  *ast.Program
	Interner *ident.Interner
}

// Parse parses a whole source text. It returns on the first problem with a
// structured error describing it; there is no error recovery.
func Parse(source string) (*Result, error) {
	prog, interner, err := parser.Parse(source)
	if err != nil {
		return nil, err
	}
	return &Result{Program: prog, Interner: interner}, nil
}
