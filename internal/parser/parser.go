// Package parser implements the zrak recursive-descent parser.
//
// The parser pulls tokens from the scanner with one-token lookahead
// (Peek/Pushback) and defines one method per grammar non-terminal. Binary
// precedence levels recurse on themselves for the right operand, so the
// produced trees are right-associative; see pkg/ast.
//
// Parsing stops at the first problem. There is no error recovery or
// resynchronization: the error is returned as-is.
package parser

import (
	"github.com/ozgrakkurt/zrak/internal/errors"
	"github.com/ozgrakkurt/zrak/internal/scanner"
	"github.com/ozgrakkurt/zrak/pkg/ast"
	"github.com/ozgrakkurt/zrak/pkg/ident"
	"github.com/ozgrakkurt/zrak/pkg/token"
)

// Parse scans and parses a whole source text. It creates the interner that
// owns the program's identifiers and returns it alongside the AST so the
// caller can resolve ident.Str handles.
func Parse(input string) (*ast.Program, *ident.Interner, error) {
	interner := ident.New()
	prog, err := ParseWith(scanner.New(input, interner))
	if err != nil {
		return nil, nil, err
	}
	return prog, interner, nil
}

// ParseWith parses from an existing scanner. Use it when the driver owns
// the scanner and interner, for example to share one interner across
// multiple inputs.
func ParseWith(sc *scanner.Scanner) (*ast.Program, error) {
	p := &parseState{sc: sc}
	return p.parseProgram()
}

// parseState holds the parser's only state: exclusive access to the
// scanner for the duration of the parse.
type parseState struct {
	sc *scanner.Scanner
}

func (p *parseState) parseProgram() (*ast.Program, error) {
	prog := &ast.Program{}
	for {
		tok, err := p.sc.Peek()
		if err != nil {
			return nil, err
		}
		if tok.Type == token.EOF {
			return prog, nil
		}
		decl, err := p.parseDecl()
		if err != nil {
			return nil, err
		}
		prog.Decls = append(prog.Decls, decl)
	}
}

// expect consumes the next token and fails unless it has the given type.
func (p *parseState) expect(tokenType token.TokenType) (token.Token, error) {
	tok, err := p.sc.Next()
	if err != nil {
		return token.Token{}, err
	}
	if tok.Type != tokenType {
		return token.Token{}, errors.NewUnexpectedToken(tok)
	}
	return tok, nil
}

// expectIdent consumes an IDENT token and returns its interned handle.
func (p *parseState) expectIdent() (ident.Str, error) {
	tok, err := p.expect(token.IDENT)
	if err != nil {
		return 0, err
	}
	return tok.Str, nil
}
