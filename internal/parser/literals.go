package parser

import (
	"github.com/ozgrakkurt/zrak/internal/errors"
	"github.com/ozgrakkurt/zrak/pkg/ast"
	"github.com/ozgrakkurt/zrak/pkg/token"
)

// parseStructLit parses `new IDENT { (IDENT : EXPR ,)* }` with `new`
// consumed. A trailing comma is accepted.
func (p *parseState) parseStructLit() (*ast.StructLit, error) {
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.LBRACE); err != nil {
		return nil, err
	}

	lit := &ast.StructLit{Name: name}
	for {
		tok, err := p.sc.Next()
		if err != nil {
			return nil, err
		}
		if tok.Type == token.RBRACE {
			return lit, nil
		}
		if tok.Type != token.IDENT {
			return nil, errors.NewUnexpectedToken(tok)
		}
		field := tok.Str

		if _, err := p.expect(token.COLON); err != nil {
			return nil, err
		}
		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		lit.Fields = append(lit.Fields, ast.FieldInit{Name: field, Value: value})

		sep, err := p.sc.Next()
		if err != nil {
			return nil, err
		}
		switch sep.Type {
		case token.COMMA:
		case token.RBRACE:
			return lit, nil
		default:
			return nil, errors.NewUnexpectedToken(sep)
		}
	}
}

// parseMapLit parses `map { (EXPR : EXPR ,)* }` with `map` consumed. Keys
// are general expressions. A trailing comma is accepted.
func (p *parseState) parseMapLit() (*ast.MapLit, error) {
	if _, err := p.expect(token.LBRACE); err != nil {
		return nil, err
	}

	lit := &ast.MapLit{}
	for {
		tok, err := p.sc.Peek()
		if err != nil {
			return nil, err
		}
		if tok.Type == token.RBRACE {
			_, err := p.sc.Next()
			return lit, err
		}

		key, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.COLON); err != nil {
			return nil, err
		}
		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		lit.Entries = append(lit.Entries, ast.MapEntry{Key: key, Value: value})

		sep, err := p.sc.Next()
		if err != nil {
			return nil, err
		}
		switch sep.Type {
		case token.COMMA:
		case token.RBRACE:
			return lit, nil
		default:
			return nil, errors.NewUnexpectedToken(sep)
		}
	}
}

// parseArrayLit parses `[ (EXPR ,)* ]` with `[` consumed.
func (p *parseState) parseArrayLit() (*ast.ArrayLit, error) {
	elems, err := p.parseExprList(token.RBRACK)
	if err != nil {
		return nil, err
	}
	return &ast.ArrayLit{Elems: elems}, nil
}
