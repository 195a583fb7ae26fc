package parser

import (
	"github.com/ozgrakkurt/zrak/internal/errors"
	"github.com/ozgrakkurt/zrak/pkg/ast"
	"github.com/ozgrakkurt/zrak/pkg/ident"
	"github.com/ozgrakkurt/zrak/pkg/token"
)

// parseDecl dispatches on one token of lookahead: struct, fn and let start
// their declaration forms, anything else is a statement.
func (p *parseState) parseDecl() (ast.Decl, error) {
	tok, err := p.sc.Next()
	if err != nil {
		return nil, err
	}

	switch tok.Type {
	case token.STRUCT:
		return p.parseStructDecl()
	case token.FN:
		return p.parseFunDecl()
	case token.LET:
		return p.parseVarDecl()
	default:
		p.sc.Pushback(tok)
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		return &ast.StmtDecl{Stmt: stmt}, nil
	}
}

// parseStructDecl parses `struct IDENT { (fn FUN_DECL)* }` with the
// leading keyword already consumed. The interior admits only method
// definitions, and method names must be pairwise distinct.
func (p *parseState) parseStructDecl() (*ast.StructDecl, error) {
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.LBRACE); err != nil {
		return nil, err
	}

	methods := make(map[ident.Str]*ast.FunDecl)
	for {
		tok, err := p.sc.Next()
		if err != nil {
			return nil, err
		}

		switch tok.Type {
		case token.FN:
			fun, err := p.parseFunDecl()
			if err != nil {
				return nil, err
			}
			if _, exists := methods[fun.Name]; exists {
				return nil, errors.NewMethodDefinedTwice(fun.Name, tok.Pos)
			}
			methods[fun.Name] = fun
		case token.RBRACE:
			return &ast.StructDecl{Name: name, Methods: methods}, nil
		default:
			return nil, errors.NewUnexpectedToken(tok)
		}
	}
}

// parseFunDecl parses `fn IDENT ( PARAMS ) BLOCK` with the leading keyword
// already consumed.
func (p *parseState) parseFunDecl() (*ast.FunDecl, error) {
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	params, err := p.parseParams()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}

	block, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &ast.FunDecl{Name: name, Params: params, Block: block}, nil
}

// parseParams parses a possibly empty comma-separated list of bare
// identifiers. The closing delimiter is left in the stream for the caller:
// `)` for functions, `|` for closures. A trailing comma is accepted.
func (p *parseState) parseParams() ([]ident.Str, error) {
	var params []ident.Str

	for {
		tok, err := p.sc.Next()
		if err != nil {
			return nil, err
		}
		if tok.Type != token.IDENT {
			p.sc.Pushback(tok)
			return params, nil
		}
		params = append(params, tok.Str)

		sep, err := p.sc.Next()
		if err != nil {
			return nil, err
		}
		if sep.Type != token.COMMA {
			p.sc.Pushback(sep)
			return params, nil
		}
	}
}

// parseVarDecl parses `let IDENT = EXPR ;` with the leading keyword
// already consumed. The initializer is mandatory.
func (p *parseState) parseVarDecl() (*ast.VarDecl, error) {
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.ASSIGN); err != nil {
		return nil, err
	}

	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.SEMICOLON); err != nil {
		return nil, err
	}

	return &ast.VarDecl{Name: name, Expr: expr}, nil
}
