package parser

import (
	"github.com/ozgrakkurt/zrak/internal/errors"
	"github.com/ozgrakkurt/zrak/pkg/ast"
	"github.com/ozgrakkurt/zrak/pkg/token"
)

// parseForExpr parses `for IDENT in EXPR BLOCK` with `for` consumed.
func (p *parseState) parseForExpr() (*ast.ForExpr, error) {
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.IN); err != nil {
		return nil, err
	}

	iter, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &ast.ForExpr{Var: name, Iter: iter, Body: body}, nil
}

// parseWhileExpr parses `while EXPR BLOCK` with `while` consumed.
func (p *parseState) parseWhileExpr() (*ast.WhileExpr, error) {
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &ast.WhileExpr{Cond: cond, Body: body}, nil
}

// parseIfExpr parses `if EXPR BLOCK (else (IF | BLOCK))?` with `if`
// consumed. An `else if` chains by nesting another IfExpr in the else arm.
func (p *parseState) parseIfExpr() (*ast.IfExpr, error) {
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	tok, err := p.sc.Next()
	if err != nil {
		return nil, err
	}
	if tok.Type != token.ELSE {
		p.sc.Pushback(tok)
		return &ast.IfExpr{Cond: cond, Then: then}, nil
	}

	tok, err = p.sc.Next()
	if err != nil {
		return nil, err
	}
	if tok.Type == token.IF {
		elif, err := p.parseIfExpr()
		if err != nil {
			return nil, err
		}
		return &ast.IfExpr{Cond: cond, Then: then, Else: &ast.ElseArm{If: elif}}, nil
	}

	p.sc.Pushback(tok)
	block, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.IfExpr{Cond: cond, Then: then, Else: &ast.ElseArm{Block: block}}, nil
}

// parseClosure parses `PARAMS | BLOCK` with the opening `|` consumed.
func (p *parseState) parseClosure() (*ast.ClosureExpr, error) {
	params, err := p.parseParams()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.PIPE); err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &ast.ClosureExpr{Params: params, Body: body}, nil
}

// parseBlock parses `{ DECL* EXPR? }`. Declarations and semicolon-
// terminated expressions accumulate in order; an expression followed
// directly by `}` becomes the block's trailing value.
func (p *parseState) parseBlock() (*ast.Block, error) {
	if _, err := p.expect(token.LBRACE); err != nil {
		return nil, err
	}

	block := &ast.Block{}
	for {
		tok, err := p.sc.Next()
		if err != nil {
			return nil, err
		}

		switch tok.Type {
		case token.STRUCT, token.FN, token.LET, token.RETURN, token.BREAK:
			p.sc.Pushback(tok)
			decl, err := p.parseDecl()
			if err != nil {
				return nil, err
			}
			block.Decls = append(block.Decls, decl)

		case token.RBRACE:
			return block, nil

		default:
			p.sc.Pushback(tok)
			expr, err := p.parseExpr()
			if err != nil {
				return nil, err
			}

			next, err := p.sc.Next()
			if err != nil {
				return nil, err
			}
			switch {
			case next.Type.IsAssign():
				target, err := lcallFromExpr(expr, next.Pos)
				if err != nil {
					return nil, err
				}
				value, err := p.parseExpr()
				if err != nil {
					return nil, err
				}
				if _, err := p.expect(token.SEMICOLON); err != nil {
					return nil, err
				}
				stmt := &ast.AssignStmt{Target: *target, Op: next.Type, Value: value}
				block.Decls = append(block.Decls, &ast.StmtDecl{Stmt: stmt})

			case next.Type == token.SEMICOLON:
				block.Decls = append(block.Decls, &ast.StmtDecl{Stmt: &ast.ExprStmt{Expr: expr}})

			case next.Type == token.RBRACE:
				block.Expr = &expr
				return block, nil

			default:
				return nil, errors.NewUnexpectedToken(next)
			}
		}
	}
}
