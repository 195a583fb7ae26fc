package parser

import (
	"github.com/ozgrakkurt/zrak/internal/errors"
	"github.com/ozgrakkurt/zrak/pkg/ast"
	"github.com/ozgrakkurt/zrak/pkg/token"
)

// parseStmt parses a statement: return, break, an assignment, or a bare
// expression statement. Assignments are recognized after the fact: a full
// expression is parsed first, and only if an `=`-family token follows is
// it narrowed to an assignment target.
func (p *parseState) parseStmt() (ast.Stmt, error) {
	tok, err := p.sc.Peek()
	if err != nil {
		return nil, err
	}

	switch tok.Type {
	case token.RETURN:
		if _, err := p.sc.Next(); err != nil {
			return nil, err
		}
		value, err := p.parseOptionalStmtValue()
		if err != nil {
			return nil, err
		}
		return &ast.ReturnStmt{Value: value}, nil

	case token.BREAK:
		if _, err := p.sc.Next(); err != nil {
			return nil, err
		}
		value, err := p.parseOptionalStmtValue()
		if err != nil {
			return nil, err
		}
		return &ast.BreakStmt{Value: value}, nil

	default:
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return p.finishExprStmt(expr)
	}
}

// parseOptionalStmtValue parses the `EXPR ;` or bare `;` tail of a return
// or break statement.
func (p *parseState) parseOptionalStmtValue() (*ast.Expr, error) {
	tok, err := p.sc.Peek()
	if err != nil {
		return nil, err
	}
	if tok.Type == token.SEMICOLON {
		_, err := p.sc.Next()
		return nil, err
	}

	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMICOLON); err != nil {
		return nil, err
	}
	return &expr, nil
}

// finishExprStmt decides what an already-parsed expression in statement
// position is: the target of an assignment, or an expression statement.
func (p *parseState) finishExprStmt(expr ast.Expr) (ast.Stmt, error) {
	tok, err := p.sc.Next()
	if err != nil {
		return nil, err
	}

	switch {
	case tok.Type.IsAssign():
		target, err := lcallFromExpr(expr, tok.Pos)
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
		return &ast.AssignStmt{Target: *target, Op: tok.Type, Value: value}, nil

	case tok.Type == token.SEMICOLON:
		return &ast.ExprStmt{Expr: expr}, nil

	default:
		return nil, errors.NewUnexpectedToken(tok)
	}
}

// lcallFromExpr narrows a parsed expression to an assignment target. The
// expression must be a chain of pass-throughs all the way down to a Call
// whose head is an identifier or self and whose tail has only member and
// subscript parts. Anything else is not assignable.
func lcallFromExpr(expr ast.Expr, pos token.Position) (*ast.LCall, error) {
	logicOr := expr.LogicOr
	if logicOr.Right != nil {
		return nil, errors.NewUnassignableExpression(pos)
	}
	logicAnd := logicOr.Left
	if logicAnd.Right != nil {
		return nil, errors.NewUnassignableExpression(pos)
	}
	cmp := logicAnd.Left
	if cmp.Right != nil {
		return nil, errors.NewUnassignableExpression(pos)
	}
	bitOr := cmp.Left
	if bitOr.Right != nil {
		return nil, errors.NewUnassignableExpression(pos)
	}
	bitXor := bitOr.Left
	if bitXor.Right != nil {
		return nil, errors.NewUnassignableExpression(pos)
	}
	bitAnd := bitXor.Left
	if bitAnd.Right != nil {
		return nil, errors.NewUnassignableExpression(pos)
	}
	shift := bitAnd.Left
	if shift.Right != nil {
		return nil, errors.NewUnassignableExpression(pos)
	}
	term := shift.Left
	if term.Right != nil {
		return nil, errors.NewUnassignableExpression(pos)
	}
	factor := term.Left
	if factor.Right != nil {
		return nil, errors.NewUnassignableExpression(pos)
	}
	unary := factor.Left
	if unary.Next != nil {
		return nil, errors.NewUnassignableExpression(pos)
	}
	call := unary.Call

	var head ast.LCallHead
	switch h := call.Head.(type) {
	case *ast.IdentExpr:
		head.Name = h.Name
	case *ast.SelfExpr:
		head.Self = true
	default:
		return nil, errors.NewUnassignableExpression(pos)
	}

	tail := make([]ast.LCallPart, 0, len(call.Tail))
	for _, part := range call.Tail {
		switch pt := part.(type) {
		case *ast.DotPart:
			tail = append(tail, &ast.LCallDot{Name: pt.Name})
		case *ast.IndexPart:
			tail = append(tail, &ast.LCallIndex{Index: pt.Index})
		default:
			// Function-call and `?` parts are legal in expressions but
			// not on the left of an assignment.
			return nil, errors.NewUnassignableExpression(pos)
		}
	}
	if len(tail) == 0 {
		tail = nil
	}

	return &ast.LCall{Head: head, Tail: tail}, nil
}
