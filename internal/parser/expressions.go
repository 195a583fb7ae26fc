package parser

import (
	"github.com/ozgrakkurt/zrak/internal/errors"
	"github.com/ozgrakkurt/zrak/pkg/ast"
	"github.com/ozgrakkurt/zrak/pkg/token"
)

// The expression grammar has one method per precedence level. Each level
// parses one operand of the next tighter level, then looks at a single
// token: a matching operator continues the level by recursing on the level
// itself (making the tree right-associative), anything else is pushed back
// and the operand passes through.

func (p *parseState) parseExpr() (ast.Expr, error) {
	logicOr, err := p.parseLogicOr()
	if err != nil {
		return ast.Expr{}, err
	}
	return ast.Expr{LogicOr: logicOr}, nil
}

func (p *parseState) parseLogicOr() (ast.LogicOr, error) {
	left, err := p.parseLogicAnd()
	if err != nil {
		return ast.LogicOr{}, err
	}

	tok, err := p.sc.Next()
	if err != nil {
		return ast.LogicOr{}, err
	}
	if tok.Type == token.OR_OR {
		right, err := p.parseLogicOr()
		if err != nil {
			return ast.LogicOr{}, err
		}
		return ast.LogicOr{Left: left, Right: &right}, nil
	}

	p.sc.Pushback(tok)
	return ast.LogicOr{Left: left}, nil
}

func (p *parseState) parseLogicAnd() (ast.LogicAnd, error) {
	left, err := p.parseCmp()
	if err != nil {
		return ast.LogicAnd{}, err
	}

	tok, err := p.sc.Next()
	if err != nil {
		return ast.LogicAnd{}, err
	}
	if tok.Type == token.AND_AND {
		right, err := p.parseLogicAnd()
		if err != nil {
			return ast.LogicAnd{}, err
		}
		return ast.LogicAnd{Left: left, Right: &right}, nil
	}

	p.sc.Pushback(tok)
	return ast.LogicAnd{Left: left}, nil
}

func (p *parseState) parseCmp() (ast.Cmp, error) {
	left, err := p.parseBitOr()
	if err != nil {
		return ast.Cmp{}, err
	}

	tok, err := p.sc.Next()
	if err != nil {
		return ast.Cmp{}, err
	}
	if tok.Type.IsCmpOp() {
		right, err := p.parseCmp()
		if err != nil {
			return ast.Cmp{}, err
		}
		return ast.Cmp{Left: left, Op: tok.Type, Right: &right}, nil
	}

	p.sc.Pushback(tok)
	return ast.Cmp{Left: left}, nil
}

func (p *parseState) parseBitOr() (ast.BitOr, error) {
	left, err := p.parseBitXor()
	if err != nil {
		return ast.BitOr{}, err
	}

	tok, err := p.sc.Next()
	if err != nil {
		return ast.BitOr{}, err
	}
	if tok.Type == token.PIPE {
		right, err := p.parseBitOr()
		if err != nil {
			return ast.BitOr{}, err
		}
		return ast.BitOr{Left: left, Right: &right}, nil
	}

	p.sc.Pushback(tok)
	return ast.BitOr{Left: left}, nil
}

func (p *parseState) parseBitXor() (ast.BitXor, error) {
	left, err := p.parseBitAnd()
	if err != nil {
		return ast.BitXor{}, err
	}

	tok, err := p.sc.Next()
	if err != nil {
		return ast.BitXor{}, err
	}
	if tok.Type == token.CARET {
		right, err := p.parseBitXor()
		if err != nil {
			return ast.BitXor{}, err
		}
		return ast.BitXor{Left: left, Right: &right}, nil
	}

	p.sc.Pushback(tok)
	return ast.BitXor{Left: left}, nil
}

func (p *parseState) parseBitAnd() (ast.BitAnd, error) {
	left, err := p.parseShift()
	if err != nil {
		return ast.BitAnd{}, err
	}

	tok, err := p.sc.Next()
	if err != nil {
		return ast.BitAnd{}, err
	}
	if tok.Type == token.AMP {
		right, err := p.parseBitAnd()
		if err != nil {
			return ast.BitAnd{}, err
		}
		return ast.BitAnd{Left: left, Right: &right}, nil
	}

	p.sc.Pushback(tok)
	return ast.BitAnd{Left: left}, nil
}

func (p *parseState) parseShift() (ast.Shift, error) {
	left, err := p.parseTerm()
	if err != nil {
		return ast.Shift{}, err
	}

	tok, err := p.sc.Next()
	if err != nil {
		return ast.Shift{}, err
	}
	if tok.Type.IsShiftOp() {
		right, err := p.parseShift()
		if err != nil {
			return ast.Shift{}, err
		}
		return ast.Shift{Left: left, Op: tok.Type, Right: &right}, nil
	}

	p.sc.Pushback(tok)
	return ast.Shift{Left: left}, nil
}

func (p *parseState) parseTerm() (ast.Term, error) {
	left, err := p.parseFactor()
	if err != nil {
		return ast.Term{}, err
	}

	tok, err := p.sc.Next()
	if err != nil {
		return ast.Term{}, err
	}
	if tok.Type.IsTermOp() {
		right, err := p.parseTerm()
		if err != nil {
			return ast.Term{}, err
		}
		return ast.Term{Left: left, Op: tok.Type, Right: &right}, nil
	}

	p.sc.Pushback(tok)
	return ast.Term{Left: left}, nil
}

func (p *parseState) parseFactor() (ast.Factor, error) {
	left, err := p.parseUnary()
	if err != nil {
		return ast.Factor{}, err
	}

	tok, err := p.sc.Next()
	if err != nil {
		return ast.Factor{}, err
	}
	if tok.Type.IsFactorOp() {
		right, err := p.parseFactor()
		if err != nil {
			return ast.Factor{}, err
		}
		return ast.Factor{Left: left, Op: tok.Type, Right: &right}, nil
	}

	p.sc.Pushback(tok)
	return ast.Factor{Left: left}, nil
}

// parseUnary stacks prefix operators left to right: as long as the next
// token is `!` or `-`, consume it and recurse. The `-` here is the same
// token the Term level uses for subtraction; in prefix position it negates.
func (p *parseState) parseUnary() (ast.Unary, error) {
	tok, err := p.sc.Next()
	if err != nil {
		return ast.Unary{}, err
	}

	if tok.Type == token.BANG || tok.Type == token.MINUS {
		next, err := p.parseUnary()
		if err != nil {
			return ast.Unary{}, err
		}
		return ast.Unary{Op: tok.Type, Next: &next}, nil
	}

	p.sc.Pushback(tok)
	call, err := p.parseCall()
	if err != nil {
		return ast.Unary{}, err
	}
	return ast.Unary{Call: &call}, nil
}

// parseCall parses a Primary head followed by any number of postfix parts:
// member access, subscript, function call, and the `?` propagation marker.
func (p *parseState) parseCall() (ast.Call, error) {
	head, err := p.parsePrimary()
	if err != nil {
		return ast.Call{}, err
	}

	var tail []ast.CallPart
	for {
		tok, err := p.sc.Next()
		if err != nil {
			return ast.Call{}, err
		}

		switch tok.Type {
		case token.DOT:
			name, err := p.expectIdent()
			if err != nil {
				return ast.Call{}, err
			}
			tail = append(tail, &ast.DotPart{Name: name})

		case token.LBRACK:
			index, err := p.parseExpr()
			if err != nil {
				return ast.Call{}, err
			}
			if _, err := p.expect(token.RBRACK); err != nil {
				return ast.Call{}, err
			}
			tail = append(tail, &ast.IndexPart{Index: index})

		case token.LPAREN:
			args, err := p.parseExprList(token.RPAREN)
			if err != nil {
				return ast.Call{}, err
			}
			tail = append(tail, &ast.CallArgsPart{Args: args})

		case token.QUESTION:
			tail = append(tail, &ast.TryPart{})

		default:
			p.sc.Pushback(tok)
			return ast.Call{Head: head, Tail: tail}, nil
		}
	}
}

// parsePrimary selects the atomic expression form on one token of
// lookahead.
func (p *parseState) parsePrimary() (ast.Primary, error) {
	tok, err := p.sc.Next()
	if err != nil {
		return nil, err
	}

	switch tok.Type {
	case token.SELF:
		return &ast.SelfExpr{}, nil

	case token.LPAREN:
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return &ast.ParenExpr{Expr: expr}, nil

	case token.IDENT:
		return &ast.IdentExpr{Name: tok.Str}, nil

	case token.FOR:
		return p.parseForExpr()
	case token.WHILE:
		return p.parseWhileExpr()
	case token.LOOP:
		block, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		return &ast.LoopExpr{Body: block}, nil
	case token.IF:
		return p.parseIfExpr()

	case token.PIPE:
		// `|` in primary position starts a closure parameter list; the
		// same character between expressions is bitwise-or.
		return p.parseClosure()
	case token.OR_OR:
		// `||` in primary position is an empty closure parameter list.
		block, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		return &ast.ClosureExpr{Body: block}, nil

	case token.LBRACE:
		p.sc.Pushback(tok)
		return p.parseBlock()

	case token.TRUE:
		return &ast.BoolLit{Value: true}, nil
	case token.FALSE:
		return &ast.BoolLit{Value: false}, nil
	case token.NULL:
		return &ast.NullLit{}, nil
	case token.INT:
		return &ast.IntLit{Value: tok.Int}, nil
	case token.FLOAT:
		return &ast.FloatLit{Value: tok.Float}, nil
	case token.CHAR:
		return &ast.CharLit{Value: tok.Char}, nil
	case token.STRING:
		return &ast.StrLit{Value: tok.Str}, nil

	case token.NEW:
		return p.parseStructLit()
	case token.MAP:
		return p.parseMapLit()
	case token.LBRACK:
		return p.parseArrayLit()

	default:
		return nil, errors.NewUnexpectedToken(tok)
	}
}

// parseExprList parses a comma-separated, possibly empty expression list
// whose opening delimiter is already consumed, up to and including the
// terminator. A trailing comma is accepted.
func (p *parseState) parseExprList(terminator token.TokenType) ([]ast.Expr, error) {
	tok, err := p.sc.Peek()
	if err != nil {
		return nil, err
	}
	if tok.Type == terminator {
		_, err := p.sc.Next()
		return nil, err
	}

	var exprs []ast.Expr
	for {
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)

		tok, err := p.sc.Next()
		if err != nil {
			return nil, err
		}
		switch tok.Type {
		case terminator:
			return exprs, nil
		case token.COMMA:
			next, err := p.sc.Peek()
			if err != nil {
				return nil, err
			}
			if next.Type == terminator {
				_, err := p.sc.Next()
				return exprs, err
			}
		default:
			return nil, errors.NewUnexpectedToken(tok)
		}
	}
}
