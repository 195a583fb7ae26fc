package ast

import "github.com/ozgrakkurt/zrak/pkg/ident"

// Control-flow forms are expressions: a loop or conditional can appear
// anywhere an expression can.

// ForExpr is `for ident in expr { ... }`.
type ForExpr struct {
	Var  ident.Str
	Iter Expr
	Body *Block
}

// WhileExpr is `while cond { ... }`.
type WhileExpr struct {
	Cond Expr
	Body *Block
}

// LoopExpr is the unconditional `loop { ... }`.
type LoopExpr struct {
	Body *Block
}

// IfExpr is `if cond { ... }` with an optional else arm.
type IfExpr struct {
	Cond Expr
	Then *Block
	Else *ElseArm
}

// ElseArm is the else side of an IfExpr: either another IfExpr (an
// `else if` chain) or a block. Exactly one of the fields is set.
type ElseArm struct {
	If    *IfExpr
	Block *Block
}

// ClosureExpr is `| params | { ... }`.
type ClosureExpr struct {
	Params []ident.Str
	Body   *Block
}

// Block is `{ decls... expr? }`. Expr is non-nil iff the block ends with a
// non-semicolon-terminated expression, which is the block's value.
type Block struct {
	Decls []Decl
	Expr  *Expr
}

func (*ForExpr) primaryNode()     {}
func (*WhileExpr) primaryNode()   {}
func (*LoopExpr) primaryNode()    {}
func (*IfExpr) primaryNode()      {}
func (*ClosureExpr) primaryNode() {}
func (*Block) primaryNode()       {}
