// Package ast defines the Abstract Syntax Tree node types for zrak.
//
// The tree mirrors the grammar directly: each binary precedence level is
// its own type whose Right side is nil when the level merely passes through
// to the next tighter level. Identifiers and string payloads are ident.Str
// handles owned by the Interner that produced the tree; the nodes carry no
// references into the source text.
package ast

import (
	"github.com/ozgrakkurt/zrak/pkg/ident"
	"github.com/ozgrakkurt/zrak/pkg/token"
)

// Program is the root node of the AST: a sequence of top-level
// declarations.
type Program struct {
	Decls []Decl
}

// Decl is a top-level or block-level declaration.
type Decl interface {
	declNode()
}

// StructDecl declares a named struct with a set of methods. Method names
// are pairwise distinct; the parser rejects duplicates.
type StructDecl struct {
	Name    ident.Str
	Methods map[ident.Str]*FunDecl
}

// FunDecl declares a function or method: a name, an ordered parameter
// list, and a body block.
type FunDecl struct {
	Name   ident.Str
	Params []ident.Str
	Block  *Block
}

// VarDecl declares a variable with a mandatory initializer.
type VarDecl struct {
	Name ident.Str
	Expr Expr
}

// StmtDecl wraps a statement appearing in declaration position.
type StmtDecl struct {
	Stmt Stmt
}

func (*StructDecl) declNode() {}
func (*FunDecl) declNode()    {}
func (*VarDecl) declNode()    {}
func (*StmtDecl) declNode()   {}

// Stmt is a statement.
type Stmt interface {
	stmtNode()
}

// ReturnStmt returns from the enclosing function, optionally with a value.
type ReturnStmt struct {
	Value *Expr
}

// BreakStmt breaks out of the enclosing loop, optionally with a value.
type BreakStmt struct {
	Value *Expr
}

// AssignStmt assigns Value to Target with one of the `=`-family operators.
// The target is always an LCall, never an arbitrary expression.
type AssignStmt struct {
	Target LCall
	Op     token.TokenType
	Value  Expr
}

// ExprStmt is a bare expression in statement position.
type ExprStmt struct {
	Expr Expr
}

func (*ReturnStmt) stmtNode() {}
func (*BreakStmt) stmtNode()  {}
func (*AssignStmt) stmtNode() {}
func (*ExprStmt) stmtNode()   {}

// LCall is the structural restriction of Call to forms legal as assignment
// targets: an identifier or self head followed by member and subscript
// parts only.
type LCall struct {
	Head LCallHead
	Tail []LCallPart
}

// LCallHead is the head of an assignment target: self, or an identifier.
type LCallHead struct {
	Self bool
	Name ident.Str // valid when Self is false
}

// LCallPart is one postfix part of an assignment target.
type LCallPart interface {
	lcallPartNode()
}

// LCallDot is a `.ident` member part of an assignment target.
type LCallDot struct {
	Name ident.Str
}

// LCallIndex is a `[expr]` subscript part of an assignment target.
type LCallIndex struct {
	Index Expr
}

func (*LCallDot) lcallPartNode()   {}
func (*LCallIndex) lcallPartNode() {}
