package ast

import "github.com/ozgrakkurt/zrak/pkg/ident"

// Literal is a literal value in primary position. Every Literal is also a
// Primary.
type Literal interface {
	Primary
	literalNode()
}

// BoolLit is `true` or `false`.
type BoolLit struct {
	Value bool
}

// NullLit is `null`.
type NullLit struct{}

// IntLit is a decimal integer literal.
type IntLit struct {
	Value int64
}

// FloatLit is a decimal float literal.
type FloatLit struct {
	Value float64
}

// CharLit is a character literal.
type CharLit struct {
	Value rune
}

// StrLit is a string literal; Value is the interned decoded body.
type StrLit struct {
	Value ident.Str
}

// StructLit is `new Ident { field: expr, ... }`.
type StructLit struct {
	Name   ident.Str
	Fields []FieldInit
}

// FieldInit is one `field: expr` entry of a struct literal.
type FieldInit struct {
	Name  ident.Str
	Value Expr
}

// MapLit is `map { key: value, ... }`. Keys are general expressions.
type MapLit struct {
	Entries []MapEntry
}

// MapEntry is one `key: value` entry of a map literal.
type MapEntry struct {
	Key   Expr
	Value Expr
}

// ArrayLit is `[ expr, ... ]`.
type ArrayLit struct {
	Elems []Expr
}

func (*BoolLit) primaryNode()   {}
func (*NullLit) primaryNode()   {}
func (*IntLit) primaryNode()    {}
func (*FloatLit) primaryNode()  {}
func (*CharLit) primaryNode()   {}
func (*StrLit) primaryNode()    {}
func (*StructLit) primaryNode() {}
func (*MapLit) primaryNode()    {}
func (*ArrayLit) primaryNode()  {}

func (*BoolLit) literalNode()   {}
func (*NullLit) literalNode()   {}
func (*IntLit) literalNode()    {}
func (*FloatLit) literalNode()  {}
func (*CharLit) literalNode()   {}
func (*StrLit) literalNode()    {}
func (*StructLit) literalNode() {}
func (*MapLit) literalNode()    {}
func (*ArrayLit) literalNode()  {}
