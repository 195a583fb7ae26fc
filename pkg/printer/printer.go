// Package printer re-serializes a zrak AST to source text with minimal
// whitespace. Printing a program and re-parsing the output yields an equal
// AST, which is what the round-trip tests rely on.
package printer

import (
	"sort"
	"strconv"
	"strings"

	"github.com/ozgrakkurt/zrak/pkg/ast"
	"github.com/ozgrakkurt/zrak/pkg/ident"
)

// Printer renders AST nodes as source text. It needs the Interner that
// produced the tree to resolve identifier and string handles.
type Printer struct {
	interner *ident.Interner
}

// New creates a Printer over the given interner.
func New(interner *ident.Interner) *Printer {
	return &Printer{interner: interner}
}

// Program renders a whole program, one top-level declaration per line.
func (p *Printer) Program(prog *ast.Program) string {
	var sb strings.Builder
	for _, decl := range prog.Decls {
		p.writeDecl(&sb, decl)
		sb.WriteString("\n")
	}
	return sb.String()
}

// Expr renders a single expression.
func (p *Printer) Expr(expr ast.Expr) string {
	var sb strings.Builder
	p.writeExpr(&sb, expr)
	return sb.String()
}

func (p *Printer) name(id ident.Str) string {
	return p.interner.MustLookup(id)
}

func (p *Printer) writeDecl(sb *strings.Builder, decl ast.Decl) {
	switch d := decl.(type) {
	case *ast.StructDecl:
		sb.WriteString("struct ")
		sb.WriteString(p.name(d.Name))
		sb.WriteString(" {")
		for _, m := range p.sortedMethods(d) {
			sb.WriteString(" ")
			p.writeFunDecl(sb, m)
		}
		sb.WriteString(" }")
	case *ast.FunDecl:
		p.writeFunDecl(sb, d)
	case *ast.VarDecl:
		sb.WriteString("let ")
		sb.WriteString(p.name(d.Name))
		sb.WriteString(" = ")
		p.writeExpr(sb, d.Expr)
		sb.WriteString(";")
	case *ast.StmtDecl:
		p.writeStmt(sb, d.Stmt)
	}
}

// sortedMethods orders a struct's methods by name so output is
// deterministic; the methods map itself is unordered.
func (p *Printer) sortedMethods(d *ast.StructDecl) []*ast.FunDecl {
	methods := make([]*ast.FunDecl, 0, len(d.Methods))
	for _, m := range d.Methods {
		methods = append(methods, m)
	}
	sort.Slice(methods, func(i, j int) bool {
		return p.name(methods[i].Name) < p.name(methods[j].Name)
	})
	return methods
}

func (p *Printer) writeFunDecl(sb *strings.Builder, d *ast.FunDecl) {
	sb.WriteString("fn ")
	sb.WriteString(p.name(d.Name))
	sb.WriteString("(")
	for i, param := range d.Params {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.name(param))
	}
	sb.WriteString(") ")
	p.writeBlock(sb, d.Block)
}

func (p *Printer) writeStmt(sb *strings.Builder, stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.ReturnStmt:
		sb.WriteString("return")
		if s.Value != nil {
			sb.WriteString(" ")
			p.writeExpr(sb, *s.Value)
		}
		sb.WriteString(";")
	case *ast.BreakStmt:
		sb.WriteString("break")
		if s.Value != nil {
			sb.WriteString(" ")
			p.writeExpr(sb, *s.Value)
		}
		sb.WriteString(";")
	case *ast.AssignStmt:
		p.writeLCall(sb, s.Target)
		sb.WriteString(" ")
		sb.WriteString(s.Op.Symbol())
		sb.WriteString(" ")
		p.writeExpr(sb, s.Value)
		sb.WriteString(";")
	case *ast.ExprStmt:
		p.writeExpr(sb, s.Expr)
		sb.WriteString(";")
	}
}

func (p *Printer) writeLCall(sb *strings.Builder, lcall ast.LCall) {
	if lcall.Head.Self {
		sb.WriteString("self")
	} else {
		sb.WriteString(p.name(lcall.Head.Name))
	}
	for _, part := range lcall.Tail {
		switch pt := part.(type) {
		case *ast.LCallDot:
			sb.WriteString(".")
			sb.WriteString(p.name(pt.Name))
		case *ast.LCallIndex:
			sb.WriteString("[")
			p.writeExpr(sb, pt.Index)
			sb.WriteString("]")
		}
	}
}

func (p *Printer) writeExpr(sb *strings.Builder, expr ast.Expr) {
	p.writeLogicOr(sb, expr.LogicOr)
}

func (p *Printer) writeLogicOr(sb *strings.Builder, n ast.LogicOr) {
	p.writeLogicAnd(sb, n.Left)
	if n.Right != nil {
		sb.WriteString(" || ")
		p.writeLogicOr(sb, *n.Right)
	}
}

func (p *Printer) writeLogicAnd(sb *strings.Builder, n ast.LogicAnd) {
	p.writeCmp(sb, n.Left)
	if n.Right != nil {
		sb.WriteString(" && ")
		p.writeLogicAnd(sb, *n.Right)
	}
}

func (p *Printer) writeCmp(sb *strings.Builder, n ast.Cmp) {
	p.writeBitOr(sb, n.Left)
	if n.Right != nil {
		sb.WriteString(" ")
		sb.WriteString(n.Op.Symbol())
		sb.WriteString(" ")
		p.writeCmp(sb, *n.Right)
	}
}

func (p *Printer) writeBitOr(sb *strings.Builder, n ast.BitOr) {
	p.writeBitXor(sb, n.Left)
	if n.Right != nil {
		sb.WriteString(" | ")
		p.writeBitOr(sb, *n.Right)
	}
}

func (p *Printer) writeBitXor(sb *strings.Builder, n ast.BitXor) {
	p.writeBitAnd(sb, n.Left)
	if n.Right != nil {
		sb.WriteString(" ^ ")
		p.writeBitXor(sb, *n.Right)
	}
}

func (p *Printer) writeBitAnd(sb *strings.Builder, n ast.BitAnd) {
	p.writeShift(sb, n.Left)
	if n.Right != nil {
		sb.WriteString(" & ")
		p.writeBitAnd(sb, *n.Right)
	}
}

func (p *Printer) writeShift(sb *strings.Builder, n ast.Shift) {
	p.writeTerm(sb, n.Left)
	if n.Right != nil {
		sb.WriteString(" ")
		sb.WriteString(n.Op.Symbol())
		sb.WriteString(" ")
		p.writeShift(sb, *n.Right)
	}
}

func (p *Printer) writeTerm(sb *strings.Builder, n ast.Term) {
	p.writeFactor(sb, n.Left)
	if n.Right != nil {
		sb.WriteString(" ")
		sb.WriteString(n.Op.Symbol())
		sb.WriteString(" ")
		p.writeTerm(sb, *n.Right)
	}
}

func (p *Printer) writeFactor(sb *strings.Builder, n ast.Factor) {
	p.writeUnary(sb, n.Left)
	if n.Right != nil {
		sb.WriteString(" ")
		sb.WriteString(n.Op.Symbol())
		sb.WriteString(" ")
		p.writeFactor(sb, *n.Right)
	}
}

func (p *Printer) writeUnary(sb *strings.Builder, n ast.Unary) {
	if n.Next != nil {
		sb.WriteString(n.Op.Symbol())
		p.writeUnary(sb, *n.Next)
		return
	}
	p.writeCall(sb, *n.Call)
}

func (p *Printer) writeCall(sb *strings.Builder, n ast.Call) {
	p.writePrimary(sb, n.Head)
	for _, part := range n.Tail {
		switch pt := part.(type) {
		case *ast.DotPart:
			sb.WriteString(".")
			sb.WriteString(p.name(pt.Name))
		case *ast.IndexPart:
			sb.WriteString("[")
			p.writeExpr(sb, pt.Index)
			sb.WriteString("]")
		case *ast.CallArgsPart:
			sb.WriteString("(")
			for i, arg := range pt.Args {
				if i > 0 {
					sb.WriteString(", ")
				}
				p.writeExpr(sb, arg)
			}
			sb.WriteString(")")
		case *ast.TryPart:
			sb.WriteString("?")
		}
	}
}

func (p *Printer) writePrimary(sb *strings.Builder, primary ast.Primary) {
	switch n := primary.(type) {
	case *ast.SelfExpr:
		sb.WriteString("self")
	case *ast.ParenExpr:
		sb.WriteString("(")
		p.writeExpr(sb, n.Expr)
		sb.WriteString(")")
	case *ast.IdentExpr:
		sb.WriteString(p.name(n.Name))

	case *ast.ForExpr:
		sb.WriteString("for ")
		sb.WriteString(p.name(n.Var))
		sb.WriteString(" in ")
		p.writeExpr(sb, n.Iter)
		sb.WriteString(" ")
		p.writeBlock(sb, n.Body)
	case *ast.WhileExpr:
		sb.WriteString("while ")
		p.writeExpr(sb, n.Cond)
		sb.WriteString(" ")
		p.writeBlock(sb, n.Body)
	case *ast.LoopExpr:
		sb.WriteString("loop ")
		p.writeBlock(sb, n.Body)
	case *ast.IfExpr:
		p.writeIf(sb, n)
	case *ast.ClosureExpr:
		sb.WriteString("|")
		for i, param := range n.Params {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(p.name(param))
		}
		sb.WriteString("| ")
		p.writeBlock(sb, n.Body)
	case *ast.Block:
		p.writeBlock(sb, n)

	case *ast.BoolLit:
		sb.WriteString(strconv.FormatBool(n.Value))
	case *ast.NullLit:
		sb.WriteString("null")
	case *ast.IntLit:
		sb.WriteString(strconv.FormatInt(n.Value, 10))
	case *ast.FloatLit:
		sb.WriteString(formatFloat(n.Value))
	case *ast.CharLit:
		sb.WriteString("'")
		sb.WriteString(escapeChar(n.Value))
		sb.WriteString("'")
	case *ast.StrLit:
		sb.WriteString("\"")
		sb.WriteString(escapeString(p.name(n.Value)))
		sb.WriteString("\"")

	case *ast.StructLit:
		sb.WriteString("new ")
		sb.WriteString(p.name(n.Name))
		sb.WriteString(" {")
		for i, field := range n.Fields {
			if i > 0 {
				sb.WriteString(",")
			}
			sb.WriteString(" ")
			sb.WriteString(p.name(field.Name))
			sb.WriteString(": ")
			p.writeExpr(sb, field.Value)
		}
		sb.WriteString(" }")
	case *ast.MapLit:
		sb.WriteString("map {")
		for i, entry := range n.Entries {
			if i > 0 {
				sb.WriteString(",")
			}
			sb.WriteString(" ")
			p.writeExpr(sb, entry.Key)
			sb.WriteString(": ")
			p.writeExpr(sb, entry.Value)
		}
		sb.WriteString(" }")
	case *ast.ArrayLit:
		sb.WriteString("[")
		for i, elem := range n.Elems {
			if i > 0 {
				sb.WriteString(", ")
			}
			p.writeExpr(sb, elem)
		}
		sb.WriteString("]")
	}
}

func (p *Printer) writeIf(sb *strings.Builder, n *ast.IfExpr) {
	sb.WriteString("if ")
	p.writeExpr(sb, n.Cond)
	sb.WriteString(" ")
	p.writeBlock(sb, n.Then)
	if n.Else == nil {
		return
	}
	sb.WriteString(" else ")
	if n.Else.If != nil {
		p.writeIf(sb, n.Else.If)
	} else {
		p.writeBlock(sb, n.Else.Block)
	}
}

func (p *Printer) writeBlock(sb *strings.Builder, block *ast.Block) {
	sb.WriteString("{")
	for _, decl := range block.Decls {
		sb.WriteString(" ")
		p.writeDecl(sb, decl)
	}
	if block.Expr != nil {
		sb.WriteString(" ")
		p.writeExpr(sb, *block.Expr)
	}
	sb.WriteString(" }")
}

// formatFloat renders a float literal so it rescans as a float: plain
// decimal notation (the language has no exponent syntax) with a dot always
// present.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func escapeString(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch r {
		case '\\':
			sb.WriteString("\\\\")
		case '"':
			sb.WriteString("\\\"")
		case '\n':
			sb.WriteString("\\n")
		case '\t':
			sb.WriteString("\\t")
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func escapeChar(r rune) string {
	switch r {
	case '\\':
		return "\\\\"
	case '\'':
		return "\\'"
	case '\n':
		return "\\n"
	case '\t':
		return "\\t"
	default:
		return string(r)
	}
}
