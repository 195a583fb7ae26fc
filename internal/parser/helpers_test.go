package parser

import (
	"testing"

	"github.com/ozgrakkurt/zrak/internal/errors"
	"github.com/ozgrakkurt/zrak/pkg/ast"
	"github.com/ozgrakkurt/zrak/pkg/ident"
)

// mustParse parses input and fails the test on error.
func mustParse(t *testing.T, input string) (*ast.Program, *ident.Interner) {
	t.Helper()
	prog, interner, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse(%q) returned error: %v", input, err)
	}
	return prog, interner
}

// mustFail parses input expecting an error of the given kind.
func mustFail(t *testing.T, input string, kind errors.Kind) *errors.Error {
	t.Helper()
	_, _, err := Parse(input)
	if err == nil {
		t.Fatalf("Parse(%q) succeeded, want %s error", input, kind)
	}
	serr, ok := err.(*errors.Error)
	if !ok {
		t.Fatalf("Parse(%q) returned %T, want *errors.Error: %v", input, err, err)
	}
	if serr.Kind != kind {
		t.Fatalf("Parse(%q) error kind = %s, want %s (%v)", input, serr.Kind, kind, err)
	}
	return serr
}

// onlyStmt asserts the program is a single statement declaration and
// returns the statement.
func onlyStmt(t *testing.T, prog *ast.Program) ast.Stmt {
	t.Helper()
	if len(prog.Decls) != 1 {
		t.Fatalf("program has %d declarations, want 1", len(prog.Decls))
	}
	stmtDecl, ok := prog.Decls[0].(*ast.StmtDecl)
	if !ok {
		t.Fatalf("declaration is %T, want *ast.StmtDecl", prog.Decls[0])
	}
	return stmtDecl.Stmt
}

// exprOf asserts the program is a single expression statement and returns
// its expression.
func exprOf(t *testing.T, prog *ast.Program) ast.Expr {
	t.Helper()
	exprStmt, ok := onlyStmt(t, prog).(*ast.ExprStmt)
	if !ok {
		t.Fatalf("statement is not an expression statement")
	}
	return exprStmt.Expr
}

// parseExprStmt parses `input ;` as a program and returns the expression.
func parseExprStmt(t *testing.T, input string) (ast.Expr, *ident.Interner) {
	t.Helper()
	prog, interner := mustParse(t, input+";")
	return exprOf(t, prog), interner
}

// The descent helpers below unwrap pass-through levels, failing the test
// if any level between the expression root and the requested level
// contributes an operator.

func termOf(t *testing.T, expr ast.Expr) ast.Term {
	t.Helper()
	logicOr := expr.LogicOr
	if logicOr.Right != nil {
		t.Fatal("unexpected || level in expression")
	}
	logicAnd := logicOr.Left
	if logicAnd.Right != nil {
		t.Fatal("unexpected && level in expression")
	}
	cmp := logicAnd.Left
	if cmp.Right != nil {
		t.Fatal("unexpected comparison level in expression")
	}
	bitOr := cmp.Left
	if bitOr.Right != nil {
		t.Fatal("unexpected | level in expression")
	}
	bitXor := bitOr.Left
	if bitXor.Right != nil {
		t.Fatal("unexpected ^ level in expression")
	}
	bitAnd := bitXor.Left
	if bitAnd.Right != nil {
		t.Fatal("unexpected & level in expression")
	}
	shift := bitAnd.Left
	if shift.Right != nil {
		t.Fatal("unexpected shift level in expression")
	}
	return shift.Left
}

func factorOf(t *testing.T, expr ast.Expr) ast.Factor {
	t.Helper()
	term := termOf(t, expr)
	if term.Right != nil {
		t.Fatal("unexpected term level in expression")
	}
	return term.Left
}

func unaryOf(t *testing.T, expr ast.Expr) ast.Unary {
	t.Helper()
	factor := factorOf(t, expr)
	if factor.Right != nil {
		t.Fatal("unexpected factor level in expression")
	}
	return factor.Left
}

func callOf(t *testing.T, expr ast.Expr) ast.Call {
	t.Helper()
	unary := unaryOf(t, expr)
	if unary.Next != nil {
		t.Fatal("unexpected unary operator in expression")
	}
	return *unary.Call
}

func primaryOf(t *testing.T, expr ast.Expr) ast.Primary {
	t.Helper()
	call := callOf(t, expr)
	if len(call.Tail) != 0 {
		t.Fatalf("unexpected call tail of %d parts", len(call.Tail))
	}
	return call.Head
}

// intValue asserts a primary is an integer literal and returns its value.
func intValue(t *testing.T, primary ast.Primary) int64 {
	t.Helper()
	lit, ok := primary.(*ast.IntLit)
	if !ok {
		t.Fatalf("primary is %T, want *ast.IntLit", primary)
	}
	return lit.Value
}

// intOf asserts a whole expression is a plain integer literal.
func intOf(t *testing.T, expr ast.Expr) int64 {
	t.Helper()
	return intValue(t, primaryOf(t, expr))
}

// identOf asserts a primary is an identifier and resolves its name.
func identOf(t *testing.T, interner *ident.Interner, primary ast.Primary) string {
	t.Helper()
	idExpr, ok := primary.(*ast.IdentExpr)
	if !ok {
		t.Fatalf("primary is %T, want *ast.IdentExpr", primary)
	}
	return interner.MustLookup(idExpr.Name)
}
