package zrak_test

import (
	"testing"

	"github.com/ozgrakkurt/zrak/internal/errors"
	"github.com/ozgrakkurt/zrak/pkg/ast"
	"github.com/ozgrakkurt/zrak/pkg/zrak"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	result, err := zrak.Parse("let x = 1 + 2;")
	require.NoError(t, err)
	require.Len(t, result.Program.Decls, 1)

	varDecl, ok := result.Program.Decls[0].(*ast.VarDecl)
	require.True(t, ok, "declaration is %T, want *ast.VarDecl", result.Program.Decls[0])
	assert.Equal(t, "x", result.Interner.MustLookup(varDecl.Name))
}

func TestParseEmptySource(t *testing.T) {
	result, err := zrak.Parse("")
	require.NoError(t, err)
	assert.Empty(t, result.Program.Decls)
	require.NotNil(t, result.Interner)
}

func TestParseError(t *testing.T) {
	result, err := zrak.Parse("let x = 1")
	require.Error(t, err)
	assert.Nil(t, result)

	var serr *errors.Error
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, errors.UnexpectedToken, serr.Kind)
}

func TestParseScannerError(t *testing.T) {
	_, err := zrak.Parse(`let s = "oops`)

	var serr *errors.Error
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, errors.UnclosedStringLiteral, serr.Kind)
}

// The interner in the result resolves every identifier the program uses.
func TestResultInternerCoversProgram(t *testing.T) {
	result, err := zrak.Parse("fn add(a, b) { a + b }")
	require.NoError(t, err)

	fun := result.Program.Decls[0].(*ast.FunDecl)
	assert.Equal(t, "add", result.Interner.MustLookup(fun.Name))
	assert.Equal(t, "a", result.Interner.MustLookup(fun.Params[0]))
	assert.Equal(t, "b", result.Interner.MustLookup(fun.Params[1]))
}
