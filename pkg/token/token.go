// Package token defines the token and position types shared by the scanner
// and parser, together with the keyword table.
package token

import (
	"fmt"

	"github.com/ozgrakkurt/zrak/pkg/ident"
)

// Position represents a location in the source code.
// Line and Column are 1-based; Column counts runes, not bytes.
// Offset is the byte offset from the start of the input.
type Position struct {
	Line   int
	Column int
	Offset int
}

// String returns the position in line:column form.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is a single lexical token. Tokens are value-typed and cheap to
// copy: identifier and string payloads are interned handles, not slices of
// the source.
//
// The payload fields are only meaningful for the matching Type:
// Int for INT, Float for FLOAT, Char for CHAR, Str for IDENT and STRING.
// Literal carries the decoded spelling for every token and is what error
// messages and token dumps display.
type Token struct {
	Type    TokenType
	Literal string
	Pos     Position

	Int   int64
	Float float64
	Char  rune
	Str   ident.Str
}

// New creates a token with no literal payload.
func New(tokenType TokenType, literal string, pos Position) Token {
	return Token{Type: tokenType, Literal: literal, Pos: pos}
}

// String renders the token for diagnostics, e.g. IDENT(count) or PLUS.
func (t Token) String() string {
	switch t.Type {
	case IDENT, INT, FLOAT, CHAR, STRING:
		return fmt.Sprintf("%s(%s)", t.Type, t.Literal)
	default:
		return t.Type.String()
	}
}
