// Package errors defines the structured error values produced by the
// scanner and parser, and formats them for terminal display with source
// context and a caret pointing at the error location.
package errors

import (
	"fmt"

	"github.com/ozgrakkurt/zrak/pkg/ident"
	"github.com/ozgrakkurt/zrak/pkg/token"
)

// Kind identifies which front-end failure occurred.
type Kind int

const (
	// UnexpectedCharacter: the scanner met a character outside every
	// accepted class.
	UnexpectedCharacter Kind = iota

	// ParseIntError: an integer literal was rejected by strconv.
	ParseIntError

	// ParseFloatError: a float literal was rejected by strconv.
	ParseFloatError

	// UnclosedStringLiteral: end of input before the closing quote.
	UnclosedStringLiteral

	// UnclosedCharLiteral: end of input or a missing closing quote in a
	// character literal.
	UnclosedCharLiteral

	// EmptyCharLiteral: '' observed.
	EmptyCharLiteral

	// InvalidEscapeSequence: a backslash escape outside the accepted
	// alphabet.
	InvalidEscapeSequence

	// UnexpectedToken: the parser expected a specific token or class and
	// got something else.
	UnexpectedToken

	// MethodDefinedTwice: a struct declares two methods with the same name.
	MethodDefinedTwice

	// UnassignableExpression: the left side of an assignment operator does
	// not reduce to an ident-or-self call chain.
	UnassignableExpression
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case UnexpectedCharacter:
		return "UnexpectedCharacter"
	case ParseIntError:
		return "ParseIntError"
	case ParseFloatError:
		return "ParseFloatError"
	case UnclosedStringLiteral:
		return "UnclosedStringLiteral"
	case UnclosedCharLiteral:
		return "UnclosedCharLiteral"
	case EmptyCharLiteral:
		return "EmptyCharLiteral"
	case InvalidEscapeSequence:
		return "InvalidEscapeSequence"
	case UnexpectedToken:
		return "UnexpectedToken"
	case MethodDefinedTwice:
		return "MethodDefinedTwice"
	case UnassignableExpression:
		return "UnassignableExpression"
	default:
		return "Unknown"
	}
}

// Error is the single error type returned by the front end. At most one of
// the payload fields is meaningful, selected by Kind: Char for
// UnexpectedCharacter, Token for UnexpectedToken, Ident for
// MethodDefinedTwice, Err for the strconv wrappers. The other kinds carry
// no payload beyond Pos.
type Error struct {
	Kind  Kind
	Pos   token.Position
	Char  rune
	Token token.Token
	Ident ident.Str
	Err   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s at %s", e.message(), e.Pos)
}

// Unwrap exposes the wrapped strconv error, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) message() string {
	switch e.Kind {
	case UnexpectedCharacter:
		return fmt.Sprintf("unexpected character %q", e.Char)
	case ParseIntError:
		return fmt.Sprintf("invalid integer literal: %v", e.Err)
	case ParseFloatError:
		return fmt.Sprintf("invalid float literal: %v", e.Err)
	case UnclosedStringLiteral:
		return "unclosed string literal"
	case UnclosedCharLiteral:
		return "unclosed character literal"
	case EmptyCharLiteral:
		return "empty character literal"
	case InvalidEscapeSequence:
		return "invalid escape sequence"
	case UnexpectedToken:
		return fmt.Sprintf("unexpected token %s", e.Token)
	case MethodDefinedTwice:
		return "method defined twice"
	case UnassignableExpression:
		return "expression is not assignable"
	default:
		return "unknown error"
	}
}

// NewUnexpectedCharacter reports a character outside every accepted class.
func NewUnexpectedCharacter(c rune, pos token.Position) *Error {
	return &Error{Kind: UnexpectedCharacter, Char: c, Pos: pos}
}

// NewParseIntError wraps a strconv integer parse failure.
func NewParseIntError(err error, pos token.Position) *Error {
	return &Error{Kind: ParseIntError, Err: err, Pos: pos}
}

// NewParseFloatError wraps a strconv float parse failure.
func NewParseFloatError(err error, pos token.Position) *Error {
	return &Error{Kind: ParseFloatError, Err: err, Pos: pos}
}

// NewUnclosedStringLiteral reports end of input inside a string literal.
func NewUnclosedStringLiteral(pos token.Position) *Error {
	return &Error{Kind: UnclosedStringLiteral, Pos: pos}
}

// NewUnclosedCharLiteral reports a character literal missing its closing
// quote.
func NewUnclosedCharLiteral(pos token.Position) *Error {
	return &Error{Kind: UnclosedCharLiteral, Pos: pos}
}

// NewEmptyCharLiteral reports the literal ''.
func NewEmptyCharLiteral(pos token.Position) *Error {
	return &Error{Kind: EmptyCharLiteral, Pos: pos}
}

// NewInvalidEscapeSequence reports an escape outside the accepted alphabet.
func NewInvalidEscapeSequence(pos token.Position) *Error {
	return &Error{Kind: InvalidEscapeSequence, Pos: pos}
}

// NewUnexpectedToken reports a token the parser could not accept.
func NewUnexpectedToken(tok token.Token) *Error {
	return &Error{Kind: UnexpectedToken, Token: tok, Pos: tok.Pos}
}

// NewMethodDefinedTwice reports a duplicate method name in one struct.
func NewMethodDefinedTwice(name ident.Str, pos token.Position) *Error {
	return &Error{Kind: MethodDefinedTwice, Ident: name, Pos: pos}
}

// NewUnassignableExpression reports an assignment target that is not an
// ident-or-self call chain.
func NewUnassignableExpression(pos token.Position) *Error {
	return &Error{Kind: UnassignableExpression, Pos: pos}
}
