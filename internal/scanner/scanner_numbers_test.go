package scanner

import (
	"testing"

	"github.com/ozgrakkurt/zrak/internal/errors"
	"github.com/ozgrakkurt/zrak/pkg/token"
)

func TestIntegerLiterals(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"0", 0},
		{"5", 5},
		{"42", 42},
		{"1234567890", 1234567890},
		{"9223372036854775807", 9223372036854775807},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			s := newScanner(tt.input)
			tok := mustNext(t, s)
			if tok.Type != token.INT {
				t.Fatalf("expected INT, got %q (literal=%q)", tok.Type, tok.Literal)
			}
			if tok.Int != tt.expected {
				t.Errorf("value = %d, want %d", tok.Int, tt.expected)
			}
			if tok.Literal != tt.input {
				t.Errorf("literal = %q, want %q", tok.Literal, tt.input)
			}
		})
	}
}

func TestFloatLiterals(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"0.0", 0.0},
		{"5.5", 5.5},
		{"123.456", 123.456},
		{"3.14159", 3.14159},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			s := newScanner(tt.input)
			tok := mustNext(t, s)
			if tok.Type != token.FLOAT {
				t.Fatalf("expected FLOAT, got %q (literal=%q)", tok.Type, tok.Literal)
			}
			if tok.Float != tt.expected {
				t.Errorf("value = %v, want %v", tok.Float, tt.expected)
			}
		})
	}
}

// Scenario: numeric edge. The second dot of `5.5.` is not consumed and
// scans as its own delimiter.
func TestFloatSecondDotNotConsumed(t *testing.T) {
	s := newScanner("5.5. 38")

	tok := mustNext(t, s)
	if tok.Type != token.FLOAT || tok.Float != 5.5 {
		t.Fatalf("expected FLOAT(5.5), got %q (literal=%q)", tok.Type, tok.Literal)
	}
	tok = mustNext(t, s)
	if tok.Type != token.DOT {
		t.Fatalf("expected DOT, got %q", tok.Type)
	}
	tok = mustNext(t, s)
	if tok.Type != token.INT || tok.Int != 38 {
		t.Fatalf("expected INT(38), got %q (literal=%q)", tok.Type, tok.Literal)
	}
	tok = mustNext(t, s)
	if tok.Type != token.EOF {
		t.Fatalf("expected EOF, got %q", tok.Type)
	}
}

// A dot not followed by a digit does not start a fraction: `5.x` is an
// integer, a delimiter and an identifier (member access on a literal).
func TestIntDotMember(t *testing.T) {
	s := newScanner("5.abs")

	expected := []token.TokenType{token.INT, token.DOT, token.IDENT, token.EOF}
	for i, want := range expected {
		tok := mustNext(t, s)
		if tok.Type != want {
			t.Fatalf("token[%d] = %q, want %q", i, tok.Type, want)
		}
	}
}

func TestIntegerOverflow(t *testing.T) {
	// One past the maximum signed 64-bit value.
	s := newScanner("9223372036854775808")
	_, err := s.Next()
	requireKind(t, err, errors.ParseIntError)
}

func TestNumberFollowedByIdent(t *testing.T) {
	// `1x` scans as INT then IDENT; rejecting it is the parser's concern.
	s := newScanner("1x")

	tok := mustNext(t, s)
	if tok.Type != token.INT || tok.Int != 1 {
		t.Fatalf("expected INT(1), got %q (literal=%q)", tok.Type, tok.Literal)
	}
	tok = mustNext(t, s)
	if tok.Type != token.IDENT || tok.Literal != "x" {
		t.Fatalf("expected IDENT(x), got %q (literal=%q)", tok.Type, tok.Literal)
	}
}
