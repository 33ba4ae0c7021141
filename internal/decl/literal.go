package decl

import (
	"go/constant"
	"go/token"
	"strings"
)

//go:generate go tool stringer -type=LiteralKind -output=literal_kind_string.go

// LiteralKind is the lexical class of a Go literal.
type LiteralKind int

const (
	LiteralInvalid LiteralKind = iota
	LiteralInt
	LiteralFloat
	LiteralImag
	LiteralChar
	LiteralString
	LiteralBool
)

// IsNumeric reports whether literals of this kind may carry a sign.
func (k LiteralKind) IsNumeric() bool {
	switch k {
	default:
		return false
	case LiteralInt, LiteralFloat, LiteralImag:
		return true
	}
}

// DefaultType returns the Go type an untyped constant of this kind defaults
// to, or "" for LiteralInvalid.
func (k LiteralKind) DefaultType() string {
	switch k {
	case LiteralInt:
		return "int"
	case LiteralFloat:
		return "float64"
	case LiteralImag:
		return "complex128"
	case LiteralChar:
		return "rune"
	case LiteralString:
		return "string"
	case LiteralBool:
		return "bool"
	default:
		return ""
	}
}

func (k LiteralKind) token() token.Token {
	switch k {
	case LiteralInt:
		return token.INT
	case LiteralFloat:
		return token.FLOAT
	case LiteralImag:
		return token.IMAG
	case LiteralChar:
		return token.CHAR
	case LiteralString:
		return token.STRING
	default:
		return token.ILLEGAL
	}
}

// Literal is a single Go literal as it appears in source.
type Literal struct {
	Kind LiteralKind
	// Text is the Go source text, e.g. `42`, `-1`, `"a"` or `true`.
	Text string
}

// String returns the literal's source text.
func (l Literal) String() string {
	return l.Text
}

// IsZero reports whether l is the zero Literal (nothing was given).
func (l Literal) IsZero() bool {
	return l.Kind == LiteralInvalid && l.Text == ""
}

// Value returns the exact constant value of the literal. Malformed literals
// yield an unknown value.
func (l Literal) Value() constant.Value {
	text, neg := strings.CutPrefix(l.Text, "-")

	if l.Kind == LiteralBool {
		return constant.MakeBool(text == "true")
	}

	v := constant.MakeFromLiteral(text, l.Kind.token(), 0)
	if neg {
		v = constant.UnaryOp(token.SUB, v, 0)
	}

	return v
}

// ParseLiteral parses src as exactly one Go literal.
func ParseLiteral(src string) (Literal, error) {
	l := newLexer(src, 0)

	lit, err := l.literal()
	if err != nil {
		return Literal{}, err
	}

	if l.tok != token.EOF {
		return Literal{}, l.errorf("unexpected %s after literal %s", l.describe(), lit.Text)
	}

	if l.err != nil {
		return Literal{}, l.err
	}

	return lit, nil
}
