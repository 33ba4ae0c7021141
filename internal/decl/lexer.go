package decl

import (
	"fmt"
	"go/scanner"
	"go/token"

	"litgen/internal/diagnostic"
)

// lexer tokenizes shorthand declarations with the Go scanner, so literal
// syntax is exactly Go's.
type lexer struct {
	file *token.File
	s    scanner.Scanner
	// base is the declaration file line of the first source line.
	base int
	// err is the first error reported by the scanner.
	err error

	pos token.Pos
	tok token.Token
	lit string
}

func newLexer(src string, base int) *lexer {
	fset := token.NewFileSet()
	l := &lexer{
		file: fset.AddFile("", -1, len(src)),
		base: base,
	}

	l.s.Init(l.file, []byte(src), l.onError, 0)
	l.next()

	return l
}

func (l *lexer) onError(pos token.Position, msg string) {
	if l.err == nil {
		l.err = syntaxError(l.base+pos.Line-1, msg)
	}
}

// next advances to the next token, skipping automatically inserted
// semicolons: only explicit ones terminate a binding.
func (l *lexer) next() {
	for {
		l.pos, l.tok, l.lit = l.s.Scan()
		if l.tok != token.SEMICOLON || l.lit != "\n" {
			return
		}
	}
}

// line returns the declaration file line of the current token.
func (l *lexer) line() int {
	if l.base == 0 {
		return 0
	}

	return l.base + l.file.Line(l.pos) - 1
}

// describe renders the current token for error messages.
func (l *lexer) describe() string {
	switch {
	case l.tok == token.EOF:
		return "end of input"
	case l.lit != "":
		return fmt.Sprintf("%q", l.lit)
	default:
		return fmt.Sprintf("%q", l.tok.String())
	}
}

// errorf returns the pending scanner error if there is one, otherwise a new
// syntax error at the current token.
func (l *lexer) errorf(format string, args ...any) error {
	if l.err != nil {
		return l.err
	}

	return syntaxError(l.line(), fmt.Sprintf(format, args...))
}

// expect consumes a token of kind tok.
func (l *lexer) expect(tok token.Token, what string) error {
	if l.tok != tok {
		return l.errorf("expected %s, found %s", what, l.describe())
	}

	l.next()

	return nil
}

// literal consumes one Go literal, with an optional minus sign on numbers.
func (l *lexer) literal() (Literal, error) {
	neg := false
	if l.tok == token.SUB {
		neg = true

		l.next()
	}

	var kind LiteralKind

	switch l.tok {
	case token.INT:
		kind = LiteralInt
	case token.FLOAT:
		kind = LiteralFloat
	case token.IMAG:
		kind = LiteralImag
	case token.CHAR:
		kind = LiteralChar
	case token.STRING:
		kind = LiteralString
	case token.IDENT:
		if l.lit == "true" || l.lit == "false" {
			kind = LiteralBool
		}
	}

	if kind == LiteralInvalid {
		return Literal{}, l.errorf("expected literal, found %s", l.describe())
	}

	if neg && !kind.IsNumeric() {
		return Literal{}, l.errorf("cannot negate %s literal %s", kind.DefaultType(), l.lit)
	}

	text := l.lit
	if neg {
		text = "-" + text
	}

	l.next()

	if l.err != nil {
		return Literal{}, l.err
	}

	return Literal{Kind: kind, Text: text}, nil
}

// arrow consumes "=>". The Go scanner yields it as '=' immediately
// followed by '>'.
func (l *lexer) arrow() error {
	if l.tok != token.ASSIGN {
		return l.errorf("expected '=>', found %s", l.describe())
	}

	at := l.pos

	l.next()

	if l.tok != token.GTR || l.pos != at+1 {
		return l.errorf("expected '=>', found '=' followed by %s", l.describe())
	}

	l.next()

	return nil
}

func syntaxError(line int, msg string) error {
	return diagnostic.Diagnostic{
		Severity: diagnostic.SeverityError,
		Code:     diagnostic.CodeSyntax,
		Message:  msg,
		Line:     line,
	}.Err()
}
