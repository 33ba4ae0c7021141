package decl

import (
	"go/token"
	"strings"
)

// exportKeyword marks a shorthand binding as exported.
const exportKeyword = "export"

// ParsePairs parses map entries written as "k1 => v1, k2 => v2", optionally
// wrapped in brackets and with an optional trailing comma. line is the
// declaration file line src starts on, or 0 if unknown.
func ParsePairs(src string, line int) (Pairs, error) {
	l := newLexer(src, line)

	closing := token.EOF
	if l.tok == token.LBRACK {
		closing = token.RBRACK

		l.next()
	}

	var pairs Pairs

	for l.tok != closing {
		if l.tok == token.EOF {
			return nil, l.errorf("missing ']' at end of entries")
		}

		at := l.line()

		key, err := l.literal()
		if err != nil {
			return nil, err
		}

		if err := l.arrow(); err != nil {
			return nil, err
		}

		value, err := l.literal()
		if err != nil {
			return nil, err
		}

		pairs = append(pairs, Pair{Key: key, Value: value, Line: at})

		if l.tok == token.COMMA {
			l.next()
			continue
		}

		if l.tok == token.EOF && closing != token.EOF {
			return nil, l.errorf("missing ']' at end of entries")
		}

		if l.tok != closing {
			return nil, l.errorf("expected ',' between entries, found %s", l.describe())
		}
	}

	if closing != token.EOF {
		l.next()

		if l.tok != token.EOF {
			return nil, l.errorf("unexpected %s after ']'", l.describe())
		}
	}

	if l.err != nil {
		return nil, l.err
	}

	return pairs, nil
}

// ParseBindings parses getter bindings written as
// "[export] Name: Type = literal;" repeated, optionally wrapped in
// parentheses. Every binding must end with an explicit semicolon.
func ParseBindings(src string, line int) (Bindings, error) {
	l := newLexer(src, line)

	closing := token.EOF
	if l.tok == token.LPAREN {
		closing = token.RPAREN

		l.next()
	}

	var bindings Bindings

	for l.tok != closing {
		if l.tok == token.EOF {
			return nil, l.errorf("missing ')' at end of bindings")
		}

		b, err := parseBinding(l)
		if err != nil {
			return nil, err
		}

		bindings = append(bindings, b)
	}

	if closing != token.EOF {
		l.next()

		if l.tok != token.EOF {
			return nil, l.errorf("unexpected %s after ')'", l.describe())
		}
	}

	if l.err != nil {
		return nil, l.err
	}

	return bindings, nil
}

func parseBinding(l *lexer) (Binding, error) {
	b := Binding{Line: l.line()}

	if l.tok != token.IDENT {
		return Binding{}, l.errorf("expected binding name, found %s", l.describe())
	}

	b.Name = l.lit
	l.next()

	// "export" is only a qualifier when a name follows; `export: int = 1;`
	// declares a binding called export.
	if b.Name == exportKeyword && l.tok == token.IDENT {
		b.Exported = true
		b.Name = l.lit

		l.next()
	}

	if err := l.expect(token.COLON, "':' after "+b.Name); err != nil {
		return Binding{}, err
	}

	typ, err := parseTypeName(l)
	if err != nil {
		return Binding{}, err
	}

	b.Type = typ

	if err := l.expect(token.ASSIGN, "'=' after type "+typ); err != nil {
		return Binding{}, err
	}

	b.Value, err = l.literal()
	if err != nil {
		return Binding{}, err
	}

	if err := l.expect(token.SEMICOLON, "';' after binding "+b.Name); err != nil {
		return Binding{}, err
	}

	return b, nil
}

// parseTypeName reads a possibly qualified type name such as "uint32" or
// "time.Duration". Whether the type is supported is decided by Validate.
func parseTypeName(l *lexer) (string, error) {
	if l.tok != token.IDENT {
		return "", l.errorf("expected type name, found %s", l.describe())
	}

	parts := []string{l.lit}
	l.next()

	for l.tok == token.PERIOD {
		l.next()

		if l.tok != token.IDENT {
			return "", l.errorf("expected identifier after '.', found %s", l.describe())
		}

		parts = append(parts, l.lit)
		l.next()
	}

	return strings.Join(parts, "."), nil
}
