package decl

import (
	"unicode"
	"unicode/utf8"
)

// GoName applies Go export rules to name: the first rune is upper-cased for
// exported declarations and lower-cased otherwise. The rest of the name is
// kept as written.
func GoName(name string, exported bool) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}

	if exported {
		r = unicode.ToUpper(r)
	} else {
		r = unicode.ToLower(r)
	}

	return string(r) + name[size:]
}

// Reserved returns why goName cannot name a map or getter declared in
// package pkg, or "" if it can. init is reserved in every package and
// main in package main.
func Reserved(pkg, goName string) string {
	switch {
	case goName == "init":
		return "init is reserved for package initialization functions"
	case goName == "main" && pkg == "main":
		return "main is reserved for the program entry point in package main"
	default:
		return ""
	}
}
