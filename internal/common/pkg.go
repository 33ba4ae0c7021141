package common

import (
	"path"
	"strconv"
	"strings"
	"unicode"
)

// PkgAlias returns the package alias for a given package path: its last
// element, skipping a major version suffix and dropping characters that
// cannot appear in an identifier. Returns empty string if pkgPath is empty.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	base := path.Base(pkgPath)
	if isMajorVersion(base) && path.Dir(pkgPath) != "." {
		base = path.Base(path.Dir(pkgPath))
	}

	base = strings.TrimPrefix(base, "go-")

	alias := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			return r
		}

		return -1
	}, base)

	if alias == "" || unicode.IsDigit([]rune(alias)[0]) {
		return "pkg" + alias
	}

	return alias
}

// UniqueName returns base, or base followed by the smallest number from 2
// up, whichever is not taken.
func UniqueName(base string, taken func(string) bool) string {
	name := base
	for n := 2; taken(name); n++ {
		name = base + strconv.Itoa(n)
	}

	return name
}

func isMajorVersion(s string) bool {
	if len(s) < 2 || s[0] != 'v' {
		return false
	}

	_, err := strconv.Atoi(s[1:])

	return err == nil
}
