package match

import "unicode/utf8"

// Suggest returns the candidate closest to name, if it is close enough to
// be a plausible misspelling. Ties go to the earlier candidate. An exact
// match is never suggested.
func Suggest(name string, candidates []string) (string, bool) {
	norm := Normalize(name)
	if norm == "" {
		return "", false
	}

	// Allow one edit per three runes, and at least one.
	limit := max(1, utf8.RuneCountInString(norm)/3)

	best, bestDist := "", limit+1

	for _, c := range candidates {
		if c == name {
			return "", false
		}

		if d := Distance(norm, Normalize(c)); d < bestDist {
			best, bestDist = c, d
		}
	}

	return best, best != ""
}

// Hint formats a suggestion for a diagnostic message, or returns "" when
// there is none.
func Hint(name string, candidates []string) string {
	if s, ok := Suggest(name, candidates); ok {
		return " (did you mean " + s + "?)"
	}

	return ""
}
