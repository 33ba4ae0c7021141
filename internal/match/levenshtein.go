package match

// Distance computes the Levenshtein distance between two strings: the
// minimum number of single-rune insertions, deletions or substitutions
// turning one into the other.
func Distance(a, b string) int {
	ra, rb := []rune(a), []rune(b)

	// Keep the row over the shorter string.
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	row := make([]int, len(ra)+1)
	for i := range row {
		row[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		diag := row[0]
		row[0] = j

		for i := 1; i <= len(ra); i++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			next := min(row[i]+1, row[i-1]+1, diag+cost)
			diag = row[i]
			row[i] = next
		}
	}

	return row[len(ra)]
}
