package match

// Levenshtein returns the number of single rune insertions, deletions and
// substitutions turning a into b. Go identifiers may hold any letter, so the
// strings are compared rune by rune.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	ra, rb := []rune(a), []rune(b)

	// keep the row as short as the shorter name
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	if len(ra) == 0 {
		return len(rb)
	}

	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		curr[0] = j

		for i := 1; i <= len(ra); i++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			curr[i] = min(prev[i]+1, curr[i-1]+1, prev[i-1]+cost)
		}

		prev, curr = curr, prev
	}

	return prev[len(ra)]
}

// Similarity maps the distance of a and b onto [0, 1], 1 for equal strings.
func Similarity(a, b string) float64 {
	longest := max(len([]rune(a)), len([]rune(b)))
	if longest == 0 {
		return 1
	}

	return 1 - float64(Levenshtein(a, b))/float64(longest)
}

// Score compares two identifiers after normalization, with and without their
// trailing marker token, and keeps the better result.
func Score(a, b string) float64 {
	return max(
		Similarity(Normalize(a), Normalize(b)),
		Similarity(StripMarker(a), StripMarker(b)),
	)
}
