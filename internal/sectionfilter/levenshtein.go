package sectionfilter

import "strings"

// LevenshteinDistance computes the edit distance between a and b in runes.
// Comparison is case-sensitive.
func LevenshteinDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	// Two rows are enough.
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}

// Suggest returns the section in available closest to name, ignoring case,
// or "" when nothing is within distance 3.
func Suggest(name string, available []string) string {
	bestDist := -1
	bestName := ""

	upper := strings.ToUpper(name)
	for _, s := range available {
		d := LevenshteinDistance(upper, strings.ToUpper(s))
		if bestDist < 0 || d < bestDist {
			bestDist = d
			bestName = s
		}
	}

	if bestDist >= 0 && bestDist <= 3 {
		return bestName
	}
	return ""
}
