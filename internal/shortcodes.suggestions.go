package internal

import "strings"

// ClosestMatch returns the candidate nearest to target by edit distance, or ""
// when none is close enough to be a likely typo. Comparison ignores case.
func ClosestMatch(target string, candidates []string) string {
	if target == "" {
		return ""
	}

	// Short names tolerate two edits, longer ones up to half their length
	threshold := max(len(target)/2, 2)

	best, bestDistance := "", threshold+1
	lower := strings.ToLower(target)
	for _, candidate := range candidates {
		d := editDistance(lower, strings.ToLower(candidate))
		if d < bestDistance {
			best, bestDistance = candidate, d
		}
	}
	return best
}

// editDistance is the Levenshtein distance between a and b, in runes
func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

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
