package search

import "strings"

// FuzzyScore scores how well query matches target, case-insensitively.
// A substring match scores 1. Otherwise, when every rune of query appears in
// target in order, the score is the number of runes consumed divided by the
// rune length of target. Anything else scores 0.
func FuzzyScore(query, target string) float64 {
	q := []rune(strings.ToLower(query))
	t := []rune(strings.ToLower(target))

	if strings.Contains(string(t), string(q)) {
		return 1.0
	}

	hits := 0
	for i := 0; i < len(t) && hits < len(q); i++ {
		if t[i] == q[hits] {
			hits++
		}
	}
	if hits != len(q) {
		return 0
	}
	return float64(hits) / float64(len(t))
}
