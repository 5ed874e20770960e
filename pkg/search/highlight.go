package search

import (
	"strings"
	"unicode/utf8"

	"github.com/swaramap/swaramap/pkg/types"
)

// Highlight returns the byte spans of every non-overlapping, case-insensitive
// occurrence of query in text. An empty query yields no spans.
func Highlight(text, query string) []types.Span {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	// ToLower can change byte lengths outside ASCII; compare rune by rune instead.
	var spans []types.Span
	for start := 0; start < len(text); {
		if end, ok := prefixFold(text[start:], query); ok {
			spans = append(spans, types.Span{Start: start, End: start + end})
			start += end
			continue
		}
		_, size := utf8.DecodeRuneInString(text[start:])
		start += size
	}
	return spans
}

// prefixFold reports whether s starts with prefix under Unicode case folding
// and returns the byte length of the matched part of s.
func prefixFold(s, prefix string) (int, bool) {
	i := 0
	for _, pr := range prefix {
		if i >= len(s) {
			return 0, false
		}
		sr, size := utf8.DecodeRuneInString(s[i:])
		if !strings.EqualFold(string(sr), string(pr)) {
			return 0, false
		}
		i += size
	}
	return i, true
}
