package prefilter

import (
	"strings"

	"github.com/cloudflare/ahocorasick"

	"github.com/swaramap/swaramap/pkg/types"
)

// Prefilter uses Aho-Corasick for efficient keyword matching.
// Keywords are matched case-insensitively; callers pass lower-cased text.
type Prefilter struct {
	matcher         *ahocorasick.Matcher
	keywords        []string                        // keyword at each index
	keywordTokens   map[string][]*types.RhythmToken // keyword -> tokens needing it
	noKeywordTokens []*types.RhythmToken            // tokens without keywords (always checked)
}

// New creates a prefilter from tokens.
func New(tokens []*types.RhythmToken) *Prefilter {
	pf := &Prefilter{
		keywordTokens:   make(map[string][]*types.RhythmToken),
		noKeywordTokens: make([]*types.RhythmToken, 0),
	}

	keywordSet := make(map[string]bool)
	for _, tok := range tokens {
		if len(tok.Keywords) == 0 {
			pf.noKeywordTokens = append(pf.noKeywordTokens, tok)
			continue
		}
		for _, keyword := range tok.Keywords {
			keyword = strings.ToLower(keyword)
			if !keywordSet[keyword] {
				keywordSet[keyword] = true
				pf.keywords = append(pf.keywords, keyword)
			}
			pf.keywordTokens[keyword] = append(pf.keywordTokens[keyword], tok)
		}
	}

	if len(pf.keywords) > 0 {
		pf.matcher = ahocorasick.NewStringMatcher(pf.keywords)
	}

	return pf
}

// Filter returns tokens that might match text (keywords found OR no keywords defined).
// Safe for concurrent use.
func (pf *Prefilter) Filter(text []byte) []*types.RhythmToken {
	result := make([]*types.RhythmToken, 0, len(pf.noKeywordTokens))
	result = append(result, pf.noKeywordTokens...)

	if pf.matcher == nil {
		return result
	}

	hits := pf.matcher.MatchThreadSafe(text)

	seen := make(map[*types.RhythmToken]bool)
	for _, tok := range pf.noKeywordTokens {
		seen[tok] = true
	}

	for _, hit := range hits {
		keyword := pf.keywords[hit]
		for _, tok := range pf.keywordTokens[keyword] {
			if !seen[tok] {
				seen[tok] = true
				result = append(result, tok)
			}
		}
	}

	return result
}

// Candidate reports whether tok survives the prefilter for text.
func (pf *Prefilter) Candidate(text []byte, tok *types.RhythmToken) bool {
	for _, c := range pf.Filter(text) {
		if c == tok {
			return true
		}
	}
	return false
}

// Keywords returns the distinct keywords in insertion order.
func (pf *Prefilter) Keywords() []string {
	out := make([]string, len(pf.keywords))
	copy(out, pf.keywords)
	return out
}
