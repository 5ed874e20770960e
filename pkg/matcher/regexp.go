package matcher

import (
	"fmt"
	"regexp/syntax"
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/swaramap/swaramap/pkg/types"
)

// compiledToken is a token with its compiled pattern.
type compiledToken struct {
	token *types.RhythmToken
	re    *regexp2.Regexp

	// prefiltered is set when every alternative of the pattern requires one
	// of the token keywords. Otherwise the keyword prefilter is skipped.
	prefiltered bool
}

// compileToken compiles a token pattern, case-insensitive.
func compileToken(tok *types.RhythmToken, opts Options) (*compiledToken, error) {
	if tok == nil {
		return nil, fmt.Errorf("token is nil")
	}
	if tok.Name == "" {
		return nil, fmt.Errorf("token name is required")
	}
	if tok.Pattern == "" {
		return nil, fmt.Errorf("token %q: pattern is required", tok.Name)
	}

	// Try RE2 mode first (safer, no backtracking)
	re, err := regexp2.Compile(tok.Pattern, regexp2.RE2|regexp2.IgnoreCase)
	if err != nil {
		// Fallback to default Perl-compatible mode for lookarounds and the like
		re, err = regexp2.Compile(tok.Pattern, regexp2.IgnoreCase)
		if err != nil {
			return nil, fmt.Errorf("failed to compile pattern %q for token %s: %w", tok.Pattern, tok.Name, err)
		}
	}
	if opts.TokenTimeout > 0 {
		re.MatchTimeout = opts.TokenTimeout
	}

	return &compiledToken{
		token:       tok,
		re:          re,
		prefiltered: keywordsCover(tok.Pattern, tok.Keywords),
	}, nil
}

// keywordsCover reports whether any text matching pattern must contain one
// of keywords. Patterns the RE2 parser rejects are never covered.
func keywordsCover(pattern string, keywords []string) bool {
	if len(keywords) == 0 {
		return false
	}
	lower := make([]string, len(keywords))
	for i, k := range keywords {
		lower[i] = strings.ToLower(k)
	}

	// parse each top-level branch alone; parsing the whole pattern factors
	// common prefixes out of literal alternatives
	for _, branch := range splitAlternatives(pattern) {
		re, err := syntax.Parse(branch, syntax.Perl|syntax.FoldCase)
		if err != nil {
			return false
		}
		if !requiresKeyword(re, lower) {
			return false
		}
	}
	return true
}

// requiresKeyword reports whether every match of re contains a keyword.
func requiresKeyword(re *syntax.Regexp, keywords []string) bool {
	switch re.Op {
	case syntax.OpLiteral:
		return containsKeyword(string(re.Rune), keywords)
	case syntax.OpCapture, syntax.OpPlus:
		return requiresKeyword(re.Sub[0], keywords)
	case syntax.OpRepeat:
		return re.Min >= 1 && requiresKeyword(re.Sub[0], keywords)
	case syntax.OpAlternate:
		for _, sub := range re.Sub {
			if !requiresKeyword(sub, keywords) {
				return false
			}
		}
		return true
	case syntax.OpConcat:
		var run strings.Builder
		for _, sub := range re.Sub {
			if sub.Op == syntax.OpLiteral {
				run.WriteString(string(sub.Rune))
				continue
			}
			if containsKeyword(run.String(), keywords) || requiresKeyword(sub, keywords) {
				return true
			}
			run.Reset()
		}
		return containsKeyword(run.String(), keywords)
	default:
		return false
	}
}

func containsKeyword(literal string, keywords []string) bool {
	literal = strings.ToLower(literal)
	for _, k := range keywords {
		if strings.Contains(literal, k) {
			return true
		}
	}
	return false
}

// splitAlternatives splits pattern on "|" outside groups and classes.
func splitAlternatives(pattern string) []string {
	var (
		branches []string
		depth    int
		inClass  bool
		start    int
	)
	for i := 0; i < len(pattern); i++ {
		switch c := pattern[i]; {
		case c == '\\':
			i++
		case inClass:
			if c == ']' {
				inClass = false
			}
		case c == '[':
			inClass = true
		case c == '(':
			depth++
		case c == ')':
			depth--
		case c == '|' && depth == 0:
			branches = append(branches, pattern[start:i])
			start = i + 1
		}
	}
	return append(branches, pattern[start:])
}
