package matcher

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/swaramap/swaramap/pkg/prefilter"
	"github.com/swaramap/swaramap/pkg/types"
)

// Matcher computes which regions match an instrument query and a rhythm filter.
// A Matcher is immutable after construction and safe for concurrent use.
type Matcher struct {
	tokens    []*compiledToken          // display order
	byName    map[string]*compiledToken // exact, case-sensitive token name
	prefilter *prefilter.Prefilter
	logger    *zap.Logger
}

// New creates a matcher over tokens with default options.
func New(tokens []*types.RhythmToken) (*Matcher, error) {
	return NewWithOptions(tokens, DefaultOptions())
}

// NewWithOptions creates a matcher over tokens.
// Returns error for a nil token, a missing name or pattern, an invalid
// pattern, or a duplicate token name.
func NewWithOptions(tokens []*types.RhythmToken, opts Options) (*Matcher, error) {
	m := &Matcher{
		tokens: make([]*compiledToken, 0, len(tokens)),
		byName: make(map[string]*compiledToken, len(tokens)),
		logger: opts.Logger,
	}
	if m.logger == nil {
		m.logger = zap.NewNop()
	}

	for _, tok := range tokens {
		ct, err := compileToken(tok, opts)
		if err != nil {
			return nil, err
		}
		if _, dup := m.byName[tok.Name]; dup {
			return nil, fmt.Errorf("duplicate token name: %s", tok.Name)
		}
		m.tokens = append(m.tokens, ct)
		m.byName[tok.Name] = ct
	}
	m.prefilter = prefilter.New(tokens)

	return m, nil
}

var (
	defaultOnce    sync.Once
	defaultMatcher *Matcher
)

// Default returns the shared matcher over DefaultTokens.
func Default() *Matcher {
	defaultOnce.Do(func() {
		m, err := New(DefaultTokens())
		if err != nil {
			panic(fmt.Sprintf("matcher: built-in tokens: %v", err))
		}
		defaultMatcher = m
	})
	return defaultMatcher
}

// Match computes the matched region IDs with the default token table.
func Match(regions []*types.Region, q types.MatchQuery) types.MatchResult {
	return Default().Match(regions, q)
}

// Match returns the union of the regions satisfying the instrument
// condition and the regions satisfying the rhythm condition.
// Both filters empty yields an empty set. Nil regions are skipped.
func (m *Matcher) Match(regions []*types.Region, q types.MatchQuery) types.MatchResult {
	result := types.NewMatchResult()
	m.addInstrumentMatches(result, regions, q.InstrumentQuery)
	m.addRhythmMatches(result, regions, q.RhythmFilter)
	return result
}

// MatchInstrument returns the regions satisfying the instrument condition only.
func (m *Matcher) MatchInstrument(regions []*types.Region, query string) types.MatchResult {
	result := types.NewMatchResult()
	m.addInstrumentMatches(result, regions, query)
	return result
}

// MatchRhythm returns the regions satisfying the rhythm condition only.
func (m *Matcher) MatchRhythm(regions []*types.Region, filter string) types.MatchResult {
	result := types.NewMatchResult()
	m.addRhythmMatches(result, regions, filter)
	return result
}

// Tokens returns the token table in display order.
func (m *Matcher) Tokens() []*types.RhythmToken {
	out := make([]*types.RhythmToken, len(m.tokens))
	for i, ct := range m.tokens {
		out[i] = ct.token
	}
	return out
}

// Token returns the token with exactly this name.
func (m *Matcher) Token(name string) (*types.RhythmToken, bool) {
	ct, ok := m.byName[name]
	if !ok {
		return nil, false
	}
	return ct.token, true
}

func (m *Matcher) addInstrumentMatches(result types.MatchResult, regions []*types.Region, query string) {
	needle := NormalizeInstrumentQuery(query)
	if needle == "" {
		return
	}
	for _, r := range regions {
		if r == nil {
			continue
		}
		if len(matchingInstruments(r, needle)) > 0 {
			result.Add(r.ID)
		}
	}
}

func (m *Matcher) addRhythmMatches(result types.MatchResult, regions []*types.Region, filter string) {
	if filter == "" {
		return
	}
	ct := m.byName[filter]
	for _, r := range regions {
		if r == nil {
			continue
		}
		blob := RhythmBlob(r)
		if literalRhythmMatch(blob, filter) || m.tokenMatch(ct, blob) {
			result.Add(r.ID)
		}
	}
}

// tokenMatch reports whether blob satisfies ct. A nil ct never matches.
// Pattern errors, timeouts included, count as no match.
func (m *Matcher) tokenMatch(ct *compiledToken, blob string) bool {
	if ct == nil {
		return false
	}
	if ct.prefiltered && !m.prefilter.Candidate([]byte(blob), ct.token) {
		return false
	}
	ok, err := ct.re.MatchString(blob)
	if err != nil {
		m.logger.Debug("token pattern failed",
			zap.String("token", ct.token.Name),
			zap.Error(err))
		return false
	}
	return ok
}
