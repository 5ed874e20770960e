// Package swaramap finds the musical regions of India that match an
// instrument query and a rhythm filter.
//
// # Basic Usage
//
// Create a map over the builtin regions and evaluate a query:
//
//	m, err := swaramap.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result := m.Match("sarangi", "")
//	for _, id := range result.IDs() {
//	    fmt.Println(id)
//	}
//
// # Rhythm Tokens
//
// The rhythm filter is matched literally against a region's rhythmic system,
// tempo and talas. A filter equal to a token name such as "Fast" or
// "Complex talas" also applies the token's pattern:
//
//	result := m.Match("", "Complex talas")
//
// # Emphasis
//
// Emphasis applies the map's highlight policy to every region: neutral when
// no query is active, otherwise full for matched regions and dimmed for the rest.
//
//	for id, e := range m.Emphasis(swaramap.Query{InstrumentQuery: "dhol"}) {
//	    fmt.Printf("%s: %s\n", id, e)
//	}
package swaramap

import (
	"fmt"

	"github.com/swaramap/swaramap/pkg/dataset"
	"github.com/swaramap/swaramap/pkg/matcher"
	"github.com/swaramap/swaramap/pkg/types"
)

// Re-export commonly used types for convenience.
// Users can import just "github.com/swaramap/swaramap" without subpackages.
type (
	// Region is one musical zone with its instruments and rhythm data.
	Region = types.Region

	// Query is one evaluation of the instrument and rhythm filters.
	Query = types.MatchQuery

	// Result is the set of matched region IDs.
	Result = types.MatchResult

	// Emphasis is the visual weight given to a region.
	Emphasis = types.Emphasis

	// RhythmToken is a named rhythm filter with a fixed pattern.
	RhythmToken = types.RhythmToken

	// Explanation records why a region matched.
	Explanation = matcher.Explanation
)

// Re-export emphasis constants.
const (
	EmphasisFull    = types.EmphasisFull
	EmphasisDimmed  = types.EmphasisDimmed
	EmphasisNeutral = types.EmphasisNeutral
)

// Map evaluates queries over a fixed region collection.
// A Map is immutable and safe for concurrent use.
type Map struct {
	regions []*Region
	matcher *matcher.Matcher
}

// mapConfig holds map configuration.
type mapConfig struct {
	regions []*Region
	tokens  []*RhythmToken
}

// Option configures a Map.
type Option func(*mapConfig)

// WithRegions uses custom regions instead of the builtin dataset.
func WithRegions(regions []*Region) Option {
	return func(c *mapConfig) {
		c.regions = regions
	}
}

// WithTokens replaces the default rhythm tokens.
func WithTokens(tokens []*RhythmToken) Option {
	return func(c *mapConfig) {
		c.tokens = tokens
	}
}

// New creates a Map with the given options.
//
// By default, the map:
//   - Uses the builtin regions
//   - Recognizes the default rhythm tokens (Slow, Moderate, Fast,
//     Accelerating, Polyrhythmic, Complex talas)
func New(opts ...Option) (*Map, error) {
	config := &mapConfig{}
	for _, opt := range opts {
		opt(config)
	}

	if config.regions == nil {
		regions, err := LoadBuiltinRegions()
		if err != nil {
			return nil, err
		}
		config.regions = regions
	}

	m := matcher.Default()
	if config.tokens != nil {
		var err error
		m, err = matcher.New(config.tokens)
		if err != nil {
			return nil, fmt.Errorf("creating matcher: %w", err)
		}
	}

	return &Map{regions: config.regions, matcher: m}, nil
}

// Match returns the regions matching the instrument query or the rhythm filter.
func (m *Map) Match(instrumentQuery, rhythmFilter string) Result {
	return m.MatchQuery(Query{InstrumentQuery: instrumentQuery, RhythmFilter: rhythmFilter})
}

// MatchQuery evaluates q.
func (m *Map) MatchQuery(q Query) Result {
	return m.matcher.Match(m.regions, q)
}

// Explain returns why each matched region matched, in region order.
func (m *Map) Explain(q Query) []Explanation {
	return m.matcher.Explain(m.regions, q)
}

// Emphasis returns the emphasis of every region for q, keyed by region ID.
func (m *Map) Emphasis(q Query) map[string]Emphasis {
	result := m.matcher.Match(m.regions, q)
	out := make(map[string]Emphasis, len(m.regions))
	for _, r := range m.regions {
		if r == nil {
			continue
		}
		out[r.ID] = types.EmphasisFor(q, result, r.ID)
	}
	return out
}

// Regions returns a copy of the region collection.
func (m *Map) Regions() []*Region {
	regions := make([]*Region, len(m.regions))
	copy(regions, m.regions)
	return regions
}

// Tokens returns the rhythm tokens in display order.
func (m *Map) Tokens() []*RhythmToken {
	return m.matcher.Tokens()
}

// LoadBuiltinRegions returns the builtin regions.
func LoadBuiltinRegions() ([]*Region, error) {
	ds, err := dataset.LoadBuiltin()
	if err != nil {
		return nil, fmt.Errorf("loading builtin regions: %w", err)
	}
	return ds.Regions, nil
}

// LoadRegionsFromFile loads regions from a YAML dataset file.
// Use this with WithRegions to create a map over custom regions.
func LoadRegionsFromFile(path string) ([]*Region, error) {
	ds, err := dataset.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return ds.Regions, nil
}
