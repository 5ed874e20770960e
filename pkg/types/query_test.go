package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchQuery_Active(t *testing.T) {
	tests := []struct {
		name     string
		query    MatchQuery
		expected bool
	}{
		{name: "empty", query: MatchQuery{}, expected: false},
		{name: "whitespace instrument", query: MatchQuery{InstrumentQuery: "   "}, expected: false},
		{name: "instrument", query: MatchQuery{InstrumentQuery: "sitar"}, expected: true},
		{name: "rhythm", query: MatchQuery{RhythmFilter: "Fast"}, expected: true},
		{name: "both", query: MatchQuery{InstrumentQuery: "dhol", RhythmFilter: "Slow"}, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.query.Active())
		})
	}
}

func TestMatchResult_Set(t *testing.T) {
	r := NewMatchResult("bengal", "rajasthan", "bengal")

	assert.Equal(t, 2, r.Len())
	assert.True(t, r.Has("bengal"))
	assert.False(t, r.Has("kerala"))

	r.Add("kerala")
	assert.Equal(t, []string{"bengal", "kerala", "rajasthan"}, r.IDs())
}

func TestMatchResult_ZeroValue(t *testing.T) {
	var r MatchResult
	assert.Equal(t, 0, r.Len())
	assert.False(t, r.Has("anything"))
	assert.Empty(t, r.IDs())
}

func TestMatchResult_Union(t *testing.T) {
	a := NewMatchResult("a", "b")
	b := NewMatchResult("b", "c")

	u := a.Union(b)
	assert.Equal(t, []string{"a", "b", "c"}, u.IDs())
	// inputs untouched
	assert.Equal(t, 2, a.Len())
	assert.Equal(t, 2, b.Len())
}

func TestMatchResult_Equal(t *testing.T) {
	assert.True(t, NewMatchResult("a", "b").Equal(NewMatchResult("b", "a")))
	assert.False(t, NewMatchResult("a").Equal(NewMatchResult("a", "b")))
	assert.False(t, NewMatchResult("a").Equal(NewMatchResult("b")))
	assert.True(t, NewMatchResult().Equal(nil))
}

func TestMatchResult_JSON(t *testing.T) {
	data, err := json.Marshal(NewMatchResult("rajasthan", "bengal"))
	require.NoError(t, err)
	assert.JSONEq(t, `["bengal","rajasthan"]`, string(data))

	var r MatchResult
	require.NoError(t, json.Unmarshal([]byte(`["x","y","x"]`), &r))
	assert.Equal(t, []string{"x", "y"}, r.IDs())

	assert.Error(t, json.Unmarshal([]byte(`{"x":1}`), &r))
}

func TestEmphasisFor(t *testing.T) {
	result := NewMatchResult("rajasthan")

	tests := []struct {
		name     string
		query    MatchQuery
		regionID string
		expected Emphasis
	}{
		{name: "no query", query: MatchQuery{}, regionID: "rajasthan", expected: EmphasisNeutral},
		{name: "member", query: MatchQuery{InstrumentQuery: "sarangi"}, regionID: "rajasthan", expected: EmphasisFull},
		{name: "non member", query: MatchQuery{InstrumentQuery: "sarangi"}, regionID: "kerala", expected: EmphasisDimmed},
		{name: "rhythm only", query: MatchQuery{RhythmFilter: "Fast"}, regionID: "kerala", expected: EmphasisDimmed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EmphasisFor(tt.query, result, tt.regionID))
		})
	}
}
