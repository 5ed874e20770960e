package prefilter

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swaramap/swaramap/pkg/types"
)

func names(tokens []*types.RhythmToken) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, t.Name)
	}
	return out
}

func TestPrefilter_TokensWithMatchingKeywords(t *testing.T) {
	tokens := []*types.RhythmToken{
		{Name: "Slow", Pattern: `slow|vilambit`, Keywords: []string{"slow", "vilambit"}},
		{Name: "Fast", Pattern: `fast|drut`, Keywords: []string{"fast", "drut"}},
	}

	pf := New(tokens)
	filtered := pf.Filter([]byte("vilambit (slow 40-80 bpm)"))

	require.Len(t, filtered, 1)
	assert.Equal(t, "Slow", filtered[0].Name)
}

func TestPrefilter_TokensWithoutKeywords(t *testing.T) {
	tokens := []*types.RhythmToken{
		{Name: "A", Pattern: `a+`},
		{Name: "B", Pattern: `b+`},
	}

	pf := New(tokens)
	filtered := pf.Filter([]byte("nothing to see"))

	// no keywords = always check
	assert.Equal(t, []string{"A", "B"}, names(filtered))
}

func TestPrefilter_NonMatchingKeywords(t *testing.T) {
	tokens := []*types.RhythmToken{
		{Name: "Polyrhythmic", Pattern: `poly`, Keywords: []string{"poly"}},
	}

	pf := New(tokens)
	assert.Empty(t, pf.Filter([]byte("moderate tempo")))
}

func TestPrefilter_Mixed(t *testing.T) {
	always := &types.RhythmToken{Name: "Always", Pattern: `.`}
	fast := &types.RhythmToken{Name: "Fast", Pattern: `fast`, Keywords: []string{"fast", "160"}}
	slow := &types.RhythmToken{Name: "Slow", Pattern: `slow`, Keywords: []string{"slow"}}

	pf := New([]*types.RhythmToken{always, fast, slow})

	// two keywords of the same token yield it once
	filtered := pf.Filter([]byte("fast (160 bpm)"))
	assert.Equal(t, []string{"Always", "Fast"}, names(filtered))

	assert.True(t, pf.Candidate([]byte("fast"), fast))
	assert.False(t, pf.Candidate([]byte("fast"), slow))
	assert.True(t, pf.Candidate([]byte("anything"), always))
}

func TestPrefilter_SharedKeyword(t *testing.T) {
	a := &types.RhythmToken{Name: "A", Keywords: []string{"tala"}}
	b := &types.RhythmToken{Name: "B", Keywords: []string{"tala", "chapu"}}

	pf := New([]*types.RhythmToken{a, b})
	assert.Equal(t, []string{"tala", "chapu"}, pf.Keywords())
	assert.Equal(t, []string{"A", "B"}, names(pf.Filter([]byte("adi tala"))))
}

func TestPrefilter_KeywordsLowerCased(t *testing.T) {
	tok := &types.RhythmToken{Name: "Teental", Keywords: []string{"Teental"}}

	pf := New([]*types.RhythmToken{tok})
	assert.True(t, pf.Candidate([]byte("teental (16 beats)"), tok))
}

func TestPrefilter_Empty(t *testing.T) {
	pf := New(nil)
	assert.Empty(t, pf.Filter([]byte("anything")))
}

func TestPrefilter_Concurrent(t *testing.T) {
	fast := &types.RhythmToken{Name: "Fast", Keywords: []string{"fast"}}
	slow := &types.RhythmToken{Name: "Slow", Keywords: []string{"slow"}}
	pf := New([]*types.RhythmToken{fast, slow})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			text, want := []byte("fast"), "Fast"
			if i%2 == 0 {
				text, want = []byte("slow"), "Slow"
			}
			for j := 0; j < 100; j++ {
				got := pf.Filter(text)
				if assert.Len(t, got, 1) {
					assert.Equal(t, want, got[0].Name)
				}
			}
		}(i)
	}
	wg.Wait()
}
