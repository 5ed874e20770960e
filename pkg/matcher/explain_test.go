package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swaramap/swaramap/pkg/types"
)

func TestExplain(t *testing.T) {
	regions := sampleRegions()
	q := types.MatchQuery{InstrumentQuery: "sar", RhythmFilter: "Fast"}

	explanations := Default().Explain(regions, q)

	byID := make(map[string]Explanation)
	ids := types.NewMatchResult()
	for _, e := range explanations {
		byID[e.RegionID] = e
		ids.Add(e.RegionID)
	}
	assert.True(t, ids.Equal(Match(regions, q)), "explained regions equal matched regions")

	raj := byID["rajasthan"]
	assert.Equal(t, []string{"Sarangi"}, raj.Instruments)
	assert.False(t, raj.Literal)
	assert.Empty(t, raj.Token)

	punjab := byID["punjab"]
	assert.Empty(t, punjab.Instruments)
	assert.True(t, punjab.Literal)
	assert.Equal(t, TokenFast, punjab.Token)

	assam := byID["assam"]
	assert.False(t, assam.Literal)
	assert.Equal(t, TokenFast, assam.Token)

	up := byID["uttarpradesh"]
	assert.Equal(t, []string{"Sarod"}, up.Instruments)
	assert.Equal(t, TokenFast, up.Token)

	_, ok := byID["nagaland"]
	assert.False(t, ok)
}

func TestExplain_InputOrderAndDuplicates(t *testing.T) {
	a := region("a", []string{"Dhol"}, nil, nil, "", "")
	b := region("b", []string{"Dholak"}, nil, nil, "", "")

	explanations := Default().Explain([]*types.Region{b, a, b}, types.MatchQuery{InstrumentQuery: "dhol"})
	require.Len(t, explanations, 2)
	assert.Equal(t, "b", explanations[0].RegionID)
	assert.Equal(t, "a", explanations[1].RegionID)
}

func TestExplain_EmptyQuery(t *testing.T) {
	assert.Empty(t, Default().Explain(sampleRegions(), types.MatchQuery{}))
}
