package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swaramap/swaramap/pkg/types"
)

func testRegions() []*types.Region {
	return []*types.Region{
		{
			ID:          "raj",
			Name:        "Rajasthan",
			Description: "Desert music",
			Language:    types.Language{Primary: []string{"Rajasthani"}, LinguisticFamily: "Indo-Aryan"},
			Instruments: types.Instruments{Melodic: []string{"Sarangi", "Kamaycha"}, Rhythmic: []string{"Dholak"}},
			MusicalStructure: types.MusicalStructure{
				Tempo:     "80-120 BPM",
				ScaleType: "Neutral",
			},
			Performance:   types.Performance{PerformanceContext: []string{"Weddings"}, VocalStyle: []string{"Nasal"}},
			SocialContext: types.SocialContext{MusicianCaste: []string{"Manganiyar"}, HereditaryTradition: true},
		},
		{
			ID:          "ker",
			Name:        "Kerala",
			Description: "Temple percussion",
			Language:    types.Language{Primary: []string{"Malayalam"}, LinguisticFamily: "Dravidian"},
			Instruments: types.Instruments{Rhythmic: []string{"Chenda"}},
			MusicalStructure: types.MusicalStructure{
				Tempo: "Accelerating",
			},
			Performance:   types.Performance{PerformanceContext: []string{"Temple festivals"}, VocalStyle: []string{"Sopana"}},
			SocialContext: types.SocialContext{MusicianCaste: []string{"Marar"}, HereditaryTradition: true},
		},
		{
			ID:          "ben",
			Name:        "Bengal",
			Description: "Baul mystic song",
			Language: types.Language{
				Primary:          []string{"Bengali"},
				LinguisticFamily: "Indo-Aryan",
				PoeticTraditions: []string{"Baul songs"},
			},
			Instruments: types.Instruments{Melodic: []string{"Ektara"}, Rhythmic: []string{"Dubki"}},
			Performance: types.Performance{PerformanceContext: []string{"Akhara gatherings"}, VocalStyle: []string{"Ecstatic"}},
		},
	}
}

func ids(results []Result) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Region.ID
	}
	return out
}

func TestFuzzyScore(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		target string
		want   float64
	}{
		{name: "substring", query: "sit", target: "Sitar", want: 1},
		{name: "case-insensitive", query: "SITAR", target: "sitar", want: 1},
		{name: "ordered subsequence", query: "str", target: "sitar", want: 0.6},
		{name: "missing rune", query: "xyz", target: "sitar", want: 0},
		{name: "out of order", query: "ts", target: "sitar", want: 0},
		{name: "empty target", query: "abc", target: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, FuzzyScore(tt.query, tt.target), 1e-9)
		})
	}
}

func TestSearch_Query(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantIDs    []string
		wantScores []float64
		wantFields [][]string
	}{
		{
			name:       "instrument only",
			query:      "sarangi",
			wantIDs:    []string{"raj"},
			wantScores: []float64{8},
			wantFields: [][]string{{FieldInstruments}},
		},
		{
			name:       "description and context",
			query:      "temple",
			wantIDs:    []string{"ker"},
			wantScores: []float64{12},
			wantFields: [][]string{{FieldDescription, FieldContext}},
		},
		{
			name:       "ranked with stable ties",
			query:      "a",
			wantIDs:    []string{"ker", "ben", "raj"},
			wantScores: []float64{42, 42, 35},
			wantFields: [][]string{
				{FieldName, FieldInstruments, FieldLanguages, FieldContext, FieldVocalStyle, FieldCommunities},
				{FieldName, FieldDescription, FieldInstruments, FieldLanguages, FieldContext, FieldVocalStyle},
				{FieldName, FieldInstruments, FieldLanguages, FieldVocalStyle, FieldCommunities},
			},
		},
		{
			name:    "nothing scores",
			query:   "qqq",
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := Search(testRegions(), Filters{Query: tt.query})
			require.Equal(t, tt.wantIDs, ids(results))
			for i, r := range results {
				assert.InDelta(t, tt.wantScores[i], r.Score, 1e-9)
				assert.Equal(t, tt.wantFields[i], r.MatchedFields)
			}
		})
	}
}

func TestSearch_NoQueryGivesBaseScore(t *testing.T) {
	for _, q := range []string{"", "   "} {
		results := Search(testRegions(), Filters{Query: q})
		assert.Equal(t, []string{"raj", "ker", "ben"}, ids(results))
		for _, r := range results {
			assert.Equal(t, baseScore, r.Score)
			assert.Empty(t, r.MatchedFields)
		}
	}
}

func TestSearch_HardFilters(t *testing.T) {
	tests := []struct {
		name    string
		filters Filters
		want    []string
	}{
		{name: "regions", filters: Filters{Regions: []string{"ben"}}, want: []string{"ben"}},
		{name: "hereditary", filters: Filters{HereditaryOnly: true}, want: []string{"raj", "ker"}},
		{name: "tempo exact", filters: Filters{Tempo: "Accelerating"}, want: []string{"ker"}},
		{name: "tempo is not substring", filters: Filters{Tempo: "Accel"}, want: []string{}},
		{name: "scale type", filters: Filters{ScaleType: "Neutral"}, want: []string{"raj"}},
		{name: "linguistic family", filters: Filters{LinguisticFamilies: []string{"Dravidian"}}, want: []string{"ker"}},
		{name: "instrument substring", filters: Filters{Instruments: []string{"dhol"}}, want: []string{"raj"}},
		{name: "any instrument", filters: Filters{Instruments: []string{"CHENDA", "ektara"}}, want: []string{"ker", "ben"}},
		{name: "genre from poetic traditions", filters: Filters{Genres: []string{"baul"}}, want: []string{"ben"}},
		{name: "genre from context", filters: Filters{Genres: []string{"temple"}}, want: []string{"ker"}},
		{name: "filters combine", filters: Filters{HereditaryOnly: true, Instruments: []string{"ektara"}}, want: []string{}},
		{name: "filter then query", filters: Filters{HereditaryOnly: true, Query: "temple"}, want: []string{"ker"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Search(testRegions(), tt.filters)))
		})
	}
}

func TestInclude_Reason(t *testing.T) {
	ben := testRegions()[2]

	ok, reason := Include(ben, Filters{HereditaryOnly: true})
	assert.False(t, ok)
	assert.Equal(t, "not a hereditary tradition", reason)

	ok, reason = Include(ben, Filters{})
	assert.True(t, ok)
	assert.Equal(t, "all filters passed", reason)
}

func TestSearch_SkipsNilRegions(t *testing.T) {
	regions := append([]*types.Region{nil}, testRegions()...)
	assert.Len(t, Search(regions, Filters{}), 3)
}
