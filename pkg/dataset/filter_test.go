package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swaramap/swaramap/pkg/types"
)

func TestParsePatterns(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "empty string returns empty slice",
			input:    "",
			expected: []string{},
		},
		{
			name:     "single pattern",
			input:    "kerala",
			expected: []string{"kerala"},
		},
		{
			name:     "multiple patterns comma-separated",
			input:    "kerala,tamil.*,^b",
			expected: []string{"kerala", "tamil.*", "^b"},
		},
		{
			name:     "patterns with spaces are trimmed",
			input:    " kerala , tamil.* ,, ",
			expected: []string{"kerala", "tamil.*"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParsePatterns(tt.input))
		})
	}
}

func testRegions() []*types.Region {
	return []*types.Region{
		{ID: "rajasthan", Name: "Rajasthan"},
		{ID: "kerala", Name: "Kerala"},
		{ID: "tamilnadu", Name: "Tamil Nadu"},
		{ID: "bengal", Name: "Bengal"},
	}
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name     string
		config   FilterConfig
		expected []string
	}{
		{
			name:     "no patterns keeps all",
			config:   FilterConfig{},
			expected: []string{"rajasthan", "kerala", "tamilnadu", "bengal"},
		},
		{
			name:     "include only",
			config:   FilterConfig{Include: []string{"^k", "nadu$"}},
			expected: []string{"kerala", "tamilnadu"},
		},
		{
			name:     "exclude only",
			config:   FilterConfig{Exclude: []string{"kerala"}},
			expected: []string{"rajasthan", "tamilnadu", "bengal"},
		},
		{
			name:     "include then exclude",
			config:   FilterConfig{Include: []string{"a"}, Exclude: []string{"^t"}},
			expected: []string{"rajasthan", "kerala", "bengal"},
		},
		{
			name:     "include matches nothing",
			config:   FilterConfig{Include: []string{"zzz"}},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered, err := Filter(testRegions(), tt.config)
			require.NoError(t, err)

			ids := make([]string, 0, len(filtered))
			for _, r := range filtered {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}
}

func TestFilter_InvalidPattern(t *testing.T) {
	_, err := Filter(testRegions(), FilterConfig{Include: []string{"("}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid regex pattern")

	_, err = Filter(testRegions(), FilterConfig{Exclude: []string{"[a-"}})
	assert.Error(t, err)
}

func TestFilter_Empty(t *testing.T) {
	filtered, err := Filter(nil, FilterConfig{Include: []string{"("}})
	require.NoError(t, err)
	assert.Empty(t, filtered)
}

func TestDataset_Apply(t *testing.T) {
	ds := &Dataset{
		Regions: testRegions(),
		Artists: []*types.Artist{
			{ID: "a1", Name: "One", RegionID: "kerala"},
			{ID: "a2", Name: "Two", RegionID: "bengal"},
			{ID: "a3", Name: "Three"},
		},
		News: []*types.News{
			{ID: "n1", Title: "Pooram", Region: "kerala", Date: "2025-05-06"},
			{ID: "n2", Title: "Baul", Region: "bengal", Date: "2025-03-08"},
		},
		States: []*types.MapState{
			{ID: "kerala", Name: "Kerala", Region: "kerala"},
			{ID: "westBengal", Name: "West Bengal", Region: "bengal"},
			{ID: "delhi", Name: "Delhi"},
		},
	}
	original := ds.States[1]

	require.NoError(t, ds.Apply(FilterConfig{Include: []string{"kerala"}}))

	require.Len(t, ds.Regions, 1)
	require.Len(t, ds.Artists, 2)
	assert.Equal(t, "a1", ds.Artists[0].ID)
	assert.Equal(t, "a3", ds.Artists[1].ID, "artists without a region are kept")
	require.Len(t, ds.News, 1)
	assert.Equal(t, "n1", ds.News[0].ID)

	require.Len(t, ds.States, 3)
	assert.True(t, ds.States[0].Clickable())
	assert.False(t, ds.States[1].Clickable())
	assert.Equal(t, "bengal", original.Region, "state records are copied, not mutated")
	assert.NoError(t, Validate(ds))
}

func TestDataset_Apply_SharedBackingArrays(t *testing.T) {
	ds := &Dataset{
		Regions: testRegions(),
		States: []*types.MapState{
			{ID: "westBengal", Name: "West Bengal", Region: "bengal"},
		},
	}
	cp := *ds

	require.NoError(t, cp.Apply(FilterConfig{Exclude: []string{"^bengal$"}}))

	assert.Empty(t, cp.States[0].Region)
	assert.Equal(t, "bengal", ds.States[0].Region)
	assert.True(t, ds.States[0].Clickable())
}

func TestDataset_Apply_RegionlessArtistsWithoutFilter(t *testing.T) {
	ds := &Dataset{
		Regions: testRegions(),
		Artists: []*types.Artist{{ID: "a1", Name: "Wandering Baul"}},
	}
	require.NoError(t, Validate(ds))

	require.NoError(t, ds.Apply(FilterConfig{}))
	require.Len(t, ds.Artists, 1)
	assert.Equal(t, "a1", ds.Artists[0].ID)
}
