package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swaramap/swaramap/pkg/types"
)

func TestValidateRegion(t *testing.T) {
	tests := []struct {
		name    string
		region  *types.Region
		wantErr string
	}{
		{name: "valid", region: &types.Region{ID: "kerala", Name: "Kerala"}},
		{name: "nil", region: nil, wantErr: "region is nil"},
		{name: "missing id", region: &types.Region{Name: "Kerala"}, wantErr: "region ID is required"},
		{name: "missing name", region: &types.Region{ID: "kerala"}, wantErr: "name is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRegion(tt.region)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Dataset {
		return &Dataset{
			Regions: []*types.Region{
				{ID: "kerala", Name: "Kerala"},
				{ID: "bengal", Name: "Bengal"},
			},
			Artists: []*types.Artist{{ID: "a1", Name: "One", RegionID: "kerala"}},
			News:    []*types.News{{ID: "n1", Title: "Pooram", Region: "kerala", Date: "2025-05-06"}},
			States: []*types.MapState{
				{ID: "kerala", Name: "Kerala", Region: "kerala"},
				{ID: "delhi", Name: "Delhi"},
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(ds *Dataset)
		wantErr []string
	}{
		{
			name:   "valid",
			mutate: func(ds *Dataset) {},
		},
		{
			name: "duplicate region id",
			mutate: func(ds *Dataset) {
				ds.Regions = append(ds.Regions, &types.Region{ID: "kerala", Name: "Kerala 2"})
			},
			wantErr: []string{"duplicate region ID: kerala"},
		},
		{
			name: "duplicate region name",
			mutate: func(ds *Dataset) {
				ds.Regions = append(ds.Regions, &types.Region{ID: "kerala2", Name: "Kerala"})
			},
			wantErr: []string{"duplicate region name: Kerala"},
		},
		{
			name: "artist with unknown region",
			mutate: func(ds *Dataset) {
				ds.Artists[0].RegionID = "goa"
			},
			wantErr: []string{"artist a1 references unknown region: goa"},
		},
		{
			name: "news with unknown region and bad date",
			mutate: func(ds *Dataset) {
				ds.News[0].Region = "goa"
				ds.News[0].Date = "May 6"
			},
			wantErr: []string{"news n1 references unknown region: goa", "invalid date"},
		},
		{
			name: "state with unknown region",
			mutate: func(ds *Dataset) {
				ds.States[0].Region = "goa"
			},
			wantErr: []string{"state kerala references unknown region: goa"},
		},
		{
			name: "duplicate state",
			mutate: func(ds *Dataset) {
				ds.States = append(ds.States, &types.MapState{ID: "delhi", Name: "Delhi"})
			},
			wantErr: []string{"duplicate state ID: delhi"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := valid()
			tt.mutate(ds)

			err := Validate(ds)
			if len(tt.wantErr) == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, want := range tt.wantErr {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}

func TestValidate_Nil(t *testing.T) {
	assert.Error(t, Validate(nil))
}
