package dataset

import (
	"github.com/swaramap/swaramap/pkg/types"
)

// Dataset is everything the map needs: regions, the artists and news tied
// to them, and the drawable states.
type Dataset struct {
	Regions []*types.Region   `json:"regions" yaml:"regions"`
	Artists []*types.Artist   `json:"artists,omitempty" yaml:"artists,omitempty"`
	News    []*types.News     `json:"news,omitempty" yaml:"news,omitempty"`
	States  []*types.MapState `json:"states,omitempty" yaml:"states,omitempty"`
}

// Merge appends the contents of other to d.
func (d *Dataset) Merge(other *Dataset) {
	if other == nil {
		return
	}
	d.Regions = append(d.Regions, other.Regions...)
	d.Artists = append(d.Artists, other.Artists...)
	d.News = append(d.News, other.News...)
	d.States = append(d.States, other.States...)
}

// Region returns the region with the given ID, or nil.
func (d *Dataset) Region(id string) *types.Region {
	for _, r := range d.Regions {
		if r != nil && r.ID == id {
			return r
		}
	}
	return nil
}

// ArtistsFor returns the artists of a region in dataset order.
func (d *Dataset) ArtistsFor(regionID string) []*types.Artist {
	var out []*types.Artist
	for _, a := range d.Artists {
		if a != nil && a.RegionID == regionID {
			out = append(out, a)
		}
	}
	return out
}

func fromYAML(f *yamlFile) *Dataset {
	return &Dataset{
		Regions: f.Regions,
		Artists: f.Artists,
		News:    f.News,
		States:  f.States,
	}
}
