package store

import (
	"fmt"

	"github.com/swaramap/swaramap/pkg/dataset"
)

// ImportStats tracks import operation statistics.
type ImportStats struct {
	Regions int `json:"regions"`
	Artists int `json:"artists"`
	News    int `json:"news"`
	States  int `json:"states"`
}

// Import upserts every record of ds into s. Nil records are skipped.
// Importing the same dataset twice leaves the store unchanged.
func Import(s Store, ds *dataset.Dataset) (*ImportStats, error) {
	stats := &ImportStats{}
	if ds == nil {
		return stats, nil
	}

	for _, r := range ds.Regions {
		if r == nil {
			continue
		}
		if err := s.AddRegion(r); err != nil {
			return stats, fmt.Errorf("importing region %s: %w", r.ID, err)
		}
		stats.Regions++
	}
	for _, a := range ds.Artists {
		if a == nil {
			continue
		}
		if err := s.AddArtist(a); err != nil {
			return stats, fmt.Errorf("importing artist %s: %w", a.ID, err)
		}
		stats.Artists++
	}
	for _, n := range ds.News {
		if n == nil {
			continue
		}
		if err := s.AddNews(n); err != nil {
			return stats, fmt.Errorf("importing news %s: %w", n.ID, err)
		}
		stats.News++
	}
	for _, st := range ds.States {
		if st == nil {
			continue
		}
		if err := s.AddState(st); err != nil {
			return stats, fmt.Errorf("importing state %s: %w", st.ID, err)
		}
		stats.States++
	}

	return stats, nil
}

// Export reads every record of s back into a dataset.
func Export(s Store) (*dataset.Dataset, error) {
	regions, err := s.GetRegions()
	if err != nil {
		return nil, fmt.Errorf("exporting regions: %w", err)
	}
	artists, err := s.GetArtists("")
	if err != nil {
		return nil, fmt.Errorf("exporting artists: %w", err)
	}
	news, err := s.GetNews()
	if err != nil {
		return nil, fmt.Errorf("exporting news: %w", err)
	}
	states, err := s.GetStates()
	if err != nil {
		return nil, fmt.Errorf("exporting states: %w", err)
	}

	return &dataset.Dataset{
		Regions: regions,
		Artists: artists,
		News:    news,
		States:  states,
	}, nil
}

// Merge copies every record of sources into dest. Later sources win on ID
// conflicts.
func Merge(dest Store, sources ...Store) (*ImportStats, error) {
	if len(sources) == 0 {
		return nil, fmt.Errorf("no source stores specified")
	}

	total := &ImportStats{}
	for i, src := range sources {
		ds, err := Export(src)
		if err != nil {
			return total, fmt.Errorf("reading source %d: %w", i, err)
		}
		stats, err := Import(dest, ds)
		if err != nil {
			return total, fmt.Errorf("merging source %d: %w", i, err)
		}
		total.Regions += stats.Regions
		total.Artists += stats.Artists
		total.News += stats.News
		total.States += stats.States
	}
	return total, nil
}
