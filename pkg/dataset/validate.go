package dataset

import (
	"errors"
	"fmt"
	"time"

	"github.com/swaramap/swaramap/pkg/types"
)

// ValidateRegion checks required fields of a region.
func ValidateRegion(r *types.Region) error {
	if r == nil {
		return fmt.Errorf("region is nil")
	}
	if r.ID == "" {
		return fmt.Errorf("region ID is required")
	}
	if r.Name == "" {
		return fmt.Errorf("region %s: name is required", r.ID)
	}
	return nil
}

// Validate checks dataset consistency: unique region IDs and names, and
// artists, news and states that only reference known regions.
// All problems are reported together.
func Validate(ds *Dataset) error {
	if ds == nil {
		return fmt.Errorf("dataset is nil")
	}

	var errs []error
	ids := make(map[string]bool, len(ds.Regions))
	names := make(map[string]bool, len(ds.Regions))
	for _, r := range ds.Regions {
		if err := ValidateRegion(r); err != nil {
			errs = append(errs, err)
			continue
		}
		if ids[r.ID] {
			errs = append(errs, fmt.Errorf("duplicate region ID: %s", r.ID))
		}
		if names[r.Name] {
			errs = append(errs, fmt.Errorf("duplicate region name: %s", r.Name))
		}
		ids[r.ID] = true
		names[r.Name] = true
	}

	artistIDs := make(map[string]bool, len(ds.Artists))
	for _, a := range ds.Artists {
		switch {
		case a == nil:
			errs = append(errs, fmt.Errorf("artist is nil"))
		case a.ID == "" || a.Name == "":
			errs = append(errs, fmt.Errorf("artist %q: ID and name are required", a.ID))
		case artistIDs[a.ID]:
			errs = append(errs, fmt.Errorf("duplicate artist ID: %s", a.ID))
		case a.RegionID != "" && !ids[a.RegionID]:
			errs = append(errs, fmt.Errorf("artist %s references unknown region: %s", a.ID, a.RegionID))
		}
		if a != nil {
			artistIDs[a.ID] = true
		}
	}

	for _, n := range ds.News {
		if n == nil {
			errs = append(errs, fmt.Errorf("news item is nil"))
			continue
		}
		if n.ID == "" || n.Title == "" {
			errs = append(errs, fmt.Errorf("news %q: ID and title are required", n.ID))
		}
		if !ids[n.Region] {
			errs = append(errs, fmt.Errorf("news %s references unknown region: %s", n.ID, n.Region))
		}
		if _, err := time.Parse(types.NewsDateLayout, n.Date); err != nil {
			errs = append(errs, fmt.Errorf("news %s has invalid date %q: %w", n.ID, n.Date, err))
		}
	}

	stateIDs := make(map[string]bool, len(ds.States))
	for _, s := range ds.States {
		if s == nil {
			errs = append(errs, fmt.Errorf("state is nil"))
			continue
		}
		if s.ID == "" {
			errs = append(errs, fmt.Errorf("state ID is required"))
		}
		if stateIDs[s.ID] {
			errs = append(errs, fmt.Errorf("duplicate state ID: %s", s.ID))
		}
		stateIDs[s.ID] = true
		if s.Clickable() && !ids[s.Region] {
			errs = append(errs, fmt.Errorf("state %s references unknown region: %s", s.ID, s.Region))
		}
	}

	return errors.Join(errs...)
}
