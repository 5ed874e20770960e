package catalog

import (
	"context"

	"github.com/swaramap/swaramap/pkg/matcher"
	"github.com/swaramap/swaramap/pkg/types"
)

// MatchOutcome is the result of one query.
type MatchOutcome struct {
	Query  types.MatchQuery  `json:"query"`
	Result types.MatchResult `json:"result"`
	IDs    []string          `json:"ids"` // sorted
	Active bool              `json:"active"`
}

// Match evaluates q against the regions.
func (c *Core) Match(q types.MatchQuery) MatchOutcome {
	result := c.matcher.Match(c.Regions(), q)
	_, isToken := c.matcher.Token(q.RhythmFilter)
	c.matchMetrics.RecordMatch(context.Background(), q, isToken, result.Len())
	return MatchOutcome{
		Query:  q,
		Result: result,
		IDs:    result.IDs(),
		Active: q.Active(),
	}
}

// Explain reports why each matched region matched.
func (c *Core) Explain(q types.MatchQuery) []matcher.Explanation {
	return c.matcher.Explain(c.Regions(), q)
}

// RegionView is one region with its emphasis for a query.
type RegionView struct {
	Region   *types.Region  `json:"region"`
	Emphasis types.Emphasis `json:"emphasis"`
}

// Emphasis returns every region, in dataset order, with its emphasis for q.
func (c *Core) Emphasis(q types.MatchQuery) []RegionView {
	regions := c.Regions()
	result := c.matcher.Match(regions, q)

	views := make([]RegionView, len(regions))
	for i, r := range regions {
		views[i] = RegionView{Region: r, Emphasis: types.EmphasisFor(q, result, r.ID)}
	}
	return views
}

// StateView is one map state with its emphasis and fill colour for a query.
type StateView struct {
	State     *types.MapState `json:"state"`
	Clickable bool            `json:"clickable"`
	Emphasis  types.Emphasis  `json:"emphasis"`
	Color     string          `json:"color,omitempty"` // region colour; empty when dimmed or not clickable
}

// MapStates returns every map state with its emphasis for q.
// States without a known region are not clickable and always neutral.
func (c *Core) MapStates(q types.MatchQuery) []StateView {
	snap := c.current()
	result := c.matcher.Match(snap.ds.Regions, q)

	views := make([]StateView, 0, len(snap.ds.States))
	for _, s := range snap.ds.States {
		v := StateView{State: s, Emphasis: types.EmphasisNeutral}
		if r, ok := snap.byID[s.Region]; ok && s.Clickable() {
			v.Clickable = true
			v.Emphasis = types.EmphasisFor(q, result, r.ID)
			if v.Emphasis != types.EmphasisDimmed {
				v.Color = r.Color
			}
		}
		views = append(views, v)
	}
	return views
}
