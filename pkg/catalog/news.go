package catalog

import (
	"sort"
	"time"

	"github.com/swaramap/swaramap/pkg/types"
)

// NewsFilter selects news items. Empty fields do not filter.
type NewsFilter struct {
	Region   string             `json:"region,omitempty"`
	Category types.NewsCategory `json:"category,omitempty"`
	// UpcomingAt, when non-zero, drops events that ended before it.
	UpcomingAt time.Time `json:"upcomingAt,omitempty"`
	Limit      int       `json:"limit,omitempty"` // 0 means no limit
}

// News returns the matching news items, featured first, then by date
// ascending. Items with unparseable dates sort last within their group.
func (c *Core) News(f NewsFilter) []*types.News {
	all := c.current().ds.News

	out := make([]*types.News, 0, len(all))
	for _, n := range all {
		if n == nil {
			continue
		}
		if f.Region != "" && n.Region != f.Region {
			continue
		}
		if f.Category != "" && n.Category != f.Category {
			continue
		}
		if !f.UpcomingAt.IsZero() && !n.Upcoming(f.UpcomingAt) {
			continue
		}
		out = append(out, n)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Featured != b.Featured {
			return a.Featured
		}
		ta, tb := a.StartTime(), b.StartTime()
		if ta.IsZero() != tb.IsZero() {
			return tb.IsZero()
		}
		return ta.Before(tb)
	})

	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out
}
