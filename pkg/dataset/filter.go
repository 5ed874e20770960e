package dataset

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/swaramap/swaramap/pkg/types"
)

// FilterConfig specifies include and exclude patterns for region filtering.
type FilterConfig struct {
	Include []string // Regex patterns - only matching region IDs included
	Exclude []string // Regex patterns - matching region IDs excluded
}

// ParsePatterns splits a comma-separated string into individual patterns.
// Patterns are trimmed of whitespace.
func ParsePatterns(patterns string) []string {
	if patterns == "" {
		return []string{}
	}

	parts := strings.Split(patterns, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// Filter applies include and exclude patterns to regions.
// Include is applied first, then exclude.
// Empty include means "include all".
// Returns error if any pattern is invalid regex.
func Filter(regions []*types.Region, config FilterConfig) ([]*types.Region, error) {
	if len(regions) == 0 {
		return regions, nil
	}

	includeRegexes, err := compileAll(config.Include)
	if err != nil {
		return nil, err
	}
	excludeRegexes, err := compileAll(config.Exclude)
	if err != nil {
		return nil, err
	}

	filtered := regions
	if len(includeRegexes) > 0 {
		filtered = keep(filtered, includeRegexes, true)
	}
	if len(excludeRegexes) > 0 {
		filtered = keep(filtered, excludeRegexes, false)
	}

	return filtered, nil
}

// Apply filters the regions of ds and drops artists, news and state links
// that point at removed regions. It assigns new slices and never writes
// through the old ones, so a shallow copy of a dataset can be filtered
// without touching the original. Artists without a region are kept.
func (d *Dataset) Apply(config FilterConfig) error {
	regions, err := Filter(d.Regions, config)
	if err != nil {
		return err
	}
	d.Regions = regions

	kept := make(map[string]bool, len(regions))
	for _, r := range regions {
		kept[r.ID] = true
	}

	artists := d.Artists[:0:0]
	for _, a := range d.Artists {
		if a != nil && (a.RegionID == "" || kept[a.RegionID]) {
			artists = append(artists, a)
		}
	}
	d.Artists = artists

	news := d.News[:0:0]
	for _, n := range d.News {
		if n != nil && kept[n.Region] {
			news = append(news, n)
		}
	}
	d.News = news

	states := make([]*types.MapState, len(d.States))
	copy(states, d.States)
	for i, s := range states {
		if s != nil && s.Region != "" && !kept[s.Region] {
			unlinked := *s
			unlinked.Region = ""
			states[i] = &unlinked
		}
	}
	d.States = states
	return nil
}

// =============================================================================
// HELPERS
// =============================================================================

func compileAll(patterns []string) ([]*regexp.Regexp, error) {
	var regexes []*regexp.Regexp
	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid regex pattern %q: %w", pattern, err)
		}
		regexes = append(regexes, re)
	}
	return regexes, nil
}

func keep(regions []*types.Region, regexes []*regexp.Regexp, want bool) []*types.Region {
	result := make([]*types.Region, 0)
	for _, r := range regions {
		if r == nil {
			continue
		}
		if matchesAny(r.ID, regexes) == want {
			result = append(result, r)
		}
	}
	return result
}

func matchesAny(id string, regexes []*regexp.Regexp) bool {
	for _, re := range regexes {
		if re.MatchString(id) {
			return true
		}
	}
	return false
}
