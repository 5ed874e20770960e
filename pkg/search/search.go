// Package search ranks regions against a free-text query and narrows them
// with hard facet filters.
package search

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/swaramap/swaramap/pkg/types"
)

// Field names reported in Result.MatchedFields.
const (
	FieldName        = "name"
	FieldDescription = "description"
	FieldInstruments = "instruments"
	FieldLanguages   = "languages"
	FieldContext     = "context"
	FieldVocalStyle  = "vocal style"
	FieldCommunities = "communities"
)

// baseScore is given to every region that passes the filters when no query is set.
const baseScore = 5.0

// Filters narrows and ranks a search. Empty fields do not filter.
type Filters struct {
	Query              string   `json:"query,omitempty"`
	Regions            []string `json:"regions,omitempty"`            // region IDs
	Instruments        []string `json:"instruments,omitempty"`        // substring, any of
	Genres             []string `json:"genres,omitempty"`             // substring over contexts and poetic traditions, any of
	LinguisticFamilies []string `json:"linguisticFamilies,omitempty"` // exact, any of
	HereditaryOnly     bool     `json:"hereditaryOnly,omitempty"`
	Tempo              string   `json:"tempo,omitempty"`     // exact tempo label
	ScaleType          string   `json:"scaleType,omitempty"` // exact scale type
}

// Result is one ranked region.
type Result struct {
	Region        *types.Region `json:"region"`
	Score         float64       `json:"score"`
	MatchedFields []string      `json:"matchedFields,omitempty"`
}

// scoredField is one query-scored field of a region.
type scoredField struct {
	name      string
	text      func(r *types.Region) string
	threshold float64
	weight    float64
}

var scoredFields = []scoredField{
	{FieldName, func(r *types.Region) string { return r.Name }, 0.5, 10},
	{FieldDescription, func(r *types.Region) string { return r.Description }, 0.3, 5},
	{FieldInstruments, func(r *types.Region) string { return strings.Join(r.Instruments.All(), " ") }, 0.3, 8},
	{FieldLanguages, func(r *types.Region) string { return strings.Join(r.Language.Primary, " ") }, 0.3, 6},
	{FieldContext, func(r *types.Region) string { return strings.Join(r.Performance.PerformanceContext, " ") }, 0.3, 7},
	{FieldVocalStyle, func(r *types.Region) string { return strings.Join(r.Performance.VocalStyle, " ") }, 0.3, 6},
	{FieldCommunities, func(r *types.Region) string { return strings.Join(r.SocialContext.MusicianCaste, " ") }, 0.3, 5},
}

// Search returns the regions passing every filter, highest score first.
// With a query, regions scoring below 1 are dropped. Ties keep input order.
func Search(regions []*types.Region, f Filters) []Result {
	query := strings.TrimSpace(f.Query)

	results := make([]Result, 0, len(regions))
	for _, r := range regions {
		if r == nil {
			continue
		}
		if ok, _ := Include(r, f); !ok {
			continue
		}

		if query == "" {
			results = append(results, Result{Region: r, Score: baseScore})
			continue
		}

		score, fields := scoreRegion(r, query)
		if score < 1 {
			continue
		}
		results = append(results, Result{Region: r, Score: score, MatchedFields: fields})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}

// Include applies the hard filters to one region.
// Returns (include bool, reason string).
func Include(r *types.Region, f Filters) (bool, string) {
	if len(f.Regions) > 0 && !slices.Contains(f.Regions, r.ID) {
		return false, fmt.Sprintf("region '%s' not in %v", r.ID, f.Regions)
	}
	if f.HereditaryOnly && !r.SocialContext.HereditaryTradition {
		return false, "not a hereditary tradition"
	}
	if f.Tempo != "" && r.MusicalStructure.Tempo != f.Tempo {
		return false, fmt.Sprintf("tempo '%s' does not equal '%s'", r.MusicalStructure.Tempo, f.Tempo)
	}
	if f.ScaleType != "" && r.MusicalStructure.ScaleType != f.ScaleType {
		return false, fmt.Sprintf("scale type '%s' does not equal '%s'", r.MusicalStructure.ScaleType, f.ScaleType)
	}
	if len(f.LinguisticFamilies) > 0 && !slices.Contains(f.LinguisticFamilies, r.Language.LinguisticFamily) {
		return false, fmt.Sprintf("linguistic family '%s' not in %v", r.Language.LinguisticFamily, f.LinguisticFamilies)
	}
	if len(f.Instruments) > 0 && !anyContains(r.Instruments.All(), f.Instruments) {
		return false, fmt.Sprintf("no instrument matching %v", f.Instruments)
	}
	if len(f.Genres) > 0 && !anyContains(genres(r), f.Genres) {
		return false, fmt.Sprintf("no genre matching %v", f.Genres)
	}
	return true, "all filters passed"
}

func scoreRegion(r *types.Region, query string) (float64, []string) {
	var score float64
	var fields []string
	for _, sf := range scoredFields {
		s := FuzzyScore(query, sf.text(r))
		if s > sf.threshold {
			score += s * sf.weight
			if !slices.Contains(fields, sf.name) {
				fields = append(fields, sf.name)
			}
		}
	}
	return score, fields
}

// genres are the performance contexts and poetic traditions of r.
func genres(r *types.Region) []string {
	out := make([]string, 0, len(r.Performance.PerformanceContext)+len(r.Language.PoeticTraditions))
	out = append(out, r.Performance.PerformanceContext...)
	out = append(out, r.Language.PoeticTraditions...)
	return out
}

// anyContains reports whether any value contains any needle, case-insensitively.
func anyContains(values, needles []string) bool {
	for _, n := range needles {
		n = strings.ToLower(n)
		for _, v := range values {
			if strings.Contains(strings.ToLower(v), n) {
				return true
			}
		}
	}
	return false
}
