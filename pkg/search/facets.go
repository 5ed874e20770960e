package search

import (
	"sort"
	"strings"

	"github.com/swaramap/swaramap/pkg/types"
)

// AllInstruments returns every distinct instrument name, sorted.
func AllInstruments(regions []*types.Region) []string {
	return collect(regions, func(r *types.Region) []string { return r.Instruments.All() })
}

// AllGenres returns every distinct performance context and poetic tradition, sorted.
func AllGenres(regions []*types.Region) []string {
	return collect(regions, genres)
}

// AllLinguisticFamilies returns every distinct linguistic family, sorted.
func AllLinguisticFamilies(regions []*types.Region) []string {
	return collect(regions, func(r *types.Region) []string { return []string{r.Language.LinguisticFamily} })
}

// AllTempos returns every distinct tempo label, sorted.
func AllTempos(regions []*types.Region) []string {
	return collect(regions, func(r *types.Region) []string { return []string{r.MusicalStructure.Tempo} })
}

// AllScaleTypes returns every distinct scale type, sorted.
func AllScaleTypes(regions []*types.Region) []string {
	return collect(regions, func(r *types.Region) []string { return []string{r.MusicalStructure.ScaleType} })
}

// Suggest returns up to limit values containing query, drawn from region
// names, instruments, genres and communities in that order.
func Suggest(regions []*types.Region, query string, limit int) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || limit <= 0 {
		return nil
	}

	var names, communities []string
	for _, r := range regions {
		if r == nil {
			continue
		}
		names = append(names, r.Name)
		communities = append(communities, r.SocialContext.MusicianCaste...)
	}

	seen := make(map[string]bool)
	var out []string
	for _, group := range [][]string{names, AllInstruments(regions), AllGenres(regions), communities} {
		for _, v := range group {
			if len(out) == limit {
				return out
			}
			if !seen[v] && strings.Contains(strings.ToLower(v), q) {
				seen[v] = true
				out = append(out, v)
			}
		}
	}
	return out
}

func collect(regions []*types.Region, values func(*types.Region) []string) []string {
	set := make(map[string]struct{})
	for _, r := range regions {
		if r == nil {
			continue
		}
		for _, v := range values(r) {
			if v != "" {
				set[v] = struct{}{}
			}
		}
	}
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
