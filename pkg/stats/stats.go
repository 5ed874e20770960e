// Package stats computes distributions over a region collection.
//
// Every distribution is sorted by count, highest first. Equal counts keep the
// order in which the value was first seen.
package stats

import (
	"sort"
	"strings"

	"github.com/swaramap/swaramap/pkg/types"
)

// Limits applied to the long-tailed distributions.
const (
	MaxGenres      = 15
	MaxInstruments = 20
	MaxVocalStyles = 12
	MaxCommunities = 10
)

// Instrument categories.
const (
	CategoryMelodic  = "melodic"
	CategoryRhythmic = "rhythmic"
	CategoryUnique   = "unique"
)

// Patronage buckets.
const (
	PatronageRoyal      = "Royal/Court"
	PatronageTemple     = "Temple/Religious"
	PatronageCommercial = "Tourism/Commercial"
	PatronageGovernment = "Government/Academy"
)

// Bucket counts the regions sharing one value.
type Bucket struct {
	Value   string   `json:"value"`
	Count   int      `json:"count"`
	Regions []string `json:"regions,omitempty"` // region names
}

// InstrumentBucket is a Bucket with the category the instrument was first seen in.
type InstrumentBucket struct {
	Bucket
	Category string `json:"category"`
}

// Count is a plain occurrence count.
type Count struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// SocialContext summarizes hereditary traditions, communities and patronage.
type SocialContext struct {
	Hereditary    int     `json:"hereditary"`
	NonHereditary int     `json:"nonHereditary"`
	Communities   []Count `json:"communities"`
	Patronage     []Count `json:"patronage"`
}

// Summary holds collection-wide totals.
type Summary struct {
	Regions     int `json:"regions"`
	Instruments int `json:"instruments"`
	Languages   int `json:"languages"`
	Communities int `json:"communities"`
	Hereditary  int `json:"hereditary"`
}

// Report bundles every distribution.
type Report struct {
	Summary       Summary            `json:"summary"`
	Instruments   []InstrumentBucket `json:"instruments"`
	Tempos        []Bucket           `json:"tempos"`
	Genres        []Bucket           `json:"genres"`
	Linguistic    []Bucket           `json:"linguistic"`
	Scales        []Count            `json:"scales"`
	VocalStyles   []Count            `json:"vocalStyles"`
	SocialContext SocialContext      `json:"socialContext"`
}

// Compute builds the full report. Nil regions are skipped.
func Compute(regions []*types.Region) Report {
	return Report{
		Summary:       Summarize(regions),
		Instruments:   Instruments(regions),
		Tempos:        Tempos(regions),
		Genres:        Genres(regions),
		Linguistic:    Linguistic(regions),
		Scales:        Scales(regions),
		VocalStyles:   VocalStyles(regions),
		SocialContext: Social(regions),
	}
}

// Instruments returns the top instruments by number of regions.
func Instruments(regions []*types.Region) []InstrumentBucket {
	g := newGrouping()
	category := make(map[string]string)
	add := func(r *types.Region, names []string, cat string) {
		for _, name := range names {
			if _, ok := category[name]; !ok {
				category[name] = cat
			}
			g.add(name, r.Name)
		}
	}
	for _, r := range nonNil(regions) {
		add(r, r.Instruments.Melodic, CategoryMelodic)
		add(r, r.Instruments.Rhythmic, CategoryRhythmic)
		add(r, r.Instruments.Unique, CategoryUnique)
	}

	buckets := g.buckets(MaxInstruments)
	out := make([]InstrumentBucket, len(buckets))
	for i, b := range buckets {
		out[i] = InstrumentBucket{Bucket: b, Category: category[b.Value]}
	}
	return out
}

// Tempos groups regions by tempo label.
func Tempos(regions []*types.Region) []Bucket {
	g := newGrouping()
	for _, r := range nonNil(regions) {
		g.add(r.MusicalStructure.Tempo, r.Name)
	}
	return g.buckets(0)
}

// Genres returns the top performance contexts and poetic traditions.
func Genres(regions []*types.Region) []Bucket {
	g := newGrouping()
	for _, r := range nonNil(regions) {
		for _, v := range r.Performance.PerformanceContext {
			g.add(v, r.Name)
		}
		for _, v := range r.Language.PoeticTraditions {
			g.add(v, r.Name)
		}
	}
	return g.buckets(MaxGenres)
}

// Linguistic groups regions by linguistic family.
func Linguistic(regions []*types.Region) []Bucket {
	g := newGrouping()
	for _, r := range nonNil(regions) {
		g.add(r.Language.LinguisticFamily, r.Name)
	}
	return g.buckets(0)
}

// Scales counts scale types.
func Scales(regions []*types.Region) []Count {
	c := newCounter()
	for _, r := range nonNil(regions) {
		c.add(r.MusicalStructure.ScaleType)
	}
	return c.counts(0)
}

// VocalStyles returns the most frequent vocal styles.
func VocalStyles(regions []*types.Region) []Count {
	c := newCounter()
	for _, r := range nonNil(regions) {
		for _, s := range r.Performance.VocalStyle {
			c.add(s)
		}
	}
	return c.counts(MaxVocalStyles)
}

var patronageKeywords = []struct {
	bucket   string
	keywords []string
}{
	{PatronageRoyal, []string{"royal", "court"}},
	{PatronageTemple, []string{"temple", "religious"}},
	{PatronageCommercial, []string{"tourism", "commercial"}},
	{PatronageGovernment, []string{"government", "academy"}},
}

// Social summarizes hereditary traditions, the top communities and the
// patronage buckets. One patronage entry may count towards several buckets.
func Social(regions []*types.Region) SocialContext {
	var sc SocialContext
	communities := newCounter()
	patronage := newCounter()

	for _, r := range nonNil(regions) {
		if r.SocialContext.HereditaryTradition {
			sc.Hereditary++
		} else {
			sc.NonHereditary++
		}
		for _, c := range r.SocialContext.MusicianCaste {
			communities.add(c)
		}
		for _, p := range r.SocialContext.Patronage {
			lp := strings.ToLower(p)
			for _, pk := range patronageKeywords {
				for _, kw := range pk.keywords {
					if strings.Contains(lp, kw) {
						patronage.add(pk.bucket)
						break
					}
				}
			}
		}
	}

	sc.Communities = communities.counts(MaxCommunities)
	sc.Patronage = patronage.counts(0)
	return sc
}

// Summarize returns collection-wide totals.
func Summarize(regions []*types.Region) Summary {
	instruments := make(map[string]struct{})
	languages := make(map[string]struct{})
	communities := make(map[string]struct{})

	var s Summary
	for _, r := range nonNil(regions) {
		s.Regions++
		if r.SocialContext.HereditaryTradition {
			s.Hereditary++
		}
		for _, i := range r.Instruments.All() {
			instruments[i] = struct{}{}
		}
		for _, l := range r.Language.Primary {
			languages[l] = struct{}{}
		}
		for _, c := range r.SocialContext.MusicianCaste {
			communities[c] = struct{}{}
		}
	}
	s.Instruments = len(instruments)
	s.Languages = len(languages)
	s.Communities = len(communities)
	return s
}

func nonNil(regions []*types.Region) []*types.Region {
	out := make([]*types.Region, 0, len(regions))
	for _, r := range regions {
		if r != nil {
			out = append(out, r)
		}
	}
	return out
}

// grouping collects the distinct region names per value in first-seen order.
type grouping struct {
	order   []string
	regions map[string][]string
}

func newGrouping() *grouping {
	return &grouping{regions: make(map[string][]string)}
}

func (g *grouping) add(value, region string) {
	names, ok := g.regions[value]
	if !ok {
		g.order = append(g.order, value)
	}
	for _, n := range names {
		if n == region {
			return
		}
	}
	g.regions[value] = append(names, region)
}

func (g *grouping) buckets(limit int) []Bucket {
	out := make([]Bucket, len(g.order))
	for i, v := range g.order {
		out[i] = Bucket{Value: v, Count: len(g.regions[v]), Regions: g.regions[v]}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return truncate(out, limit)
}

// counter counts occurrences per value in first-seen order.
type counter struct {
	order []string
	n     map[string]int
}

func newCounter() *counter {
	return &counter{n: make(map[string]int)}
}

func (c *counter) add(value string) {
	if _, ok := c.n[value]; !ok {
		c.order = append(c.order, value)
	}
	c.n[value]++
}

func (c *counter) counts(limit int) []Count {
	out := make([]Count, len(c.order))
	for i, v := range c.order {
		out[i] = Count{Value: v, Count: c.n[v]}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return truncate(out, limit)
}

// truncate keeps the first limit items. A limit of 0 keeps everything.
func truncate[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
