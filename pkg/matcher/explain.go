package matcher

import "github.com/swaramap/swaramap/pkg/types"

// Explanation records why a region matched a query.
type Explanation struct {
	RegionID    string   `json:"regionId"`
	Instruments []string `json:"instruments,omitempty"` // instrument names containing the query
	Literal     bool     `json:"literal,omitempty"`     // rhythm filter found verbatim in the rhythm text
	Token       string   `json:"token,omitempty"`       // convenience token whose pattern matched
}

// Matched reports whether any condition held.
func (e Explanation) Matched() bool {
	return len(e.Instruments) > 0 || e.Literal || e.Token != ""
}

// Explain returns one explanation per matched region, in input order.
// The set of explained regions always equals Match(regions, q).
func (m *Matcher) Explain(regions []*types.Region, q types.MatchQuery) []Explanation {
	needle := NormalizeInstrumentQuery(q.InstrumentQuery)
	ct := m.byName[q.RhythmFilter]

	var out []Explanation
	seen := make(map[string]bool)
	for _, r := range regions {
		if r == nil {
			continue
		}
		e := Explanation{RegionID: r.ID}
		if needle != "" {
			e.Instruments = matchingInstruments(r, needle)
		}
		if q.RhythmFilter != "" {
			blob := RhythmBlob(r)
			e.Literal = literalRhythmMatch(blob, q.RhythmFilter)
			if m.tokenMatch(ct, blob) {
				e.Token = ct.token.Name
			}
		}
		if e.Matched() && !seen[r.ID] {
			seen[r.ID] = true
			out = append(out, e)
		}
	}
	return out
}
