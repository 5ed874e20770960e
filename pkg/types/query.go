package types

import (
	"encoding/json"
	"sort"
	"strings"
)

// MatchQuery is one evaluation of the map filters.
type MatchQuery struct {
	InstrumentQuery string `json:"instrumentQuery"` // free text, case-insensitive substring
	RhythmFilter    string `json:"rhythmFilter"`    // free text or a convenience token
}

// Active reports whether either filter would contribute matches.
// An instrument query made only of whitespace is inactive.
func (q MatchQuery) Active() bool {
	return strings.TrimSpace(q.InstrumentQuery) != "" || q.RhythmFilter != ""
}

// MatchResult is the set of matched region IDs.
// The zero value is an empty, read-only set; use NewMatchResult to build one.
type MatchResult map[string]struct{}

// NewMatchResult returns a set holding ids.
func NewMatchResult(ids ...string) MatchResult {
	r := make(MatchResult, len(ids))
	for _, id := range ids {
		r[id] = struct{}{}
	}
	return r
}

// Add inserts id into the set.
func (r MatchResult) Add(id string) {
	r[id] = struct{}{}
}

// Has reports whether id is a member.
func (r MatchResult) Has(id string) bool {
	_, ok := r[id]
	return ok
}

// Len returns the number of members.
func (r MatchResult) Len() int {
	return len(r)
}

// IDs returns the members in sorted order.
func (r MatchResult) IDs() []string {
	ids := make([]string, 0, len(r))
	for id := range r {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Union returns a new set with the members of both.
func (r MatchResult) Union(other MatchResult) MatchResult {
	out := make(MatchResult, len(r)+len(other))
	for id := range r {
		out[id] = struct{}{}
	}
	for id := range other {
		out[id] = struct{}{}
	}
	return out
}

// Equal reports whether both sets have the same members.
func (r MatchResult) Equal(other MatchResult) bool {
	if len(r) != len(other) {
		return false
	}
	for id := range r {
		if !other.Has(id) {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the set as a sorted array.
func (r MatchResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.IDs())
}

// UnmarshalJSON decodes an array of IDs. Duplicates collapse.
func (r *MatchResult) UnmarshalJSON(data []byte) error {
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return err
	}
	*r = NewMatchResult(ids...)
	return nil
}
