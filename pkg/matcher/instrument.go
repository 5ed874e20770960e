package matcher

import (
	"strings"

	"github.com/swaramap/swaramap/pkg/types"
)

// NormalizeInstrumentQuery trims and lower-cases an instrument query.
func NormalizeInstrumentQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// matchingInstruments returns the instrument names of r containing needle.
// needle must already be normalized.
func matchingInstruments(r *types.Region, needle string) []string {
	var hits []string
	for _, name := range r.Instruments.All() {
		if strings.Contains(strings.ToLower(name), needle) {
			hits = append(hits, name)
		}
	}
	return hits
}
