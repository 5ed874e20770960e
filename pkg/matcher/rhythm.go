package matcher

import (
	"strings"

	"github.com/swaramap/swaramap/pkg/types"
)

// RhythmBlob joins the rhythmic system, tempo and tala labels of r with a
// single space and lower-cases the result.
func RhythmBlob(r *types.Region) string {
	return strings.ToLower(strings.Join(r.MusicalStructure.RhythmLabels(), " "))
}

// literalRhythmMatch is the plain substring test of the rhythm filter.
func literalRhythmMatch(blob, filter string) bool {
	return strings.Contains(blob, strings.ToLower(filter))
}
