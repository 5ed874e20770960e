package types

// Emphasis is the visual weight a map layer gives a region.
type Emphasis string

const (
	EmphasisFull    Emphasis = "full"    // query active, region matched
	EmphasisDimmed  Emphasis = "dimmed"  // query active, region not matched
	EmphasisNeutral Emphasis = "neutral" // no query active
)

// EmphasisFor applies the tri-state highlight policy for one region.
func EmphasisFor(q MatchQuery, result MatchResult, regionID string) Emphasis {
	if !q.Active() {
		return EmphasisNeutral
	}
	if result.Has(regionID) {
		return EmphasisFull
	}
	return EmphasisDimmed
}
