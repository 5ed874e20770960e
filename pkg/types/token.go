package types

import (
	"crypto/sha1"
	"encoding/hex"
)

// RhythmToken is a convenience rhythm filter with a fixed pattern.
type RhythmToken struct {
	Name        string   // exact filter value, e.g., "Complex talas"
	Pattern     string   // regex tested against the lower-cased rhythm blob
	Description string   // optional
	Examples    []string // blobs the pattern must match

	// Keywords are literals for Aho-Corasick prefiltering. The prefilter is
	// only used when every alternative of Pattern requires one of them.
	Keywords []string
}

// ComputeStructuralID computes SHA-1 of the token pattern.
func (t *RhythmToken) ComputeStructuralID() string {
	h := sha1.New()
	h.Write([]byte(t.Pattern))
	return hex.EncodeToString(h.Sum(nil))
}
