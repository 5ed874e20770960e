package serve

import (
	"encoding/json"

	"github.com/swaramap/swaramap/pkg/catalog"
	"github.com/swaramap/swaramap/pkg/matcher"
)

// Request represents an incoming NDJSON request
type Request struct {
	ID      string          `json:"id,omitempty"` // echoed back; assigned when empty
	Type    string          `json:"type"`         // "match" | "regions" | "region" | "search" | "close"
	Payload json.RawMessage `json:"payload,omitempty"`
}

// MatchPayload is the payload for "match" requests
type MatchPayload struct {
	InstrumentQuery string `json:"instrumentQuery"`
	RhythmFilter    string `json:"rhythmFilter"`
	Explain         bool   `json:"explain,omitempty"`
}

// MatchData is the data field for "match" responses
type MatchData struct {
	catalog.MatchOutcome
	Explanations []matcher.Explanation `json:"explanations,omitempty"`
}

// RegionsPayload is the payload for "regions" requests.
// With a non-empty query each region carries its emphasis.
type RegionsPayload struct {
	InstrumentQuery string `json:"instrumentQuery,omitempty"`
	RhythmFilter    string `json:"rhythmFilter,omitempty"`
}

// RegionPayload is the payload for "region" requests
type RegionPayload struct {
	ID string `json:"id"`
}

// Response represents an outgoing NDJSON response
type Response struct {
	ID      string          `json:"id,omitempty"`
	Success bool            `json:"success"`
	Type    string          `json:"type"` // "ready" or the request type
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// ReadyData is the data field for "ready" responses
type ReadyData struct {
	Version string   `json:"version"`
	Regions int      `json:"regions"`
	Tokens  []string `json:"tokens"`
}
