package serve

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequest_MatchUnmarshal(t *testing.T) {
	input := `{"id":"r1","type":"match","payload":{"instrumentQuery":"sarangi","rhythmFilter":"Fast","explain":true}}`

	var req Request
	err := json.Unmarshal([]byte(input), &req)
	require.NoError(t, err)

	assert.Equal(t, "r1", req.ID)
	assert.Equal(t, "match", req.Type)

	var payload MatchPayload
	err = json.Unmarshal(req.Payload, &payload)
	require.NoError(t, err)

	assert.Equal(t, "sarangi", payload.InstrumentQuery)
	assert.Equal(t, "Fast", payload.RhythmFilter)
	assert.True(t, payload.Explain)
}

func TestResponse_Marshal(t *testing.T) {
	resp := Response{
		Success: true,
		Type:    "ready",
	}

	data, err := json.Marshal(resp)
	require.NoError(t, err)

	assert.Contains(t, string(data), `"success":true`)
	assert.Contains(t, string(data), `"type":"ready"`)
	assert.NotContains(t, string(data), `"id"`)
	assert.NotContains(t, string(data), `"error"`)
}
