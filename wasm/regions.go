//go:build wasm

package main

import (
	"encoding/json"
	"sync"
	"syscall/js"

	"github.com/swaramap/swaramap/pkg/dataset"
	"github.com/swaramap/swaramap/pkg/matcher"
	"github.com/swaramap/swaramap/pkg/types"
)

// builtinKey selects the embedded dataset in SwaramapLoadRegions.
const builtinKey = "builtin"

var (
	regionSets   = make(map[int][]*types.Region)
	regionSetsMu sync.RWMutex
	nextID       int
)

// matchResponse is returned by SwaramapMatch.
type matchResponse struct {
	IDs      []string                  `json:"ids"`
	Active   bool                      `json:"active"`
	Emphasis map[string]types.Emphasis `json:"emphasis"`
}

// loadRegions registers a region collection.
// JS: SwaramapLoadRegions(regionsJSON | "builtin") -> {handle} or {error}
func loadRegions(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return map[string]interface{}{"error": "regionsJSON argument required"}
	}

	regions, err := parseRegions(args[0].String())
	if err != nil {
		return map[string]interface{}{"error": err.Error()}
	}

	regionSetsMu.Lock()
	id := nextID
	nextID++
	regionSets[id] = regions
	regionSetsMu.Unlock()

	return map[string]interface{}{"handle": id}
}

func parseRegions(data string) ([]*types.Region, error) {
	if data == builtinKey {
		ds, err := dataset.LoadBuiltin()
		if err != nil {
			return nil, err
		}
		return ds.Regions, nil
	}

	var regions []*types.Region
	if err := json.Unmarshal([]byte(data), &regions); err != nil {
		return nil, err
	}
	for _, r := range regions {
		if err := dataset.ValidateRegion(r); err != nil {
			return nil, err
		}
	}
	return regions, nil
}

// match evaluates a query against a registered collection.
// JS: SwaramapMatch(handle, instrumentQuery, rhythmFilter) -> JSON or {error}
func match(this js.Value, args []js.Value) interface{} {
	if len(args) < 3 {
		return map[string]interface{}{"error": "handle, instrumentQuery and rhythmFilter arguments required"}
	}

	handle := args[0].Int()
	q := types.MatchQuery{InstrumentQuery: args[1].String(), RhythmFilter: args[2].String()}

	regionSetsMu.RLock()
	regions, ok := regionSets[handle]
	regionSetsMu.RUnlock()

	if !ok {
		return map[string]interface{}{"error": "invalid regions handle"}
	}

	jsonBytes, err := json.Marshal(evaluate(regions, q))
	if err != nil {
		return map[string]interface{}{"error": "failed to marshal result: " + err.Error()}
	}

	return string(jsonBytes)
}

func evaluate(regions []*types.Region, q types.MatchQuery) matchResponse {
	result := matcher.Default().Match(regions, q)
	resp := matchResponse{
		IDs:      result.IDs(),
		Active:   q.Active(),
		Emphasis: make(map[string]types.Emphasis, len(regions)),
	}
	for _, r := range regions {
		if r == nil {
			continue
		}
		resp.Emphasis[r.ID] = types.EmphasisFor(q, result, r.ID)
	}
	return resp
}

// release drops a registered collection.
// JS: SwaramapRelease(handle)
func release(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return map[string]interface{}{"error": "handle argument required"}
	}

	handle := args[0].Int()

	regionSetsMu.Lock()
	_, ok := regionSets[handle]
	delete(regionSets, handle)
	regionSetsMu.Unlock()

	if !ok {
		return map[string]interface{}{"error": "invalid regions handle"}
	}

	return nil
}

// builtinRegions returns the embedded regions as JSON.
// JS: SwaramapBuiltinRegions() -> JSON regions array
func builtinRegions(this js.Value, args []js.Value) interface{} {
	ds, err := dataset.LoadBuiltin()
	if err != nil {
		return map[string]interface{}{"error": "failed to load builtin regions: " + err.Error()}
	}

	jsonBytes, err := json.Marshal(ds.Regions)
	if err != nil {
		return map[string]interface{}{"error": "failed to marshal regions: " + err.Error()}
	}

	return string(jsonBytes)
}
