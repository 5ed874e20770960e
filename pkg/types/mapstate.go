package types

// MapState is one drawable state on the map.
// Region is empty for states that carry no musical region and are not clickable.
type MapState struct {
	ID     string `json:"id" yaml:"id"` // e.g., "westBengal"
	Name   string `json:"name" yaml:"name"`
	Region string `json:"region,omitempty" yaml:"region,omitempty"`
}

// Clickable reports whether the state maps to a region.
func (s MapState) Clickable() bool {
	return s.Region != ""
}
