package dataset

import "github.com/swaramap/swaramap/pkg/types"

// yamlFile is the top-level structure of a dataset YAML file.
// Every section is optional so a dataset can be split across files.
type yamlFile struct {
	Regions []*types.Region   `yaml:"regions,omitempty"`
	Artists []*types.Artist   `yaml:"artists,omitempty"`
	News    []*types.News     `yaml:"news,omitempty"`
	States  []*types.MapState `yaml:"states,omitempty"`
}

func (f *yamlFile) empty() bool {
	return len(f.Regions) == 0 && len(f.Artists) == 0 && len(f.News) == 0 && len(f.States) == 0
}
