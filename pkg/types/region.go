package types

// Region is one musical zone of the map with its instrument, rhythm and
// social-context data.
type Region struct {
	ID               string           `json:"id" yaml:"id"`     // e.g., "rajasthan"
	Name             string           `json:"name" yaml:"name"` // display name
	Color            string           `json:"color,omitempty" yaml:"color,omitempty"`
	Description      string           `json:"description,omitempty" yaml:"description,omitempty"`
	Coordinates      Coordinates      `json:"coordinates" yaml:"coordinates"`
	Geography        Geography        `json:"geography" yaml:"geography"`
	Language         Language         `json:"language" yaml:"language"`
	Instruments      Instruments      `json:"instruments" yaml:"instruments"`
	MusicalStructure MusicalStructure `json:"musicalStructure" yaml:"musical_structure"`
	Performance      Performance      `json:"performance" yaml:"performance"`
	SocialContext    SocialContext    `json:"socialContext" yaml:"social_context"`
	AudioSamples     []AudioSample    `json:"audioSamples,omitempty" yaml:"audio_samples,omitempty"`
	Images           Images           `json:"images" yaml:"images"`
	Sources          []SourceRef      `json:"sources,omitempty" yaml:"sources,omitempty"`
}

// Coordinates is a latitude/longitude pair.
type Coordinates struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lng float64 `json:"lng" yaml:"lng"`
}

// Geography describes terrain and historical influences.
type Geography struct {
	Terrain              []string `json:"terrain,omitempty" yaml:"terrain,omitempty"`
	Climate              string   `json:"climate,omitempty" yaml:"climate,omitempty"`
	HistoricalInfluences []string `json:"historicalInfluences,omitempty" yaml:"historical_influences,omitempty"`
}

// Language describes the languages and poetic traditions of a region.
type Language struct {
	Primary          []string `json:"primary,omitempty" yaml:"primary,omitempty"`
	LinguisticFamily string   `json:"linguisticFamily,omitempty" yaml:"linguistic_family,omitempty"`
	LyricalThemes    []string `json:"lyricalThemes,omitempty" yaml:"lyrical_themes,omitempty"`
	PoeticTraditions []string `json:"poeticTraditions,omitempty" yaml:"poetic_traditions,omitempty"`
}

// Instruments lists instrument names by category.
// Materials is descriptive only and never takes part in matching.
type Instruments struct {
	Melodic   []string `json:"melodic,omitempty" yaml:"melodic,omitempty"`
	Rhythmic  []string `json:"rhythmic,omitempty" yaml:"rhythmic,omitempty"`
	Unique    []string `json:"unique,omitempty" yaml:"unique,omitempty"`
	Materials []string `json:"materials,omitempty" yaml:"materials,omitempty"`
}

// All returns melodic, rhythmic and unique instrument names in that order.
func (i Instruments) All() []string {
	all := make([]string, 0, len(i.Melodic)+len(i.Rhythmic)+len(i.Unique))
	all = append(all, i.Melodic...)
	all = append(all, i.Rhythmic...)
	all = append(all, i.Unique...)
	return all
}

// MusicalStructure holds the rhythmic, melodic and harmonic description.
type MusicalStructure struct {
	RhythmicSystem   string   `json:"rhythmicSystem,omitempty" yaml:"rhythmic_system,omitempty"`
	Talas            []string `json:"talas,omitempty" yaml:"talas,omitempty"` // named rhythmic cycles
	MelodicSystem    string   `json:"melodicSystem,omitempty" yaml:"melodic_system,omitempty"`
	Ragas            []string `json:"ragas,omitempty" yaml:"ragas,omitempty"`
	ScaleType        string   `json:"scaleType,omitempty" yaml:"scale_type,omitempty"`
	HarmonicApproach string   `json:"harmonicApproach,omitempty" yaml:"harmonic_approach,omitempty"`
	Tempo            string   `json:"tempo,omitempty" yaml:"tempo,omitempty"`
}

// RhythmLabels returns the rhythmic system, the tempo and every tala label.
func (ms MusicalStructure) RhythmLabels() []string {
	labels := make([]string, 0, 2+len(ms.Talas))
	labels = append(labels, ms.RhythmicSystem, ms.Tempo)
	labels = append(labels, ms.Talas...)
	return labels
}

// Performance describes vocal style and performance context.
type Performance struct {
	VocalStyle         []string `json:"vocalStyle,omitempty" yaml:"vocal_style,omitempty"`
	Ornamentation      []string `json:"ornamentation,omitempty" yaml:"ornamentation,omitempty"`
	Improvisation      string   `json:"improvisation,omitempty" yaml:"improvisation,omitempty"`
	PerformanceContext []string `json:"performanceContext,omitempty" yaml:"performance_context,omitempty"`
	TypicalDuration    string   `json:"typicalDuration,omitempty" yaml:"typical_duration,omitempty"`
}

// SocialContext describes who performs and who pays for it.
type SocialContext struct {
	MusicianCaste       []string `json:"musicianCaste,omitempty" yaml:"musician_caste,omitempty"`
	HereditaryTradition bool     `json:"hereditaryTradition" yaml:"hereditary_tradition"`
	GenderDynamics      string   `json:"genderDynamics,omitempty" yaml:"gender_dynamics,omitempty"`
	Patronage           []string `json:"patronage,omitempty" yaml:"patronage,omitempty"`
	ReligiousContext    []string `json:"religiousContext,omitempty" yaml:"religious_context,omitempty"`
	ModernChallenges    []string `json:"modernChallenges,omitempty" yaml:"modern_challenges,omitempty"`
}

// AudioSample points at an audio file for a region.
type AudioSample struct {
	Title       string `json:"title" yaml:"title"`
	File        string `json:"file" yaml:"file"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Images holds image paths for a region.
type Images struct {
	Instruments []string `json:"instruments,omitempty" yaml:"instruments,omitempty"`
	Performance []string `json:"performance,omitempty" yaml:"performance,omitempty"`
	Map         string   `json:"map,omitempty" yaml:"map,omitempty"`
}

// SourceRef is a scholarly reference attached to one aspect of a region.
type SourceRef struct {
	Factor string `json:"factor" yaml:"factor"` // e.g., "instrumentation", "structure"
	Note   string `json:"note" yaml:"note"`
	URL    string `json:"url" yaml:"url"`
}
