package matcher

import "github.com/swaramap/swaramap/pkg/types"

// Convenience rhythm tokens. A rhythm filter equal to one of these (exact
// case) is also tested against the token pattern.
const (
	TokenSlow         = "Slow"
	TokenModerate     = "Moderate"
	TokenFast         = "Fast"
	TokenAccelerating = "Accelerating"
	TokenPolyrhythmic = "Polyrhythmic"
	TokenComplexTalas = "Complex talas"
)

// DefaultTokens returns the built-in token table in display order.
// Each call returns fresh values.
func DefaultTokens() []*types.RhythmToken {
	return []*types.RhythmToken{
		{
			Name:        TokenSlow,
			Pattern:     `slow|vilambit`,
			Keywords:    []string{"slow", "vilambit"},
			Description: "Slow tempos, including vilambit laya",
			Examples:    []string{"vilambit (slow 40-80 bpm)"},
		},
		{
			Name:        TokenModerate,
			Pattern:     `moderate|madhya`,
			Keywords:    []string{"moderate", "madhya"},
			Description: "Moderate tempos, including madhya laya",
			Examples:    []string{"moderate tempo, speech-aligned", "madhya (medium 80-160 bpm)"},
		},
		{
			Name:        TokenFast,
			Pattern:     `fast|drut|140|160|170|180`,
			Keywords:    []string{"fast", "drut", "140", "160", "170", "180"},
			Description: "Fast tempos, drut laya, or a fast BPM figure",
			Examples:    []string{"fast (160 bpm)", "140-180 bpm", "drut"},
		},
		{
			Name:        TokenAccelerating,
			Pattern:     `accelerat`,
			Keywords:    []string{"accelerat"},
			Description: "Tempo that accelerates during performance",
			Examples:    []string{"accelerating from slow to extremely fast", "accelerates during performance"},
		},
		{
			Name:        TokenPolyrhythmic,
			Pattern:     `poly`,
			Keywords:    []string{"poly"},
			Description: "Polyrhythmic systems",
			Examples:    []string{"complex polyrhythms"},
		},
		{
			Name:        TokenComplexTalas,
			Pattern:     `tala|chapu|jhaptal|rupak|teental|adi`,
			Keywords:    []string{"tala", "chapu", "jhaptal", "rupak", "teental", "adi"},
			Description: "Named tala cycles",
			Examples:    []string{"teental (16 beats)", "khanda chapu (5 beats)", "adi tala (8 beats)"},
		},
	}
}

// TokenNames returns the names of the built-in tokens in display order.
func TokenNames() []string {
	tokens := DefaultTokens()
	names := make([]string, len(tokens))
	for i, t := range tokens {
		names[i] = t.Name
	}
	return names
}
