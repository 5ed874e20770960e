package types

// Span is a byte range [Start, End) - half-open interval.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the number of bytes covered.
func (s Span) Len() int {
	return s.End - s.Start
}
