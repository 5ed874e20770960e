package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/swaramap/swaramap/pkg/types"
)

func TestHighlight(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		query string
		want  []types.Span
	}{
		{name: "case-insensitive", text: "Dhol and dholak", query: "DHOL", want: []types.Span{{Start: 0, End: 4}, {Start: 9, End: 13}}},
		{name: "non-overlapping", text: "aaa", query: "aa", want: []types.Span{{Start: 0, End: 2}}},
		{name: "multi-byte runes", text: "Çelik çelik", query: "çelik", want: []types.Span{{Start: 0, End: 6}, {Start: 7, End: 13}}},
		{name: "query trimmed", text: "Tabla", query: " tab ", want: []types.Span{{Start: 0, End: 3}}},
		{name: "empty query", text: "Tabla", query: "", want: nil},
		{name: "no match", text: "Tabla", query: "sitar", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spans := Highlight(tt.text, tt.query)
			assert.Equal(t, tt.want, spans)
			for _, s := range spans {
				assert.Equal(t, len(tt.query) > 0, s.Len() > 0)
			}
		})
	}
}
