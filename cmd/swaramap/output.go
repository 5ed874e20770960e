package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/swaramap/swaramap/pkg/types"
)

// Output formats shared by the query commands.
const (
	formatTable = "table"
	formatJSON  = "json"
)

// styles holds the color formatters of human output.
type styles struct {
	heading *color.Color
	id      *color.Color
	name    *color.Color
	match   *color.Color
	dimmed  *color.Color
	label   *color.Color
}

func newStyles(enabled bool) *styles {
	s := &styles{
		heading: color.New(color.Bold),
		id:      color.New(color.FgHiGreen),
		name:    color.New(color.Bold, color.FgHiWhite),
		match:   color.New(color.FgYellow),
		dimmed:  color.New(color.FgHiBlack),
		label:   color.New(color.FgHiBlue),
	}

	if !enabled {
		s.heading.DisableColor()
		s.id.DisableColor()
		s.name.DisableColor()
		s.match.DisableColor()
		s.dimmed.DisableColor()
		s.label.DisableColor()
	}

	return s
}

// colorEnabled resolves a --color value. auto enables color only on a
// terminal with NO_COLOR unset.
func colorEnabled(mode string, out io.Writer) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto", "":
		if os.Getenv("NO_COLOR") != "" {
			return false, nil
		}
		f, ok := out.(*os.File)
		return ok && term.IsTerminal(int(f.Fd())), nil
	default:
		return false, fmt.Errorf("invalid color mode %q (want auto, always, never)", mode)
	}
}

func checkFormat(format string) error {
	switch format {
	case formatTable, formatJSON:
		return nil
	default:
		return fmt.Errorf("unsupported format: %s (want table, json)", format)
	}
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// emphasize colors text by the region's emphasis.
func (s *styles) emphasize(text string, e types.Emphasis) string {
	switch e {
	case types.EmphasisFull:
		return s.match.Sprint(text)
	case types.EmphasisDimmed:
		return s.dimmed.Sprint(text)
	default:
		return text
	}
}

// highlightSpans colors the byte ranges of text given by spans.
func (s *styles) highlightSpans(text string, spans []types.Span) string {
	if len(spans) == 0 {
		return text
	}
	var b strings.Builder
	last := 0
	for _, sp := range spans {
		if sp.Start < last || sp.End > len(text) {
			continue
		}
		b.WriteString(text[last:sp.Start])
		b.WriteString(s.match.Sprint(text[sp.Start:sp.End]))
		last = sp.End
	}
	b.WriteString(text[last:])
	return b.String()
}

func joinOrDash(values []string) string {
	if len(values) == 0 {
		return "-"
	}
	return strings.Join(values, ", ")
}
