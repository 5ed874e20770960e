package explore

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/swaramap/swaramap/pkg/catalog"
	"github.com/swaramap/swaramap/pkg/matcher"
	"github.com/swaramap/swaramap/pkg/types"
)

// detailsPane shows the selected region and why it matched.
type detailsPane struct {
	view        *catalog.RegionView
	explanation *matcher.Explanation
	artists     []*types.Artist
	query       types.MatchQuery
	width       int
	height      int
	offset      int // scroll offset for content
	focused     bool
}

func newDetailsPane() detailsPane {
	return detailsPane{}
}

func (dp *detailsPane) setRegion(v *catalog.RegionView, q types.MatchQuery, e *matcher.Explanation, artists []*types.Artist) {
	if v == nil || dp.view == nil || v.Region.ID != dp.view.Region.ID {
		dp.offset = 0
	}
	dp.view = v
	dp.query = q
	dp.explanation = e
	dp.artists = artists
}

func (dp detailsPane) Update(msg tea.Msg) (detailsPane, tea.Cmd) {
	if !dp.focused {
		return dp, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, defaultKeys.Up):
			if dp.offset > 0 {
				dp.offset--
			}
		case key.Matches(msg, defaultKeys.Down):
			dp.offset++
		case key.Matches(msg, defaultKeys.Home):
			dp.offset = 0
		case key.Matches(msg, defaultKeys.PageDown):
			dp.offset += dp.visibleRows()
		case key.Matches(msg, defaultKeys.PageUp):
			dp.offset = max(0, dp.offset-dp.visibleRows())
		}
	}

	return dp, nil
}

func (dp detailsPane) View() string {
	if dp.width <= 0 || dp.height <= 0 {
		return ""
	}

	contentWidth := dp.width - 4
	lines := dp.lines()

	// Apply scroll offset
	offset := min(dp.offset, max(0, len(lines)-1))
	visibleLines := lines[offset:]
	if len(visibleLines) > dp.visibleRows() {
		visibleLines = visibleLines[:dp.visibleRows()]
	}

	rendered := make([]string, 0, dp.visibleRows())
	for _, line := range visibleLines {
		rendered = append(rendered, padRight(line, contentWidth))
	}
	for len(rendered) < dp.visibleRows() {
		rendered = append(rendered, strings.Repeat(" ", contentWidth))
	}

	title := titleStyle.Render(" Details ")

	borderStyle := inactiveBorderStyle
	if dp.focused {
		borderStyle = activeBorderStyle
	}

	content := borderStyle.
		Width(dp.width - 2).
		Height(dp.height - 3).
		Render(strings.Join(rendered, "\n"))

	return lipgloss.JoinVertical(lipgloss.Left, title, content)
}

// lines renders the region as unstyled-width content lines.
func (dp detailsPane) lines() []string {
	if dp.view == nil {
		return []string{"  No region selected"}
	}

	r := dp.view.Region
	field := func(label, value string) string {
		return fmt.Sprintf("  %s %s", fieldLabelStyle.Render(label), value)
	}
	list := func(items []string, query string) string {
		out := make([]string, len(items))
		for i, it := range items {
			out[i] = highlight(it, query)
		}
		return strings.Join(out, ", ")
	}

	lines := []string{
		field("Region:", fieldValueStyle.Render(fmt.Sprintf("%s (%s)", r.Name, r.ID))),
		field("Emphasis:", emphasisStyle(dp.view.Emphasis).Render(string(dp.view.Emphasis))),
	}
	if r.Description != "" {
		lines = append(lines, "", "  "+r.Description)
	}

	lines = append(lines, "", "  "+headerRowStyle.Render("Instruments"))
	iq := dp.query.InstrumentQuery
	if len(r.Instruments.Melodic) > 0 {
		lines = append(lines, field("Melodic:", list(r.Instruments.Melodic, iq)))
	}
	if len(r.Instruments.Rhythmic) > 0 {
		lines = append(lines, field("Rhythmic:", list(r.Instruments.Rhythmic, iq)))
	}
	if len(r.Instruments.Unique) > 0 {
		lines = append(lines, field("Unique:", list(r.Instruments.Unique, iq)))
	}

	ms := r.MusicalStructure
	rq := dp.query.RhythmFilter
	lines = append(lines, "", "  "+headerRowStyle.Render("Rhythm"))
	if ms.RhythmicSystem != "" {
		lines = append(lines, field("System:", highlight(ms.RhythmicSystem, rq)))
	}
	if ms.Tempo != "" {
		lines = append(lines, field("Tempo:", highlight(ms.Tempo, rq)))
	}
	if len(ms.Talas) > 0 {
		lines = append(lines, field("Talas:", list(ms.Talas, rq)))
	}

	if e := dp.explanation; e != nil {
		lines = append(lines, "", "  "+headerRowStyle.Render("Matched because"))
		if len(e.Instruments) > 0 {
			lines = append(lines, field("Instrument:", strings.Join(e.Instruments, ", ")))
		}
		if e.Literal {
			lines = append(lines, field("Rhythm text:", fmt.Sprintf("contains %q", rq)))
		}
		if e.Token != "" {
			lines = append(lines, field("Rhythm token:", e.Token))
		}
	}

	if len(r.Language.Primary) > 0 {
		lines = append(lines, "", field("Languages:", strings.Join(r.Language.Primary, ", ")))
	}
	if len(r.SocialContext.MusicianCaste) > 0 {
		lines = append(lines, field("Communities:", strings.Join(r.SocialContext.MusicianCaste, ", ")))
	}

	if len(dp.artists) > 0 {
		lines = append(lines, "", "  "+headerRowStyle.Render("Artists"))
		for _, a := range dp.artists {
			lines = append(lines, "    "+a.Name)
		}
	}

	return lines
}

func (dp detailsPane) visibleRows() int {
	return max(1, dp.height-4)
}

func (dp *detailsPane) setSize(w, h int) {
	dp.width = w
	dp.height = h
}
