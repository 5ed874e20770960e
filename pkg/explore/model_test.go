package explore

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swaramap/swaramap/pkg/catalog"
	"github.com/swaramap/swaramap/pkg/types"
)

func newModel(t *testing.T) Model {
	t.Helper()
	core, err := catalog.New(context.Background(), nil, catalog.Options{})
	require.NoError(t, err)
	return New(core)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func emphasisByID(m Model) map[string]types.Emphasis {
	out := make(map[string]types.Emphasis)
	for _, v := range m.regions.rows {
		out[v.Region.ID] = v.Emphasis
	}
	return out
}

func TestNew_NoQueryIsNeutral(t *testing.T) {
	m := newModel(t)

	assert.False(t, m.Query().Active())
	assert.Len(t, m.regions.rows, 10)
	for id, e := range emphasisByID(m) {
		assert.Equal(t, types.EmphasisNeutral, e, id)
	}
	require.NotNil(t, m.details.view)
	assert.Equal(t, m.regions.rows[0].Region.ID, m.details.view.Region.ID)
}

func TestInstrumentQuery(t *testing.T) {
	m := newModel(t)
	m = send(t, m, runes("/"))
	require.Equal(t, paneQuery, m.focus)

	for _, r := range "sarangi" {
		m = send(t, m, runes(string(r)))
	}
	assert.Equal(t, "sarangi", m.Query().InstrumentQuery)

	emph := emphasisByID(m)
	assert.Equal(t, types.EmphasisFull, emph["rajasthan"])
	assert.Equal(t, types.EmphasisFull, emph["kashmir"])
	assert.Equal(t, types.EmphasisDimmed, emph["kerala"])
	assert.Equal(t, 2, m.regions.matched())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, paneRegions, m.focus)
}

func TestCycleRhythm(t *testing.T) {
	m := newModel(t)
	require.Len(t, m.tokens, 6)

	m = send(t, m, runes("t"))
	assert.Equal(t, "Slow", m.Query().RhythmFilter)
	emph := emphasisByID(m)
	assert.Equal(t, types.EmphasisFull, emph["kerala"])
	assert.Equal(t, types.EmphasisFull, emph["uttarpradesh"])
	assert.Equal(t, 2, m.regions.matched())

	// backwards from "Slow" returns to no filter
	m = send(t, m, runes("T"))
	assert.Equal(t, "", m.Query().RhythmFilter)
	assert.False(t, m.Query().Active())

	// backwards from no filter wraps to the last token
	m = send(t, m, runes("T"))
	assert.Equal(t, "Complex talas", m.Query().RhythmFilter)
}

func TestClearFilters(t *testing.T) {
	m := newModel(t)
	m = send(t, m, runes("t"), runes("t"), runes("t"))
	assert.Equal(t, "Fast", m.Query().RhythmFilter)
	assert.Equal(t, 5, m.regions.matched())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.False(t, m.Query().Active())
	assert.Equal(t, 0, m.regions.matched())
}

func TestSortByEmphasisKeepsSelection(t *testing.T) {
	m := newModel(t)
	m = send(t, m, runes("t")) // Slow

	m = send(t, m, runes("G"))
	selected := m.regions.selected().Region.ID

	m = send(t, m, runes("s"), runes("s")) // name, then match
	require.Equal(t, sortByEmphasis, m.regions.sortBy)
	assert.Equal(t, selected, m.regions.selected().Region.ID)
	assert.Equal(t, selected, m.details.view.Region.ID)

	assert.Equal(t, types.EmphasisFull, m.regions.rows[0].Emphasis)
	assert.Equal(t, types.EmphasisFull, m.regions.rows[1].Emphasis)
	assert.Equal(t, types.EmphasisDimmed, m.regions.rows[2].Emphasis)
}

func TestDetailsExplanation(t *testing.T) {
	m := newModel(t)
	m = send(t, m, runes("t")) // Slow

	for i, v := range m.regions.rows {
		if v.Region.ID == "kerala" {
			m.regions.cursor = i
		}
	}
	m.updateDetails()

	require.NotNil(t, m.details.explanation)
	assert.Equal(t, "kerala", m.details.explanation.RegionID)
	assert.True(t, m.details.explanation.Matched())
}

func TestNavigation(t *testing.T) {
	m := newModel(t)

	m = send(t, m, runes("j"), runes("j"))
	assert.Equal(t, 2, m.regions.cursor)
	assert.Equal(t, m.regions.rows[2].Region.ID, m.details.view.Region.ID)

	m = send(t, m, runes("k"))
	assert.Equal(t, 1, m.regions.cursor)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, paneDetails, m.focus)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, paneQuery, m.focus)
}

func TestView(t *testing.T) {
	m := newModel(t)
	assert.Equal(t, "Loading...", m.View())

	m = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40}, runes("t"))
	view := m.View()
	assert.Contains(t, view, "Regions (2/10)")
	assert.Contains(t, view, "Slow")
	assert.Contains(t, view, "Details")

	m = send(t, m, runes("?"))
	assert.Contains(t, m.View(), "Help")
	m = send(t, m, runes("q"))
	assert.False(t, m.showHelp)
}

func TestQuit(t *testing.T) {
	m := newModel(t)
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestHighlight(t *testing.T) {
	assert.Equal(t, "Dhol", highlight("Dhol", ""))
	assert.Equal(t, "Dhol", highlight("Dhol", "xyz"))
	out := highlight("Dholak", "hol")
	assert.Contains(t, stripAnsi(out), "Dholak")
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "", truncateString("abc", 0))
	assert.Equal(t, "abc", truncateString("abc", 3))
	assert.Equal(t, "ab", truncateString("abc", 2))
	assert.Equal(t, "Raj...", truncateString("Rajasthan", 6))
}
