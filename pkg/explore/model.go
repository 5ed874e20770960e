// Package explore implements the interactive terminal explorer: an
// instrument query, a rhythm filter and the region list with emphasis.
package explore

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/swaramap/swaramap/pkg/catalog"
	"github.com/swaramap/swaramap/pkg/matcher"
	"github.com/swaramap/swaramap/pkg/search"
	"github.com/swaramap/swaramap/pkg/types"
)

// focusedPane tracks which pane has keyboard focus.
type focusedPane int

const (
	paneQuery focusedPane = iota
	paneRegions
	paneDetails
	paneCount // sentinel
)

// Model is the root Bubble Tea model for the explore TUI.
type Model struct {
	core *catalog.Core

	input   textinput.Model
	tokens  []string
	rhythm  int // index into tokens; -1 means no rhythm filter
	regions regionsPane
	details detailsPane

	explanations map[string]matcher.Explanation

	focus       focusedPane
	showHelp    bool
	helpOffset  int
	helpContent string

	width  int
	height int
}

// New creates a Model over core with no filters set.
func New(core *catalog.Core) Model {
	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = "instrument, e.g. sarangi"
	input.CharLimit = 64
	input.ShowSuggestions = true
	input.SetSuggestions(search.AllInstruments(core.Regions()))

	tokens := core.Matcher().Tokens()
	names := make([]string, len(tokens))
	for i, t := range tokens {
		names[i] = t.Name
	}

	m := Model{
		core:    core,
		input:   input,
		tokens:  names,
		rhythm:  -1,
		regions: newRegionsPane(),
		details: newDetailsPane(),
	}
	m.setFocus(paneRegions)
	m.refresh()
	return m
}

// Query returns the query the view currently reflects.
func (m Model) Query() types.MatchQuery {
	q := types.MatchQuery{InstrumentQuery: m.input.Value()}
	if m.rhythm >= 0 {
		q.RhythmFilter = m.tokens[m.rhythm]
	}
	return q
}

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("swaramap explore")
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			m.updateHelp(msg)
			return m, nil
		}

		if key.Matches(msg, defaultKeys.ForceQuit) {
			return m, tea.Quit
		}

		// The query input takes every key except the ones that leave it
		if m.focus == paneQuery {
			switch {
			case key.Matches(msg, defaultKeys.Leave):
				m.setFocus(paneRegions)
				return m, nil
			case key.Matches(msg, defaultKeys.NextPane):
				m.setFocus(paneRegions)
				return m, nil
			}
			prev := m.input.Value()
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			if m.input.Value() != prev {
				m.refresh()
			}
			return m, cmd
		}

		switch {
		case key.Matches(msg, defaultKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, defaultKeys.ToggleHelp):
			m.showHelp = true
			m.helpOffset = 0
			m.helpContent = renderHelp()
			return m, nil
		case key.Matches(msg, defaultKeys.FocusQuery):
			m.setFocus(paneQuery)
			return m, textinput.Blink
		case key.Matches(msg, defaultKeys.FocusRegions):
			m.setFocus(paneRegions)
			return m, nil
		case key.Matches(msg, defaultKeys.FocusDetails):
			m.setFocus(paneDetails)
			return m, nil
		case key.Matches(msg, defaultKeys.NextPane):
			m.setFocus((m.focus + 1) % paneCount)
			return m, nil
		case key.Matches(msg, defaultKeys.NextRhythm):
			m.cycleRhythm(1)
			return m, nil
		case key.Matches(msg, defaultKeys.PrevRhythm):
			m.cycleRhythm(-1)
			return m, nil
		case key.Matches(msg, defaultKeys.ClearFilter):
			m.input.SetValue("")
			m.rhythm = -1
			m.refresh()
			return m, nil
		}

		switch m.focus {
		case paneRegions:
			prev := m.regions.cursor
			var cmd tea.Cmd
			m.regions, cmd = m.regions.Update(msg)
			if m.regions.cursor != prev || key.Matches(msg, defaultKeys.SortNext) {
				m.updateDetails()
			}
			return m, cmd
		case paneDetails:
			var cmd tea.Cmd
			m.details, cmd = m.details.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m *Model) updateHelp(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, defaultKeys.Quit),
		key.Matches(msg, defaultKeys.ForceQuit),
		key.Matches(msg, defaultKeys.ToggleHelp),
		msg.String() == "esc":
		m.showHelp = false
	case key.Matches(msg, defaultKeys.Down):
		m.helpOffset++
	case key.Matches(msg, defaultKeys.Up):
		if m.helpOffset > 0 {
			m.helpOffset--
		}
	}
}

// cycleRhythm steps through "no filter" and every rhythm token.
func (m *Model) cycleRhythm(step int) {
	n := len(m.tokens) + 1
	m.rhythm = ((m.rhythm+1+step)%n+n)%n - 1
	m.refresh()
}

// refresh re-evaluates the query and rebuilds both panes.
func (m *Model) refresh() {
	q := m.Query()
	m.regions.setViews(m.core.Emphasis(q))

	m.explanations = make(map[string]matcher.Explanation)
	for _, e := range m.core.Explain(q) {
		m.explanations[e.RegionID] = e
	}
	m.updateDetails()
}

func (m *Model) updateDetails() {
	v := m.regions.selected()
	if v == nil {
		m.details.setRegion(nil, m.Query(), nil, nil)
		return
	}

	var e *matcher.Explanation
	if exp, ok := m.explanations[v.Region.ID]; ok {
		e = &exp
	}
	artists, _ := m.core.Artists(v.Region.ID)
	m.details.setRegion(v, m.Query(), e, artists)
}

func (m *Model) setFocus(p focusedPane) {
	m.regions.focused = p == paneRegions
	m.details.focused = p == paneDetails
	if p == paneQuery {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
	m.focus = p
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelpOverlay()
	}

	queryBar := m.renderQueryBar()
	statusBar := m.renderStatusBar()
	contentHeight := m.height - lipgloss.Height(queryBar) - 1

	regionsWidth := min(m.width*35/100, 40)
	detailsWidth := m.width - regionsWidth

	m.regions.setSize(regionsWidth, contentHeight)
	m.details.setSize(detailsWidth, contentHeight)

	main := lipgloss.JoinHorizontal(lipgloss.Top, m.regions.View(), m.details.View())
	return lipgloss.JoinVertical(lipgloss.Left, queryBar, main, statusBar)
}

func (m Model) renderQueryBar() string {
	rhythm := helpDescStyle.Render("any")
	if m.rhythm >= 0 {
		rhythm = fullStyle.Render(m.tokens[m.rhythm])
	}

	label := fieldLabelStyle.Render("Instrument:")
	if m.focus == paneQuery {
		label = titleStyle.Render("Instrument:")
	}

	return fmt.Sprintf(" %s %s   %s %s",
		label, padRight(m.input.View(), 28),
		fieldLabelStyle.Render("Rhythm:"), rhythm)
}

func (m Model) renderStatusBar() string {
	status := "no filter"
	if m.Query().Active() {
		status = fmt.Sprintf("%d matched", m.regions.matched())
	}
	left := statusBarStyle.Render(fmt.Sprintf(" %d regions | %s", len(m.regions.rows), status))

	right := fmt.Sprintf("%s:%s  %s:%s  %s:%s  %s:%s  %s:%s  %s:%s",
		helpKeyStyle.Render("/"), helpDescStyle.Render("instrument"),
		helpKeyStyle.Render("t/T"), helpDescStyle.Render("rhythm"),
		helpKeyStyle.Render("j/k"), helpDescStyle.Render("nav"),
		helpKeyStyle.Render("s"), helpDescStyle.Render("sort"),
		helpKeyStyle.Render("tab"), helpDescStyle.Render("focus"),
		helpKeyStyle.Render("?"), helpDescStyle.Render("help"),
	)

	gap := max(0, m.width-lipgloss.Width(left)-lipgloss.Width(right))
	return left + strings.Repeat(" ", gap) + right
}

func (m Model) renderHelpOverlay() string {
	overlayWidth := m.width * 80 / 100
	overlayHeight := m.height * 80 / 100

	lines := strings.Split(m.helpContent, "\n")
	offset := min(m.helpOffset, max(0, len(lines)-1))
	end := min(offset+overlayHeight-4, len(lines))
	content := strings.Join(lines[offset:end], "\n")

	box := modalStyle.
		Width(overlayWidth - 4).
		Height(overlayHeight - 2).
		Render(content)

	overlayView := lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(" Help (q to close) "), box)

	// Center on screen
	hPad := (m.width - lipgloss.Width(overlayView)) / 2
	vPad := (m.height - lipgloss.Height(overlayView)) / 2

	return strings.Repeat("\n", max(0, vPad)) +
		lipgloss.NewStyle().PaddingLeft(max(0, hPad)).Render(overlayView)
}

// renderHelp generates help text.
func renderHelp() string {
	return `swaramap explore - Musical Regions of India

QUERY
  / or i            Edit the instrument query (esc or enter to leave)
  t / T             Next / previous rhythm token
  Ctrl+r            Clear both filters

NAVIGATION
  j/k or Up/Down    Move cursor up/down
  Ctrl+f/Ctrl+b     Page down/up
  g/G               Jump to top/bottom
  tab               Cycle focus
  r                 Focus regions
  d                 Focus details

VIEWS
  s                 Cycle sort: map order, name, matched first
  ?                 Toggle this help screen

EMPHASIS
  ●                 Matched by the current query
  ○                 Not matched (dimmed)
                    No marker when no query is active

QUIT
  q                 Quit
  Ctrl+c            Force quit
`
}
