package explore

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/swaramap/swaramap/pkg/catalog"
	"github.com/swaramap/swaramap/pkg/types"
)

// sortField defines the region list order.
type sortField int

const (
	sortByDataset sortField = iota
	sortByName
	sortByEmphasis
	sortFieldCount // sentinel
)

var sortFieldNames = [sortFieldCount]string{
	"Map", "Name", "Match",
}

// emphasisRank orders matched regions first.
var emphasisRank = map[types.Emphasis]int{
	types.EmphasisFull:    0,
	types.EmphasisNeutral: 1,
	types.EmphasisDimmed:  2,
}

// regionsPane is the region list with per-region emphasis.
type regionsPane struct {
	rows    []catalog.RegionView // in display order
	order   map[string]int       // dataset position by region ID
	cursor  int
	offset  int
	width   int
	height  int
	focused bool
	sortBy  sortField
}

func newRegionsPane() regionsPane {
	return regionsPane{order: map[string]int{}}
}

// setViews replaces the rows and keeps the cursor on the same region.
func (rp *regionsPane) setViews(views []catalog.RegionView) {
	selected := ""
	if v := rp.selected(); v != nil {
		selected = v.Region.ID
	}

	rp.rows = slices.Clone(views)
	rp.order = make(map[string]int, len(views))
	for i, v := range views {
		rp.order[v.Region.ID] = i
	}
	rp.resort(selected)
}

// resort orders the rows by sortBy and moves the cursor to selected.
func (rp *regionsPane) resort(selected string) {
	rp.sort()

	rp.cursor = 0
	for i, v := range rp.rows {
		if v.Region.ID == selected {
			rp.cursor = i
			break
		}
	}
	rp.ensureVisible()
}

func (rp regionsPane) selected() *catalog.RegionView {
	if rp.cursor < 0 || rp.cursor >= len(rp.rows) {
		return nil
	}
	return &rp.rows[rp.cursor]
}

// matched returns how many rows are fully emphasised.
func (rp regionsPane) matched() int {
	n := 0
	for _, v := range rp.rows {
		if v.Emphasis == types.EmphasisFull {
			n++
		}
	}
	return n
}

func (rp regionsPane) Update(msg tea.Msg) (regionsPane, tea.Cmd) {
	if !rp.focused {
		return rp, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, defaultKeys.Up):
			if rp.cursor > 0 {
				rp.cursor--
				rp.ensureVisible()
			}
		case key.Matches(msg, defaultKeys.Down):
			if rp.cursor < len(rp.rows)-1 {
				rp.cursor++
				rp.ensureVisible()
			}
		case key.Matches(msg, defaultKeys.Home):
			rp.cursor = 0
			rp.offset = 0
		case key.Matches(msg, defaultKeys.End):
			rp.cursor = max(0, len(rp.rows)-1)
			rp.ensureVisible()
		case key.Matches(msg, defaultKeys.PageDown):
			rp.cursor = max(0, min(rp.cursor+rp.visibleRows(), len(rp.rows)-1))
			rp.ensureVisible()
		case key.Matches(msg, defaultKeys.PageUp):
			rp.cursor = max(rp.cursor-rp.visibleRows(), 0)
			rp.ensureVisible()
		case key.Matches(msg, defaultKeys.SortNext):
			rp.sortBy = (rp.sortBy + 1) % sortFieldCount
			if v := rp.selected(); v != nil {
				rp.resort(v.Region.ID)
			}
		}
	}

	return rp, nil
}

func (rp *regionsPane) sort() {
	byDataset := func(a, b catalog.RegionView) int {
		return cmp.Compare(rp.order[a.Region.ID], rp.order[b.Region.ID])
	}

	switch rp.sortBy {
	case sortByDataset:
		slices.SortStableFunc(rp.rows, byDataset)
	case sortByName:
		slices.SortStableFunc(rp.rows, func(a, b catalog.RegionView) int {
			return cmp.Compare(strings.ToLower(a.Region.Name), strings.ToLower(b.Region.Name))
		})
	case sortByEmphasis:
		slices.SortStableFunc(rp.rows, func(a, b catalog.RegionView) int {
			if c := cmp.Compare(emphasisRank[a.Emphasis], emphasisRank[b.Emphasis]); c != 0 {
				return c
			}
			return byDataset(a, b)
		})
	}
}

func (rp regionsPane) View() string {
	if rp.width <= 0 || rp.height <= 0 {
		return ""
	}

	contentWidth := rp.width - 4 // borders

	lines := make([]string, 0, rp.visibleRows())
	visibleEnd := min(rp.offset+rp.visibleRows(), len(rp.rows))
	for i := rp.offset; i < visibleEnd; i++ {
		v := rp.rows[i]

		name := truncateString(v.Region.Name, contentWidth-6)
		line := fmt.Sprintf(" %s %s %s",
			renderEmphasis(v.Emphasis),
			renderSwatch(v.Region.Color, v.Emphasis),
			emphasisStyle(v.Emphasis).Render(name))

		if i == rp.cursor && rp.focused {
			line = selectedRowStyle.Width(contentWidth).Render(stripAnsi(line))
		}
		lines = append(lines, padRight(line, contentWidth))
	}

	// Fill empty rows
	for len(lines) < rp.visibleRows() {
		lines = append(lines, strings.Repeat(" ", contentWidth))
	}

	title := titleStyle.Render(fmt.Sprintf(" Regions (%d/%d) [sort: %s] ",
		rp.matched(), len(rp.rows), sortFieldNames[rp.sortBy]))

	borderStyle := inactiveBorderStyle
	if rp.focused {
		borderStyle = activeBorderStyle
	}

	content := borderStyle.
		Width(rp.width - 2).
		Height(rp.height - 3).
		Render(strings.Join(lines, "\n"))

	return lipgloss.JoinVertical(lipgloss.Left, title, content)
}

func (rp regionsPane) visibleRows() int {
	return max(1, rp.height-4) // title + border
}

func (rp *regionsPane) ensureVisible() {
	if rp.cursor < rp.offset {
		rp.offset = rp.cursor
	}
	if rp.cursor >= rp.offset+rp.visibleRows() {
		rp.offset = rp.cursor - rp.visibleRows() + 1
	}
}

func (rp *regionsPane) setSize(w, h int) {
	rp.width = w
	rp.height = h
	rp.ensureVisible()
}
