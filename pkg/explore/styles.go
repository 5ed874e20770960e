package explore

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/swaramap/swaramap/pkg/types"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#e63948") // red
	colorMatch     = lipgloss.Color("#D4AF37") // gold
	colorMuted     = lipgloss.Color("8")       // gray
	colorAccent    = lipgloss.Color("#11C3DB") // cyan
	colorHighlight = lipgloss.Color("15")      // white
)

// Pane border styles
var (
	activeBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorPrimary)

	inactiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorMuted)
)

// Title style for pane headers
var titleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorHighlight).
	Background(colorPrimary).
	Padding(0, 1)

// Table row styles
var (
	selectedRowStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("17")).
				Foreground(colorHighlight)

	headerRowStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)
)

// Emphasis styles
var (
	fullStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorHighlight)
	dimmedStyle  = lipgloss.NewStyle().Faint(true).Foreground(colorMuted)
	neutralStyle = lipgloss.NewStyle()
)

// Query match highlighting
var matchStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorMatch)

// Status bar
var statusBarStyle = lipgloss.NewStyle().
	Foreground(colorMuted)

// Help styles
var (
	helpKeyStyle  = lipgloss.NewStyle().Foreground(colorAccent)
	helpDescStyle = lipgloss.NewStyle().Foreground(colorMuted)
)

// Detail field styles
var (
	fieldLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	fieldValueStyle = lipgloss.NewStyle().Foreground(colorHighlight)
)

// Modal overlay style
var modalStyle = lipgloss.NewStyle().
	Border(lipgloss.DoubleBorder()).
	BorderForeground(colorPrimary).
	Padding(1, 2)

// emphasisStyle returns the row style for an emphasis level.
func emphasisStyle(e types.Emphasis) lipgloss.Style {
	switch e {
	case types.EmphasisFull:
		return fullStyle
	case types.EmphasisDimmed:
		return dimmedStyle
	default:
		return neutralStyle
	}
}

// renderSwatch returns a colour block for a region; dimmed regions lose their colour.
func renderSwatch(color string, e types.Emphasis) string {
	if color == "" || e == types.EmphasisDimmed {
		return dimmedStyle.Render("■")
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("■")
}

// renderEmphasis returns a short marker for an emphasis level.
func renderEmphasis(e types.Emphasis) string {
	switch e {
	case types.EmphasisFull:
		return fullStyle.Render("●")
	case types.EmphasisDimmed:
		return dimmedStyle.Render("○")
	default:
		return " "
	}
}
