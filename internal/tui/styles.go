package tui

import "github.com/charmbracelet/lipgloss"

// ─── Color Palette (overwritten by applyTheme) ──────────────────────────────

var (
	colorBase     = lipgloss.Color("#1E1E2E")
	colorSurface0 = lipgloss.Color("#313244")
	colorSurface1 = lipgloss.Color("#45475A")
	colorText     = lipgloss.Color("#CDD6F4")
	colorSubtext  = lipgloss.Color("#A6ADC8")
	colorDim      = lipgloss.Color("#585B70")

	colorAccent   = lipgloss.Color("#CBA6F7")
	colorBlue     = lipgloss.Color("#89B4FA")
	colorGreen    = lipgloss.Color("#A6E3A1")
	colorYellow   = lipgloss.Color("#F9E2AF")
	colorRed      = lipgloss.Color("#F38BA8")
	colorTeal     = lipgloss.Color("#94E2D5")
	colorLavender = lipgloss.Color("#B4BEFE")
)

// ─── Reusable Styles ────────────────────────────────────────────────────────

var (
	headerStyle        lipgloss.Style
	headerBrandStyle   lipgloss.Style
	helpStyle          lipgloss.Style
	helpKeyStyle       lipgloss.Style
	labelStyle         lipgloss.Style
	valueStyle         lipgloss.Style
	dimStyle           lipgloss.Style
	advisoryStyle      lipgloss.Style
	errorStyle         lipgloss.Style
	chartTitleStyle    lipgloss.Style
	chartAxisStyle     lipgloss.Style
	trackStyle         lipgloss.Style
	pillOnStyle        lipgloss.Style
	pillOffStyle       lipgloss.Style
	sectionSepStyle    lipgloss.Style
	emptyStateBoxStyle lipgloss.Style
)

func init() {
	rebuildStyles()
}

// rebuildStyles derives every style from the current palette. Called after
// a theme switch.
func rebuildStyles() {
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(colorLavender)
	headerBrandStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	helpStyle = lipgloss.NewStyle().Foreground(colorDim)
	helpKeyStyle = lipgloss.NewStyle().Foreground(colorBlue).Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(colorSubtext)
	valueStyle = lipgloss.NewStyle().Foreground(colorText)
	dimStyle = lipgloss.NewStyle().Foreground(colorDim)
	advisoryStyle = lipgloss.NewStyle().Foreground(colorYellow)
	errorStyle = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	chartTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorBlue)
	chartAxisStyle = lipgloss.NewStyle().Foreground(colorDim)
	trackStyle = lipgloss.NewStyle().Foreground(colorSurface1)
	sectionSepStyle = lipgloss.NewStyle().Foreground(colorSurface1)

	pillOnStyle = lipgloss.NewStyle().
		Foreground(colorBase).
		Background(colorTeal).
		Bold(true).
		Padding(0, 1)

	pillOffStyle = lipgloss.NewStyle().
		Foreground(colorDim).
		Background(colorSurface0).
		Padding(0, 1)

	emptyStateBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorSurface1).
		Foreground(colorSubtext).
		Padding(1, 3)
}

// fg renders s in a CSS color string produced by the pipeline. Malformed
// colors fall back to the muted text color.
func fg(color string, s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hexOf(color))).Render(s)
}

// Pill renders an on/off option chip.
func Pill(label string, on bool) string {
	if on {
		return pillOnStyle.Render(label)
	}
	return pillOffStyle.Render(label)
}
