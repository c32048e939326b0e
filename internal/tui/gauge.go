package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderGauge draws a left-to-right gauge filled to fraction (0..1) in the
// given pipeline color, followed by the percentage.
func RenderGauge(fraction float64, width int, color string) string {
	if width < 5 {
		width = 5
	}
	if fraction < 0 {
		return trackStyle.Render(strings.Repeat("─", width)) + dimStyle.Render(" N/A")
	}
	fraction = min(fraction, 1)

	filled := int(fraction * float64(width))
	if filled < 1 && fraction > 0 {
		filled = 1
	}
	c := lipgloss.Color(hexOf(color))
	bar := lipgloss.NewStyle().Foreground(c).Render(strings.Repeat("━", filled)) +
		trackStyle.Render(strings.Repeat("━", width-filled))
	pct := lipgloss.NewStyle().Foreground(c).Bold(true).Render(formatPercent(fraction))
	return fmt.Sprintf("%s %s", bar, pct)
}
