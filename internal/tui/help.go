package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/janekbaraniewski/openchart/internal/core"
)

// ─── Help Overlay ───────────────────────────────────────────────────────────

// renderHelpOverlay draws a centered popup with the chart kinds and their
// options, plus every key binding. Dismissed by pressing any key.
func (m Model) renderHelpOverlay(screenW, screenH int) string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(colorLavender)
	headingStyle := lipgloss.NewStyle().Bold(true).Foreground(colorBlue)
	descStyle := lipgloss.NewStyle().Foreground(colorText)
	dimHintStyle := lipgloss.NewStyle().Foreground(colorDim).Italic(true)

	var lines []string
	lines = append(lines, titleStyle.Render("  openchart Help"), "")

	// ── Chart Kinds ──
	lines = append(lines, headingStyle.Render("  Chart Kinds"), "")
	for _, k := range core.ValidChartKinds {
		caps := core.Capabilities(k)
		var feats []string
		for _, f := range core.AllFeatures {
			if core.Supports(k, f) {
				feats = append(feats, string(f))
			}
		}
		marker := "  "
		if k == m.cfg.Type {
			marker = helpKeyStyle.Render("▸ ")
		}
		lines = append(lines, "  "+marker+labelStyle.Render(padRight(caps.DisplayName, 26))+
			dimStyle.Render(strings.Join(feats, " ")))
	}
	lines = append(lines, "")

	// ── Gauge ──
	lines = append(lines, headingStyle.Render("  Gauge"), "")
	lines = append(lines, "    "+RenderGauge(0.72, 20, string(colorGreen))+"  "+descStyle.Render("← leading row's share of the total"))
	lines = append(lines, "")

	// ── Themes ──
	lines = append(lines, headingStyle.Render("  Themes"), "")
	active := ActiveTheme().Name
	for _, th := range AvailableThemes() {
		marker := "  "
		if th.Name == active {
			marker = helpKeyStyle.Render("▸ ")
		}
		lines = append(lines, "  "+marker+th.Icon+" "+labelStyle.Render(th.Name))
	}
	lines = append(lines, "")

	// ── Keys ──
	lines = append(lines, headingStyle.Render("  Keys"), "")
	keys := []struct{ key, desc string }{
		{"k", "Cycle chart kind"},
		{"s", "Cycle sort: none → asc → desc"},
		{"3", "Toggle 3D depth"},
		{"+ / -", "Deeper / shallower 3D depth"},
		{"p", "Rotate shadow position clockwise"},
		{"t", "Toggle trendline"},
		{"l", "Toggle logarithmic scale"},
		{"g", "Toggle gradient"},
		{"o", "Toggle grouping the tail into Others"},
		{"v", "Toggle data labels"},
		{"T", "Next theme"},
		{"?", "Toggle this help"},
		{"q / Ctrl+C", "Quit"},
	}
	for _, k := range keys {
		lines = append(lines, "    "+helpKeyStyle.Render(padRight(k.key, 14))+descStyle.Render(k.desc))
	}
	lines = append(lines, "", "  "+dimHintStyle.Render("Press any key to dismiss"))

	content := strings.Join(lines, "\n")
	contentW := 0
	for _, line := range lines {
		contentW = max(contentW, lipgloss.Width(line))
	}
	boxW := min(contentW+4, max(screenW-4, 20))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorAccent).
		Padding(1, 2).
		Width(boxW).
		Render(content)

	return lipgloss.Place(max(screenW, lipgloss.Width(box)), max(screenH, lipgloss.Height(box)),
		lipgloss.Center, lipgloss.Center, box)
}
