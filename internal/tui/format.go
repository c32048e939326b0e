package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/janekbaraniewski/openchart/internal/colors"
)

var printer = message.NewPrinter(language.English)

// formatValue renders a data label with thousands separators.
func formatValue(v float64) string {
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return "–"
	case math.Abs(v) >= 1e15:
		return fmt.Sprintf("%.3g", v)
	case v == math.Trunc(v):
		return printer.Sprintf("%d", int64(v))
	default:
		return printer.Sprintf("%.2f", v)
	}
}

// formatCompact renders an axis tick in at most a handful of cells.
func formatCompact(v float64) string {
	a := math.Abs(v)
	switch {
	case a >= 1e12:
		return fmt.Sprintf("%.1e", v)
	case a >= 1_000_000_000:
		return fmt.Sprintf("%.1fB", v/1_000_000_000)
	case a >= 1_000_000:
		return fmt.Sprintf("%.1fM", v/1_000_000)
	case a >= 1_000:
		return fmt.Sprintf("%.1fK", v/1_000)
	case v == math.Trunc(v):
		return fmt.Sprintf("%d", int64(v))
	case a >= 1:
		return fmt.Sprintf("%.1f", v)
	default:
		return fmt.Sprintf("%.2g", v)
	}
}

func formatPercent(f float64) string {
	return fmt.Sprintf("%5.1f%%", f*100)
}

func truncateLabel(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return ansi.Truncate(s, w, "…")
}

func padRight(s string, w int) string {
	if n := ansi.StringWidth(s); n < w {
		return s + strings.Repeat(" ", w-n)
	}
	return s
}

func padLeft(s string, w int) string {
	if n := ansi.StringWidth(s); n < w {
		return strings.Repeat(" ", w-n) + s
	}
	return s
}

// hexOf converts a pipeline color (hex or rgba()) to #rrggbb for lipgloss.
func hexOf(color string) string {
	return colors.MustParse(color).Hex()
}
