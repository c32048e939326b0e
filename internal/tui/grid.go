package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// cellGrid is a fixed-size character buffer where each cell carries its own
// foreground color. Rows render with one style per run of equal colors.
type cellGrid struct {
	w, h  int
	runes [][]rune
	color [][]string
}

func newCellGrid(w, h int) *cellGrid {
	g := &cellGrid{w: max(w, 0), h: max(h, 0)}
	g.runes = make([][]rune, g.h)
	g.color = make([][]string, g.h)
	for y := range g.runes {
		g.runes[y] = []rune(strings.Repeat(" ", g.w))
		g.color[y] = make([]string, g.w)
	}
	return g
}

func (g *cellGrid) set(x, y int, r rune, color string) {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return
	}
	g.runes[y][x] = r
	g.color[y][x] = color
}

func (g *cellGrid) text(x, y int, s, color string) {
	for _, r := range s {
		g.set(x, y, r, color)
		x++
	}
}

func (g *cellGrid) lines() []string {
	out := make([]string, g.h)
	for y := 0; y < g.h; y++ {
		var sb strings.Builder
		start := 0
		for x := 1; x <= g.w; x++ {
			if x < g.w && g.color[y][x] == g.color[y][start] {
				continue
			}
			run := string(g.runes[y][start:x])
			if c := g.color[y][start]; c != "" {
				run = lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Render(run)
			}
			sb.WriteString(run)
			start = x
		}
		out[y] = strings.TrimRight(sb.String(), " ")
	}
	return out
}
