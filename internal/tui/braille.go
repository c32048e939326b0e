package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var brailleDots = [4][2]rune{
	{0x01, 0x08}, // top
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80}, // bottom
}

type brailleCanvas struct {
	cw, ch int   // character dimensions
	pw, ph int   // pixel dimensions (cw*2, ch*4)
	grid   []int // flat [ph*pw], series index per pixel (-1 = empty)
}

func newBrailleCanvas(cw, ch int) *brailleCanvas {
	cw, ch = max(cw, 1), max(ch, 1)
	pw, ph := cw*2, ch*4
	grid := make([]int, pw*ph)
	for i := range grid {
		grid[i] = -1
	}
	return &brailleCanvas{cw: cw, ch: ch, pw: pw, ph: ph, grid: grid}
}

func (c *brailleCanvas) set(px, py, seriesIdx int) {
	if px >= 0 && px < c.pw && py >= 0 && py < c.ph {
		c.grid[py*c.pw+px] = seriesIdx
	}
}

func (c *brailleCanvas) drawLine(x0, y0, x1, y1, seriesIdx int) {
	dx := float64(x1 - x0)
	dy := float64(y1 - y0)
	steps := math.Max(math.Abs(dx), math.Abs(dy))
	if steps == 0 {
		c.set(x0, y0, seriesIdx)
		return
	}
	xInc, yInc := dx/steps, dy/steps
	x, y := float64(x0), float64(y0)
	for i := 0; i <= int(steps); i++ {
		c.set(int(math.Round(x)), int(math.Round(y)), seriesIdx)
		x += xInc
		y += yInc
	}
}

// disc marks every pixel within r of (cx, cy).
func (c *brailleCanvas) disc(cx, cy, r, seriesIdx int) {
	for y := -r; y <= r; y++ {
		for x := -r; x <= r; x++ {
			if x*x+y*y <= r*r {
				c.set(cx+x, cy+y, seriesIdx)
			}
		}
	}
}

func (c *brailleCanvas) fillBelow(seriesIdx int) {
	for px := 0; px < c.pw; px++ {
		top := -1
		for py := 0; py < c.ph; py++ {
			if c.grid[py*c.pw+px] == seriesIdx {
				top = py
				break
			}
		}
		if top < 0 {
			continue
		}
		for py := top; py < c.ph; py++ {
			if c.grid[py*c.pw+px] < 0 {
				c.grid[py*c.pw+px] = seriesIdx
			}
		}
	}
}

// render colors each character cell by the series owning most of its dots.
func (c *brailleCanvas) render(colors []lipgloss.Color) []string {
	lines := make([]string, c.ch)
	for cy := 0; cy < c.ch; cy++ {
		var sb strings.Builder
		for cx := 0; cx < c.cw; cx++ {
			pattern := rune(0x2800)
			counts := make(map[int]int)
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					si := c.grid[(cy*4+dy)*c.pw+cx*2+dx]
					if si >= 0 {
						pattern |= brailleDots[dy][dx]
						counts[si]++
					}
				}
			}
			if pattern == 0x2800 {
				sb.WriteRune(' ')
				continue
			}
			best, bestCnt := 0, 0
			for si, cnt := range counts {
				if cnt > bestCnt || (cnt == bestCnt && si < best) {
					best, bestCnt = si, cnt
				}
			}
			color := colorSubtext
			if best < len(colors) {
				color = colors[best]
			}
			sb.WriteString(lipgloss.NewStyle().Foreground(color).Render(string(pattern)))
		}
		lines[cy] = sb.String()
	}
	return lines
}
