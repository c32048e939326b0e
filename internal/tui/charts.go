package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/janekbaraniewski/openchart/internal/colors"
	"github.com/janekbaraniewski/openchart/internal/core"
	"github.com/janekbaraniewski/openchart/internal/depth"
	"github.com/janekbaraniewski/openchart/internal/raster"
)

const (
	minChartWidth  = 24
	minChartHeight = 4
	yAxisW         = 8

	sideShade   = 0.35
	capShade    = 0.2
	shadowShade = 0.6
)

var (
	eighthBlocks  = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	seriesMarkers = []string{"●", "◆", "■", "▲", "★"}
)

// RenderDataset draws a pipeline dataset with terminal glyphs inside a
// width×height cell box. Legend and captions may add a few rows.
func RenderDataset(ds core.Dataset, cfg core.ChartConfig, width, height int) string {
	width = max(width, minChartWidth)
	height = max(height, minChartHeight)
	if ds.Empty || len(ds.Labels) == 0 || len(ds.Series) == 0 {
		return renderEmpty(width)
	}

	var solid *depth.Point
	if cfg.Enable3D && core.Supports(ds.Kind, core.Feature3D) {
		off := depth.Offset(cfg.Shadow3DPosition, 1)
		solid = &off
	}

	var body []string
	switch ds.Kind.Family() {
	case core.FamilyBar:
		if ds.Options.IndexAxis == "y" {
			body = renderHBars(ds, width, solid)
		} else {
			body = renderColumns(ds, width, height, solid)
		}
	case core.FamilyPie:
		return strings.Join(renderPie(ds, width, solid), "\n")
	case core.FamilyLine, core.FamilyPoint:
		body = renderPlot(ds, width, height)
	case core.FamilyRadial:
		body = renderRadar(ds, width, height)
	case core.FamilyGauge:
		return strings.Join(renderGaugeChart(ds, width), "\n")
	default:
		return renderEmpty(width)
	}

	if legend := renderLegend(ds); legend != "" {
		body = append(body, "", legend)
	}
	return strings.Join(body, "\n")
}

func renderEmpty(width int) string {
	box := emptyStateBoxStyle.Width(min(width-2, 48)).Render(
		labelStyle.Render("No data") + "\n" +
			dimStyle.Render("Load a file with at least one numeric column."))
	return box
}

func plotted(ds core.Dataset) []core.DatasetSeries {
	out := make([]core.DatasetSeries, 0, len(ds.Series))
	for _, s := range ds.Series {
		if s.Role != core.RoleTrend {
			out = append(out, s)
		}
	}
	return out
}

func valueOf(s core.DatasetSeries, i int) float64 {
	if i < len(s.Values) {
		return s.Values[i]
	}
	return 0
}

func shade(color string, factor float64) string {
	return colors.Shade(color, factor).Hex()
}

func maxLabelWidth(labels []string) int {
	w := 0
	for _, l := range labels {
		w = max(w, ansi.StringWidth(l))
	}
	return w
}

func clamp01(f float64) float64 {
	if math.IsNaN(f) {
		return 0
	}
	return math.Max(0, math.Min(1, f))
}

// ─── Bars ───────────────────────────────────────────────────────────────────

// renderHBars draws one row per (label, series). In 3D mode a face column
// and a shadow row extrude each bar towards the shadow position.
func renderHBars(ds core.Dataset, width int, solid *depth.Point) []string {
	series := plotted(ds)
	trend, hasTrend := ds.SeriesByRole(core.RoleTrend)
	scale := raster.ValueScale(ds)
	base := scale.Baseline()

	labelW := min(maxLabelWidth(ds.Labels), max(6, width/4))
	valueW := 0
	if ds.Options.Labels {
		for _, s := range series {
			for i := range ds.Labels {
				valueW = max(valueW, ansi.StringWidth(formatValue(s.DisplayValue(i))))
			}
		}
	}
	faceW, shadowRows := 0, 0
	if solid != nil {
		if solid.X != 0 {
			faceW = 1
		}
		if solid.Y != 0 {
			shadowRows = 1
		}
	}
	barW := width - labelW - 3 - 2*faceW
	if valueW > 0 {
		barW -= valueW + 1
	}
	barW = max(barW, 4)

	perLabel := len(series) * (1 + shadowRows)
	g := newCellGrid(barW+2*faceW, len(ds.Labels)*perLabel)
	rowLabels := make([]string, g.h)
	rowValues := make([]string, g.h)

	for i, label := range ds.Labels {
		for j, s := range series {
			row := i*perLabel + j*(1+shadowRows)
			if shadowRows > 0 && solid.Y < 0 {
				row++
			}
			v := valueOf(s, i)
			f := clamp01(scale.Fraction(v))
			lo, hi := int(math.Round(math.Min(base, f)*float64(barW))), int(math.Round(math.Max(base, f)*float64(barW)))
			if hi == lo && v != 0 && f > base {
				hi = lo + 1
			}
			color := s.ColorAt(i)
			for x := 0; x < barW; x++ {
				g.set(faceW+x, row, '░', string(colorSurface1))
			}
			if solid != nil && hi > lo {
				dx := int(solid.X)
				if shadowRows > 0 {
					glyph := '▀'
					if solid.Y < 0 {
						glyph = '▄'
					}
					for x := lo; x < hi; x++ {
						g.set(faceW+x+dx, row+int(solid.Y), glyph, shade(color, shadowShade))
					}
				}
				switch {
				case dx > 0:
					g.set(faceW+hi, row, '▓', shade(color, sideShade))
				case dx < 0:
					g.set(faceW+lo-1, row, '▓', shade(color, sideShade))
				}
			}
			for x := lo; x < hi; x++ {
				g.set(faceW+x, row, '█', hexOf(color))
			}
			if hasTrend && j == 0 && i < len(trend.Values) {
				tx := int(math.Round(clamp01(scale.Fraction(trend.Values[i])) * float64(barW-1)))
				g.set(faceW+tx, row, '┃', hexOf(trend.Color))
			}
			if j == 0 {
				rowLabels[row] = truncateLabel(label, labelW)
			}
			if valueW > 0 {
				rowValues[row] = lipgloss.NewStyle().Foreground(lipgloss.Color(hexOf(color))).Bold(true).
					Render(formatValue(s.DisplayValue(i)))
			}
		}
	}

	cells := g.lines()
	lines := make([]string, len(cells))
	for y, cell := range cells {
		line := "  " + labelStyle.Render(padRight(rowLabels[y], labelW)) + " " + padRight(cell, g.w)
		if rowValues[y] != "" {
			line += " " + rowValues[y]
		}
		lines[y] = strings.TrimRight(line, " ")
	}
	return lines
}

// renderColumns draws vertical bars with eighth-block tops, grouped side by
// side or stacked, over a left value axis and a bottom label row.
func renderColumns(ds core.Dataset, width, height int, solid *depth.Point) []string {
	series := plotted(ds)
	trend, hasTrend := ds.SeriesByRole(core.RoleTrend)
	scale := raster.ValueScale(ds)
	n := len(ds.Labels)

	rows := max(height-2, 3)
	if ds.Options.Labels {
		rows--
	}
	groups := len(series)
	if ds.Options.Stacked {
		groups = 1
	}
	faceW := 0
	if solid != nil && solid.X != 0 {
		faceW = 1
	}
	plotW := max(width-yAxisW-3, n*(groups+faceW+1))
	slotW := max(plotW/n, groups+faceW+1)
	barW := max(1, (slotW-1-faceW)/groups)

	extra := 0
	if solid != nil && solid.Y != 0 {
		extra = 1
	}
	top := 0
	if solid != nil && solid.Y < 0 {
		top = 1
	}
	g := newCellGrid(n*slotW, rows+extra)
	baseRow := top + rows - int(math.Round(scale.Baseline()*float64(rows)))
	valueRow := make([]string, n)

	for i := range ds.Labels {
		slotX := i * slotW
		if ds.Options.Stacked {
			cum := 0.0
			prevCells := 0
			for _, s := range series {
				v := math.Max(valueOf(s, i), 0)
				cum = core.Saturate(cum + v)
				cells := int(math.Round((clamp01(scale.Fraction(cum)) - scale.Baseline()) * float64(rows)))
				for k := prevCells; k < cells; k++ {
					for x := 0; x < barW; x++ {
						g.set(slotX+x, baseRow-1-k, '█', hexOf(s.ColorAt(i)))
					}
				}
				prevCells = max(prevCells, cells)
			}
			if solid != nil && prevCells > 0 && len(series) > 0 {
				extrudeColumn(g, solid, slotX, barW, baseRow, prevCells, series[len(series)-1].ColorAt(i))
			}
			if ds.Options.Labels {
				valueRow[i] = formatCompact(cum)
			}
		} else {
			for j, s := range series {
				x0 := slotX + j*barW
				eighths := int(math.Round((clamp01(scale.Fraction(valueOf(s, i))) - scale.Baseline()) * float64(rows*8)))
				if eighths <= 0 {
					continue
				}
				full, rem := eighths/8, eighths%8
				color := s.ColorAt(i)
				cells := full
				if rem > 0 {
					cells++
				}
				if solid != nil {
					extrudeColumn(g, solid, x0, barW, baseRow, cells, color)
				}
				for k := 0; k < full; k++ {
					for x := 0; x < barW; x++ {
						g.set(x0+x, baseRow-1-k, '█', hexOf(color))
					}
				}
				if rem > 0 {
					for x := 0; x < barW; x++ {
						g.set(x0+x, baseRow-1-full, eighthBlocks[rem], hexOf(color))
					}
				}
			}
			if ds.Options.Labels && len(series) > 0 {
				valueRow[i] = formatCompact(series[0].DisplayValue(i))
			}
		}
		if hasTrend && i < len(trend.Values) {
			k := int(math.Floor((clamp01(scale.Fraction(trend.Values[i])) - scale.Baseline()) * float64(rows)))
			k = min(max(k, 0), rows-1)
			g.set(slotX+(groups*barW)/2, baseRow-1-k, '◆', hexOf(trend.Color))
		}
	}

	ticks := axisTicks(scale, rows)
	var lines []string
	if ds.Options.Labels {
		vals := newCellGrid(g.w, 1)
		for i, v := range valueRow {
			vals.text(i*slotW, 0, truncateLabel(v, slotW-1), string(colorSubtext))
		}
		lines = append(lines, "  "+strings.Repeat(" ", yAxisW)+" "+vals.lines()[0])
	}
	for y, cell := range g.lines() {
		label := ""
		if t, ok := ticks[y-top]; ok && y-top >= 0 {
			label = t
		}
		lines = append(lines, fmt.Sprintf("  %s %s%s",
			dimStyle.Render(padLeft(label, yAxisW-1)), chartAxisStyle.Render("┤"), cell))
	}
	lines = append(lines, fmt.Sprintf("  %s %s%s", strings.Repeat(" ", yAxisW-1),
		chartAxisStyle.Render("└"), chartAxisStyle.Render(strings.Repeat("─", g.w))))

	labels := newCellGrid(g.w, 1)
	for i, l := range ds.Labels {
		labels.text(i*slotW, 0, truncateLabel(l, slotW-1), string(colorSubtext))
	}
	lines = append(lines, "  "+strings.Repeat(" ", yAxisW)+" "+labels.lines()[0])
	return lines
}

// extrudeColumn paints the side face and the cap or floor shadow of one
// column of the given height in cells.
func extrudeColumn(g *cellGrid, solid *depth.Point, x0, barW, baseRow, cells int, color string) {
	dx, dy := int(solid.X), int(solid.Y)
	topRow := baseRow - cells
	faceX := x0 + barW
	if dx < 0 {
		faceX = x0 - 1
	}
	if dx != 0 {
		for y := topRow + max(dy, 0); y < baseRow+max(dy, 0); y++ {
			g.set(faceX, y, '▓', shade(color, sideShade))
		}
	}
	switch {
	case dy < 0:
		for x := 0; x < barW; x++ {
			g.set(x0+x+dx, topRow-1, '▄', shade(color, capShade))
		}
	case dy > 0:
		for x := 0; x < barW; x++ {
			g.set(x0+x+dx, baseRow, '▀', shade(color, shadowShade))
		}
	}
}

// axisTicks labels the top, middle and bottom rows of a value axis.
func axisTicks(scale raster.Scale, rows int) map[int]string {
	ticks := make(map[int]string, 3)
	n := 3
	if rows >= 8 {
		n = 5
	}
	for t := 0; t < n; t++ {
		row := t * (rows - 1) / (n - 1)
		f := 1 - float64(row)/float64(max(rows-1, 1))
		ticks[row] = formatCompact(scale.At(f))
	}
	return ticks
}

// ─── Pie ────────────────────────────────────────────────────────────────────

// renderPie flattens a pie into a proportional strip, one segment per slice,
// with a legend of shares underneath.
func renderPie(ds core.Dataset, width int, solid *depth.Point) []string {
	s, ok := ds.Primary()
	if !ok {
		return []string{renderEmpty(width)}
	}
	shares := core.Shares(s.Values)
	if shares == nil {
		return []string{"  " + dimStyle.Render("Nothing to slice: every value is zero or negative.")}
	}

	stripW := max(width-6, 10)
	widths := apportion(shares, stripW)

	glyph := '█'
	if ds.Kind == core.KindDoughnut {
		glyph = '▆'
	}
	shadowRows := 0
	if solid != nil {
		shadowRows = 1
	}
	g := newCellGrid(stripW+2, 1+shadowRows)
	row := 0
	if solid != nil && solid.Y < 0 {
		row = 1
	}
	x := 1
	for i, w := range widths {
		for k := 0; k < w; k++ {
			if solid != nil {
				dy := 1
				shadowGlyph := '▀'
				if solid.Y < 0 {
					dy, shadowGlyph = -1, '▄'
				}
				g.set(x+k+int(solid.X), row+dy, shadowGlyph, shade(s.ColorAt(i), shadowShade))
			}
		}
		for k := 0; k < w; k++ {
			g.set(x+k, row, glyph, hexOf(s.ColorAt(i)))
		}
		x += w
	}

	lines := []string{}
	for _, l := range g.lines() {
		lines = append(lines, " "+l)
	}
	lines = append(lines, "")

	labelW := min(maxLabelWidth(ds.Labels), max(8, width/3))
	for i, label := range ds.Labels {
		line := fmt.Sprintf("  %s %s %s",
			fg(s.ColorAt(i), "●"),
			labelStyle.Render(padRight(truncateLabel(label, labelW), labelW)),
			valueStyle.Render(formatPercent(shares[i])))
		if ds.Options.Labels {
			line += "  " + dimStyle.Render(formatValue(s.DisplayValue(i)))
		}
		lines = append(lines, line)
	}
	return lines
}

// apportion splits width cells by share using largest remainders. Any
// positive share gets at least one cell when there is room.
func apportion(shares []float64, width int) []int {
	out := make([]int, len(shares))
	type rem struct {
		i int
		r float64
	}
	used := 0
	rems := make([]rem, 0, len(shares))
	for i, s := range shares {
		exact := s * float64(width)
		out[i] = int(exact)
		used += out[i]
		rems = append(rems, rem{i, exact - float64(out[i])})
	}
	for used < width {
		best := -1
		for k, r := range rems {
			if best < 0 || r.r > rems[best].r {
				best = k
			}
		}
		if best < 0 || rems[best].r <= 0 {
			break
		}
		out[rems[best].i]++
		rems[best].r = 0
		used++
	}
	for i, s := range shares {
		if s > 0 && out[i] == 0 {
			donor := -1
			for k := range out {
				if out[k] > 1 && (donor < 0 || out[k] > out[donor]) {
					donor = k
				}
			}
			if donor >= 0 {
				out[donor]--
				out[i] = 1
			}
		}
	}
	return out
}

// ─── Line, area, scatter, bubble ────────────────────────────────────────────

func renderPlot(ds core.Dataset, width, height int) []string {
	scale := raster.ValueScale(ds)
	plotW := max(width-yAxisW-4, 10)
	rows := max(height-2, 2)
	c := newBrailleCanvas(plotW, rows)
	n := len(ds.Labels)

	px := func(i int) int {
		if n == 1 {
			return c.pw / 2
		}
		return i * (c.pw - 1) / (n - 1)
	}
	py := func(v float64) int {
		return (c.ph - 1) - int(math.Round(clamp01(scale.Fraction(v))*float64(c.ph-1)))
	}

	seriesColors := make([]lipgloss.Color, len(ds.Series))
	for si, s := range ds.Series {
		seriesColors[si] = lipgloss.Color(hexOf(s.Color))
		asLine := ds.Kind.Family() == core.FamilyLine || s.Role == core.RoleTrend
		for i, v := range s.Values {
			x, y := px(i), py(v)
			switch {
			case asLine:
				if i > 0 {
					c.drawLine(px(i-1), py(s.Values[i-1]), x, y, si)
				} else {
					c.set(x, y, si)
				}
			case ds.Kind == core.KindBubble:
				r := 1 + int(math.Round(clamp01(scale.Fraction(v))*3))
				c.disc(x, y, r, si)
			default:
				c.disc(x, y, 1, si)
			}
		}
		if ds.Kind == core.KindArea && s.Role == core.RolePrimary {
			c.fillBelow(si)
		}
	}
	plotLines := c.render(seriesColors)

	ticks := axisTicks(scale, rows)
	lines := make([]string, 0, rows+2)
	for row, cell := range plotLines {
		lines = append(lines, fmt.Sprintf("  %s %s%s",
			dimStyle.Render(padLeft(ticks[row], yAxisW-1)), chartAxisStyle.Render("┤"), cell))
	}
	lines = append(lines, fmt.Sprintf("  %s %s%s", strings.Repeat(" ", yAxisW-1),
		chartAxisStyle.Render("└"), chartAxisStyle.Render(strings.Repeat("─", plotW))))

	axis := newCellGrid(plotW, 1)
	marks := min(n, 5)
	for k := 0; k < marks; k++ {
		i := 0
		if marks > 1 {
			i = k * (n - 1) / (marks - 1)
		}
		label := truncateLabel(ds.Labels[i], max(plotW/marks-1, 3))
		x := px(i)/2 - ansi.StringWidth(label)/2
		x = min(max(x, 0), plotW-ansi.StringWidth(label))
		axis.text(x, 0, label, string(colorSubtext))
	}
	lines = append(lines, "  "+strings.Repeat(" ", yAxisW)+" "+axis.lines()[0])

	if ds.Options.Labels {
		if s, ok := ds.Primary(); ok {
			var vals []string
			for i, l := range ds.Labels {
				vals = append(vals, fmt.Sprintf("%s %s", dimStyle.Render(l), valueStyle.Render(formatValue(s.DisplayValue(i)))))
			}
			lines = append(lines, "  "+strings.Join(vals, dimStyle.Render(" · ")))
		}
	}
	return lines
}

// ─── Radar ──────────────────────────────────────────────────────────────────

func renderRadar(ds core.Dataset, width, height int) []string {
	scale := raster.ValueScale(ds)
	rows := max(height-1, 4)
	cw := min(width-4, rows*2)
	c := newBrailleCanvas(cw, rows)
	cx, cy := c.pw/2, c.ph/2
	radius := float64(min(cx, cy) - 1)
	n := len(ds.Labels)

	vertex := func(i int, f float64) (int, int) {
		a := -math.Pi/2 + 2*math.Pi*float64(i)/float64(n)
		return cx + int(math.Round(f*radius*math.Cos(a))), cy + int(math.Round(f*radius*math.Sin(a)))
	}

	series := plotted(ds)
	spokes := len(series)
	for i := 0; i < n; i++ {
		x, y := vertex(i, 1)
		c.drawLine(cx, cy, x, y, spokes)
	}
	seriesColors := make([]lipgloss.Color, 0, len(series)+1)
	for si, s := range series {
		seriesColors = append(seriesColors, lipgloss.Color(hexOf(s.Color)))
		for i := 0; i < n; i++ {
			x0, y0 := vertex(i, clamp01(scale.Fraction(valueOf(s, i))))
			x1, y1 := vertex((i+1)%n, clamp01(scale.Fraction(valueOf(s, (i+1)%n))))
			c.drawLine(x0, y0, x1, y1, si)
		}
	}
	seriesColors = append(seriesColors, colorSurface1)

	var lines []string
	for _, l := range c.render(seriesColors) {
		lines = append(lines, "  "+l)
	}
	var axes []string
	for i, l := range ds.Labels {
		entry := fmt.Sprintf("%d %s", i+1, l)
		if ds.Options.Labels && len(series) > 0 {
			entry += " " + formatValue(series[0].DisplayValue(i))
		}
		axes = append(axes, entry)
	}
	lines = append(lines, "  "+dimStyle.Render("clockwise from top: "+strings.Join(axes, ", ")))
	return lines
}

// ─── Gauge ──────────────────────────────────────────────────────────────────

func renderGaugeChart(ds core.Dataset, width int) []string {
	s, ok := ds.Primary()
	if !ok {
		return []string{renderEmpty(width)}
	}
	frac := ds.GaugeFraction()
	lines := []string{
		"  " + RenderGauge(frac, max(width-12, 8), s.ColorAt(0)),
	}
	caption := labelStyle.Render(ds.Labels[0]) + dimStyle.Render(" share of "+s.Label)
	if ds.Options.Labels {
		caption += "  " + valueStyle.Render(formatValue(s.DisplayValue(0)))
	}
	return append(lines, "  "+caption)
}

// ─── Legend ─────────────────────────────────────────────────────────────────

// renderLegend lists series when there is more than one line on the chart.
func renderLegend(ds core.Dataset) string {
	if len(ds.Series) < 2 {
		return ""
	}
	parts := make([]string, 0, len(ds.Series))
	for i, s := range ds.Series {
		mk := seriesMarkers[i%len(seriesMarkers)]
		if s.Role == core.RoleTrend {
			mk = "┄"
		}
		parts = append(parts, fg(s.Color, mk)+" "+labelStyle.Render(s.Label))
	}
	return "  " + strings.Join(parts, "   ")
}
