// Package raster is the reference drawing surface: it lays a dataset out in
// pixel space, fills the resulting shapes with an anti-aliasing vector
// rasterizer and exports the image as PNG.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/janekbaraniewski/openchart/internal/colors"
	"github.com/janekbaraniewski/openchart/internal/depth"
)

const (
	// arcSegments is the polygon resolution used for a full circle.
	arcSegments = 96
	// coordLimit bounds vertices handed to the rasterizer, far outside any
	// canvas but well inside float32.
	coordLimit = 1 << 16
)

// Canvas is an RGBA image that satisfies depth.Surface.
type Canvas struct {
	img *image.RGBA
	z   *vector.Rasterizer
}

var _ depth.Surface = (*Canvas)(nil)

func NewCanvas(width, height int, background colors.RGBA) *Canvas {
	width, height = max(width, 1), max(height, 1)
	c := &Canvas{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
		z:   vector.NewRasterizer(width, height),
	}
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(toColor(background)), image.Point{}, draw.Src)
	return c
}

func (c *Canvas) Image() *image.RGBA { return c.img }

func (c *Canvas) Bounds() image.Rectangle { return c.img.Bounds() }

func (c *Canvas) FillRect(r depth.Rect, fill colors.RGBA) {
	if r.Empty() {
		return
	}
	c.FillPolygon(depth.Polygon{r.TopLeft(), r.TopRight(), r.BottomRight(), r.BottomLeft()}, fill)
}

func (c *Canvas) FillPolygon(p depth.Polygon, fill colors.RGBA) {
	if len(p) < 3 || fill.A <= 0 {
		return
	}
	for _, q := range p {
		if !finitePoint(q) {
			return
		}
	}
	b := c.img.Bounds()
	c.z.Reset(b.Dx(), b.Dy())
	c.z.DrawOp = draw.Over
	c.z.MoveTo(clampCoord(p[0].X), clampCoord(p[0].Y))
	for _, q := range p[1:] {
		c.z.LineTo(clampCoord(q.X), clampCoord(q.Y))
	}
	c.z.ClosePath()
	c.z.Draw(c.img, b, image.NewUniform(toColor(fill)), image.Point{})
}

func (c *Canvas) FillSector(s depth.Sector, fill colors.RGBA) {
	if s.Empty() || math.IsNaN(s.Sweep()) || math.IsInf(s.Sweep(), 0) {
		return
	}
	segments := int(math.Ceil(arcSegments * s.Sweep() / (2 * math.Pi)))
	c.FillPolygon(s.Outline(max(segments, 2)), fill)
}

// FillCircle fills a disc; used for scatter and bubble markers.
func (c *Canvas) FillCircle(center depth.Point, radius float64, fill colors.RGBA) {
	c.FillSector(depth.Sector{Center: center, Radius: radius, Start: 0, End: 2 * math.Pi}, fill)
}

// StrokePolyline draws connected segments of the given width as filled quads.
func (c *Canvas) StrokePolyline(pts []depth.Point, width float64, fill colors.RGBA) {
	half := width / 2
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		dx, dy := b.X-a.X, b.Y-a.Y
		l := math.Hypot(dx, dy)
		if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
			continue
		}
		n := depth.Point{X: -dy / l * half, Y: dx / l * half}
		c.FillPolygon(depth.Polygon{a.Add(n), b.Add(n), b.Add(n.Scale(-1)), a.Add(n.Scale(-1))}, fill)
	}
}

func finitePoint(p depth.Point) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

func clampCoord(v float64) float32 {
	return float32(math.Max(-coordLimit, math.Min(coordLimit, v)))
}

func toColor(c colors.RGBA) color.NRGBA {
	r, g, b, a := c.NRGBA()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}
