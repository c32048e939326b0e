// Package depth fakes a third dimension on a flat drawing surface. It plans
// shadow and face layers for bar-family and pie-family charts from their
// finished 2D primitives, then issues them back to front through a
// before-paint hook.
package depth

import "math"

type Point struct {
	X, Y float64
}

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

func (p Point) Scale(k float64) Point { return Point{p.X * k, p.Y * k} }

// Shape is the geometry of one layer record.
type Shape interface {
	Bounds() Rect
}

// Rect is an axis-aligned rectangle in screen coordinates (y grows down).
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Bounds() Rect { return r }

func (r Rect) Empty() bool {
	return !(r.W > 0 && r.H > 0) || math.IsNaN(r.X) || math.IsNaN(r.Y)
}

func (r Rect) Translate(d Point) Rect {
	r.X += d.X
	r.Y += d.Y
	return r
}

func (r Rect) TopLeft() Point     { return Point{r.X, r.Y} }
func (r Rect) TopRight() Point    { return Point{r.X + r.W, r.Y} }
func (r Rect) BottomLeft() Point  { return Point{r.X, r.Y + r.H} }
func (r Rect) BottomRight() Point { return Point{r.X + r.W, r.Y + r.H} }

// Polygon is a closed outline; the last point joins the first.
type Polygon []Point

func (p Polygon) Bounds() Rect {
	if len(p) == 0 {
		return Rect{}
	}
	minX, minY, maxX, maxY := p[0].X, p[0].Y, p[0].X, p[0].Y
	for _, q := range p[1:] {
		minX, maxX = math.Min(minX, q.X), math.Max(maxX, q.X)
		minY, maxY = math.Min(minY, q.Y), math.Max(maxY, q.Y)
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

func (p Polygon) Translate(d Point) Polygon {
	out := make(Polygon, len(p))
	for i, q := range p {
		out[i] = q.Add(d)
	}
	return out
}

// Sector is an annular arc slice. Angles are radians measured clockwise from
// the positive x axis (screen coordinates), Start < End.
type Sector struct {
	Center      Point
	Radius      float64
	InnerRadius float64
	Start, End  float64
}

func (s Sector) Bounds() Rect {
	return Rect{X: s.Center.X - s.Radius, Y: s.Center.Y - s.Radius, W: 2 * s.Radius, H: 2 * s.Radius}
}

func (s Sector) Sweep() float64 { return s.End - s.Start }

func (s Sector) Empty() bool {
	return !(s.Radius > 0) || !(s.Sweep() > 0) || s.InnerRadius >= s.Radius
}

func (s Sector) Translate(d Point) Sector {
	s.Center = s.Center.Add(d)
	return s
}

// PointAt returns the point on the outer arc at angle a.
func (s Sector) PointAt(a float64) Point {
	return Point{s.Center.X + s.Radius*math.Cos(a), s.Center.Y + s.Radius*math.Sin(a)}
}

// Contains reports whether angle a falls within the sector's sweep.
func (s Sector) Contains(a float64) bool {
	if s.Sweep() >= 2*math.Pi {
		return true
	}
	rel := math.Mod(a-s.Start, 2*math.Pi)
	if rel < 0 {
		rel += 2 * math.Pi
	}
	return rel <= s.Sweep()
}

// Outline approximates the sector with a polygon, outer arc first then the
// inner arc in reverse. Used by surfaces without native arc support.
func (s Sector) Outline(segments int) Polygon {
	if segments < 2 {
		segments = 2
	}
	out := make(Polygon, 0, 2*segments+2)
	for i := 0; i <= segments; i++ {
		out = append(out, s.PointAt(s.Start+s.Sweep()*float64(i)/float64(segments)))
	}
	if s.InnerRadius <= 0 {
		return append(out, s.Center)
	}
	inner := s
	inner.Radius = s.InnerRadius
	for i := segments; i >= 0; i-- {
		out = append(out, inner.PointAt(s.Start+s.Sweep()*float64(i)/float64(segments)))
	}
	return out
}
