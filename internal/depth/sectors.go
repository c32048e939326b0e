package depth

import (
	"math"

	"github.com/janekbaraniewski/openchart/internal/colors"
)

// Slice is a finished 2D pie or doughnut sector and its fill color.
type Slice struct {
	Sector Sector
	Color  string
}

const (
	ringOpacityMax   = 0.9
	ringOpacitySpan  = 0.6
	ringDarkenMin    = 0.15
	ringDarkenSpan   = 0.3
	seamHalfWidthRad = 2 * math.Pi / 180
)

// PlanSectors stacks one translated copy of every sector per depth step, for
// d from depth down to 1, furthest first. Each step is slightly more opaque
// than the next and the d = depth step uses the least darkened fill. That
// step also gets an edge face wherever a sector crosses a seam, the two
// angles perpendicular to the extrusion, so no gap shows along the rim.
// Sectors with zero radius or sweep are skipped.
func PlanSectors(slices []Slice, opts Options) Plan {
	var plan Plan
	depth := opts.Depth
	if depth <= 0 {
		return plan
	}

	live := make([]Slice, 0, len(slices))
	for _, s := range slices {
		if !s.Sector.Empty() {
			live = append(live, s)
		}
	}
	if len(live) == 0 {
		return plan
	}

	theta := Angle(opts.Position)
	seams := [2]float64{theta - math.Pi/2, theta + math.Pi/2}
	full := RingOffset(opts.Position, float64(depth))

	for d := depth; d >= 1; d-- {
		step := depth - d
		k := float64(step) / float64(depth)
		opacity := ringOpacityMax - ringOpacitySpan*k
		darken := ringDarkenMin + ringDarkenSpan*k
		off := RingOffset(opts.Position, float64(d))

		for _, s := range live {
			plan.add(Layer{
				Step:    step,
				Kind:    LayerShadow,
				Opacity: opacity,
				Fill:    colors.Shade(s.Color, darken),
				Shape:   s.Sector.Translate(off),
			})
		}
		if d != depth {
			continue
		}
		for _, s := range live {
			for _, seam := range seams {
				if face := edgeFace(s.Sector, seam, full); face != nil {
					plan.add(Layer{
						Step:    step,
						Kind:    LayerEdge,
						Opacity: opacity,
						Fill:    colors.Shade(s.Color, darken),
						Shape:   face,
					})
				}
			}
		}
	}
	return plan
}

// edgeFace bridges the rim of s at the seam angle to its fully offset copy.
func edgeFace(s Sector, seam float64, off Point) Polygon {
	if !s.Contains(seam) {
		return nil
	}
	// Work relative to Start so wrapped angles compare correctly.
	rel := math.Mod(seam-s.Start, 2*math.Pi)
	if rel < 0 {
		rel += 2 * math.Pi
	}
	from := s.Start + math.Max(0, rel-seamHalfWidthRad)
	to := s.Start + math.Min(s.Sweep(), rel+seamHalfWidthRad)
	if to <= from {
		return nil
	}
	a, b := s.PointAt(from), s.PointAt(to)
	return Polygon{a, b, b.Add(off), a.Add(off)}
}
