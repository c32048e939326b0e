package depth

import (
	"fmt"

	"github.com/janekbaraniewski/openchart/internal/colors"
)

// Surface is the flat drawing target. Fill colors carry the layer opacity in
// their alpha channel.
type Surface interface {
	FillRect(r Rect, fill colors.RGBA)
	FillPolygon(p Polygon, fill colors.RGBA)
	FillSector(s Sector, fill colors.RGBA)
}

// Paint issues every layer of plan to s in Z order and returns the number of
// layers painted.
func Paint(plan Plan, s Surface) (int, error) {
	n := 0
	for _, l := range plan.Layers {
		fill := l.Fill.WithAlpha(l.Opacity)
		switch shape := l.Shape.(type) {
		case Rect:
			s.FillRect(shape, fill)
		case Polygon:
			s.FillPolygon(shape, fill)
		case Sector:
			s.FillSector(shape, fill)
		default:
			return n, fmt.Errorf("painting layer %d: unsupported shape %T", l.Z, l.Shape)
		}
		n++
	}
	return n, nil
}
