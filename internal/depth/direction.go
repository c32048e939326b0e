package depth

import (
	"math"

	"github.com/janekbaraniewski/openchart/internal/core"
)

// compass holds the unit step for each shadow position in screen space.
var compass = map[core.ShadowPosition]Point{
	core.ShadowTop:         {0, -1},
	core.ShadowTopRight:    {1, -1},
	core.ShadowRight:       {1, 0},
	core.ShadowBottomRight: {1, 1},
	core.ShadowBottom:      {0, 1},
	core.ShadowBottomLeft:  {-1, 1},
	core.ShadowLeft:        {-1, 0},
	core.ShadowTopLeft:     {-1, -1},
}

// Offset is the extrusion vector for bars: each axis moves by the full depth,
// so bottom-right is (+depth, +depth).
func Offset(pos core.ShadowPosition, depth float64) Point {
	u, ok := compass[pos]
	if !ok {
		u = compass[core.ShadowBottomRight]
	}
	return u.Scale(depth)
}

// Angle is the direction of pos in radians, clockwise from the positive x
// axis in screen coordinates.
func Angle(pos core.ShadowPosition) float64 {
	u, ok := compass[pos]
	if !ok {
		u = compass[core.ShadowBottomRight]
	}
	return math.Atan2(u.Y, u.X)
}

// RingOffset is the translation of pie depth step d: (d·cosθ, d·sinθ), so
// left and right stack rings sideways.
func RingOffset(pos core.ShadowPosition, d float64) Point {
	a := Angle(pos)
	return Point{d * math.Cos(a), d * math.Sin(a)}
}
