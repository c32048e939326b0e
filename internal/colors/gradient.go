package colors

import (
	"log"
	"math"

	"github.com/samber/lo"
)

const (
	minStops = 2
	maxStops = 5
)

// Ramp assigns a color to each of n points. With gradient disabled every
// point gets base. With gradient enabled the stops are spread evenly over the
// point indexes and each channel is linearly interpolated and floored.
func Ramp(base string, gradient bool, stops []string, n int) []string {
	if n <= 0 {
		return nil
	}
	if _, err := Parse(base); err != nil {
		base = Fallback
	}
	if !gradient {
		return lo.Times(n, func(int) string { return base })
	}

	parsed := lo.FilterMap(stops, func(s string, _ int) (RGBA, bool) {
		c, err := Parse(s)
		if err != nil {
			log.Printf("colors: skipping gradient stop %q: %v", s, err)
			return RGBA{}, false
		}
		return c, true
	})
	if len(parsed) < minStops {
		return lo.Times(n, func(int) string { return base })
	}
	if len(parsed) > maxStops {
		parsed = parsed[:maxStops]
	}

	out := make([]string, n)
	for i := range out {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		out[i] = At(parsed, t).Hex()
	}
	return out
}

// At samples a piecewise-linear gradient across evenly spaced stops at t in
// [0,1].
func At(stops []RGBA, t float64) RGBA {
	if len(stops) == 0 {
		return MustParse(Fallback)
	}
	if len(stops) == 1 || t <= 0 || math.IsNaN(t) {
		return stops[0]
	}
	if t >= 1 {
		return stops[len(stops)-1]
	}
	segments := float64(len(stops) - 1)
	pos := t * segments
	idx := int(math.Floor(pos))
	if idx >= len(stops)-1 {
		idx = len(stops) - 2
	}
	return Lerp(stops[idx], stops[idx+1], pos-float64(idx))
}

// Lerp interpolates each channel, flooring to an integer.
func Lerp(a, b RGBA, t float64) RGBA {
	ch := func(x, y uint8) uint8 {
		return uint8(math.Floor(float64(x) + (float64(y)-float64(x))*t))
	}
	return RGBA{
		R: ch(a.R, b.R),
		G: ch(a.G, b.G),
		B: ch(a.B, b.B),
		A: a.A + (b.A-a.A)*t,
	}
}
