package colors

import "math"

// Darken scales each RGB channel of color by (1-factor), flooring the result,
// and returns it as rgba(...). Alpha is kept. A color that cannot be parsed
// is returned unchanged.
func Darken(color string, factor float64) string {
	c, err := Parse(color)
	if err != nil {
		return color
	}
	return DarkenRGBA(c, factor).CSS()
}

func DarkenRGBA(c RGBA, factor float64) RGBA {
	if math.IsNaN(factor) {
		factor = 0
	}
	factor = math.Max(0, math.Min(1, factor))
	k := 1 - factor
	return RGBA{
		R: uint8(math.Floor(float64(c.R) * k)),
		G: uint8(math.Floor(float64(c.G) * k)),
		B: uint8(math.Floor(float64(c.B) * k)),
		A: c.A,
	}
}

// Shade darkens color for depth faces, substituting Fallback when color is
// malformed so the render never loses a face.
func Shade(color string, factor float64) RGBA {
	return DarkenRGBA(MustParse(color), factor)
}
