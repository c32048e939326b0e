// Package colors parses CSS-style color strings and derives shaded and
// interpolated variants for chart fills.
package colors

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Fallback replaces any color that cannot be parsed.
const Fallback = "#64748b"

var ErrMalformed = errors.New("malformed color")

// RGBA is an 8-bit-per-channel color with a float alpha in [0,1].
type RGBA struct {
	R, G, B uint8
	A       float64
}

// Parse accepts #rgb, #rrggbb, #rrggbbaa, rgb(r,g,b) and rgba(r,g,b,a).
func Parse(s string) (RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.HasPrefix(s, "#"):
		return parseHex(s)
	case strings.HasPrefix(s, "rgba(") || strings.HasPrefix(s, "rgb("):
		return parseFunc(s)
	}
	return RGBA{}, fmt.Errorf("%w: %q", ErrMalformed, s)
}

// MustParse parses s and substitutes Fallback on failure.
func MustParse(s string) RGBA {
	c, err := Parse(s)
	if err != nil {
		c, _ = Parse(Fallback)
	}
	return c
}

func parseHex(s string) (RGBA, error) {
	alpha := 1.0
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return RGBA{}, fmt.Errorf("%w: %q", ErrMalformed, s)
		}
		alpha = float64(a) / 255
		s = s[:7]
	}
	if len(s) != 4 && len(s) != 7 {
		return RGBA{}, fmt.Errorf("%w: %q", ErrMalformed, s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return RGBA{}, fmt.Errorf("%w: %q", ErrMalformed, s)
	}
	r, g, b := c.RGB255()
	return RGBA{R: r, G: g, B: b, A: alpha}, nil
}

func parseFunc(s string) (RGBA, error) {
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return RGBA{}, fmt.Errorf("%w: %q", ErrMalformed, s)
	}
	parts := strings.Split(s[open+1:len(s)-1], ",")
	if len(parts) != 3 && len(parts) != 4 {
		return RGBA{}, fmt.Errorf("%w: %q", ErrMalformed, s)
	}
	var ch [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
		if err != nil || math.IsNaN(v) {
			return RGBA{}, fmt.Errorf("%w: %q", ErrMalformed, s)
		}
		ch[i] = clampByte(v)
	}
	alpha := 1.0
	if len(parts) == 4 {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || math.IsNaN(a) {
			return RGBA{}, fmt.Errorf("%w: %q", ErrMalformed, s)
		}
		alpha = math.Max(0, math.Min(1, a))
	}
	return RGBA{R: ch[0], G: ch[1], B: ch[2], A: alpha}, nil
}

func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Hex renders the color as #rrggbb, dropping alpha.
func (c RGBA) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// CSS renders the color as rgba(r, g, b, a).
func (c RGBA) CSS() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, strconv.FormatFloat(c.A, 'f', -1, 64))
}

// WithAlpha returns c with its alpha multiplied by opacity.
func (c RGBA) WithAlpha(opacity float64) RGBA {
	c.A = math.Max(0, math.Min(1, c.A*opacity))
	return c
}

// NRGBA converts to 8-bit channels with straight alpha, suitable for
// image/color.NRGBA.
func (c RGBA) NRGBA() (r, g, b, a uint8) {
	return c.R, c.G, c.B, uint8(math.Round(c.A * 255))
}
