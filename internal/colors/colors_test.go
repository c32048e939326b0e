package colors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want RGBA
	}{
		{"#2563eb", RGBA{R: 0x25, G: 0x63, B: 0xeb, A: 1}},
		{"#FFF", RGBA{R: 255, G: 255, B: 255, A: 1}},
		{"#00000080", RGBA{A: 128.0 / 255}},
		{"rgb(10, 20, 30)", RGBA{R: 10, G: 20, B: 30, A: 1}},
		{" rgba(10,20,30,0.5) ", RGBA{R: 10, G: 20, B: 30, A: 0.5}},
		{"rgba(300, -4, 30, 2)", RGBA{R: 255, G: 0, B: 30, A: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want.R, got.R)
			assert.Equal(t, tt.want.G, got.G)
			assert.Equal(t, tt.want.B, got.B)
			assert.InDelta(t, tt.want.A, got.A, 1e-9)
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	for _, in := range []string{"", "blue", "#12", "#gggggg", "rgb(1,2)", "rgb(a,b,c)", "rgba(1,2,3,x)", "rgb(1,2,3"} {
		_, err := Parse(in)
		assert.ErrorIs(t, err, ErrMalformed, "input %q", in)
	}
}

func TestDarken(t *testing.T) {
	assert.Equal(t, "rgba(18, 49, 117, 1)", Darken("#2563eb", 0.5))
	assert.Equal(t, "rgba(100, 50, 0, 0.4)", Darken("rgba(200, 100, 1, 0.4)", 0.5))
	assert.Equal(t, "rgba(37, 99, 235, 1)", Darken("#2563eb", 0))
	assert.Equal(t, "rgba(0, 0, 0, 1)", Darken("#2563eb", 1))
	assert.Equal(t, "rgba(0, 0, 0, 1)", Darken("#2563eb", 7), "factor is clamped")
}

func TestDarken_MalformedReturnedUnchanged(t *testing.T) {
	assert.Equal(t, "not-a-color", Darken("not-a-color", 0.3))
	assert.Equal(t, "#12", Darken("#12", 0.3))
}

func TestShade_FallsBack(t *testing.T) {
	got := Shade("garbage", 0)
	want := MustParse(Fallback)
	assert.Equal(t, want, got)
}

func TestRamp_BlackToWhite(t *testing.T) {
	got := Ramp("#2563eb", true, []string{"#000000", "#ffffff"}, 3)
	assert.Equal(t, []string{"#000000", "#7f7f7f", "#ffffff"}, got)
}

func TestRamp_Disabled(t *testing.T) {
	got := Ramp("#2563eb", false, []string{"#000000", "#ffffff"}, 4)
	assert.Equal(t, []string{"#2563eb", "#2563eb", "#2563eb", "#2563eb"}, got)
}

func TestRamp_MultiStop(t *testing.T) {
	got := Ramp("#2563eb", true, []string{"#ff0000", "#00ff00", "#0000ff"}, 5)
	require.Len(t, got, 5)
	assert.Equal(t, "#ff0000", got[0])
	assert.Equal(t, "#00ff00", got[2])
	assert.Equal(t, "#0000ff", got[4])
	assert.Equal(t, "#7f7f00", got[1])
}

func TestRamp_TooFewValidStopsUsesBase(t *testing.T) {
	got := Ramp("#2563eb", true, []string{"#000000", "nope"}, 2)
	assert.Equal(t, []string{"#2563eb", "#2563eb"}, got)
}

func TestRamp_SinglePointAndEmpty(t *testing.T) {
	assert.Nil(t, Ramp("#2563eb", true, nil, 0))
	assert.Equal(t, []string{"#000000"}, Ramp("#2563eb", true, []string{"#000000", "#ffffff"}, 1))
}

func TestRamp_MalformedBase(t *testing.T) {
	assert.Equal(t, []string{Fallback}, Ramp("???", false, nil, 1))
}

func TestContrasting(t *testing.T) {
	assert.Equal(t, SeriesPalette[1], Contrasting("#2563eb", 1))
	assert.NotEqual(t, "#2563eb", Contrasting("#2563EB", 1))
	assert.Equal(t, SeriesPalette[2], Contrasting("bad", 2))
}
