package pipeline

import (
	"math"

	"github.com/janekbaraniewski/openchart/internal/core"
)

// fitScale is the magnitude above which values are normalized before
// fitting so intermediate sums cannot overflow.
const fitScale = 1e100

// FitLinear computes the ordinary least-squares line through (i, values[i]).
// A zero denominator yields slope 0. Results saturate at the float64 range.
func FitLinear(values []float64) (slope, intercept float64) {
	slope, intercept, scale := fitScaled(values)
	return core.Saturate(slope * scale), core.Saturate(intercept * scale)
}

// fitScaled fits values divided by scale. scale is 1 unless the largest
// magnitude exceeds fitScale.
func fitScaled(values []float64) (slope, intercept, scale float64) {
	n := len(values)
	if n == 0 {
		return 0, 0, 1
	}
	scale = 1.0
	peak := 0.0
	for _, v := range values {
		peak = math.Max(peak, math.Abs(v))
	}
	if peak > fitScale {
		scale = peak
	}

	var sumX, sumY float64
	for i, v := range values {
		sumX += float64(i)
		sumY += v / scale
	}
	meanX := sumX / float64(n)
	meanY := sumY / float64(n)

	var num, den float64
	for i, v := range values {
		dx := float64(i) - meanX
		num += dx * (v/scale - meanY)
		den += dx * dx
	}
	if den != 0 {
		slope = num / den
	}
	intercept = meanY - slope*meanX
	return slope, intercept, scale
}

// Trendline returns the fitted values for a series, or nil when fewer than
// two points are available or the fit is not finite.
func Trendline(values []float64) []float64 {
	if len(values) < 2 {
		return nil
	}
	slope, intercept, scale := fitScaled(values)
	if _, ok := finite(slope); !ok {
		return nil
	}
	if _, ok := finite(intercept); !ok {
		return nil
	}
	out := make([]float64, len(values))
	for i := range out {
		out[i] = core.Saturate((slope*float64(i) + intercept) * scale)
	}
	return out
}
