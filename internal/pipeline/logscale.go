package pipeline

import "math"

// Epsilon is the smallest value plotted on a logarithmic axis.
const Epsilon = 0.001

// LogFloor returns the replacement for non-positive values.
func LogFloor(explicitMin *float64) float64 {
	if explicitMin == nil || math.IsNaN(*explicitMin) || math.IsInf(*explicitMin, 0) {
		return Epsilon
	}
	return math.Max(*explicitMin, Epsilon)
}

// GuardLog replaces every v <= 0 with the log floor for plotting. original
// is an untouched copy used for labels and tooltips.
func GuardLog(values []float64, explicitMin *float64) (plotted, original []float64) {
	floor := LogFloor(explicitMin)
	plotted = make([]float64, len(values))
	original = make([]float64, len(values))
	copy(original, values)
	for i, v := range values {
		if v <= 0 || math.IsNaN(v) {
			plotted[i] = floor
			continue
		}
		plotted[i] = v
	}
	return plotted, original
}
