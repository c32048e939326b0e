package pipeline

import (
	"sort"

	"github.com/janekbaraniewski/openchart/internal/core"
)

// SortOrder returns the stable permutation that orders values by mode. For
// SortNone it is the identity.
func SortOrder(values []float64, mode core.SortMode) []int {
	idx := make([]int, len(values))
	for i := range idx {
		idx[i] = i
	}
	switch mode {
	case core.SortAsc:
		sort.SliceStable(idx, func(a, b int) bool { return values[idx[a]] < values[idx[b]] })
	case core.SortDesc:
		sort.SliceStable(idx, func(a, b int) bool { return values[idx[a]] > values[idx[b]] })
	}
	return idx
}

// Permute reorders src by idx into a new slice.
func Permute[T any](src []T, idx []int) []T {
	if src == nil {
		return nil
	}
	out := make([]T, len(idx))
	for i, j := range idx {
		out[i] = src[j]
	}
	return out
}

// SortSeries orders the series by value, keeping each label bound to its
// value. extra slices (for example compare values) are permuted the same way.
func SortSeries(s core.Series, mode core.SortMode, extra ...[]float64) (core.Series, [][]float64) {
	idx := SortOrder(s.Values, mode)
	out := core.Series{
		Labels: Permute(s.Labels, idx),
		Values: Permute(s.Values, idx),
		Raw:    Permute(s.Raw, idx),
	}
	moved := make([][]float64, len(extra))
	for i, e := range extra {
		if len(e) == len(idx) {
			moved[i] = Permute(e, idx)
		} else {
			moved[i] = e
		}
	}
	return out, moved
}
