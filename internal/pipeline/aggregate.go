package pipeline

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/janekbaraniewski/openchart/internal/core"
	"github.com/samber/lo"
)

// Bucket holds the rows that share one categorical key. Samples keep the
// coerced inputs so folded buckets can be reduced again from raw values.
type Bucket struct {
	Key     string
	Value   float64
	Compare float64

	Samples        []float64
	CompareSamples []float64
}

// Count is the number of rows folded into the bucket.
func (b Bucket) Count() int { return len(b.Samples) }

// Aggregate groups rows by the raw value of byCol and reduces valueCol (and
// compareCol when set) with fn. Buckets keep first-seen order.
func Aggregate(rows []core.Row, byCol, valueCol, compareCol string, fn core.AggregateFunc) []Bucket {
	index := make(map[string]int)
	var buckets []Bucket
	for _, row := range rows {
		key := core.NormalizeLabel(core.CellString(row[byCol]))
		i, ok := index[key]
		if !ok {
			i = len(buckets)
			index[key] = i
			buckets = append(buckets, Bucket{Key: key})
		}
		v, _ := Coerce(row[valueCol])
		buckets[i].Samples = append(buckets[i].Samples, v)
		if compareCol != "" {
			c, _ := Coerce(row[compareCol])
			buckets[i].CompareSamples = append(buckets[i].CompareSamples, c)
		}
	}
	for i := range buckets {
		buckets[i].Value = Reduce(buckets[i].Samples, fn)
		buckets[i].Compare = Reduce(buckets[i].CompareSamples, fn)
	}
	return buckets
}

// Reduce applies fn to values. Empty input reduces to 0 and the result is
// always finite: sums past the float64 range saturate.
func Reduce(values []float64, fn core.AggregateFunc) float64 {
	if len(values) == 0 {
		return 0
	}
	switch fn {
	case core.AggCount:
		return float64(len(values))
	case core.AggMean:
		return Mean(values)
	case core.AggMedian:
		return Median(values)
	default:
		return core.Saturate(lo.Sum(values))
	}
}

// Mean averages values. When the plain sum overflows it falls back to
// summing v/n, which stays within range.
func Mean(values []float64) float64 {
	n := float64(len(values))
	if n == 0 {
		return 0
	}
	if m, ok := finite(lo.Sum(values) / n); ok {
		return m
	}
	scaled := 0.0
	for _, v := range values {
		scaled += v / n
	}
	return core.Saturate(scaled)
}

// Median returns the middle value, or the mean of the two middle values for
// even counts. The input is not modified.
func Median(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	a, b := sorted[n/2-1], sorted[n/2]
	if m, ok := finite((a + b) / 2); ok {
		return m
	}
	return a/2 + b/2
}

// TopN keeps the n largest buckets in descending order. With groupOthers the
// remaining buckets are folded into one synthetic bucket reduced from their
// combined raw samples. n <= 0 returns the buckets untouched.
func TopN(buckets []Bucket, n int, groupOthers bool, fn core.AggregateFunc) []Bucket {
	if n <= 0 || len(buckets) == 0 {
		return buckets
	}
	ordered := append([]Bucket(nil), buckets...)
	sort.SliceStable(ordered, func(a, b int) bool { return ordered[a].Value > ordered[b].Value })
	if n >= len(ordered) {
		return ordered
	}

	kept := ordered[:n:n]
	if !groupOthers {
		return kept
	}
	rest := ordered[n:]
	others := Bucket{Key: othersKey(kept)}
	for _, b := range rest {
		others.Samples = append(others.Samples, b.Samples...)
		others.CompareSamples = append(others.CompareSamples, b.CompareSamples...)
	}
	others.Value = Reduce(others.Samples, fn)
	others.Compare = Reduce(others.CompareSamples, fn)
	return append(kept, others)
}

// othersKey returns the label of the folded bucket, suffixed with a counter
// when a kept category already uses it.
func othersKey(kept []Bucket) string {
	taken := lo.SliceToMap(kept, func(b Bucket) (string, bool) { return b.Key, true })
	key := core.OthersLabel
	for i := 2; taken[key]; i++ {
		key = fmt.Sprintf("%s (%d)", core.OthersLabel, i)
	}
	return key
}

// BucketSeries flattens buckets into a series plus the compare values.
func BucketSeries(buckets []Bucket) (core.Series, []float64) {
	s := core.Series{
		Labels: lo.Map(buckets, func(b Bucket, _ int) string { return b.Key }),
		Values: lo.Map(buckets, func(b Bucket, _ int) float64 { return b.Value }),
		Raw: lo.Map(buckets, func(b Bucket, _ int) string {
			return strconv.FormatFloat(b.Value, 'f', -1, 64)
		}),
	}
	compare := lo.Map(buckets, func(b Bucket, _ int) float64 { return b.Compare })
	return s, compare
}
