// Package stats provides core descriptive statistics for float64 datasets.
package stats

import (
	"sort"
	"strconv"
)

// Mean calculates the arithmetic mean of the dataset.
// Panics if the dataset is empty.
func Mean(data []float64) float64 {
	if len(data) == 0 {
		panic("stats: mean of empty dataset")
	}
	sum := 0.0
	for _, v := range data {
		sum += v
	}
	return sum / float64(len(data))
}

// Median calculates the median of the dataset.
//
// The dataset is copied and sorted, which is expensive; callers that already
// hold sorted data should use MedianFromSorted instead.
// Panics if the dataset is empty.
func Median(data []float64) float64 {
	if len(data) == 0 {
		panic("stats: median of empty dataset")
	}
	sorted := make([]float64, len(data))
	copy(sorted, data)
	// Strict < is the total-order fallback: NaN is never less than
	// anything, so NaN values sink to the top instead of sorting first
	// the way sort.Float64s would place them.
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})
	return MedianFromSorted(sorted)
}

// MedianFromSorted calculates the median of an already-sorted dataset,
// skipping the sort that Median performs.
// Panics if the dataset is empty.
func MedianFromSorted(sorted []float64) float64 {
	n := len(sorted)
	if n == 0 {
		panic("stats: median of empty dataset")
	}
	if n%2 == 1 {
		return sorted[(n-1)/2]
	}
	upper := n / 2
	return (sorted[upper-1] + sorted[upper]) / 2
}

// Mode returns a value from the most frequent group in the dataset.
//
// Values are grouped by their shortest round-trip decimal representation
// rather than raw float equality, so values arrived at through different
// computations still group together when they print the same. When several
// groups tie for the highest count, which one wins is unspecified.
// Panics if the dataset is empty.
func Mode(data []float64) float64 {
	if len(data) == 0 {
		panic("stats: mode of empty dataset")
	}
	type group struct {
		count int
		value float64
	}
	groups := make(map[string]*group)
	for _, v := range data {
		key := strconv.FormatFloat(v, 'g', -1, 64)
		g, ok := groups[key]
		if !ok {
			g = &group{value: v}
			groups[key] = g
		}
		g.count++
	}
	var best *group
	for _, g := range groups {
		if best == nil || g.count > best.count {
			best = g
		}
	}
	return best.value
}
