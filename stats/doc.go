// Package stats provides core descriptive statistics for float64 datasets.
//
// This package covers central tendency, range, and measures of association.
// The variance families live in the population and sample packages, which
// build on SumOfSquares from this package.
//
// # Central Tendency
//
// Compute the mean, median, and mode of a dataset:
//
//	data := []float64{1, 3, 3, 2, 1}
//	mu := stats.Mean(data)        // 2.0
//	med := stats.Median(data)     // 2.0
//	mode := stats.Mode(data)      // 1.0 or 3.0 (both appear twice)
//
// Median sorts a copy of its input; if the dataset is already sorted, use
// MedianFromSorted to skip the O(n log n) sort:
//
//	med := stats.MedianFromSorted(sorted)
//
// # Dispersion
//
// Range returns the arithmetic range, the coefficient of range, and the
// extremes in one pass:
//
//	rng, coef, min, max := stats.Range(data)
//
// SumOfSquares is the shared building block of the variance families. It
// takes the mean as a parameter so callers that already hold it do not pay
// for a second pass:
//
//	mu := stats.Mean(data)
//	tss := stats.SumOfSquares(data, mu)
//
// # Association
//
// Correlation computes Pearson's r over a paired dataset, and ChiSquared
// computes the chi-squared statistic over (expected, observed) pairs:
//
//	r := stats.Correlation([]stats.Pair{{X: 43, Y: 99}, {X: 21, Y: 65}})
//	x2 := stats.ChiSquared([]stats.Observation{{Expected: 25, Observed: 23}})
//
// # Edge Cases
//
// Mean, Median, MedianFromSorted, Mode, and Range panic on an empty dataset;
// an empty dataset has no defined value for them and silently returning NaN
// would hide the caller's bug. Degenerate arithmetic (coefficient of range
// when min+max is zero, chi-squared with a zero expected value, correlation
// of an empty or constant dataset) propagates the IEEE-754 result unchanged.
package stats
