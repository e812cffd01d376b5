package sample

import (
	"math"

	"github.com/sartorproj/gostats/stats"
)

// Variance calculates the variance of a sample using the two-pass algorithm:
// mu is computed by the caller (typically with stats.Mean) and the sum of
// squared deviations is divided by N-1.
//
// Note the difference from population.Variance, which divides by N because
// it deals with the whole population. A single-element sample divides by
// zero and the IEEE-754 result is propagated.
// Panics if the sample is empty.
func Variance(sample []float64, mu float64) float64 {
	if len(sample) == 0 {
		panic("sample: variance of empty dataset")
	}
	tss := stats.SumOfSquares(sample, mu)
	return tss / float64(len(sample)-1)
}

// StandardDeviation calculates the standard deviation of a sample, defined
// as the square root of the variance.
//
// Again note that sample.StandardDeviation and population.StandardDeviation
// differ, as they build on different variance functions.
// Panics if the sample is empty.
func StandardDeviation(sample []float64, mu float64) float64 {
	return math.Sqrt(Variance(sample, mu))
}
