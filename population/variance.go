package population

import (
	"math"

	"github.com/sartorproj/gostats/stats"
)

// Variance calculates the variance of a full population using the two-pass
// algorithm: mu is computed by the caller (typically with stats.Mean) and
// the sum of squared deviations is divided by N.
//
// Note the difference from sample.Variance, which divides by N-1 because it
// deals with a sample rather than the whole population.
// Panics if the population is empty.
func Variance(population []float64, mu float64) float64 {
	if len(population) == 0 {
		panic("population: variance of empty dataset")
	}
	tss := stats.SumOfSquares(population, mu)
	return tss / float64(len(population))
}

// StandardDeviation calculates the standard deviation of a full population,
// defined as the square root of the variance.
//
// Again note that population.StandardDeviation and sample.StandardDeviation
// differ, as they build on different variance functions.
// Panics if the population is empty.
func StandardDeviation(population []float64, mu float64) float64 {
	return math.Sqrt(Variance(population, mu))
}
