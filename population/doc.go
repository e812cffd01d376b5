// Package population provides variance and standard deviation for complete
// populations.
//
// A population is the complete set of observations under study, so the
// variance here divides by N. This is distinct from the sample package,
// which divides by N-1 (Bessel's correction) because it deals with a subset
// drawn from a population. The two must not be used interchangeably:
//
//	data := []float64{600, 470, 170, 430, 300}
//	mu := stats.Mean(data)
//	population.Variance(data, mu)  // 21704.0
//	sample.Variance(data, mu)      // 27130.0
//
// Both functions take the mean as a parameter rather than recomputing it,
// following the two-pass algorithm: one pass for the mean, a second for the
// sum of squared deviations.
package population
