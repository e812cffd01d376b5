// Package sample provides variance, standard deviation, and z-scores for
// samples drawn from a population.
//
// A sample is a subset of a population, so the variance here divides by N-1
// (Bessel's correction) to correct the bias of estimating the population
// variance from a subset. This is distinct from the population package,
// which divides by N. See the population package docs for a side-by-side
// example.
//
// # z-scores
//
// ZScore measures how many standard errors a sample mean lies from a
// population mean:
//
//	z := sample.ZScore(sampleMean, sampleSize, populationMean, populationStdDev)
//
// For a single observation use ZScoreSingleSample:
//
//	z := sample.ZScoreSingleSample(105, 100, 4)  // 1.25
//
// # Degenerate input
//
// Variance of a single-element sample divides by zero; the IEEE-754 result
// is returned unchanged rather than being treated as an error.
package sample
