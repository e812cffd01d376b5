// Package gostats provides descriptive statistics for float64 datasets.
//
// GoStats is a small Go package for descriptive statistics: central tendency
// (mean, median, mode), dispersion (range, variance, standard deviation), and
// measures of association (Pearson correlation, chi-squared statistic,
// z-scores). It is a library of pure functions intended to be embedded in
// other programs.
//
// # Features
//
//   - Mean, median, and mode
//   - Arithmetic range and coefficient of range
//   - Population variance and standard deviation (divisor N)
//   - Sample variance and standard deviation (divisor N-1)
//   - Pearson correlation coefficient
//   - Chi-squared statistic
//   - z-scores for sample means and single observations
//   - CSV loading of datasets and paired datasets
//
// # Quick Start
//
// Compute summary statistics for a dataset:
//
//	data := []float64{600, 470, 170, 430, 300}
//	mu := stats.Mean(data)
//	sigma := population.StandardDeviation(data, mu)
//
// Or get everything at once:
//
//	summary := describe.Describe(data)
//	fmt.Println(summary)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - stats: central tendency, range, correlation, and chi-squared
//   - population: variance and standard deviation with divisor N
//   - sample: variance, standard deviation, and z-scores with divisor N-1
//   - dataset: CSV loading utilities
//   - describe: one-call summary reports
//
// # Divisors
//
// Note the distinction between population and sample statistics: the
// population package divides by N because it deals with the complete set of
// observations, while the sample package divides by N-1 (Bessel's correction)
// to produce an unbiased estimate from a subset. The two must not be used
// interchangeably.
//
// All functions are pure and safe for concurrent use; inputs are never
// mutated. Functions that cannot be defined on an empty dataset panic when
// given one, and degenerate arithmetic (division by zero) follows IEEE-754
// rather than being reported as an error.
package gostats
