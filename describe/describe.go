// Package describe provides one-call summary reports over a dataset.
//
// Describe computes the full descriptive-statistics report in one call,
// computing the mean once and feeding it to both variance families:
//
//	summary := describe.Describe([]float64{600, 470, 170, 430, 300})
//	fmt.Println(summary)
//
// Like the primitives it is built from, Describe panics on an empty dataset.
package describe

import (
	"fmt"
	"strings"

	"github.com/sartorproj/gostats/population"
	"github.com/sartorproj/gostats/sample"
	"github.com/sartorproj/gostats/stats"
)

// Summary holds the descriptive statistics of a dataset.
type Summary struct {
	N                  int
	Mean               float64
	Median             float64
	Min                float64
	Max                float64
	Range              float64
	CoefficientOfRange float64
	PopulationVariance float64
	PopulationStdDev   float64
	SampleVariance     float64
	SampleStdDev       float64
}

// Describe calculates the summary statistics of the dataset. The mean is
// computed once and reused for both variance families.
// Panics if the dataset is empty.
func Describe(data []float64) *Summary {
	mu := stats.Mean(data)
	rng, coef, min, max := stats.Range(data)

	return &Summary{
		N:                  len(data),
		Mean:               mu,
		Median:             stats.Median(data),
		Min:                min,
		Max:                max,
		Range:              rng,
		CoefficientOfRange: coef,
		PopulationVariance: population.Variance(data, mu),
		PopulationStdDev:   population.StandardDeviation(data, mu),
		SampleVariance:     sample.Variance(data, mu),
		SampleStdDev:       sample.StandardDeviation(data, mu),
	}
}

// String formats the summary as a fixed-width report block.
func (s *Summary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "n                    %d\n", s.N)
	fmt.Fprintf(&b, "mean                 %.6g\n", s.Mean)
	fmt.Fprintf(&b, "median               %.6g\n", s.Median)
	fmt.Fprintf(&b, "min                  %.6g\n", s.Min)
	fmt.Fprintf(&b, "max                  %.6g\n", s.Max)
	fmt.Fprintf(&b, "range                %.6g\n", s.Range)
	fmt.Fprintf(&b, "coef of range        %.6g\n", s.CoefficientOfRange)
	fmt.Fprintf(&b, "population variance  %.6g\n", s.PopulationVariance)
	fmt.Fprintf(&b, "population std dev   %.6g\n", s.PopulationStdDev)
	fmt.Fprintf(&b, "sample variance      %.6g\n", s.SampleVariance)
	fmt.Fprintf(&b, "sample std dev       %.6g", s.SampleStdDev)
	return b.String()
}
