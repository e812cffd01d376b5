package stats

import "math"

// Pair is one (x, y) observation in a paired dataset.
type Pair struct {
	X float64
	Y float64
}

// Observation is one (expected, observed) entry for the chi-squared
// statistic.
type Observation struct {
	Expected float64
	Observed float64
}

// Correlation calculates the Pearson correlation coefficient of a paired
// dataset. The result is between -1 and 1.
//
// There is no guard for degenerate input: an empty dataset, or one where
// either variable is constant, yields NaN from the zero division.
func Correlation(data []Pair) float64 {
	n := float64(len(data))
	sumX := 0.0
	sumY := 0.0
	sumXY := 0.0
	sumX2 := 0.0
	sumY2 := 0.0
	for _, p := range data {
		sumX += p.X
		sumY += p.Y
		sumXY += p.X * p.Y
		sumX2 += p.X * p.X
		sumY2 += p.Y * p.Y
	}
	dividend := n*sumXY - sumX*sumY
	divisorLeft := n*sumX2 - sumX*sumX
	divisorRight := n*sumY2 - sumY*sumY
	return dividend / math.Sqrt(divisorLeft*divisorRight)
}

// ChiSquared calculates the chi-squared statistic over a set of
// (expected, observed) observations.
//
// A zero expected value divides by zero and the IEEE-754 result is
// propagated unchanged. Only the statistic is computed; there is no
// p-value or degrees-of-freedom handling here.
func ChiSquared(data []Observation) float64 {
	sum := 0.0
	for _, o := range data {
		diff := o.Expected - o.Observed
		sum += diff * diff / o.Expected
	}
	return sum
}
