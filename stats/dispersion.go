package stats

// Range calculates the arithmetic range of the dataset in a single pass.
//
// It returns the range (max - min), the coefficient of range
// (range / (max + min)), and the smallest and largest values. When
// max + min is zero the coefficient is the IEEE-754 result of the division
// (Inf or NaN); that is not treated as an error. The comparisons are strict,
// so NaN values never become a running extreme.
// Panics if the dataset is empty.
func Range(data []float64) (rng, coefficient, min, max float64) {
	if len(data) == 0 {
		panic("stats: range of empty dataset")
	}
	min = data[0]
	max = data[0]
	for _, v := range data {
		if v > max {
			max = v
		}
		if v < min {
			min = v
		}
	}
	rng = max - min
	coefficient = rng / (max + min)
	return rng, coefficient, min, max
}

// SumOfSquares calculates the sum, over all observations, of the squared
// differences of each observation from mu.
//
// The mean is a parameter rather than being recomputed internally, so
// repeated calls can reuse a mean the caller already holds.
func SumOfSquares(data []float64, mu float64) float64 {
	sum := 0.0
	for _, v := range data {
		diff := v - mu
		sum += diff * diff
	}
	return sum
}
