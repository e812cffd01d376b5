package sample

import "math"

// ZScore calculates how many standard errors the sample mean lies from the
// population mean: (muSample - muPopulation) / (sigmaPopulation / sqrt(n)).
func ZScore(muSample float64, nSample int, muPopulation, sigmaPopulation float64) float64 {
	dividend := muSample - muPopulation
	divisor := sigmaPopulation / math.Sqrt(float64(nSample))
	return dividend / divisor
}

// ZScoreSingleSample calculates the z-score of a single observation against
// a population with mean mu and standard deviation sigma.
func ZScoreSingleSample(observation, mu, sigma float64) float64 {
	return ZScore(observation, 1, mu, sigma)
}
