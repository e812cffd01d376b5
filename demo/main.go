// Package main demonstrates the gostats descriptive-statistics library.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/sartorproj/gostats/dataset"
	"github.com/sartorproj/gostats/describe"
	"github.com/sartorproj/gostats/sample"
	"github.com/sartorproj/gostats/stats"
)

func main() {
	fmt.Println(strings.Repeat("=", 80))
	fmt.Println("GoStats Demonstration - Descriptive Statistics")
	fmt.Println(strings.Repeat("=", 80))

	// Optional: describe a CSV column given on the command line.
	if len(os.Args) >= 3 {
		describeCSV(os.Args[1], os.Args[2])
		return
	}

	examScores()
	studyCorrelation()
	diceChiSquared()
	zScores()

	fmt.Println(strings.Repeat("=", 80))
}

// examScores summarizes a small exam-score dataset and shows the
// population-vs-sample divisor distinction.
func examScores() {
	banner("Exam scores")

	scores := []float64{89, 73, 84, 91, 87, 77, 94}
	fmt.Printf("data: %v\n\n", scores)
	fmt.Println(describe.Describe(scores))

	widgets := []float64{600, 470, 170, 430, 300}
	summary := describe.Describe(widgets)
	fmt.Printf("\ndivisor distinction on %v (mean %.0f):\n", widgets, summary.Mean)
	fmt.Printf("  population variance (divide by N):   %.1f\n", summary.PopulationVariance)
	fmt.Printf("  sample variance     (divide by N-1): %.1f\n", summary.SampleVariance)
}

// studyCorrelation correlates hours studied against exam results.
func studyCorrelation() {
	banner("Correlation: hours studied vs. score")

	data := []stats.Pair{
		{X: 43, Y: 99},
		{X: 21, Y: 65},
		{X: 25, Y: 79},
		{X: 42, Y: 75},
		{X: 57, Y: 87},
		{X: 59, Y: 81},
	}
	r := stats.Correlation(data)
	fmt.Printf("pairs: %d\n", len(data))
	fmt.Printf("Pearson r: %.6f\n", r)
}

// diceChiSquared compares observed die rolls against the uniform
// expectation.
func diceChiSquared() {
	banner("Chi-squared: die fairness")

	rolls := []stats.Observation{
		{Expected: 20, Observed: 22},
		{Expected: 20, Observed: 17},
		{Expected: 20, Observed: 21},
		{Expected: 20, Observed: 18},
		{Expected: 20, Observed: 19},
		{Expected: 20, Observed: 23},
	}
	fmt.Printf("chi-squared statistic: %.4f\n", stats.ChiSquared(rolls))
}

// zScores shows sample-mean and single-observation z-scores.
func zScores() {
	banner("z-scores")

	fmt.Printf("IQ 105 against mu=100 sigma=4:        z = %.2f\n",
		sample.ZScoreSingleSample(105, 100, 4))
	fmt.Printf("sample mean 103 (n=16), mu=100 sd=4:  z = %.2f\n",
		sample.ZScore(103, 16, 100, 4))
}

// describeCSV loads a column from a CSV file and prints its summary.
func describeCSV(path, column string) {
	banner(fmt.Sprintf("%s [%s]", path, column))

	data, err := dataset.LoadColumn(path, column)
	if err != nil {
		fmt.Printf("error loading: %v\n", err)
		os.Exit(1)
	}
	if len(data) == 0 {
		fmt.Println("no numeric values found")
		os.Exit(1)
	}
	fmt.Printf("loaded %d observations\n\n", len(data))
	fmt.Println(describe.Describe(data))
}

func banner(title string) {
	fmt.Printf("\n%s\n%s\n%s\n", strings.Repeat("-", 80), title, strings.Repeat("-", 80))
}
