package sample

import (
	"math"
	"testing"
)

func TestZScoreSingleSample(t *testing.T) {
	tests := []struct {
		name        string
		observation float64
		mu          float64
		sigma       float64
		expected    float64
	}{
		{"above mean", 105, 100, 4, 1.25},
		{"at mean", 100, 100, 4, 0.0},
		{"below mean", 95, 100, 4, -1.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ZScoreSingleSample(tt.observation, tt.mu, tt.sigma)
			if result != tt.expected {
				t.Errorf("Expected z-score %f, got %f", tt.expected, result)
			}
		})
	}
}

func TestZScore(t *testing.T) {
	// Larger samples shrink the standard error by sqrt(n).
	result := ZScore(103, 16, 100, 4)
	if result != 3.0 {
		t.Errorf("Expected z-score 3, got %f", result)
	}
}

func TestZScoreSampleSizeScaling(t *testing.T) {
	base := ZScore(105, 1, 100, 4)
	quadrupled := ZScore(105, 4, 100, 4)

	if math.Abs(quadrupled-2*base) > 1e-10 {
		t.Errorf("Expected z-score to double when n quadruples: n=1 gives %f, n=4 gives %f",
			base, quadrupled)
	}
}
