package common

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Basic statistical helpers shared across the engine's packages, using gonum for robustness.

// Variance calculates the sample variance of a slice using gonum.
func Variance(data []float64) float64 {
	if len(data) < 2 {
		return 0.0
	}
	return stat.Variance(data, nil)
}

// StandardDeviation calculates the sample standard deviation.
func StandardDeviation(data []float64) float64 {
	if len(data) < 2 {
		return 0.0
	}
	return math.Sqrt(Variance(data))
}
