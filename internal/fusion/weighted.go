package fusion

import "gonum.org/v1/gonum/stat"

// WeightedAverage fuses samples into a single value using reliability
// weights: Σ(value·weight) / Σ(weight). Empty input or a zero weight sum
// yields 0. With equal weights this reduces to the arithmetic mean; a
// single sample is returned exactly.
func WeightedAverage(values, weights []float64) float64 {
	if len(values) == 0 || len(weights) == 0 {
		return 0
	}
	var weightSum float64
	for _, w := range weights {
		weightSum += w
	}
	if weightSum <= 0 {
		return 0
	}
	return stat.Mean(values, weights)
}
