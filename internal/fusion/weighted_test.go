package fusion

import (
	"math"
	"testing"
)

func TestWeightedAverage_EqualWeightsIsMean(t *testing.T) {
	values := []float64{4000, 4100, 4200}
	weights := []float64{1, 1, 1}

	got := WeightedAverage(values, weights)
	if math.Abs(got-4100) > 1e-9 {
		t.Errorf("WeightedAverage = %v, want 4100", got)
	}
}

func TestWeightedAverage_SingleSampleExact(t *testing.T) {
	if got := WeightedAverage([]float64{4028.5}, []float64{0.9}); got != 4028.5 {
		t.Errorf("WeightedAverage = %v, want 4028.5", got)
	}
}

func TestWeightedAverage_ReliabilityWeighting(t *testing.T) {
	// Floor plan (0.7) and AR (0.9) measuring the same wall.
	got := WeightedAverage([]float64{4000, 4050}, []float64{0.7, 0.9})
	want := (4000*0.7 + 4050*0.9) / 1.6 // 4028.125
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("WeightedAverage = %v, want %v", got, want)
	}
}

func TestWeightedAverage_DegenerateInputs(t *testing.T) {
	if got := WeightedAverage(nil, nil); got != 0 {
		t.Errorf("empty input: got %v, want 0", got)
	}
	if got := WeightedAverage([]float64{100, 200}, []float64{0, 0}); got != 0 {
		t.Errorf("zero weight sum: got %v, want 0", got)
	}
}
