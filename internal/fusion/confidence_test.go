package fusion

import (
	"math"
	"testing"
)

func TestEstimateConfidence_SingleVoiceRoom(t *testing.T) {
	cfg := DefaultConfig().Confidence

	// Base 0.5 + one-source bonus 0.1 - single-sample penalty 0.1 = 0.5.
	got := EstimateConfidence(cfg, []float64{3000}, []float64{0.5}, 1)
	if math.Abs(got-0.5) > 1e-9 {
		t.Errorf("confidence = %v, want 0.5", got)
	}
}

func TestEstimateConfidence_CorroborationBonusCapped(t *testing.T) {
	cfg := DefaultConfig().Confidence

	// Five sources would earn 0.5 bonus uncapped; the cap holds it at 0.3.
	lengths := []float64{4000, 4000, 4000, 4000, 4000}
	weights := []float64{0.5, 0.5, 0.5, 0.5, 0.5}
	got := EstimateConfidence(cfg, lengths, weights, 5)

	// base 0.5 + capped bonus 0.3 - zero-variance penalty 0 = 0.8
	if math.Abs(got-0.8) > 1e-9 {
		t.Errorf("confidence = %v, want 0.8", got)
	}
}

func TestEstimateConfidence_DispersionPenaltyCapped(t *testing.T) {
	cfg := DefaultConfig().Confidence

	// cv = 1000/2000 = 0.5 -> raw penalty 0.1, under the cap.
	got := EstimateConfidence(cfg, []float64{1000, 3000}, []float64{0.9, 0.9}, 2)
	want := 0.9 + 0.2 - 0.1
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("confidence = %v, want %v", got, want)
	}

	// Wildly dispersed samples (cv ≈ 1.70) hit the penalty cap of 0.3.
	got = EstimateConfidence(cfg, []float64{1, 1, 1, 200}, []float64{0.9, 0.9, 0.9, 0.9}, 4)
	want = 0.9 + 0.3 - 0.3
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("capped confidence = %v, want %v", got, want)
	}
}

func TestEstimateConfidence_ZeroMeanNoPenalty(t *testing.T) {
	cfg := DefaultConfig().Confidence

	got := EstimateConfidence(cfg, []float64{0, 0}, []float64{0.5, 0.5}, 2)
	if math.Abs(got-(0.5+0.2)) > 1e-9 {
		t.Errorf("confidence = %v, want 0.7", got)
	}
}

func TestEstimateConfidence_EmptyInput(t *testing.T) {
	cfg := DefaultConfig().Confidence
	if got := EstimateConfidence(cfg, nil, nil, 0); got != 0 {
		t.Errorf("confidence = %v, want 0", got)
	}
}

func TestEstimateConfidence_AlwaysInUnitInterval(t *testing.T) {
	cfg := DefaultConfig().Confidence

	cases := []struct {
		lengths   []float64
		weights   []float64
		groupSize int
	}{
		{[]float64{4000}, []float64{0.9}, 8},                           // Bonus pushes above 1 before clamping
		{[]float64{1, 100000}, []float64{0.1, 0.1}, 1},                 // Heavy penalty, tiny base
		{[]float64{4000, 4100, 3900}, []float64{0.9, 0.7, 0.6}, 3},     // Typical
		{[]float64{0}, []float64{0}, 0},                                // Degenerate weights
		{[]float64{500, 500, 500, 500}, []float64{1, 1, 1, 1}, 4},      // Max base
		{[]float64{100, 200, 50000}, []float64{0.5, 0.5, 0.5}, 3},      // Dispersed
	}

	for i, c := range cases {
		got := EstimateConfidence(cfg, c.lengths, c.weights, c.groupSize)
		if got < 0 || got > 1 {
			t.Errorf("case %d: confidence %v outside [0,1]", i, got)
		}
	}
}
