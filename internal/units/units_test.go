package units

import (
	"math"
	"testing"
)

func TestConversions(t *testing.T) {
	if got := MMToM(4028.13); math.Abs(got-4.02813) > 1e-9 {
		t.Errorf("MMToM = %v", got)
	}
	if got := MToMM(2.75); got != 2750 {
		t.Errorf("MToMM = %v", got)
	}
	if got := AreaSqmFromMM(4000, 3000); got != 12.0 {
		t.Errorf("AreaSqmFromMM = %v", got)
	}
}

func TestRound2(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{4028.125, 4028.13},
		{4028.124, 4028.12},
		{0.998758, 1.0},
		{-1.005, -1.0}, // Banker's-adjacent edge from float representation
		{0, 0},
	}
	for _, c := range cases {
		if got := Round2(c.in); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("Round2(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestToMillimetres(t *testing.T) {
	cases := []struct {
		value float64
		unit  string
		want  float64
	}{
		{4000, "mm", 4000},
		{4000, "", 4000},
		{4, "m", 4000},
		{4, "Metres", 4000},
		{10, "feet", 3048},
		{10, " FT ", 3048},
	}
	for _, c := range cases {
		got, err := ToMillimetres(c.value, c.unit)
		if err != nil {
			t.Errorf("ToMillimetres(%v, %q): %v", c.value, c.unit, err)
			continue
		}
		if math.Abs(got-c.want) > 1e-9 {
			t.Errorf("ToMillimetres(%v, %q) = %v, want %v", c.value, c.unit, got, c.want)
		}
	}

	if _, err := ToMillimetres(1, "furlongs"); err == nil {
		t.Error("expected error for unknown unit")
	}
}

func TestTitleCase(t *testing.T) {
	cases := []struct{ in, want string }{
		{"master_bedroom", "Master Bedroom"},
		{"kitchen", "Kitchen"},
		{"unknown", "Unknown"},
		{"", ""},
	}
	for _, c := range cases {
		if got := TitleCase(c.in); got != c.want {
			t.Errorf("TitleCase(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
