package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		min      float64
		max      float64
		expected float64
	}{
		{name: "inside", value: 0.5, min: 0, max: 1, expected: 0.5},
		{name: "below", value: -1, min: 0, max: 1, expected: 0},
		{name: "above", value: 2, min: 0, max: 1, expected: 1},
		{name: "swapped", value: 2, min: 1, max: 0, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clamp(tt.value, tt.min, tt.max)
			if got != tt.expected {
				t.Fatalf("Clamp() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestClampOrDefault(t *testing.T) {
	if got := ClampOrDefault(math.NaN(), 0, 5.6, 2.8); got != 2.8 {
		t.Fatalf("NaN: got %v want 2.8", got)
	}
	if got := ClampOrDefault(math.Inf(1), 0, 5.6, 2.8); got != 5.6 {
		t.Fatalf("+Inf: got %v want 5.6", got)
	}
	if got := ClampOrDefault(1.5, 0, 5.6, 2.8); got != 1.5 {
		t.Fatalf("inside: got %v want 1.5", got)
	}
}

func TestIsFinite(t *testing.T) {
	if !IsFinite(0) || !IsFinite(-1e300) {
		t.Fatal("finite values reported as non-finite")
	}
	if IsFinite(math.NaN()) || IsFinite(math.Inf(-1)) {
		t.Fatal("non-finite values reported as finite")
	}
}

func TestLinearPowerToDB(t *testing.T) {
	if got := LinearPowerToDB(0.001); math.Abs(got+30) > 1e-10 {
		t.Fatalf("LinearPowerToDB(0.001) = %v, want -30", got)
	}
	if !math.IsInf(LinearPowerToDB(0), -1) {
		t.Fatal("expected -Inf for zero power")
	}
	if !math.IsNaN(LinearPowerToDB(-1)) {
		t.Fatal("expected NaN for negative power")
	}
}
