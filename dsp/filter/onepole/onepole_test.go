package onepole

import (
	"math"
	"testing"
)

func TestNewValidation(t *testing.T) {
	for _, a := range []float64{0, -0.1, 1.5, math.NaN()} {
		if _, err := New(a); err == nil {
			t.Fatalf("New(%v): expected error", a)
		}
	}
	if _, err := New(1); err != nil {
		t.Fatalf("New(1): %v", err)
	}
}

func TestProcessRecursion(t *testing.T) {
	lp, err := New(0.75)
	if err != nil {
		t.Fatal(err)
	}

	// step response: y[n] = 1 - (1-a)^(n+1)
	for n := 0; n < 20; n++ {
		got := lp.Process(1)
		want := 1 - math.Pow(0.25, float64(n+1))
		if math.Abs(got-want) > 1e-15 {
			t.Fatalf("n=%d: got %v want %v", n, got, want)
		}
	}
}

func TestUnityDCGain(t *testing.T) {
	lp, err := New(0.1)
	if err != nil {
		t.Fatal(err)
	}

	var y float64
	for n := 0; n < 1000; n++ {
		y = lp.Process(0.8)
	}
	if math.Abs(y-0.8) > 1e-12 {
		t.Fatalf("DC gain: got %v want 0.8", y)
	}
}

func TestUnitCoefficientIsWire(t *testing.T) {
	lp, err := New(1)
	if err != nil {
		t.Fatal(err)
	}

	for _, x := range []float64{0.3, -1, 0, 0.125} {
		if got := lp.Process(x); got != x {
			t.Fatalf("Process(%v) = %v", x, got)
		}
	}
}

func TestSetKeepsStateResetClears(t *testing.T) {
	lp, err := New(0.5)
	if err != nil {
		t.Fatal(err)
	}

	lp.Process(1) // state 0.5
	lp.Set(0.25)
	if got := lp.Process(0); got != 0.375 {
		t.Fatalf("state lost across Set: got %v want 0.375", got)
	}

	lp.Reset()
	if got := lp.Process(0); got != 0 {
		t.Fatalf("after reset: got %v want 0", got)
	}
	if lp.Coefficient() != 0.25 {
		t.Fatalf("Coefficient = %v, want 0.25", lp.Coefficient())
	}
}
