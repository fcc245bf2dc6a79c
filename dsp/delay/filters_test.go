package delay

import (
	"errors"
	"math"
	"testing"
)

func TestFilterConstructorsRejectBadLength(t *testing.T) {
	if _, err := NewComb(0); !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("NewComb(0): %v", err)
	}
	if _, err := NewAllpass(-3); !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("NewAllpass(-3): %v", err)
	}
	if _, err := NewLattice(0); !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("NewLattice(0): %v", err)
	}
	if _, err := NewModLattice(10, 10); !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("NewModLattice(10, 10): %v", err)
	}
	if _, err := NewModLattice(10, -1); !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("NewModLattice(10, -1): %v", err)
	}
}

func TestDecayGain(t *testing.T) {
	tests := []struct {
		name   string
		length int
		t60    float64
		fs     float64
		want   float64
	}{
		// one pass of a 1 s loop must lose exactly 60 dB
		{name: "one second loop", length: 44100, t60: 1, fs: 44100, want: 0.001},
		{name: "half t60", length: 22050, t60: 1, fs: 44100, want: math.Sqrt(0.001)},
		{name: "floored t60", length: 1, t60: 0, fs: 44100, want: math.Pow(10, -3/(MinT60*44100))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecayGain(tt.length, tt.t60, tt.fs)
			if !approxEqual(got, tt.want, 1e-12) {
				t.Fatalf("DecayGain = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCombImpulseResponse(t *testing.T) {
	const n = 5

	c, err := NewComb(n)
	if err != nil {
		t.Fatal(err)
	}
	c.SetFeedback(0.5)

	// y[k] = x[k] + 0.5*y[k-n]
	out := make([]float64, 4*n)
	for i := range out {
		x := 0.0
		if i == 0 {
			x = 1
		}
		out[i] = c.Process(x)
	}

	for i, v := range out {
		want := 0.0
		if i%n == 0 {
			want = math.Pow(0.5, float64(i/n))
		}
		if v != want {
			t.Fatalf("out[%d] = %v, want %v", i, v, want)
		}
	}
}

func TestCombDecayMatchesT60(t *testing.T) {
	const fs = 44100.0

	for _, length := range []int{389, 1777, 2137} {
		c, err := NewComb(length)
		if err != nil {
			t.Fatal(err)
		}
		c.SetDecay(0.5, fs)

		// Whole passes inside t60 lose 60 dB in proportion to their span.
		passes := float64(int(0.5*fs) / length)
		got := math.Pow(c.Feedback(), passes)
		want := math.Pow(10, -3*passes*float64(length)/(0.5*fs))
		if !approxEqual(got, want, 1e-12) {
			t.Fatalf("length %d: gain^passes = %v, want %v", length, got, want)
		}
	}
}

// allpassEnergy feeds an impulse and returns total output energy.
func allpassEnergy(process func(x float64) float64, n int) float64 {
	var e float64
	for i := 0; i < n; i++ {
		x := 0.0
		if i == 0 {
			x = 1
		}
		y := process(x)
		e += y * y
	}
	return e
}

func TestAllpassPreservesEnergy(t *testing.T) {
	for _, c := range []float64{-0.7, 0.5, 0.742} {
		a, err := NewAllpass(13)
		if err != nil {
			t.Fatal(err)
		}

		e := allpassEnergy(func(x float64) float64 { return a.Process(x, c) }, 13*400)
		if !approxEqual(e, 1, 1e-9) {
			t.Fatalf("c=%v: impulse energy %v, want 1", c, e)
		}
	}
}

func TestLatticePreservesEnergy(t *testing.T) {
	for _, c := range []float64{0.712, 0.729, -0.3} {
		l, err := NewLattice(11)
		if err != nil {
			t.Fatal(err)
		}

		e := allpassEnergy(func(x float64) float64 { return l.Process(x, c) }, 11*400)
		if !approxEqual(e, 1, 1e-9) {
			t.Fatalf("c=%v: impulse energy %v, want 1", c, e)
		}
	}
}

func TestLatticeFirstOutputs(t *testing.T) {
	const c = 0.5

	l, err := NewLattice(3)
	if err != nil {
		t.Fatal(err)
	}

	// y[0] = c*x, the delayed term arrives after 3 samples: y[3] = c*(−c) + 1
	want := []float64{0.5, 0, 0, 0.75}
	for i, w := range want {
		x := 0.0
		if i == 0 {
			x = 1
		}
		if got := l.Process(x, c); !approxEqual(got, w, 1e-15) {
			t.Fatalf("y[%d] = %v, want %v", i, got, w)
		}
	}

	// the stored value written at sample 3 is 0 - c*1
	if got := l.At(0); !approxEqual(got, -0.5, 1e-15) {
		t.Fatalf("At(0) = %v, want -0.5", got)
	}
}

func TestModLatticeUnmodulatedMatchesFixedDelay(t *testing.T) {
	const (
		n = 9
		c = 0.6
	)

	m, err := NewModLattice(n, 3)
	if err != nil {
		t.Fatal(err)
	}
	a, err := NewAllpass(n)
	if err != nil {
		t.Fatal(err)
	}

	// Without SetRate the oscillator is silent and the read point sits at n.
	for i := 0; i < 20*n; i++ {
		x := math.Sin(float64(i) * 0.37)
		got := m.Process(x, c)
		want := a.Process(x, c)
		if !approxEqual(got, want, 1e-12) {
			t.Fatalf("sample %d: got %v want %v", i, got, want)
		}
	}
}

func TestModLatticeModulatedStaysAllpassLike(t *testing.T) {
	m, err := NewModLattice(995, 17)
	if err != nil {
		t.Fatal(err)
	}
	m.SetRate(1.2, 44100, 0)

	var peak float64
	for i := 0; i < 44100; i++ {
		x := 0.0
		if i%2000 == 0 {
			x = 1
		}
		y := m.Process(x, 0.723)
		if math.IsNaN(y) || math.IsInf(y, 0) {
			t.Fatalf("sample %d: non-finite %v", i, y)
		}
		peak = math.Max(peak, math.Abs(y))
	}
	if peak > 2 {
		t.Fatalf("peak %v, modulated lattice should stay near unity gain", peak)
	}
}

func TestFilterReset(t *testing.T) {
	c, _ := NewComb(4)
	c.SetFeedback(0.9)
	a, _ := NewAllpass(4)
	l, _ := NewLattice(4)
	m, _ := NewModLattice(4, 1)

	for i := 0; i < 10; i++ {
		c.Process(1)
		a.Process(1, 0.5)
		l.Process(1, 0.5)
		m.Process(1, 0.5)
	}

	c.Reset()
	a.Reset()
	l.Reset()
	m.Reset()

	if got := c.Process(0); got != 0 {
		t.Fatalf("comb after reset: %v", got)
	}
	if got := a.Process(0, 0.5); got != 0 {
		t.Fatalf("allpass after reset: %v", got)
	}
	if got := l.Process(0, 0.5); got != 0 {
		t.Fatalf("lattice after reset: %v", got)
	}
	if got := m.Process(0, 0.5); got != 0 {
		t.Fatalf("modlattice after reset: %v", got)
	}
	if c.Feedback() != 0.9 {
		t.Fatalf("comb feedback lost on reset: %v", c.Feedback())
	}
}
