package onepole

import (
	"fmt"
	"math"
)

// LowPass is a one-pole low-pass: y = a*x + (1-a)*y[-1].
//
// The same section limits input bandwidth and damps the reverb tank; only
// the coefficient differs. a = 1 passes the input unchanged, smaller values
// move the pole 1-a towards the unit circle and lower the cutoff.
type LowPass struct {
	a0 float64
	b1 float64
	y1 float64
}

// New returns a low-pass with coefficient a in (0, 1].
func New(a float64) (*LowPass, error) {
	if a <= 0 || a > 1 || math.IsNaN(a) {
		return nil, fmt.Errorf("onepole: coefficient must be in (0,1]: %f", a)
	}
	lp := &LowPass{}
	lp.Set(a)
	return lp, nil
}

// Set changes the coefficient. The state is kept so coefficients can change
// per block without clicks.
func (lp *LowPass) Set(a float64) {
	lp.a0 = a
	lp.b1 = 1 - a
}

// Coefficient returns the current coefficient a.
func (lp *LowPass) Coefficient() float64 { return lp.a0 }

// Process filters one sample.
func (lp *LowPass) Process(x float64) float64 {
	lp.y1 = lp.a0*x + lp.b1*lp.y1
	return lp.y1
}

// Reset zeroes the filter state.
func (lp *LowPass) Reset() { lp.y1 = 0 }
