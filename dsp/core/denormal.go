package core

// NoiseFloor is the magnitude of the denormal guard offset, about -266 dB.
const NoiseFloor = 5e-14

// DenormalGuard supplies a tiny offset of alternating sign that keeps
// recursive filter state away from the denormal range once signal has
// passed through it.
//
// The guard stays idle until the first non-zero input sample, so a unit fed
// pure silence from a cleared state keeps producing exact zeros.
type DenormalGuard struct {
	value float64
	armed bool
}

// NewDenormalGuard returns a disarmed guard.
func NewDenormalGuard() DenormalGuard {
	return DenormalGuard{value: NoiseFloor}
}

// Next returns the offset to inject alongside input sample x and flips its
// sign for the following call.
func (g *DenormalGuard) Next(x float64) float64 {
	if !g.armed {
		if x == 0 {
			return 0
		}
		g.armed = true
	}

	g.value = -g.value

	return g.value
}

// Armed reports whether the guard has started injecting.
func (g *DenormalGuard) Armed() bool { return g.armed }

// Reset disarms the guard.
func (g *DenormalGuard) Reset() {
	g.value = NoiseFloor
	g.armed = false
}
