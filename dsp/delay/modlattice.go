package delay

import (
	"fmt"

	"github.com/cwbudde/algo-reverb/dsp/osc"
)

// ModLattice is a lattice allpass whose read point sweeps around its nominal
// length under a slow sine. Moving the tap by a few samples smears the
// resonances a fixed tank would otherwise ring at.
type ModLattice struct {
	line  *Line
	n0    float64
	width float64
	lfo   osc.Sine
}

// NewModLattice returns a modulated lattice with nominal length n and a
// maximum excursion of width samples either side of it.
func NewModLattice(n, width int) (*ModLattice, error) {
	if width < 0 {
		return nil, fmt.Errorf("%w: modulation width %d", ErrInvalidLength, width)
	}
	if n <= width {
		return nil, fmt.Errorf("%w: nominal length %d must exceed width %d", ErrInvalidLength, n, width)
	}

	line, err := New(n + width + 1)
	if err != nil {
		return nil, err
	}

	return &ModLattice{
		line:  line,
		n0:    float64(n),
		width: float64(width),
	}, nil
}

// Len returns the allocated delay length in samples.
func (m *ModLattice) Len() int { return m.line.Len() }

// SetRate starts the modulation oscillator at rateHz with the given
// starting phase in radians.
func (m *ModLattice) SetRate(rateHz, sampleRate, phase float64) {
	m.lfo.SetFrequency(rateHz, sampleRate, phase)
}

// Process runs one sample through the lattice with coefficient c.
func (m *ModLattice) Process(x, c float64) float64 {
	// At(k) is k+1 samples old, hence the -1.
	y := m.line.AtFractional(m.n0 + m.width*m.lfo.Next() - 1)
	x += c * y
	m.line.Put(x)
	return y - c*x
}

// Reset clears the delay memory. The oscillator keeps running; call
// SetRate to restart it.
func (m *ModLattice) Reset() { m.line.Reset() }
