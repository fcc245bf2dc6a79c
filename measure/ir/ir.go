package ir

import (
	"errors"
	"math"
)

// Errors returned by IR analysis functions.
var (
	ErrEmptyIR           = errors.New("ir: impulse response is empty")
	ErrInvalidSampleRate = errors.New("ir: sample rate must be positive")
	ErrNoDecay           = errors.New("ir: insufficient decay for RT calculation")
	ErrInvalidFFTSize    = errors.New("ir: fft size must be a power of two >= 2")
	ErrInvalidBlock      = errors.New("ir: block size must be > 0")
)

// Metrics summarizes the decay of a rendered impulse response.
type Metrics struct {
	RT60       float64 // T30, or T20 when the curve is too short
	EDT        float64 // early decay time, 0 to -10 dB
	T20        float64 // -5 to -25 dB slope extrapolated to -60 dB
	T30        float64 // -5 to -35 dB slope extrapolated to -60 dB
	C80        float64 // early-to-late energy ratio at 80 ms, dB
	CenterTime float64 // energy centroid in seconds
	PeakIndex  int     // index of the absolute maximum
}

// Analyzer computes decay metrics at a fixed sample rate.
type Analyzer struct {
	SampleRate float64
}

// NewAnalyzer returns an Analyzer for sampleRate.
func NewAnalyzer(sampleRate float64) *Analyzer {
	return &Analyzer{SampleRate: sampleRate}
}

// Analyze measures ir from its peak onwards. Metrics the response is too
// short to support are left at zero.
func (a *Analyzer) Analyze(ir []float64) (Metrics, error) {
	if err := a.check(ir); err != nil {
		return Metrics{}, err
	}

	peak := peakIndex(ir)
	e := newEnergyProfile(ir[peak:])
	curve := e.decayCurve()

	m := Metrics{
		PeakIndex:  peak,
		EDT:        a.slopeTime(curve, 0, -10),
		T20:        a.slopeTime(curve, -5, -25),
		T30:        a.slopeTime(curve, -5, -35),
		C80:        e.clarity(a.samples(0.080)),
		CenterTime: e.centroid() / a.SampleRate,
	}

	m.RT60 = m.T30
	if m.RT60 == 0 {
		m.RT60 = m.T20
	}

	return m, nil
}

// RT60 returns the reverberation time of ir, or ErrNoDecay when neither the
// T30 nor the T20 range is reached.
func (a *Analyzer) RT60(ir []float64) (float64, error) {
	m, err := a.Analyze(ir)
	if err != nil {
		return 0, err
	}
	if m.RT60 == 0 {
		return 0, ErrNoDecay
	}
	return m.RT60, nil
}

// DecayCurve returns the Schroeder backward integral of ir in dB relative
// to its total energy.
func (a *Analyzer) DecayCurve(ir []float64) ([]float64, error) {
	if len(ir) == 0 {
		return nil, ErrEmptyIR
	}
	return newEnergyProfile(ir).decayCurve(), nil
}

func (a *Analyzer) check(ir []float64) error {
	if len(ir) == 0 {
		return ErrEmptyIR
	}
	if !(a.SampleRate > 0) {
		return ErrInvalidSampleRate
	}
	return nil
}

func (a *Analyzer) samples(seconds float64) int {
	return int(math.Round(seconds * a.SampleRate))
}

func peakIndex(x []float64) int {
	idx, peak := 0, 0.0
	for i, v := range x {
		if av := math.Abs(v); av > peak {
			idx, peak = i, av
		}
	}
	return idx
}
