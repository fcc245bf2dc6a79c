// Package osc provides low-rate oscillators for modulating delay taps.
package osc

import "math"

// Sine is a recursive sine oscillator. Each step costs one multiply and one
// subtract; no trigonometry runs after SetFrequency.
//
// The zero value is silent.
type Sine struct {
	b float64
	y [2]float64
	z int
}

// Set configures the normalized angular step omega (radians per sample) and
// the phase of the first returned value.
func (s *Sine) Set(omega, phase float64) {
	s.b = 2 * math.Cos(omega)
	s.y[0] = math.Sin(phase - omega)
	s.y[1] = math.Sin(phase - 2*omega)
	s.z = 0
}

// SetFrequency configures the oscillator for freqHz at sampleRate.
func (s *Sine) SetFrequency(freqHz, sampleRate, phase float64) {
	if sampleRate <= 0 {
		*s = Sine{}
		return
	}
	s.Set(2*math.Pi*freqHz/sampleRate, phase)
}

// Next advances the oscillator and returns sin(phase + n*omega).
func (s *Sine) Next() float64 {
	v := s.b * s.y[s.z]
	s.z ^= 1
	v -= s.y[s.z]
	s.y[s.z] = v
	return v
}
