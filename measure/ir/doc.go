// Package ir measures rendered impulse responses.
//
// Decay metrics derive from the Schroeder backward integral of the squared
// response:
//
//   - RT60: T30, falling back to T20
//   - EDT: early decay time (0 to -10 dB)
//   - T20, T30: slopes from -5 dB to -25 dB and -35 dB, extrapolated to -60 dB
//   - C80: clarity at 80 ms
//   - CenterTime: energy centroid
//
// BlockEnergy tracks how energy evolves block by block, and
// MagnitudeResponse with SpectralDeviation give a single coloration figure
// for a response.
//
//	a := ir.NewAnalyzer(44100)
//	m, err := a.Analyze(response)
//	fmt.Printf("RT60 = %.2f s, C80 = %.1f dB\n", m.RT60, m.C80)
package ir
