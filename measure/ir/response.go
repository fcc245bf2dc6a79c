package ir

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-reverb/dsp/core"
)

// MagnitudeResponse returns |H(k)| for bins 0..fftSize/2 of ir, truncated or
// zero-padded to fftSize.
func MagnitudeResponse(ir []float64, fftSize int) ([]float64, error) {
	if len(ir) == 0 {
		return nil, ErrEmptyIR
	}
	if fftSize < 2 || fftSize&(fftSize-1) != 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFFTSize, fftSize)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("ir: failed to create FFT plan: %w", err)
	}

	in := make([]complex128, fftSize)
	for i := 0; i < len(ir) && i < fftSize; i++ {
		in[i] = complex(ir[i], 0)
	}

	spec := make([]complex128, fftSize)
	if err := plan.Forward(spec, in); err != nil {
		return nil, fmt.Errorf("ir: forward FFT failed: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := range bins {
		re[k] = real(spec[k])
		im[k] = imag(spec[k])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	return mag, nil
}

// SpectralDeviation returns the standard deviation in dB of mag over bins
// [lo, hi). Bins with zero magnitude are skipped. A flat response scores 0.
func SpectralDeviation(mag []float64, lo, hi int) (float64, error) {
	lo = max(lo, 0)
	hi = min(hi, len(mag))
	if hi <= lo {
		return 0, fmt.Errorf("ir: empty bin range [%d, %d)", lo, hi)
	}

	var sum, sumSq float64
	n := 0
	for _, m := range mag[lo:hi] {
		if m <= 0 {
			continue
		}
		db := core.LinearPowerToDB(m * m)
		sum += db
		sumSq += db * db
		n++
	}
	if n == 0 {
		return 0, fmt.Errorf("ir: no non-zero bins in [%d, %d)", lo, hi)
	}

	mean := sum / float64(n)
	return math.Sqrt(max(sumSq/float64(n)-mean*mean, 0)), nil
}
