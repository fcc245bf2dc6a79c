package reverb

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-reverb/dsp/core"
)

const (
	// referenceSampleRate is the rate the nominal delay tables were tuned at.
	referenceSampleRate = 44100.0

	// tuningStretch widens every nominal length before the prime search.
	tuningStretch = 1.5

	// maxTunedLength bounds the prime search.
	maxTunedLength = math.MaxInt32
)

// TuneLengths scales nominal delay lengths, tuned at 44.1 kHz, to
// sampleRate and moves each to the next prime: v = int(1.5*fs/44100*n),
// forced odd, then stepped by 2 until prime. Mutually prime lengths keep
// the echoes of parallel paths from piling up on common multiples.
func TuneLengths(nominal []int, sampleRate float64) ([]int, error) {
	if !(sampleRate > 0) || !core.IsFinite(sampleRate) {
		return nil, fmt.Errorf("%w: %f", ErrInvalidSampleRate, sampleRate)
	}

	scale := tuningStretch * sampleRate / referenceSampleRate
	out := make([]int, len(nominal))

	for i, n := range nominal {
		if n <= 0 {
			return nil, fmt.Errorf("%w: index %d is %d", ErrInvalidLength, i, n)
		}

		scaled := scale * float64(n)
		if scaled >= maxTunedLength {
			return nil, fmt.Errorf("%w: %d scaled to %.0f", ErrNoPrime, n, scaled)
		}

		v := int(scaled) | 1
		for !IsPrime(v) {
			v += 2
			if v > maxTunedLength {
				return nil, fmt.Errorf("%w: %d scaled to %.0f", ErrNoPrime, n, scaled)
			}
		}

		out[i] = v
	}

	return out, nil
}

// IsPrime reports whether v is prime.
func IsPrime(v int) bool {
	if v < 2 {
		return false
	}
	if v < 4 {
		return true
	}
	if v%2 == 0 || v%3 == 0 {
		return false
	}
	for d := 5; d*d <= v; d += 6 {
		if v%d == 0 || v%(d+2) == 0 {
			return false
		}
	}
	return true
}
