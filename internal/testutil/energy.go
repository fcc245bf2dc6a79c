package testutil

import "github.com/cwbudde/algo-vecmath"

// Energy returns the sum of squares of x.
func Energy(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}

	sq := make([]float64, len(x))
	vecmath.MulBlock(sq, x, x)

	var sum float64
	for _, v := range sq {
		sum += v
	}
	return sum
}

// BlockEnergies splits x into consecutive blocks of size block and returns
// the energy of each. A trailing partial block is dropped.
func BlockEnergies(x []float64, block int) []float64 {
	if block <= 0 {
		return nil
	}
	out := make([]float64, 0, len(x)/block)
	for i := 0; i+block <= len(x); i += block {
		out = append(out, Energy(x[i:i+block]))
	}
	return out
}
