//go:build fastmath

package reverb

import (
	"github.com/meko-christian/algo-approx"
)

// mathExp computes e^x using fast approximation. Control maps run once per
// block, the approximation only trims parameter-sweep cost.
func mathExp(x float64) float64 {
	return approx.FastExp(x)
}

// mathPow computes x^y for x > 0 as e^(y*ln x).
func mathPow(x, y float64) float64 {
	if x == 1 {
		return 1
	}
	return approx.FastExp(y * approx.FastLog(x))
}
