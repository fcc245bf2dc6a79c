package interp

// Split breaks a non-negative fractional position into its integer part and
// the remaining fraction in [0,1).
//
// The integer part is obtained by conversion, which Go defines as truncation
// toward zero regardless of platform or FPU rounding mode.
func Split(pos float64) (int, float64) {
	n := int(pos)
	return n, pos - float64(n)
}

// Linear2 interpolates between x0 (t=0) and x1 (t=1).
func Linear2(t, x0, x1 float64) float64 {
	return (1-t)*x0 + t*x1
}
