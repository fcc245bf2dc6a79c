package core

// YieldFunc writes one processed sample x to dst[i]. gain is the adding
// gain and is ignored by plain stores.
type YieldFunc func(dst []float64, i int, x, gain float64)

// Store overwrites dst[i] with x.
func Store(dst []float64, i int, x, _ float64) {
	dst[i] = x
}

// Accumulate mixes gain*x into the existing content of dst[i].
func Accumulate(dst []float64, i int, x, gain float64) {
	dst[i] += gain * x
}
