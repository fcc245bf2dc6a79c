package ir

// slopeTime fits a line to the decay curve between startDB and endDB and
// returns the time it would take to fall 60 dB. Zero means the curve never
// spans the range or does not fall.
func (a *Analyzer) slopeTime(curve []float64, startDB, endDB float64) float64 {
	first, last := -1, -1
	for i, v := range curve {
		if first < 0 && v <= startDB {
			first = i
		}
		if first >= 0 && v <= endDB {
			last = i
			break
		}
	}
	if first < 0 || last <= first {
		return 0
	}

	slope := fitSlope(curve[first : last+1])
	if slope >= 0 {
		return 0
	}

	return -60 / (slope * a.SampleRate)
}

// fitSlope returns the least-squares slope of y over its index.
func fitSlope(y []float64) float64 {
	n := float64(len(y))

	var sx, sy, sxx, sxy float64
	for i, v := range y {
		x := float64(i)
		sx += x
		sy += v
		sxx += x * x
		sxy += x * v
	}

	den := n*sxx - sx*sx
	if den == 0 {
		return 0
	}

	return (n*sxy - sx*sy) / den
}
