package ir

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-reverb/dsp/core"
)

// floorDB bounds the decay curve where the remaining energy is zero.
const floorDB = -200

// energyProfile holds the squared response and its backward running sum.
type energyProfile struct {
	sq   []float64
	tail []float64 // tail[i] = sum of sq[i:]
}

func newEnergyProfile(x []float64) energyProfile {
	sq := make([]float64, len(x))
	vecmath.MulBlock(sq, x, x)

	tail := make([]float64, len(x))
	var sum float64
	for i := len(sq) - 1; i >= 0; i-- {
		sum += sq[i]
		tail[i] = sum
	}

	return energyProfile{sq: sq, tail: tail}
}

func (e energyProfile) total() float64 {
	if len(e.tail) == 0 {
		return 0
	}
	return e.tail[0]
}

func (e energyProfile) decayCurve() []float64 {
	curve := make([]float64, len(e.tail))
	total := e.total()
	if total <= 0 {
		return curve
	}

	for i, r := range e.tail {
		if r <= 0 {
			curve[i] = floorDB
			continue
		}
		curve[i] = core.LinearPowerToDB(r / total)
	}

	return curve
}

// clarity returns the early-to-late energy ratio in dB with the boundary at
// sample n.
func (e energyProfile) clarity(n int) float64 {
	switch {
	case n <= 0:
		return math.Inf(-1)
	case n >= len(e.tail):
		return math.Inf(1)
	}

	late := e.tail[n]
	early := e.total() - late
	switch {
	case late <= 0:
		return math.Inf(1)
	case early <= 0:
		return math.Inf(-1)
	}

	return core.LinearPowerToDB(early / late)
}

// centroid returns the energy-weighted mean index.
func (e energyProfile) centroid() float64 {
	total := e.total()
	if total <= 0 {
		return 0
	}

	var moment float64
	for i, v := range e.sq {
		moment += float64(i) * v
	}

	return moment / total
}

// BlockEnergy returns the energy of each complete block of x. A trailing
// partial block is ignored.
func BlockEnergy(x []float64, block int) ([]float64, error) {
	if block <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBlock, block)
	}

	n := len(x) / block
	out := make([]float64, n)
	sq := make([]float64, block)

	for b := range n {
		seg := x[b*block : (b+1)*block]
		vecmath.MulBlock(sq, seg, seg)
		for _, v := range sq {
			out[b] += v
		}
	}

	return out, nil
}
