package delay

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-reverb/dsp/interp"
)

// ErrInvalidLength is returned for delay lengths that cannot hold a sample.
var ErrInvalidLength = errors.New("delay: length must be > 0")

// Line is a fixed-length circular delay line.
//
// Offsets passed to At count backwards from the most recently written
// sample: At(0) is the last Put, At(Len()-1) the oldest. Get returns the
// sample the next Put will overwrite, so Get followed by Put within one
// sample period is a delay of exactly Len() samples.
type Line struct {
	buffer   []float64
	writePos int
}

// New returns a zeroed delay line of fixed length.
func New(length int) (*Line, error) {
	if length <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}
	return &Line{buffer: make([]float64, length)}, nil
}

// Len returns the line length in samples.
func (d *Line) Len() int {
	return len(d.buffer)
}

// Put writes x at the cursor and advances it.
func (d *Line) Put(x float64) {
	d.buffer[d.writePos] = x
	d.writePos++
	if d.writePos == len(d.buffer) {
		d.writePos = 0
	}
}

// Get returns the oldest sample without advancing.
func (d *Line) Get() float64 {
	return d.buffer[d.writePos]
}

// PutGet stores x and returns the sample it displaced, Len() samples old.
func (d *Line) PutGet(x float64) float64 {
	y := d.buffer[d.writePos]
	d.Put(x)
	return y
}

// At returns the sample written k samples before the most recent one.
// k must be in [0, Len()).
func (d *Line) At(k int) float64 {
	i := d.writePos - 1 - k
	if i < 0 {
		i += len(d.buffer)
	}
	return d.buffer[i]
}

// AtFractional reads between At(n) and At(n+1) by linear interpolation.
// pos is clamped to [0, Len()-2].
func (d *Line) AtFractional(pos float64) float64 {
	maxPos := float64(len(d.buffer) - 2)
	if pos > maxPos {
		pos = maxPos
	}
	if pos < 0 {
		pos = 0
	}

	n, f := interp.Split(pos)
	if f == 0 {
		return d.At(n)
	}
	return interp.Linear2(f, d.At(n), d.At(n+1))
}

// Reset clears line state.
func (d *Line) Reset() {
	clear(d.buffer)
	d.writePos = 0
}
