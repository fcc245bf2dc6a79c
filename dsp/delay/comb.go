package delay

import "math"

// Comb is a feedback comb filter whose loop gain is chosen so the
// recirculating energy falls 60 dB after a given time, independent of the
// comb's length.
type Comb struct {
	line     *Line
	feedback float64
}

// NewComb returns a comb of the given length in samples.
func NewComb(length int) (*Comb, error) {
	line, err := New(length)
	if err != nil {
		return nil, err
	}
	return &Comb{line: line}, nil
}

// Len returns the comb length in samples.
func (c *Comb) Len() int { return c.line.Len() }

// Feedback returns the loop gain.
func (c *Comb) Feedback() float64 { return c.feedback }

// SetFeedback sets the loop gain directly. |g| < 1 keeps the comb stable.
func (c *Comb) SetFeedback(g float64) { c.feedback = g }

// SetDecay derives the loop gain from a decay time in seconds:
// g = 10^(-3*L/(t60*fs)). t60 is floored at MinT60.
func (c *Comb) SetDecay(t60, sampleRate float64) {
	c.feedback = DecayGain(c.line.Len(), t60, sampleRate)
}

// Process runs one sample through the comb.
func (c *Comb) Process(x float64) float64 {
	x += c.feedback * c.line.Get()
	c.line.Put(x)
	return x
}

// Reset clears the delay memory; the loop gain is kept.
func (c *Comb) Reset() { c.line.Reset() }

// MinT60 is the smallest decay time used for gain derivation.
const MinT60 = 0.00001

// DecayGain returns the per-pass gain of a length-sample loop whose energy
// must fall 60 dB in t60 seconds.
func DecayGain(length int, t60, sampleRate float64) float64 {
	t60 = math.Max(MinT60, t60)
	return math.Pow(10, -3*float64(length)/(t60*sampleRate))
}
