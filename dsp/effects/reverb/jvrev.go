package reverb

import (
	"fmt"

	"github.com/cwbudde/algo-reverb/dsp/core"
	"github.com/cwbudde/algo-reverb/dsp/delay"
	"github.com/cwbudde/algo-reverb/dsp/filter/onepole"
)

const (
	jvrevCombs     = 4
	jvrevAllpasses = 3

	// jvrevDiffusion is the allpass coefficient magnitude.
	jvrevDiffusion = 0.7
)

// jvrevNominal holds the 44.1 kHz delay lengths: four combs, three
// allpasses, then the left and right output lines. Slightly detuned from
// the classic STK set to balance the stereo image.
var jvrevNominal = [...]int{1777, 1847, 1993, 2137, 389, 127, 43, 211, 209}

// JVRevParams are the JVRev controls.
type JVRevParams struct {
	Bandwidth float64 // input bandwidth, 0..1
	T60       float64 // decay time in seconds, 0..5.6
	Blend     float64 // dry/wet blend, 0..1
}

// DefaultJVRevParams returns the port defaults.
func DefaultJVRevParams() JVRevParams {
	return JVRevParams{
		Bandwidth: jvrevPorts[jvrevBandwidth].Default,
		T60:       jvrevPorts[jvrevT60].Default,
		Blend:     jvrevPorts[jvrevBlend].Default,
	}
}

// JVRev is a mono-in, stereo-out Schroeder/Moorer reverb.
//
// The input is band limited, diffused by three series allpasses and fed to
// four parallel combs whose gains are derived from a shared t60, so every
// comb dies away at the same rate whatever its length. The comb sum reaches
// each output through its own delay line for stereo decorrelation.
type JVRev struct {
	sampleRate float64
	lengths    [len(jvrevNominal)]int

	bandwidth *onepole.LowPass
	allpass   [jvrevAllpasses]*delay.Allpass
	comb      [jvrevCombs]*delay.Comb
	left      *delay.Line
	right     *delay.Line
	guard     core.DenormalGuard

	params     JVRevParams
	t60        float64 // t60 the comb gains were derived for
	wet        float64
	dry        float64
	addingGain float64
}

// NewJVRev allocates and tunes a JVRev for sampleRate. The unit starts
// cleared with default controls.
func NewJVRev(sampleRate float64) (*JVRev, error) {
	lengths, err := TuneLengths(jvrevNominal[:], sampleRate)
	if err != nil {
		return nil, fmt.Errorf("jvrev: %w", err)
	}

	r := &JVRev{
		sampleRate: sampleRate,
		guard:      core.NewDenormalGuard(),
		params:     DefaultJVRevParams(),
		addingGain: 1,
	}
	copy(r.lengths[:], lengths)

	r.bandwidth, err = onepole.New(1)
	if err != nil {
		return nil, fmt.Errorf("jvrev: %w", err)
	}

	for i := range r.comb {
		r.comb[i], err = delay.NewComb(r.lengths[i])
		if err != nil {
			return nil, fmt.Errorf("jvrev: comb %d: %w", i, err)
		}
	}

	for i := range r.allpass {
		r.allpass[i], err = delay.NewAllpass(r.lengths[jvrevCombs+i])
		if err != nil {
			return nil, fmt.Errorf("jvrev: allpass %d: %w", i, err)
		}
	}

	if r.left, err = delay.New(r.lengths[7]); err != nil {
		return nil, fmt.Errorf("jvrev: left line: %w", err)
	}
	if r.right, err = delay.New(r.lengths[8]); err != nil {
		return nil, fmt.Errorf("jvrev: right line: %w", err)
	}

	r.Reset()

	return r, nil
}

// SampleRate returns the rate the delay network was tuned for.
func (r *JVRev) SampleRate() float64 { return r.sampleRate }

// Lengths returns the tuned delay lengths in the order of the nominal
// table: combs, allpasses, left, right.
func (r *JVRev) Lengths() []int { return append([]int(nil), r.lengths[:]...) }

// Params returns the current, clamped controls.
func (r *JVRev) Params() JVRevParams { return r.params }

// SetParams stores new controls for the next block. Values are clamped to
// the port ranges.
func (r *JVRev) SetParams(p JVRevParams) {
	r.params = JVRevParams{
		Bandwidth: jvrevPorts[jvrevBandwidth].Clamp(p.Bandwidth),
		T60:       jvrevPorts[jvrevT60].Clamp(p.T60),
		Blend:     jvrevPorts[jvrevBlend].Clamp(p.Blend),
	}
}

// SetAddingGain sets the gain ProcessAdding mixes with.
func (r *JVRev) SetAddingGain(g float64) { r.addingGain = g }

// Reset clears all delay and filter state and rederives the comb gains from
// the current t60.
func (r *JVRev) Reset() {
	r.bandwidth.Reset()
	for _, a := range r.allpass {
		a.Reset()
	}
	for _, c := range r.comb {
		c.Reset()
	}
	r.left.Reset()
	r.right.Reset()
	r.guard.Reset()

	r.setT60(r.params.T60)
	r.updateCoefficients()
}

// Process renders one block, overwriting outL and outR. All three slices
// must have the same length; in may alias either output.
func (r *JVRev) Process(in, outL, outR []float64) error {
	return r.cycle(in, outL, outR, core.Store)
}

// ProcessAdding renders one block, mixing into the existing content of outL
// and outR scaled by the adding gain.
func (r *JVRev) ProcessAdding(in, outL, outR []float64) error {
	return r.cycle(in, outL, outR, core.Accumulate)
}

func (r *JVRev) setT60(t60 float64) {
	r.t60 = t60
	for _, c := range r.comb {
		c.SetDecay(t60, r.sampleRate)
	}
}

// updateCoefficients maps the controls to filter coefficients. The comb
// gains follow t60 only when it moved.
func (r *JVRev) updateCoefficients() {
	r.bandwidth.Set(bandwidthCoefficient(r.params.Bandwidth))

	if r.params.T60 != r.t60 {
		r.setT60(r.params.T60)
	}

	r.wet = jvrevWet(r.params.Blend)
	r.dry = 1 - r.wet
}

func (r *JVRev) cycle(in, outL, outR []float64, yield core.YieldFunc) error {
	if len(outL) != len(in) || len(outR) != len(in) {
		return fmt.Errorf("%w: in=%d out.l=%d out.r=%d", ErrBufferLength, len(in), len(outL), len(outR))
	}

	r.updateCoefficients()

	wet, dry, gain := r.wet, r.dry, r.addingGain
	apc := -jvrevDiffusion

	for i, s := range in {
		n := r.guard.Next(s)
		a := r.bandwidth.Process(s + n)
		x := s * dry

		a = r.allpass[0].Process(a, apc)
		a = r.allpass[1].Process(a, apc)
		a = r.allpass[2].Process(a, apc)
		a -= n

		var t float64
		for _, c := range r.comb {
			t += c.Process(a)
		}

		yield(outL, i, x+wet*r.left.PutGet(t), gain)
		yield(outR, i, x+wet*r.right.PutGet(t), gain)
	}

	return nil
}
