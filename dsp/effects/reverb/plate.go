package reverb

import (
	"fmt"

	"github.com/cwbudde/algo-reverb/dsp/core"
)

// PlateParams are the Plate and PlateX2 controls, each 0..1.
type PlateParams struct {
	Bandwidth float64 // input band limit, 1 is open
	Tail      float64 // tank loop gain
	Damping   float64 // high-frequency loss per tank pass
	Blend     float64 // dry/wet blend
}

// plateControls locates the four controls in a unit's port table.
type plateControls struct {
	ports                           []Port
	bandwidth, tail, damping, blend int
}

var (
	plateMonoControls = plateControls{
		ports: platePorts[:], bandwidth: plateBandwidth, tail: plateTail,
		damping: plateDamping, blend: plateBlend,
	}
	plateStereoControls = plateControls{
		ports: plateX2Ports[:], bandwidth: plateX2Bandwidth, tail: plateX2Tail,
		damping: plateX2Damping, blend: plateX2Blend,
	}
)

func (c plateControls) defaults() PlateParams {
	return PlateParams{
		Bandwidth: c.ports[c.bandwidth].Default,
		Tail:      c.ports[c.tail].Default,
		Damping:   c.ports[c.damping].Default,
		Blend:     c.ports[c.blend].Default,
	}
}

func (c plateControls) clamp(p PlateParams) PlateParams {
	return PlateParams{
		Bandwidth: c.ports[c.bandwidth].Clamp(p.Bandwidth),
		Tail:      c.ports[c.tail].Clamp(p.Tail),
		Damping:   c.ports[c.damping].Clamp(p.Damping),
		Blend:     c.ports[c.blend].Clamp(p.Blend),
	}
}

// DefaultPlateParams returns the Plate port defaults.
func DefaultPlateParams() PlateParams { return plateMonoControls.defaults() }

// DefaultPlateX2Params returns the PlateX2 port defaults.
func DefaultPlateX2Params() PlateParams { return plateStereoControls.defaults() }

// plateUnit holds what Plate and PlateX2 share: the tank, the controls and
// the gains derived from them.
type plateUnit struct {
	tank     *plateTank
	controls plateControls
	exponent float64
	guard    core.DenormalGuard

	params     PlateParams
	decay      float64
	blend      float64
	dry        float64
	addingGain float64
}

func newPlateUnit(sampleRate float64, controls plateControls, exponent float64, opts []TankOption) (plateUnit, error) {
	tank, err := newPlateTank(sampleRate, opts)
	if err != nil {
		return plateUnit{}, err
	}

	u := plateUnit{
		tank:       tank,
		controls:   controls,
		exponent:   exponent,
		guard:      core.NewDenormalGuard(),
		params:     controls.defaults(),
		addingGain: 1,
	}
	u.updateCoefficients()

	return u, nil
}

// SampleRate returns the rate the tank was built for.
func (u *plateUnit) SampleRate() float64 { return u.tank.sampleRate }

// Params returns the current, clamped controls.
func (u *plateUnit) Params() PlateParams { return u.params }

// SetParams stores new controls for the next block. Values are clamped to
// the port ranges.
func (u *plateUnit) SetParams(p PlateParams) { u.params = u.controls.clamp(p) }

// SetAddingGain sets the gain ProcessAdding mixes with.
func (u *plateUnit) SetAddingGain(g float64) { u.addingGain = g }

// Reset clears the tank and restarts its modulation.
func (u *plateUnit) Reset() {
	u.tank.reset()
	u.guard.Reset()
	u.updateCoefficients()
}

func (u *plateUnit) updateCoefficients() {
	u.tank.bandwidth.Set(bandwidthCoefficient(u.params.Bandwidth))
	u.tank.setDamping(dampingCoefficient(u.params.Damping))

	u.decay = plateDecay(u.params.Tail)
	u.blend = plateBlendGain(u.params.Blend, u.exponent)
	u.dry = 1 - u.blend
}

// Plate is a mono-in, stereo-out plate reverb after Dattorro.
type Plate struct {
	plateUnit
}

// NewPlate builds a Plate for sampleRate. The unit starts cleared with
// default controls.
func NewPlate(sampleRate float64, opts ...TankOption) (*Plate, error) {
	u, err := newPlateUnit(sampleRate, plateMonoControls, plateBlendExponent, opts)
	if err != nil {
		return nil, err
	}
	return &Plate{plateUnit: u}, nil
}

// Process renders one block, overwriting outL and outR.
func (p *Plate) Process(in, outL, outR []float64) error {
	return p.cycle(in, outL, outR, core.Store)
}

// ProcessAdding renders one block, mixing into outL and outR scaled by the
// adding gain.
func (p *Plate) ProcessAdding(in, outL, outR []float64) error {
	return p.cycle(in, outL, outR, core.Accumulate)
}

func (p *Plate) cycle(in, outL, outR []float64, yield core.YieldFunc) error {
	if len(outL) != len(in) || len(outR) != len(in) {
		return fmt.Errorf("%w: in=%d out.l=%d out.r=%d", ErrBufferLength, len(in), len(outL), len(outR))
	}

	p.updateCoefficients()

	decay, blend, dry, gain := p.decay, p.blend, p.dry, p.addingGain

	for i, s := range in {
		xl, xr := p.tank.process(s+p.guard.Next(s), decay)

		x := dry * s
		yield(outL, i, x+blend*xl, gain)
		yield(outR, i, x+blend*xr, gain)
	}

	return nil
}

// PlateX2 is the stereo-in variant of Plate. Both inputs are summed to mono
// before the tank; each output mixes its own dry input.
type PlateX2 struct {
	plateUnit
}

// NewPlateX2 builds a PlateX2 for sampleRate. The unit starts cleared with
// default controls.
func NewPlateX2(sampleRate float64, opts ...TankOption) (*PlateX2, error) {
	u, err := newPlateUnit(sampleRate, plateStereoControls, plateX2BlendExponent, opts)
	if err != nil {
		return nil, err
	}
	return &PlateX2{plateUnit: u}, nil
}

// Process renders one block, overwriting outL and outR.
func (p *PlateX2) Process(inL, inR, outL, outR []float64) error {
	return p.cycle(inL, inR, outL, outR, core.Store)
}

// ProcessAdding renders one block, mixing into outL and outR scaled by the
// adding gain.
func (p *PlateX2) ProcessAdding(inL, inR, outL, outR []float64) error {
	return p.cycle(inL, inR, outL, outR, core.Accumulate)
}

func (p *PlateX2) cycle(inL, inR, outL, outR []float64, yield core.YieldFunc) error {
	n := len(inL)
	if len(inR) != n || len(outL) != n || len(outR) != n {
		return fmt.Errorf("%w: in.l=%d in.r=%d out.l=%d out.r=%d",
			ErrBufferLength, n, len(inR), len(outL), len(outR))
	}

	p.updateCoefficients()

	decay, blend, dry, gain := p.decay, p.blend, p.dry, p.addingGain

	for i := range n {
		l, r := inL[i], inR[i]
		s := l + r
		xl, xr := p.tank.process(0.5*(s+p.guard.Next(s)), decay)

		yield(outL, i, blend*xl+dry*l, gain)
		yield(outR, i, blend*xr+dry*r, gain)
	}

	return nil
}
