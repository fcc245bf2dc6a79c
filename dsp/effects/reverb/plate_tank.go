package reverb

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-reverb/dsp/core"
	"github.com/cwbudde/algo-reverb/dsp/delay"
	"github.com/cwbudde/algo-reverb/dsp/filter/onepole"
)

// Delay lengths of the plate network in seconds: four input diffusers, the
// two modulated tank lattices, then per tank half a line, a lattice and a
// second line.
var plateLengths = [12]float64{
	0.004771345048889486, 0.0035953092974026408,
	0.01273478713752898, 0.0093074829474816042,
	0.022579886428547427, 0.030509727495715868,
	0.14962534861059779, 0.060481838647894894, 0.12499579987231611,
	0.14169550754342933, 0.089244313027116023, 0.10628003091293972,
}

// Output tap offsets in seconds, six per channel.
var plateTaps = [12]float64{
	0.0089378717113000241, 0.099929437854910791, 0.064278754074123853,
	0.067067638856221232, 0.066866032727394914, 0.006283391015086859,
	0.01186116057928161, 0.12187090487550822, 0.041262054366452743,
	0.089815530392123921, 0.070931756325392295, 0.011256342192802662,
}

const (
	// Diffusion coefficients, tuned for a soft attack.
	plateInDiffusion1  = 0.742
	plateInDiffusion2  = 0.712
	plateDecDiffusion1 = 0.723
	plateDecDiffusion2 = 0.729

	plateTapGain = 0.6

	defaultPlateModRateHz = 1.2
	// defaultPlateModWidth is the tap excursion, about 17 samples at 44.1 kHz.
	defaultPlateModWidth = 0.000403221
)

type tankConfig struct {
	modRateHz float64
	modWidthS float64
}

// TankOption configures the plate tank.
type TankOption func(*tankConfig)

// WithModulation sets the rate in Hz and the excursion in seconds of the
// modulated tank lattices. A zero width freezes the taps.
func WithModulation(rateHz, widthSeconds float64) TankOption {
	return func(c *tankConfig) {
		c.modRateHz = rateHz
		c.modWidthS = widthSeconds
	}
}

func applyTankOptions(opts []TankOption) (tankConfig, error) {
	cfg := tankConfig{
		modRateHz: defaultPlateModRateHz,
		modWidthS: defaultPlateModWidth,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if !(cfg.modRateHz >= 0) || !(cfg.modWidthS >= 0) ||
		!core.IsFinite(cfg.modRateHz) || !core.IsFinite(cfg.modWidthS) {
		return cfg, fmt.Errorf("%w: rate=%f width=%f", ErrInvalidModulation, cfg.modRateHz, cfg.modWidthS)
	}

	return cfg, nil
}

// tapSource names what an output tap reads from.
type tapSource interface {
	At(k int) float64
	Len() int
}

// plateTank is the network shared by Plate and PlateX2: a band-limiting
// input filter, four input diffusers, and two tank halves wired as a
// figure-8. Each half's summation point receives the other half's last
// delay line, so the halves decay as one field.
type plateTank struct {
	sampleRate float64
	modRateHz  float64

	bandwidth *onepole.LowPass
	input     [4]*delay.Lattice

	mlattice [2]*delay.ModLattice
	lines    [4]*delay.Line // left: 0, 1; right: 2, 3
	lattice  [2]*delay.Lattice
	damping  [2]*onepole.LowPass

	taps [12]int
}

func newPlateTank(sampleRate float64, opts []TankOption) (*plateTank, error) {
	if !(sampleRate > 0) || !core.IsFinite(sampleRate) {
		return nil, fmt.Errorf("plate: %w: %f", ErrInvalidSampleRate, sampleRate)
	}

	cfg, err := applyTankOptions(opts)
	if err != nil {
		return nil, fmt.Errorf("plate: %w", err)
	}

	samples := func(seconds float64) int { return int(seconds * sampleRate) }

	t := &plateTank{
		sampleRate: sampleRate,
		modRateHz:  cfg.modRateHz,
	}

	if t.bandwidth, err = onepole.New(1); err != nil {
		return nil, fmt.Errorf("plate: %w", err)
	}
	for i := range t.damping {
		if t.damping[i], err = onepole.New(1); err != nil {
			return nil, fmt.Errorf("plate: %w", err)
		}
	}

	for i := range t.input {
		if t.input[i], err = delay.NewLattice(samples(plateLengths[i])); err != nil {
			return nil, fmt.Errorf("plate: input diffuser %d: %w", i, err)
		}
	}

	width := samples(cfg.modWidthS)
	for i := range t.mlattice {
		if t.mlattice[i], err = delay.NewModLattice(samples(plateLengths[4+i]), width); err != nil {
			return nil, fmt.Errorf("plate: modulated lattice %d: %w", i, err)
		}
	}

	lineIdx := [4]int{6, 8, 9, 11}
	for i := range t.lines {
		if t.lines[i], err = delay.New(samples(plateLengths[lineIdx[i]])); err != nil {
			return nil, fmt.Errorf("plate: tank line %d: %w", i, err)
		}
	}

	latticeIdx := [2]int{7, 10}
	for i := range t.lattice {
		if t.lattice[i], err = delay.NewLattice(samples(plateLengths[latticeIdx[i]])); err != nil {
			return nil, fmt.Errorf("plate: tank lattice %d: %w", i, err)
		}
	}

	for i, s := range plateTaps {
		t.taps[i] = samples(s)
	}
	for i, src := range t.tapSources() {
		if t.taps[i] >= src.Len() {
			return nil, fmt.Errorf("plate: %w: tap %d = %d, line length %d", ErrTapOutOfRange, i, t.taps[i], src.Len())
		}
	}

	t.reset()

	return t, nil
}

// tapSources lists the element each output tap reads, in tap order.
func (t *plateTank) tapSources() [12]tapSource {
	return [12]tapSource{
		t.lines[2], t.lines[2], t.lattice[1], t.lines[3], t.lines[0], t.lattice[0],
		t.lines[0], t.lines[0], t.lattice[0], t.lines[1], t.lines[2], t.lattice[1],
	}
}

// reset clears all state and restarts the modulation, the right half a
// quarter period behind the left.
func (t *plateTank) reset() {
	t.bandwidth.Reset()
	for _, l := range t.input {
		l.Reset()
	}
	for i := range 2 {
		t.mlattice[i].Reset()
		t.lattice[i].Reset()
		t.damping[i].Reset()
	}
	for _, l := range t.lines {
		l.Reset()
	}

	t.mlattice[0].SetRate(t.modRateHz, t.sampleRate, 0)
	t.mlattice[1].SetRate(t.modRateHz, t.sampleRate, 0.5*math.Pi)
}

// setDamping sets the damping filter coefficient of both halves.
func (t *plateTank) setDamping(a float64) {
	t.damping[0].Set(a)
	t.damping[1].Set(a)
}

// process runs one sample through the tank and returns the left and right
// wet outputs. decay is the loop gain applied twice per half.
func (t *plateTank) process(x, decay float64) (float64, float64) {
	x = t.bandwidth.Process(x)

	x = t.input[0].Process(x, plateInDiffusion1)
	x = t.input[1].Process(x, plateInDiffusion1)
	x = t.input[2].Process(x, plateInDiffusion2)
	x = t.input[3].Process(x, plateInDiffusion2)

	// summation points, each fed by the opposite half
	xl := x + decay*t.lines[3].Get()
	xr := x + decay*t.lines[1].Get()

	xl = t.mlattice[0].Process(xl, plateDecDiffusion1)
	xl = t.lines[0].PutGet(xl)
	xl = t.damping[0].Process(xl)
	xl *= decay
	xl = t.lattice[0].Process(xl, plateDecDiffusion2)
	t.lines[1].Put(xl)

	xr = t.mlattice[1].Process(xr, plateDecDiffusion1)
	xr = t.lines[2].PutGet(xr)
	xr = t.damping[1].Process(xr)
	xr *= decay
	xr = t.lattice[1].Process(xr, plateDecDiffusion2)
	t.lines[3].Put(xr)

	tap := &t.taps

	l := t.lines[2].At(tap[0]) +
		t.lines[2].At(tap[1]) -
		t.lattice[1].At(tap[2]) +
		t.lines[3].At(tap[3]) -
		t.lines[0].At(tap[4]) +
		t.lattice[0].At(tap[5])

	r := t.lines[0].At(tap[6]) +
		t.lines[0].At(tap[7]) -
		t.lattice[0].At(tap[8]) +
		t.lines[1].At(tap[9]) -
		t.lines[2].At(tap[10]) +
		t.lattice[1].At(tap[11])

	return plateTapGain * l, plateTapGain * r
}
