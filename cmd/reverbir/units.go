package main

import (
	"github.com/cwbudde/algo-reverb/dsp/effects/reverb"
)

// controls holds command-line overrides; negative values keep the unit
// default.
type controls struct {
	bandwidth, t60, tail, damping, blend float64
}

func pick(override, def float64) float64 {
	if override < 0 {
		return def
	}
	return override
}

// stereoProcessor renders one block of a mono excitation to two channels.
type stereoProcessor interface {
	Process(in, outL, outR []float64) error
}

// plateX2Mono drives both PlateX2 inputs from one signal.
type plateX2Mono struct {
	*reverb.PlateX2
}

func (p plateX2Mono) Process(in, outL, outR []float64) error {
	return p.PlateX2.Process(in, in, outL, outR)
}

type unitEntry struct {
	name string
	make func(sampleRate float64, ctl controls) (stereoProcessor, error)
}

var registry = []unitEntry{
	{"jvrev", newJVRev},
	{"plate", newPlate},
	{"platex2", newPlateX2},
}

func lookupUnit(name string) (unitEntry, bool) {
	for _, u := range registry {
		if u.name == name {
			return u, true
		}
	}
	return unitEntry{}, false
}

func newJVRev(sampleRate float64, ctl controls) (stereoProcessor, error) {
	r, err := reverb.NewJVRev(sampleRate)
	if err != nil {
		return nil, err
	}

	def := reverb.DefaultJVRevParams()
	r.SetParams(reverb.JVRevParams{
		Bandwidth: pick(ctl.bandwidth, def.Bandwidth),
		T60:       pick(ctl.t60, def.T60),
		Blend:     pick(ctl.blend, def.Blend),
	})

	return r, nil
}

func plateParams(ctl controls, def reverb.PlateParams) reverb.PlateParams {
	return reverb.PlateParams{
		Bandwidth: pick(ctl.bandwidth, def.Bandwidth),
		Tail:      pick(ctl.tail, def.Tail),
		Damping:   pick(ctl.damping, def.Damping),
		Blend:     pick(ctl.blend, def.Blend),
	}
}

func newPlate(sampleRate float64, ctl controls) (stereoProcessor, error) {
	p, err := reverb.NewPlate(sampleRate)
	if err != nil {
		return nil, err
	}
	p.SetParams(plateParams(ctl, reverb.DefaultPlateParams()))
	return p, nil
}

func newPlateX2(sampleRate float64, ctl controls) (stereoProcessor, error) {
	p, err := reverb.NewPlateX2(sampleRate)
	if err != nil {
		return nil, err
	}
	p.SetParams(plateParams(ctl, reverb.DefaultPlateX2Params()))
	return plateX2Mono{p}, nil
}
