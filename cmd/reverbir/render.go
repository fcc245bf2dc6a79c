package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-reverb/dsp/core"
	"github.com/cwbudde/algo-reverb/measure/ir"
)

const (
	colorationFFTSize = 16384
	colorationLoHz    = 100
	colorationHiHz    = 10000
)

type result struct {
	unit        string
	left, right []float64
	metrics     ir.Metrics
	coloration  float64
}

// renderAll renders every unit concurrently. Each goroutine owns its unit.
func renderAll(cfg core.ProcessorConfig, frames int, units []unitEntry, ctl controls) ([]result, error) {
	results := make([]result, len(units))

	var g errgroup.Group
	for i, u := range units {
		g.Go(func() error {
			p, err := u.make(cfg.SampleRate, ctl)
			if err != nil {
				return fmt.Errorf("%s: %w", u.name, err)
			}

			left, right, err := renderImpulse(p, cfg, frames)
			if err != nil {
				return fmt.Errorf("%s: %w", u.name, err)
			}

			r, err := measure(cfg.SampleRate, left, right)
			if err != nil {
				return fmt.Errorf("%s: %w", u.name, err)
			}
			r.unit = u.name
			results[i] = r

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// renderImpulse feeds a unit impulse through p block by block.
func renderImpulse(p stereoProcessor, cfg core.ProcessorConfig, frames int) ([]float64, []float64, error) {
	left := make([]float64, frames)
	right := make([]float64, frames)
	in := make([]float64, cfg.BlockSize)

	for b := range cfg.Blocks(frames) {
		start := b * cfg.BlockSize
		end := min(start+cfg.BlockSize, frames)
		n := end - start

		clear(in)
		if b == 0 {
			in[0] = 1
		}

		if err := p.Process(in[:n], left[start:end], right[start:end]); err != nil {
			return nil, nil, err
		}
	}

	return left, right, nil
}

// measure analyzes the left channel past its first sample, which carries
// the dry impulse.
func measure(sampleRate float64, left, right []float64) (result, error) {
	r := result{left: left, right: right}
	if len(left) < 2 {
		return r, ir.ErrEmptyIR
	}

	wet := left[1:]

	m, err := ir.NewAnalyzer(sampleRate).Analyze(wet)
	if err != nil {
		return r, err
	}
	r.metrics = m

	mag, err := ir.MagnitudeResponse(wet, colorationFFTSize)
	if err != nil {
		return r, err
	}

	binHz := sampleRate / colorationFFTSize
	lo := int(colorationLoHz / binHz)
	hi := int(colorationHiHz/binHz) + 1
	if dev, err := ir.SpectralDeviation(mag, lo, hi); err == nil {
		r.coloration = dev
	}

	return r, nil
}

func printMetrics(w io.Writer, sampleRate float64, results []result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Unit\tRT60 [s]\tEDT [s]\tT20 [s]\tC80 [dB]\tCenter [ms]\tPeak [ms]\tColoration [dB]\n")
	fmt.Fprintf(tw, "----\t--------\t-------\t-------\t--------\t-----------\t---------\t---------------\n")

	for _, r := range results {
		m := r.metrics
		fmt.Fprintf(tw, "%s\t%.3f\t%.3f\t%.3f\t%.2f\t%.1f\t%.1f\t%.2f\n",
			r.unit,
			m.RT60,
			m.EDT,
			m.T20,
			m.C80,
			1000*m.CenterTime,
			1000*float64(m.PeakIndex+1)/sampleRate,
			r.coloration,
		)
	}

	return tw.Flush()
}
