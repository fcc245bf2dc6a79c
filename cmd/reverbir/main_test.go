package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-reverb/dsp/core"
	"github.com/cwbudde/algo-reverb/internal/testutil"
)

func TestResolveUnits(t *testing.T) {
	all, err := resolveUnits(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != len(registry) {
		t.Fatalf("got %d units, want %d", len(all), len(registry))
	}

	some, err := resolveUnits([]string{" Plate ", "jvrev"})
	if err != nil {
		t.Fatal(err)
	}
	if len(some) != 2 || some[0].name != "plate" || some[1].name != "jvrev" {
		t.Fatalf("resolved %+v", some)
	}

	if _, err := resolveUnits([]string{"hall"}); err == nil {
		t.Fatal("expected error for unknown unit")
	}
}

func TestRenderImpulseBlockSizeInvariant(t *testing.T) {
	const frames = 5000

	for _, u := range registry {
		t.Run(u.name, func(t *testing.T) {
			var ref []float64
			for _, block := range []int{64, 256, 1000, frames} {
				cfg := core.ApplyProcessorOptions(core.WithSampleRate(44100), core.WithBlockSize(block))

				p, err := u.make(cfg.SampleRate, controls{-1, -1, -1, -1, -1})
				if err != nil {
					t.Fatal(err)
				}
				left, right, err := renderImpulse(p, cfg, frames)
				if err != nil {
					t.Fatal(err)
				}
				if len(left) != frames || len(right) != frames {
					t.Fatalf("block %d: rendered %d/%d frames", block, len(left), len(right))
				}

				if ref == nil {
					ref = left
					continue
				}
				testutil.RequireSliceNearlyEqual(t, left, ref, 0)
			}
		})
	}
}

func TestRenderAll(t *testing.T) {
	cfg := core.ApplyProcessorOptions(core.WithSampleRate(22050), core.WithBlockSize(128))
	ctl := controls{bandwidth: -1, t60: 1, tail: 0.6, damping: -1, blend: 1}

	results, err := renderAll(cfg, cfg.Frames(3), registry, ctl)
	if err != nil {
		t.Fatal(err)
	}

	for i, r := range results {
		if r.unit != registry[i].name {
			t.Fatalf("result %d is %q, want %q", i, r.unit, registry[i].name)
		}
		testutil.RequireFinite(t, r.left)
		testutil.RequireFinite(t, r.right)
		if !(r.metrics.RT60 > 0) {
			t.Errorf("%s: RT60 = %v, want > 0", r.unit, r.metrics.RT60)
		}
	}

	var out bytes.Buffer
	if err := printMetrics(&out, cfg.SampleRate, results); err != nil {
		t.Fatal(err)
	}
	for _, u := range registry {
		if !strings.Contains(out.String(), u.name) {
			t.Errorf("table lacks %s:\n%s", u.name, out.String())
		}
	}
}

func TestWriteWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ir.wav")
	left := []float64{0, 0.5, -0.5, 2}
	right := []float64{1, -1, 0.25, -3}

	if err := writeWAV(path, 48000, left, right); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		t.Fatal(err)
	}
	if dec.SampleRate != 48000 || dec.NumChans != 2 || dec.BitDepth != 16 {
		t.Fatalf("format = %d Hz, %d ch, %d bit", dec.SampleRate, dec.NumChans, dec.BitDepth)
	}

	want := []int{0, 32767, 16384, -32767, -16384, 8192, 32767, -32767}
	if len(buf.Data) != len(want) {
		t.Fatalf("got %d samples, want %d", len(buf.Data), len(want))
	}
	for i := range want {
		if buf.Data[i] != want[i] {
			t.Fatalf("sample %d = %d, want %d", i, buf.Data[i], want[i])
		}
	}

	if err := writeWAV(path, 48000, left, right[:1]); err == nil {
		t.Fatal("expected error for mismatched channels")
	}
}
