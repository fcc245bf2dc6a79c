package main

import (
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const wavBitDepth = 16

// writeWAV writes an interleaved 16-bit stereo PCM file. Samples are
// clipped to [-1, 1].
func writeWAV(path string, sampleRate int, left, right []float64) error {
	if len(left) != len(right) {
		return fmt.Errorf("wav: channel lengths differ: %d != %d", len(left), len(right))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("wav: %w", err)
	}

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 2, SampleRate: sampleRate},
		Data:           interleavePCM16(left, right),
		SourceBitDepth: wavBitDepth,
	}

	enc := wav.NewEncoder(f, sampleRate, wavBitDepth, 2, 1)
	if err := enc.Write(buf); err != nil {
		_ = f.Close()
		return fmt.Errorf("wav: write %s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		_ = f.Close()
		return fmt.Errorf("wav: finalize %s: %w", path, err)
	}

	return f.Close()
}

func interleavePCM16(left, right []float64) []int {
	out := make([]int, 2*len(left))
	for i := range left {
		out[2*i] = toPCM16(left[i])
		out[2*i+1] = toPCM16(right[i])
	}
	return out
}

func toPCM16(x float64) int {
	x = math.Max(-1, math.Min(1, x))
	return int(math.Round(x * math.MaxInt16))
}
