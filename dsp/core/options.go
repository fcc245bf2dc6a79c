package core

import "math"

// ProcessorConfig defines common DSP processing settings.
type ProcessorConfig struct {
	SampleRate float64
	BlockSize  int
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns the reference rate the reverb tunings were
// made at and a typical host block size.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate: 44100,
		BlockSize:  256,
	}
}

// WithSampleRate sets the processing sample rate.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 && IsFinite(sampleRate) {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithBlockSize sets the processing block size.
func WithBlockSize(blockSize int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if blockSize > 0 {
			cfg.BlockSize = blockSize
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Frames converts a duration in seconds to a whole number of frames,
// rounding up so the requested span is always covered.
func (c ProcessorConfig) Frames(seconds float64) int {
	if seconds <= 0 || c.SampleRate <= 0 {
		return 0
	}
	return int(math.Ceil(seconds * c.SampleRate))
}

// Blocks returns the number of BlockSize blocks needed for frames samples.
func (c ProcessorConfig) Blocks(frames int) int {
	if frames <= 0 || c.BlockSize <= 0 {
		return 0
	}
	return (frames + c.BlockSize - 1) / c.BlockSize
}
