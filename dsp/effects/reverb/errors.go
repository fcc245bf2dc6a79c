package reverb

import "errors"

// Errors returned by reverb constructors and block processing.
var (
	ErrInvalidSampleRate = errors.New("reverb: sample rate must be positive and finite")
	ErrInvalidLength     = errors.New("reverb: nominal delay length must be > 0")
	ErrNoPrime           = errors.New("reverb: no prime delay length within search bound")
	ErrTapOutOfRange     = errors.New("reverb: output tap exceeds its delay line")
	ErrInvalidModulation = errors.New("reverb: modulation rate and width must be >= 0")
	ErrBufferLength      = errors.New("reverb: input and output buffers differ in length")
)
