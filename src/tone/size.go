package tone

import (
	"fmt"
	"math"
)

// SizeRequest asks for a buffer by duration or by sample count. Exactly one
// of the fields must be non-zero.
//
// A duration request is an "at least" request: assemblers may return more
// samples than the duration covers. A sample request is exact for fixed
// pitch tones and silence.
type SizeRequest struct {
	Duration float64 // ms
	Samples  int
}

// MaxSamples is the largest sample count a request may resolve to.
const MaxSamples = math.MaxInt32

// Duration requests ms milliseconds.
func Duration(ms float64) SizeRequest {
	return SizeRequest{Duration: ms}
}

// Samples requests n samples.
func Samples(n int) SizeRequest {
	return SizeRequest{Samples: n}
}

func (r SizeRequest) validate() error {
	if r.Duration < 0 || r.Samples < 0 || math.IsNaN(r.Duration) || math.IsInf(r.Duration, 0) || r.Samples > MaxSamples {
		return fmt.Errorf("%w: duration=%v samples=%d", ErrInvalidSize, r.Duration, r.Samples)
	}
	if (r.Duration != 0) == (r.Samples != 0) {
		return fmt.Errorf("%w: duration=%v samples=%d", ErrAmbiguousSize, r.Duration, r.Samples)
	}
	return nil
}

// exact reports whether the request names a sample count.
func (r SizeRequest) exact() bool {
	return r.Samples != 0
}

// TargetSamples returns the number of samples the request asks for at
// sampleRate: floor(duration * sampleRate / 1000) for durations. Targets
// above MaxSamples fail with ErrInvalidSize.
func (r SizeRequest) TargetSamples(sampleRate int) (int, error) {
	if err := r.validate(); err != nil {
		return 0, err
	}
	if r.exact() {
		return r.Samples, nil
	}
	target := math.Floor(r.Duration * float64(sampleRate) / 1000)
	if target > MaxSamples {
		return 0, fmt.Errorf("%w: %vms at %dHz exceeds %d samples", ErrInvalidSize, r.Duration, sampleRate, MaxSamples)
	}
	return int(target), nil
}

func (r SizeRequest) String() string {
	if r.exact() {
		return fmt.Sprintf("%d samples", r.Samples)
	}
	return fmt.Sprintf("%vms", r.Duration)
}
