package tone

import (
	"fmt"
)

// ----- Fidelity ----- //

// Fidelity selects how a fixed pitch tone reconciles a fractional period
// length.
type Fidelity int

const (
	// FidelityApproximate tiles a single truncated period.
	FidelityApproximate Fidelity = iota
	// FidelityAccurate tiles a run of periods spanning a whole number of samples.
	FidelityAccurate
	// FidelityExact is a phase-corrected tone. It is not implemented.
	FidelityExact
)

func (f Fidelity) String() string {
	switch f {
	case FidelityApproximate:
		return "approximate"
	case FidelityAccurate:
		return "accurate"
	case FidelityExact:
		return "exact"
	}
	return "unknown"
}

// ParseFidelity ...
func ParseFidelity(s string) (Fidelity, error) {
	switch s {
	case "approximate", "":
		return FidelityApproximate, nil
	case "accurate":
		return FidelityAccurate, nil
	case "exact":
		return FidelityExact, nil
	}
	return 0, fmt.Errorf("tone: unknown fidelity %q", s)
}

// ----- Fixed Pitch ----- //

// FixedPitch assembles tones of a single frequency.
type FixedPitch struct {
	params WaveParams
	osc    *Oscillation
}

// NewFixedPitch ...
func NewFixedPitch(p WaveParams) *FixedPitch {
	p = p.normalized()
	return &FixedPitch{
		params: p,
		osc:    NewOscillation(p),
	}
}

// Params returns the normalized parameters.
func (fp *FixedPitch) Params() WaveParams {
	return fp.params
}

func (fp *FixedPitch) String() string {
	return fmt.Sprintf("A waveform of %s of frequency %vHz, at %d/%vKHz",
		fp.params.Generator.Name, fp.params.Frequency, fp.params.BitDepth, float64(fp.params.SampleRate)/1000)
}

// Tone dispatches to Approximate or Accurate by fidelity.
func (fp *FixedPitch) Tone(req SizeRequest, offset int, fidelity Fidelity) (Buffer, error) {
	switch fidelity {
	case FidelityApproximate:
		return fp.Approximate(req, offset)
	case FidelityAccurate:
		return fp.Accurate(req, offset)
	case FidelityExact:
		return Buffer{}, fmt.Errorf("%w: %s tone", ErrNotImplemented, fidelity)
	}
	return Buffer{}, fmt.Errorf("tone: unknown fidelity %d", int(fidelity))
}

// Approximate tiles a single truncated period, starting offset samples into
// it.
//
// A sample request returns exactly that many samples. A duration request
// returns whole periods only, so it may run past the duration.
func (fp *FixedPitch) Approximate(req SizeRequest, offset int) (Buffer, error) {
	if err := req.validate(); err != nil {
		return Buffer{}, err
	}
	return fp.assemble(req, offset, fp.osc.Approximate())
}

// Accurate is Approximate over the multi-period run from
// Oscillation.Accurate.
func (fp *FixedPitch) Accurate(req SizeRequest, offset int) (Buffer, error) {
	if err := req.validate(); err != nil {
		return Buffer{}, err
	}
	period, err := fp.osc.Accurate()
	if err != nil {
		return Buffer{}, err
	}
	return fp.assemble(req, offset, period)
}

func (fp *FixedPitch) assemble(req SizeRequest, offset int, period []float64) (Buffer, error) {
	if offset < 0 {
		return Buffer{}, fmt.Errorf("%w: %d", ErrNegativeOffset, offset)
	}
	target, err := req.TargetSamples(fp.params.SampleRate)
	if err != nil {
		return Buffer{}, err
	}
	if target > 0 && len(period) == 0 {
		return Buffer{}, fmt.Errorf("%w: %vHz at %dHz", ErrDegeneratePeriod, fp.params.Frequency, fp.params.SampleRate)
	}
	var samples []float64
	if target > 0 {
		period = rotateLeft(period, offset)
		samples = tile(period, copiesFor(target, len(period)))
	}
	if req.exact() {
		samples = samples[:target]
	}
	return Encode(samples, fp.params.BitDepth)
}
