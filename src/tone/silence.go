package tone

import "fmt"

// ----- Silence ----- //

// Silence produces zero-filled buffers.
type Silence struct {
	params SilenceParams
}

// NewSilence ...
func NewSilence(p SilenceParams) *Silence {
	return &Silence{params: p.normalized()}
}

// Params returns the normalized parameters.
func (s *Silence) Params() SilenceParams {
	return s.params
}

func (s *Silence) String() string {
	return fmt.Sprintf("A waveform of silence at %d/%vKHz", s.params.BitDepth, float64(s.params.SampleRate)/1000)
}

// Accurate returns exactly the requested number of zero samples.
func (s *Silence) Accurate(req SizeRequest) (Buffer, error) {
	target, err := req.TargetSamples(s.params.SampleRate)
	if err != nil {
		return Buffer{}, err
	}
	return zeros(target, s.params.BitDepth)
}

// Approximate is Accurate; silence has no period to approximate.
func (s *Silence) Approximate(req SizeRequest) (Buffer, error) {
	return s.Accurate(req)
}
