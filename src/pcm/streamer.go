package pcm

import (
	"fmt"

	"github.com/faiface/beep"
	"github.com/jinjor/tonegen/src/tone"
)

// Streamer plays a tone buffer as a mono beep stream.
type Streamer struct {
	samples []float64
	pos     int
}

var _ beep.StreamSeeker = (*Streamer)(nil)

// NewStreamer ...
func NewStreamer(b tone.Buffer, bitDepth int) *Streamer {
	return &Streamer{samples: Normalize(b, bitDepth)}
}

// Stream copies the next samples into both channels.
func (s *Streamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= len(s.samples) {
		return 0, false
	}
	for i := range samples {
		if s.pos >= len(s.samples) {
			break
		}
		v := s.samples[s.pos]
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
		n++
	}
	return n, true
}

// Err ...
func (s *Streamer) Err() error {
	return nil
}

// Len returns the number of samples.
func (s *Streamer) Len() int {
	return len(s.samples)
}

// Position returns the index of the next sample.
func (s *Streamer) Position() int {
	return s.pos
}

// Seek ...
func (s *Streamer) Seek(p int) error {
	if p < 0 || p > len(s.samples) {
		return fmt.Errorf("pcm: seek position %d out of range [0, %d]", p, len(s.samples))
	}
	s.pos = p
	return nil
}

// Format returns a beep format for a mono tone at sampleRate, with the
// precision beep's encoders can store for bitDepth (at most three bytes).
func Format(sampleRate int, bitDepth int) beep.Format {
	precision := (bitDepth + 7) / 8
	if precision > 3 {
		precision = 3
	}
	if precision < 1 {
		precision = 1
	}
	return beep.Format{
		SampleRate:  beep.SampleRate(sampleRate),
		NumChannels: 1,
		Precision:   precision,
	}
}
