// Package pcm converts tone buffers into the sample layouts expected by
// audio outputs.
package pcm

import (
	"fmt"
	"math"

	"github.com/jinjor/tonegen/src/tone"
)

// Normalize scales the samples of b into [-1, 1] relative to the range of
// bitDepth bits. Samples that wrapped around in their container stay wrapped.
func Normalize(b tone.Buffer, bitDepth int) []float64 {
	max := math.Pow(2, float64(bitDepth)) / 2
	out := make([]float64, b.Len())
	for i := range out {
		out[i] = math.Min(math.Max(float64(b.At(i))/max, -1), 1)
	}
	return out
}

// Bytes interleaves b into channels identical channels of bytesPerSample
// bytes each. One byte is unsigned 8-bit, two bytes are signed 16-bit
// little endian.
func Bytes(b tone.Buffer, bitDepth int, channels int, bytesPerSample int) ([]byte, error) {
	if bytesPerSample != 1 && bytesPerSample != 2 {
		return nil, fmt.Errorf("pcm: %d bytes per sample is not supported", bytesPerSample)
	}
	if channels < 1 {
		return nil, fmt.Errorf("pcm: invalid number of channels %d", channels)
	}
	values := Normalize(b, bitDepth)
	frame := bytesPerSample * channels
	buf := make([]byte, len(values)*frame)
	for ch := 0; ch < channels; ch++ {
		writeBuffer(values, buf, ch, bytesPerSample, channels)
	}
	return buf, nil
}

func writeBuffer(values []float64, buf []byte, ch int, bytesPerSample int, channels int) {
	frame := bytesPerSample * channels
	for i, value := range values {
		switch bytesPerSample {
		case 1:
			const max = 127
			b := int(value * max)
			buf[frame*i+ch] = byte(b + 128)
		case 2:
			const max = 32767
			b := int16(value * max)
			buf[frame*i+2*ch] = byte(b)
			buf[frame*i+2*ch+1] = byte(b >> 8)
		}
	}
}
