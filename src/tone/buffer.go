package tone

import "math"

// ----- Buffer ----- //

// Buffer holds signed integer samples in one of four container widths.
// Exactly one of the backing slices is in use, selected by Width. A
// Buffer is never modified after it is returned; the slices handed out by
// the accessors share its storage and must be treated as read-only.
type Buffer struct {
	width int
	i8    []int8
	i16   []int16
	i32   []int32
	i64   []int64
}

// ContainerWidth returns the narrowest of 8, 16, 32 or 64 bits that holds
// bitDepth bits.
func ContainerWidth(bitDepth int) (int, error) {
	switch {
	case bitDepth < 1:
		return 0, &UnsupportedBitDepthError{BitDepth: bitDepth}
	case bitDepth <= 8:
		return 8, nil
	case bitDepth <= 16:
		return 16, nil
	case bitDepth <= 32:
		return 32, nil
	case bitDepth <= 64:
		return 64, nil
	default:
		return 0, &UnsupportedBitDepthError{BitDepth: bitDepth}
	}
}

// Encode stores values in the container chosen for bitDepth. Values are
// expected to be rounded already and are not clamped: anything outside the
// container range wraps modulo 2^width, so +2^(width-1) becomes the
// container minimum.
func Encode(values []float64, bitDepth int) (Buffer, error) {
	width, err := ContainerWidth(bitDepth)
	if err != nil {
		return Buffer{}, err
	}
	b := Buffer{width: width}
	switch width {
	case 8:
		b.i8 = make([]int8, len(values))
		for i, v := range values {
			b.i8[i] = int8(toInt64(v))
		}
	case 16:
		b.i16 = make([]int16, len(values))
		for i, v := range values {
			b.i16[i] = int16(toInt64(v))
		}
	case 32:
		b.i32 = make([]int32, len(values))
		for i, v := range values {
			b.i32[i] = int32(toInt64(v))
		}
	case 64:
		b.i64 = make([]int64, len(values))
		for i, v := range values {
			b.i64[i] = toInt64(v)
		}
	}
	return b, nil
}

const (
	two63 = 1 << 63
	two64 = 1 << 64
)

// toInt64 truncates v towards zero and wraps it modulo 2^64. NaN and
// infinities are 0.
func toInt64(v float64) int64 {
	if v >= -two63 && v < two63 {
		return int64(v)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	m := math.Mod(math.Trunc(v), two64)
	if m < 0 {
		m += two64
	}
	return int64(uint64(m))
}

// zeros is Encode for a buffer of n zero samples without the float detour.
func zeros(n int, bitDepth int) (Buffer, error) {
	width, err := ContainerWidth(bitDepth)
	if err != nil {
		return Buffer{}, err
	}
	b := Buffer{width: width}
	switch width {
	case 8:
		b.i8 = make([]int8, n)
	case 16:
		b.i16 = make([]int16, n)
	case 32:
		b.i32 = make([]int32, n)
	case 64:
		b.i64 = make([]int64, n)
	}
	return b, nil
}

// Width returns the container width in bits, or 0 for the zero Buffer.
func (b Buffer) Width() int {
	return b.width
}

// Len returns the number of samples.
func (b Buffer) Len() int {
	switch b.width {
	case 8:
		return len(b.i8)
	case 16:
		return len(b.i16)
	case 32:
		return len(b.i32)
	case 64:
		return len(b.i64)
	}
	return 0
}

// At returns sample i widened to int64.
func (b Buffer) At(i int) int64 {
	switch b.width {
	case 8:
		return int64(b.i8[i])
	case 16:
		return int64(b.i16[i])
	case 32:
		return int64(b.i32[i])
	case 64:
		return b.i64[i]
	}
	panic("tone: At on empty buffer")
}

// Values returns a widened copy of all samples.
func (b Buffer) Values() []int64 {
	out := make([]int64, b.Len())
	for i := range out {
		out[i] = b.At(i)
	}
	return out
}

// Int8 returns the samples of an 8-bit buffer, nil otherwise.
func (b Buffer) Int8() []int8 { return b.i8 }

// Int16 returns the samples of a 16-bit buffer, nil otherwise.
func (b Buffer) Int16() []int16 { return b.i16 }

// Int32 returns the samples of a 32-bit buffer, nil otherwise.
func (b Buffer) Int32() []int32 { return b.i32 }

// Int64 returns the samples of a 64-bit buffer, nil otherwise.
func (b Buffer) Int64() []int64 { return b.i64 }
