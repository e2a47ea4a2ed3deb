package tone

import (
	"errors"
	"fmt"
)

var (
	// ErrAmbiguousSize is returned when a size request sets both or neither of duration and samples.
	ErrAmbiguousSize = errors.New("tone: exactly one of duration or samples must be set")
	// ErrInvalidSize is returned for a negative, non-finite or oversized
	// duration or sample count.
	ErrInvalidSize = errors.New("tone: duration and samples must be finite and in range")
	// ErrUnsupportedBitDepth is matched by every UnsupportedBitDepthError.
	ErrUnsupportedBitDepth = errors.New("tone: unsupported bit depth")
	// ErrNotImplemented is returned by fidelity modes that are not built yet.
	ErrNotImplemented = errors.New("tone: not implemented")
	// ErrDegeneratePeriod is returned when a period has no samples (frequency above sample rate).
	ErrDegeneratePeriod = errors.New("tone: period is shorter than one sample")
	// ErrPeriodTooLong is returned when an accurate period would exceed MaxAccurateSamples.
	ErrPeriodTooLong = errors.New("tone: accurate period exceeds sample limit")
	// ErrNegativeOffset is returned for offsets below zero.
	ErrNegativeOffset = errors.New("tone: offset must not be negative")
	// ErrUnknownNote is returned when a note name or number has no entry in Tones.
	ErrUnknownNote = errors.New("tone: unknown note")
	// ErrUnknownGenerator is returned when a generator name is not registered.
	ErrUnknownGenerator = errors.New("tone: unknown generator")
)

// UnsupportedBitDepthError reports a bit depth that no container can hold.
type UnsupportedBitDepthError struct {
	BitDepth int
}

func (e *UnsupportedBitDepthError) Error() string {
	return fmt.Sprintf("tone: bit depth %d is not in 1..64", e.BitDepth)
}

// Is reports whether target is ErrUnsupportedBitDepth.
func (e *UnsupportedBitDepthError) Is(target error) bool {
	return target == ErrUnsupportedBitDepth
}
