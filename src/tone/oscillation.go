package tone

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ----- Period Count Mode ----- //

// PeriodCountMode selects how Oscillation.Accurate turns the number of
// decimal digits d of the period length into a number of periods.
type PeriodCountMode int

const (
	// PeriodCountPow10 uses 10^d periods.
	PeriodCountPow10 PeriodCountMode = iota
	// PeriodCountXor uses 10 XOR d periods, reproducing the historical
	// behaviour. Only d = 0 and d = 1 come close to a power of ten.
	PeriodCountXor
)

func (m PeriodCountMode) String() string {
	switch m {
	case PeriodCountPow10:
		return "pow10"
	case PeriodCountXor:
		return "xor"
	}
	return "unknown"
}

// ParsePeriodCountMode ...
func ParsePeriodCountMode(s string) (PeriodCountMode, error) {
	switch s {
	case "pow10", "":
		return PeriodCountPow10, nil
	case "xor":
		return PeriodCountXor, nil
	}
	return 0, fmt.Errorf("tone: unknown period count mode %q", s)
}

// PeriodCount returns the number of periods used for a period length with
// d decimal digits.
func (m PeriodCountMode) PeriodCount(d int) float64 {
	if m == PeriodCountXor {
		return float64(10 ^ d)
	}
	return math.Pow(10, float64(d))
}

// DecimalDigits counts the digits after the decimal point in the shortest
// decimal form that round-trips x.
func DecimalDigits(x float64) int {
	s := strconv.FormatFloat(x, 'f', -1, 64)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - i - 1
	}
	return 0
}

// MaxAccurateSamples bounds the buffer Oscillation.Accurate may build.
// Period lengths with many decimal digits (16000/440 has 15) would
// otherwise ask for 10^15 periods.
var MaxAccurateSamples = 1 << 24

// ----- Oscillation ----- //

// Oscillation generates single periods of a waveform.
type Oscillation struct {
	params       WaveParams
	periodLength float64
	volume       float64
}

// NewOscillation ...
func NewOscillation(p WaveParams) *Oscillation {
	p = p.normalized()
	return &Oscillation{
		params:       p,
		periodLength: float64(p.SampleRate) / p.Frequency,
		volume:       depthMax(p.BitDepth) * p.Volume,
	}
}

// PeriodLength returns sampleRate / frequency.
func (o *Oscillation) PeriodLength() float64 {
	return o.periodLength
}

// ApproxPeriodLength returns the period length rounded down. It is zero or
// negative when the frequency is above the sample rate.
func (o *Oscillation) ApproxPeriodLength() int {
	return int(math.Floor(o.periodLength))
}

// Volume returns the amplitude passed to the generator: half the bit depth
// range scaled by the volume fraction. At full volume the positive peak is
// one past the largest value of the signed container.
func (o *Oscillation) Volume() float64 {
	return o.volume
}

// Approximate returns one period truncated to a whole number of samples.
// Phase is computed against the real period length, so the waveform shape
// is exact but the pitch is slightly high.
func (o *Oscillation) Approximate() []float64 {
	return o.generate(o.ApproxPeriodLength())
}

// Accurate returns enough consecutive periods to span a whole number of
// samples. When the period length is already whole it is Approximate.
func (o *Oscillation) Accurate() ([]float64, error) {
	if float64(o.ApproxPeriodLength()) == o.periodLength {
		return o.Approximate(), nil
	}
	periods := o.params.PeriodCount.PeriodCount(DecimalDigits(o.periodLength))
	n := math.Round(periods * o.periodLength)
	if n > float64(MaxAccurateSamples) {
		return nil, fmt.Errorf("%w: %v periods of %v samples", ErrPeriodTooLong, periods, o.periodLength)
	}
	return o.generate(int(n)), nil
}

// generate evaluates the generator at positions 0..n-1 without resetting
// at period boundaries.
func (o *Oscillation) generate(n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	fn := o.params.Generator.Func
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Round(fn(float64(i), o.periodLength, o.volume))
	}
	return out
}
