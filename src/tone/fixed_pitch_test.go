package tone_test

import (
	"testing"

	"github.com/jinjor/tonegen/src/tone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedPitch_SineAtOneKilohertz(t *testing.T) {
	fp := tone.NewFixedPitch(params(1000, 16000))
	b, err := fp.Approximate(tone.Samples(16), 0)
	require.NoError(t, err)
	require.Equal(t, 16, b.Len())
	assert.Equal(t, 16, b.Width())
	assert.Equal(t, int64(0), b.At(0))
	// 32768 does not fit into int16 and wraps
	assert.Equal(t, int64(-32768), b.At(4))
	assert.Equal(t, int64(-32768), b.At(12))
}

func TestFixedPitch_SampleRequestIsExact(t *testing.T) {
	for _, freq := range []float64{440, 1000, 1244.51, 7000} {
		fp := tone.NewFixedPitch(params(freq, 16000))
		for _, n := range []int{1, 2, 15, 16, 17, 100, 1234, 16000} {
			b, err := fp.Approximate(tone.Samples(n), 0)
			require.NoError(t, err)
			assert.Equal(t, n, b.Len(), "%vHz %d samples", freq, n)

			b, err = fp.Approximate(tone.Samples(n), 3)
			require.NoError(t, err)
			assert.Equal(t, n, b.Len(), "%vHz %d samples offset 3", freq, n)
		}
	}
}

func TestFixedPitch_DurationRequestIsWholePeriods(t *testing.T) {
	for _, freq := range []float64{440, 1000, 1280, 3000} {
		fp := tone.NewFixedPitch(params(freq, 16000))
		period := tone.NewOscillation(fp.Params()).ApproxPeriodLength()
		for _, ms := range []float64{1, 2.5, 10, 200, 1000} {
			b, err := fp.Approximate(tone.Duration(ms), 0)
			require.NoError(t, err)
			target := int(ms * 16000 / 1000)
			assert.GreaterOrEqual(t, b.Len(), target, "%vHz %vms", freq, ms)
			assert.Zero(t, b.Len()%period, "%vHz %vms", freq, ms)
			assert.Less(t, b.Len()-target, period, "%vHz %vms: no more than one extra period", freq, ms)
		}
	}
}

func TestFixedPitch_DurationTooShortForOneSample(t *testing.T) {
	fp := tone.NewFixedPitch(params(1000, 16000))
	b, err := fp.Approximate(tone.Duration(0.01), 0)
	require.NoError(t, err)
	assert.Equal(t, 0, b.Len())
}

func TestFixedPitch_OffsetRotatesEachPeriod(t *testing.T) {
	for _, freq := range []float64{1000, 1280} {
		fp := tone.NewFixedPitch(params(freq, 16000))
		n := tone.NewOscillation(fp.Params()).ApproxPeriodLength()
		base, err := fp.Approximate(tone.Duration(20), 0)
		require.NoError(t, err)
		for _, k := range []int{1, 5, n - 1} {
			rotated, err := fp.Approximate(tone.Duration(20), k)
			require.NoError(t, err)
			require.Equal(t, base.Len(), rotated.Len())
			for i := 0; i < rotated.Len(); i++ {
				require.Equal(t, base.At((i%n+k)%n), rotated.At(i), "%vHz offset %d index %d", freq, k, i)
			}
		}
	}
}

func TestFixedPitch_OffsetWrapsAroundPeriod(t *testing.T) {
	fp := tone.NewFixedPitch(params(1000, 16000))
	a, err := fp.Approximate(tone.Samples(40), 3)
	require.NoError(t, err)
	b, err := fp.Approximate(tone.Samples(40), 19)
	require.NoError(t, err)
	assert.Equal(t, a.Values(), b.Values())

	c, err := fp.Approximate(tone.Samples(40), 16)
	require.NoError(t, err)
	d, err := fp.Approximate(tone.Samples(40), 0)
	require.NoError(t, err)
	assert.Equal(t, d.Values(), c.Values())
}

func TestFixedPitch_NegativeOffset(t *testing.T) {
	fp := tone.NewFixedPitch(params(1000, 16000))
	_, err := fp.Approximate(tone.Samples(16), -1)
	assert.ErrorIs(t, err, tone.ErrNegativeOffset)
}

func TestFixedPitch_AmbiguousSize(t *testing.T) {
	fp := tone.NewFixedPitch(params(1000, 16000))
	_, err := fp.Approximate(tone.SizeRequest{Duration: 10, Samples: 10}, 0)
	assert.ErrorIs(t, err, tone.ErrAmbiguousSize)
	_, err = fp.Accurate(tone.SizeRequest{Duration: 10, Samples: 10}, 0)
	assert.ErrorIs(t, err, tone.ErrAmbiguousSize)
	_, err = fp.Approximate(tone.SizeRequest{}, 0)
	assert.ErrorIs(t, err, tone.ErrAmbiguousSize)
}

func TestFixedPitch_Accurate(t *testing.T) {
	fp := tone.NewFixedPitch(params(1280, 16000))

	b, err := fp.Accurate(tone.Duration(10), 0)
	require.NoError(t, err)
	assert.Equal(t, 250, b.Len(), "160 samples rounded up to two runs of 125")

	b, err = fp.Accurate(tone.Samples(300), 0)
	require.NoError(t, err)
	assert.Equal(t, 300, b.Len())

	// identical to approximate when the period is whole
	fp = tone.NewFixedPitch(params(1000, 16000))
	accurate, err := fp.Accurate(tone.Duration(10), 2)
	require.NoError(t, err)
	approximate, err := fp.Approximate(tone.Duration(10), 2)
	require.NoError(t, err)
	assert.Equal(t, approximate.Values(), accurate.Values())
}

func TestFixedPitch_AccurateTooLong(t *testing.T) {
	fp := tone.NewFixedPitch(params(440, 16000))
	_, err := fp.Accurate(tone.Samples(100), 0)
	assert.ErrorIs(t, err, tone.ErrPeriodTooLong)
}

func TestFixedPitch_Tone(t *testing.T) {
	fp := tone.NewFixedPitch(params(1280, 16000))

	b, err := fp.Tone(tone.Duration(10), 0, tone.FidelityApproximate)
	require.NoError(t, err)
	assert.Equal(t, 168, b.Len(), "14 periods of 12 samples")

	b, err = fp.Tone(tone.Duration(10), 0, tone.FidelityAccurate)
	require.NoError(t, err)
	assert.Equal(t, 250, b.Len())

	_, err = fp.Tone(tone.Duration(10), 0, tone.FidelityExact)
	assert.ErrorIs(t, err, tone.ErrNotImplemented)
}

func TestFixedPitch_DegeneratePeriod(t *testing.T) {
	fp := tone.NewFixedPitch(params(20000, 16000))
	_, err := fp.Approximate(tone.Samples(10), 0)
	assert.ErrorIs(t, err, tone.ErrDegeneratePeriod)
}

func TestFixedPitch_LargeBufferMatchesPeriod(t *testing.T) {
	fp := tone.NewFixedPitch(params(1000, 16000))
	b, err := fp.Approximate(tone.Samples(200000), 0)
	require.NoError(t, err)
	require.Equal(t, 200000, b.Len())
	period := tone.NewOscillation(fp.Params()).Approximate()
	for i := 0; i < b.Len(); i += 997 {
		require.Equal(t, int16(int64(period[i%16])), b.Int16()[i], "index %d", i)
	}
}

func TestFixedPitch_String(t *testing.T) {
	fp := tone.NewFixedPitch(params(440, 16000))
	assert.Equal(t, "A waveform of sine of frequency 440Hz, at 16/16KHz", fp.String())
}

func TestParseFidelity(t *testing.T) {
	f, err := tone.ParseFidelity("accurate")
	require.NoError(t, err)
	assert.Equal(t, tone.FidelityAccurate, f)

	_, err = tone.ParseFidelity("precise")
	assert.Error(t, err)
}
