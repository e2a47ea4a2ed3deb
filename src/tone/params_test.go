package tone_test

import (
	"encoding/json"
	"testing"

	"github.com/jinjor/tonegen/src/tone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultWaveParams(t *testing.T) {
	p := tone.DefaultWaveParams()
	assert.Equal(t, 1244.51, p.Frequency)
	assert.Equal(t, 16000, p.SampleRate)
	assert.Equal(t, 16, p.BitDepth)
	assert.Equal(t, 1.0, p.Volume)
	assert.Equal(t, "sine", p.Generator.Name)
	assert.Equal(t, tone.PeriodCountPow10, p.PeriodCount)
}

func TestWaveParams_Normalized(t *testing.T) {
	fp := tone.NewFixedPitch(tone.WaveParams{Volume: 3})
	p := fp.Params()
	assert.Equal(t, 1244.51, p.Frequency)
	assert.Equal(t, 16000, p.SampleRate)
	assert.Equal(t, 16, p.BitDepth)
	assert.Equal(t, 1.0, p.Volume, "volume is clamped")
	assert.Equal(t, "sine", p.Generator.Name)

	fp = tone.NewFixedPitch(tone.WaveParams{Frequency: 1000, Volume: -1})
	assert.Equal(t, 0.0, fp.Params().Volume)
	b, err := fp.Approximate(tone.Samples(16), 0)
	require.NoError(t, err)
	assert.Equal(t, make([]int16, 16), b.Int16())
}

func TestWaveParams_ApplyJSON(t *testing.T) {
	p := tone.DefaultWaveParams()
	err := p.ApplyJSON([]byte(`{"note": "A4", "bitDepth": 8, "generator": "square", "periodCount": "xor"}`))
	require.NoError(t, err)
	assert.Equal(t, 440.0, p.Frequency)
	assert.Equal(t, 8, p.BitDepth)
	assert.Equal(t, 16000, p.SampleRate, "absent fields are kept")
	assert.Equal(t, 1.0, p.Volume)
	assert.Equal(t, "square", p.Generator.Name)
	assert.Equal(t, tone.PeriodCountXor, p.PeriodCount)

	err = p.ApplyJSON([]byte(`{"frequency": 1000, "volume": 0}`))
	require.NoError(t, err)
	assert.Equal(t, 1000.0, p.Frequency)
	assert.Equal(t, 0.0, p.Volume)
}

func TestWaveParams_ApplyJSONErrors(t *testing.T) {
	p := tone.DefaultWaveParams()
	assert.ErrorIs(t, p.ApplyJSON([]byte(`{"note": "Z9"}`)), tone.ErrUnknownNote)
	assert.ErrorIs(t, p.ApplyJSON([]byte(`{"generator": "noise"}`)), tone.ErrUnknownGenerator)
	assert.Error(t, p.ApplyJSON([]byte(`{"periodCount": "pow2"}`)))
	assert.Error(t, p.ApplyJSON([]byte(`not json`)))
}

func TestWaveParams_MarshalJSON(t *testing.T) {
	p := tone.DefaultWaveParams()
	p.Frequency = 440
	p.Generator = tone.Triangle
	data, err := json.Marshal(p)
	require.NoError(t, err)

	q := tone.WaveParams{}
	require.NoError(t, q.ApplyJSON(data))
	assert.Equal(t, p.Frequency, q.Frequency)
	assert.Equal(t, p.SampleRate, q.SampleRate)
	assert.Equal(t, p.BitDepth, q.BitDepth)
	assert.Equal(t, p.Volume, q.Volume)
	assert.Equal(t, "triangle", q.Generator.Name)
	assert.Equal(t, p.PeriodCount, q.PeriodCount)
}

func TestBendParams_ApplyJSON(t *testing.T) {
	p := tone.DefaultBendParams()
	err := p.ApplyJSON([]byte(`{"startNote": "A4", "endFrequency": 450, "sampleRate": 8000, "generator": "saw"}`))
	require.NoError(t, err)
	assert.Equal(t, 440.0, p.StartFrequency)
	assert.Equal(t, 450.0, p.EndFrequency)
	assert.Equal(t, 8000, p.SampleRate)
	assert.Equal(t, "saw", p.Generator.Name)
	assert.Len(t, tone.NewLinearBend(p).Steps(), 10)
}

func TestSilenceParams_ApplyJSON(t *testing.T) {
	p := tone.DefaultSilenceParams()
	require.NoError(t, p.ApplyJSON([]byte(`{"sampleRate": 8000, "bitDepth": 8}`)))
	assert.Equal(t, tone.SilenceParams{SampleRate: 8000, BitDepth: 8}, p)

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"sampleRate": 8000, "bitDepth": 8}`, string(data))
}

func TestWaveParams_ZeroVolumeIsKept(t *testing.T) {
	fp := tone.NewFixedPitch(tone.WaveParams{Frequency: 1000})
	p := fp.Params()
	assert.Equal(t, 16000, p.SampleRate, "zero sample rate takes the default")
	assert.Equal(t, "sine", p.Generator.Name, "zero generator takes the default")
	assert.Equal(t, 0.0, p.Volume, "zero volume is not replaced")
	b, err := fp.Approximate(tone.Samples(16), 0)
	require.NoError(t, err)
	assert.Equal(t, make([]int16, 16), b.Int16())
}
