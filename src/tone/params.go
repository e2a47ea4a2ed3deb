package tone

import (
	"encoding/json"
	"fmt"
	"math"
)

const (
	defaultSampleRate = 16000
	defaultBitDepth   = 16
	defaultVolume     = 1.0
)

// ----- Wave Params ----- //

// WaveParams configures a single-frequency waveform. Zero Frequency,
// SampleRate, BitDepth and Generator fields take their defaults, but a zero
// Volume is kept and yields silence; start from DefaultWaveParams to get a
// full-volume tone.
type WaveParams struct {
	Frequency   float64 // Hz
	SampleRate  int     // Hz
	BitDepth    int     // 1 ~ 64
	Volume      float64 // 0 ~ 1
	Generator   Generator
	PeriodCount PeriodCountMode
}

// DefaultWaveParams returns E♭6 as a full-volume sine at 16 bit / 16 kHz.
func DefaultWaveParams() WaveParams {
	return WaveParams{
		Frequency:   Tones["E♭6"],
		SampleRate:  defaultSampleRate,
		BitDepth:    defaultBitDepth,
		Volume:      defaultVolume,
		Generator:   Sine,
		PeriodCount: PeriodCountPow10,
	}
}

// normalized fills unset fields with defaults and clamps the volume.
// Volume 0 is a valid setting and is kept.
func (p WaveParams) normalized() WaveParams {
	d := DefaultWaveParams()
	if p.Frequency == 0 {
		p.Frequency = d.Frequency
	}
	if p.SampleRate == 0 {
		p.SampleRate = d.SampleRate
	}
	if p.BitDepth == 0 {
		p.BitDepth = d.BitDepth
	}
	if p.Generator.isZero() {
		p.Generator = d.Generator
	}
	p.Volume = clampVolume(p.Volume)
	return p
}

// ----- Bend Params ----- //

// BendParams configures a linear sweep from StartFrequency to EndFrequency.
// Zero fields take their defaults except Volume, as in WaveParams.
type BendParams struct {
	StartFrequency float64 // Hz
	EndFrequency   float64 // Hz
	SampleRate     int     // Hz
	BitDepth       int     // 1 ~ 64
	Volume         float64 // 0 ~ 1
	Generator      Generator
}

// DefaultBendParams returns a full-volume sine bend from B5 to D6.
func DefaultBendParams() BendParams {
	return BendParams{
		StartFrequency: Tones["B5"],
		EndFrequency:   Tones["D6"],
		SampleRate:     defaultSampleRate,
		BitDepth:       defaultBitDepth,
		Volume:         defaultVolume,
		Generator:      Sine,
	}
}

func (p BendParams) normalized() BendParams {
	d := DefaultBendParams()
	if p.StartFrequency == 0 {
		p.StartFrequency = d.StartFrequency
	}
	if p.EndFrequency == 0 {
		p.EndFrequency = d.EndFrequency
	}
	if p.SampleRate == 0 {
		p.SampleRate = d.SampleRate
	}
	if p.BitDepth == 0 {
		p.BitDepth = d.BitDepth
	}
	if p.Generator.isZero() {
		p.Generator = d.Generator
	}
	p.Volume = clampVolume(p.Volume)
	return p
}

// at returns the parameters of a single step of the bend.
func (p BendParams) at(freq float64) WaveParams {
	return WaveParams{
		Frequency:  freq,
		SampleRate: p.SampleRate,
		BitDepth:   p.BitDepth,
		Volume:     p.Volume,
		Generator:  p.Generator,
	}
}

// ----- Silence Params ----- //

// SilenceParams configures a silent buffer.
type SilenceParams struct {
	SampleRate int // Hz
	BitDepth   int // 1 ~ 64
}

// DefaultSilenceParams ...
func DefaultSilenceParams() SilenceParams {
	return SilenceParams{SampleRate: defaultSampleRate, BitDepth: defaultBitDepth}
}

func (p SilenceParams) normalized() SilenceParams {
	if p.SampleRate == 0 {
		p.SampleRate = defaultSampleRate
	}
	if p.BitDepth == 0 {
		p.BitDepth = defaultBitDepth
	}
	return p
}

func clampVolume(v float64) float64 {
	return math.Min(math.Max(v, 0), 1)
}

// depthMax is half of the range representable with bitDepth bits.
func depthMax(bitDepth int) float64 {
	return math.Pow(2, float64(bitDepth)) / 2
}

// ----- JSON ----- //

// paramsJSON covers all three parameter kinds. Absent fields leave the
// target unchanged.
type paramsJSON struct {
	Note           string   `json:"note,omitempty"`
	Frequency      *float64 `json:"frequency,omitempty"`
	StartNote      string   `json:"startNote,omitempty"`
	StartFrequency *float64 `json:"startFrequency,omitempty"`
	EndNote        string   `json:"endNote,omitempty"`
	EndFrequency   *float64 `json:"endFrequency,omitempty"`
	SampleRate     *int     `json:"sampleRate,omitempty"`
	BitDepth       *int     `json:"bitDepth,omitempty"`
	Volume         *float64 `json:"volume,omitempty"`
	Generator      string   `json:"generator,omitempty"`
	PeriodCount    string   `json:"periodCount,omitempty"`
}

func (j *paramsJSON) frequency(note string, freq *float64) (float64, bool, error) {
	if note != "" {
		f, err := Frequency(note)
		return f, err == nil, err
	}
	if freq != nil {
		return *freq, true, nil
	}
	return 0, false, nil
}

func (j *paramsJSON) generator() (Generator, bool, error) {
	if j.Generator == "" {
		return Generator{}, false, nil
	}
	g, err := GeneratorByName(j.Generator)
	return g, err == nil, err
}

// ApplyJSON overwrites the fields present in data.
func (p *WaveParams) ApplyJSON(data []byte) error {
	var j paramsJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return fmt.Errorf("failed to apply JSON to WaveParams: %w", err)
	}
	if f, ok, err := j.frequency(j.Note, j.Frequency); err != nil {
		return err
	} else if ok {
		p.Frequency = f
	}
	if j.SampleRate != nil {
		p.SampleRate = *j.SampleRate
	}
	if j.BitDepth != nil {
		p.BitDepth = *j.BitDepth
	}
	if j.Volume != nil {
		p.Volume = *j.Volume
	}
	if g, ok, err := j.generator(); err != nil {
		return err
	} else if ok {
		p.Generator = g
	}
	if j.PeriodCount != "" {
		mode, err := ParsePeriodCountMode(j.PeriodCount)
		if err != nil {
			return err
		}
		p.PeriodCount = mode
	}
	return nil
}

// MarshalJSON ...
func (p WaveParams) MarshalJSON() ([]byte, error) {
	return json.Marshal(&paramsJSON{
		Frequency:   &p.Frequency,
		SampleRate:  &p.SampleRate,
		BitDepth:    &p.BitDepth,
		Volume:      &p.Volume,
		Generator:   p.Generator.Name,
		PeriodCount: p.PeriodCount.String(),
	})
}

// ApplyJSON overwrites the fields present in data.
func (p *BendParams) ApplyJSON(data []byte) error {
	var j paramsJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return fmt.Errorf("failed to apply JSON to BendParams: %w", err)
	}
	if f, ok, err := j.frequency(j.StartNote, j.StartFrequency); err != nil {
		return err
	} else if ok {
		p.StartFrequency = f
	}
	if f, ok, err := j.frequency(j.EndNote, j.EndFrequency); err != nil {
		return err
	} else if ok {
		p.EndFrequency = f
	}
	if j.SampleRate != nil {
		p.SampleRate = *j.SampleRate
	}
	if j.BitDepth != nil {
		p.BitDepth = *j.BitDepth
	}
	if j.Volume != nil {
		p.Volume = *j.Volume
	}
	if g, ok, err := j.generator(); err != nil {
		return err
	} else if ok {
		p.Generator = g
	}
	return nil
}

// MarshalJSON ...
func (p BendParams) MarshalJSON() ([]byte, error) {
	return json.Marshal(&paramsJSON{
		StartFrequency: &p.StartFrequency,
		EndFrequency:   &p.EndFrequency,
		SampleRate:     &p.SampleRate,
		BitDepth:       &p.BitDepth,
		Volume:         &p.Volume,
		Generator:      p.Generator.Name,
	})
}

// ApplyJSON overwrites the fields present in data.
func (p *SilenceParams) ApplyJSON(data []byte) error {
	var j paramsJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return fmt.Errorf("failed to apply JSON to SilenceParams: %w", err)
	}
	if j.SampleRate != nil {
		p.SampleRate = *j.SampleRate
	}
	if j.BitDepth != nil {
		p.BitDepth = *j.BitDepth
	}
	return nil
}

// MarshalJSON ...
func (p SilenceParams) MarshalJSON() ([]byte, error) {
	return json.Marshal(&paramsJSON{
		SampleRate: &p.SampleRate,
		BitDepth:   &p.BitDepth,
	})
}
