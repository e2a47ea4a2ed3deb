package main

import (
	"encoding/json"
	"fmt"

	"github.com/jinjor/tonegen/src/tone"
)

// ----- Job ----- //

type job struct {
	File     string          `json:"file"`
	Kind     string          `json:"kind"` // fixed, bend or silence
	Params   json.RawMessage `json:"params"`
	Duration float64         `json:"duration"` // ms
	Samples  int             `json:"samples"`
	Offset   int             `json:"offset"`
	Fidelity string          `json:"fidelity"`
}

type jobFile struct {
	Jobs []*job `json:"jobs"`
}

func parseJobs(data []byte) ([]*job, error) {
	var j jobFile
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("failed to parse jobs: %w", err)
	}
	for i, jb := range j.Jobs {
		if jb.File == "" {
			return nil, fmt.Errorf("job %d: file is not set", i)
		}
	}
	return j.Jobs, nil
}

func (j *job) size() tone.SizeRequest {
	return tone.SizeRequest{Duration: j.Duration, Samples: j.Samples}
}

func (j *job) params() []byte {
	if len(j.Params) == 0 {
		return []byte("{}")
	}
	return j.Params
}

// rendered is a synthesized job ready to be encoded.
type rendered struct {
	buf        tone.Buffer
	sampleRate int
	bitDepth   int
	desc       string
}

func (j *job) render() (*rendered, error) {
	switch j.Kind {
	case "fixed", "":
		p := tone.DefaultWaveParams()
		if err := p.ApplyJSON(j.params()); err != nil {
			return nil, err
		}
		fidelity, err := tone.ParseFidelity(j.Fidelity)
		if err != nil {
			return nil, err
		}
		fp := tone.NewFixedPitch(p)
		buf, err := fp.Tone(j.size(), j.Offset, fidelity)
		if err != nil {
			return nil, err
		}
		return &rendered{buf, fp.Params().SampleRate, fp.Params().BitDepth, fp.String()}, nil
	case "bend":
		p := tone.DefaultBendParams()
		if err := p.ApplyJSON(j.params()); err != nil {
			return nil, err
		}
		b := tone.NewLinearBend(p)
		buf, err := b.Approximate(j.size())
		if err != nil {
			return nil, err
		}
		return &rendered{buf, b.Params().SampleRate, b.Params().BitDepth, b.String()}, nil
	case "silence":
		p := tone.DefaultSilenceParams()
		if err := p.ApplyJSON(j.params()); err != nil {
			return nil, err
		}
		s := tone.NewSilence(p)
		buf, err := s.Accurate(j.size())
		if err != nil {
			return nil, err
		}
		return &rendered{buf, s.Params().SampleRate, s.Params().BitDepth, s.String()}, nil
	}
	return nil, fmt.Errorf("unknown job kind %q", j.Kind)
}
