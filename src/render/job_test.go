package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jinjor/tonegen/src/tone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const jobsJSON = `{
  "jobs": [
    {"file": "a4.wav", "kind": "fixed", "params": {"note": "A4", "sampleRate": 8000}, "samples": 800},
    {"file": "bend.wav", "kind": "bend", "params": {"startFrequency": 100, "endFrequency": 103, "sampleRate": 8000}, "samples": 100},
    {"file": "rest.wav", "kind": "silence", "params": {"sampleRate": 8000, "bitDepth": 8}, "duration": 2}
  ]
}`

func TestParseJobs(t *testing.T) {
	jobs, err := parseJobs([]byte(jobsJSON))
	require.NoError(t, err)
	require.Len(t, jobs, 3)
	assert.Equal(t, "a4.wav", jobs[0].File)
	assert.Equal(t, "bend", jobs[1].Kind)
	assert.Equal(t, 2.0, jobs[2].Duration)

	_, err = parseJobs([]byte(`{"jobs": [{"kind": "fixed"}]}`))
	assert.Error(t, err)
	_, err = parseJobs([]byte(`{`))
	assert.Error(t, err)
}

func TestJobRender(t *testing.T) {
	jobs, err := parseJobs([]byte(jobsJSON))
	require.NoError(t, err)

	r, err := jobs[0].render()
	require.NoError(t, err)
	assert.Equal(t, 800, r.buf.Len())
	assert.Equal(t, 8000, r.sampleRate)
	assert.Equal(t, 16, r.bitDepth)

	r, err = jobs[1].render()
	require.NoError(t, err)
	assert.Equal(t, 237, r.buf.Len())

	r, err = jobs[2].render()
	require.NoError(t, err)
	assert.Equal(t, 16, r.buf.Len())
	assert.Equal(t, 8, r.bitDepth)
}

func TestJobRender_Errors(t *testing.T) {
	_, err := (&job{File: "x.wav", Kind: "chord", Samples: 1}).render()
	assert.Error(t, err)

	_, err = (&job{File: "x.wav", Kind: "fixed"}).render()
	assert.ErrorIs(t, err, tone.ErrAmbiguousSize)

	_, err = (&job{File: "x.wav", Kind: "fixed", Samples: 10, Fidelity: "exact"}).render()
	assert.ErrorIs(t, err, tone.ErrNotImplemented)
}

func TestRenderAll(t *testing.T) {
	jobs, err := parseJobs([]byte(jobsJSON))
	require.NoError(t, err)
	dir := t.TempDir()
	require.NoError(t, renderAll(context.Background(), jobs, dir, zap.NewNop()))

	for _, j := range jobs {
		info, err := os.Stat(filepath.Join(dir, j.File))
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(44), "%s has a header and data", j.File)
	}
}
