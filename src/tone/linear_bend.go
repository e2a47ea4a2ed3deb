package tone

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ----- Linear Bend ----- //

// LinearBend moves between two frequencies in whole Hz steps, one
// approximate period per step.
type LinearBend struct {
	params BendParams
}

// NewLinearBend ...
func NewLinearBend(p BendParams) *LinearBend {
	return &LinearBend{params: p.normalized()}
}

// Params returns the normalized parameters.
func (b *LinearBend) Params() BendParams {
	return b.params
}

func (b *LinearBend) String() string {
	return fmt.Sprintf("A waveform of %s bending from %vHz to %vHz, at %d/%vKHz",
		b.params.Generator.Name, b.params.StartFrequency, b.params.EndFrequency, b.params.BitDepth, float64(b.params.SampleRate)/1000)
}

// Steps returns the frequencies of the bend: the start frequency, then one
// Hz at a time towards the end frequency, which is not included.
func (b *LinearBend) Steps() []float64 {
	start, end := b.params.StartFrequency, b.params.EndFrequency
	var steps []float64
	if start < end {
		for f := start; f < end; f++ {
			steps = append(steps, f)
		}
	} else {
		for f := start; f > end; f-- {
			steps = append(steps, f)
		}
	}
	return steps
}

// periods generates one approximate period per step, keeping step order.
func (b *LinearBend) periods() [][]float64 {
	steps := b.Steps()
	periods := make([][]float64, len(steps))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, freq := range steps {
		i, freq := i, freq
		g.Go(func() error {
			periods[i] = NewOscillation(b.params.at(freq)).Approximate()
			return nil
		})
	}
	// generation never fails
	_ = g.Wait()
	return periods
}

// Fast returns every step's period once, ignoring duration.
func (b *LinearBend) Fast() (Buffer, error) {
	var samples []float64
	for _, period := range b.periods() {
		samples = append(samples, period...)
	}
	return Encode(samples, b.params.BitDepth)
}

// Approximate repeats every step's period the same number of times, chosen
// so that the whole bend covers at least the requested size. The result is
// never truncated, for sample requests as well as durations.
func (b *LinearBend) Approximate(req SizeRequest) (Buffer, error) {
	target, err := req.TargetSamples(b.params.SampleRate)
	if err != nil {
		return Buffer{}, err
	}
	periods := b.periods()
	baseline := 0
	for _, period := range periods {
		baseline += len(period)
	}
	if baseline == 0 {
		if target > 0 && len(periods) > 0 {
			return Buffer{}, fmt.Errorf("%w: bend %vHz to %vHz at %dHz", ErrDegeneratePeriod,
				b.params.StartFrequency, b.params.EndFrequency, b.params.SampleRate)
		}
		return Encode(nil, b.params.BitDepth)
	}
	repeat := copiesFor(target, baseline)
	samples := make([]float64, 0, baseline*repeat)
	for _, period := range periods {
		samples = append(samples, tile(period, repeat)...)
	}
	return Encode(samples, b.params.BitDepth)
}
