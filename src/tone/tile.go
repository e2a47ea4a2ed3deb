package tone

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Tiles of at least this many samples are copied by several goroutines.
const parallelTileThreshold = 1 << 16

// tile returns copies whole repetitions of period laid end to end.
func tile(period []float64, copies int) []float64 {
	if copies <= 0 || len(period) == 0 {
		return []float64{}
	}
	out := make([]float64, len(period)*copies)
	workers := runtime.GOMAXPROCS(0)
	if len(out) < parallelTileThreshold || workers < 2 || copies < 2 {
		fill(out, period, 0, copies)
		return out
	}
	if workers > copies {
		workers = copies
	}
	per := (copies + workers - 1) / workers
	var g errgroup.Group
	for from := 0; from < copies; from += per {
		from, to := from, from+per
		if to > copies {
			to = copies
		}
		g.Go(func() error {
			fill(out, period, from, to)
			return nil
		})
	}
	// fill never fails
	_ = g.Wait()
	return out
}

// fill writes copies [from, to) of period into out.
func fill(out, period []float64, from, to int) {
	n := len(period)
	for c := from; c < to; c++ {
		copy(out[c*n:(c+1)*n], period)
	}
}

// rotateLeft returns xs with its first k samples moved to the end. k wraps
// around len(xs).
func rotateLeft(xs []float64, k int) []float64 {
	n := len(xs)
	if n == 0 || k%n == 0 {
		return xs
	}
	k %= n
	out := make([]float64, 0, n)
	out = append(out, xs[k:]...)
	return append(out, xs[:k]...)
}

// copiesFor returns the number of whole periods of length n needed to reach
// target samples.
func copiesFor(target, n int) int {
	return (target + n - 1) / n
}
