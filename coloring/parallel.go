// Copyright (C) 2024, Avalanche Parallel Project. All rights reserved.
// See the file LICENSE for licensing terms.

package coloring

import (
	"golang.org/x/sync/errgroup"
)

// parallelFor partitions [0, n) into nThreads contiguous chunks and runs
// work once per chunk, passing the worker's index and its [lo, hi) range.
// It is the generalized descendant of the worker pool's
// semaphore-bounded goroutine fan-out: rather than one goroutine per
// item guarded by a channel semaphore, each worker here owns a
// contiguous static range so it can keep and reuse a single scratch
// buffer across every vertex it touches, per the thread-local-scratch
// design constraint on the speculative colorer's mark buffers.
//
// parallelFor starts every chunk up front and blocks until all of them have
// completed; if any chunk returns an error, the first such error is
// returned. A failing chunk does not stop or cancel the others.
func parallelFor(nThreads, n int, work func(workerID, lo, hi int) error) error {
	if n == 0 {
		return nil
	}
	if nThreads > n {
		nThreads = n
	}
	if nThreads < 1 {
		nThreads = 1
	}

	chunk := (n + nThreads - 1) / nThreads

	var g errgroup.Group
	for w := 0; w < nThreads; w++ {
		lo := w * chunk
		if lo >= n {
			break
		}
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		workerID := w
		g.Go(func() error {
			return work(workerID, lo, hi)
		})
	}
	return g.Wait()
}
