// Copyright (C) 2024, Avalanche Parallel Project. All rights reserved.
// See the file LICENSE for licensing terms.

package coloring

import (
	"time"

	"github.com/Final-Project-13520137/parallel-coloring/graph"
)

// Result carries the outcome of a ColorDistanceOne run, beyond the
// vtxColor slice mutated in place.
type Result struct {
	// NumColors is one past the largest color id in use (colors are
	// dense over [0, NumColors) only if every class is non-empty; use
	// BuildColorSize to confirm occupancy).
	NumColors int
	// Rounds is the number of speculate/detect/swap iterations run.
	Rounds int
	// Conflicts is the total number of vertices re-queued across every
	// round (a vertex recolored k times contributes k to this total).
	Conflicts int
	// Elapsed is the wall-clock time spent in the coloring loop.
	Elapsed time.Duration
}

// ColorDistanceOne implements the round orchestration in design doc 4.3
// over g, writing a distance-one-valid coloring into vtxColor (which must
// have length g.NVer) and returning the run's statistics.
//
// The state machine is: Coloring -> Detecting -> Swap, looping back to
// Coloring whenever the swapped-in queue is non-empty, and stopping at
// Swap otherwise. Determinism: for a fixed g, opts.Seed and opts.NThreads,
// repeated calls produce byte-identical vtxColor contents, because the
// only source of nondeterminism in either pass (goroutine scheduling) never
// feeds back into which color or queue slot a vertex lands on.
func ColorDistanceOne(g *graph.Graph, vtxColor []int, opts Options, m *Metrics) (Result, error) {
	if len(vtxColor) != g.NVer {
		return Result{}, ErrColorArraySize
	}
	if err := opts.validate(); err != nil {
		return Result{}, err
	}
	nThreads := opts.threads()
	start := time.Now()

	for v := range vtxColor {
		vtxColor[v] = unassigned
	}

	priorities := GeneratePriorities(g.NVer, opts.Seed)
	initialCap := g.MaxDegree() + 1

	q := identity(g.NVer)
	qtmp := newQueue(g.NVer)

	res := Result{}
	for q.len() > 0 {
		// Coloring: speculatively color every vertex still in q.
		if err := speculativeColor(g, vtxColor, q, nThreads, initialCap); err != nil {
			return Result{}, err
		}

		// Detecting: any vertex that loses a same-color conflict is
		// reset to unassigned and appended to qtmp.
		qtmp.resetTail()
		if err := resolveConflicts(g, vtxColor, priorities, q, qtmp, nThreads); err != nil {
			return Result{}, err
		}

		res.Rounds++
		res.Conflicts += qtmp.len()
		if m != nil {
			m.Rounds.Inc()
			m.ConflictsTotal.Add(float64(qtmp.len()))
		}

		// Swap: Qtmp becomes next round's Q.
		q, qtmp = qtmp, q
	}

	maxColor := -1
	for _, c := range vtxColor {
		if c > maxColor {
			maxColor = c
		}
	}
	res.NumColors = maxColor + 1
	res.Elapsed = time.Since(start)

	if m != nil {
		m.ColorsUsed.Set(float64(res.NumColors))
		m.ColoringSeconds.Observe(res.Elapsed.Seconds())
	}
	return res, nil
}
