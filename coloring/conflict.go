// Copyright (C) 2024, Avalanche Parallel Project. All rights reserved.
// See the file LICENSE for licensing terms.

package coloring

import "github.com/Final-Project-13520137/parallel-coloring/graph"

// isLoser implements the symmetry-breaking rule: v loses a conflict with w
// iff (priority[v], v) is lexicographically less than (priority[w], w).
// Because each endpoint evaluates the rule from its own side and the rule
// is strictly antisymmetric, exactly one of v and w ever appends itself
// to Qtmp for a given conflict.
func isLoser(priorities []float64, v, w int) bool {
	if priorities[v] != priorities[w] {
		return priorities[v] < priorities[w]
	}
	return v < w
}

// resolveConflicts scans every v in q for a same-colored neighbor. A v
// that loses the symmetry-breaking tiebreak against some conflicting w is
// appended to qtmp and reset to unassigned, then scanning for v stops —
// a vertex is enqueued at most once per round because of this early exit.
//
// The reset to unassigned before moving on is what prevents v from being
// double-counted as a conflict partner by a concurrent scan of another
// vertex in the same pass: a transient read of a neighbor already reset
// to unassigned simply fails the color-equality test.
func resolveConflicts(g *graph.Graph, vtxColor []int, priorities []float64, q, qtmp *queue, nThreads int) error {
	verts := q.slice()
	return parallelFor(nThreads, len(verts), func(_ int, lo, hi int) error {
		for i := lo; i < hi; i++ {
			v := verts[i]
			myColor := vtxColor[v]
			for _, e := range g.Neighbors(v) {
				w := e.Tail
				if w == v {
					continue
				}
				if vtxColor[w] == myColor && isLoser(priorities, v, w) {
					qtmp.push(v)
					vtxColor[v] = unassigned
					break
				}
			}
		}
		return nil
	})
}
