// Copyright (C) 2024, Avalanche Parallel Project. All rights reserved.
// See the file LICENSE for licensing terms.

package coloring

import "github.com/Final-Project-13520137/parallel-coloring/graph"

// unassigned is the sentinel color meaning "pending / just re-queued".
const unassigned = -1

// speculativeColor runs the distance-one speculative colorer (design
// doc 4.1) over q in parallel: for every v in q, vtxColor[v] is set to
// the smallest non-negative color absent from v's currently-visible
// neighborhood. No synchronization guards vtxColor itself — concurrent
// writes land on disjoint indices (each worker owns the vertices in its
// chunk) and concurrent reads of a neighbor being simultaneously
// recolored may observe a stale or mid-flight value; any resulting
// equality is caught by resolveConflicts in the following pass.
//
// initialCap seeds every worker's mark buffer; a neighbor color at or
// beyond the current cap grows the mark rather than being dropped, per
// the MaxColor policy in the design notes.
func speculativeColor(g *graph.Graph, vtxColor []int, q *queue, nThreads, initialCap int) error {
	verts := q.slice()
	return parallelFor(nThreads, len(verts), func(_ int, lo, hi int) error {
		m := newMark(initialCap)
		for i := lo; i < hi; i++ {
			v := verts[i]
			m.reset()

			maxSeen := -1
			for _, e := range g.Neighbors(v) {
				w := e.Tail
				if w == v {
					continue // self-loop, ignored uniformly
				}
				c := vtxColor[w]
				if c < 0 {
					continue
				}
				m.set(c)
				if c > maxSeen {
					maxSeen = c
				}
			}

			myColor := 0
			for ; myColor <= maxSeen; myColor++ {
				if !m.isSet(myColor) {
					break
				}
			}
			vtxColor[v] = myColor
		}
		return nil
	})
}
