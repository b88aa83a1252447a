// Copyright (C) 2024, Avalanche Parallel Project. All rights reserved.
// See the file LICENSE for licensing terms.

package coloring

import "github.com/Final-Project-13520137/parallel-coloring/graph"

// Verify double-scans every edge of g and returns the number of
// monochromatic undirected edges (self-loops excluded). A return of zero
// confirms vtxColor is a valid distance-one coloring.
//
// Each undirected edge {u,v} appears as two directed adjacency entries, so
// a naive scan counts every conflict twice; the final count is halved to
// report the number of distinct conflicting edges, matching the source
// algorithm's verification pass.
func Verify(g *graph.Graph, vtxColor []int) int {
	conflicts := 0
	for v := 0; v < g.NVer; v++ {
		for _, e := range g.Neighbors(v) {
			w := e.Tail
			if w == v {
				continue
			}
			if vtxColor[v] == vtxColor[w] {
				conflicts++
			}
		}
	}
	return conflicts / 2
}
