// Copyright (C) 2024, Avalanche Parallel Project. All rights reserved.
// See the file LICENSE for licensing terms.

// Package graph defines the read-only adjacency view the coloring engine
// colors. It owns no mutation: ingestion, format parsing, and any
// community-detection client are external collaborators that build a
// Graph once and hand it to the coloring package.
package graph

import "fmt"

// Edge is a single directed adjacency-list entry: the destination id of an
// edge whose source is implicit in the verPtr slot that contains it.
type Edge struct {
	Tail int
}

// Graph is a CSR-style undirected adjacency view. Neighbors of vertex v
// occupy VerInd[VerPtr[v]:VerPtr[v+1]]. Self-loops (Tail == v) may appear
// and are ignored by every consumer in this module. The graph is treated
// as undirected: callers are expected to have listed edge {u,v} in both
// u's and v's adjacency slices.
//
// Graph is immutable once built; every method is safe for concurrent
// readers.
type Graph struct {
	// NVer is the number of vertices, indexed [0, NVer).
	NVer int
	// NEdge is the total number of directed adjacency entries in VerInd
	// (an undirected edge {u,v} contributes two entries).
	NEdge int
	// VerPtr has length NVer+1; VerPtr[v] is the start offset of v's
	// neighbor slice in VerInd.
	VerPtr []int
	// VerInd holds NEdge entries, the flattened neighbor lists.
	VerInd []Edge
}

// New builds a Graph from CSR slices, validating their shape. verPtr must
// have length nVer+1 and be non-decreasing; verInd must have length
// verPtr[nVer].
func New(nVer int, verPtr []int, verInd []Edge) (*Graph, error) {
	if nVer < 0 {
		return nil, fmt.Errorf("graph: negative vertex count %d", nVer)
	}
	if len(verPtr) != nVer+1 {
		return nil, fmt.Errorf("graph: verPtr length %d, want %d", len(verPtr), nVer+1)
	}
	for v := 0; v < nVer; v++ {
		if verPtr[v] > verPtr[v+1] {
			return nil, fmt.Errorf("graph: verPtr not non-decreasing at vertex %d", v)
		}
	}
	if verPtr[nVer] != len(verInd) {
		return nil, fmt.Errorf("graph: verInd length %d, want %d", len(verInd), verPtr[nVer])
	}
	return &Graph{
		NVer:   nVer,
		NEdge:  len(verInd),
		VerPtr: verPtr,
		VerInd: verInd,
	}, nil
}

// Neighbors returns the neighbor slice of vertex v. The returned slice
// aliases the graph's backing array and must not be mutated.
func (g *Graph) Neighbors(v int) []Edge {
	return g.VerInd[g.VerPtr[v]:g.VerPtr[v+1]]
}

// Degree returns the number of adjacency-list entries for v, including any
// self-loop entries.
func (g *Graph) Degree(v int) int {
	return g.VerPtr[v+1] - g.VerPtr[v]
}

// MaxDegree scans every vertex and returns the largest degree observed
// (zero for a graph with no adjacency entries). Used to size the speculative
// colorer's per-worker mark buffers (MaxColor policy (a) in the coloring
// package).
func (g *Graph) MaxDegree() int {
	max := 0
	for v := 0; v < g.NVer; v++ {
		if d := g.Degree(v); d > max {
			max = d
		}
	}
	return max
}

// VertexCount returns NVer.
func (g *Graph) VertexCount() int { return g.NVer }

// EdgeCount returns NEdge (the number of directed adjacency entries, i.e.
// twice the number of undirected edges, plus any self-loops).
func (g *Graph) EdgeCount() int { return g.NEdge }
