// Copyright (C) 2024, Avalanche Parallel Project. All rights reserved.
// See the file LICENSE for licensing terms.

package graph

// Builder accumulates undirected edges and produces an immutable Graph.
// It exists for tests and the benchmark harness; real ingestion pipelines
// are expected to build the CSR arrays directly and call New.
type Builder struct {
	nVer  int
	pairs [][2]int
}

// NewBuilder returns a Builder for a graph with nVer vertices and no
// edges yet.
func NewBuilder(nVer int) *Builder {
	return &Builder{nVer: nVer}
}

// AddEdge records an undirected edge between u and v. Self-loops are
// accepted and stored; Build will emit the corresponding Tail==v entries
// since coloring logic, not the builder, is responsible for skipping
// them uniformly.
func (b *Builder) AddEdge(u, v int) {
	b.pairs = append(b.pairs, [2]int{u, v})
}

// Build assembles the CSR representation via count -> prefix-sum ->
// scatter, mirroring the layout the Color-Class Index build uses for
// color bins.
func (b *Builder) Build() (*Graph, error) {
	degree := make([]int, b.nVer+1)
	for _, p := range b.pairs {
		u, v := p[0], p[1]
		degree[u+1]++
		if u != v {
			degree[v+1]++
		}
	}
	for i := 0; i < b.nVer; i++ {
		degree[i+1] += degree[i]
	}

	verPtr := degree
	verInd := make([]Edge, verPtr[b.nVer])
	cursor := make([]int, b.nVer)
	copy(cursor, verPtr[:b.nVer])

	for _, p := range b.pairs {
		u, v := p[0], p[1]
		verInd[cursor[u]] = Edge{Tail: v}
		cursor[u]++
		if u != v {
			verInd[cursor[v]] = Edge{Tail: u}
			cursor[v]++
		}
	}

	return New(b.nVer, verPtr, verInd)
}
