// Copyright (C) 2024, Avalanche Parallel Project. All rights reserved.
// See the file LICENSE for licensing terms.

package coloring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Final-Project-13520137/parallel-coloring/graph"
)

func mustBuild(t *testing.T, nVer int, edges [][2]int) *graph.Graph {
	t.Helper()
	b := graph.NewBuilder(nVer)
	for _, e := range edges {
		b.AddEdge(e[0], e[1])
	}
	g, err := b.Build()
	require.NoError(t, err)
	return g
}

func colorAndVerify(t *testing.T, g *graph.Graph, opts Options) Result {
	t.Helper()
	vtxColor := make([]int, g.NVer)
	res, err := ColorDistanceOne(g, vtxColor, opts, nil)
	require.NoError(t, err)
	assert.Zero(t, Verify(g, vtxColor))
	for _, c := range vtxColor {
		assert.GreaterOrEqual(t, c, 0)
	}
	return res
}

func TestColorEmptyGraph(t *testing.T) {
	g := mustBuild(t, 0, nil)
	vtxColor := make([]int, 0)
	res, err := ColorDistanceOne(g, vtxColor, Options{NThreads: 4}, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, res.NumColors)
}

func TestColorIsolatedVertices(t *testing.T) {
	g := mustBuild(t, 5, nil)
	vtxColor := make([]int, 5)
	res, err := ColorDistanceOne(g, vtxColor, Options{NThreads: 4}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, res.NumColors)
	for _, c := range vtxColor {
		assert.Equal(t, 0, c)
	}
}

func TestColorTriangleNeedsThreeColors(t *testing.T) {
	g := mustBuild(t, 3, [][2]int{{0, 1}, {1, 2}, {0, 2}})
	for _, threads := range []int{1, 2, 4} {
		res := colorAndVerify(t, g, Options{NThreads: threads, Seed: 7})
		assert.Equal(t, 3, res.NumColors)
	}
}

func TestColorPathOfFiveNeedsTwoColors(t *testing.T) {
	g := mustBuild(t, 5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}})
	res := colorAndVerify(t, g, Options{NThreads: 3, Seed: 1})
	assert.LessOrEqual(t, res.NumColors, 3)
	assert.GreaterOrEqual(t, res.NumColors, 2)
}

func TestColorStarOnSixNeedsTwoColors(t *testing.T) {
	edges := [][2]int{{0, 1}, {0, 2}, {0, 3}, {0, 4}, {0, 5}}
	g := mustBuild(t, 6, edges)
	res := colorAndVerify(t, g, Options{NThreads: 4, Seed: 42})
	assert.Equal(t, 2, res.NumColors)
}

func TestColorK4NeedsFourColors(t *testing.T) {
	edges := [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	g := mustBuild(t, 4, edges)
	res := colorAndVerify(t, g, Options{NThreads: 2, Seed: 3})
	assert.Equal(t, 4, res.NumColors)
}

func TestColorSelfLoopsIgnored(t *testing.T) {
	g := mustBuild(t, 3, [][2]int{{0, 0}, {0, 1}, {1, 2}})
	res := colorAndVerify(t, g, Options{NThreads: 2})
	assert.LessOrEqual(t, res.NumColors, 2)
}

func TestColorDistanceOneRejectsMismatchedColorArray(t *testing.T) {
	g := mustBuild(t, 3, [][2]int{{0, 1}})
	_, err := ColorDistanceOne(g, make([]int, 2), Options{}, nil)
	assert.ErrorIs(t, err, ErrColorArraySize)
}

func TestColorDistanceOneRejectsNegativeThreadCount(t *testing.T) {
	g := mustBuild(t, 3, [][2]int{{0, 1}})
	_, err := ColorDistanceOne(g, make([]int, 3), Options{NThreads: -1}, nil)
	assert.ErrorIs(t, err, ErrInvalidThreadCount)
}

func TestColorDistanceOneZeroThreadsDefaultsToOne(t *testing.T) {
	g := mustBuild(t, 3, [][2]int{{0, 1}})
	_, err := ColorDistanceOne(g, make([]int, 3), Options{NThreads: 0}, nil)
	assert.NoError(t, err)
}

func TestColorDistanceOneDeterministic(t *testing.T) {
	edges := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 2}}
	g := mustBuild(t, 4, edges)
	opts := Options{NThreads: 4, Seed: 99}

	first := make([]int, 4)
	_, err := ColorDistanceOne(g, first, opts, nil)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again := make([]int, 4)
		_, err := ColorDistanceOne(g, again, opts, nil)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
