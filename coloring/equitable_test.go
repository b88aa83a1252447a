// Copyright (C) 2024, Avalanche Parallel Project. All rights reserved.
// See the file LICENSE for licensing terms.

package coloring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Final-Project-13520137/parallel-coloring/graph"
)

// TestEquitableRecolorRebalancesTowardTarget builds the canonical 12
// vertex / 3 class / {8,2,2} scenario: an edgeless graph manually colored
// into a lopsided but valid coloring (anything is distance-one valid when
// there are no edges), then checks the rebalancer pushes every class
// toward ceil(12/3) = 4 without breaking validity.
func TestEquitableRecolorRebalancesTowardTarget(t *testing.T) {
	g, err := graph.NewBuilder(12).Build()
	require.NoError(t, err)

	vtxColor := make([]int, 12)
	for v := 0; v < 8; v++ {
		vtxColor[v] = 0
	}
	vtxColor[8], vtxColor[9] = 1, 1
	vtxColor[10], vtxColor[11] = 2, 2

	idx, err := BuildColorSize(vtxColor, 3, 2)
	require.NoError(t, err)
	require.Equal(t, []int{8, 2, 2}, idx.ColorSize)

	before, err := ComputeVariance(12, 3, idx.ColorSize)
	require.NoError(t, err)

	moves, err := EquitableRecolor(g, vtxColor, idx, Options{NThreads: 2, RebalanceMode: FirstFit}, nil)
	require.NoError(t, err)
	assert.Greater(t, moves, 0)
	assert.Zero(t, Verify(g, vtxColor))

	afterIdx, err := BuildColorSize(vtxColor, 3, 2)
	require.NoError(t, err)
	after, err := ComputeVariance(12, 3, afterIdx.ColorSize)
	require.NoError(t, err)

	assert.Less(t, after.Variance, before.Variance)
	for _, s := range afterIdx.ColorSize {
		assert.LessOrEqual(t, s, targetSize(12, 3))
	}
}

func TestEquitableRecolorPreservesValidityOnRealEdges(t *testing.T) {
	b := graph.NewBuilder(8)
	b.AddEdge(0, 1)
	b.AddEdge(1, 2)
	b.AddEdge(2, 3)
	b.AddEdge(3, 0)
	b.AddEdge(4, 5)
	b.AddEdge(6, 7)
	g, err := b.Build()
	require.NoError(t, err)

	vtxColor := make([]int, 8)
	res, err := ColorDistanceOne(g, vtxColor, Options{NThreads: 2, Seed: 5}, nil)
	require.NoError(t, err)

	idx, err := BuildColorSize(vtxColor, res.NumColors, 2)
	require.NoError(t, err)

	_, err = EquitableRecolor(g, vtxColor, idx, Options{NThreads: 2, RebalanceMode: LeastUsed}, nil)
	require.NoError(t, err)
	assert.Zero(t, Verify(g, vtxColor))
}

func TestEquitableRecolorRejectsNegativeThreadCount(t *testing.T) {
	g, err := graph.NewBuilder(3).Build()
	require.NoError(t, err)

	idx, err := BuildColorSize([]int{0, 0, 1}, 2, 1)
	require.NoError(t, err)

	_, err = EquitableRecolor(g, []int{0, 0, 1}, idx, Options{NThreads: -2}, nil)
	assert.ErrorIs(t, err, ErrInvalidThreadCount)
}
