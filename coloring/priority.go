// Copyright (C) 2024, Avalanche Parallel Project. All rights reserved.
// See the file LICENSE for licensing terms.

package coloring

import "golang.org/x/exp/rand"

// GeneratePriorities draws one float64 priority per vertex, used only for
// symmetry breaking in conflict resolution (see resolveConflicts). The
// values are immutable once generated and are drawn exactly once per
// coloring run, regardless of how many rounds follow.
//
// Two calls with the same seed and n produce identical priorities, which
// is what gives ColorDistanceOne its same-thread-count determinism law.
func GeneratePriorities(n int, seed int64) []float64 {
	src := rand.NewSource(uint64(seed))
	rng := rand.New(src)

	priorities := make([]float64, n)
	for v := 0; v < n; v++ {
		priorities[v] = rng.Float64()
	}
	return priorities
}
