// Copyright (C) 2024, Avalanche Parallel Project. All rights reserved.
// See the file LICENSE for licensing terms.

package coloring

import (
	"sort"

	"github.com/Final-Project-13520137/parallel-coloring/graph"
)

// EquitableRecolor shrinks every color class above targetSize(NVer,
// numColors) by moving its excess vertices to a permissible color that is
// still under target, preserving the distance-one invariant throughout.
//
// Classes are processed one at a time in decreasing size order rather than
// concurrently: two oversized classes racing to drain into the same
// under-target class could together overshoot it past target and then
// require a second pass to fix, which the source algorithm's single
// Mark-and-move sweep doesn't account for.
//
// Within a class, only the neighbor scan (read-only, independent per
// vertex) runs across opts.NThreads workers; picking and committing a
// replacement color is serialized over the class's members so each pick
// sees every earlier move in the same class. A class at or above target
// is marked forbidden before a color is chosen, and that check is against
// colorSize as of the moment of the pick, not a snapshot taken before the
// class started moving — this is what lets a vertex whose first-choice
// class has since saturated fall through to the next still-open one
// instead of being stranded in the oversized source class.
func EquitableRecolor(g *graph.Graph, vtxColor []int, idx ColorClassIndex, opts Options, m *Metrics) (int, error) {
	if err := opts.validate(); err != nil {
		return 0, err
	}
	numColors := len(idx.ColorSize)
	if numColors < 1 {
		return 0, ErrInvalidColorCount
	}
	target := targetSize(g.NVer, numColors)
	size := append([]int(nil), idx.ColorSize...)

	order := make([]int, numColors)
	for c := range order {
		order[c] = c
	}
	sort.Slice(order, func(i, j int) bool { return size[order[i]] > size[order[j]] })

	moves := 0
	for _, c := range order {
		if size[c] <= target {
			continue
		}
		members := idx.ColorIndex[idx.ColorPtr[c] : idx.ColorPtr[c]+idx.ColorSize[c]]

		neighborColors := make([][]int, len(members))
		err := parallelFor(opts.threads(), len(members), func(_ int, lo, hi int) error {
			for i := lo; i < hi; i++ {
				v := members[i]
				var forbidden []int
				for _, e := range g.Neighbors(v) {
					w := e.Tail
					if w == v {
						continue
					}
					if nc := vtxColor[w]; nc >= 0 {
						forbidden = append(forbidden, nc)
					}
				}
				neighborColors[i] = forbidden
			}
			return nil
		})
		if err != nil {
			return moves, err
		}

		forbidden := newMark(numColors)
		for i := 0; i < len(members) && size[c] > target; i++ {
			forbidden.reset()
			forbidden.set(c) // moving to its own class wouldn't shrink it
			for cc := 0; cc < numColors; cc++ {
				if size[cc] >= target {
					forbidden.set(cc) // saturated classes are off-limits
				}
			}
			for _, nc := range neighborColors[i] {
				forbidden.set(nc)
			}

			repl := pickReplacement(forbidden, numColors, size, opts.RebalanceMode)
			if repl < 0 {
				continue
			}
			v := members[i]
			vtxColor[v] = repl
			size[c]--
			size[repl]++
			moves++
		}
	}

	if m != nil {
		m.RebalanceMoves.Add(float64(moves))
	}
	return moves, nil
}

// pickReplacement returns a non-forbidden color under numColors according
// to mode, or -1 if every color is forbidden (the vertex cannot be moved
// and is left in its oversized class).
func pickReplacement(forbidden *mark, numColors int, size []int, mode RebalanceMode) int {
	best := -1
	for c := 0; c < numColors; c++ {
		if forbidden.isSet(c) {
			continue
		}
		switch mode {
		case LeastUsed:
			if best < 0 || size[c] < size[best] {
				best = c
			}
		default: // FirstFit
			return c
		}
	}
	return best
}
