// Copyright (C) 2024, Avalanche Parallel Project. All rights reserved.
// See the file LICENSE for licensing terms.

package coloring

import (
	"math"

	"go.uber.org/atomic"
)

// ColorClassIndex is the CSR-style grouping of vertices by color: vertices
// holding color c occupy ColorIndex[ColorPtr[c]:ColorPtr[c+1]]. It is the
// equitable rebalancer's sole means of iterating "every vertex in class c"
// without a linear scan of vtxColor per class.
type ColorClassIndex struct {
	// ColorPtr has length numColors+1.
	ColorPtr []int
	// ColorIndex has length len(vtxColor); ColorSize[c] == ColorPtr[c+1]-ColorPtr[c].
	ColorIndex []int
	// ColorSize[c] is the number of vertices holding color c.
	ColorSize []int
}

// BuildColorSize builds a ColorClassIndex from a complete coloring, via the
// usual CSR recipe: count occupancy per class, prefix-sum into ColorPtr,
// then scatter each vertex into its class's slice using a per-class atomic
// cursor (colorAdded) so the scatter pass can run across nThreads workers
// without a lock.
func BuildColorSize(vtxColor []int, numColors, nThreads int) (ColorClassIndex, error) {
	if numColors < 1 {
		return ColorClassIndex{}, ErrInvalidColorCount
	}
	if nThreads < 0 {
		return ColorClassIndex{}, ErrInvalidThreadCount
	}
	for _, c := range vtxColor {
		if c < 0 {
			return ColorClassIndex{}, ErrNotColored
		}
	}

	size := make([]int, numColors)
	for _, c := range vtxColor {
		size[c]++
	}

	ptr := make([]int, numColors+1)
	for c := 0; c < numColors; c++ {
		ptr[c+1] = ptr[c] + size[c]
	}

	index := make([]int, len(vtxColor))
	colorAdded := make([]atomic.Int64, numColors)

	err := parallelFor(nThreads, len(vtxColor), func(_ int, lo, hi int) error {
		for v := lo; v < hi; v++ {
			c := vtxColor[v]
			slot := colorAdded[c].Inc() - 1
			index[ptr[c]+int(slot)] = v
		}
		return nil
	})
	if err != nil {
		return ColorClassIndex{}, err
	}

	return ColorClassIndex{ColorPtr: ptr, ColorIndex: index, ColorSize: size}, nil
}

// VarianceReport summarizes how evenly vertices are spread across color
// classes, the quantity the equitable rebalancer is driving toward zero.
type VarianceReport struct {
	Min      int
	Max      int
	Mean     float64
	Variance float64
}

// ComputeVariance reports class-size statistics for a ColorClassIndex
// covering nVer vertices across numColors classes.
func ComputeVariance(nVer, numColors int, colorSize []int) (VarianceReport, error) {
	if numColors < 1 {
		return VarianceReport{}, ErrInvalidColorCount
	}
	if len(colorSize) != numColors {
		return VarianceReport{}, ErrColorArraySize
	}

	report := VarianceReport{Mean: float64(nVer) / float64(numColors)}
	if numColors == 0 {
		return report, nil
	}

	report.Min = colorSize[0]
	report.Max = colorSize[0]
	var sumSq float64
	for _, s := range colorSize {
		if s < report.Min {
			report.Min = s
		}
		if s > report.Max {
			report.Max = s
		}
		diff := float64(s) - report.Mean
		sumSq += diff * diff
	}
	report.Variance = sumSq / float64(numColors)
	return report, nil
}

// targetSize is the equitable rebalancer's per-class ceiling: ceil(NVer /
// numColors), the smallest size every class can be squeezed to without
// some class necessarily exceeding it.
func targetSize(nVer, numColors int) int {
	return int(math.Ceil(float64(nVer) / float64(numColors)))
}
