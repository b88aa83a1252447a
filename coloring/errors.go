// Copyright (C) 2024, Avalanche Parallel Project. All rights reserved.
// See the file LICENSE for licensing terms.

package coloring

import "errors"

var (
	// ErrInvalidThreadCount is returned when Options.NThreads is negative.
	// Zero is treated as "unset" and silently defaults to one thread
	// (see Options.threads); a negative count is malformed input.
	ErrInvalidThreadCount = errors.New("coloring: NThreads must not be negative")

	// ErrColorArraySize is returned when the caller-supplied vtxColor
	// slice doesn't have length NVer, and by ComputeVariance when colorSize
	// doesn't have length numColors.
	ErrColorArraySize = errors.New("coloring: vtxColor length does not match NVer")

	// ErrNotColored is returned by BuildColorSize, which requires a
	// complete, non-negative coloring, when a vertex is still unassigned.
	// EquitableRecolor does not check its vtxColor for unassigned vertices.
	ErrNotColored = errors.New("coloring: vertex has no assigned color")

	// ErrInvalidColorCount is returned when numColors is non-positive
	// where a positive class count is required.
	ErrInvalidColorCount = errors.New("coloring: numColors must be positive")
)
