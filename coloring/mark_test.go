// Copyright (C) 2024, Avalanche Parallel Project. All rights reserved.
// See the file LICENSE for licensing terms.

package coloring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkSetAndReset(t *testing.T) {
	m := newMark(4)
	assert.False(t, m.isSet(2))
	m.set(2)
	assert.True(t, m.isSet(2))
	m.reset()
	assert.False(t, m.isSet(2))
}

func TestMarkGrowsOnDemand(t *testing.T) {
	m := newMark(1)
	m.set(10)
	assert.True(t, m.isSet(10))
	assert.False(t, m.isSet(9))
}

func TestMarkResetOnlyTouchedEntries(t *testing.T) {
	m := newMark(8)
	for c := 0; c < 8; c++ {
		m.set(c)
	}
	m.reset()
	for c := 0; c < 8; c++ {
		assert.False(t, m.isSet(c))
	}
}
