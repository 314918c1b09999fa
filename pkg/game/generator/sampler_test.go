package generator

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dungen/pkg/engine/world"
)

func TestSampleExtents_StaysInHalfOpenRange(t *testing.T) {
	s := NewRoomSampler(rand.New(rand.NewSource(1)))

	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		we, he := s.SampleExtents(5, 15)
		for _, e := range []int{we, he} {
			assert.GreaterOrEqual(t, e, 2, "extent below floor(min/2)")
			assert.Less(t, e, 7, "extent must never reach floor(max/2)")
			seen[e] = true
		}
	}
	// With 2000 draws across five values, every value should appear.
	for v := 2; v <= 6; v++ {
		assert.True(t, seen[v], "extent %d never drawn", v)
	}
}

func TestSampleExtents_CollapsedRange(t *testing.T) {
	s := NewRoomSampler(rand.New(rand.NewSource(2)))

	for i := 0; i < 50; i++ {
		we, he := s.SampleExtents(1, 1)
		assert.Equal(t, 0, we)
		assert.Equal(t, 0, he)
	}
}

func TestSampleCenter_InBounds(t *testing.T) {
	s := NewRoomSampler(rand.New(rand.NewSource(3)))
	grid := world.NewGrid(20, 11)
	field := world.NewCostField(grid)

	for i := 0; i < 500; i++ {
		c := s.SampleCenter(field)
		require.True(t, grid.Contains(c), "sampled center %v out of bounds", c)
	}
}

func TestSampleCenter_AvoidsExpensiveColumns(t *testing.T) {
	s := NewRoomSampler(rand.New(rand.NewSource(4)))
	grid := world.NewGrid(20, 20)
	field := world.NewCostField(grid)

	// Pile cost onto the left edge; the column marginals there become
	// far more expensive than on the right.
	for i := 0; i < 5; i++ {
		field.Accumulate(world.Point{X: 0, Y: 10}, 10)
	}

	left, right := 0, 0
	for i := 0; i < 2000; i++ {
		c := s.SampleCenter(field)
		if c.X < 10 {
			left++
		} else {
			right++
		}
	}
	assert.Greater(t, right, left, "samples should prefer the cheap half of the map")
}

func TestInvertCosts_StrictlyPositiveAndOrderReversing(t *testing.T) {
	weights := invertCosts([]float64{4, 1, 2.5})

	require.Len(t, weights, 3)
	for _, w := range weights {
		assert.Greater(t, w, 0.0)
	}
	// Cheapest column gets the largest weight, most expensive the smallest.
	assert.Greater(t, weights[1], weights[2])
	assert.Greater(t, weights[2], weights[0])
	assert.InDelta(t, 1.0, weights[0], 1e-9, "most expensive entry keeps weight 1")
}
