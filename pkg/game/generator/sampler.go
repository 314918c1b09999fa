package generator

import (
	"math/rand"

	"dungen/pkg/engine/world"
)

// RoomSampler draws room centers biased away from expensive regions of
// the cost field, and room half-extents within configured bounds.
//
// Centers are drawn from the row and column marginals independently.
// That is an approximation of the true 2D distribution, kept on
// purpose: it is cheap, and the bias it provides is all the generator
// needs.
type RoomSampler struct {
	rng *rand.Rand
}

// NewRoomSampler creates a sampler drawing from rng.
func NewRoomSampler(rng *rand.Rand) *RoomSampler {
	return &RoomSampler{rng: rng}
}

// SampleCenter picks a cell coordinate, preferring columns and rows
// whose marginal cost totals are low.
func (s *RoomSampler) SampleCenter(field *world.CostField) world.Point {
	x := s.drawIndex(invertCosts(field.ColumnSums()))
	y := s.drawIndex(invertCosts(field.RowSums()))
	return world.Point{X: x, Y: y}
}

// SampleExtents draws the half-extents of a room, each uniform in
// [minDim/2, maxDim/2) with floor division. The upper bound stays
// exclusive, so maxDim's own half is never selected. A collapsed range
// widens to a single value so the draw stays defined.
func (s *RoomSampler) SampleExtents(minDim, maxDim int) (widthExtent, heightExtent int) {
	lo := minDim / 2
	span := maxDim/2 - lo
	if span < 1 {
		span = 1
	}
	return lo + s.rng.Intn(span), lo + s.rng.Intn(span)
}

// invertCosts flips marginal cost totals into strictly positive
// sampling weights: max+1-cost. The cheapest row or column gets the
// largest weight, and even the most expensive one keeps weight 1.
func invertCosts(costs []float64) []float64 {
	max := costs[0]
	for _, v := range costs[1:] {
		if v > max {
			max = v
		}
	}
	weights := make([]float64, len(costs))
	for i, v := range costs {
		weights[i] = max + 1 - v
	}
	return weights
}

// drawIndex draws an index with probability proportional to its weight.
func (s *RoomSampler) drawIndex(weights []float64) int {
	var total float64
	for _, w := range weights {
		total += w
	}
	r := s.rng.Float64() * total
	for i, w := range weights {
		r -= w
		if r < 0 {
			return i
		}
	}
	return len(weights) - 1
}
