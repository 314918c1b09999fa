// Package world provides the spatial primitives the dungeon generator
// works with: the map grid, the cost field, and the finished layout
// (rooms and corridor paths) that gets handed to renderers.
package world

import "math"

// Point is a grid coordinate. X is the column, Y is the row.
type Point struct {
	X int
	Y int
}

// ManhattanDistance returns the L1 distance between p and o.
func (p Point) ManhattanDistance(o Point) int {
	dx := p.X - o.X
	if dx < 0 {
		dx = -dx
	}
	dy := p.Y - o.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// EuclideanDistance returns the straight-line distance between p and o.
func (p Point) EuclideanDistance(o Point) float64 {
	dx := float64(p.X - o.X)
	dy := float64(p.Y - o.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// cardinalOffsets lists the four cardinal directions. The order is fixed
// so neighbor expansion is deterministic.
var cardinalOffsets = [4]Point{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}

// Grid is a fixed-size 2D coordinate space. It stores no cells of its
// own; it only answers bounds and adjacency questions.
type Grid struct {
	width  int
	height int
}

// NewGrid creates a grid with the given dimensions. Non-positive
// dimensions are clamped to 1 rather than rejected.
func NewGrid(width, height int) *Grid {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	return &Grid{width: width, height: height}
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// Contains reports whether p is within the grid bounds.
func (g *Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// Neighbors returns the in-bounds cardinal neighbors of p. Interior
// cells get 4, edge cells 3, corner cells 2.
func (g *Grid) Neighbors(p Point) []Point {
	res := make([]Point, 0, 4)
	for _, dir := range cardinalOffsets {
		n := Point{X: p.X + dir.X, Y: p.Y + dir.Y}
		if g.Contains(n) {
			res = append(res, n)
		}
	}
	return res
}
