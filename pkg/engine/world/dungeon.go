package world

// Room is an axis-aligned rectangular room described by its center cell
// and half-extents. The full footprint is (2·extent+1) cells per axis.
// Centers are sampled in bounds, but the footprint is allowed to
// overhang the grid edge; renderers clip, the generator does not.
type Room struct {
	Center       Point
	WidthExtent  int
	HeightExtent int
}

// Bounds returns the unclipped corners of the room footprint,
// inclusive on both ends.
func (r Room) Bounds() (min, max Point) {
	min = Point{X: r.Center.X - r.WidthExtent, Y: r.Center.Y - r.HeightExtent}
	max = Point{X: r.Center.X + r.WidthExtent, Y: r.Center.Y + r.HeightExtent}
	return min, max
}

// Contains reports whether p falls inside the room footprint.
func (r Room) Contains(p Point) bool {
	min, max := r.Bounds()
	return p.X >= min.X && p.X <= max.X && p.Y >= min.Y && p.Y <= max.Y
}

// Path is an ordered run of grid cells from one room center to another,
// inclusive of both endpoints. Consecutive cells are always cardinal
// neighbors.
type Path []Point

// DungeonMap bundles the finished generation artifacts for the
// rendering layer: the grid, the rooms in placement order, the corridor
// paths in connection order, and the final cost field.
type DungeonMap struct {
	Grid  *Grid
	Rooms []Room
	Paths []Path
	Field *CostField
}
