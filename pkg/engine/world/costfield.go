package world

import "math"

// CostField is a dense scalar field over a grid. Every cell starts at
// 1.0 and only ever grows as rooms and corridors deposit influence
// around themselves, so the field always stays finite and positive.
type CostField struct {
	grid  *Grid
	cells [][]float64
}

// NewCostField creates a uniform field of 1.0 over the given grid.
func NewCostField(grid *Grid) *CostField {
	f := &CostField{grid: grid}
	f.Reset()
	return f
}

// Reset reinitializes every cell back to the uniform 1.0 baseline,
// discarding all accumulated influence.
func (f *CostField) Reset() {
	cells := make([][]float64, f.grid.Height())
	for y := range cells {
		row := make([]float64, f.grid.Width())
		for x := range row {
			row[x] = 1.0
		}
		cells[y] = row
	}
	f.cells = cells
}

// Grid returns the grid the field is defined over.
func (f *CostField) Grid() *Grid {
	return f.grid
}

// At returns the cost at p. p must be in bounds.
func (f *CostField) At(p Point) float64 {
	return f.cells[p.Y][p.X]
}

// Accumulate deposits a logistic decay bump centered at center into
// every cell of the field: weight²/(1+e^dist), where dist is the
// Euclidean distance from the cell to center. The contribution is
// weight²/2 at the center itself and falls off smoothly with distance,
// never quite reaching zero.
func (f *CostField) Accumulate(center Point, weight float64) {
	w2 := weight * weight
	for y, row := range f.cells {
		for x := range row {
			dist := center.EuclideanDistance(Point{X: x, Y: y})
			row[x] += w2 / (1 + math.Exp(dist))
		}
	}
}

// ColumnSums returns the per-column marginal cost totals.
func (f *CostField) ColumnSums() []float64 {
	sums := make([]float64, f.grid.Width())
	for _, row := range f.cells {
		for x, v := range row {
			sums[x] += v
		}
	}
	return sums
}

// RowSums returns the per-row marginal cost totals.
func (f *CostField) RowSums() []float64 {
	sums := make([]float64, f.grid.Height())
	for y, row := range f.cells {
		for _, v := range row {
			sums[y] += v
		}
	}
	return sums
}

// Values returns a copy of the field contents, indexed [y][x]. The
// copy keeps callers (JSON encoders, plotters) from mutating the field
// behind the generator's back.
func (f *CostField) Values() [][]float64 {
	out := make([][]float64, len(f.cells))
	for y, row := range f.cells {
		out[y] = append([]float64(nil), row...)
	}
	return out
}

// MinMax returns the smallest and largest cell values. Renderers use
// this to normalize heights and colors.
func (f *CostField) MinMax() (min, max float64) {
	min = math.Inf(1)
	max = math.Inf(-1)
	for _, row := range f.cells {
		for _, v := range row {
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	return min, max
}
