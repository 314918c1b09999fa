package renderer

import (
	"strings"
	"testing"

	"dungen/pkg/engine/world"
)

func testMap() *world.DungeonMap {
	grid := world.NewGrid(10, 8)
	return &world.DungeonMap{
		Grid: grid,
		Rooms: []world.Room{
			{Center: world.Point{X: 2, Y: 2}, WidthExtent: 1, HeightExtent: 1},
			{Center: world.Point{X: 8, Y: 6}, WidthExtent: 2, HeightExtent: 1},
		},
		Paths: []world.Path{
			{{X: 2, Y: 2}, {X: 3, Y: 2}, {X: 4, Y: 2}, {X: 4, Y: 3}},
		},
		Field: world.NewCostField(grid),
	}
}

func TestRenderMap_Dimensions(t *testing.T) {
	m := testMap()
	img := RenderMap(m, 4)

	b := img.Bounds()
	if b.Dx() != 40 || b.Dy() != 32 {
		t.Errorf("image is %dx%d, want 40x32", b.Dx(), b.Dy())
	}
}

func TestRenderMap_RoomOverhangIsClipped(t *testing.T) {
	grid := world.NewGrid(4, 4)
	m := &world.DungeonMap{
		Grid: grid,
		// Footprint extends well past every edge.
		Rooms: []world.Room{{Center: world.Point{X: 0, Y: 0}, WidthExtent: 3, HeightExtent: 3}},
		Field: world.NewCostField(grid),
	}

	// Must not panic; the image stays grid-sized.
	img := RenderMap(m, 2)
	if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 8 {
		t.Errorf("image is %dx%d, want 8x8", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestGlyph_Precedence(t *testing.T) {
	m := testMap()

	tests := []struct {
		name string
		p    world.Point
		want rune
	}{
		{"room center wins over corridor", world.Point{X: 2, Y: 2}, GlyphCenter},
		{"corridor wins over room floor", world.Point{X: 3, Y: 2}, GlyphCorridor},
		{"room floor", world.Point{X: 1, Y: 1}, GlyphRoom},
		{"empty", world.Point{X: 9, Y: 0}, GlyphEmpty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Glyph(m, tt.p); got != tt.want {
				t.Errorf("Glyph(%v) = %q, want %q", tt.p, got, tt.want)
			}
		})
	}
}

func TestPreview_Shape(t *testing.T) {
	m := testMap()
	out := Preview(m)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 8 {
		t.Fatalf("preview has %d lines, want 8", len(lines))
	}
	for i, line := range lines {
		if len(line) != 10 {
			t.Errorf("line %d has %d columns, want 10", i, len(line))
		}
	}
}

func TestRenderSurface_CoversField(t *testing.T) {
	grid := world.NewGrid(6, 5)
	field := world.NewCostField(grid)
	field.Accumulate(world.Point{X: 3, Y: 2}, 4)

	img := RenderSurface(field)
	if img.Bounds().Empty() {
		t.Fatal("surface image is empty")
	}
}

func TestHeatColor_Clamps(t *testing.T) {
	low := HeatColor(-1)
	high := HeatColor(2)
	if low != HeatColor(0) {
		t.Errorf("HeatColor(-1) = %v, want HeatColor(0)", low)
	}
	if high != HeatColor(1) {
		t.Errorf("HeatColor(2) = %v, want HeatColor(1)", high)
	}
}
