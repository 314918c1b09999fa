// Package renderer turns a finished dungeon map into visual artifacts:
// a PNG rasterization of the layout, an isometric surface plot of the
// cost field, and a colored ASCII preview for the terminal. It only
// consumes generation output and never feeds back into it.
package renderer

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"dungen/pkg/engine/world"
)

// Layout palette.
var (
	colorBackground = color.RGBA{26, 26, 46, 255}
	colorRoom       = color.RGBA{160, 160, 180, 255}
	colorCorridor   = color.RGBA{190, 160, 90, 255}
	colorCenter     = color.RGBA{0, 255, 0, 255}
)

// RenderMap rasterizes the layout at scale pixels per cell: room
// footprints first (clipped at the grid edge), corridors on top, then
// a marker on every room center.
func RenderMap(m *world.DungeonMap, scale int) *image.RGBA {
	if scale < 1 {
		scale = 1
	}
	w, h := m.Grid.Width(), m.Grid.Height()
	img := image.NewRGBA(image.Rect(0, 0, w*scale, h*scale))

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			fillCell(img, x, y, scale, colorBackground)
		}
	}
	for _, room := range m.Rooms {
		min, max := room.Bounds()
		for y := min.Y; y <= max.Y; y++ {
			for x := min.X; x <= max.X; x++ {
				if m.Grid.Contains(world.Point{X: x, Y: y}) {
					fillCell(img, x, y, scale, colorRoom)
				}
			}
		}
	}
	for _, path := range m.Paths {
		for _, p := range path {
			fillCell(img, p.X, p.Y, scale, colorCorridor)
		}
	}
	for _, room := range m.Rooms {
		fillCell(img, room.Center.X, room.Center.Y, scale, colorCenter)
	}
	return img
}

// RenderHeatmap rasterizes the cost field as a flat heatmap, scale
// pixels per cell, colored from cheap (blue) to expensive (red).
func RenderHeatmap(f *world.CostField, scale int) *image.RGBA {
	if scale < 1 {
		scale = 1
	}
	g := f.Grid()
	img := image.NewRGBA(image.Rect(0, 0, g.Width()*scale, g.Height()*scale))

	min, max := f.MinMax()
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			t := normalize(f.At(world.Point{X: x, Y: y}), min, max)
			fillCell(img, x, y, scale, HeatColor(t))
		}
	}
	return img
}

// HeatColor maps t in [0,1] onto a blue → yellow → red gradient.
func HeatColor(t float64) color.RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	if t < 0.5 {
		// blue to yellow
		u := t * 2
		return color.RGBA{
			R: uint8(40 + 215*u),
			G: uint8(60 + 195*u),
			B: uint8(180 * (1 - u)),
			A: 255,
		}
	}
	// yellow to red
	u := (t - 0.5) * 2
	return color.RGBA{
		R: 255,
		G: uint8(255 * (1 - u)),
		B: 0,
		A: 255,
	}
}

// normalize maps v into [0,1] over [min,max]; a flat field maps to 0.
func normalize(v, min, max float64) float64 {
	if max <= min {
		return 0
	}
	return (v - min) / (max - min)
}

func fillCell(img *image.RGBA, x, y, scale int, c color.RGBA) {
	for py := y * scale; py < (y+1)*scale; py++ {
		for px := x * scale; px < (x+1)*scale; px++ {
			img.SetRGBA(px, py, c)
		}
	}
}

// WritePNG encodes img into a file at path.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return nil
}
