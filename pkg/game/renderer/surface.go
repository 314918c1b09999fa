package renderer

import (
	"image"
	"image/color"

	"dungen/pkg/engine/world"
)

// Surface plot geometry. Each cell projects onto an isometric diamond;
// heightScale stretches the normalized cost value vertically.
const (
	isoTileWidth  = 8
	isoTileHeight = 4
	heightScale   = 80
	surfaceMargin = 16
)

// RenderSurface draws an isometric 3D plot of the cost field. Cells are
// painted back to front so nearer columns occlude farther ones; color
// and elevation both follow the normalized cost value.
func RenderSurface(f *world.CostField) *image.RGBA {
	g := f.Grid()
	w, h := g.Width(), g.Height()

	imgW := (w+h)*isoTileWidth/2 + surfaceMargin*2
	imgH := (w+h)*isoTileHeight/2 + heightScale + surfaceMargin*2
	img := image.NewRGBA(image.Rect(0, 0, imgW, imgH))
	fillBackground(img, colorBackground)

	min, max := f.MinMax()

	// The x-y diagonal is the depth axis: cells with a smaller x+y sit
	// farther back and get painted first.
	originX := h * isoTileWidth / 2
	for depth := 0; depth <= w+h-2; depth++ {
		for x := 0; x < w; x++ {
			y := depth - x
			if y < 0 || y >= h {
				continue
			}
			t := normalize(f.At(world.Point{X: x, Y: y}), min, max)

			ix := surfaceMargin + originX + (x-y)*isoTileWidth/2
			iy := surfaceMargin + heightScale + (x+y)*isoTileHeight/2 - int(t*heightScale)
			drawColumn(img, ix, iy, t)
		}
	}
	return img
}

// drawColumn paints one cell of the surface: a short vertical bar with
// a brighter cap, enough to read the relief without real shading.
func drawColumn(img *image.RGBA, x, y int, t float64) {
	top := HeatColor(t)
	side := color.RGBA{top.R / 2, top.G / 2, top.B / 2, 255}

	for dy := 2; dy < 2+isoTileHeight; dy++ {
		for dx := 0; dx < isoTileWidth; dx++ {
			setIfInBounds(img, x+dx, y+dy, side)
		}
	}
	for dy := 0; dy < 2; dy++ {
		for dx := 0; dx < isoTileWidth; dx++ {
			setIfInBounds(img, x+dx, y+dy, top)
		}
	}
}

func setIfInBounds(img *image.RGBA, x, y int, c color.RGBA) {
	if image.Pt(x, y).In(img.Bounds()) {
		img.SetRGBA(x, y, c)
	}
}

func fillBackground(img *image.RGBA, c color.RGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}
