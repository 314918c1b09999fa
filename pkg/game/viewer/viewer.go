// Package viewer opens an interactive window on a dungeon generator:
// it draws the current layout, regenerates on demand, and can toggle a
// cost-field heat overlay to show why corridors went where they did.
package viewer

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"dungen/pkg/engine/world"
	"dungen/pkg/game/generator"
	"dungen/pkg/game/renderer"
	"dungen/pkg/logger"
)

const tileSize = 14

// Color palette for the layout view.
var (
	colorBackground = color.RGBA{26, 26, 46, 255}
	colorRoom       = color.RGBA{100, 100, 120, 255}
	colorCorridor   = color.RGBA{190, 160, 90, 255}
	colorCenter     = color.RGBA{0, 255, 0, 255}
)

// Viewer is the ebiten game driving the window.
//
// Keys: R regenerates, C toggles the cost overlay, S saves a PNG
// screenshot, Escape quits.
type Viewer struct {
	gen      *generator.DungeonGenerator
	m        *world.DungeonMap
	showCost bool
}

// New creates a viewer and runs one generation pass so there is
// something to draw immediately.
func New(gen *generator.DungeonGenerator) (*Viewer, error) {
	m, err := gen.Generate()
	if err != nil {
		return nil, err
	}
	return &Viewer{gen: gen, m: m}, nil
}

// Update handles input (ebiten interface).
func (v *Viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		m, err := v.gen.Generate()
		if err != nil {
			return err
		}
		v.m = m
		logger.Log.Info("regenerated layout")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		v.showCost = !v.showCost
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		name := fmt.Sprintf("dungeon-%s.png", time.Now().Format("20060102-150405"))
		if err := renderer.WritePNG(name, renderer.RenderMap(v.m, 8)); err != nil {
			logger.Log.WithError(err).Error("screenshot failed")
		} else {
			logger.Log.WithField("file", name).Info("saved screenshot")
		}
	}
	return nil
}

// Draw renders the current map (ebiten interface).
func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	if v.showCost {
		v.drawCostOverlay(screen)
		return
	}

	for _, room := range v.m.Rooms {
		min, max := room.Bounds()
		for y := min.Y; y <= max.Y; y++ {
			for x := min.X; x <= max.X; x++ {
				if v.m.Grid.Contains(world.Point{X: x, Y: y}) {
					drawTile(screen, x, y, colorRoom)
				}
			}
		}
	}
	for _, path := range v.m.Paths {
		for _, p := range path {
			drawTile(screen, p.X, p.Y, colorCorridor)
		}
	}
	for _, room := range v.m.Rooms {
		drawTile(screen, room.Center.X, room.Center.Y, colorCenter)
	}
}

func (v *Viewer) drawCostOverlay(screen *ebiten.Image) {
	min, max := v.m.Field.MinMax()
	span := max - min
	for y := 0; y < v.m.Grid.Height(); y++ {
		for x := 0; x < v.m.Grid.Width(); x++ {
			t := 0.0
			if span > 0 {
				t = (v.m.Field.At(world.Point{X: x, Y: y}) - min) / span
			}
			drawTile(screen, x, y, renderer.HeatColor(t))
		}
	}
}

func drawTile(screen *ebiten.Image, x, y int, c color.Color) {
	vector.DrawFilledRect(screen,
		float32(x*tileSize), float32(y*tileSize),
		float32(tileSize-1), float32(tileSize-1),
		c, false)
}

// Layout reports the logical screen size (ebiten interface).
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.m.Grid.Width() * tileSize, v.m.Grid.Height() * tileSize
}

// Run opens the window and blocks until the viewer exits.
func Run(gen *generator.DungeonGenerator) error {
	v, err := New(gen)
	if err != nil {
		return err
	}
	ebiten.SetWindowSize(v.m.Grid.Width()*tileSize, v.m.Grid.Height()*tileSize)
	ebiten.SetWindowTitle("dungen — R: regenerate, C: cost overlay, S: screenshot")
	return ebiten.RunGame(v)
}
