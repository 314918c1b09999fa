package renderer

import (
	"io"
	"os"
	"strings"

	"github.com/gookit/color"
	"golang.org/x/term"

	"dungen/pkg/engine/world"
)

// Glyphs for the ASCII rendering of a layout.
const (
	GlyphEmpty    = '#'
	GlyphRoom     = '.'
	GlyphCorridor = ':'
	GlyphCenter   = '@'
)

var (
	styleEmpty    = color.Style{color.FgGray}
	styleRoom     = color.Style{color.FgWhite}
	styleCorridor = color.Style{color.FgYellow}
	styleCenter   = color.Style{color.FgGreen, color.OpBold}
)

// Glyph classifies the cell at p. Room centers win over corridors,
// corridors over plain room floor.
func Glyph(m *world.DungeonMap, p world.Point) rune {
	for _, room := range m.Rooms {
		if room.Center == p {
			return GlyphCenter
		}
	}
	for _, path := range m.Paths {
		for _, c := range path {
			if c == p {
				return GlyphCorridor
			}
		}
	}
	for _, room := range m.Rooms {
		if room.Contains(p) {
			return GlyphRoom
		}
	}
	return GlyphEmpty
}

// Preview returns the plain (uncolored) ASCII rendering of the layout,
// one line per grid row.
func Preview(m *world.DungeonMap) string {
	var sb strings.Builder
	for y := 0; y < m.Grid.Height(); y++ {
		for x := 0; x < m.Grid.Width(); x++ {
			sb.WriteRune(Glyph(m, world.Point{X: x, Y: y}))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// PrintPreview writes a colored preview to w. When w is the terminal,
// rows wider than the terminal are truncated rather than wrapped.
func PrintPreview(w io.Writer, m *world.DungeonMap) {
	maxCols := m.Grid.Width()
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols < maxCols {
			maxCols = cols
		}
	}

	for y := 0; y < m.Grid.Height(); y++ {
		var sb strings.Builder
		for x := 0; x < maxCols; x++ {
			g := Glyph(m, world.Point{X: x, Y: y})
			sb.WriteString(styleFor(g).Sprint(string(g)))
		}
		io.WriteString(w, sb.String()+"\n")
	}
}

func styleFor(g rune) color.Style {
	switch g {
	case GlyphCenter:
		return styleCenter
	case GlyphCorridor:
		return styleCorridor
	case GlyphRoom:
		return styleRoom
	default:
		return styleEmpty
	}
}
