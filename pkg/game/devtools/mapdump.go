// Package devtools provides developer tools for inspecting generated
// maps outside of the normal rendering pipeline.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"dungen/pkg/engine/world"
	"dungen/pkg/game/renderer"
)

const mapDumpFilename = "map.txt"

// DumpMap writes a full debug dump of a generated map to w: metadata,
// legend, ASCII layout, room and corridor listings, and cost-field
// statistics. Format is human- and LLM-readable (sections, key: value,
// consistent structure).
func DumpMap(w io.Writer, m *world.DungeonMap, seed int64) {
	min, max := m.Field.MinMax()

	fmt.Fprintln(w, "=== MAP DUMP (layout, corridors, cost field) ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "seed: %d\n", seed)
	fmt.Fprintf(w, "grid_width: %d\n", m.Grid.Width())
	fmt.Fprintf(w, "grid_height: %d\n", m.Grid.Height())
	fmt.Fprintf(w, "coordinate_system: x,y (0-based, x=column, y=row)\n")
	fmt.Fprintf(w, "rooms: %d\n", len(m.Rooms))
	fmt.Fprintf(w, "corridors: %d\n", len(m.Paths))
	fmt.Fprintf(w, "cost_min: %.4f\n", min)
	fmt.Fprintf(w, "cost_max: %.4f\n", max)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Legend ---")
	fmt.Fprintf(w, "%c = empty\n", renderer.GlyphEmpty)
	fmt.Fprintf(w, "%c = room floor\n", renderer.GlyphRoom)
	fmt.Fprintf(w, "%c = corridor\n", renderer.GlyphCorridor)
	fmt.Fprintf(w, "%c = room center\n", renderer.GlyphCenter)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map ---")
	io.WriteString(w, renderer.Preview(m))
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Rooms (placement order) ---")
	for i, room := range m.Rooms {
		lo, hi := room.Bounds()
		fmt.Fprintf(w, "room %d: center=%d,%d extents=%dx%d footprint=(%d,%d)..(%d,%d)\n",
			i, room.Center.X, room.Center.Y, room.WidthExtent, room.HeightExtent,
			lo.X, lo.Y, hi.X, hi.Y)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Corridors (connection order) ---")
	for i, path := range m.Paths {
		from := path[0]
		to := path[len(path)-1]
		fmt.Fprintf(w, "corridor %d: %d,%d -> %d,%d cells=%d\n",
			i, from.X, from.Y, to.X, to.Y, len(path))
	}
}

// DumpMapToFile writes the dump to map.txt in the working directory and
// returns the absolute path.
func DumpMapToFile(m *world.DungeonMap, seed int64) (string, error) {
	absPath, err := filepath.Abs(mapDumpFilename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	DumpMap(f, m, seed)
	return absPath, nil
}
