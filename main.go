package main

import (
	"flag"
	"math/rand"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"dungen/pkg/game/devtools"
	"dungen/pkg/game/generator"
	"dungen/pkg/game/renderer"
	"dungen/pkg/game/server"
	"dungen/pkg/game/viewer"
	"dungen/pkg/logger"
)

func main() {
	defaults := generator.DefaultConfig()

	width := flag.Int("width", defaults.MapWidth, "map width in cells")
	height := flag.Int("height", defaults.MapHeight, "map height in cells")
	rooms := flag.Int("rooms", defaults.RoomCount, "number of rooms to place")
	minRoom := flag.Int("min-room", defaults.MinRoomDim, "smallest room dimension")
	maxRoom := flag.Int("max-room", defaults.MaxRoomDim, "largest room dimension")
	roomWeight := flag.Float64("room-weight", defaults.RoomWeight, "cost bump weight per room")
	pathWeight := flag.Float64("path-weight", defaults.PathWeight, "cost bump weight per corridor cell")
	seed := flag.Int64("seed", 0, "random seed (0 picks one from the clock)")
	out := flag.String("out", "dungeon.png", "layout PNG output path (empty to skip)")
	surface := flag.String("surface", "costfield.png", "cost-field surface PNG output path (empty to skip)")
	dump := flag.Bool("dump", false, "write a map.txt debug dump")
	preview := flag.Bool("preview", false, "print a colored ASCII preview to the terminal")
	serveAddr := flag.String("serve", "", "start the HTTP preview server on this address (e.g. :8080)")
	view := flag.Bool("view", false, "open the interactive viewer window")
	flag.Parse()

	logger.Init()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	cfg := generator.Config{
		RoomCount:  *rooms,
		MapWidth:   *width,
		MapHeight:  *height,
		MinRoomDim: *minRoom,
		MaxRoomDim: *maxRoom,
		RoomWeight: *roomWeight,
		PathWeight: *pathWeight,
	}
	gen := generator.New(cfg, rand.New(rand.NewSource(*seed)))

	logger.Log.WithFields(logrus.Fields{
		"seed":  *seed,
		"size":  [2]int{gen.Grid().Width(), gen.Grid().Height()},
		"rooms": gen.Config().RoomCount,
	}).Info("starting generation")

	if *view {
		if err := viewer.Run(gen); err != nil {
			logger.Log.WithError(err).Fatal("viewer exited")
		}
		return
	}

	if *serveAddr != "" {
		srv, err := server.New(gen)
		if err != nil {
			logger.Log.WithError(err).Fatal("generation failed")
		}
		if err := srv.ListenAndServe(*serveAddr); err != nil {
			logger.Log.WithError(err).Fatal("preview server exited")
		}
		return
	}

	m, err := gen.Generate()
	if err != nil {
		logger.Log.WithError(err).Fatal("generation failed")
	}
	logger.Log.WithFields(logrus.Fields{
		"rooms": len(m.Rooms),
		"paths": len(m.Paths),
	}).Info("generation complete")

	if *out != "" {
		if err := renderer.WritePNG(*out, renderer.RenderMap(m, 8)); err != nil {
			logger.Log.WithError(err).Fatal("writing layout image")
		}
		logger.Log.WithField("file", *out).Info("wrote layout image")
	}

	if *surface != "" {
		if err := renderer.WritePNG(*surface, renderer.RenderSurface(m.Field)); err != nil {
			logger.Log.WithError(err).Fatal("writing surface image")
		}
		logger.Log.WithField("file", *surface).Info("wrote cost-field surface")
	}

	if *dump {
		path, err := devtools.DumpMapToFile(m, *seed)
		if err != nil {
			logger.Log.WithError(err).Fatal("writing map dump")
		}
		logger.Log.WithField("file", path).Info("wrote map dump")
	}

	if *preview {
		renderer.PrintPreview(os.Stdout, m)
	}
}
