// Package server exposes generated dungeons over HTTP for quick
// previews: rendered PNGs, JSON artifacts, and a regenerate endpoint.
package server

import (
	"encoding/json"
	"image"
	"image/png"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"dungen/pkg/engine/world"
	"dungen/pkg/game/generator"
	"dungen/pkg/game/renderer"
	"dungen/pkg/logger"
)

const mapScale = 8

// Server wraps a generator and serves its artifacts. The mutex keeps
// regeneration and rendering from interleaving; the generator itself
// is single-threaded by contract.
type Server struct {
	mu  sync.Mutex
	gen *generator.DungeonGenerator
	m   *world.DungeonMap
}

// New creates a server and runs one generation pass up front.
func New(gen *generator.DungeonGenerator) (*Server, error) {
	m, err := gen.Generate()
	if err != nil {
		return nil, err
	}
	return &Server{gen: gen, m: m}, nil
}

// Router builds the HTTP routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/map.png", s.handleMapPNG)
	r.Get("/surface.png", s.handleSurfacePNG)
	r.Get("/api/map", s.handleMapJSON)
	r.Get("/api/costfield", s.handleCostFieldJSON)
	r.Post("/regenerate", s.handleRegenerate)
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	return r
}

// ListenAndServe starts serving on addr and blocks.
func (s *Server) ListenAndServe(addr string) error {
	logger.Log.WithField("addr", addr).Info("preview server listening")
	return http.ListenAndServe(addr, s.Router())
}

const indexHTML = `<!DOCTYPE html>
<html>
<head><title>dungen preview</title>
<style>
  body { background: #1a1a2e; color: #eee; font-family: monospace; padding: 20px; }
  img { image-rendering: pixelated; border: 1px solid #444; margin: 10px 0; display: block; }
  button { font-family: monospace; padding: 6px 12px; }
</style>
</head>
<body>
  <h1>dungen preview</h1>
  <form method="POST" action="/regenerate"><button>Regenerate</button></form>
  <h2>Layout</h2>
  <img src="/map.png" alt="dungeon layout">
  <h2>Cost field</h2>
  <img src="/surface.png" alt="cost field surface">
</body>
</html>
`

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(indexHTML))
}

func (s *Server) handleMapPNG(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	img := renderer.RenderMap(s.m, mapScale)
	s.mu.Unlock()
	respondPNG(w, img)
}

func (s *Server) handleSurfacePNG(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	img := renderer.RenderSurface(s.m.Field)
	s.mu.Unlock()
	respondPNG(w, img)
}

func (s *Server) handleRegenerate(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	m, err := s.gen.Generate()
	if err == nil {
		s.m = m
	}
	s.mu.Unlock()

	if err != nil {
		logger.Log.WithError(err).Error("regeneration failed")
		respondJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	logger.Log.Info("regenerated layout")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// JSON shapes for the API endpoints.
type pointJSON struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type roomJSON struct {
	Center       pointJSON `json:"center"`
	WidthExtent  int       `json:"widthExtent"`
	HeightExtent int       `json:"heightExtent"`
}

type mapJSON struct {
	Width  int           `json:"width"`
	Height int           `json:"height"`
	Rooms  []roomJSON    `json:"rooms"`
	Paths  [][]pointJSON `json:"paths"`
}

type costFieldJSON struct {
	Width  int         `json:"width"`
	Height int         `json:"height"`
	Cells  [][]float64 `json:"cells"`
}

func (s *Server) handleMapJSON(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	resp := mapJSON{
		Width:  s.m.Grid.Width(),
		Height: s.m.Grid.Height(),
		Rooms:  make([]roomJSON, 0, len(s.m.Rooms)),
		Paths:  make([][]pointJSON, 0, len(s.m.Paths)),
	}
	for _, room := range s.m.Rooms {
		resp.Rooms = append(resp.Rooms, roomJSON{
			Center:       pointJSON{room.Center.X, room.Center.Y},
			WidthExtent:  room.WidthExtent,
			HeightExtent: room.HeightExtent,
		})
	}
	for _, path := range s.m.Paths {
		pts := make([]pointJSON, 0, len(path))
		for _, p := range path {
			pts = append(pts, pointJSON{p.X, p.Y})
		}
		resp.Paths = append(resp.Paths, pts)
	}
	s.mu.Unlock()

	respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCostFieldJSON(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	resp := costFieldJSON{
		Width:  s.m.Grid.Width(),
		Height: s.m.Grid.Height(),
		Cells:  s.m.Field.Values(),
	}
	s.mu.Unlock()

	respondJSON(w, http.StatusOK, resp)
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Log.WithError(err).Error("encoding JSON response")
	}
}

func respondPNG(w http.ResponseWriter, img image.Image) {
	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, img); err != nil {
		logger.Log.WithError(err).Error("encoding PNG response")
	}
}
