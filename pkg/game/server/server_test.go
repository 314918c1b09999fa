package server

import (
	"encoding/json"
	"image/png"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"dungen/pkg/game/generator"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	cfg := generator.Config{
		RoomCount:  4,
		MapWidth:   32,
		MapHeight:  20,
		MinRoomDim: 5,
		MaxRoomDim: 9,
		RoomWeight: 5,
		PathWeight: 2,
	}
	s, err := New(generator.New(cfg, rand.New(rand.NewSource(1))))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return s
}

func TestMapPNG(t *testing.T) {
	s := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/map.png", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Content-Type = %q, want image/png", ct)
	}
	img, err := png.Decode(rec.Body)
	if err != nil {
		t.Fatalf("response is not a valid PNG: %v", err)
	}
	if img.Bounds().Dx() != 32*mapScale || img.Bounds().Dy() != 20*mapScale {
		t.Errorf("image is %v, want %dx%d", img.Bounds(), 32*mapScale, 20*mapScale)
	}
}

func TestSurfacePNG(t *testing.T) {
	s := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/surface.png", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if _, err := png.Decode(rec.Body); err != nil {
		t.Fatalf("response is not a valid PNG: %v", err)
	}
}

func TestMapJSON(t *testing.T) {
	s := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/map", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp mapJSON
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Width != 32 || resp.Height != 20 {
		t.Errorf("dimensions = %dx%d, want 32x20", resp.Width, resp.Height)
	}
	if len(resp.Rooms) != 4 || len(resp.Paths) != 4 {
		t.Errorf("got %d rooms / %d paths, want 4 / 4", len(resp.Rooms), len(resp.Paths))
	}
}

func TestCostFieldJSON(t *testing.T) {
	s := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/costfield", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	var resp costFieldJSON
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Cells) != 20 || len(resp.Cells[0]) != 32 {
		t.Fatalf("cells shape is %dx%d, want 20 rows x 32 cols", len(resp.Cells), len(resp.Cells[0]))
	}
	for _, row := range resp.Cells {
		for _, v := range row {
			if v <= 1.0 {
				t.Fatalf("cost value %v after generation, want > 1", v)
			}
		}
	}
}

func TestRegenerate(t *testing.T) {
	s := testServer(t)

	req := httptest.NewRequest(http.MethodPost, "/regenerate", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if len(s.m.Rooms) != 4 {
		t.Errorf("regenerated map has %d rooms, want 4", len(s.m.Rooms))
	}
}

func TestHealth(t *testing.T) {
	s := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}
