// Package generator implements the cost-field dungeon generation
// engine: a weighted room-placement sampler, a weighted-A* pathfinder,
// and the orchestrator that places rooms and then links them into a
// single cycle of corridors. Every committed room and corridor cell
// deposits a repulsion bump into a shared cost field, so later
// structures are pushed away from earlier ones.
package generator

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"dungen/pkg/engine/world"
	"dungen/pkg/logger"
)

// DungeonGenerator drives the generation protocol. It owns its grid,
// its cost field, and its random source; nothing is shared globally.
//
// Generation is strictly sequential: each room placement sees the cost
// deposited by all earlier rooms, and each corridor sees the cost of
// all earlier rooms and corridors. A generator instance must not be
// used from multiple goroutines.
type DungeonGenerator struct {
	cfg     Config
	grid    *world.Grid
	field   *world.CostField
	sampler *RoomSampler

	rooms []world.Room
	paths []world.Path
}

// New creates a generator for the given configuration. A nil rng gets
// a time-seeded source; tests pass a fixed-seed rand.Rand for
// reproducible output.
func New(cfg Config, rng *rand.Rand) *DungeonGenerator {
	cfg = cfg.normalized()
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	grid := world.NewGrid(cfg.MapWidth, cfg.MapHeight)
	return &DungeonGenerator{
		cfg:     cfg,
		grid:    grid,
		field:   world.NewCostField(grid),
		sampler: NewRoomSampler(rng),
	}
}

// Generate runs one full generation pass: place RoomCount rooms, then
// connect consecutive rooms (wrapping last to first) with corridors
// carved by the pathfinder. Rooms and paths from a previous call are
// discarded, but the cost field keeps its accumulated state, so
// repeated calls on one generator spread new layouts away from old
// ones. Call Field().Reset() first for a cold start.
func (d *DungeonGenerator) Generate() (*world.DungeonMap, error) {
	d.rooms = make([]world.Room, 0, d.cfg.RoomCount)
	d.paths = make([]world.Path, 0, d.cfg.RoomCount)

	for i := 0; i < d.cfg.RoomCount; i++ {
		center := d.sampler.SampleCenter(d.field)
		we, he := d.sampler.SampleExtents(d.cfg.MinRoomDim, d.cfg.MaxRoomDim)
		d.rooms = append(d.rooms, world.Room{Center: center, WidthExtent: we, HeightExtent: he})
		d.field.Accumulate(center, d.cfg.RoomWeight)

		logger.Log.WithFields(logrus.Fields{
			"room":   i,
			"center": center,
			"we":     we,
			"he":     he,
		}).Debug("placed room")
	}

	n := len(d.rooms)
	for i := 0; i < n; i++ {
		from := d.rooms[i].Center
		to := d.rooms[(i+1)%n].Center

		path, err := FindPath(from, to, d.grid, d.field)
		if err != nil {
			return nil, fmt.Errorf("connecting room %d to room %d: %w", i, (i+1)%n, err)
		}
		d.paths = append(d.paths, path)
		for _, cell := range path {
			d.field.Accumulate(cell, d.cfg.PathWeight)
		}

		logger.Log.WithFields(logrus.Fields{
			"edge":  i,
			"cells": len(path),
		}).Debug("carved corridor")
	}

	return d.Map(), nil
}

// Config returns the normalized configuration in effect.
func (d *DungeonGenerator) Config() Config {
	return d.cfg
}

// Grid returns the generator's grid.
func (d *DungeonGenerator) Grid() *world.Grid {
	return d.grid
}

// Field returns the generator's cost field.
func (d *DungeonGenerator) Field() *world.CostField {
	return d.field
}

// Rooms returns the rooms of the last Generate call in placement order.
func (d *DungeonGenerator) Rooms() []world.Room {
	return d.rooms
}

// Paths returns the corridors of the last Generate call in edge order.
func (d *DungeonGenerator) Paths() []world.Path {
	return d.paths
}

// Map bundles the current artifacts for the rendering layer.
func (d *DungeonGenerator) Map() *world.DungeonMap {
	return &world.DungeonMap{
		Grid:  d.grid,
		Rooms: d.rooms,
		Paths: d.paths,
		Field: d.field,
	}
}
