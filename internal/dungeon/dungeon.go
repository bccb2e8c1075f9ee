// Package dungeon carves a connected dungeon layout into a 2D grid. Room
// placement and corridor routing are both steered by a spatially-decaying
// cost map that discourages crowding already-developed regions, and the
// rooms are always joined into one closed corridor loop.
package dungeon

import (
	"dungen/internal/core"

	rng "dungen/pkg/core"
)

const (
	tileWall  = core.TileWall
	tileFloor = core.TileFloor
)

// GenStats counts the cost-map activity of the latest generation pass.
type GenStats struct {
	RoomDeposits int
	Connects     int
	PathDeposits int
}

// World owns all state for one dungeon generator: the tile grid, the cost
// map and the ordered room list. A single World must not be shared across
// goroutines during a pass; generation is strictly sequential because every
// sampling and routing decision depends on the cost left by prior steps.
type World struct {
	cfg Config

	w, h int

	tiles   *core.TileGrid
	cost    *CostMap
	rooms   []Room
	links   [][2]int
	display []uint8
	heat    []float32

	rng   *rng.RNG
	stats GenStats
}

// New returns a dungeon World with the provided dimensions using defaults.
func New(w, h int) (*World, error) {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a dungeon World configured from the provided
// options. Invalid configurations are rejected before any state exists.
func NewWithConfig(cfg Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	total := cfg.Width * cfg.Height
	w := &World{
		cfg:     cfg,
		w:       cfg.Width,
		h:       cfg.Height,
		tiles:   core.NewTileGrid(cfg.Width, cfg.Height),
		cost:    NewCostMap(cfg.Width, cfg.Height),
		display: make([]uint8, total),
		heat:    make([]float32, total),
	}
	w.rng = rng.NewRNG(cfg.Seed)
	return w, nil
}

// Name returns the generator identifier.
func (w *World) Name() string { return "dungeon" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.w, H: w.h} }

// Cells exposes the current display buffer.
func (w *World) Cells() []uint8 { return w.display }

// Tiles exposes the wall/floor layer.
func (w *World) Tiles() []uint8 { return w.tiles.Cells() }

// CostField exposes the accumulated cost surface.
func (w *World) CostField() []float64 { return w.cost.Cells() }

// CostHeat exposes the cost surface normalized to [0,1] for overlays.
func (w *World) CostHeat() []float32 { return w.heat }

// MaxCost reports the peak of the accumulated cost surface.
func (w *World) MaxCost() float64 { return w.cost.Max() }

// Rooms exposes the ordered room list of the latest pass.
func (w *World) Rooms() []Room { return w.rooms }

// Links exposes the carved connections as room-index pairs, main loop first.
func (w *World) Links() [][2]int { return w.links }

// Stats reports cost-map activity counters for the latest pass.
func (w *World) Stats() GenStats { return w.stats }

// Config returns the active configuration.
func (w *World) Config() Config { return w.cfg }

// Reset runs one full generation pass with deterministic randomness. Prior
// grid, cost and room state is discarded atomically; a seed of zero falls
// back to the configured seed. Identical seed and configuration produce
// identical output.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rng.Reseed(effective)

	w.tiles.Clear()
	w.cost.Clear()
	w.rooms = w.rooms[:0]
	w.links = w.links[:0]
	w.stats = GenStats{}

	w.placeRooms(w.cfg.Params.TargetRoomCount)
	w.buildLoop()
	w.extraLinks()
	w.rebuildDisplay()
}

// IntParameter reports the current value of an integer tunable.
func (w *World) IntParameter(key string) (int, bool) {
	switch key {
	case "target_room_count":
		return w.cfg.Params.TargetRoomCount, true
	case "min_room_dim":
		return w.cfg.Params.MinRoomDim, true
	case "max_room_dim":
		return w.cfg.Params.MaxRoomDim, true
	}
	return 0, false
}

// FloatParameter reports the current value of a float tunable.
func (w *World) FloatParameter(key string) (float64, bool) {
	switch key {
	case "room_cost_weight":
		return w.cfg.Params.RoomCostWeight, true
	case "path_cost_weight":
		return w.cfg.Params.PathCostWeight, true
	case "extra_link_chance":
		return w.cfg.Params.ExtraLinkChance, true
	}
	return 0, false
}

// SetFloatParameter updates a float tunable, clamping to its valid range.
func (w *World) SetFloatParameter(key string, value float64) bool {
	if value < 0 {
		value = 0
	}
	switch key {
	case "room_cost_weight":
		w.cfg.Params.RoomCostWeight = value
	case "path_cost_weight":
		w.cfg.Params.PathCostWeight = value
	case "extra_link_chance":
		if value > 1 {
			value = 1
		}
		w.cfg.Params.ExtraLinkChance = value
	default:
		return false
	}
	return true
}

// SetIntParameter updates an integer tunable, clamping to its valid range.
func (w *World) SetIntParameter(key string, value int) bool {
	if value < 1 {
		value = 1
	}
	switch key {
	case "target_room_count":
		w.cfg.Params.TargetRoomCount = value
	case "min_room_dim":
		w.cfg.Params.MinRoomDim = value
		if w.cfg.Params.MaxRoomDim < value {
			w.cfg.Params.MaxRoomDim = value
		}
	case "max_room_dim":
		if value < w.cfg.Params.MinRoomDim {
			value = w.cfg.Params.MinRoomDim
		}
		w.cfg.Params.MaxRoomDim = value
	default:
		return false
	}
	return true
}

// ParameterControls lists the tunables the viewer may adjust live.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "room_cost_weight", Label: "Room cost weight", Type: core.ParamTypeFloat, Step: 0.25, Min: 0, HasMin: true},
		{Key: "path_cost_weight", Label: "Path cost weight", Type: core.ParamTypeFloat, Step: 0.25, Min: 0, HasMin: true},
		{Key: "extra_link_chance", Label: "Extra link chance", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "target_room_count", Label: "Target rooms", Type: core.ParamTypeInt, Step: 1, Min: 1, HasMin: true},
	}
}

func init() {
	core.Register("dungeon", func(cfg map[string]string) core.Generator {
		world, err := NewWithConfig(FromMap(cfg))
		if err != nil {
			world, _ = NewWithConfig(DefaultConfig())
		}
		return world
	})
}
