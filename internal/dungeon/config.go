package dungeon

import (
	"fmt"
	"strconv"
)

// Params holds the tunable weights and room-size bounds for generation.
type Params struct {
	TargetRoomCount int
	MinRoomDim      int
	MaxRoomDim      int

	// RoomCostWeight and PathCostWeight are squared inside CostMap.Deposit,
	// so influence grows non-linearly with the configured value.
	RoomCostWeight float64
	PathCostWeight float64

	// ExtraLinkChance is the per-pair probability of carving a crisscross
	// corridor between non-adjacent rooms after the main loop is closed.
	ExtraLinkChance float64
}

// Config controls the dungeon dimensions and generation parameters.
type Config struct {
	Width  int
	Height int

	Seed int64

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  64,
		Height: 48,
		Seed:   1337,
		Params: Params{
			TargetRoomCount: 8,
			MinRoomDim:      4,
			MaxRoomDim:      9,
			RoomCostWeight:  2.0,
			PathCostWeight:  1.0,
			ExtraLinkChance: 0.15,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value
// pairs). Malformed or out-of-range values are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["rooms"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Params.TargetRoomCount = parsed
		}
	}
	if v, ok := cfg["min_room_dim"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Params.MinRoomDim = parsed
		}
	}
	if v, ok := cfg["max_room_dim"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Params.MaxRoomDim = parsed
		}
	}
	if c.Params.MaxRoomDim < c.Params.MinRoomDim {
		c.Params.MaxRoomDim = c.Params.MinRoomDim
	}
	if v, ok := cfg["room_weight"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.RoomCostWeight = parsed
		}
	}
	if v, ok := cfg["path_weight"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.PathCostWeight = parsed
		}
	}
	if v, ok := cfg["extra_link_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.ExtraLinkChance = parsed
		}
	}
	return c
}

// Validate rejects configurations the generator cannot honor. It is called
// before any state is allocated; on error nothing has been mutated.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("dungeon: map dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	p := c.Params
	if p.TargetRoomCount <= 0 {
		return fmt.Errorf("dungeon: target room count must be positive, got %d", p.TargetRoomCount)
	}
	if p.MinRoomDim <= 0 {
		return fmt.Errorf("dungeon: min room dimension must be positive, got %d", p.MinRoomDim)
	}
	if p.MaxRoomDim < p.MinRoomDim {
		return fmt.Errorf("dungeon: max room dimension %d is below min %d", p.MaxRoomDim, p.MinRoomDim)
	}
	if p.RoomCostWeight < 0 {
		return fmt.Errorf("dungeon: room cost weight must be non-negative, got %g", p.RoomCostWeight)
	}
	if p.PathCostWeight < 0 {
		return fmt.Errorf("dungeon: path cost weight must be non-negative, got %g", p.PathCostWeight)
	}
	if p.ExtraLinkChance < 0 || p.ExtraLinkChance > 1 {
		return fmt.Errorf("dungeon: extra link chance must be within [0,1], got %g", p.ExtraLinkChance)
	}
	return nil
}
