package dungeon

import "testing"

func TestDefaultConfigValidates(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config rejected: %v", err)
	}
}

func TestFromMapParsesKnownKeys(t *testing.T) {
	cfg := FromMap(map[string]string{
		"w":                 "96",
		"h":                 "64",
		"seed":              "7",
		"rooms":             "12",
		"min_room_dim":      "3",
		"max_room_dim":      "6",
		"room_weight":       "4.5",
		"path_weight":       "0.5",
		"extra_link_chance": "0.3",
	})
	if cfg.Width != 96 || cfg.Height != 64 || cfg.Seed != 7 {
		t.Fatalf("dimensions or seed not applied: %+v", cfg)
	}
	p := cfg.Params
	if p.TargetRoomCount != 12 || p.MinRoomDim != 3 || p.MaxRoomDim != 6 {
		t.Fatalf("room params not applied: %+v", p)
	}
	if p.RoomCostWeight != 4.5 || p.PathCostWeight != 0.5 || p.ExtraLinkChance != 0.3 {
		t.Fatalf("weights not applied: %+v", p)
	}
}

func TestFromMapIgnoresMalformedValues(t *testing.T) {
	cfg := FromMap(map[string]string{
		"w":                 "not-a-number",
		"rooms":             "-3",
		"room_weight":       "-1",
		"extra_link_chance": "1.5",
	})
	def := DefaultConfig()
	if cfg.Width != def.Width {
		t.Fatalf("malformed width altered config: %d", cfg.Width)
	}
	if cfg.Params.TargetRoomCount != def.Params.TargetRoomCount {
		t.Fatalf("negative room count accepted: %d", cfg.Params.TargetRoomCount)
	}
	if cfg.Params.RoomCostWeight != def.Params.RoomCostWeight {
		t.Fatalf("negative weight accepted: %g", cfg.Params.RoomCostWeight)
	}
	if cfg.Params.ExtraLinkChance != def.Params.ExtraLinkChance {
		t.Fatalf("out-of-range chance accepted: %g", cfg.Params.ExtraLinkChance)
	}
}

func TestFromMapKeepsDimBoundsOrdered(t *testing.T) {
	cfg := FromMap(map[string]string{"min_room_dim": "9", "max_room_dim": "4"})
	if cfg.Params.MaxRoomDim < cfg.Params.MinRoomDim {
		t.Fatalf("max below min survived FromMap: %+v", cfg.Params)
	}
}

func TestValidateRejectsBadConfigs(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -5 }},
		{"zero rooms", func(c *Config) { c.Params.TargetRoomCount = 0 }},
		{"zero min dim", func(c *Config) { c.Params.MinRoomDim = 0 }},
		{"max below min", func(c *Config) { c.Params.MaxRoomDim = c.Params.MinRoomDim - 1 }},
		{"negative room weight", func(c *Config) { c.Params.RoomCostWeight = -0.1 }},
		{"negative path weight", func(c *Config) { c.Params.PathCostWeight = -2 }},
		{"chance above one", func(c *Config) { c.Params.ExtraLinkChance = 1.01 }},
		{"negative chance", func(c *Config) { c.Params.ExtraLinkChance = -0.01 }},
	}
	for _, tc := range cases {
		cfg := DefaultConfig()
		tc.mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("%s: expected a validation error", tc.name)
		}
		if _, err := NewWithConfig(cfg); err == nil {
			t.Fatalf("%s: NewWithConfig accepted an invalid config", tc.name)
		}
	}
}
