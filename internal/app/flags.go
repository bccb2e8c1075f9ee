package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Gen   string
	Scale int
	Seed  int64

	Width  int
	Height int
	Rooms  int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Gen: "dungeon", Scale: 10, Seed: 1337, Width: 64, Height: 48, Rooms: 8}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Gen, "gen", c.Gen, "generator to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for dungeon generation")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.Rooms, "rooms", c.Rooms, "target room count")
}

// GenOptions converts the flag values into a generator configuration map.
func (c *Config) GenOptions() map[string]string {
	return map[string]string{
		"w":     strconv.Itoa(c.Width),
		"h":     strconv.Itoa(c.Height),
		"seed":  strconv.FormatInt(c.Seed, 10),
		"rooms": strconv.Itoa(c.Rooms),
	}
}
