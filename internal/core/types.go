package core

// Size describes the dimensions of a dungeon grid.
type Size struct {
	W int
	H int
}

// Generator defines the minimal contract a dungeon generator must implement.
// Reset runs a full generation pass with the provided seed; a seed of zero
// falls back to the generator's configured seed.
type Generator interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Cells() []uint8
}

// Factory constructs a Generator using an optional configuration map.
type Factory func(cfg map[string]string) Generator

var generators = map[string]Factory{}

// Register adds a generator factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	generators[name] = f
}

// Generators exposes the registry of available generator factories.
func Generators() map[string]Factory {
	return generators
}
