package core

// Tile values stored in a TileGrid.
const (
	TileWall  uint8 = 0
	TileFloor uint8 = 1
)

// TileGrid stores a 2D grid of tile values in row-major order.
type TileGrid struct {
	W, H int
	data []uint8
}

// NewTileGrid allocates a grid with the given dimensions, filled with walls.
func NewTileGrid(w, h int) *TileGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &TileGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read values directly.
func (g *TileGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *TileGrid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) lies inside the grid. Coordinates never
// wrap; out-of-range writes are dropped.
func (g *TileGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the tile at (x, y), or TileWall for out-of-range coordinates.
func (g *TileGrid) At(x, y int) uint8 {
	if !g.InBounds(x, y) {
		return TileWall
	}
	return g.data[y*g.W+x]
}

// Set writes the tile at (x, y). Out-of-range writes are ignored.
func (g *TileGrid) Set(x, y int, v uint8) {
	if !g.InBounds(x, y) {
		return
	}
	g.data[y*g.W+x] = v
}

// Clear fills the grid with walls.
func (g *TileGrid) Clear() {
	for i := range g.data {
		g.data[i] = TileWall
	}
}

// FloatGrid stores a 2D grid of float64 values in row-major order.
type FloatGrid struct {
	W, H int
	data []float64
}

// NewFloatGrid allocates a zeroed float grid with the given dimensions.
func NewFloatGrid(w, h int) *FloatGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &FloatGrid{W: w, H: h, data: make([]float64, w*h)}
}

// Cells exposes the backing slice so callers can read values directly.
func (g *FloatGrid) Cells() []float64 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *FloatGrid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) lies inside the grid.
func (g *FloatGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the value at (x, y), or 0 for out-of-range coordinates.
func (g *FloatGrid) At(x, y int) float64 {
	if !g.InBounds(x, y) {
		return 0
	}
	return g.data[y*g.W+x]
}

// Add accumulates v into the cell at (x, y). Out-of-range writes are ignored.
func (g *FloatGrid) Add(x, y int, v float64) {
	if !g.InBounds(x, y) {
		return
	}
	g.data[y*g.W+x] += v
}

// Clear fills the grid with zeros.
func (g *FloatGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
