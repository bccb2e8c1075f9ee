package dungeon

import (
	"math"

	"dungen/internal/core"
)

// Logistic decay constants. The curve keeps its maximum at distance zero,
// falls smoothly through the midpoint and approaches zero without a hard
// cutoff, so nearby cells are penalized strongly and far cells barely at all.
const (
	decaySteepness = 0.6
	decayMidpoint  = 4.0
)

// CostMap accumulates decayed placement cost across the grid. Values only
// grow within one generation pass; there is no removal operation.
type CostMap struct {
	grid *core.FloatGrid
}

// NewCostMap allocates a zeroed cost map with the given dimensions.
func NewCostMap(w, h int) *CostMap {
	return &CostMap{grid: core.NewFloatGrid(w, h)}
}

// Deposit adds weight² · logisticDecay(distance) to every cell, measured
// from the given center. The weight is squared so callers tune influence
// non-linearly.
func (m *CostMap) Deposit(cx, cy int, weight float64) {
	w2 := weight * weight
	if w2 == 0 {
		return
	}
	cells := m.grid.Cells()
	width := m.grid.W
	for y := 0; y < m.grid.H; y++ {
		dy := float64(y - cy)
		row := y * width
		for x := 0; x < width; x++ {
			d := math.Hypot(float64(x-cx), dy)
			cells[row+x] += w2 * logisticDecay(d)
		}
	}
}

// At returns the accumulated cost at (x, y), always >= 0. Out-of-range
// coordinates read as zero.
func (m *CostMap) At(x, y int) float64 { return m.grid.At(x, y) }

// Cells exposes the backing cost buffer.
func (m *CostMap) Cells() []float64 { return m.grid.Cells() }

// Max returns the largest accumulated cost, used for display normalization.
func (m *CostMap) Max() float64 {
	maxVal := 0.0
	for _, v := range m.grid.Cells() {
		if v > maxVal {
			maxVal = v
		}
	}
	return maxVal
}

// Clear zeroes the cost surface for a fresh generation pass.
func (m *CostMap) Clear() { m.grid.Clear() }

func logisticDecay(d float64) float64 {
	return 1 / (1 + math.Exp(decaySteepness*(d-decayMidpoint)))
}
