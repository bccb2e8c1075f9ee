package dungeon

import "image/color"

// Display encoding: bit 0 carries the tile, bits 1-2 a coarse cost bucket so
// the base view already hints at the cost surface without the overlay.
const (
	displayFloorBit    = 0x01
	displayCostShift   = 1
	displayCostMask    = 0x06
	displayCostBuckets = 4
)

var dungeonPalette = buildDungeonPalette()

// Palette exposes the color palette used for rendering the dungeon.
func (w *World) Palette() []color.RGBA {
	return dungeonPalette
}

func buildDungeonPalette() []color.RGBA {
	palette := make([]color.RGBA, 8)
	for i := range palette {
		floor := i&displayFloorBit != 0
		bucket := (i & displayCostMask) >> displayCostShift
		palette[i] = displayColorFor(floor, bucket)
	}
	return palette
}

func displayColorFor(floor bool, bucket int) color.RGBA {
	t := float64(bucket) / float64(displayCostBuckets-1)
	if floor {
		base := color.RGBA{R: 198, G: 189, B: 170, A: 255}
		warm := color.RGBA{R: 214, G: 150, B: 110, A: 255}
		return lerpRGBA(base, warm, t*0.6)
	}
	base := color.RGBA{R: 24, G: 26, B: 33, A: 255}
	warm := color.RGBA{R: 84, G: 40, B: 46, A: 255}
	return lerpRGBA(base, warm, t)
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return color.RGBA{
		R: lerpComponent(a.R, b.R, t),
		G: lerpComponent(a.G, b.G, t),
		B: lerpComponent(a.B, b.B, t),
		A: lerpComponent(a.A, b.A, t),
	}
}

func lerpComponent(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}

func encodeDisplayValue(tile uint8, bucket int) uint8 {
	value := uint8(bucket<<displayCostShift) & displayCostMask
	if tile == tileFloor {
		value |= displayFloorBit
	}
	return value
}

func (w *World) rebuildDisplay() {
	tiles := w.tiles.Cells()
	costs := w.cost.Cells()
	maxCost := w.cost.Max()

	for i := range w.display {
		bucket := 0
		norm := 0.0
		if maxCost > 0 {
			norm = costs[i] / maxCost
			bucket = int(norm * float64(displayCostBuckets))
			if bucket >= displayCostBuckets {
				bucket = displayCostBuckets - 1
			}
		}
		w.heat[i] = float32(norm)
		w.display[i] = encodeDisplayValue(tiles[i], bucket)
	}
}
