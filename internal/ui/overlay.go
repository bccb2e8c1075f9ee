//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"dungen/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type heatProvider interface {
	CostHeat() []float32
}

var costTint = color.RGBA{R: 255, G: 120, B: 40, A: 255}

// Overlay draws the cost surface on top of the base dungeon view. The C key
// toggles it.
type Overlay struct {
	gen      core.Generator
	scale    int
	showCost bool

	heatImg *ebiten.Image
	heatBuf []byte
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(gen core.Generator, scale int) *Overlay {
	return &Overlay{gen: gen, scale: scale}
}

// Update handles overlay key bindings.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		o.showCost = !o.showCost
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showCost {
		return
	}
	provider, ok := o.gen.(heatProvider)
	if !ok {
		return
	}
	size := o.gen.Size()
	total := size.W * size.H
	heat := provider.CostHeat()
	if total == 0 || len(heat) != total {
		return
	}

	if o.heatImg == nil || o.heatImg.Bounds().Dx() != size.W || o.heatImg.Bounds().Dy() != size.H {
		o.heatImg = ebiten.NewImage(size.W, size.H)
		o.heatBuf = make([]byte, 4*total)
	} else if len(o.heatBuf) != 4*total {
		o.heatBuf = make([]byte, 4*total)
	}

	const (
		maxAlpha  = 150.0
		glowBase  = 0.35
		glowRange = 0.65
	)
	for i := 0; i < total; i++ {
		base := i * 4
		intensity := float64(heat[i])
		if intensity < 0 {
			intensity = 0
		}
		if intensity > 1 {
			intensity = 1
		}
		if intensity == 0 {
			o.heatBuf[base+0] = 0
			o.heatBuf[base+1] = 0
			o.heatBuf[base+2] = 0
			o.heatBuf[base+3] = 0
			continue
		}

		alpha := uint8(math.Round(maxAlpha * math.Pow(intensity, 0.75)))
		glow := glowBase + glowRange*math.Sqrt(intensity)

		o.heatBuf[base+0] = scaleColorComponent(costTint.R, glow)
		o.heatBuf[base+1] = scaleColorComponent(costTint.G, glow)
		o.heatBuf[base+2] = scaleColorComponent(costTint.B, glow)
		o.heatBuf[base+3] = alpha
	}
	o.heatImg.ReplacePixels(o.heatBuf)

	op := &ebiten.DrawImageOptions{}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(o.heatImg, op)
}

func scaleColorComponent(value uint8, factor float64) uint8 {
	scaled := math.Round(float64(value) * factor)
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return uint8(scaled)
}
