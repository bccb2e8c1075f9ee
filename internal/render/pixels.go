package render

import (
	"image/color"
	"math"
)

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// fillHeatRGBA converts a normalized [0,1] intensity field into tinted RGBA
// pixels. Zero intensity maps to fully transparent so the field can be
// composited over a base layer.
func fillHeatRGBA(buf []byte, heat []float32, tint color.RGBA) {
	for i, v := range heat {
		base := i * 4
		intensity := float64(v)
		if intensity < 0 {
			intensity = 0
		}
		if intensity > 1 {
			intensity = 1
		}
		if intensity == 0 {
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
			continue
		}
		col := HeatColor(intensity, tint)
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// HeatColor maps a clamped intensity onto the tint with a glow curve: alpha
// eases in with intensity^0.75 while the channels brighten with sqrt, so weak
// values stay visible without washing out the peaks.
func HeatColor(intensity float64, tint color.RGBA) color.RGBA {
	const (
		maxAlpha  = 150.0
		glowBase  = 0.35
		glowRange = 0.65
	)
	if intensity < 0 {
		intensity = 0
	}
	if intensity > 1 {
		intensity = 1
	}
	alpha := uint8(maxAlpha*math.Pow(intensity, 0.75) + 0.5)
	glow := glowBase + glowRange*math.Sqrt(intensity)
	return color.RGBA{
		R: scaleColorComponent(tint.R, glow),
		G: scaleColorComponent(tint.G, glow),
		B: scaleColorComponent(tint.B, glow),
		A: alpha,
	}
}

func scaleColorComponent(value uint8, factor float64) uint8 {
	scaled := float64(value)*factor + 0.5
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return uint8(scaled)
}
