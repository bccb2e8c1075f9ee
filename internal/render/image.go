package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
)

// EncodeGridPNG writes cells as a PNG using the palette, with each cell drawn
// as a scale*scale block. It backs the headless preview endpoints.
func EncodeGridPNG(dst io.Writer, cells []uint8, palette []color.RGBA, w, h, scale int) error {
	if w <= 0 || h <= 0 || len(cells) != w*h {
		return fmt.Errorf("render: cell buffer %d does not match %dx%d", len(cells), w, h)
	}
	if scale <= 0 {
		scale = 1
	}
	buf := make([]byte, 4*w*h)
	fillPaletteRGBA(buf, cells, palette)
	return png.Encode(dst, upscale(buf, w, h, scale))
}

// EncodeHeatPNG writes a normalized intensity field as a tinted PNG over a
// dark background.
func EncodeHeatPNG(dst io.Writer, heat []float32, tint color.RGBA, w, h, scale int) error {
	if w <= 0 || h <= 0 || len(heat) != w*h {
		return fmt.Errorf("render: heat buffer %d does not match %dx%d", len(heat), w, h)
	}
	if scale <= 0 {
		scale = 1
	}
	buf := make([]byte, 4*w*h)
	fillHeatRGBA(buf, heat, tint)

	// Composite over an opaque background so the PNG is viewable on its own.
	bg := color.RGBA{R: 12, G: 13, B: 17, A: 255}
	for i := 0; i < w*h; i++ {
		base := i * 4
		a := float64(buf[base+3]) / 255
		buf[base+0] = blend(buf[base+0], bg.R, a)
		buf[base+1] = blend(buf[base+1], bg.G, a)
		buf[base+2] = blend(buf[base+2], bg.B, a)
		buf[base+3] = 255
	}
	return png.Encode(dst, upscale(buf, w, h, scale))
}

func blend(fg, bg uint8, a float64) uint8 {
	return uint8(float64(fg)*a + float64(bg)*(1-a) + 0.5)
}

// upscale expands a w*h RGBA buffer into an image with scale*scale blocks per
// cell, nearest neighbor.
func upscale(buf []byte, w, h, scale int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w*scale, h*scale))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			src := (y*w + x) * 4
			for dy := 0; dy < scale; dy++ {
				rowStart := img.PixOffset(x*scale, y*scale+dy)
				for dx := 0; dx < scale; dx++ {
					dst := rowStart + dx*4
					img.Pix[dst+0] = buf[src+0]
					img.Pix[dst+1] = buf[src+1]
					img.Pix[dst+2] = buf[src+2]
					img.Pix[dst+3] = buf[src+3]
				}
			}
		}
	}
	return img
}
