package render

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"
)

func TestEncodeGridPNG(t *testing.T) {
	palette := []color.RGBA{
		{R: 10, G: 20, B: 30, A: 255},
		{R: 200, G: 100, B: 50, A: 255},
	}
	cells := []uint8{0, 1, 1, 0}

	var buf bytes.Buffer
	if err := EncodeGridPNG(&buf, cells, palette, 2, 2, 3); err != nil {
		t.Fatalf("EncodeGridPNG: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 6 || bounds.Dy() != 6 {
		t.Fatalf("expected 6x6 output, got %dx%d", bounds.Dx(), bounds.Dy())
	}

	r, g, b, _ := img.At(0, 0).RGBA()
	if uint8(r>>8) != 10 || uint8(g>>8) != 20 || uint8(b>>8) != 30 {
		t.Fatalf("top-left block has wrong color: %d %d %d", r>>8, g>>8, b>>8)
	}
	r, g, b, _ = img.At(5, 0).RGBA()
	if uint8(r>>8) != 200 || uint8(g>>8) != 100 || uint8(b>>8) != 50 {
		t.Fatalf("top-right block has wrong color: %d %d %d", r>>8, g>>8, b>>8)
	}
}

func TestEncodeGridPNGRejectsSizeMismatch(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeGridPNG(&buf, []uint8{0, 1}, nil, 2, 2, 1); err == nil {
		t.Fatal("expected an error for a short cell buffer")
	}
}

func TestEncodeHeatPNGOpaque(t *testing.T) {
	heat := []float32{0, 0.25, 0.5, 1}
	tint := color.RGBA{R: 255, G: 120, B: 40, A: 255}

	var buf bytes.Buffer
	if err := EncodeHeatPNG(&buf, heat, tint, 2, 2, 1); err != nil {
		t.Fatalf("EncodeHeatPNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); uint8(a>>8) != 255 {
				t.Fatalf("pixel (%d,%d) is not opaque", x, y)
			}
		}
	}
}

func TestHeatColorMonotonicAlpha(t *testing.T) {
	tint := color.RGBA{R: 255, G: 120, B: 40, A: 255}
	prev := uint8(0)
	for _, v := range []float64{0.1, 0.3, 0.6, 1} {
		c := HeatColor(v, tint)
		if c.A <= prev {
			t.Fatalf("alpha not increasing with intensity at %g", v)
		}
		prev = c.A
	}
}

func TestFillPaletteRGBAClampsIndex(t *testing.T) {
	palette := []color.RGBA{{R: 1, A: 255}, {R: 2, A: 255}}
	buf := make([]byte, 8)
	fillPaletteRGBA(buf, []uint8{0, 9}, palette)
	if buf[4] != 2 {
		t.Fatalf("out-of-range index not clamped to last entry: %d", buf[4])
	}
}
