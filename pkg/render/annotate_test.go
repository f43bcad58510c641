package render

import (
	"image"
	"image/color"
	"os"
	"testing"
)

func makeSolidNRGBA(w, h int, c color.NRGBA) *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out.Set(x, y, c)
		}
	}
	return out
}

func TestAnnotateBasic(t *testing.T) {
	src := makeSolidNRGBA(100, 50, color.NRGBA{R: 200, G: 200, B: 200, A: 255})
	out, err := Annotate(src, "Hello", "", 12, 10, 20, color.Black)
	if err != nil {
		t.Fatalf("annotate failed: %v", err)
	}
	if out == nil {
		t.Fatalf("annotate returned nil image")
	}
}

func TestAnnotateWithFontFile(t *testing.T) {
	// This test only runs if a font file path is provided via env var DEPIX_TEST_FONT.
	fontPath := os.Getenv("DEPIX_TEST_FONT")
	if fontPath == "" {
		t.Skip("no font provided")
	}
	bg := makeSolidNRGBA(200, 50, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	out, err := Annotate(bg, "HelloWorld", fontPath, 24, 10, 30, color.NRGBA{R: 255, A: 255})
	if err != nil {
		t.Fatalf("annotate with font failed: %v", err)
	}
	if out == nil {
		t.Fatalf("annotate returned nil image")
	}
	okChanged := false
	b := out.Bounds()
	for y := b.Min.Y; y < b.Max.Y && !okChanged; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := out.PixOffset(x, y)
			if out.Pix[i+0] != 255 || out.Pix[i+1] != 255 || out.Pix[i+2] != 255 {
				okChanged = true
				break
			}
		}
	}
	if !okChanged {
		t.Fatalf("expected annotate to draw non-white pixels")
	}
}
