package preprocess

import (
	"image"
	"image/color"
	"testing"
)

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestPosterizeCollapsesNearbyShades(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 10, G: 10, B: 10, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{R: 14, G: 14, B: 14, A: 255})

	out := Posterize(img, 2)
	c0 := out.NRGBAAt(0, 0)
	c1 := out.NRGBAAt(1, 0)
	if c0 != c1 {
		t.Fatalf("expected both near-black pixels to collapse to the same shade, got %+v and %+v", c0, c1)
	}
}

func TestPosterizeBelowTwoLevelsIsNoop(t *testing.T) {
	img := solid(1, 1, color.NRGBA{R: 123, G: 45, B: 67, A: 255})
	out := Posterize(img, 1)
	if got := out.NRGBAAt(0, 0); got != (color.NRGBA{R: 123, G: 45, B: 67, A: 255}) {
		t.Fatalf("expected levels<2 to be a no-op, got %+v", got)
	}
}

func TestTrimCropsUniformBorder(t *testing.T) {
	img := solid(6, 6, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	for y := 2; y < 4; y++ {
		for x := 2; x < 4; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 0, G: 0, B: 0, A: 255})
		}
	}
	out, rect := Trim(img, 10)
	if rect != image.Rect(2, 2, 4, 4) {
		t.Fatalf("expected trimmed rect (2,2)-(4,4), got %v", rect)
	}
	if out.Bounds().Dx() != 2 || out.Bounds().Dy() != 2 {
		t.Fatalf("expected 2x2 output, got %v", out.Bounds())
	}
}

func TestTrimUniformImageReturnsWholeImage(t *testing.T) {
	img := solid(4, 4, color.NRGBA{R: 1, G: 2, B: 3, A: 255})
	out, rect := Trim(img, 5)
	if rect != img.Bounds() {
		t.Fatalf("expected untrimmed rect %v, got %v", img.Bounds(), rect)
	}
	if out.Bounds().Dx() != 4 || out.Bounds().Dy() != 4 {
		t.Fatalf("expected 4x4 output, got %v", out.Bounds())
	}
}

func TestAutoOrientRotate90CW(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 1, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{R: 2, A: 255})

	out := AutoOrient(img, 6)
	nr, ok := out.(*image.NRGBA)
	if !ok {
		t.Fatalf("expected *image.NRGBA, got %T", out)
	}
	if nr.Bounds().Dx() != 1 || nr.Bounds().Dy() != 2 {
		t.Fatalf("expected 1x2 output, got %v", nr.Bounds())
	}
	if nr.NRGBAAt(0, 0).R != 1 || nr.NRGBAAt(0, 1).R != 2 {
		t.Fatalf("unexpected rotate90CW pixel placement: %+v / %+v", nr.NRGBAAt(0, 0), nr.NRGBAAt(0, 1))
	}
}

func TestAutoOrientIdentityForOrientation1(t *testing.T) {
	img := solid(3, 3, color.NRGBA{R: 9, A: 255})
	out := AutoOrient(img, 1)
	if out != image.Image(img) {
		t.Fatalf("expected orientation 1 to return the same image unchanged")
	}
}

func TestPrepareTrimsAndPosterizes(t *testing.T) {
	img := solid(8, 8, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	// sprinkle many distinct near-white shades inside a 4x4 region to force
	// Prepare's palette check over the threshold.
	n := 0
	for y := 2; y < 6; y++ {
		for x := 2; x < 6; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(200 + n), G: uint8(200 + n), B: uint8(200 + n), A: 255})
			n++
		}
	}
	out, rep, err := Prepare(img, 1, 1, 4)
	if err != nil {
		t.Fatalf("Prepare failed: %v", err)
	}
	if rep.TrimmedTo != image.Rect(2, 2, 6, 6) {
		t.Fatalf("expected trim to the 4x4 region, got %v", rep.TrimmedTo)
	}
	if rep.PosterizeToN == 0 {
		t.Fatalf("expected a palette over maxPaletteSize to trigger posterization")
	}
	if out.Bounds().Dx() != 4 || out.Bounds().Dy() != 4 {
		t.Fatalf("expected 4x4 prepared output, got %v", out.Bounds())
	}
}

func TestPrepareNilImage(t *testing.T) {
	if _, _, err := Prepare(nil, 1, 1, 4); err == nil {
		t.Fatalf("expected an error for a nil image")
	}
}
