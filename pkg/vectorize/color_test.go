package vectorize

import "testing"

func TestRGBToYUVWhiteAndBlack(t *testing.T) {
	white := RGBToYUV(colorWhite)
	// BT.601 maps full-range white to luma 235, not 255 (the standard's
	// "studio swing" headroom); U/V stay at the neutral midpoint.
	if white.Y() != 235 || white.U() != 128 || white.V() != 128 {
		t.Fatalf("white: got Y=%d U=%d V=%d, want Y=235 U=128 V=128", white.Y(), white.U(), white.V())
	}

	black := RGBToYUV(colorBlack)
	if black.Y() != 16 || black.U() != 128 || black.V() != 128 {
		t.Fatalf("black: got Y=%d U=%d V=%d, want Y=16 U=128 V=128", black.Y(), black.U(), black.V())
	}
}

func TestYUVToRGBRoundTripGray(t *testing.T) {
	// Pure grays round-trip to within 2 levels per channel: U and V stay at
	// the neutral 128, and only the floor truncation in each direction loses
	// precision (gray 64 -> Y 70 -> 62, for example).
	for _, gray := range []int{0, 16, 64, 128, 200, 255} {
		rgb := uint32(gray)<<16 | uint32(gray)<<8 | uint32(gray)
		yuv := RGBToYUV(rgb)
		back := YUVToRGB(yuv)

		r, g, b := rgbComponents(back)
		if absInt(r-gray) > 2 || absInt(g-gray) > 2 || absInt(b-gray) > 2 {
			t.Errorf("gray %d round-trip: got (%d,%d,%d)", gray, r, g, b)
		}
	}
}

func TestBuildYUVGrid(t *testing.T) {
	img := newFakeImage(2, 1, []uint32{colorRed, colorGreen})
	grid := BuildYUVGrid(img)

	if grid.W != 2 || grid.H != 1 {
		t.Fatalf("unexpected grid dims %dx%d", grid.W, grid.H)
	}
	if grid.At(0, 0) != RGBToYUV(colorRed) {
		t.Errorf("pixel (0,0) mismatch")
	}
	if grid.At(1, 0) != RGBToYUV(colorGreen) {
		t.Errorf("pixel (1,0) mismatch")
	}
}
