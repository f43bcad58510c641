package vectorize

import "testing"

func TestSimilarThresholds(t *testing.T) {
	base := YUV(100<<16 | 128<<8 | 128)

	cases := []struct {
		name string
		c    YUV
		want bool
	}{
		{"identical", base, true},
		{"at Y threshold", YUV((100+thresholdY)<<16 | 128<<8 | 128), true},
		{"over Y threshold", YUV((100+thresholdY+1)<<16 | 128<<8 | 128), false},
		{"at U threshold", YUV(100<<16 | uint32(128+thresholdU)<<8 | 128), true},
		{"over U threshold", YUV(100<<16 | uint32(128+thresholdU+1)<<8 | 128), false},
		{"at V threshold", YUV(100<<16 | 128<<8 | uint32(128+thresholdV)), true},
		{"over V threshold", YUV(100<<16 | 128<<8 | uint32(128+thresholdV+1)), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := similar(base, tc.c); got != tc.want {
				t.Errorf("similar(base, %v) = %v, want %v", tc.c, got, tc.want)
			}
		})
	}
}

func TestBuildSimilarityGraphBorderMasking(t *testing.T) {
	// A uniform 3x3 image: every pixel similar to every in-bounds
	// neighbor, but a corner pixel must never report a bit toward an
	// off-image direction (invariant A2).
	pix := make([]uint32, 9)
	for i := range pix {
		pix[i] = colorWhite
	}
	img := newFakeImage(3, 3, pix)
	grid := BuildSimilarityGraph(BuildYUVGrid(img))

	tl := grid.At(0, 0)
	if tl&(BitNW|BitN|BitW|BitSW) != 0 {
		t.Errorf("top-left pixel has off-image bits set: %08b", tl)
	}
	if tl&(BitE|BitS|BitSE) != (BitE | BitS | BitSE) {
		t.Errorf("top-left pixel missing in-bounds similar bits: %08b", tl)
	}
}

func TestBuildSimilarityGraphSymmetry(t *testing.T) {
	// Invariant A1: if A considers B similar in direction d, B must
	// consider A similar in the opposite direction.
	pix := []uint32{colorRed, colorRed, colorGreen, colorBlue, colorRed, colorGreen, colorGreen, colorBlue, colorBlue}
	img := newFakeImage(3, 3, pix)
	grid := BuildSimilarityGraph(BuildYUVGrid(img))

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			cell := grid.At(x, y)
			for d := 0; d < 8; d++ {
				if cell&dirBit(d) == 0 {
					continue
				}
				nx, ny := x+dirOffsets[d].X, y+dirOffsets[d].Y
				if nx < 0 || nx >= 3 || ny < 0 || ny >= 3 {
					t.Fatalf("pixel (%d,%d) has bit toward off-image (%d,%d)", x, y, nx, ny)
				}
				back := grid.At(nx, ny)
				if back&dirBit(oppositeDir(d)) == 0 {
					t.Errorf("asymmetric edge: (%d,%d)->(%d,%d) set but not reverse", x, y, nx, ny)
				}
			}
		}
	}
}
