package vectorize

// HQX-style similarity thresholds (spec §4.2).
const (
	thresholdY = 48
	thresholdU = 7
	thresholdV = 6
)

func absInt(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

// similar reports whether two YUV colors are close enough to count as
// the same region, per the per-channel HQX thresholds.
func similar(a, b YUV) bool {
	if a == b {
		return true
	}
	return absInt(a.Y()-b.Y()) <= thresholdY &&
		absInt(a.U()-b.U()) <= thresholdU &&
		absInt(a.V()-b.V()) <= thresholdV
}

// BuildSimilarityGraph constructs the 8-neighbor similarity grid (S2)
// from a YUV raster. Off-image neighbor bits are simply never set, which
// is exactly invariant A2 (border bits masked): a pixel on the edge of
// the image has no off-image neighbor to compare against, so those bits
// stay zero without any separate masking pass.
func BuildSimilarityGraph(yuv *YUVGrid) *Grid {
	w, h := yuv.W, yuv.H
	g := NewGrid(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			center := yuv.At(x, y)
			var cell AdjacencyCell
			for d := 0; d < 8; d++ {
				nx, ny := x+dirOffsets[d].X, y+dirOffsets[d].Y
				if nx < 0 || nx >= w || ny < 0 || ny >= h {
					continue
				}
				if similar(center, yuv.At(nx, ny)) {
					cell |= dirBit(d)
				}
			}
			g.Set(x, y, cell)
		}
	}
	return g
}
