package vectorize

// checkAdjacencySymmetry verifies P1/A1 (every adjacency bit is mirrored by
// its neighbor's reciprocal bit) and P2/A2 (no bit ever points off-image) in
// a single pass over g. Called after S2, S3a, and S3b per spec §7/§9: these
// are bugs in this package, not bad input, so a violation is reported as
// *InvariantError rather than folded into the ordinary error return.
func checkAdjacencySymmetry(g *Grid, stage string) *InvariantError {
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			c := g.At(x, y)
			for d := 0; d < 8; d++ {
				if c&dirBit(d) == 0 {
					continue
				}
				off := dirOffsets[d]
				nx, ny := x+off.X, y+off.Y
				if !g.InBounds(nx, ny) {
					return &InvariantError{Stage: stage, Msg: "adjacency bit references an off-image neighbor (A2)"}
				}
				if g.At(nx, ny)&dirBit(oppositeDir(d)) == 0 {
					return &InvariantError{Stage: stage, Msg: "adjacency bit has no reciprocal on its neighbor (A1)"}
				}
			}
		}
	}
	return nil
}

// checkPlanarity verifies P3: after S3b, no 2x2 block has all four of its
// diagonals (TL.SE, TR.SW, BL.NE, BR.NW) set simultaneously, which would
// mean both diagonals of the block cross on the page.
func checkPlanarity(g *Grid) *InvariantError {
	for y := 0; y < g.H-1; y++ {
		for x := 0; x < g.W-1; x++ {
			tl := g.At(x, y)
			tr := g.At(x+1, y)
			bl := g.At(x, y+1)
			br := g.At(x+1, y+1)
			if tl&BitSE != 0 && tr&BitSW != 0 && bl&BitNE != 0 && br&BitNW != 0 {
				return &InvariantError{Stage: "S3b", Msg: "both diagonals of a 2x2 block survived disambiguation (P3)"}
			}
		}
	}
	return nil
}

// checkVoronoiTiling verifies V1 (no two consecutive vertices in a cell
// coincide) and, cumulatively across all cells, P4 (the cells tile the
// magnified plane exactly, with no gaps or overlaps). P4 is checked via the
// shoelace formula rather than rasterizing: if every cell is a simple
// clockwise polygon and the cells tile without overlap, the sum of their
// unsigned areas equals the area of the full magnified plane, 16*W*H.
func checkVoronoiTiling(cells []Cell, w, h int) *InvariantError {
	total := 0
	for _, cell := range cells {
		pts := cell.Vertices
		n := len(pts)
		if n < 3 {
			return &InvariantError{Stage: "S4", Msg: "voronoi cell has fewer than 3 vertices"}
		}
		area := 0
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			if pts[i] == pts[j] {
				return &InvariantError{Stage: "S4", Msg: "consecutive voronoi vertices coincide (V1)"}
			}
			area += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
		}
		if area < 0 {
			area = -area
		}
		total += area
	}
	if want := 16 * 2 * w * h; total != want {
		return &InvariantError{Stage: "S4", Msg: "voronoi cells do not tile the magnified plane without gaps or overlaps (P4)"}
	}
	return nil
}
