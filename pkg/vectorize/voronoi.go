package vectorize

// cellBuilder accumulates a single pixel's Voronoi vertex list in local
// 4x4 coordinates (origin at the pixel's own top-left corner, range
// roughly [-1,5]), reproducing original_source/main.cpp's
// extractVoronoiGraph point-by-point, including its two distinct
// duplicate-suppression rules: most vertices are pushed unconditionally,
// but a handful are only pushed if they differ from the most recently
// pushed point, and the very last vertex is checked against the first.
type cellBuilder struct {
	pts     []Point
	current Point
	has     bool
}

func (b *cellBuilder) pushAlways(p Point) {
	b.pts = append(b.pts, p)
	b.current = p
	b.has = true
}

func (b *cellBuilder) pushDedup(p Point) {
	if !b.has || b.current != p {
		b.pts = append(b.pts, p)
		b.current = p
		b.has = true
	}
}

func (b *cellBuilder) pushDedupFront(p Point) {
	if len(b.pts) == 0 || b.pts[0] != p {
		b.pts = append(b.pts, p)
		b.current = p
		b.has = true
	}
}

// finalize drops a trailing vertex equal to the first, satisfying
// invariant V1 (no repeated consecutive vertices, including the closing
// edge).
func (b *cellBuilder) finalize() []Point {
	if len(b.pts) > 1 && b.pts[len(b.pts)-1] == b.pts[0] {
		b.pts = b.pts[:len(b.pts)-1]
	}
	return b.pts
}

// buildCell constructs the local vertex list for pixel (x, y), examining
// its own diagonal bits and the diagonal bits of its four orthogonal
// neighbors (each neighbor's diagonal can "bite into" this cell's
// territory from a different side). Border pixels bypass any rule that
// would reference a nonexistent neighbor, per invariant A2, emitting only
// the default square vertices on that side.
func buildCell(g *Grid, x, y int) []Point {
	var b cellBuilder
	central := g.At(x, y)

	// Top side: NW corner, then NE corner.
	if y > 0 {
		north := g.At(x, y-1)
		if north&BitSW != 0 {
			b.pushAlways(Point{1, 1})
		} else if central&BitNW != 0 {
			b.pushAlways(Point{1, -1})
		} else {
			b.pushAlways(Point{0, 0})
		}

		if north&BitSE != 0 {
			b.pushAlways(Point{3, 1})
		} else if central&BitNE != 0 {
			b.pushAlways(Point{3, -1})
		} else {
			b.pushAlways(Point{4, 0})
		}
	} else {
		b.pushAlways(Point{0, 0})
		b.pushAlways(Point{4, 0})
	}

	// Right side: upper (near NE), then lower (near SE).
	if x < g.W-1 {
		east := g.At(x+1, y)
		if east&BitNW != 0 {
			b.pushDedup(Point{3, 1})
		} else if central&BitNE != 0 {
			b.pushAlways(Point{5, 1})
		} else {
			b.pushDedup(Point{4, 0})
		}

		if east&BitSW != 0 {
			b.pushAlways(Point{3, 3})
		} else if central&BitSE != 0 {
			b.pushAlways(Point{5, 3})
		} else {
			b.pushAlways(Point{4, 4})
		}
	} else {
		b.pushDedup(Point{4, 0})
		b.pushDedup(Point{4, 4})
	}

	// Bottom side: near SE, then near SW.
	if y < g.H-1 {
		south := g.At(x, y+1)
		if south&BitNE != 0 {
			b.pushDedup(Point{3, 3})
		} else if central&BitSE != 0 {
			b.pushAlways(Point{3, 5})
		} else {
			b.pushDedup(Point{4, 4})
		}

		if south&BitNW != 0 {
			b.pushAlways(Point{1, 3})
		} else if central&BitSW != 0 {
			b.pushAlways(Point{1, 5})
		} else {
			b.pushAlways(Point{0, 4})
		}
	} else {
		b.pushDedup(Point{4, 4})
		b.pushDedup(Point{0, 4})
	}

	// Left side: lower (near SW), then upper (near NW, checked against front).
	if x > 0 {
		west := g.At(x-1, y)
		if west&BitSE != 0 {
			b.pushDedup(Point{1, 3})
		} else if central&BitSW != 0 {
			b.pushAlways(Point{-1, 3})
		} else {
			b.pushDedup(Point{0, 4})
		}

		if west&BitNE != 0 {
			b.pushDedupFront(Point{1, 1})
		} else if central&BitNW != 0 {
			b.pushAlways(Point{-1, 1})
		} else {
			b.pushDedupFront(Point{0, 0})
		}
	} else {
		b.pushDedup(Point{0, 4})
		b.pushDedupFront(Point{0, 0})
	}

	return b.finalize()
}

// BuildVoronoi runs S4 over the whole grid, returning each pixel's cell
// vertices in local (per-pixel) 4x4 coordinates. Translation to a shared
// global coordinate system happens in S5 (ExtractVisibleEdges), which
// knows the per-pixel origin.
func BuildVoronoi(g *Grid) []Cell {
	cells := make([]Cell, g.W*g.H)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			cells[y*g.W+x] = Cell{Vertices: buildCell(g, x, y)}
		}
	}
	return cells
}
