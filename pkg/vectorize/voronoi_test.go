package vectorize

import "testing"

func pointsEqual(a, b []Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestBuildCellIsolatedPixel(t *testing.T) {
	// A single pixel with no neighbors at all (1x1 image) must produce a
	// plain 4x4 square: no diagonal can bite into any corner.
	g := NewGrid(1, 1)
	got := buildCell(g, 0, 0)
	want := []Point{{0, 0}, {4, 0}, {4, 4}, {0, 4}}
	if !pointsEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestBuildCellOwnNWDiagonalSplitsCorner(t *testing.T) {
	// A pixel with its own NW bit set, with a N and W neighbor present
	// (so the border-bypass rule doesn't apply) and neither neighbor
	// contributing a competing diagonal of its own, must produce two
	// distinct vertices near the NW corner -- (1,-1) from the top side
	// and (-1,1) from the left side -- rather than a single (0,0) corner.
	g := NewGrid(2, 2)
	g.Set(1, 1, BitNW)
	got := buildCell(g, 1, 1)

	foundTop, foundLeft := false, false
	for _, p := range got {
		if p == (Point{1, -1}) {
			foundTop = true
		}
		if p == (Point{-1, 1}) {
			foundLeft = true
		}
		if p == (Point{0, 0}) {
			t.Errorf("plain (0,0) corner should not appear when NW bit is set")
		}
	}
	if !foundTop || !foundLeft {
		t.Fatalf("expected split corner vertices (1,-1) and (-1,1), got %v", got)
	}
}

func TestBuildVoronoiProducesOneCellPerPixel(t *testing.T) {
	g := NewGrid(2, 3)
	cells := BuildVoronoi(g)
	if len(cells) != 6 {
		t.Fatalf("got %d cells, want 6", len(cells))
	}
	for i, c := range cells {
		if len(c.Vertices) < 4 {
			t.Errorf("cell %d has only %d vertices", i, len(c.Vertices))
		}
	}
}
