package vectorize

import "testing"

func TestExtractVisibleEdgesSinglePixel(t *testing.T) {
	img := newFakeImage(1, 1, []uint32{colorRed})
	grid := BuildSimilarityGraph(BuildYUVGrid(img))
	cells := BuildVoronoi(grid)

	visible, nodeEdges := ExtractVisibleEdges(cells, img)
	if len(visible) != 4 {
		t.Fatalf("got %d visible edges, want 4 (all four sides are on the outer boundary)", len(visible))
	}
	for _, p := range []Point{{0, 0}, {4, 0}, {4, 4}, {0, 4}} {
		if len(nodeEdges[p]) != 2 {
			t.Errorf("corner %v has %d incident edges, want 2", p, len(nodeEdges[p]))
		}
	}
}

func TestExtractVisibleEdgesInteriorBorderBetweenDifferentColors(t *testing.T) {
	img := newFakeImage(2, 1, []uint32{colorRed, colorGreen})
	grid := BuildSimilarityGraph(BuildYUVGrid(img))
	cells := BuildVoronoi(grid)

	visible, _ := ExtractVisibleEdges(cells, img)
	found := false
	for _, e := range visible {
		if e.A == (Point{4, 0}) && e.B == (Point{4, 4}) {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected the shared vertical edge at x=4 to be visible, got %v", visible)
	}
}
