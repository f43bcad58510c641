package vectorize

import "testing"

func TestStitchCurvesSingleSquare(t *testing.T) {
	a, b, c, d := Point{0, 0}, Point{4, 0}, Point{4, 4}, Point{0, 4}
	visible := []Edge{
		canonicalEdge(a, b),
		canonicalEdge(b, c),
		canonicalEdge(c, d),
		canonicalEdge(d, a),
	}
	nodeEdges := map[Point][]directedEdge{
		a: {{From: a, To: b}, {From: a, To: d}},
		b: {{From: b, To: a}, {From: b, To: c}},
		c: {{From: c, To: b}, {From: c, To: d}},
		d: {{From: d, To: c}, {From: d, To: a}},
	}

	curves := StitchCurves(visible, nodeEdges)
	if len(curves) != 1 {
		t.Fatalf("got %d curves, want 1", len(curves))
	}
	if !curves[0].Closed {
		t.Fatalf("expected a closed curve, got open: %v", curves[0].Points)
	}
	if curves[0].Points[0] != curves[0].Points[len(curves[0].Points)-1] {
		t.Fatalf("closed curve must start and end at the same point: %v", curves[0].Points)
	}
	if len(curves[0].Points) != 5 {
		t.Fatalf("got %d points, want 5 (4 corners + closing repeat)", len(curves[0].Points))
	}
}

func TestStitchCurvesNoDuplicateEdgeReuse(t *testing.T) {
	// A simple open chain of 3 edges: every edge must be consumed by
	// exactly one curve, with no edge appearing twice across curves
	// (the Open Question #1 fix: every traversed edge is marked used).
	p0, p1, p2, p3 := Point{0, 0}, Point{1, 0}, Point{2, 0}, Point{3, 0}
	visible := []Edge{
		canonicalEdge(p0, p1),
		canonicalEdge(p1, p2),
		canonicalEdge(p2, p3),
	}
	nodeEdges := map[Point][]directedEdge{
		p0: {{From: p0, To: p1}},
		p1: {{From: p1, To: p0}, {From: p1, To: p2}},
		p2: {{From: p2, To: p1}, {From: p2, To: p3}},
		p3: {{From: p3, To: p2}},
	}

	curves := StitchCurves(visible, nodeEdges)
	totalEdges := 0
	for _, c := range curves {
		totalEdges += len(c.Points) - 1
	}
	if totalEdges != 3 {
		t.Fatalf("stitched curves account for %d edges, want 3 (no duplication, no loss)", totalEdges)
	}
	if len(curves) != 1 || curves[0].Closed {
		t.Fatalf("expected a single open curve, got %+v", curves)
	}
	want := []Point{p0, p1, p2, p3}
	if !pointsEqual(curves[0].Points, want) {
		t.Fatalf("got %v, want %v", curves[0].Points, want)
	}
}
