package vectorize

import "sort"

// globalPoint translates a pixel-local Voronoi vertex into the shared
// 4x-magnified global coordinate system (spec §4.5).
func globalPoint(x, y int, local Point) Point {
	return Point{X: 4*x + local.X, Y: 4*y + local.Y}
}

// ExtractVisibleEdges runs S5: translates every pixel's local Voronoi
// cell into global coordinates, accumulates the set of distinct colors
// bordering each candidate edge, and keeps only the edges that actually
// separate two differently colored regions (or sit on the outer image
// boundary, which has no neighbor on the far side to disagree with).
// It also builds the node -> incident-edge index S6 walks.
func ExtractVisibleEdges(cells []Cell, img Image) (visible []Edge, nodeEdges map[Point][]directedEdge) {
	w, h := img.Size()
	maxX, maxY := 4*w, 4*h

	edgeColors := make(map[Edge]map[uint32]struct{})

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cell := cells[y*w+x]
			color := img.RGBAt(x, y)
			n := len(cell.Vertices)
			if n < 2 {
				continue
			}
			for i := 0; i < n; i++ {
				a := globalPoint(x, y, cell.Vertices[i])
				b := globalPoint(x, y, cell.Vertices[(i+1)%n])
				if a == b {
					continue
				}
				e := canonicalEdge(a, b)
				set, ok := edgeColors[e]
				if !ok {
					set = make(map[uint32]struct{})
					edgeColors[e] = set
				}
				set[color] = struct{}{}
			}
		}
	}

	nodeEdges = make(map[Point][]directedEdge)
	for e, colors := range edgeColors {
		onBoundary := (e.A.X == 0 && e.B.X == 0) ||
			(e.A.X == maxX && e.B.X == maxX) ||
			(e.A.Y == 0 && e.B.Y == 0) ||
			(e.A.Y == maxY && e.B.Y == maxY)
		if len(colors) < 2 && !onBoundary {
			continue
		}
		visible = append(visible, e)
		nodeEdges[e.A] = append(nodeEdges[e.A], directedEdge{From: e.A, To: e.B})
		nodeEdges[e.B] = append(nodeEdges[e.B], directedEdge{From: e.B, To: e.A})
	}

	sort.Slice(visible, func(i, j int) bool { return lessEdge(visible[i], visible[j]) })
	for p := range nodeEdges {
		edges := nodeEdges[p]
		sort.Slice(edges, func(i, j int) bool { return lessPoint(edges[i].To, edges[j].To) })
		nodeEdges[p] = edges
	}

	return visible, nodeEdges
}

func lessPoint(a, b Point) bool {
	return a.X < b.X || (a.X == b.X && a.Y < b.Y)
}

func lessEdge(a, b Edge) bool {
	if a.A != b.A {
		return lessPoint(a.A, b.A)
	}
	return lessPoint(a.B, b.B)
}
