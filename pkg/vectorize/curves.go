package vectorize

// StitchCurves runs S6: walks every degree-2 chain of visible edges into
// a single polyline, starting a new curve at each still-unused edge.
//
// This is a corrected port of original_source/main.cpp's extractCurves
// stitching loop, fixing the two bugs spec.md's Open Questions call out:
//
//  1. Every edge actually traversed is marked used, not just the seed
//     edge — otherwise the same chain gets walked again (and emitted as a
//     duplicate curve) starting from one of its interior edges.
//  2. The backward walk terminates as soon as it would revisit any vertex
//     already collected into the curve being built, not only when it hits
//     a node of degree != 2 — otherwise a backward walk that loops back
//     into the forward-walked portion overruns past the true start.
func StitchCurves(visible []Edge, nodeEdges map[Point][]directedEdge) []Curve {
	used := make(map[Edge]bool, len(visible))
	var curves []Curve

	otherEdge := func(p, notTo Point) (directedEdge, bool) {
		for _, de := range nodeEdges[p] {
			if de.To != notTo {
				return de, true
			}
		}
		return directedEdge{}, false
	}

	for _, seed := range visible {
		if used[seed] {
			continue
		}
		used[seed] = true
		points := []Point{seed.A, seed.B}
		closed := false

		prev, cur := seed.A, seed.B
		for len(nodeEdges[cur]) == 2 {
			de, ok := otherEdge(cur, prev)
			if !ok {
				break
			}
			e := canonicalEdge(cur, de.To)
			if used[e] {
				break
			}
			used[e] = true
			points = append(points, de.To)
			if de.To == seed.A {
				closed = true
				break
			}
			prev, cur = cur, de.To
		}

		if !closed {
			visited := make(map[Point]bool, len(points))
			for _, p := range points {
				visited[p] = true
			}
			prev, cur = seed.B, seed.A
			for len(nodeEdges[cur]) == 2 {
				de, ok := otherEdge(cur, prev)
				if !ok || visited[de.To] {
					break
				}
				e := canonicalEdge(cur, de.To)
				if used[e] {
					break
				}
				used[e] = true
				points = append([]Point{de.To}, points...)
				visited[de.To] = true
				prev, cur = cur, de.To
			}
		}

		curves = append(curves, Curve{Points: points, Closed: closed})
	}

	return curves
}
