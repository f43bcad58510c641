package vectorize

import (
	"fmt"
	"io"
	"math"
)

// Vectorize runs the full pipeline (S1-S6) over img, returning the
// extracted curves in global (4x-magnified) coordinates along with
// summary statistics.
func Vectorize(img Image) ([]Curve, Stats, error) {
	w, h := img.Size()
	if w < 1 || h < 1 {
		return nil, Stats{}, ErrInvalidDimensions
	}
	if h > math.MaxInt/w {
		return nil, Stats{}, fmt.Errorf("%w: %dx%d overflows the pixel index space", ErrInvalidDimensions, w, h)
	}

	yuv := BuildYUVGrid(img)
	grid := BuildSimilarityGraph(yuv)
	if ierr := checkAdjacencySymmetry(grid, "S2"); ierr != nil {
		return nil, Stats{}, ierr
	}

	SimplifyBlocks(grid)
	if ierr := checkAdjacencySymmetry(grid, "S3a"); ierr != nil {
		return nil, Stats{}, ierr
	}

	DisambiguateCrossings(grid)
	if ierr := checkAdjacencySymmetry(grid, "S3b"); ierr != nil {
		return nil, Stats{}, ierr
	}
	if ierr := checkPlanarity(grid); ierr != nil {
		return nil, Stats{}, ierr
	}

	cells := BuildVoronoi(grid)
	if ierr := checkVoronoiTiling(cells, w, h); ierr != nil {
		return nil, Stats{}, ierr
	}

	visible, nodeEdges := ExtractVisibleEdges(cells, img)
	curves := StitchCurves(visible, nodeEdges)

	stats := Stats{
		Pixels:       w * h,
		VisibleEdges: len(visible),
	}
	for _, c := range curves {
		if c.Closed {
			stats.ClosedCurves++
		} else {
			stats.OpenCurves++
		}
	}

	return curves, stats, nil
}

// DumpAdjacency writes a hex dump of the similarity grid, one row of
// two-digit hex cells per image row. A port of original_source's
// dumpTable/dumpSurface, which printed this unconditionally at every
// pipeline stage; here it's opt-in so normal operation stays quiet.
func DumpAdjacency(w io.Writer, g *Grid) error {
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if _, err := fmt.Fprintf(w, "%02x ", g.At(x, y)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
