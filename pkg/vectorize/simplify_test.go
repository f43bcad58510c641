package vectorize

import "testing"

func TestSimplifyBlocksFullyConnected(t *testing.T) {
	// A uniform 2x2 image: all four pixels mutually similar, so every
	// bit among them is set and the block is fully connected.
	pix := []uint32{colorWhite, colorWhite, colorWhite, colorWhite}
	img := newFakeImage(2, 2, pix)
	grid := BuildSimilarityGraph(BuildYUVGrid(img))

	if grid.At(0, 0)&BitSE == 0 || grid.At(1, 1)&BitNW == 0 {
		t.Fatalf("fixture invalid: diagonals not set before simplification")
	}

	SimplifyBlocks(grid)

	if grid.At(0, 0)&BitSE != 0 {
		t.Errorf("TL.SE not cleared")
	}
	if grid.At(1, 0)&BitSW != 0 {
		t.Errorf("TR.SW not cleared")
	}
	if grid.At(0, 1)&BitNE != 0 {
		t.Errorf("BL.NE not cleared")
	}
	if grid.At(1, 1)&BitNW != 0 {
		t.Errorf("BR.NW not cleared")
	}
	// The orthogonal edges, which are not part of the redundancy being
	// removed, must survive.
	if grid.At(0, 0)&BitE == 0 || grid.At(0, 0)&BitS == 0 {
		t.Errorf("orthogonal bits incorrectly cleared")
	}
}

func TestSimplifyBlocksCheckerboardUntouched(t *testing.T) {
	// A 2x2 checkerboard has both diagonals set but no orthogonal edges
	// (adjacent pixels differ), so it is not a "fully connected" block
	// and SimplifyBlocks must leave it alone.
	pix := []uint32{colorWhite, colorBlack, colorBlack, colorWhite}
	img := newFakeImage(2, 2, pix)
	grid := BuildSimilarityGraph(BuildYUVGrid(img))

	before := grid.Clone()
	SimplifyBlocks(grid)

	for i := range grid.Cells {
		if grid.Cells[i] != before.Cells[i] {
			t.Fatalf("checkerboard block was modified: cell %d went from %08b to %08b", i, before.Cells[i], grid.Cells[i])
		}
	}
}
