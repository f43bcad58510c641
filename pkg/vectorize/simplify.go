package vectorize

// blockMask{TL,TR,BL,BR} are the bits each corner of a 2x2 block must have
// set for the block to be "fully connected": every pair of the four
// pixels mutually similar, not merely the two diagonals. This is the
// condition original_source/main.cpp's simplifyFullyBlockSimilarityGraph
// actually tests (cornerUpLeft/cornerUpRight/cornerDownLeft/cornerDownRight),
// and the only reading of spec §4.3 consistent with S3b's crossing check
// (§4.4) ever finding anything to disambiguate afterward: if S3a fired on
// every block with both diagonals present, S3b's identical bit-test would
// never match a remaining block.
const (
	blockMaskTL = BitE | BitS | BitSE
	blockMaskTR = BitW | BitS | BitSW
	blockMaskBL = BitN | BitE | BitNE
	blockMaskBR = BitN | BitW | BitNW
)

// SimplifyBlocks clears the redundant diagonal bits of every fully
// connected 2x2 block (S3a): when all four pixels of a block are mutually
// similar, the diagonals carry no extra connectivity information beyond
// the four orthogonal edges already present.
func SimplifyBlocks(g *Grid) {
	for y := 0; y < g.H-1; y++ {
		for x := 0; x < g.W-1; x++ {
			tl := g.At(x, y)
			tr := g.At(x+1, y)
			bl := g.At(x, y+1)
			br := g.At(x+1, y+1)
			if tl&blockMaskTL == blockMaskTL &&
				tr&blockMaskTR == blockMaskTR &&
				bl&blockMaskBL == blockMaskBL &&
				br&blockMaskBR == blockMaskBR {
				g.Set(x, y, tl&^BitSE)
				g.Set(x+1, y, tr&^BitSW)
				g.Set(x, y+1, bl&^BitNE)
				g.Set(x+1, y+1, br&^BitNW)
			}
		}
	}
}
