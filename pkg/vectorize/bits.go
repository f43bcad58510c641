package vectorize

import "math/bits"

// dirOffsets maps a direction index 0..7 (NW,N,NE,W,E,SW,S,SE, matching the
// AdjacencyCell bit layout) to its pixel delta.
var dirOffsets = [8]Point{
	{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
	{X: -1, Y: 0}, {X: 1, Y: 0},
	{X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1},
}

// dirBit returns the AdjacencyCell bit for direction index d.
func dirBit(d int) AdjacencyCell { return AdjacencyCell(1) << uint(d) }

// oppositeDir returns the direction index pointing back the way it came;
// the bit layout pairs (NW,SE), (N,S), (NE,SW), (W,E) each sum to 7.
func oppositeDir(d int) int { return 7 - d }

// valence returns the number of set neighbor bits in c.
func valence(c AdjacencyCell) int {
	return bits.OnesCount8(uint8(c))
}
