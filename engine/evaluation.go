package engine

import (
	"math/bits"

	"github.com/dylhunn/dragontoothmg"
)

// =============================================================================
// EVALUATION TABLES
// =============================================================================

// Centipawn values per piece type
var PieceValue = [7]int{
	dragontoothmg.Pawn:   100,
	dragontoothmg.Knight: 320,
	dragontoothmg.Bishop: 330,
	dragontoothmg.Rook:   500,
	dragontoothmg.Queen:  900,
	dragontoothmg.King:   20000,
}

// FlipView mirrors a square vertically. The piece-square tables are indexed
// directly for white; black reads them through this table.
var FlipView = [64]int{
	56, 57, 58, 59, 60, 61, 62, 63,
	48, 49, 50, 51, 52, 53, 54, 55,
	40, 41, 42, 43, 44, 45, 46, 47,
	32, 33, 34, 35, 36, 37, 38, 39,
	24, 25, 26, 27, 28, 29, 30, 31,
	16, 17, 18, 19, 20, 21, 22, 23,
	8, 9, 10, 11, 12, 13, 14, 15,
	0, 1, 2, 3, 4, 5, 6, 7,
}

// Piece-square tables, indexed a1 = 0. Small hand-authored middlegame
// weights; fixed, never recomputed.
var PSQT = [7][64]int{
	dragontoothmg.Pawn: {
		0, 0, 0, 0, 0, 0, 0, 0,
		5, 10, 10, -20, -20, 10, 10, 5,
		5, -5, -10, 0, 0, -10, -5, 5,
		0, 0, 0, 20, 20, 0, 0, 0,
		5, 5, 10, 25, 25, 10, 5, 5,
		10, 10, 20, 30, 30, 20, 10, 10,
		50, 50, 50, 50, 50, 50, 50, 50,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	dragontoothmg.Knight: {
		-50, -40, -30, -30, -30, -30, -40, -50,
		-40, -20, 0, 5, 5, 0, -20, -40,
		-30, 5, 10, 15, 15, 10, 5, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 5, 15, 20, 20, 15, 5, -30,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-50, -90, -30, -30, -30, -30, -90, -50,
	},
	dragontoothmg.Bishop: {
		-20, -10, -10, -10, -10, -10, -10, -20,
		-10, 5, 0, 0, 0, 0, 5, -10,
		-10, 10, 10, 10, 10, 10, 10, -10,
		-10, 0, 10, 10, 10, 10, 0, -10,
		-10, 5, 5, 10, 10, 5, 5, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -10, -10, -10, -10, -20,
	},
	dragontoothmg.Rook: {
		0, 0, 5, 10, 10, 5, 0, 0,
		0, 0, 5, 10, 10, 5, 0, 0,
		0, 0, 5, 10, 10, 5, 0, 0,
		0, 0, 5, 10, 10, 5, 0, 0,
		0, 0, 5, 10, 10, 5, 0, 0,
		0, 0, 5, 10, 10, 5, 0, 0,
		25, 25, 25, 25, 25, 25, 25, 25,
		0, 0, 5, 10, 10, 5, 0, 0,
	},
	dragontoothmg.Queen: {
		-20, -10, -10, -5, -5, -10, -10, -20,
		-10, 0, 5, 0, 0, 0, 0, -10,
		-10, 5, 5, 5, 5, 5, 0, -10,
		-5, 0, 5, 5, 5, 5, 0, -5,
		0, 0, 5, 5, 5, 5, 0, -5,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -5, -5, -10, -10, -20,
	},
	dragontoothmg.King: {
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-20, -30, -30, -40, -40, -30, -30, -20,
		-10, -20, -20, -20, -20, -20, -20, -10,
		20, 20, 0, 0, 0, 0, 20, 20,
		20, 30, 10, 0, 0, 10, 30, 20,
	},
}

// Evaluate scores a position in centipawns from white's point of view:
// positive favors white, negative favors black. Material, piece-square
// placement and mobility are summed, except in terminal positions where the
// mate/stalemate score short-circuits everything else. The board is left
// exactly as it was passed in.
func Evaluate(b *dragontoothmg.Board) int {
	if len(b.GenerateLegalMoves()) == 0 {
		if b.OurKingInCheck() {
			// The side to move has no reply, so the mate score goes
			// against it.
			if b.Wtomove {
				return -CheckmateScore
			}
			return CheckmateScore
		}
		return StalemateScore
	}

	materialW, positionalW := sideScore(&b.White, false)
	materialB, positionalB := sideScore(&b.Black, true)

	mobility := (countLegalMoves(b, true) - countLegalMoves(b, false)) * MobilityWeight

	return (materialW - materialB) + (positionalW - positionalB) + mobility
}

// sideScore sums material and piece-square values for one side.
func sideScore(bb *dragontoothmg.Bitboards, mirrored bool) (material int, positional int) {
	pieceBBs := [7]uint64{
		dragontoothmg.Pawn:   bb.Pawns,
		dragontoothmg.Knight: bb.Knights,
		dragontoothmg.Bishop: bb.Bishops,
		dragontoothmg.Rook:   bb.Rooks,
		dragontoothmg.Queen:  bb.Queens,
		dragontoothmg.King:   bb.Kings,
	}
	for piece := dragontoothmg.Pawn; piece <= dragontoothmg.King; piece++ {
		pieces := pieceBBs[piece]
		for pieces != 0 {
			sq := bits.TrailingZeros64(pieces)
			pieces &= pieces - 1
			material += PieceValue[piece]
			if mirrored {
				positional += PSQT[piece][FlipView[sq]]
			} else {
				positional += PSQT[piece][sq]
			}
		}
	}
	return material, positional
}

// countLegalMoves reports how many legal moves the given side would have if
// it were its turn. Counting runs on a value copy of the board: generating
// moves with the turn forced can disturb en-passant state, so the caller's
// board is never touched.
func countLegalMoves(b *dragontoothmg.Board, whiteToMove bool) int {
	tmp := *b
	tmp.Wtomove = whiteToMove
	return len(tmp.GenerateLegalMoves())
}
