package engine

import (
	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/slices"
)

// Nice helper to get what piece is at a square :)
func GetPieceTypeAtPosition(position uint8, bitboards *dragontoothmg.Bitboards) (pieceType dragontoothmg.Piece, occupied bool) {
	if bitboards.Pawns&(1<<position) > 0 {
		return dragontoothmg.Pawn, true
	} else if bitboards.Knights&(1<<position) > 0 {
		return dragontoothmg.Knight, true
	} else if bitboards.Bishops&(1<<position) > 0 {
		return dragontoothmg.Bishop, true
	} else if bitboards.Rooks&(1<<position) > 0 {
		return dragontoothmg.Rook, true
	} else if bitboards.Queens&(1<<position) > 0 {
		return dragontoothmg.Queen, true
	} else if bitboards.Kings&(1<<position) > 0 {
		return dragontoothmg.King, true
	}
	return 0, false
}

// IsCapture reports whether the move takes an enemy piece. The move must be
// a legal move for the side to move, which makes the en passant case exact:
// a pawn changing file onto an empty square can only be an en passant
// capture.
func IsCapture(board *dragontoothmg.Board, move dragontoothmg.Move) bool {
	var bitboardsOwn *dragontoothmg.Bitboards
	var bitboardsOpponent *dragontoothmg.Bitboards
	if board.Wtomove {
		bitboardsOwn = &board.White
		bitboardsOpponent = &board.Black
	} else {
		bitboardsOwn = &board.Black
		bitboardsOpponent = &board.White
	}

	if bitboardsOpponent.All&(1<<move.To()) > 0 {
		return true
	}

	pieceType, _ := GetPieceTypeAtPosition(move.From(), bitboardsOwn)
	return pieceType == dragontoothmg.Pawn && move.From()%8 != move.To()%8
}

// orderMoves puts every capture ahead of every quiet move, keeping the
// generator's order inside each group. A better first move tightens the
// alpha/beta bounds sooner; the ordering never changes the search result.
func orderMoves(board *dragontoothmg.Board, moves []dragontoothmg.Move) {
	slices.SortStableFunc(moves, func(a, b dragontoothmg.Move) bool {
		return movePriority(board, a) < movePriority(board, b)
	})
}

// Captures sort ahead of quiets
func movePriority(board *dragontoothmg.Board, move dragontoothmg.Move) int {
	if IsCapture(board, move) {
		return 0
	}
	return 1
}
