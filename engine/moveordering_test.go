package engine

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"
)

func TestIsCaptureDetectsNormalCaptures(t *testing.T) {
	// After 1.e4 d5: exd5 is a capture, e5 and Nf3 are not.
	board := dragontoothmg.ParseFen("rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2")

	cases := []struct {
		move    string
		capture bool
	}{
		{"e4d5", true},
		{"e4e5", false},
		{"g1f3", false},
	}
	for _, tc := range cases {
		move := findMove(t, &board, tc.move)
		if got := IsCapture(&board, move); got != tc.capture {
			t.Fatalf("IsCapture(%s) = %v, want %v", tc.move, got, tc.capture)
		}
	}
}

func TestIsCaptureDetectsEnPassant(t *testing.T) {
	// After 1.e4 d5 2.e5 f5: exf6 en passant lands on an empty square.
	board := dragontoothmg.ParseFen("rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3")

	ep := findMove(t, &board, "e5f6")
	if !IsCapture(&board, ep) {
		t.Fatalf("expected e5f6 en passant to be a capture")
	}
	push := findMove(t, &board, "e5e6")
	if IsCapture(&board, push) {
		t.Fatalf("expected e5e6 to be a quiet move")
	}
}

func TestOrderMovesIsAStableCapturePartition(t *testing.T) {
	// Two pawn captures available among many quiet moves.
	board := dragontoothmg.ParseFen("rnbqkbnr/pp2pppp/8/2pp4/3PP3/8/PPP2PPP/RNBQKBNR w KQkq c6 0 3")
	assertOrderedPartition(t, &board)
}

func TestOrderingHoldsAtEveryNode(t *testing.T) {
	// Walk the first two plies of a tactical position and check the
	// partition the search would see at each node.
	board := dragontoothmg.ParseFen("r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 3 3")
	var walk func(b *dragontoothmg.Board, depth int)
	walk = func(b *dragontoothmg.Board, depth int) {
		if depth == 0 {
			return
		}
		assertOrderedPartition(t, b)
		for _, move := range b.GenerateLegalMoves() {
			unapply := b.Apply(move)
			walk(b, depth-1)
			unapply()
		}
	}
	walk(&board, 2)
}

// assertOrderedPartition orders the position's legal moves and checks that
// every capture precedes every quiet move while each group keeps the
// generator's relative order.
func assertOrderedPartition(t *testing.T, board *dragontoothmg.Board) {
	t.Helper()

	generated := board.GenerateLegalMoves()
	var wantCaptures, wantQuiets []dragontoothmg.Move
	for _, move := range generated {
		if IsCapture(board, move) {
			wantCaptures = append(wantCaptures, move)
		} else {
			wantQuiets = append(wantQuiets, move)
		}
	}

	ordered := make([]dragontoothmg.Move, len(generated))
	copy(ordered, generated)
	orderMoves(board, ordered)

	for i, move := range ordered {
		var want dragontoothmg.Move
		if i < len(wantCaptures) {
			want = wantCaptures[i]
		} else {
			want = wantQuiets[i-len(wantCaptures)]
		}
		if move != want {
			t.Fatalf("position %q: ordered move %d = %s, want %s",
				board.ToFen(), i, move.String(), want.String())
		}
	}
}

func findMove(t *testing.T, board *dragontoothmg.Board, uci string) dragontoothmg.Move {
	t.Helper()
	for _, move := range board.GenerateLegalMoves() {
		if move.String() == uci {
			return move
		}
	}
	t.Fatalf("move %s is not legal in %q", uci, board.ToFen())
	return NoMove
}
