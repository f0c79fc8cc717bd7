package engine

import (
	"fmt"

	"github.com/dylhunn/dragontoothmg"
)

// =============================================================================
// SCORE CONSTANTS
// =============================================================================
const (
	// Infinity seeds the alpha/beta bounds; it must stay above any
	// reachable evaluation, mate scores included.
	Infinity       int = 1000000
	CheckmateScore int = 999999
	StalemateScore int = 0
	MobilityWeight int = 10
)

// NoMove marks "no move to play": a depth-0 request or a terminal position.
const NoMove dragontoothmg.Move = 0

// SelectMove runs a fixed-depth search and returns the move to play for the
// side to move, along with its score from white's point of view. The board
// is restored to its initial state before returning. A NoMove result means
// there is nothing to play.
func SelectMove(b *dragontoothmg.Board, depth int) (dragontoothmg.Move, int, error) {
	if depth < 0 {
		return NoMove, 0, fmt.Errorf("search depth must be non-negative, got %d", depth)
	}
	score, move := alphabeta(b, depth, -Infinity, Infinity, b.Wtomove)
	return move, score, nil
}

// alphabeta is a depth-limited minimax with fail-hard alpha-beta pruning.
// White maximizes, black minimizes. Each move is applied, searched one ply
// deeper and taken back before the bounds are touched, so every exit path
// leaves the board untouched. Pruning only skips subtrees that cannot
// change the score; the result is identical to an exhaustive minimax at the
// same depth.
func alphabeta(b *dragontoothmg.Board, depth int, alpha int, beta int, maximizing bool) (int, dragontoothmg.Move) {
	if depth == 0 {
		return Evaluate(b), NoMove
	}

	moves := b.GenerateLegalMoves()
	if len(moves) == 0 {
		// Checkmate or stalemate; Evaluate assigns the terminal score.
		return Evaluate(b), NoMove
	}
	orderMoves(b, moves)

	bestMove := NoMove

	if maximizing {
		bestScore := -Infinity
		for _, move := range moves {
			unapply := b.Apply(move)
			score, _ := alphabeta(b, depth-1, alpha, beta, false)
			unapply()

			// Strictly greater, so ties keep the earliest move.
			if score > bestScore {
				bestScore = score
				bestMove = move
			}
			if score > alpha {
				alpha = score
			}
			if beta <= alpha {
				break
			}
		}
		return bestScore, bestMove
	}

	bestScore := Infinity
	for _, move := range moves {
		unapply := b.Apply(move)
		score, _ := alphabeta(b, depth-1, alpha, beta, true)
		unapply()

		if score < bestScore {
			bestScore = score
			bestMove = move
		}
		if score < beta {
			beta = score
		}
		if beta <= alpha {
			break
		}
	}
	return bestScore, bestMove
}
