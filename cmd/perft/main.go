package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/dylhunn/dragontoothmg"
)

// Counts leaf nodes of the legal-move tree. Useful to sanity-check the
// move-generation library the search is built on, and to time raw
// apply/undo throughput.
func main() {
	fen := flag.String("fen", dragontoothmg.Startpos, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	board := dragontoothmg.ParseFen(*fen)

	if *divide {
		type kv struct {
			move  string
			nodes uint64
		}
		moves := board.GenerateLegalMoves()
		arr := make([]kv, 0, len(moves))
		var sum uint64
		for _, move := range moves {
			unapply := board.Apply(move)
			n := perft(&board, *depth-1)
			unapply()
			arr = append(arr, kv{move.String(), n})
			sum += n
		}
		// Sort moves for stable output
		sort.Slice(arr, func(i, j int) bool { return arr[i].move < arr[j].move })
		for _, x := range arr {
			fmt.Printf("%s: %d\n", x.move, x.nodes)
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	start := time.Now()
	nodes := perft(&board, *depth)
	elapsed := time.Since(start)
	fmt.Printf("perft(%d) = %d in %v\n", *depth, nodes, elapsed)
}

func perft(b *dragontoothmg.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var nodes uint64
	for _, move := range b.GenerateLegalMoves() {
		unapply := b.Apply(move)
		nodes += perft(b, depth-1)
		unapply()
	}
	return nodes
}
