package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/dylhunn/dragontoothmg"

	"github.com/pratham-2104/chess-game/engine"
)

func main() {
	depthFlag := flag.Int("depth", 3, "engine search depth in plies")
	fenFlag := flag.String("fen", dragontoothmg.Startpos, "FEN of the starting position")
	whiteFlag := flag.Bool("white", true, "play the white pieces (engine takes the other side)")
	flag.Parse()

	if *depthFlag <= 0 {
		log.Fatalf("depth must be positive, got %d", *depthFlag)
	}

	board := dragontoothmg.ParseFen(*fenFlag)
	reader := bufio.NewScanner(os.Stdin)

	fmt.Println("Enter moves in UCI form (e2e4, g1f3, e7e8q) or 'quit'.")

	for {
		fmt.Println(boardString(&board))
		legalMoves := board.GenerateLegalMoves()
		if len(legalMoves) == 0 {
			if board.OurKingInCheck() {
				if board.Wtomove {
					fmt.Println("Checkmate, black wins.")
				} else {
					fmt.Println("Checkmate, white wins.")
				}
			} else {
				fmt.Println("Stalemate.")
			}
			return
		}

		if board.Wtomove == *whiteFlag {
			move, ok := readHumanMove(reader, legalMoves)
			if !ok {
				return
			}
			board.Apply(move)
			continue
		}

		fmt.Println("Engine thinking...")
		start := time.Now()
		move, score, err := engine.SelectMove(&board, *depthFlag)
		if err != nil {
			log.Fatalf("search failed: %v", err)
		}
		if move == engine.NoMove {
			fmt.Println("No move found.")
			return
		}
		board.Apply(move)
		fmt.Printf("Engine played %s  eval=%d  time=%.2fs\n",
			move.String(), score, time.Since(start).Seconds())
	}
}

// readHumanMove keeps prompting until the input matches a legal move. A
// false result means the player asked to quit or stdin closed.
func readHumanMove(reader *bufio.Scanner, legalMoves []dragontoothmg.Move) (dragontoothmg.Move, bool) {
	for {
		fmt.Print("Your move: ")
		if !reader.Scan() {
			return engine.NoMove, false
		}
		input := strings.TrimSpace(strings.ToLower(reader.Text()))
		if input == "quit" {
			return engine.NoMove, false
		}
		for _, mv := range legalMoves {
			if mv.String() == input {
				return mv, true
			}
		}
		fmt.Println("Illegal move. Try again.")
	}
}

// boardString renders the position as an 8x8 text diagram, rank 8 on top,
// derived from the FEN placement field.
func boardString(b *dragontoothmg.Board) string {
	placement := strings.Fields(b.ToFen())[0]
	var sb strings.Builder
	for _, rank := range strings.Split(placement, "/") {
		for _, c := range rank {
			if c >= '1' && c <= '8' {
				sb.WriteString(strings.Repeat(". ", int(c-'0')))
			} else {
				sb.WriteRune(c)
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	if b.Wtomove {
		sb.WriteString("white to move")
	} else {
		sb.WriteString("black to move")
	}
	return sb.String()
}
