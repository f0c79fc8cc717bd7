package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dylhunn/dragontoothmg"

	"github.com/pratham-2104/chess-game/engine"
)

// Depth used when "go" arrives without an explicit depth. There is no
// clock-driven deepening; every search runs to its full depth.
const defaultSearchDepth = 3

func main() {
	uciLoop(os.Stdin, os.Stdout)
}

func uciLoop(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	board := dragontoothmg.ParseFen(dragontoothmg.Startpos)

	for scanner.Scan() {
		line := scanner.Text()
		tokens := strings.Fields(line)
		if len(tokens) == 0 { // ignore blank lines
			continue
		}
		switch strings.ToLower(tokens[0]) {
		case "uci":
			fmt.Fprintln(out, "id name chess-game")
			fmt.Fprintln(out, "id author pratham")
			fmt.Fprintln(out, "uciok")
		case "isready":
			fmt.Fprintln(out, "readyok")
		case "ucinewgame":
			board = dragontoothmg.ParseFen(dragontoothmg.Startpos)
		case "position":
			handlePosition(&board, line, out)
		case "go":
			handleGo(&board, tokens[1:], out)
		case "eval":
			fmt.Fprintln(out, "info string static eval", engine.Evaluate(&board))
		case "quit":
			return
		}
	}
}

func handlePosition(board *dragontoothmg.Board, line string, out io.Writer) {
	posScanner := bufio.NewScanner(strings.NewReader(line))
	posScanner.Split(bufio.ScanWords)
	posScanner.Scan() // skip the first token
	if !posScanner.Scan() {
		fmt.Fprintln(out, "info string Malformed position command")
		return
	}
	switch strings.ToLower(posScanner.Text()) {
	case "startpos":
		*board = dragontoothmg.ParseFen(dragontoothmg.Startpos)
		posScanner.Scan() // advance the scanner to leave it in a consistent state
	case "fen":
		fenstr := ""
		for posScanner.Scan() && strings.ToLower(posScanner.Text()) != "moves" {
			fenstr += posScanner.Text() + " "
		}
		if fenstr == "" {
			fmt.Fprintln(out, "info string Invalid fen position")
			return
		}
		*board = dragontoothmg.ParseFen(strings.TrimSpace(fenstr))
	default:
		fmt.Fprintln(out, "info string Invalid position subcommand")
		return
	}
	if strings.ToLower(posScanner.Text()) != "moves" {
		return
	}
	for posScanner.Scan() { // for each move
		moveStr := strings.ToLower(posScanner.Text())
		move, found := findLegalMove(board, moveStr)
		if !found {
			fmt.Fprintln(out, "info string Move", moveStr, "not found for position", board.ToFen())
			return
		}
		board.Apply(move)
	}
}

// findLegalMove resolves UCI move text against the legal moves of the
// current position.
func findLegalMove(board *dragontoothmg.Board, moveStr string) (dragontoothmg.Move, bool) {
	for _, mv := range board.GenerateLegalMoves() {
		if mv.String() == moveStr {
			return mv, true
		}
	}
	return engine.NoMove, false
}

func handleGo(board *dragontoothmg.Board, tokens []string, out io.Writer) {
	depth := defaultSearchDepth
	for i := 0; i < len(tokens); i++ {
		switch strings.ToLower(tokens[i]) {
		case "depth":
			if i+1 >= len(tokens) {
				fmt.Fprintln(out, "info string Malformed go command option depth")
				return
			}
			parsed, err := strconv.Atoi(tokens[i+1])
			if err != nil {
				fmt.Fprintln(out, "info string Malformed go command option; could not convert depth")
				return
			}
			depth = parsed
			i++
		case "infinite":
			continue
		default:
			fmt.Fprintln(out, "info string Unknown go subcommand", tokens[i])
		}
	}

	start := time.Now()
	bestMove, score, err := engine.SelectMove(board, depth)
	if err != nil {
		fmt.Fprintln(out, "info string", err)
		return
	}
	elapsed := time.Since(start).Milliseconds()

	if bestMove == engine.NoMove {
		fmt.Fprintln(out, "info depth", depth, "score cp", score, "time", elapsed)
		fmt.Fprintln(out, "bestmove (none)")
		return
	}
	fmt.Fprintln(out, "info depth", depth, "score cp", score, "time", elapsed, "pv", bestMove.String())
	fmt.Fprintln(out, "bestmove", bestMove.String())
}
