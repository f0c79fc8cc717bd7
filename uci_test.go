package main

import (
	"bytes"
	"strings"
	"testing"
)

func runUCI(t *testing.T, script string) string {
	t.Helper()
	var out bytes.Buffer
	uciLoop(strings.NewReader(script), &out)
	return out.String()
}

func TestUCIHandshake(t *testing.T) {
	out := runUCI(t, "uci\nisready\nquit\n")
	if !strings.Contains(out, "uciok") {
		t.Fatalf("expected uciok in output, got %q", out)
	}
	if !strings.Contains(out, "readyok") {
		t.Fatalf("expected readyok in output, got %q", out)
	}
}

func TestUCISearchFromStartpos(t *testing.T) {
	out := runUCI(t, "position startpos moves e2e4\ngo depth 1\nquit\n")
	if !strings.Contains(out, "bestmove ") {
		t.Fatalf("expected a bestmove line, got %q", out)
	}
	if strings.Contains(out, "bestmove (none)") {
		t.Fatalf("expected a playable move after 1.e4, got %q", out)
	}
}

func TestUCIFindsMateInOne(t *testing.T) {
	out := runUCI(t, "position fen r1bqkb1r/pppp1ppp/2n2n2/4p2Q/2B1P3/8/PPPP1PPP/RNB1K1NR w KQkq - 4 4\ngo depth 1\nquit\n")
	if !strings.Contains(out, "bestmove h5f7") {
		t.Fatalf("expected bestmove h5f7, got %q", out)
	}
}

func TestUCIReportsNoMoveAtStalemate(t *testing.T) {
	out := runUCI(t, "position fen 5k2/5P2/5K2/8/8/8/8/8 b - - 0 1\ngo depth 2\nquit\n")
	if !strings.Contains(out, "bestmove (none)") {
		t.Fatalf("expected bestmove (none) at stalemate, got %q", out)
	}
}

func TestUCIStaticEvalCommand(t *testing.T) {
	out := runUCI(t, "position startpos\neval\nquit\n")
	if !strings.Contains(out, "static eval 0") {
		t.Fatalf("expected a zero static eval for the start position, got %q", out)
	}
}

func TestUCIRejectsIllegalMove(t *testing.T) {
	out := runUCI(t, "position startpos moves e2e5\nquit\n")
	if !strings.Contains(out, "not found") {
		t.Fatalf("expected an illegal-move notice, got %q", out)
	}
}
