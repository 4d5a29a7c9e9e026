package engine

import (
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// mustBoard parses fen or fails the test.
func mustBoard(t testing.TB, fen string) *chess.Board {
	t.Helper()
	board, err := NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) failed: %v", fen, err)
	}
	return board
}

// mustPlay plays a space-separated list of coordinate moves.
func mustPlay(t testing.TB, board *chess.Board, moves string) {
	t.Helper()
	for _, text := range strings.Fields(moves) {
		move, err := ParseMove(board, text)
		if err != nil {
			t.Fatalf("ParseMove(%q) at %s: %v", text, BoardToFEN(board), err)
		}
		if err := MakeMove(board, move); err != nil {
			t.Fatalf("MakeMove(%q) at %s: %v", text, BoardToFEN(board), err)
		}
	}
}

// moveStrings renders moves in coordinate form for comparison.
func moveStrings(board *chess.Board, moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = FormatMove(board, m)
	}
	return out
}

// testFENs are positions exercising castling, en passant, promotion and pins.
var testFENs = map[string]string{
	"Initial":   InitialFEN,
	"Midgame":   "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
	"Endgame":   "8/5k2/8/8/8/8/5K2/4R3 w - - 0 1",
	"Kiwipete":  "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"EnPassant": "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
	"Castling":  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
	"Position3": "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"Position4": "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
	"Position5": "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	"Promotion": "8/P6k/8/8/8/8/6Kp/8 w - - 0 1",
	"Chess960":  "bqnb1rkr/pp3ppp/3ppn2/2p5/5P2/P2P4/NPP1P1PP/BQ1BNRKR w HFhf - 2 9",
}
