package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

func TestIsSquareAttacked(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		sq   string
		by   chess.Colour
		want bool
	}{
		{"white pawn attacks diagonally", "4k3/8/8/8/4P3/8/8/4K3 w - - 0 1", "d5", chess.White, true},
		{"white pawn does not attack ahead", "4k3/8/8/8/4P3/8/8/4K3 w - - 0 1", "e5", chess.White, false},
		{"white pawn does not attack behind", "4k3/8/8/8/4P3/8/8/4K3 w - - 0 1", "d3", chess.White, false},
		{"black pawn attacks downward", "4k3/8/8/4p3/8/8/8/4K3 w - - 0 1", "f4", chess.Black, true},
		{"black pawn does not attack upward", "4k3/8/8/4p3/8/8/8/4K3 w - - 0 1", "f6", chess.Black, false},
		{"knight", "4k3/8/8/8/3n4/8/8/4K3 w - - 0 1", "e2", chess.Black, true},
		{"knight jumps over pieces", "4k3/8/8/8/3n4/3PP3/8/4K3 w - - 0 1", "e2", chess.Black, true},
		{"bishop off its diagonal", "4k3/8/8/8/8/8/8/b3K3 w - - 0 1", "e4", chess.Black, false},
		{"bishop long diagonal", "4k3/8/8/8/8/8/8/b3K3 w - - 0 1", "h8", chess.Black, true},
		{"bishop blocked", "4k3/8/8/8/8/8/1P6/b3K3 w - - 0 1", "h8", chess.Black, false},
		{"rook file", "r3k3/8/8/8/8/8/8/4K3 w - - 0 1", "a1", chess.Black, true},
		{"rook blocked by own piece", "r3k3/p7/8/8/8/8/8/4K3 w - - 0 1", "a1", chess.Black, false},
		{"rook stops at first piece", "r3k3/8/8/8/P7/8/8/4K3 w - - 0 1", "a4", chess.Black, true},
		{"queen diagonal", "4k3/8/8/8/8/8/8/q3K3 w - - 0 1", "d4", chess.Black, true},
		{"queen straight", "4k3/8/8/8/8/8/8/q3K3 w - - 0 1", "a8", chess.Black, true},
		{"king adjacent", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", "d2", chess.White, true},
		{"king not at distance two", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", "e3", chess.White, false},
		{"rook does not attack diagonally", "4k3/8/8/8/8/8/8/r3K3 w - - 0 1", "b2", chess.Black, false},
		{"bishop does not attack straight", "4k3/8/8/8/8/8/8/b3K3 w - - 0 1", "a5", chess.Black, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			sq, ok := chess.ParseSquare(tt.sq)
			if !ok {
				t.Fatalf("bad square %q", tt.sq)
			}
			if got := IsSquareAttacked(board, sq, tt.by); got != tt.want {
				t.Errorf("IsSquareAttacked(%s, %v) = %v, want %v", tt.sq, tt.by, got, tt.want)
			}
		})
	}
}

func TestIsInCheck(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		colour chess.Colour
		want   bool
	}{
		{"initial", InitialFEN, chess.White, false},
		{"queen check", "rnb1kbnr/pppp1ppp/8/4p3/7q/5P2/PPPPP1PP/RNBQKBNR w KQkq - 1 3", chess.White, true},
		{"black not in check", "rnb1kbnr/pppp1ppp/8/4p3/7q/5P2/PPPPP1PP/RNBQKBNR w KQkq - 1 3", chess.Black, false},
		{"knight check", "4k3/8/3N4/8/8/8/8/4K3 b - - 0 1", chess.Black, true},
		{"pawn check", "4k3/3P4/8/8/8/8/8/4K3 b - - 0 1", chess.Black, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			if got := IsInCheck(board, tt.colour); got != tt.want {
				t.Errorf("IsInCheck(%v) = %v, want %v", tt.colour, got, tt.want)
			}
		})
	}
}

func TestIsInCheck_NoKing(t *testing.T) {
	board := chess.NewBoard()
	if IsInCheck(board, chess.White) {
		t.Error("IsInCheck on empty board = true, want false")
	}
}
