package engine

import (
	"context"
	"errors"
	"sort"
	"testing"

	oracle "github.com/notnil/chess"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

func TestPerft(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		depth int
		want  uint64
	}{
		{"initial depth 1", InitialFEN, 1, 20},
		{"initial depth 2", InitialFEN, 2, 400},
		{"initial depth 3", InitialFEN, 3, 8902},
		{"kiwipete depth 1", testFENs["Kiwipete"], 1, 48},
		{"kiwipete depth 2", testFENs["Kiwipete"], 2, 2039},
		{"position 3 depth 1", testFENs["Position3"], 1, 14},
		{"position 3 depth 2", testFENs["Position3"], 2, 191},
		{"position 3 depth 3", testFENs["Position3"], 3, 2812},
		{"position 4 depth 1", testFENs["Position4"], 1, 6},
		{"position 4 depth 2", testFENs["Position4"], 2, 264},
		{"position 4 depth 3", testFENs["Position4"], 3, 9467},
		{"position 5 depth 1", testFENs["Position5"], 1, 44},
		{"position 5 depth 2", testFENs["Position5"], 2, 1486},
		{"chess960 depth 1", testFENs["Chess960"], 1, 21},
		{"chess960 depth 2", testFENs["Chess960"], 2, 528},
		{"chess960 depth 3", testFENs["Chess960"], 3, 12189},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.depth >= 3 && testing.Short() {
				t.Skip("skipping deep perft in short mode")
			}
			board := mustBoard(t, tt.fen)
			before := BoardToFEN(board)

			if got := Perft(board, tt.depth); got != tt.want {
				t.Errorf("Perft(%d) = %d; want %d", tt.depth, got, tt.want)
			}
			if after := BoardToFEN(board); after != before {
				t.Errorf("Perft changed the board: %s -> %s", before, after)
			}
		})
	}
}

func TestPerft_DepthZero(t *testing.T) {
	if got := Perft(mustBoard(t, InitialFEN), 0); got != 1 {
		t.Errorf("Perft(0) = %d; want 1", got)
	}
}

func TestDivide(t *testing.T) {
	for _, workers := range []int{1, 4} {
		board := mustBoard(t, testFENs["Kiwipete"])
		results := Divide(board, 2, workers)

		if len(results) != 48 {
			t.Fatalf("workers=%d: Divide returned %d root moves; want 48", workers, len(results))
		}
		if got := DivideTotal(results); got != 2039 {
			t.Errorf("workers=%d: DivideTotal = %d; want 2039", workers, got)
		}
		if !sort.SliceIsSorted(results, func(i, j int) bool { return results[i].Move < results[j].Move }) {
			t.Errorf("workers=%d: results not sorted by move", workers)
		}
		if board.Plies() != 0 {
			t.Errorf("workers=%d: Divide applied moves to the caller's board", workers)
		}
	}

	if got := Divide(mustBoard(t, InitialFEN), 0, 2); got != nil {
		t.Errorf("Divide(depth 0) = %v; want nil", got)
	}
}

func TestDivideContext_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	board := mustBoard(t, testFENs["Kiwipete"])
	results, err := DivideContext(ctx, board, 3, 2)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("DivideContext() error = %v; want context.Canceled", err)
	}
	if results != nil {
		t.Errorf("DivideContext() returned %d results after cancellation", len(results))
	}
}

func TestDivide_PromotionsCountedPerPiece(t *testing.T) {
	board := mustBoard(t, testFENs["Promotion"])
	results := Divide(board, 1, 2)

	var promotions []string
	for _, r := range results {
		if len(r.Move) == 5 {
			promotions = append(promotions, r.Move)
		}
		if r.Nodes != 1 {
			t.Errorf("%s: nodes = %d; want 1", r.Move, r.Nodes)
		}
	}
	want := []string{"a7a8b", "a7a8n", "a7a8q", "a7a8r"}
	if len(promotions) != len(want) {
		t.Fatalf("promotion roots = %v; want %v", promotions, want)
	}
	for i := range want {
		if promotions[i] != want[i] {
			t.Errorf("promotion roots = %v; want %v", promotions, want)
			break
		}
	}
}

// TestLegalMoves_MatchesReferenceImplementation walks the move tree of the
// standard test positions and compares every node's move list against the
// notnil/chess move generator.
func TestLegalMoves_MatchesReferenceImplementation(t *testing.T) {
	depth := 2
	if testing.Short() {
		depth = 1
	}
	for _, name := range []string{"Initial", "Midgame", "Endgame", "Kiwipete", "EnPassant", "Castling", "Position3", "Position5", "Promotion"} {
		t.Run(name, func(t *testing.T) {
			fen := testFENs[name]
			opt, err := oracle.FEN(fen)
			if err != nil {
				t.Fatalf("reference FEN(%q) failed: %v", fen, err)
			}
			ref := oracle.NewGame(opt).Position()
			compareMoveTrees(t, mustBoard(t, fen), ref, depth)
		})
	}
}

func compareMoveTrees(t *testing.T, board *chess.Board, ref *oracle.Position, depth int) {
	t.Helper()

	ours := expandPromotions(board, LegalMoves(board))
	got := moveStrings(board, ours)
	sort.Strings(got)

	refMoves := ref.ValidMoves()
	want := make([]string, len(refMoves))
	byText := make(map[string]*oracle.Move, len(refMoves))
	for i, m := range refMoves {
		want[i] = m.String()
		byText[want[i]] = m
	}
	sort.Strings(want)

	if len(got) != len(want) {
		t.Fatalf("at %s: %d moves %v; reference has %d %v", BoardToFEN(board), len(got), got, len(want), want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("at %s: moves %v; reference %v", BoardToFEN(board), got, want)
		}
	}

	if depth <= 1 {
		return
	}
	for _, move := range ours {
		text := FormatMove(board, move)
		applyMove(board, move)
		compareMoveTrees(t, board, ref.Update(byText[text]), depth-1)
		undoMove(board)
	}
}
