package engine

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestNewBoardFromFEN(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		checkFn func(*chess.Board) bool
	}{
		{
			name: "initial position",
			fen:  InitialFEN,
			checkFn: func(b *chess.Board) bool {
				return b.Get(chess.Sq('e', '1')) == chess.W(chess.King) &&
					b.Get(chess.Sq('e', '8')) == chess.B(chess.King) &&
					b.Get(chess.Sq('e', '2')) == chess.W(chess.Pawn) &&
					b.Get(chess.Sq('e', '7')) == chess.B(chess.Pawn) &&
					b.ToMove == chess.White &&
					b.Castling == chess.StandardCastlingRights() &&
					!b.Chess960
			},
		},
		{
			name: "after 1.e4",
			fen:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			checkFn: func(b *chess.Board) bool {
				sq, ok := b.EnPassantTarget()
				return b.Get(chess.Sq('e', '4')).Is(chess.White, chess.Pawn) &&
					b.Get(chess.Sq('e', '4')).Moved &&
					b.IsEmpty(chess.Sq('e', '2')) &&
					b.ToMove == chess.Black &&
					ok && sq == chess.Sq('e', '3')
			},
		},
		{
			name: "no castling rights",
			fen:  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w - - 0 1",
			checkFn: func(b *chess.Board) bool {
				return !b.Castling.Any()
			},
		},
		{
			name: "partial castling rights",
			fen:  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w Kq - 0 1",
			checkFn: func(b *chess.Board) bool {
				return b.Castling.Has(chess.White, chess.Kingside) &&
					!b.Castling.Has(chess.White, chess.Queenside) &&
					!b.Castling.Has(chess.Black, chess.Kingside) &&
					b.Castling.Has(chess.Black, chess.Queenside)
			},
		},
		{
			name: "shredder castling rights",
			fen:  testFENs["Chess960"],
			checkFn: func(b *chess.Board) bool {
				return b.Castling.RookCol(chess.White, chess.Kingside) == 7 &&
					b.Castling.RookCol(chess.White, chess.Queenside) == 5 &&
					b.Castling.RookCol(chess.Black, chess.Kingside) == 7 &&
					b.Castling.RookCol(chess.Black, chess.Queenside) == 5 &&
					b.Chess960
			},
		},
		{
			name: "clocks",
			fen:  "8/5k2/8/8/8/8/5K2/4R3 b - - 37 112",
			checkFn: func(b *chess.Board) bool {
				return b.HalfmoveClock == 37 && b.MoveNumber == 112 && b.ToMove == chess.Black
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := NewBoardFromFEN(tt.fen)
			if err != nil {
				t.Fatalf("NewBoardFromFEN(%q) error: %v", tt.fen, err)
			}
			if !tt.checkFn(board) {
				t.Errorf("NewBoardFromFEN(%q) produced unexpected board: %s", tt.fen, BoardToFEN(board))
			}
		})
	}
}

func TestNewBoardFromFEN_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		field string // expected ParseError field, empty for field-count errors
	}{
		{"empty", "", ""},
		{"placement only", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR", ""},
		{"five fields", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0", ""},
		{"seven fields", InitialFEN + " extra", ""},
		{"seven ranks", "rnbqkbnr/pppppppp/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", "placement"},
		{"short rank", "rnbqkbnr/ppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", "placement"},
		{"long rank", "rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", "placement"},
		{"overfull rank", "rnbqkbnrr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", "placement"},
		{"unknown piece", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w KQkq - 0 1", "placement"},
		{"no white king", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQQBNR w kq - 0 1", "placement"},
		{"two black kings", "rnbkkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQ - 0 1", "placement"},
		{"pawn on back rank", "rnbqkbnP/pppppppp/8/8/8/8/PPPPPPP1/RNBQKBNR w KQq - 0 1", "placement"},
		{"bad side", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1", "active colour"},
		{"bad castling letter", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkx - 0 1", "castling"},
		{"castling without rook", "rnbqkbn1/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", "castling"},
		{"duplicate castling", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KKkq - 0 1", "castling"},
		{"bad en passant square", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z9 0 1", "en passant"},
		{"en passant wrong rank", "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e4 0 1", "en passant"},
		{"negative halfmove", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - -1 1", "halfmove clock"},
		{"non-numeric halfmove", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - x 1", "halfmove clock"},
		{"zero fullmove", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 0", "fullmove number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := NewBoardFromFEN(tt.fen)
			if board != nil {
				t.Errorf("NewBoardFromFEN(%q) returned a board on error", tt.fen)
			}
			testutil.AssertErrorIs(t, err, errors.ErrMalformedPosition)

			var parseErr *errors.ParseError
			if !stderrors.As(err, &parseErr) {
				t.Fatalf("error %v is not a ParseError", err)
			}
			if parseErr.Field != tt.field {
				t.Errorf("ParseError.Field = %q, want %q", parseErr.Field, tt.field)
			}
		})
	}
}

func TestLoadFEN_AllOrNothing(t *testing.T) {
	board := NewInitialBoard()
	mustPlay(t, board, "e2e4 e7e5")
	before := board.Copy()

	err := LoadFEN(board, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 banana")
	testutil.AssertErrorIs(t, err, errors.ErrMalformedPosition)
	testutil.AssertBoardEqual(t, board, before, "failed load must not touch the board")

	testutil.AssertNoError(t, LoadFEN(board, testFENs["Endgame"]))
	if got := BoardToFEN(board); got != testFENs["Endgame"] {
		t.Errorf("BoardToFEN after LoadFEN = %q, want %q", got, testFENs["Endgame"])
	}
	if board.Plies() != 0 {
		t.Errorf("Plies() = %d after LoadFEN, want 0", board.Plies())
	}
}

func TestBoardToFEN_RoundTrip(t *testing.T) {
	for name, fen := range testFENs {
		t.Run(name, func(t *testing.T) {
			board := mustBoard(t, fen)
			if got := BoardToFEN(board); got != fen {
				t.Errorf("BoardToFEN() = %q, want %q", got, fen)
			}
		})
	}
}

func TestBoardToFEN_InitialBoard(t *testing.T) {
	if got := BoardToFEN(NewInitialBoard()); got != InitialFEN {
		t.Errorf("BoardToFEN(NewInitialBoard()) = %q, want %q", got, InitialFEN)
	}
}

func TestBoardToFEN_KQkqRewrittenAsShredder(t *testing.T) {
	// X-FEN KQkq on a Chess960 array is written back with rook files.
	board := mustBoard(t, "nrkbbqrn/pppppppp/8/8/8/8/PPPPPPPP/NRKBBQRN w KQkq - 0 1")
	want := "nrkbbqrn/pppppppp/8/8/8/8/PPPPPPPP/NRKBBQRN w GBgb - 0 1"
	if got := BoardToFEN(board); got != want {
		t.Errorf("BoardToFEN() = %q, want %q", got, want)
	}
}

// TestFENRoundTrip_ReachablePositions replays games and checks that every
// position along the way survives serialisation.
func TestFENRoundTrip_ReachablePositions(t *testing.T) {
	games := []struct {
		name  string
		fen   string
		moves string
	}{
		{"ruy lopez castles", InitialFEN, "e2e4 e7e5 g1f3 b8c6 f1b5 a7a6 e1g1 g8f6 d2d4 e5d4"},
		{"en passant", InitialFEN, "e2e4 a7a6 e4e5 d7d5 e5d6 c7d6"},
		{"queenside castle", testFENs["Castling"], "e1c1 e8c8 h2h4"},
		{"chess960", testFENs["Chess960"], "e2e4 c8b6 a2b4 f6e4"},
	}

	for _, g := range games {
		t.Run(g.name, func(t *testing.T) {
			board := mustBoard(t, g.fen)
			for _, text := range strings.Fields(g.moves) {
				mustPlay(t, board, text)
				reparsed := mustBoard(t, BoardToFEN(board))
				testutil.AssertSamePosition(t, reparsed, board, "after %s", text)
			}
		})
	}
}

