package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// PositionOptions compares two boards as positions: grid, turn, castling
// rights, en passant target and clocks. Moved flags, the undo history and
// the Chess960 notation flag are ignored, since FEN carries none of them.
var PositionOptions = cmp.Options{
	cmpopts.IgnoreFields(chess.ColouredPiece{}, "Moved"),
	cmpopts.IgnoreFields(chess.Board{}, "History", "Chess960"),
}

// AssertSamePosition fails if got and want differ as positions.
func AssertSamePosition(t *testing.T, got, want *chess.Board, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got, PositionOptions); diff != "" {
		fail(t, "position mismatch (-want +got):\n"+diff, msgAndArgs...)
	}
}

// AssertBoardEqual fails if got and want differ in any field, including
// moved flags and history.
func AssertBoardEqual(t *testing.T, got, want *chess.Board, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		fail(t, "board mismatch (-want +got):\n"+diff, msgAndArgs...)
	}
}
