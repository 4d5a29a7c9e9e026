package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// ParseMove parses a coordinate move such as "e2e4" or "e7e8q" and resolves
// it against the legal moves of the side to move. Castling may be written as
// the king's two-file step or as the king moving onto its own rook.
//
// Text that is not a well-formed move fails with ErrInvalidInput; a
// well-formed move that cannot be played fails with ErrIllegalMove.
func ParseMove(board *chess.Board, text string) (chess.Move, error) {
	move, ok := parseCoordinates(text)
	if !ok {
		return chess.Move{}, &errors.MoveError{Err: errors.ErrInvalidInput, MoveText: text}
	}

	if side := castleSideForRookTarget(board, move); side != chess.NoCastleSide {
		kingCol, _ := castleDestinations(side)
		move = chess.Move{
			From:   move.From,
			To:     chess.Square{Row: move.From.Row, Col: kingCol},
			Castle: side,
		}
	}

	legal, ok := findLegalMove(board, move)
	if !ok {
		return chess.Move{}, &errors.MoveError{
			Err:      errors.ErrIllegalMove,
			PlyNum:   board.Plies() + 1,
			MoveText: text,
		}
	}
	return legal, nil
}

// parseCoordinates checks the shape of a coordinate move: two squares and
// an optional lowercase promotion letter from qrbn.
func parseCoordinates(text string) (chess.Move, bool) {
	if len(text) != 4 && len(text) != 5 {
		return chess.Move{}, false
	}
	from, ok := chess.ParseSquare(text[0:2])
	if !ok {
		return chess.Move{}, false
	}
	to, ok := chess.ParseSquare(text[2:4])
	if !ok {
		return chess.Move{}, false
	}
	move := chess.Move{From: from, To: to}
	if len(text) == 5 {
		switch text[4] {
		case 'q', 'r', 'b', 'n':
			move.Promotion = chess.PieceFromLetter(text[4])
		default:
			return chess.Move{}, false
		}
	}
	return move, true
}

// castleSideForRookTarget recognises the king-takes-own-rook castling form.
func castleSideForRookTarget(board *chess.Board, move chess.Move) chess.CastleSide {
	colour := board.ToMove
	if !board.Get(move.From).Is(colour, chess.King) || !board.Get(move.To).Is(colour, chess.Rook) {
		return chess.NoCastleSide
	}
	for _, side := range []chess.CastleSide{chess.Kingside, chess.Queenside} {
		if castlingRookSquare(board, colour, side) == move.To {
			return side
		}
	}
	return chess.NoCastleSide
}

// FormatMove renders a move made on board in coordinate form. Castling is
// written king-onto-rook for Chess960 boards, and whenever the king moves
// fewer than two files, so that the text parses back to the same move.
func FormatMove(board *chess.Board, move chess.Move) string {
	if move.IsCastle() && (board.Chess960 || abs(move.To.Col-move.From.Col) < 2) {
		colour := board.Get(move.From).Colour
		if rookSq := castlingRookSquare(board, colour, move.Castle); rookSq != chess.NoSquare {
			move.To = rookSq
		}
	}
	return move.String()
}
