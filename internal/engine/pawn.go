package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// pawnTargets appends the pawn's forward pushes, diagonal captures and
// en passant capture.
func pawnTargets(board *chess.Board, from chess.Square, colour chess.Colour, dst []chess.Square) []chess.Square {
	dir := chess.ColourOffset(colour)

	// Forward move
	one := from.Offset(dir, 0)
	if one.OnBoard() && board.IsEmpty(one) {
		dst = append(dst, one)
		// Double push from starting rank
		if from.Row == chess.PawnRank(colour) {
			two := from.Offset(2*dir, 0)
			if board.IsEmpty(two) {
				dst = append(dst, two)
			}
		}
	}

	// Captures
	for dc := -1; dc <= 1; dc += 2 {
		to := from.Offset(dir, dc)
		if !to.OnBoard() {
			continue
		}
		if board.Get(to).IsColour(colour.Opposite()) {
			dst = append(dst, to)
			continue
		}
		if ep, ok := board.EnPassantTarget(); ok && to == ep && board.IsEmpty(to) {
			dst = append(dst, to)
		}
	}

	return dst
}

// enPassantVictim returns the square of the pawn captured by a pawn moving
// onto the en passant target, or NoSquare if the move is not en passant.
func enPassantVictim(board *chess.Board, move chess.Move) chess.Square {
	piece := board.Get(move.From)
	if piece.Piece != chess.Pawn || move.From.Col == move.To.Col {
		return chess.NoSquare
	}
	ep, ok := board.EnPassantTarget()
	if !ok || ep != move.To || !board.IsEmpty(move.To) {
		return chess.NoSquare
	}
	return chess.Square{Row: move.From.Row, Col: move.To.Col}
}
