package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsInCheck returns true if the given colour's king is attacked.
// A colour without a king is never in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	king := board.KingSquare(colour)
	if king == chess.NoSquare {
		return false
	}
	return IsSquareAttacked(board, king, colour.Opposite())
}

// IsSquareAttacked returns true if any piece of byColour attacks sq.
// Squares are tested in the order pawn, knight, then the eight rays, where
// the first piece met on a ray decides: a king attacks only from distance 1.
func IsSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	// A pawn attacks from one row behind its direction of travel.
	pawnRow := -chess.ColourOffset(byColour)
	for dc := -1; dc <= 1; dc += 2 {
		if board.Get(sq.Offset(pawnRow, dc)).Is(byColour, chess.Pawn) {
			return true
		}
	}

	for _, off := range knightOffsets {
		if board.Get(sq.Offset(off[0], off[1])).Is(byColour, chess.Knight) {
			return true
		}
	}

	for _, dir := range diagonalDirs {
		if rayAttacks(board, sq, dir, byColour, chess.Bishop) {
			return true
		}
	}
	for _, dir := range straightDirs {
		if rayAttacks(board, sq, dir, byColour, chess.Rook) {
			return true
		}
	}

	return false
}

// rayAttacks checks the first piece along dir for a slider of the given kind,
// a queen, or an adjacent king.
func rayAttacks(board *chess.Board, sq chess.Square, dir [2]int, byColour chess.Colour, slider chess.Piece) bool {
	at, steps := firstOnRay(board, sq, dir)
	if at == chess.NoSquare {
		return false
	}
	piece := board.Get(at)
	if piece.Colour != byColour {
		return false
	}
	switch piece.Piece {
	case slider, chess.Queen:
		return true
	case chess.King:
		return steps == 1
	default:
		return false
	}
}
