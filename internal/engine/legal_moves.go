package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// PseudoLegalMoves returns every move the side to move could make by the
// movement rules, plus its castling candidates. Moves that leave the king in
// check are included. A promotion appears once per (from, to) pair with an
// empty Promotion.
func PseudoLegalMoves(board *chess.Board) []chess.Move {
	colour := board.ToMove
	moves := make([]chess.Move, 0, 48)

	board.Each(func(from chess.Square, piece chess.ColouredPiece) {
		if piece.Colour != colour {
			return
		}
		for _, to := range PseudoLegalDestinations(board, from) {
			moves = append(moves, chess.Move{From: from, To: to})
		}
	})

	return append(moves, castlingMoves(board)...)
}

// LegalMoves returns the moves of the side to move that do not leave its own
// king attacked.
func LegalMoves(board *chess.Board) []chess.Move {
	pseudo := PseudoLegalMoves(board)
	legal := pseudo[:0]
	for _, move := range pseudo {
		if leavesKingSafe(board, move) {
			legal = append(legal, move)
		}
	}
	return legal
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func HasLegalMoves(board *chess.Board) bool {
	for _, move := range PseudoLegalMoves(board) {
		if leavesKingSafe(board, move) {
			return true
		}
	}
	return false
}

// IsLegal returns true if move is legal for the side to move. An omitted
// promotion piece is accepted and means a queen.
func IsLegal(board *chess.Board, move chess.Move) bool {
	_, ok := findLegalMove(board, move)
	return ok
}

// leavesKingSafe plays the move tentatively through the same apply/undo path
// as a real move and reports whether the mover's king is safe afterwards.
// The board is always restored before returning.
func leavesKingSafe(board *chess.Board, move chess.Move) bool {
	colour := board.ToMove
	applyMove(board, move)
	safe := !IsInCheck(board, colour)
	undoMove(board)
	return safe
}
