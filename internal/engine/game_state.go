package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// BoardStatus classifies the position from the board alone: checkmate,
// stalemate or in progress. Draws that depend on history or material are
// decided by the game layer.
func BoardStatus(board *chess.Board) chess.Status {
	if HasLegalMoves(board) {
		return chess.InProgress
	}
	if IsInCheck(board, board.ToMove) {
		return chess.Checkmate
	}
	return chess.Stalemate
}
