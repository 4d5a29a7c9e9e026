package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// PseudoLegalDestinations returns every square the piece on sq can reach by
// its movement rule alone, ignoring whether the move would expose its own
// king. Castling is not included. An empty square yields nil.
func PseudoLegalDestinations(board *chess.Board, sq chess.Square) []chess.Square {
	piece := board.Get(sq)
	colour := piece.Colour
	var dst []chess.Square

	switch piece.Piece {
	case chess.Empty:
		return nil
	case chess.Pawn:
		dst = pawnTargets(board, sq, colour, dst)
	case chess.Knight:
		dst = stepTargets(board, sq, colour, knightOffsets, dst)
	case chess.Bishop:
		dst = slideTargets(board, sq, colour, diagonalDirs, dst)
	case chess.Rook:
		dst = slideTargets(board, sq, colour, straightDirs, dst)
	case chess.Queen:
		dst = slideTargets(board, sq, colour, diagonalDirs, dst)
		dst = slideTargets(board, sq, colour, straightDirs, dst)
	case chess.King:
		dst = stepTargets(board, sq, colour, kingOffsets, dst)
	}

	return dst
}

// isPromotion returns true if the move takes a pawn to its last rank.
func isPromotion(board *chess.Board, move chess.Move) bool {
	piece := board.Get(move.From)
	return piece.Piece == chess.Pawn && move.To.Row == chess.PromotionRank(piece.Colour)
}

// promotionPieces are the legal promotion choices, strongest first.
var promotionPieces = [4]chess.Piece{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// isPromotionPiece returns true if p is a valid promotion choice.
func isPromotionPiece(p chess.Piece) bool {
	for _, candidate := range promotionPieces {
		if p == candidate {
			return true
		}
	}
	return false
}
