package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// castleDestinations returns the king and rook destination columns for a side.
// They are the same in classic chess and Chess960.
func castleDestinations(side chess.CastleSide) (kingCol, rookCol int) {
	if side == chess.Kingside {
		return chess.KingsideKingCol, chess.KingsideRookCol
	}
	return chess.QueensideKingCol, chess.QueensideRookCol
}

// castlingRookSquare returns the starting square of the rook the colour may
// castle with on the given side, or NoSquare if the right is gone.
func castlingRookSquare(board *chess.Board, colour chess.Colour, side chess.CastleSide) chess.Square {
	col := board.Castling.RookCol(colour, side)
	if col == chess.NoCastle {
		return chess.NoSquare
	}
	return chess.Square{Row: chess.BackRank(colour), Col: col}
}

// castlingMoves returns the castling moves available to the side to move.
// The destination square is re-checked by the legality filter, since in
// Chess960 the castling rook itself may shield it before the move.
func castlingMoves(board *chess.Board) []chess.Move {
	colour := board.ToMove
	var moves []chess.Move
	for _, side := range []chess.CastleSide{chess.Kingside, chess.Queenside} {
		if move, ok := castlingMove(board, colour, side); ok {
			moves = append(moves, move)
		}
	}
	return moves
}

// castlingMove builds the castling move for one side if the right is held,
// the path is clear, and the king neither starts in nor passes through check.
func castlingMove(board *chess.Board, colour chess.Colour, side chess.CastleSide) (chess.Move, bool) {
	rookFrom := castlingRookSquare(board, colour, side)
	if rookFrom == chess.NoSquare || !board.Get(rookFrom).Is(colour, chess.Rook) {
		return chess.Move{}, false
	}

	kingFrom := board.KingSquare(colour)
	row := chess.BackRank(colour)
	if kingFrom.Row != row {
		return chess.Move{}, false
	}
	// The rook must be on the correct side of the king.
	if (side == chess.Kingside) != (rookFrom.Col > kingFrom.Col) {
		return chess.Move{}, false
	}

	kingToCol, rookToCol := castleDestinations(side)
	kingTo := chess.Square{Row: row, Col: kingToCol}

	// Every square either piece crosses or lands on must be empty apart from
	// the king and the castling rook.
	lo := min(kingFrom.Col, kingToCol, rookFrom.Col, rookToCol)
	hi := max(kingFrom.Col, kingToCol, rookFrom.Col, rookToCol)
	if !isRankClearBetween(board, row, lo, hi, kingFrom, rookFrom) {
		return chess.Move{}, false
	}

	opponent := colour.Opposite()
	step := sign(kingToCol - kingFrom.Col)
	for col := kingFrom.Col; ; col += step {
		if IsSquareAttacked(board, chess.Square{Row: row, Col: col}, opponent) {
			return chess.Move{}, false
		}
		if col == kingToCol {
			break
		}
	}

	return chess.Move{From: kingFrom, To: kingTo, Castle: side}, true
}

// updateCastlingRights clears rights lost by moving piece off from, or by
// capturing captured on capSq. Rights are never granted here.
func updateCastlingRights(board *chess.Board, piece chess.ColouredPiece, from chess.Square, captured chess.ColouredPiece, capSq chess.Square) {
	switch piece.Piece {
	case chess.King:
		board.Castling.ClearColour(piece.Colour)
	case chess.Rook:
		clearRookRight(board, piece.Colour, from)
	}

	if captured.Piece == chess.Rook {
		clearRookRight(board, captured.Colour, capSq)
	}
}

// clearRookRight drops the right that belongs to a rook on its original square.
func clearRookRight(board *chess.Board, colour chess.Colour, sq chess.Square) {
	if sq.Row != chess.BackRank(colour) {
		return
	}
	for _, side := range []chess.CastleSide{chess.Kingside, chess.Queenside} {
		if board.Castling.RookCol(colour, side) == sq.Col {
			board.Castling.Clear(colour, side)
		}
	}
}
