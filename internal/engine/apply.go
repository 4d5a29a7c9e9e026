package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// MakeMove validates move against the legal moves of the side to move and
// applies it. A pawn reaching the last rank with no promotion piece becomes
// a queen. On error the board is unchanged.
func MakeMove(board *chess.Board, move chess.Move) error {
	legal, ok := findLegalMove(board, move)
	if !ok {
		return &errors.MoveError{
			Err:      errors.ErrIllegalMove,
			PlyNum:   board.Plies() + 1,
			MoveText: move.String(),
		}
	}
	applyMove(board, legal)
	return nil
}

// UndoMove reverts the most recent move, restoring the exact prior state.
func UndoMove(board *chess.Board) error {
	if board.Plies() == 0 {
		return errors.ErrNothingToUndo
	}
	undoMove(board)
	return nil
}

// findLegalMove resolves move against the legal list, filling in the
// promotion default and the castle side when the caller left them out.
func findLegalMove(board *chess.Board, move chess.Move) (chess.Move, bool) {
	promoting := isPromotion(board, move)
	if move.Promotion != chess.Empty && (!promoting || !isPromotionPiece(move.Promotion)) {
		return chess.Move{}, false
	}

	var castle chess.Move
	found := false
	for _, m := range LegalMoves(board) {
		if m.From != move.From || m.To != move.To {
			continue
		}
		if m.Castle != move.Castle {
			// A bare king move onto the castling square still means castling
			// when no plain king move matches.
			if m.IsCastle() && !move.IsCastle() {
				castle, found = m, true
			}
			continue
		}
		if promoting {
			m.Promotion = move.Promotion
			if m.Promotion == chess.Empty {
				m.Promotion = chess.Queen
			}
		}
		return m, true
	}
	return castle, found
}

// applyMove plays a move that is already known to be legal and pushes the
// record needed to undo it.
func applyMove(board *chess.Board, move chess.Move) {
	colour := board.ToMove
	piece := board.Get(move.From)

	rec := chess.MoveRecord{
		Move:               move,
		Moved:              piece,
		CaptureSquare:      move.To,
		RookFrom:           chess.NoSquare,
		RookTo:             chess.NoSquare,
		PriorCastling:      board.Castling,
		PriorEnPassant:     board.EnPassant,
		PriorEPSquare:      board.EPSquare,
		PriorHalfmoveClock: board.HalfmoveClock,
		PriorMoveNumber:    board.MoveNumber,
	}

	epVictim := enPassantVictim(board, move)
	board.ClearEnPassant()

	if move.IsCastle() {
		applyCastle(board, &rec, colour, piece)
		board.HalfmoveClock++
	} else {
		captured := board.Get(move.To)
		if epVictim != chess.NoSquare {
			rec.CaptureSquare = epVictim
			captured = board.Get(epVictim)
			board.Clear(epVictim)
		}
		rec.Captured = captured

		board.Clear(move.From)
		moved := piece
		moved.Moved = true
		if piece.Piece == chess.Pawn && move.To.Row == chess.PromotionRank(colour) {
			if move.Promotion == chess.Empty {
				move.Promotion = chess.Queen
				rec.Move.Promotion = chess.Queen
			}
			moved.Piece = move.Promotion
			rec.Promoted = true
		}
		board.Set(move.To, moved)

		if piece.Piece == chess.Pawn && abs(move.To.Row-move.From.Row) == 2 {
			board.SetEnPassant(chess.Square{Row: (move.From.Row + move.To.Row) / 2, Col: move.From.Col})
		}

		if piece.Piece == chess.Pawn || !captured.IsEmpty() {
			board.HalfmoveClock = 0
		} else {
			board.HalfmoveClock++
		}

		updateCastlingRights(board, piece, move.From, captured, rec.CaptureSquare)
	}

	if colour == chess.Black {
		board.MoveNumber++
	}
	board.ToMove = colour.Opposite()
	board.PushRecord(rec)
}

// applyCastle relocates king and rook. Both origins are cleared before either
// destination is filled because in Chess960 they may overlap.
func applyCastle(board *chess.Board, rec *chess.MoveRecord, colour chess.Colour, king chess.ColouredPiece) {
	side := rec.Move.Castle
	rookFrom := castlingRookSquare(board, colour, side)
	_, rookToCol := castleDestinations(side)
	rookTo := chess.Square{Row: rookFrom.Row, Col: rookToCol}
	rook := board.Get(rookFrom)

	rec.RookFrom = rookFrom
	rec.RookTo = rookTo
	rec.RookMoved = rook.Moved

	board.Clear(rec.Move.From)
	board.Clear(rookFrom)
	king.Moved = true
	rook.Moved = true
	board.Set(rec.Move.To, king)
	board.Set(rookTo, rook)

	board.Castling.ClearColour(colour)
}

// undoMove pops and reverts the last record.
func undoMove(board *chess.Board) {
	rec, ok := board.PopRecord()
	if !ok {
		return
	}
	move := rec.Move
	colour := rec.Moved.Colour

	if move.IsCastle() {
		board.Clear(move.To)
		board.Clear(rec.RookTo)
		board.Set(rec.RookFrom, chess.ColouredPiece{Piece: chess.Rook, Colour: colour, Moved: rec.RookMoved})
		board.Set(move.From, rec.Moved)
	} else {
		board.Clear(move.To)
		board.Set(move.From, rec.Moved)
		if rec.IsCapture() {
			board.Set(rec.CaptureSquare, rec.Captured)
		}
	}

	board.Castling = rec.PriorCastling
	board.EnPassant = rec.PriorEnPassant
	board.EPSquare = rec.PriorEPSquare
	board.HalfmoveClock = rec.PriorHalfmoveClock
	board.MoveNumber = rec.PriorMoveNumber
	board.ToMove = colour
}
