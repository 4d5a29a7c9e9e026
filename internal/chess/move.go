package chess

// Move is a coordinate move. For castling, To is the king's destination
// (c- or g-file) and Castle names the side.
type Move struct {
	From Square
	To   Square

	// Promotion is the piece a pawn becomes on the last rank.
	// Empty means "not specified", which promotes to a queen.
	Promotion Piece

	// Castle is NoCastleSide for every non-castling move.
	Castle CastleSide
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	return m.Castle != NoCastleSide
}

// String returns the coordinate form, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != Empty {
		s += string(m.Promotion.Letter() + ('a' - 'A'))
	}
	return s
}

// MoveRecord holds everything needed to reverse one applied move.
type MoveRecord struct {
	Move Move

	// Moved is the piece that left Move.From, exactly as it was before
	// the move (including its Moved flag).
	Moved ColouredPiece

	// Captured is the piece removed by the move, if any. CaptureSquare
	// differs from Move.To only for en passant.
	Captured      ColouredPiece
	CaptureSquare Square

	// Castling rook relocation, valid when Move.Castle is set.
	RookFrom  Square
	RookTo    Square
	RookMoved bool

	Promoted bool

	PriorCastling      CastlingRights
	PriorEnPassant     bool
	PriorEPSquare      Square
	PriorHalfmoveClock uint
	PriorMoveNumber    uint
}

// IsCapture returns true if the recorded move removed an enemy piece.
func (r *MoveRecord) IsCapture() bool {
	return !r.Captured.IsEmpty()
}

// IsEnPassant returns true if the recorded capture happened off the
// destination square.
func (r *MoveRecord) IsEnPassant() bool {
	return r.IsCapture() && r.CaptureSquare != r.Move.To
}
