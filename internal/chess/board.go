package chess

// Board represents a chess board with all state needed for the game.
type Board struct {
	// The board squares, indexed [row][col] with row 0 = rank 8.
	Squares [BoardSize][BoardSize]ColouredPiece

	// Who has the next move.
	ToMove Colour

	// Remaining castling options and the rook columns they refer to.
	Castling CastlingRights

	// Is EnPassant capture possible? If so then EPSquare holds the square
	// a capturing pawn would land on.
	EnPassant bool
	EPSquare  Square

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint

	// The current move number, incremented after each Black move.
	MoveNumber uint

	// Chess960 selects Shredder castling notation on output.
	Chess960 bool

	// History is the undo stack of applied moves, oldest first.
	History []MoveRecord
}

// NewBoard creates a new empty board with White to move.
func NewBoard() *Board {
	return &Board{
		ToMove:     White,
		Castling:   NoCastlingRights(),
		EPSquare:   NoSquare,
		MoveNumber: 1,
	}
}

// StandardBackRank is the classic arrangement of the back rank, a-file first.
var StandardBackRank = [BoardSize]Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// SetupPosition clears the board and sets up a starting position with the
// given back rank, mirrored for both colours, pawns on their second ranks and
// full castling rights for the rooks either side of the king.
func (b *Board) SetupPosition(backRank [BoardSize]Piece) {
	b.Squares = [BoardSize][BoardSize]ColouredPiece{}
	b.Castling = NoCastlingRights()

	for col := 0; col < BoardSize; col++ {
		b.Squares[BackRank(White)][col] = W(backRank[col])
		b.Squares[PawnRank(White)][col] = W(Pawn)
		b.Squares[PawnRank(Black)][col] = B(Pawn)
		b.Squares[BackRank(Black)][col] = B(backRank[col])
	}

	kingCol := -1
	for col, p := range backRank {
		if p == King {
			kingCol = col
		}
	}
	for col, p := range backRank {
		if p != Rook || kingCol < 0 {
			continue
		}
		side := Queenside
		if col > kingCol {
			side = Kingside
		}
		b.Castling.Set(White, side, col)
		b.Castling.Set(Black, side, col)
	}

	b.ToMove = White
	b.MoveNumber = 1
	b.HalfmoveClock = 0
	b.ClearEnPassant()
	b.History = nil
	b.Chess960 = backRank != StandardBackRank
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.SetupPosition(StandardBackRank)
}

// Get returns the piece on the given square; off-board squares read as empty.
func (b *Board) Get(sq Square) ColouredPiece {
	if !sq.OnBoard() {
		return ColouredPiece{}
	}
	return b.Squares[sq.Row][sq.Col]
}

// Set places a piece on the given square.
func (b *Board) Set(sq Square, piece ColouredPiece) {
	if sq.OnBoard() {
		b.Squares[sq.Row][sq.Col] = piece
	}
}

// Clear empties the given square.
func (b *Board) Clear(sq Square) {
	b.Set(sq, ColouredPiece{})
}

// IsEmpty reports whether the square holds no piece.
func (b *Board) IsEmpty(sq Square) bool {
	return b.Get(sq).IsEmpty()
}

// KingSquare locates the king of the given colour, or NoSquare.
func (b *Board) KingSquare(colour Colour) Square {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.Squares[row][col].Is(colour, King) {
				return Square{Row: row, Col: col}
			}
		}
	}
	return NoSquare
}

// EnPassantTarget returns the en passant square, if any.
func (b *Board) EnPassantTarget() (Square, bool) {
	if !b.EnPassant {
		return NoSquare, false
	}
	return b.EPSquare, true
}

// SetEnPassant records a new en passant target.
func (b *Board) SetEnPassant(sq Square) {
	b.EnPassant = true
	b.EPSquare = sq
}

// ClearEnPassant removes the en passant target.
func (b *Board) ClearEnPassant() {
	b.EnPassant = false
	b.EPSquare = NoSquare
}

// Each calls fn for every occupied square, rank 8 first.
func (b *Board) Each(fn func(sq Square, piece ColouredPiece)) {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if p := b.Squares[row][col]; !p.IsEmpty() {
				fn(Square{Row: row, Col: col}, p)
			}
		}
	}
}

// Copy creates a deep copy of the board, history included.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	if b.History != nil {
		newBoard.History = make([]MoveRecord, len(b.History))
		copy(newBoard.History, b.History)
	}
	return newBoard
}

// PushRecord appends a record to the undo stack.
func (b *Board) PushRecord(r MoveRecord) {
	b.History = append(b.History, r)
}

// PopRecord removes and returns the most recent record.
func (b *Board) PopRecord() (MoveRecord, bool) {
	if len(b.History) == 0 {
		return MoveRecord{}, false
	}
	last := len(b.History) - 1
	r := b.History[last]
	b.History = b.History[:last]
	return r, true
}

// LastRecord returns the most recent record without removing it.
func (b *Board) LastRecord() (MoveRecord, bool) {
	if len(b.History) == 0 {
		return MoveRecord{}, false
	}
	return b.History[len(b.History)-1], true
}

// Plies returns the number of moves applied since setup.
func (b *Board) Plies() int {
	return len(b.History)
}
