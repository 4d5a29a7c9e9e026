// Package chess provides core chess types and operations.
package chess

import "fmt"

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Piece represents a chess piece kind. The set is closed: every switch over
// a Piece in this module handles all six kinds.
type Piece int

const (
	Empty Piece = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceValues
)

// String returns the string representation of a piece.
func (p Piece) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece (uppercase).
func (p Piece) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// PieceFromLetter converts a FEN or promotion letter of either case to a piece.
// It returns Empty for anything else.
func PieceFromLetter(c byte) Piece {
	switch c {
	case 'K', 'k':
		return King
	case 'Q', 'q':
		return Queen
	case 'R', 'r':
		return Rook
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'P', 'p':
		return Pawn
	default:
		return Empty
	}
}

// ColouredPiece is the content of one board cell. The zero value is an empty
// cell.
type ColouredPiece struct {
	Piece  Piece
	Colour Colour
	// Moved is set once the piece has left its starting square.
	Moved bool
}

// MakeColouredPiece creates an unmoved coloured piece.
func MakeColouredPiece(colour Colour, piece Piece) ColouredPiece {
	return ColouredPiece{Piece: piece, Colour: colour}
}

// W creates a white piece.
func W(piece Piece) ColouredPiece {
	return MakeColouredPiece(White, piece)
}

// B creates a black piece.
func B(piece Piece) ColouredPiece {
	return MakeColouredPiece(Black, piece)
}

// IsEmpty reports whether the cell holds no piece.
func (cp ColouredPiece) IsEmpty() bool {
	return cp.Piece == Empty
}

// Is reports whether the cell holds the given piece of the given colour,
// ignoring the moved flag.
func (cp ColouredPiece) Is(colour Colour, piece Piece) bool {
	return cp.Piece == piece && piece != Empty && cp.Colour == colour
}

// IsColour reports whether the cell holds any piece of the given colour.
func (cp ColouredPiece) IsColour(colour Colour) bool {
	return cp.Piece != Empty && cp.Colour == colour
}

// Letter returns the FEN letter: uppercase for White, lowercase for Black.
func (cp ColouredPiece) Letter() byte {
	if cp.Piece == Empty {
		return '.'
	}
	letter := cp.Piece.Letter()
	if cp.Colour == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	ColBase  = 'a'
	RankBase = '1'
	LastCol  = ColBase + BoardSize - 1
	LastRank = RankBase + BoardSize - 1
)

// Square is a board coordinate. Row 0 is rank 8 and row 7 is rank 1, so
// White's back rank is row 7. Col 0 is the a-file.
type Square struct {
	Row int
	Col int
}

// NoSquare is an off-board sentinel.
var NoSquare = Square{Row: -1, Col: -1}

// Sq builds a square from a file letter and rank digit, e.g. Sq('e', '4').
func Sq(file, rank byte) Square {
	return Square{Row: int(LastRank) - int(rank), Col: int(file) - ColBase}
}

// ParseSquare parses an algebraic square such as "e2".
func ParseSquare(s string) (Square, bool) {
	if len(s) != 2 {
		return NoSquare, false
	}
	file, rank := s[0], s[1]
	if file < ColBase || file > LastCol || rank < RankBase || rank > LastRank {
		return NoSquare, false
	}
	return Sq(file, rank), true
}

// OnBoard reports whether the square lies within the 8x8 grid.
func (s Square) OnBoard() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// Offset returns the square displaced by dr rows and dc columns.
func (s Square) Offset(dr, dc int) Square {
	return Square{Row: s.Row + dr, Col: s.Col + dc}
}

// File returns the file letter ('a'..'h').
func (s Square) File() byte {
	return byte(ColBase + s.Col)
}

// Rank returns the rank digit ('1'..'8').
func (s Square) Rank() byte {
	return byte(int(LastRank) - s.Row)
}

// IsLight reports whether the square is a light square.
func (s Square) IsLight() bool {
	return (s.Row+s.Col)%2 == 0
}

// String returns the algebraic name of the square.
func (s Square) String() string {
	if !s.OnBoard() {
		return "-"
	}
	return string([]byte{s.File(), s.Rank()})
}

// BackRank returns the row holding the given colour's pieces at the start.
func BackRank(colour Colour) int {
	if colour == White {
		return BoardSize - 1
	}
	return 0
}

// PawnRank returns the row holding the given colour's pawns at the start.
func PawnRank(colour Colour) int {
	if colour == White {
		return BoardSize - 2
	}
	return 1
}

// PromotionRank returns the row on which the given colour's pawns promote.
func PromotionRank(colour Colour) int {
	return BackRank(colour.Opposite())
}

// ColourOffset returns the row direction of pawn travel: -1 for White,
// +1 for Black.
func ColourOffset(colour Colour) int {
	if colour == White {
		return -1
	}
	return 1
}

// CastleSide names one of the two castling directions.
type CastleSide int

const (
	NoCastleSide CastleSide = iota
	Kingside
	Queenside
)

// String returns the conventional notation for the side.
func (s CastleSide) String() string {
	switch s {
	case Kingside:
		return "O-O"
	case Queenside:
		return "O-O-O"
	default:
		return ""
	}
}

// Castling destination files, identical for classic chess and Chess960.
const (
	KingsideKingCol  = 6
	KingsideRookCol  = 5
	QueensideKingCol = 2
	QueensideRookCol = 3
)

// NoCastle marks a castling right that has been lost.
const NoCastle = -1

// CastlingRights records, per colour and side, the starting column of the
// rook that may still castle, or NoCastle. Storing the column rather than a
// bare flag lets Chess960 rooks start on any file.
type CastlingRights [2][2]int

// NoCastlingRights returns rights with all four options cleared.
func NoCastlingRights() CastlingRights {
	return CastlingRights{{NoCastle, NoCastle}, {NoCastle, NoCastle}}
}

// StandardCastlingRights returns full rights with rooks on the a and h files.
func StandardCastlingRights() CastlingRights {
	return CastlingRights{{7, 0}, {7, 0}}
}

func sideIndex(side CastleSide) int {
	if side == Queenside {
		return 1
	}
	return 0
}

// Has reports whether the colour may still castle on the given side.
func (cr CastlingRights) Has(colour Colour, side CastleSide) bool {
	return cr.RookCol(colour, side) != NoCastle
}

// RookCol returns the starting column of the castling rook or NoCastle.
func (cr CastlingRights) RookCol(colour Colour, side CastleSide) int {
	if side == NoCastleSide {
		return NoCastle
	}
	return cr[colour][sideIndex(side)]
}

// Set grants the right to castle with the rook on the given column.
func (cr *CastlingRights) Set(colour Colour, side CastleSide, col int) {
	cr[colour][sideIndex(side)] = col
}

// Clear removes one castling right.
func (cr *CastlingRights) Clear(colour Colour, side CastleSide) {
	cr[colour][sideIndex(side)] = NoCastle
}

// ClearColour removes both castling rights of a colour.
func (cr *CastlingRights) ClearColour(colour Colour) {
	cr[colour] = [2]int{NoCastle, NoCastle}
}

// Any reports whether any castling right remains.
func (cr CastlingRights) Any() bool {
	for _, c := range []Colour{White, Black} {
		if cr.Has(c, Kingside) || cr.Has(c, Queenside) {
			return true
		}
	}
	return false
}

// Status is the outcome classification of a position.
type Status int

const (
	InProgress Status = iota
	Checkmate
	Stalemate
	DrawRepetition
	DrawFiftyMoves
	DrawInsufficientMaterial
)

var statusNames = [...]string{
	InProgress:               "in_progress",
	Checkmate:                "checkmate",
	Stalemate:                "stalemate",
	DrawRepetition:           "draw_repetition",
	DrawFiftyMoves:           "draw_50_moves",
	DrawInsufficientMaterial: "draw_insufficient_material",
}

// String returns the status vocabulary used by callers.
func (s Status) String() string {
	if s >= 0 && int(s) < len(statusNames) {
		return statusNames[s]
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// IsTerminal reports whether the game is over.
func (s Status) IsTerminal() bool {
	return s != InProgress
}

// IsDraw reports whether the status is any kind of draw, stalemate included.
func (s Status) IsDraw() bool {
	switch s {
	case Stalemate, DrawRepetition, DrawFiftyMoves, DrawInsufficientMaterial:
		return true
	default:
		return false
	}
}
