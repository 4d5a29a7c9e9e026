// Package engine provides chess move generation, validation and board
// manipulation.
package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Standard king and rook files used to decide between KQkq and Shredder
// castling notation.
const (
	standardKingCol       = 4
	standardKingsideRook  = chess.BoardSize - 1
	standardQueensideRook = 0
)

// fenFields names the six FEN fields in order, for error reporting.
var fenFields = [6]string{"placement", "active colour", "castling", "en passant", "halfmove clock", "fullmove number"}

// malformed builds the error returned for a bad FEN field.
func malformed(field int, got string) error {
	return &errors.ParseError{Err: errors.ErrMalformedPosition, Field: fenFields[field], Got: got}
}

// NewBoardFromFEN creates a board from a FEN string. The string must have
// exactly six fields. On error no board is returned.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) != len(fenFields) {
		return nil, &errors.ParseError{
			Err: fmt.Errorf("%d fields, want %d: %w", len(parts), len(fenFields), errors.ErrMalformedPosition),
			Got: fen,
		}
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(board, parts[1]); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(board, parts[2]); err != nil {
		return nil, err
	}
	if err := parseEnPassant(board, parts[3]); err != nil {
		return nil, err
	}
	if err := parseClocks(board, parts[4], parts[5]); err != nil {
		return nil, err
	}

	return board, nil
}

// LoadFEN replaces the board's whole state with the position described by
// fen. On error the board is left untouched.
func LoadFEN(board *chess.Board, fen string) error {
	loaded, err := NewBoardFromFEN(fen)
	if err != nil {
		return err
	}
	*board = *loaded
	return nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return malformed(0, positions)
	}

	kings := [2]int{}
	for row, rank := range ranks {
		col := 0
		for i := 0; i < len(rank); i++ {
			c := rank[i]
			if c >= '1' && c <= '8' {
				col += int(c - '0')
				continue
			}
			piece := chess.PieceFromLetter(c)
			if piece == chess.Empty || col >= chess.BoardSize {
				return malformed(0, rank)
			}

			colour := chess.White
			if c >= 'a' && c <= 'z' {
				colour = chess.Black
			}
			cp := chess.MakeColouredPiece(colour, piece)
			if piece == chess.Pawn {
				if row == chess.BackRank(chess.White) || row == chess.BackRank(chess.Black) {
					return malformed(0, rank)
				}
				cp.Moved = row != chess.PawnRank(colour)
			}
			if piece == chess.King {
				kings[colour]++
			}
			board.Squares[row][col] = cp
			col++
		}
		if col != chess.BoardSize {
			return malformed(0, rank)
		}
	}

	if kings[chess.White] != 1 || kings[chess.Black] != 1 {
		return malformed(0, positions)
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *chess.Board, side string) error {
	switch side {
	case "w":
		board.ToMove = chess.White
	case "b":
		board.ToMove = chess.Black
	default:
		return malformed(1, side)
	}
	return nil
}

// parseCastlingRights parses the castling availability field. It accepts
// KQkq, where K and Q name the outermost rook on that side of the king, and
// Shredder-FEN file letters for Chess960.
func parseCastlingRights(board *chess.Board, field string) error {
	board.Castling = chess.NoCastlingRights()
	if field == "-" {
		return nil
	}

	for i := 0; i < len(field); i++ {
		c := field[i]
		colour := chess.White
		if c >= 'a' && c <= 'z' {
			colour = chess.Black
			c -= 'a' - 'A'
		}

		king := board.KingSquare(colour)
		if king.Row != chess.BackRank(colour) {
			return malformed(2, field)
		}

		var rookCol int
		switch {
		case c == 'K':
			rookCol = outermostRook(board, colour, king.Col, 1)
		case c == 'Q':
			rookCol = outermostRook(board, colour, king.Col, -1)
		case c >= 'A' && c <= 'H':
			rookCol = int(c - 'A')
			board.Chess960 = true
		default:
			return malformed(2, field)
		}

		rookSq := chess.Square{Row: king.Row, Col: rookCol}
		if rookCol == chess.NoCastle || rookCol == king.Col || !board.Get(rookSq).Is(colour, chess.Rook) {
			return malformed(2, field)
		}
		side := chess.Queenside
		if rookCol > king.Col {
			side = chess.Kingside
		}
		if board.Castling.Has(colour, side) {
			return malformed(2, field)
		}
		board.Castling.Set(colour, side, rookCol)
	}

	if !hasStandardCastlingFiles(board) {
		board.Chess960 = true
	}
	return nil
}

// outermostRook finds the rook furthest from the king in direction dir along
// the back rank, or NoCastle.
func outermostRook(board *chess.Board, colour chess.Colour, kingCol, dir int) int {
	row := chess.BackRank(colour)
	found := chess.NoCastle
	for col := kingCol + dir; col >= 0 && col < chess.BoardSize; col += dir {
		if board.Get(chess.Square{Row: row, Col: col}).Is(colour, chess.Rook) {
			found = col
		}
	}
	return found
}

// parseEnPassant parses the en passant target square field. The target must
// lie on the rank the side that just moved skipped over.
func parseEnPassant(board *chess.Board, field string) error {
	board.ClearEnPassant()
	if field == "-" {
		return nil
	}
	sq, ok := chess.ParseSquare(field)
	if !ok {
		return malformed(3, field)
	}
	// White to move means Black just pushed, so the target is on rank 6.
	wantRow := chess.PawnRank(board.ToMove.Opposite()) + chess.ColourOffset(board.ToMove.Opposite())
	if sq.Row != wantRow {
		return malformed(3, field)
	}
	board.SetEnPassant(sq)
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(board *chess.Board, halfmove, fullmove string) error {
	hm, err := strconv.ParseUint(halfmove, 10, 32)
	if err != nil {
		return malformed(4, halfmove)
	}
	fm, err := strconv.ParseUint(fullmove, 10, 32)
	if err != nil || fm == 0 {
		return malformed(5, fullmove)
	}
	board.HalfmoveClock = uint(hm)
	board.MoveNumber = uint(fm)
	return nil
}

// BoardToFEN converts a board to a FEN string. Chess960 boards always write
// castling rights as Shredder-FEN file letters so the variant survives a
// reload. Other boards use KQkq, falling back to file letters when a held
// right is not for a king on the e-file and a rook in the corner.
func BoardToFEN(board *chess.Board) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, board)
	sb.WriteByte(' ')
	if !board.Chess960 && hasStandardCastlingFiles(board) {
		writeCastlingRights(&sb, board)
	} else {
		writeShredderCastlingRights(&sb, board)
	}
	sb.WriteByte(' ')
	writeEnPassant(&sb, board)
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", board.HalfmoveClock, board.MoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, board *chess.Board) {
	if board.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	letters := []struct {
		colour chess.Colour
		side   chess.CastleSide
		letter byte
	}{
		{chess.White, chess.Kingside, 'K'},
		{chess.White, chess.Queenside, 'Q'},
		{chess.Black, chess.Kingside, 'k'},
		{chess.Black, chess.Queenside, 'q'},
	}

	hasCastling := false
	for _, l := range letters {
		if board.Castling.Has(l.colour, l.side) {
			sb.WriteByte(l.letter)
			hasCastling = true
		}
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

// writeShredderCastlingRights writes castling rights as rook file letters,
// uppercase for White, kingside before queenside.
func writeShredderCastlingRights(sb *strings.Builder, board *chess.Board) {
	hasCastling := false
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for _, side := range []chess.CastleSide{chess.Kingside, chess.Queenside} {
			col := board.Castling.RookCol(colour, side)
			if col == chess.NoCastle {
				continue
			}
			letter := byte('A' + col)
			if colour == chess.Black {
				letter = byte('a' + col)
			}
			sb.WriteByte(letter)
			hasCastling = true
		}
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, board *chess.Board) {
	sq, ok := board.EnPassantTarget()
	if !ok {
		sb.WriteByte('-')
		return
	}
	sb.WriteString(sq.String())
}

// hasStandardCastlingFiles reports whether every held castling right belongs
// to a king on the e-file and a rook on the a- or h-file.
func hasStandardCastlingFiles(board *chess.Board) bool {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if !board.Castling.Has(colour, chess.Kingside) && !board.Castling.Has(colour, chess.Queenside) {
			continue
		}
		if board.KingSquare(colour).Col != standardKingCol {
			return false
		}
		if col := board.Castling.RookCol(colour, chess.Kingside); col != chess.NoCastle && col != standardKingsideRook {
			return false
		}
		if col := board.Castling.RookCol(colour, chess.Queenside); col != chess.NoCastle && col != standardQueensideRook {
			return false
		}
	}
	return true
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	board := chess.NewBoard()
	board.SetupInitialPosition()
	return board
}
