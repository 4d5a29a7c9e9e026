package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// HasInsufficientMaterial returns true if neither side can possibly mate.
// Insufficient material includes:
// - K vs K
// - K+B vs K or K+N vs K (one minor piece in total)
// - any number of bishops, all on squares of one colour
//
// Two knights, or knight and bishop together, count as sufficient.
func HasInsufficientMaterial(board *chess.Board) bool {
	minors := 0
	bishops := 0
	bishopsOnLight := 0

	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]
			switch piece.Piece {
			case chess.Empty, chess.King:
				continue
			case chess.Pawn, chess.Rook, chess.Queen:
				// Any pawn, rook, or queen means sufficient material
				return false
			case chess.Bishop:
				bishops++
				if (chess.Square{Row: row, Col: col}).IsLight() {
					bishopsOnLight++
				}
			}
			minors++
		}
	}

	if minors <= 1 {
		return true
	}
	return bishops == minors && (bishopsOnLight == 0 || bishopsOnLight == bishops)
}
