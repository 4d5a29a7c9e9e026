package engine

import (
	"slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Direction tables as (row, col) steps.
var (
	knightOffsets = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs  = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs  = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// stepTargets appends every offset square that is on the board and not
// occupied by the mover's own colour.
func stepTargets(board *chess.Board, from chess.Square, colour chess.Colour, offsets [8][2]int, dst []chess.Square) []chess.Square {
	for _, off := range offsets {
		to := from.Offset(off[0], off[1])
		if !to.OnBoard() || board.Get(to).IsColour(colour) {
			continue
		}
		dst = append(dst, to)
	}
	return dst
}

// slideTargets appends the squares along each ray up to and including the
// first enemy piece, stopping before the first friendly one.
func slideTargets(board *chess.Board, from chess.Square, colour chess.Colour, dirs [4][2]int, dst []chess.Square) []chess.Square {
	for _, dir := range dirs {
		for to := from.Offset(dir[0], dir[1]); to.OnBoard(); to = to.Offset(dir[0], dir[1]) {
			occupant := board.Get(to)
			if occupant.IsColour(colour) {
				break
			}
			dst = append(dst, to)
			if !occupant.IsEmpty() {
				break // Capture ends the ray
			}
		}
	}
	return dst
}

// firstOnRay returns the first occupied square along a ray from sq and
// the number of steps taken, or NoSquare if the ray runs off the board.
func firstOnRay(board *chess.Board, sq chess.Square, dir [2]int) (chess.Square, int) {
	steps := 1
	for to := sq.Offset(dir[0], dir[1]); to.OnBoard(); to = to.Offset(dir[0], dir[1]) {
		if !board.IsEmpty(to) {
			return to, steps
		}
		steps++
	}
	return chess.NoSquare, 0
}

// isRankClearBetween reports whether every square on the row between
// columns a and b (inclusive) is empty, ignoring the listed squares.
func isRankClearBetween(board *chess.Board, row, a, b int, ignore ...chess.Square) bool {
	step := sign(b - a)
	for col := a; ; col += step {
		sq := chess.Square{Row: row, Col: col}
		if !board.IsEmpty(sq) && !slices.Contains(ignore, sq) {
			return false
		}
		if col == b {
			return true
		}
	}
}

