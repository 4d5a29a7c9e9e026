package engine

import (
	"fmt"
	"math/rand/v2"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Chess960Positions is the number of Chess960 starting arrays.
const Chess960Positions = 960

// StandardChess960Index is the Scharnagl number of the classic array.
const StandardChess960Index = 518

// knightPlacements lists, for the fourth Scharnagl digit, which two of the
// five squares left after placing bishops and queen hold the knights.
var knightPlacements = [10][2]int{
	{0, 1}, {0, 2}, {0, 3}, {0, 4},
	{1, 2}, {1, 3}, {1, 4},
	{2, 3}, {2, 4},
	{3, 4},
}

// Chess960BackRank returns the back rank for Scharnagl number n (0-959).
// The bishops stand on opposite colours and the king between the rooks.
func Chess960BackRank(n int) ([chess.BoardSize]chess.Piece, error) {
	var rank [chess.BoardSize]chess.Piece
	if n < 0 || n >= Chess960Positions {
		return rank, fmt.Errorf("chess960 position %d out of range 0-%d: %w", n, Chess960Positions-1, errors.ErrInvalidInput)
	}

	// Light-squared bishop on b, d, f or h; dark-squared on a, c, e or g.
	rank[2*(n%4)+1] = chess.Bishop
	n /= 4
	rank[2*(n%4)] = chess.Bishop
	n /= 4

	placeNthEmpty(&rank, n%6, chess.Queen)
	n /= 6

	knights := knightPlacements[n]
	// Place the later knight first so the earlier index is unaffected.
	placeNthEmpty(&rank, knights[1], chess.Knight)
	placeNthEmpty(&rank, knights[0], chess.Knight)

	placeNthEmpty(&rank, 0, chess.Rook)
	placeNthEmpty(&rank, 0, chess.King)
	placeNthEmpty(&rank, 0, chess.Rook)

	return rank, nil
}

// placeNthEmpty puts piece on the nth (0-based) empty square of the rank.
func placeNthEmpty(rank *[chess.BoardSize]chess.Piece, n int, piece chess.Piece) {
	for col := range rank {
		if rank[col] != chess.Empty {
			continue
		}
		if n == 0 {
			rank[col] = piece
			return
		}
		n--
	}
}

// Chess960Index returns the Scharnagl number of a back rank, or -1 if the
// arrangement is not a Chess960 starting array.
func Chess960Index(backRank [chess.BoardSize]chess.Piece) int {
	for n := 0; n < Chess960Positions; n++ {
		if candidate, _ := Chess960BackRank(n); candidate == backRank {
			return n
		}
	}
	return -1
}

// NewChess960Board creates a board set up with Chess960 starting array n.
func NewChess960Board(n int) (*chess.Board, error) {
	backRank, err := Chess960BackRank(n)
	if err != nil {
		return nil, err
	}
	board := chess.NewBoard()
	board.SetupPosition(backRank)
	board.Chess960 = true
	return board, nil
}

// RandomChess960Board creates a board with a uniformly chosen Chess960
// starting array and returns its Scharnagl number.
func RandomChess960Board(rng *rand.Rand) (*chess.Board, int) {
	n := rng.IntN(Chess960Positions)
	board, _ := NewChess960Board(n)
	return board, n
}
