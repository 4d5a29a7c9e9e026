// Package game layers repetition tracking and draw adjudication over the
// board-level rules in package engine.
//
// A Game owns its board. Moves are validated, applied and undone through
// engine, and every position reached is counted so that threefold repetition
// can be detected and rolled back with Undo.
package game

import (
	"math/rand/v2"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
)

// Draw thresholds.
const (
	// FiftyMoveLimit is the halfmove clock value at which the game is drawn.
	FiftyMoveLimit = 100
	// RepetitionLimit is the number of occurrences that draws the game.
	RepetitionLimit = 3
)

// Game is a chess game in progress.
type Game struct {
	board     *chess.Board
	positions *hashing.PositionCounter
	// index is the Scharnagl number of the start array, or -1
	index int
}

// Option configures a new Game.
type Option func(*Game) error

// WithFEN starts the game from a FEN position.
func WithFEN(fen string) Option {
	return func(g *Game) error {
		board, err := engine.NewBoardFromFEN(fen)
		if err != nil {
			return err
		}
		g.board = board
		g.index = -1
		return nil
	}
}

// WithChess960 starts the game from Chess960 array n (0-959).
func WithChess960(n int) Option {
	return func(g *Game) error {
		board, err := engine.NewChess960Board(n)
		if err != nil {
			return err
		}
		g.board = board
		g.index = n
		return nil
	}
}

// WithRandomChess960 starts the game from a Chess960 array chosen by rng.
func WithRandomChess960(rng *rand.Rand) Option {
	return func(g *Game) error {
		g.board, g.index = engine.RandomChess960Board(rng)
		return nil
	}
}

// New creates a game. Without options it starts from the standard position.
func New(opts ...Option) (*Game, error) {
	g := &Game{
		board:     engine.NewInitialBoard(),
		positions: hashing.NewPositionCounter(),
		index:     engine.StandardChess960Index,
	}
	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}
	g.positions.Add(g.board)
	return g, nil
}

// Play parses a coordinate move and plays it.
func (g *Game) Play(text string) error {
	move, err := engine.ParseMove(g.board, text)
	if err != nil {
		return err
	}
	return g.Move(move)
}

// Move plays a move. On error the game is unchanged.
func (g *Game) Move(move chess.Move) error {
	if err := engine.MakeMove(g.board, move); err != nil {
		return err
	}
	g.positions.Add(g.board)
	return nil
}

// Undo takes back the last move.
func (g *Game) Undo() error {
	if g.board.Plies() == 0 {
		return errors.ErrNothingToUndo
	}
	g.positions.Remove(g.board)
	return engine.UndoMove(g.board)
}

// Status adjudicates the current position. Insufficient material is checked
// first, then mate and stalemate, then the fifty-move rule and repetition.
func (g *Game) Status() chess.Status {
	if engine.HasInsufficientMaterial(g.board) {
		return chess.DrawInsufficientMaterial
	}
	if status := engine.BoardStatus(g.board); status != chess.InProgress {
		return status
	}
	if g.board.HalfmoveClock >= FiftyMoveLimit {
		return chess.DrawFiftyMoves
	}
	if g.positions.Count(g.board) >= RepetitionLimit {
		return chess.DrawRepetition
	}
	return chess.InProgress
}

// Winner returns the winning colour after checkmate.
func (g *Game) Winner() (chess.Colour, bool) {
	if g.Status() != chess.Checkmate {
		return chess.White, false
	}
	return g.board.ToMove.Opposite(), true
}

// Board returns a copy of the current board.
func (g *Game) Board() *chess.Board {
	return g.board.Copy()
}

// FEN returns the current position in FEN.
func (g *Game) FEN() string {
	return engine.BoardToFEN(g.board)
}

// ToMove returns the side to move.
func (g *Game) ToMove() chess.Colour {
	return g.board.ToMove
}

// LegalMoves returns the legal moves in coordinate form.
func (g *Game) LegalMoves() []string {
	moves := engine.LegalMoves(g.board)
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = engine.FormatMove(g.board, m)
	}
	return out
}

// Repetitions returns how often the current position has occurred.
func (g *Game) Repetitions() int {
	return g.positions.Count(g.board)
}

// DistinctPositions returns how many different positions the game has
// passed through, the current one included.
func (g *Game) DistinctPositions() int {
	return g.positions.Unique()
}

// HalfmoveClock returns the plies since the last capture or pawn move.
func (g *Game) HalfmoveClock() uint {
	return g.board.HalfmoveClock
}

// InCheck reports whether the side to move is in check.
func (g *Game) InCheck() bool {
	return engine.IsInCheck(g.board, g.board.ToMove)
}

// Chess960Index returns the Scharnagl number of the start array, or -1 for
// games set up from FEN.
func (g *Game) Chess960Index() int {
	return g.index
}

// History returns the moves played so far in coordinate form.
func (g *Game) History() []string {
	// Moves must be formatted against the board they were played on.
	replay := g.board.Copy()
	out := make([]string, replay.Plies())
	for i := len(out) - 1; i >= 0; i-- {
		rec, _ := replay.LastRecord()
		if err := engine.UndoMove(replay); err != nil {
			break
		}
		out[i] = engine.FormatMove(replay, rec.Move)
	}
	return out
}
