// Package uci drives an external chess engine over the Universal Chess
// Interface. The protocol itself is spoken by github.com/notnil/chess/uci;
// this package adds context cancellation, search limits and evaluations in
// coordinate notation. No searching happens here.
package uci

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/notnil/chess"
	protocol "github.com/notnil/chess/uci"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Skill level bounds accepted by the "Skill Level" option.
const (
	MinSkillLevel = 0
	MaxSkillLevel = 20
)

// closeWait bounds how long Close waits for an abandoned search.
const closeWait = 5 * time.Second

// Evaluation holds the result of a search.
type Evaluation struct {
	Score    int      // centipawns from the side to move's point of view
	IsMate   bool     // Score is a mate distance rather than centipawns
	MateIn   int      // moves to mate, negative when being mated
	Depth    int      // search depth reached
	BestMove string   // coordinate move, e.g. "e2e4"
	PV       []string // principal variation
}

// runner is the part of *protocol.Engine the client uses.
type runner interface {
	Run(cmds ...protocol.Cmd) error
	SearchResults() protocol.SearchResults
	Close() error
}

// UCIEngine is a client for one UCI engine. It is not safe for concurrent
// use.
type UCIEngine struct {
	eng  runner
	once sync.Once

	depth    int
	moveTime time.Duration
	log      io.Writer

	// busy is closed once a search abandoned by cancellation, and the stop
	// sent after it, have both returned.
	busy chan struct{}
}

// Option configures a UCIEngine.
type Option func(*UCIEngine)

// WithDepth makes searches stop at a fixed depth instead of a time limit.
func WithDepth(depth int) Option {
	return func(e *UCIEngine) {
		if depth > 0 {
			e.depth = depth
		}
	}
}

// WithMoveTime sets the time limit for each search.
func WithMoveTime(d time.Duration) Option {
	return func(e *UCIEngine) {
		if d > 0 {
			e.moveTime = d
		}
	}
}

// WithLog echoes the commands sent and the moves received to w.
func WithLog(w io.Writer) Option {
	return func(e *UCIEngine) {
		e.log = w
	}
}

func newClient(eng runner, opts ...Option) *UCIEngine {
	e := &UCIEngine{eng: eng, moveTime: time.Second}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// StartEngine launches the engine binary at path and completes the
// handshake.
func StartEngine(ctx context.Context, path string, opts ...Option) (*UCIEngine, error) {
	eng, err := protocol.New(path)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrEngine, "starting %s: %v", path, err)
	}
	e := newClient(eng, opts...)
	if err := e.Handshake(ctx); err != nil {
		_ = e.Close()
		return nil, err
	}
	return e, nil
}

// settle waits for an abandoned search to finish so its output cannot be
// mistaken for the next command's.
func (e *UCIEngine) settle(ctx context.Context) error {
	if e.busy == nil {
		return nil
	}
	select {
	case <-e.busy:
		e.busy = nil
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// run sends cmds and waits for their responses. The library call cannot be
// interrupted, so on cancellation it is left running with a stop queued
// behind it and the context's error is returned.
func (e *UCIEngine) run(ctx context.Context, cmds ...protocol.Cmd) error {
	if err := e.settle(ctx); err != nil {
		return err
	}
	if e.log != nil {
		for _, cmd := range cmds {
			fmt.Fprintf(e.log, "uci > %s\n", cmd)
		}
	}

	done := make(chan error, 1)
	go func() { done <- e.eng.Run(cmds...) }()

	select {
	case err := <-done:
		if err != nil {
			return errors.Wrapf(errors.ErrEngine, "%v: %v", cmds, err)
		}
		return nil
	case <-ctx.Done():
		busy := make(chan struct{})
		e.busy = busy
		go func() {
			_ = e.eng.Run(protocol.CmdStop)
			<-done
			close(busy)
		}()
		return ctx.Err()
	}
}

// Handshake switches the engine to UCI mode and waits until it is ready.
func (e *UCIEngine) Handshake(ctx context.Context) error {
	return errors.Wrap(e.run(ctx, protocol.CmdUCI, protocol.CmdIsReady), "handshake")
}

// IsReady synchronises with the engine.
func (e *UCIEngine) IsReady(ctx context.Context) error {
	return e.run(ctx, protocol.CmdIsReady)
}

// SetOption sets a named engine option.
func (e *UCIEngine) SetOption(ctx context.Context, name, value string) error {
	return e.run(ctx, protocol.CmdSetOption{Name: name, Value: value}, protocol.CmdIsReady)
}

// SetSkillLevel sets the engine strength, clamped to 0-20.
func (e *UCIEngine) SetSkillLevel(ctx context.Context, level int) error {
	level = min(max(level, MinSkillLevel), MaxSkillLevel)
	return e.SetOption(ctx, "Skill Level", strconv.Itoa(level))
}

// SetChess960 tells the engine to expect Chess960 castling.
func (e *UCIEngine) SetChess960(ctx context.Context, on bool) error {
	return e.SetOption(ctx, "UCI_Chess960", strconv.FormatBool(on))
}

// NewGame tells the engine that the next search is from a different game.
func (e *UCIEngine) NewGame(ctx context.Context) error {
	return e.run(ctx, protocol.CmdUCINewGame, protocol.CmdIsReady)
}

// BestMove searches fen and returns the engine's choice with its evaluation.
// If ctx is cancelled the search is stopped and the context's error returned.
func (e *UCIEngine) BestMove(ctx context.Context, fen string) (*Evaluation, error) {
	pos, err := position(fen)
	if err != nil {
		return nil, err
	}
	return e.search(ctx, pos, nil)
}

// Analyse returns up to lines evaluations of fen, best first. Each line after
// the first is searched with the moves already chosen left out, so every
// evaluation has a different BestMove.
func (e *UCIEngine) Analyse(ctx context.Context, fen string, lines int) ([]Evaluation, error) {
	lines = max(lines, 1)
	pos, err := position(fen)
	if err != nil {
		return nil, err
	}
	remaining := slices.Clone(pos.ValidMoves())
	if len(remaining) == 0 {
		return nil, errors.Wrapf(errors.ErrEngine, "no legal moves in %s", fen)
	}

	evals := make([]Evaluation, 0, lines)
	for len(evals) < lines && len(remaining) > 0 {
		var restrict []*chess.Move
		if len(evals) > 0 {
			restrict = remaining
		}
		eval, err := e.search(ctx, pos, restrict)
		if err != nil {
			return nil, err
		}
		evals = append(evals, *eval)
		remaining = slices.DeleteFunc(remaining, func(m *chess.Move) bool {
			return m.String() == eval.BestMove
		})
	}
	return evals, nil
}

func (e *UCIEngine) search(ctx context.Context, pos *chess.Position, searchMoves []*chess.Move) (*Evaluation, error) {
	cmdGo := protocol.CmdGo{SearchMoves: searchMoves}
	if e.depth > 0 {
		cmdGo.Depth = e.depth
	} else {
		cmdGo.MoveTime = e.moveTime
	}
	if err := e.run(ctx, protocol.CmdPosition{Position: pos}, cmdGo); err != nil {
		return nil, errors.Wrap(err, "searching")
	}

	eval, err := evaluationFrom(e.eng.SearchResults())
	if err != nil {
		return nil, err
	}
	if e.log != nil {
		fmt.Fprintf(e.log, "uci < bestmove %s (%s, depth %d)\n", eval.BestMove, FormatEvaluation(eval), eval.Depth)
	}
	return eval, nil
}

// evaluationFrom converts the library's last search results.
func evaluationFrom(res protocol.SearchResults) (*Evaluation, error) {
	if res.BestMove == nil {
		return nil, errors.Wrap(errors.ErrEngine, "engine returned no move")
	}
	eval := &Evaluation{
		Score:    res.Info.Score.CP,
		Depth:    res.Info.Depth,
		BestMove: res.BestMove.String(),
	}
	if res.Info.Score.Mate != 0 {
		eval.IsMate = true
		eval.MateIn = res.Info.Score.Mate
	}
	if len(res.Info.PV) > 0 {
		eval.PV = make([]string, len(res.Info.PV))
		for i, m := range res.Info.PV {
			eval.PV[i] = m.String()
		}
	}
	return eval, nil
}

// position parses fen for the library. Shredder-FEN castling letters are
// not understood there, so such rights are dropped; the engine then never
// castles in that position but every move it returns is still legal.
func position(fen string) (*chess.Position, error) {
	fields := strings.Fields(fen)
	if len(fields) > 2 && strings.Trim(fields[2], "KQkq") != "" {
		fields[2] = "-"
	}
	opt, err := chess.FEN(strings.Join(fields, " "))
	if err != nil {
		return nil, errors.Wrapf(errors.ErrMalformedPosition, "%s: %v", fen, err)
	}
	return chess.NewGame(opt).Position(), nil
}

// Close waits briefly for an abandoned search, then asks the engine to quit
// and releases its resources.
func (e *UCIEngine) Close() error {
	var err error
	e.once.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), closeWait)
		defer cancel()
		_ = e.settle(ctx)
		if closeErr := e.eng.Close(); closeErr != nil {
			err = errors.Wrapf(errors.ErrEngine, "engine exit: %v", closeErr)
		}
	})
	return err
}

// FormatEvaluation formats an evaluation for display: pawns with two
// decimals ("+1.23") or a mate distance ("+M3", "-M5").
func FormatEvaluation(eval *Evaluation) string {
	if eval.IsMate {
		if eval.MateIn < 0 {
			return fmt.Sprintf("-M%d", -eval.MateIn)
		}
		return fmt.Sprintf("+M%d", eval.MateIn)
	}
	sign := "+"
	score := eval.Score
	if score < 0 {
		sign = "-"
		score = -score
	}
	return fmt.Sprintf("%s%d.%02d", sign, score/100, score%100)
}
