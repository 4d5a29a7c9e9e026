// chess-rules plays, checks and counts chess positions under the standard
// and Chess960 rules, optionally against an external UCI engine.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/uci"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-rules version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	if err := setupLogFile(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// run sets up the game, plays the requested moves and writes a report on
// the resulting position.
func run(ctx context.Context, cfg *config.Config) error {
	g, err := newGame(cfg.Setup)
	if err != nil {
		return err
	}
	if cfg.Setup.Variant == config.Chess960 {
		cfg.Logf(config.Normal, "Chess960 position %d", g.Chess960Index())
	}

	for _, text := range cfg.Setup.Moves {
		if err := g.Play(text); err != nil {
			return err
		}
		cfg.Logf(config.Verbose, "played %s: %s", text, g.FEN())
	}

	var perft *output.PerftReport
	if cfg.Perft.Depth > 0 {
		if perft, err = runPerft(ctx, cfg, g.Board()); err != nil {
			return err
		}
	}

	var hints []output.Hint
	if cfg.Engine.Enabled() {
		if hints, err = runEngine(ctx, cfg, g); err != nil {
			return err
		}
	}

	report := output.NewReport(g, cfg)
	report.Perft = perft
	report.Hints = hints
	return output.NewWriter(cfg).WriteReport(report)
}

// newGame creates the game described by the setup configuration.
func newGame(setup *config.SetupConfig) (*game.Game, error) {
	switch {
	case setup.FEN != "":
		return game.New(game.WithFEN(setup.FEN))
	case setup.Variant == config.Chess960 && setup.Position == config.RandomPosition:
		s := setup.Seed
		if s == 0 {
			s = uint64(time.Now().UnixNano())
		}
		return game.New(game.WithRandomChess960(rand.New(rand.NewPCG(s, s>>1|1))))
	case setup.Variant == config.Chess960:
		return game.New(game.WithChess960(setup.Position))
	default:
		return game.New()
	}
}

// runPerft counts the move tree below board, per root move with -divide.
func runPerft(ctx context.Context, cfg *config.Config, board *chess.Board) (*output.PerftReport, error) {
	start := time.Now()
	defer func() { cfg.Logf(config.Verbose, "perft took %v", time.Since(start)) }()

	if !cfg.Perft.Divide {
		return &output.PerftReport{Depth: cfg.Perft.Depth, Nodes: engine.Perft(board, cfg.Perft.Depth)}, nil
	}
	results, err := engine.DivideContext(ctx, board, cfg.Perft.Depth, cfg.Perft.Workers)
	if err != nil {
		return nil, err
	}
	return output.NewPerftReport(cfg.Perft.Depth, results), nil
}

// runEngine starts the engine, collects hints and lets it play.
func runEngine(ctx context.Context, cfg *config.Config, g *game.Game) ([]output.Hint, error) {
	opts := []uci.Option{uci.WithMoveTime(cfg.Engine.MoveTime), uci.WithDepth(cfg.Engine.Depth)}
	if cfg.Verbosity >= config.Verbose && cfg.LogFile != nil {
		opts = append(opts, uci.WithLog(cfg.LogFile))
	}

	eng, err := uci.StartEngine(ctx, cfg.Engine.Path, opts...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := eng.Close(); err != nil {
			cfg.Logf(config.Verbose, "closing engine: %v", err)
		}
	}()

	if err := eng.SetSkillLevel(ctx, cfg.Engine.SkillLevel); err != nil {
		return nil, err
	}
	if g.Board().Chess960 {
		if err := eng.SetChess960(ctx, true); err != nil {
			return nil, err
		}
	}
	if err := eng.NewGame(ctx); err != nil {
		return nil, err
	}

	var hints []output.Hint
	if cfg.Engine.HintLines > 0 && !g.Status().IsTerminal() {
		if hints, err = engineHints(ctx, eng, g, cfg.Engine.HintLines); err != nil {
			return nil, err
		}
	}
	return hints, playEngineMoves(ctx, cfg, eng, g)
}

// engineHints asks the engine for candidate moves in the current position.
func engineHints(ctx context.Context, eng *uci.UCIEngine, g *game.Game, lines int) ([]output.Hint, error) {
	evals, err := eng.Analyse(ctx, g.FEN(), lines)
	if err != nil {
		return nil, err
	}
	hints := make([]output.Hint, len(evals))
	for i := range evals {
		hints[i] = output.Hint{
			Move:  evals[i].BestMove,
			Score: uci.FormatEvaluation(&evals[i]),
			Depth: evals[i].Depth,
		}
	}
	return hints, nil
}

// playEngineMoves lets the engine play until the ply budget is spent or the
// game ends. Every engine move is checked against the rules.
func playEngineMoves(ctx context.Context, cfg *config.Config, eng *uci.UCIEngine, g *game.Game) error {
	for i := 0; i < cfg.Engine.PlayPlies; i++ {
		if g.Status().IsTerminal() {
			break
		}
		ev, err := eng.BestMove(ctx, g.FEN())
		if err != nil {
			return err
		}
		if err := g.Play(ev.BestMove); err != nil {
			return errors.Wrapf(errors.ErrEngine, "engine move %s rejected: %v", ev.BestMove, err)
		}
		cfg.Logf(config.Normal, "engine plays %s (%s)", ev.BestMove, uci.FormatEvaluation(ev))
	}
	return nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-rules [options]\n\n")
	fmt.Fprintf(os.Stderr, "Play, check and count chess positions, standard or Chess960.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nMoves use coordinate notation: e2e4, e7e8q. Castling may be written\n")
	fmt.Fprintf(os.Stderr, "as the king's two-square step (e1g1) or as king-takes-own-rook (e1h1).\n")
	fmt.Fprintf(os.Stderr, "\nStatus values: in_progress, checkmate, stalemate, draw_repetition,\n")
	fmt.Fprintf(os.Stderr, "draw_50_moves, draw_insufficient_material.\n")
}
