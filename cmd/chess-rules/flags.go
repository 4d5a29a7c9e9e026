// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"os"
	"strings"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

var (
	// Setup options
	fenFlag     = flag.String("fen", "", "Start from this FEN position")
	chess960    = flag.Bool("960", false, "Start from a Chess960 array")
	chess960Pos = flag.Int("960pos", config.RandomPosition, "Chess960 array number 0-959 (-1 = random)")
	seed        = flag.Uint64("seed", 0, "Seed for the random Chess960 array (0 = from the clock)")
	movesFlag   = flag.String("moves", "", "Space-separated coordinate moves to play, e.g. \"e2e4 e7e5\"")

	// Report options
	showMoves   = flag.Bool("legal", true, "List the legal moves of the final position")
	showHistory = flag.Bool("history", false, "List the moves played")
	jsonOutput  = flag.Bool("json", false, "Write the report as JSON")

	// Perft options
	perftDepth = flag.Int("perft", 0, "Count leaf nodes of the move tree to depth N")
	divide     = flag.Bool("divide", false, "With -perft, report the count below each root move")
	workers    = flag.Int("workers", 0, "Goroutines used by -divide (default: number of CPUs)")

	// Engine options
	enginePath  = flag.String("engine", "", "Path to a UCI engine binary")
	skillLevel  = flag.Int("skill", 10, "Engine skill level 0-20")
	moveTime    = flag.Duration("movetime", time.Second, "Engine time per move")
	searchDepth = flag.Int("depth", 0, "Engine search depth (overrides -movetime)")
	enginePlies = flag.Int("play", 0, "Let the engine play N plies from the position")
	hintLines   = flag.Int("hint", 0, "Ask the engine for N candidate moves")

	// Diagnostics
	verbose = flag.Bool("v", false, "Verbose output, including engine traffic")
	quiet   = flag.Bool("q", false, "Only report errors")
	logFile = flag.String("log", "", "Write diagnostics to this file (default: stderr)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags copies parsed flag values into cfg.
func applyFlags(cfg *config.Config) {
	applySetupFlags(cfg)
	applyEngineFlags(cfg)
	applyPerftFlags(cfg)
	applyVerbosityFlags(cfg)
	cfg.ListMoves = *showMoves
	cfg.ListHistory = *showHistory
	cfg.JSON = *jsonOutput
}

func applySetupFlags(cfg *config.Config) {
	cfg.Setup.FEN = *fenFlag
	cfg.Setup.Position = *chess960Pos
	cfg.Setup.Seed = *seed
	if *chess960 || *chess960Pos != config.RandomPosition {
		cfg.Setup.Variant = config.Chess960
	}
	cfg.Setup.Moves = strings.Fields(*movesFlag)
}

func applyEngineFlags(cfg *config.Config) {
	cfg.Engine.Path = *enginePath
	cfg.Engine.SkillLevel = *skillLevel
	cfg.Engine.MoveTime = *moveTime
	cfg.Engine.Depth = *searchDepth
	cfg.Engine.PlayPlies = *enginePlies
	cfg.Engine.HintLines = *hintLines
}

func applyPerftFlags(cfg *config.Config) {
	cfg.Perft.Depth = *perftDepth
	cfg.Perft.Divide = *divide
	if *workers > 0 {
		cfg.Perft.Workers = *workers
	}
}

func applyVerbosityFlags(cfg *config.Config) {
	switch {
	case *quiet:
		cfg.Verbosity = config.Quiet
	case *verbose:
		cfg.Verbosity = config.Verbose
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) error {
	if *logFile == "" {
		return nil
	}
	file, err := os.Create(*logFile)
	if err != nil {
		return err
	}
	cfg.LogFile = file
	return nil
}
