package main

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

// ---------------------------------------------------------------------------
// applySetupFlags
// ---------------------------------------------------------------------------

func TestApplySetupFlags(t *testing.T) {
	t.Run("defaults to the standard variant", func(t *testing.T) {
		defer saveRestoreBool(chess960, false)()
		defer saveRestoreInt(chess960Pos, config.RandomPosition)()
		cfg := config.NewConfig()
		applySetupFlags(cfg)
		if cfg.Setup.Variant != config.Standard {
			t.Errorf("Variant = %v; want standard", cfg.Setup.Variant)
		}
	})

	t.Run("-960 selects a random array", func(t *testing.T) {
		defer saveRestoreBool(chess960, true)()
		defer saveRestoreInt(chess960Pos, config.RandomPosition)()
		cfg := config.NewConfig()
		applySetupFlags(cfg)
		if cfg.Setup.Variant != config.Chess960 || cfg.Setup.Position != config.RandomPosition {
			t.Errorf("Variant, Position = %v, %d; want chess960, random", cfg.Setup.Variant, cfg.Setup.Position)
		}
	})

	t.Run("-960pos implies chess960", func(t *testing.T) {
		defer saveRestoreBool(chess960, false)()
		defer saveRestoreInt(chess960Pos, 42)()
		cfg := config.NewConfig()
		applySetupFlags(cfg)
		if cfg.Setup.Variant != config.Chess960 || cfg.Setup.Position != 42 {
			t.Errorf("Variant, Position = %v, %d; want chess960, 42", cfg.Setup.Variant, cfg.Setup.Position)
		}
	})

	t.Run("moves are split on whitespace", func(t *testing.T) {
		defer saveRestoreString(movesFlag, "  e2e4\te7e5 g1f3 ")()
		cfg := config.NewConfig()
		applySetupFlags(cfg)
		want := []string{"e2e4", "e7e5", "g1f3"}
		if !reflect.DeepEqual(cfg.Setup.Moves, want) {
			t.Errorf("Moves = %v; want %v", cfg.Setup.Moves, want)
		}
	})

	t.Run("fen is copied", func(t *testing.T) {
		defer saveRestoreString(fenFlag, "8/8/8/8/8/8/8/K6k w - - 0 1")()
		cfg := config.NewConfig()
		applySetupFlags(cfg)
		if cfg.Setup.FEN != "8/8/8/8/8/8/8/K6k w - - 0 1" {
			t.Errorf("FEN = %q", cfg.Setup.FEN)
		}
	})
}

// ---------------------------------------------------------------------------
// applyEngineFlags
// ---------------------------------------------------------------------------

func TestApplyEngineFlags(t *testing.T) {
	defer saveRestoreString(enginePath, "/usr/bin/stockfish")()
	defer saveRestoreInt(skillLevel, 5)()
	defer saveRestoreInt(searchDepth, 12)()
	defer saveRestoreInt(enginePlies, 4)()
	defer saveRestoreInt(hintLines, 3)()
	old := *moveTime
	*moveTime = 250 * time.Millisecond
	defer func() { *moveTime = old }()

	cfg := config.NewConfig()
	applyEngineFlags(cfg)

	if !cfg.Engine.Enabled() {
		t.Error("Enabled() = false with a path set")
	}
	if cfg.Engine.SkillLevel != 5 {
		t.Errorf("SkillLevel = %d; want 5", cfg.Engine.SkillLevel)
	}
	if cfg.Engine.MoveTime != 250*time.Millisecond {
		t.Errorf("MoveTime = %v; want 250ms", cfg.Engine.MoveTime)
	}
	if cfg.Engine.Depth != 12 || cfg.Engine.PlayPlies != 4 || cfg.Engine.HintLines != 3 {
		t.Errorf("Depth, PlayPlies, HintLines = %d, %d, %d; want 12, 4, 3",
			cfg.Engine.Depth, cfg.Engine.PlayPlies, cfg.Engine.HintLines)
	}
}

// ---------------------------------------------------------------------------
// applyPerftFlags
// ---------------------------------------------------------------------------

func TestApplyPerftFlags(t *testing.T) {
	t.Run("explicit workers", func(t *testing.T) {
		defer saveRestoreInt(perftDepth, 3)()
		defer saveRestoreBool(divide, true)()
		defer saveRestoreInt(workers, 2)()
		cfg := config.NewConfig()
		applyPerftFlags(cfg)
		if cfg.Perft.Depth != 3 || !cfg.Perft.Divide || cfg.Perft.Workers != 2 {
			t.Errorf("Perft = %+v; want depth 3, divide, 2 workers", *cfg.Perft)
		}
	})

	t.Run("zero workers keeps the default", func(t *testing.T) {
		defer saveRestoreInt(workers, 0)()
		cfg := config.NewConfig()
		want := cfg.Perft.Workers
		applyPerftFlags(cfg)
		if cfg.Perft.Workers != want {
			t.Errorf("Workers = %d; want %d", cfg.Perft.Workers, want)
		}
	})
}

// ---------------------------------------------------------------------------
// applyVerbosityFlags
// ---------------------------------------------------------------------------

func TestApplyVerbosityFlags(t *testing.T) {
	tests := []struct {
		name    string
		quiet   bool
		verbose bool
		want    int
	}{
		{"default", false, false, config.Normal},
		{"quiet", true, false, config.Quiet},
		{"verbose", false, true, config.Verbose},
		{"quiet wins", true, true, config.Quiet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer saveRestoreBool(quiet, tt.quiet)()
			defer saveRestoreBool(verbose, tt.verbose)()
			cfg := config.NewConfig()
			applyVerbosityFlags(cfg)
			if cfg.Verbosity != tt.want {
				t.Errorf("Verbosity = %d; want %d", cfg.Verbosity, tt.want)
			}
		})
	}
}

func TestApplyFlags_ReportOptions(t *testing.T) {
	defer saveRestoreBool(showMoves, false)()
	defer saveRestoreBool(showHistory, true)()
	cfg := config.NewConfig()
	applyFlags(cfg)
	if cfg.ListMoves || !cfg.ListHistory {
		t.Errorf("ListMoves, ListHistory = %v, %v; want false, true", cfg.ListMoves, cfg.ListHistory)
	}
}

// ---------------------------------------------------------------------------
// setupLogFile
// ---------------------------------------------------------------------------

func TestSetupLogFile(t *testing.T) {
	t.Run("no flag keeps stderr", func(t *testing.T) {
		defer saveRestoreString(logFile, "")()
		cfg := config.NewConfig()
		if err := setupLogFile(cfg); err != nil {
			t.Fatalf("setupLogFile() error = %v", err)
		}
		if cfg.LogFile != os.Stderr {
			t.Error("LogFile changed without -log")
		}
	})

	t.Run("creates the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "chess.log")
		defer saveRestoreString(logFile, path)()
		cfg := config.NewConfig()
		if err := setupLogFile(cfg); err != nil {
			t.Fatalf("setupLogFile() error = %v", err)
		}
		cfg.Logf(config.Normal, "hello")
		if f, ok := cfg.LogFile.(*os.File); ok {
			f.Close()
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != "hello\n" {
			t.Errorf("log contents = %q; want %q", data, "hello\n")
		}
	})

	t.Run("bad path", func(t *testing.T) {
		defer saveRestoreString(logFile, "/nonexistent/dir/chess.log")()
		if err := setupLogFile(config.NewConfig()); err == nil {
			t.Error("setupLogFile() expected error for an unwritable path")
		}
	})
}
