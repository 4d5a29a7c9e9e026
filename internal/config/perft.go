package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// PerftConfig holds settings for move-tree counting.
type PerftConfig struct {
	// Depth of the count; 0 disables perft
	Depth int

	// Divide reports the count below each root move
	Divide bool

	// Workers is the number of goroutines used by divide
	Workers int
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Workers: runtime.NumCPU(),
	}
}

// Validate checks that the perft configuration is valid.
func (p *PerftConfig) Validate() error {
	if p.Depth < 0 {
		return fmt.Errorf("perft depth %d is negative: %w", p.Depth, errors.ErrInvalidConfig)
	}
	if p.Workers < 1 {
		return fmt.Errorf("perft needs at least one worker, got %d: %w", p.Workers, errors.ErrInvalidConfig)
	}
	return nil
}
