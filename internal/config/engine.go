package config

import (
	"fmt"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Skill level bounds for the external engine.
const (
	MinSkillLevel = 0
	MaxSkillLevel = 20
)

// EngineConfig holds settings for the external UCI engine.
type EngineConfig struct {
	// Path to the engine binary; empty disables the engine
	Path string

	// SkillLevel is passed as the "Skill Level" option
	SkillLevel int

	// MoveTime limits each search; ignored when Depth is set
	MoveTime time.Duration

	// Depth makes searches stop at a fixed depth
	Depth int

	// PlayPlies is the number of plies the engine plays from the position
	PlayPlies int

	// HintLines is the number of candidate moves to show
	HintLines int
}

// NewEngineConfig creates an EngineConfig with default values.
func NewEngineConfig() *EngineConfig {
	return &EngineConfig{
		SkillLevel: 10,
		MoveTime:   time.Second,
	}
}

// Enabled reports whether an engine binary is configured.
func (e *EngineConfig) Enabled() bool {
	return e.Path != ""
}

// Validate checks that the engine configuration is valid.
func (e *EngineConfig) Validate() error {
	if e.SkillLevel < MinSkillLevel || e.SkillLevel > MaxSkillLevel {
		return fmt.Errorf("skill level %d out of range %d-%d: %w",
			e.SkillLevel, MinSkillLevel, MaxSkillLevel, errors.ErrInvalidConfig)
	}
	if e.MoveTime < 0 || e.Depth < 0 || e.PlayPlies < 0 || e.HintLines < 0 {
		return fmt.Errorf("engine limits must not be negative: %w", errors.ErrInvalidConfig)
	}
	if e.Depth == 0 && e.MoveTime == 0 {
		return fmt.Errorf("engine needs a move time or a depth: %w", errors.ErrInvalidConfig)
	}
	if (e.PlayPlies > 0 || e.HintLines > 0) && !e.Enabled() {
		return fmt.Errorf("engine play and hints need an engine path: %w", errors.ErrInvalidConfig)
	}
	return nil
}
