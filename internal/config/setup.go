package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Variant selects the starting array.
type Variant int

const (
	Standard Variant = iota // classic starting position
	Chess960                // Fischer random
)

// String returns the variant name.
func (v Variant) String() string {
	if v == Chess960 {
		return "chess960"
	}
	return "standard"
}

// RandomPosition asks for a Chess960 array chosen at random.
const RandomPosition = -1

// SetupConfig holds settings for the starting position.
type SetupConfig struct {
	// Variant of the starting array; ignored when FEN is set
	Variant Variant

	// Position is the Chess960 Scharnagl number, or RandomPosition
	Position int

	// Seed for the random Chess960 array; 0 picks one from the clock
	Seed uint64

	// FEN overrides the variant when non-empty
	FEN string

	// Moves to play from the starting position, in coordinate form
	Moves []string
}

// NewSetupConfig creates a SetupConfig with default values.
func NewSetupConfig() *SetupConfig {
	return &SetupConfig{
		Variant:  Standard,
		Position: RandomPosition,
	}
}

// Validate checks that the setup configuration is valid.
func (s *SetupConfig) Validate() error {
	if s.FEN != "" && s.Variant == Chess960 {
		return fmt.Errorf("a FEN position cannot be combined with chess960: %w", errors.ErrInvalidConfig)
	}
	if s.Position < RandomPosition || s.Position > 959 {
		return fmt.Errorf("chess960 position %d out of range 0-959: %w", s.Position, errors.ErrInvalidConfig)
	}
	return nil
}
