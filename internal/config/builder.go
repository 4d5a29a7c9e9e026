package config

import (
	"io"
	"time"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build validates and returns the built Config.
func (b *ConfigBuilder) Build() (*Config, error) {
	if err := b.cfg.Validate(); err != nil {
		return nil, err
	}
	return b.cfg, nil
}

// WithFEN starts from a FEN position.
func (b *ConfigBuilder) WithFEN(fen string) *ConfigBuilder {
	b.cfg.Setup.FEN = fen
	return b
}

// WithChess960 selects Chess960 array n, or RandomPosition.
func (b *ConfigBuilder) WithChess960(n int) *ConfigBuilder {
	b.cfg.Setup.Variant = Chess960
	b.cfg.Setup.Position = n
	return b
}

// WithSeed sets the seed for random Chess960 arrays.
func (b *ConfigBuilder) WithSeed(seed uint64) *ConfigBuilder {
	b.cfg.Setup.Seed = seed
	return b
}

// WithMoves sets the moves to play from the start.
func (b *ConfigBuilder) WithMoves(moves ...string) *ConfigBuilder {
	b.cfg.Setup.Moves = moves
	return b
}

// WithEngine sets the engine binary path.
func (b *ConfigBuilder) WithEngine(path string) *ConfigBuilder {
	b.cfg.Engine.Path = path
	return b
}

// WithSkillLevel sets the engine skill level.
func (b *ConfigBuilder) WithSkillLevel(level int) *ConfigBuilder {
	b.cfg.Engine.SkillLevel = level
	return b
}

// WithSearchLimits sets the engine move time and depth.
func (b *ConfigBuilder) WithSearchLimits(moveTime time.Duration, depth int) *ConfigBuilder {
	b.cfg.Engine.MoveTime = moveTime
	b.cfg.Engine.Depth = depth
	return b
}

// WithEnginePlay lets the engine play plies moves.
func (b *ConfigBuilder) WithEnginePlay(plies int) *ConfigBuilder {
	b.cfg.Engine.PlayPlies = plies
	return b
}

// WithHints asks the engine for lines candidate moves.
func (b *ConfigBuilder) WithHints(lines int) *ConfigBuilder {
	b.cfg.Engine.HintLines = lines
	return b
}

// WithPerft sets the perft depth and divide mode.
func (b *ConfigBuilder) WithPerft(depth int, divide bool) *ConfigBuilder {
	b.cfg.Perft.Depth = depth
	b.cfg.Perft.Divide = divide
	return b
}

// WithWorkers sets the number of perft workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Perft.Workers = n
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithJSON selects JSON report output.
func (b *ConfigBuilder) WithJSON(on bool) *ConfigBuilder {
	b.cfg.JSON = on
	return b
}
