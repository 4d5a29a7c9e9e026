// Package config provides configuration for the chess-rules command.
package config

import (
	"fmt"
	"io"
	"os"
)

// Verbosity levels.
const (
	Quiet   = 0 // errors only
	Normal  = 1 // results
	Verbose = 2 // running commentary, including engine traffic
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=errors only, 1=results, 2=running commentary

	// Report options
	ListMoves   bool // list the legal moves of the final position
	ListHistory bool // list the moves played
	JSON        bool // write the report as JSON

	// Sub-configurations
	Setup  *SetupConfig
	Engine *EngineConfig
	Perft  *PerftConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  Normal,
		ListMoves:  true,
		Setup:      NewSetupConfig(),
		Engine:     NewEngineConfig(),
		Perft:      NewPerftConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Logf writes a diagnostic line to LogFile when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}

// Validate checks every sub-configuration.
func (c *Config) Validate() error {
	if err := c.Setup.Validate(); err != nil {
		return err
	}
	if err := c.Engine.Validate(); err != nil {
		return err
	}
	return c.Perft.Validate()
}
