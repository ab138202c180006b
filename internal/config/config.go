// Package config provides configuration for pgn-delta.
package config

import (
	"io"
	"os"

	"go.uber.org/zap"
)

// Config holds all tokenizer, assembler and CLI configuration.
type Config struct {
	// Logger receives one Warn entry per recovered problem.
	Logger *zap.Logger

	// LogLevel is the CLI logger level: debug, info, warn or error.
	LogLevel string

	// BareVariations treats unlabelled "( ... )" blocks as variations.
	BareVariations bool

	// UseFENTag starts the game from a FEN tag when one is present.
	UseFENTag bool

	// IncludeFEN records the position after each move.
	IncludeFEN bool

	// Workers is the number of input files parsed in parallel by the CLI.
	Workers int

	Output OutputConfig

	// Output stream
	OutputFile io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Logger:         zap.NewNop(),
		LogLevel:       "warn",
		BareVariations: true,
		UseFENTag:      true,
		IncludeFEN:     true,
		Workers:        1,
		Output:         *NewOutputConfig(),
		OutputFile:     os.Stdout,
	}
}

// Log returns the configured logger, never nil.
func (c *Config) Log() *zap.Logger {
	if c == nil || c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}
