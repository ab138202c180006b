package config

import (
	"io"

	"go.uber.org/zap"
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

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithLogger sets the logger used for warnings.
func (b *ConfigBuilder) WithLogger(logger *zap.Logger) *ConfigBuilder {
	b.cfg.Logger = logger
	return b
}

// WithBareVariations controls whether unlabelled "( ... )" blocks are variations.
func (b *ConfigBuilder) WithBareVariations(enabled bool) *ConfigBuilder {
	b.cfg.BareVariations = enabled
	return b
}

// WithFENTag controls whether a FEN tag sets the starting position.
func (b *ConfigBuilder) WithFENTag(enabled bool) *ConfigBuilder {
	b.cfg.UseFENTag = enabled
	return b
}

// WithFEN controls whether each record carries the FEN after the move.
func (b *ConfigBuilder) WithFEN(enabled bool) *ConfigBuilder {
	b.cfg.IncludeFEN = enabled
	return b
}

// WithWorkers sets the number of files parsed in parallel.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithIndent controls JSON pretty-printing.
func (b *ConfigBuilder) WithIndent(indent bool) *ConfigBuilder {
	b.cfg.Output.Indent = indent
	return b
}

// WithWarnings controls whether warnings are written with the game.
func (b *ConfigBuilder) WithWarnings(include bool) *ConfigBuilder {
	b.cfg.Output.IncludeWarnings = include
	return b
}
