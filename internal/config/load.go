package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/lgbarn/pgn-delta/internal/errors"
)

// EnvPrefix prefixes environment overrides, e.g. PGNDELTA_LOG_LEVEL.
const EnvPrefix = "PGNDELTA"

// fileSettings is the on-disk shape of the configuration.
type fileSettings struct {
	LogLevel       string `mapstructure:"log_level"`
	BareVariations bool   `mapstructure:"bare_variations"`
	UseFENTag      bool   `mapstructure:"use_fen_tag"`
	IncludeFEN     bool   `mapstructure:"include_fen"`
	Workers        int    `mapstructure:"workers"`
	Output         struct {
		Indent          bool `mapstructure:"indent"`
		IncludeWarnings bool `mapstructure:"include_warnings"`
		IncludeTags     bool `mapstructure:"include_tags"`
	} `mapstructure:"output"`
}

// Load reads configuration from path (YAML, JSON or TOML, chosen by
// extension) with PGNDELTA_* environment overrides. An empty path uses
// defaults and the environment only.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(errors.ErrInvalidConfig, "reading %s: %v", path, err)
		}
	}

	var s fileSettings
	if err := v.Unmarshal(&s); err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "decoding settings: %v", err)
	}

	cfg := NewConfig()
	cfg.LogLevel = strings.ToLower(s.LogLevel)
	cfg.BareVariations = s.BareVariations
	cfg.UseFENTag = s.UseFENTag
	cfg.IncludeFEN = s.IncludeFEN
	cfg.Workers = s.Workers
	cfg.Output.Indent = s.Output.Indent
	cfg.Output.IncludeWarnings = s.Output.IncludeWarnings
	cfg.Output.IncludeTags = s.Output.IncludeTags

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setDefaults mirrors NewConfig so that a partial file keeps the defaults.
func setDefaults(v *viper.Viper) {
	d := NewConfig()
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("bare_variations", d.BareVariations)
	v.SetDefault("use_fen_tag", d.UseFENTag)
	v.SetDefault("include_fen", d.IncludeFEN)
	v.SetDefault("workers", d.Workers)
	v.SetDefault("output.indent", d.Output.Indent)
	v.SetDefault("output.include_warnings", d.Output.IncludeWarnings)
	v.SetDefault("output.include_tags", d.Output.IncludeTags)
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return errors.Wrapf(errors.ErrInvalidConfig, "unknown log level %q", c.LogLevel)
	}
	if c.Workers < 1 {
		return errors.Wrapf(errors.ErrInvalidConfig, "workers must be at least 1, got %d", c.Workers)
	}
	return nil
}
