// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/lgbarn/pgn-delta/internal/config"
)

// Output formats.
const (
	formatJSON = "json"
	formatText = "text"
)

// options holds the parsed command line.
type options struct {
	configPath string
	outputFile string
	format     string
	help       bool
	version    bool

	// Settings that override the config file when given.
	logLevel      string
	workers       int
	warnings      bool
	compact       bool
	noFEN         bool
	noFENTag      bool
	noBareVars    bool
	noTags        bool
	explicitlySet map[string]bool

	inputs []string
}

// newFlagSet defines the flags on a fresh FlagSet bound to opts.
func newFlagSet(opts *options, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(stderr)

	// Input and output
	fs.StringVar(&opts.configPath, "config", "", "Configuration file (YAML, JSON or TOML)")
	fs.StringVar(&opts.outputFile, "o", "", "Output file (default: stdout)")
	fs.StringVar(&opts.format, "format", formatJSON, "Output format: json or text")

	// Content options
	fs.BoolVar(&opts.warnings, "warnings", false, "Include recovered warnings in the output")
	fs.BoolVar(&opts.compact, "compact", false, "Write compact JSON without indentation")
	fs.BoolVar(&opts.noFEN, "nofen", false, "Don't record the position after each move")
	fs.BoolVar(&opts.noFENTag, "nofentag", false, "Ignore FEN tags and start from the standard position")
	fs.BoolVar(&opts.noBareVars, "nobare", false, "Only treat {variation: NAME} blocks as variations")
	fs.BoolVar(&opts.noTags, "notags", false, "Don't output tags")

	// Processing
	fs.IntVar(&opts.workers, "workers", 0, "Number of inputs parsed in parallel")
	fs.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn or error")

	// Information
	fs.BoolVar(&opts.help, "h", false, "Show help")
	fs.BoolVar(&opts.version, "version", false, "Show version")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: %s [options] [file ...]\n\n", programName)
		fmt.Fprintf(stderr, "Converts chess game transcripts into board-state deltas.\n")
		fmt.Fprintf(stderr, "Reads standard input when no file is given or a file is \"-\".\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
	}
	return fs
}

// parseArgs parses args into options.
func parseArgs(args []string, stderr io.Writer) (*options, error) {
	opts := &options{explicitlySet: make(map[string]bool)}
	fs := newFlagSet(opts, stderr)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) {
		opts.explicitlySet[f.Name] = true
	})
	opts.inputs = fs.Args()

	if opts.format != formatJSON && opts.format != formatText {
		return nil, fmt.Errorf("unknown output format %q", opts.format)
	}
	return opts, nil
}

// applyFlags overrides cfg with the flags given on the command line.
func applyFlags(cfg *config.Config, opts *options) {
	set := opts.explicitlySet

	if set["log-level"] {
		cfg.LogLevel = opts.logLevel
	}
	if set["workers"] {
		cfg.Workers = opts.workers
	}
	if set["warnings"] {
		cfg.Output.IncludeWarnings = opts.warnings
	}
	if set["compact"] {
		cfg.Output.Indent = !opts.compact
	}
	if set["nofen"] {
		cfg.IncludeFEN = !opts.noFEN
	}
	if set["nofentag"] {
		cfg.UseFENTag = !opts.noFENTag
	}
	if set["nobare"] {
		cfg.BareVariations = !opts.noBareVars
	}
	if set["notags"] {
		cfg.Output.IncludeTags = !opts.noTags
	}
}
