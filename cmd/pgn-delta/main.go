// pgn-delta converts chess game transcripts into the JSON document read by
// the board animation: one record of square operations per move, with
// annotated variations attached to the moves they branch from.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lgbarn/pgn-delta/internal/assembler"
	"github.com/lgbarn/pgn-delta/internal/config"
	"github.com/lgbarn/pgn-delta/internal/output"
	"github.com/lgbarn/pgn-delta/internal/worker"
)

const (
	programName    = "pgn-delta"
	programVersion = "0.1.0"
)

// Exit codes.
const (
	exitOK    = 0
	exitInput = 1 // at least one input could not be parsed or read
	exitUsage = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run is the whole program behind main, with its streams passed in.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", programName, err)
		return exitUsage
	}

	if opts.help {
		newFlagSet(&options{}, stderr).Usage()
		return exitOK
	}
	if opts.version {
		fmt.Fprintf(stdout, "%s version %s\n", programName, programVersion)
		return exitOK
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", programName, err)
		return exitUsage
	}
	applyFlags(cfg, opts)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", programName, err)
		return exitUsage
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", programName, err)
		return exitUsage
	}
	defer logger.Sync() //nolint:errcheck // stderr sync errors are not actionable
	cfg.Logger = logger

	out := stdout
	if opts.outputFile != "" {
		file, err := os.Create(opts.outputFile) //nolint:gosec // G304: path is user-specified
		if err != nil {
			fmt.Fprintf(stderr, "%s: creating output file: %v\n", programName, err)
			return exitUsage
		}
		defer file.Close()
		out = file
	}
	cfg.OutputFile = out

	items, code := readInputs(opts.inputs, stdin, stderr)
	if len(items) == 0 {
		return code
	}

	pool := worker.NewPool(worker.AssembleFunc(assembler.New(cfg)),
		worker.WithWorkers(cfg.Workers),
		worker.WithBufferSize(len(items)),
	)
	results := pool.Run(ctx, items)

	writer := newGameWriter(cfg, opts.format, len(items) == 1)
	for _, result := range results {
		if result.Error != nil {
			logger.Error("input rejected", zap.String("input", result.Name), zap.Error(result.Error))
			fmt.Fprintf(stderr, "%s: %s: %v\n", programName, result.Name, result.Error)
			code = exitInput
			continue
		}
		if err := writer.WriteGame(result.Game, result.Warnings); err != nil {
			fmt.Fprintf(stderr, "%s: writing output: %v\n", programName, err)
			return exitInput
		}
	}
	if err := writer.Close(); err != nil {
		fmt.Fprintf(stderr, "%s: writing output: %v\n", programName, err)
		return exitInput
	}

	return code
}

// readInputs reads every named input, or stdin when there are none.
// Unreadable files are reported and skipped.
func readInputs(names []string, stdin io.Reader, stderr io.Writer) ([]worker.WorkItem, int) {
	if len(names) == 0 {
		names = []string{"-"}
	}

	code := exitOK
	var items []worker.WorkItem
	for _, name := range names {
		var data []byte
		var err error
		if name == "-" {
			data, err = io.ReadAll(stdin)
		} else {
			data, err = os.ReadFile(name) //nolint:gosec // G304: path is user-specified
		}
		if err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", programName, err)
			code = exitInput
			continue
		}
		items = append(items, worker.WorkItem{Name: name, Text: string(data)})
	}
	return items, code
}

// newGameWriter selects the writer for format. A single JSON game is
// written as one document, several as a {"games": [...]} array.
func newGameWriter(cfg *config.Config, format string, single bool) output.GameWriter {
	switch {
	case format == formatText:
		return output.NewTextWriter(cfg.OutputFile, cfg)
	case single:
		return output.NewJSONWriterSingle(cfg.OutputFile, cfg)
	default:
		return output.NewJSONWriter(cfg.OutputFile, cfg)
	}
}

// newLogger builds the diagnostic logger. Debug uses zap's development
// settings; other levels use production settings writing to stderr.
func newLogger(level string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	zcfg := zap.NewProductionConfig()
	if lvl == zapcore.DebugLevel {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}
	return zcfg.Build()
}
