package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lgbarn/pgn-delta/internal/config"
	"github.com/lgbarn/pgn-delta/internal/output"
	"github.com/lgbarn/pgn-delta/internal/testutil"
)

// runCLI runs the program with args and stdin, returning the exit code and
// both output streams.
func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), append([]string{"-log-level", "error"}, args...), strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

func TestRun_Stdin(t *testing.T) {
	code, stdout, stderr := runCLI(t, testutil.ItalianOpening)
	testutil.AssertEqual(t, code, exitOK, stderr)

	var game output.JSONGame
	testutil.AssertNoError(t, json.Unmarshal([]byte(stdout), &game))
	testutil.AssertEqual(t, game.Title, "Ada vs Brian")
	testutil.AssertEqual(t, len(game.Moves), 7)
	testutil.AssertEqual(t, game.Moves[5].Variations[0].Name, "Spanish")
	testutil.AssertContains(t, stdout, "\n  \"title\"", "JSON is indented by default")
}

func TestRun_MultipleFiles(t *testing.T) {
	first := writeInput(t, "a.pgn", "1. e4 e5")
	second := writeInput(t, "b.pgn", "1. d4")

	code, stdout, stderr := runCLI(t, "", "-workers", "2", "-compact", first, second)
	testutil.AssertEqual(t, code, exitOK, stderr)

	var out output.JSONOutput
	testutil.AssertNoError(t, json.Unmarshal([]byte(stdout), &out))
	testutil.AssertEqual(t, len(out.Games), 2)
	testutil.AssertEqual(t, out.Games[0].Moves[2].Notation, "e5")
	testutil.AssertEqual(t, out.Games[1].Moves[1].Notation, "d4")
}

func TestRun_FailedInputKeepsOthers(t *testing.T) {
	good := writeInput(t, "good.pgn", "1. e4")
	bad := writeInput(t, "bad.pgn", "1. e4 {unterminated")
	missing := filepath.Join(t.TempDir(), "missing.pgn")

	code, stdout, stderr := runCLI(t, "", good, bad, missing)
	testutil.AssertEqual(t, code, exitInput)
	testutil.AssertContains(t, stderr, "bad.pgn")
	testutil.AssertContains(t, stderr, "missing.pgn")

	var out output.JSONOutput
	testutil.AssertNoError(t, json.Unmarshal([]byte(stdout), &out))
	testutil.AssertEqual(t, len(out.Games), 1)
}

func TestRun_WarningsAndText(t *testing.T) {
	code, stdout, _ := runCLI(t, "1. e4 Qz9 e5", "-warnings")
	testutil.AssertEqual(t, code, exitOK)
	testutil.AssertContains(t, stdout, `"warnings"`)
	testutil.AssertContains(t, stdout, "Qz9")

	code, stdout, _ = runCLI(t, "1. e4 e5", "-format", "text")
	testutil.AssertEqual(t, code, exitOK)
	testutil.AssertContains(t, stdout, "1... Black plays e5, pawn from e7 to e5.")
}

func TestRun_OutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	code, stdout, stderr := runCLI(t, "1. e4", "-o", path)
	testutil.AssertEqual(t, code, exitOK, stderr)
	testutil.AssertEqual(t, stdout, "")

	data, err := os.ReadFile(path)
	testutil.AssertNoError(t, err)
	testutil.AssertContains(t, string(data), `"notationText": "e4"`)
}

func TestRun_ConfigFile(t *testing.T) {
	path := writeInput(t, "pgn-delta.yaml", "include_fen: false\noutput:\n  indent: false\n")

	code, stdout, stderr := runCLI(t, "1. e4", "-config", path)
	testutil.AssertEqual(t, code, exitOK, stderr)
	testutil.AssertNotContains(t, stdout, `"fen"`)
	testutil.AssertNotContains(t, stdout, "\n  ")
}

func TestRun_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown format", []string{"-format", "xml"}, "unknown output format"},
		{"bad workers", []string{"-workers", "0"}, "invalid configuration"},
		{"missing config", []string{"-config", "/nonexistent/pgn-delta.yaml"}, "invalid configuration"},
		{"unknown flag", []string{"-bogus"}, "bogus"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := runCLI(t, "1. e4", tt.args...)
			testutil.AssertEqual(t, code, exitUsage)
			testutil.AssertContains(t, stderr, tt.want)
		})
	}
}

func TestRun_Version(t *testing.T) {
	code, stdout, _ := runCLI(t, "", "-version")
	testutil.AssertEqual(t, code, exitOK)
	testutil.AssertEqual(t, stdout, "pgn-delta version 0.1.0\n")
}

func TestApplyFlags(t *testing.T) {
	opts, err := parseArgs([]string{"-nofen", "-nobare", "-notags", "-warnings", "-workers", "3", "game.pgn"}, &bytes.Buffer{})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, opts.inputs, []string{"game.pgn"})

	cfg := config.NewConfig()
	applyFlags(cfg, opts)

	testutil.AssertFalse(t, cfg.IncludeFEN)
	testutil.AssertFalse(t, cfg.BareVariations)
	testutil.AssertFalse(t, cfg.Output.IncludeTags)
	testutil.AssertTrue(t, cfg.Output.IncludeWarnings)
	testutil.AssertTrue(t, cfg.UseFENTag, "unset flags keep config values")
	testutil.AssertEqual(t, cfg.Workers, 3)
}

func TestNewLogger(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		logger, err := newLogger(level)
		testutil.AssertNoError(t, err, level)
		testutil.AssertNotNil(t, logger)
	}

	_, err := newLogger("loud")
	testutil.AssertError(t, err)
}
