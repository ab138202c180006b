// Package output renders assembled games as the renderer's JSON document
// or as a plain-text walkthrough.
package output

import (
	"io"

	"github.com/lgbarn/pgn-delta/internal/chess"
	"github.com/lgbarn/pgn-delta/internal/config"
)

// GameWriter is the interface for writing games to output.
type GameWriter interface {
	// WriteGame writes a single game with its recovered warnings.
	WriteGame(game *chess.Game, warnings []error) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// JSONWriter writes games in JSON format.
// It buffers games and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w      io.Writer
	cfg    *config.Config
	games  []*JSONGame
	single bool // If true, write each game immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches games and writes them as an array on Close().
func NewJSONWriter(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:   w,
		cfg: cfg,
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each game immediately.
func NewJSONWriterSingle(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:      w,
		cfg:    cfg,
		single: true,
	}
}

// WriteGame buffers a game for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteGame(game *chess.Game, warnings []error) error {
	jsonGame := GameToJSON(game, warnings, jw.cfg)
	if jw.single {
		return WriteJSON(jw.w, jsonGame, jw.indent())
	}

	jw.games = append(jw.games, jsonGame)
	return nil
}

// Flush writes all buffered games as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.games) == 0 {
		return nil
	}

	err := WriteJSON(jw.w, &JSONOutput{Games: jw.games}, jw.indent())

	// Clear buffer after writing
	jw.games = nil

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

func (jw *JSONWriter) indent() bool {
	return jw.cfg == nil || jw.cfg.Output.Indent
}

// TextWriter writes games as a readable move-by-move walkthrough.
type TextWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{
		w:   w,
		cfg: cfg,
	}
}

// WriteGame writes a game as text.
func (tw *TextWriter) WriteGame(game *chess.Game, warnings []error) error {
	includeWarnings := tw.cfg != nil && tw.cfg.Output.IncludeWarnings
	return WriteText(tw.w, game, warnings, includeWarnings)
}

// Flush flushes the text writer (no-op as it writes immediately).
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}
