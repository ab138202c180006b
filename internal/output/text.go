package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/pgn-delta/internal/chess"
)

// DefaultLineLength is the wrap width of text output.
const DefaultLineLength = 80

// OutputWriter handles formatted output with line length control.
// The first write error is kept and later writes are skipped.
type OutputWriter struct {
	w             io.Writer
	indent        string
	lineLength    int
	maxLineLength int
	needsSpace    bool
	err           error
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = DefaultLineLength
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Err returns the first write error.
func (o *OutputWriter) Err() error {
	return o.err
}

// SetIndent sets the prefix of every line started after the call.
func (o *OutputWriter) SetIndent(indent string) {
	o.indent = indent
}

func (o *OutputWriter) print(s string) {
	if o.err != nil {
		return
	}
	_, o.err = io.WriteString(o.w, s)
}

// Write writes a word, adding a space separator and wrapping if needed.
func (o *OutputWriter) Write(s string) {
	if o.lineLength == 0 && o.indent != "" && s != "" {
		o.print(o.indent)
		o.lineLength = len(o.indent)
	}
	if o.needsSpace && len(s) > 0 {
		// Check if we need a new line
		if o.lineLength+1+len(s) > o.maxLineLength {
			o.print("\n" + o.indent)
			o.lineLength = len(o.indent)
		} else {
			o.print(" ")
			o.lineLength++
		}
	}

	o.print(s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// WriteWords writes text word by word so long sentences wrap.
func (o *OutputWriter) WriteWords(text string) {
	for _, word := range strings.Fields(text) {
		o.Write(word)
	}
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	o.print("\n")
	o.lineLength = 0
	o.needsSpace = false
}

// WriteText writes a walkthrough of game: a heading, then one paragraph per
// record with its variations indented beneath it.
func WriteText(w io.Writer, game *chess.Game, warnings []error, includeWarnings bool) error {
	ow := NewOutputWriter(w, DefaultLineLength)

	ow.WriteWords(game.Title)
	ow.NewLine()
	if game.Description != "" {
		ow.WriteWords(game.Description)
		ow.NewLine()
	}
	ow.NewLine()

	writeRecords(ow, game.Moves, "")

	if game.Result != "" {
		ow.Write(game.Result)
		ow.NewLine()
	}

	if includeWarnings && len(warnings) > 0 {
		ow.NewLine()
		ow.Write(fmt.Sprintf("Warnings (%d):", len(warnings)))
		ow.NewLine()
		ow.SetIndent("  ")
		for _, warning := range warnings {
			ow.WriteWords("- " + warning.Error())
			ow.NewLine()
		}
		ow.SetIndent("")
	}

	return ow.Err()
}

func writeRecords(ow *OutputWriter, records []chess.MoveRecord, indent string) {
	for i := range records {
		record := &records[i]

		ow.SetIndent(indent)
		ow.WriteWords(record.Explanation)
		if record.Comment != "" {
			ow.WriteWords("{" + record.Comment + "}")
		}
		ow.NewLine()

		if !record.HasVariations() {
			continue
		}
		for _, branch := range record.Variations {
			ow.SetIndent(indent + "  ")
			ow.WriteWords(fmt.Sprintf("Variation %q instead of %s:", branch.Name, record.Notation))
			ow.NewLine()
			writeRecords(ow, branch.Moves, indent+"    ")
		}
	}
	ow.SetIndent(indent)
}
