package testutil

import (
	"testing"

	"github.com/lgbarn/pgn-delta/internal/chess"
	"github.com/lgbarn/pgn-delta/internal/delta"
)

// Shared transcripts used across package tests.
const (
	// ItalianOpening is a short game with tags and a labelled variation
	// anchored at White's third move.
	ItalianOpening = `[Event "Club Night"]
[Site "Leeds"]
[Date "2024.03.01"]
[White "Ada"]
[Black "Brian"]
[Result "*"]

1. e4 e5 2. Nf3 Nc6 3. Bc4 {variation: Spanish} (3. Bb5 a6 4. Ba4) Bc5 *`

	// EnPassantGame ends with White capturing en passant on d6.
	EnPassantGame = "1. e4 Nf6 2. e5 d5 3. exd6"

	// CastlingGame ends with White castling kingside.
	CastlingGame = "1. e4 e5 2. Nf3 Nc6 3. Bc4 Bc5 4. O-O"
)

// Notations returns the notation text of each record.
func Notations(records []chess.MoveRecord) []string {
	texts := make([]string, len(records))
	for i, record := range records {
		texts[i] = record.Notation
	}
	return texts
}

// PlyIndexes returns the ply index of each record.
func PlyIndexes(records []chess.MoveRecord) []int {
	plies := make([]int, len(records))
	for i, record := range records {
		plies[i] = record.PlyIndex
	}
	return plies
}

// ReplayDeltas applies every record's delta ops to a copy of start, the
// way a renderer with no chess knowledge would.
func ReplayDeltas(start chess.Grid, records []chess.MoveRecord) chess.Grid {
	grid := start
	for _, record := range records {
		delta.Apply(&grid, record.Deltas)
	}
	return grid
}

// FindRecord returns the record with the given notation, or fails the test.
func FindRecord(t *testing.T, records []chess.MoveRecord, notation string) chess.MoveRecord {
	t.Helper()
	for _, record := range records {
		if record.Notation == notation {
			return record
		}
	}
	t.Fatalf("no record for %q in %v", notation, Notations(records))
	return chess.MoveRecord{}
}
