// Package line plays a sequence of move tokens on a board and builds the
// animation records for them. The main line and every variation use it.
package line

import (
	"github.com/lgbarn/pgn-delta/internal/chess"
	"github.com/lgbarn/pgn-delta/internal/delta"
	"github.com/lgbarn/pgn-delta/internal/engine"
	"github.com/lgbarn/pgn-delta/internal/errors"
	"github.com/lgbarn/pgn-delta/internal/parser"
)

// Mode selects what happens when a token fails to resolve.
type Mode int

const (
	// Lenient skips the token, records a warning and carries on against
	// the unchanged board.
	Lenient Mode = iota
	// Strict stops at the first failing token and returns its error.
	Strict
)

// Player turns move tokens into records.
type Player struct {
	Mode Mode

	// IncludeFEN records the position after each move.
	IncludeFEN bool

	// Variation names the line in errors; empty for the main line.
	Variation string
}

// Result is the outcome of playing a line.
type Result struct {
	Records []chess.MoveRecord

	// Accepted holds, for each record, the index of its token in the
	// played items.
	Accepted []int

	// Warnings are the failures skipped in Lenient mode.
	Warnings []error
}

// Notations returns the notation text of each record.
func (r *Result) Notations() []string {
	texts := make([]string, len(r.Records))
	for i, record := range r.Records {
		texts[i] = record.Notation
	}
	return texts
}

// Play plays items on board in order. Accepted moves get consecutive ply
// indexes starting at firstPly. In Lenient mode failures become warnings;
// in Strict mode the first failure is returned as the error.
func (p *Player) Play(board *chess.Board, items []parser.MoveItem, firstPly int) (*Result, error) {
	result := &Result{Records: make([]chess.MoveRecord, 0, len(items))}

	for i, item := range items {
		record, err := p.playItem(board, item, firstPly+len(result.Records))
		if err != nil {
			if p.Mode == Strict {
				return nil, err
			}
			result.Warnings = append(result.Warnings, err)
			continue
		}
		result.Records = append(result.Records, record)
		result.Accepted = append(result.Accepted, i)
	}
	return result, nil
}

// playItem plays one token. On error the board is unchanged.
func (p *Player) playItem(board *chess.Board, item parser.MoveItem, ply int) (chess.MoveRecord, error) {
	moveNumber, side := board.MoveNumber, board.ToMove

	fail := func(err error) (chess.MoveRecord, error) {
		return chess.MoveRecord{}, &errors.MoveError{
			Err:        err,
			Ply:        ply,
			MoveNumber: moveNumber,
			Side:       side.String(),
			MoveText:   item.Text,
			Variation:  p.Variation,
		}
	}

	move, err := parser.DecodeMove(item.Text)
	if err != nil {
		return fail(err)
	}
	resolved, err := engine.PlayMove(board, move)
	if err != nil {
		return fail(err)
	}

	record := chess.MoveRecord{
		PlyIndex:    ply,
		MoveNumber:  moveNumber,
		Side:        side,
		Notation:    item.Text,
		Explanation: Explain(resolved, moveNumber),
		Comment:     item.Comment,
		Deltas:      delta.Convert(resolved),
	}
	if p.IncludeFEN {
		record.FEN = engine.BoardToFEN(board)
	}
	return record, nil
}

// StartRecord returns the synthetic record for the position before any move.
func StartRecord(board *chess.Board, includeFEN bool) chess.MoveRecord {
	record := chess.MoveRecord{
		PlyIndex:    0,
		MoveNumber:  board.MoveNumber,
		Side:        board.ToMove,
		Explanation: "Starting position.",
	}
	if includeFEN {
		record.FEN = engine.BoardToFEN(board)
	}
	return record
}

// Replay plays notation texts on board, stopping at the first failure. It
// reconstructs a position from moves that were already accepted once.
func Replay(board *chess.Board, texts []string) error {
	for _, text := range texts {
		move, err := parser.DecodeMove(text)
		if err != nil {
			return err
		}
		if _, err := engine.PlayMove(board, move); err != nil {
			return err
		}
	}
	return nil
}
