// Package variation rebuilds annotated side-lines. Each branch is played
// from its own board, reconstructed by replaying the main line up to the
// move it branches from.
package variation

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lgbarn/pgn-delta/internal/chess"
	"github.com/lgbarn/pgn-delta/internal/config"
	"github.com/lgbarn/pgn-delta/internal/errors"
	"github.com/lgbarn/pgn-delta/internal/line"
	"github.com/lgbarn/pgn-delta/internal/parser"
)

// Mainline is the accepted main line a variation is anchored to.
type Mainline struct {
	// Start is the position before the first move. It is never modified.
	Start *chess.Board

	// Records holds the start record followed by one record per accepted
	// move, so Records[i].PlyIndex == i.
	Records []chess.MoveRecord

	// Accepted holds the main-line token index of Records[i+1].
	Accepted []int
}

// recordsBefore returns how many accepted moves come from tokens before
// the given main-line token index.
func (m *Mainline) recordsBefore(tokenIndex int) int {
	n := 0
	for _, idx := range m.Accepted {
		if idx < tokenIndex {
			n++
		}
	}
	return n
}

// Extractor builds variation branches.
type Extractor struct {
	cfg *config.Config
}

// NewExtractor creates an Extractor. If cfg is nil, a default config is used.
func NewExtractor(cfg *config.Config) *Extractor {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Extractor{cfg: cfg}
}

// Extract builds the branch for one block. index is the block's position
// among all blocks of the game and only feeds the branch ID. Warnings are
// problems inside the block that did not stop it; an error means the branch
// is dropped, and is always a *errors.VariationError.
func (x *Extractor) Extract(main *Mainline, block parser.VariationBlock, index int) (*chess.VariationBranch, []error, error) {
	fail := func(err error, moveText string) (*chess.VariationBranch, []error, error) {
		return nil, nil, &errors.VariationError{
			Err:      err,
			Name:     block.Name,
			Offset:   block.Offset,
			MoveText: moveText,
		}
	}

	items, warnings, err := parser.TokenizeMovetext(block.Text, block.TextOffset)
	if err != nil {
		return fail(err, "")
	}
	if len(items) == 0 {
		return fail(errors.ErrNoMoves, "")
	}

	anchor, err := findAnchor(main, block, items[0])
	if err != nil {
		return fail(err, items[0].Text)
	}

	board := main.Start.Copy()
	var prefix []string
	for _, record := range main.Records[1:anchor] {
		prefix = append(prefix, record.Notation)
	}
	if err := line.Replay(board, prefix); err != nil {
		return fail(errors.Wrap(err, "replaying main line"), "")
	}

	player := &line.Player{
		Mode:       line.Strict,
		IncludeFEN: x.cfg.IncludeFEN,
		Variation:  block.Name,
	}
	result, err := player.Play(board, items, anchor)
	if err != nil {
		return fail(err, moveText(err))
	}

	branch := &chess.VariationBranch{
		ID:        branchID(anchor, block.Name, index),
		Name:      block.Name,
		AnchorPly: anchor,
		Moves:     result.Records,
	}
	return branch, warnings, nil
}

// ExtractAll builds every block's branch and attaches it to its anchor
// record in main.Records. Dropped branches become warnings; they never
// change the main line or other branches.
func (x *Extractor) ExtractAll(main *Mainline, blocks []parser.VariationBlock) []error {
	var warnings []error
	for i, block := range blocks {
		branch, blockWarnings, err := x.Extract(main, block, i)
		warnings = append(warnings, blockWarnings...)
		if err != nil {
			warnings = append(warnings, err)
			continue
		}

		anchor := &main.Records[branch.AnchorPly]
		anchor.Variations = append(anchor.Variations, branch)
		x.cfg.Log().Debug("variation attached",
			zap.String("variation", branch.Name),
			zap.String("id", branch.ID),
			zap.Int("anchor_ply", branch.AnchorPly),
			zap.Int("moves", len(branch.Moves)),
		)
	}
	return warnings
}

// findAnchor returns the index in main.Records of the move the branch
// replaces.
//
// A numbered first move anchors to the accepted record with the same move
// number and side, searched backwards from the block's position and then
// forwards. An unnumbered first move anchors to the last accepted move
// before the block.
func findAnchor(main *Mainline, block parser.VariationBlock, first parser.MoveItem) (int, error) {
	before := main.recordsBefore(block.Preceding)

	if !first.Numbered {
		if before == 0 {
			return 0, errors.Wrap(errors.ErrAnchorNotFound, "no move precedes the block")
		}
		return before, nil
	}

	side := chess.White
	if first.Black {
		side = chess.Black
	}
	matches := func(i int) bool {
		r := main.Records[i]
		return r.MoveNumber == first.MoveNumber && r.Side == side
	}

	for i := before; i >= 1; i-- {
		if matches(i) {
			return i, nil
		}
	}
	for i := before + 1; i < len(main.Records); i++ {
		if matches(i) {
			return i, nil
		}
	}
	return 0, errors.Wrapf(errors.ErrAnchorNotFound, "no main-line move %d for %s", first.MoveNumber, side)
}

// branchID derives a stable ID, so parsing the same text twice gives the
// same IDs.
func branchID(anchorPly int, name string, index int) string {
	key := fmt.Sprintf("pgn-delta/variation/%d/%d/%s", index, anchorPly, name)
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(key)).String()
}

// moveText extracts the failing move from a line error.
func moveText(err error) string {
	var merr *errors.MoveError
	if errors.As(err, &merr) {
		return merr.MoveText
	}
	return ""
}
