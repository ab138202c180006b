// Package assembler drives a whole transcript through tokenizing, main-line
// replay and variation extraction, and builds the game the renderer reads.
package assembler

import (
	"go.uber.org/zap"

	"github.com/lgbarn/pgn-delta/internal/chess"
	"github.com/lgbarn/pgn-delta/internal/config"
	"github.com/lgbarn/pgn-delta/internal/engine"
	"github.com/lgbarn/pgn-delta/internal/errors"
	"github.com/lgbarn/pgn-delta/internal/line"
	"github.com/lgbarn/pgn-delta/internal/parser"
	"github.com/lgbarn/pgn-delta/internal/variation"
)

// Result is an assembled game together with the problems that were
// recovered while building it.
type Result struct {
	Game *chess.Game

	// Warnings never change the shape of Game; they are for observability.
	Warnings []error
}

// Assembler converts transcripts into games. It holds no per-game state,
// so one Assembler may be used from several goroutines.
type Assembler struct {
	cfg *config.Config
}

// New creates an Assembler. If cfg is nil, a default config is used.
func New(cfg *config.Config) *Assembler {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Assembler{cfg: cfg}
}

// Assemble parses text into a game. The only errors are fatal ones, for
// input that cannot be tokenized at all; they satisfy
// errors.Is(err, errors.ErrParseFailure).
func (a *Assembler) Assemble(text string) (*Result, error) {
	log := a.cfg.Log()

	tokens, err := parser.Tokenize(text, a.cfg)
	if err != nil {
		log.Debug("transcript rejected", zap.Error(err))
		return nil, err
	}

	result := &Result{}
	result.Warnings = append(result.Warnings, tokens.Warnings...)

	start := engine.NewInitialBoard()
	if a.cfg.UseFENTag {
		board, err := engine.NewBoardForTags(tokens.Tags)
		if err != nil {
			result.Warnings = append(result.Warnings, errors.Wrap(err, "FEN tag ignored"))
		}
		start = board
	}

	player := &line.Player{Mode: line.Lenient, IncludeFEN: a.cfg.IncludeFEN}
	played, err := player.Play(start.Copy(), tokens.Moves, 1)
	if err != nil {
		return nil, err
	}
	result.Warnings = append(result.Warnings, played.Warnings...)

	records := make([]chess.MoveRecord, 0, len(played.Records)+1)
	records = append(records, line.StartRecord(start, a.cfg.IncludeFEN))
	records = append(records, played.Records...)

	main := &variation.Mainline{Start: start, Records: records, Accepted: played.Accepted}
	result.Warnings = append(result.Warnings, variation.NewExtractor(a.cfg).ExtractAll(main, tokens.Variations)...)

	game := chess.NewGame()
	for name, value := range tokens.Tags {
		game.SetTag(name, value)
	}
	game.Title = Title(game.Tags)
	game.Description = Description(game.Tags)
	game.Result = tokens.Result
	game.Moves = main.Records
	result.Game = game

	for _, w := range result.Warnings {
		log.Warn("recovered problem", warningFields(w)...)
	}
	log.Debug("game assembled",
		zap.String("title", game.Title),
		zap.Int("plies", game.PlyCount()),
		zap.Int("variations", len(game.Variations())),
		zap.Int("warnings", len(result.Warnings)),
	)

	return result, nil
}

// warningFields extracts the structured context carried by a warning.
func warningFields(err error) []zap.Field {
	fields := []zap.Field{zap.Error(err)}

	var merr *errors.MoveError
	var verr *errors.VariationError
	switch {
	case errors.As(err, &verr):
		fields = append(fields, zap.String("variation", verr.Name), zap.Int("offset", verr.Offset))
		if verr.MoveText != "" {
			fields = append(fields, zap.String("move", verr.MoveText))
		}
	case errors.As(err, &merr):
		fields = append(fields, zap.Int("ply", merr.Ply), zap.String("move", merr.MoveText))
		if merr.Variation != "" {
			fields = append(fields, zap.String("variation", merr.Variation))
		}
	}
	return fields
}
