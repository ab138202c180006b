package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/pgn-delta/internal/chess"
	"github.com/lgbarn/pgn-delta/internal/config"
)

// JSONGame is the document read by the renderer.
type JSONGame struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Tags        map[string]string `json:"tags,omitempty"`
	Result      string            `json:"result,omitempty"`
	Moves       []JSONMove        `json:"moves"`
	Warnings    []string          `json:"warnings,omitempty"`
}

// JSONMove is one animation step.
type JSONMove struct {
	PlyIndex    int             `json:"plyIndex"`
	MoveNumber  uint            `json:"moveNumber"`
	Side        string          `json:"side"` // "white" or "black"
	Notation    string          `json:"notationText"`
	Explanation string          `json:"explanationText"`
	Comment     string          `json:"comment,omitempty"`
	Deltas      []JSONDelta     `json:"deltaOps"`
	FEN         string          `json:"fen,omitempty"`
	Variations  []JSONVariation `json:"variations,omitempty"`
}

// JSONDelta is one square operation. Squares are [row, col] with row 0
// the far back rank and col 0 the a-file.
type JSONDelta struct {
	Op    string `json:"op"` // "move" or "remove"
	From  [2]int `json:"from"`
	To    [2]int `json:"to"`
	Piece string `json:"piece,omitempty"`
}

// JSONVariation is a side-line anchored to a main-line move.
type JSONVariation struct {
	ID        string     `json:"id"`
	Name      string     `json:"displayName"`
	AnchorPly int        `json:"anchorPlyIndex"`
	Moves     []JSONMove `json:"moves"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// GameToJSON converts an assembled game to its JSON document. Warnings are
// included only when cfg.Output.IncludeWarnings is set.
func GameToJSON(game *chess.Game, warnings []error, cfg *config.Config) *JSONGame {
	if cfg == nil {
		cfg = config.NewConfig()
	}

	jg := &JSONGame{
		Title:       game.Title,
		Description: game.Description,
		Result:      game.Result,
		Moves:       convertRecords(game.Moves),
	}
	if cfg.Output.IncludeTags && len(game.Tags) > 0 {
		jg.Tags = copyTags(game.Tags)
	}
	if cfg.Output.IncludeWarnings {
		for _, w := range warnings {
			jg.Warnings = append(jg.Warnings, w.Error())
		}
	}
	return jg
}

// WriteJSON encodes v to w, indented when indent is set.
func WriteJSON(w io.Writer, v interface{}, indent bool) error {
	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

func copyTags(tags map[string]string) map[string]string {
	result := make(map[string]string, len(tags))
	for k, v := range tags {
		result[k] = v
	}
	return result
}

// convertRecords converts records in order, variations included.
func convertRecords(records []chess.MoveRecord) []JSONMove {
	result := make([]JSONMove, 0, len(records))
	for i := range records {
		result = append(result, convertRecord(&records[i]))
	}
	return result
}

func convertRecord(record *chess.MoveRecord) JSONMove {
	jm := JSONMove{
		PlyIndex:    record.PlyIndex,
		MoveNumber:  record.MoveNumber,
		Side:        sideName(record.Side),
		Notation:    record.Notation,
		Explanation: record.Explanation,
		Comment:     record.Comment,
		Deltas:      make([]JSONDelta, 0, len(record.Deltas)),
		FEN:         record.FEN,
	}

	for _, op := range record.Deltas {
		jm.Deltas = append(jm.Deltas, convertDelta(op))
	}

	for _, branch := range record.Variations {
		jm.Variations = append(jm.Variations, JSONVariation{
			ID:        branch.ID,
			Name:      branch.Name,
			AnchorPly: branch.AnchorPly,
			Moves:     convertRecords(branch.Moves),
		})
	}
	return jm
}

func convertDelta(op chess.DeltaOp) JSONDelta {
	jd := JSONDelta{
		Op:   op.Kind.String(),
		From: [2]int{op.From.Row, op.From.Col},
		To:   [2]int{op.To.Row, op.To.Col},
	}
	if op.Kind == chess.DeltaMove {
		jd.Piece = chess.PieceCode(op.Piece)
	}
	return jd
}

// sideName returns "white" or "black".
func sideName(c chess.Colour) string {
	if c == chess.White {
		return "white"
	}
	return "black"
}
