package chess

// DeltaKind distinguishes square operations sent to the renderer.
type DeltaKind int

const (
	// DeltaMove moves a piece from one square to another; Piece is what
	// stands on To afterwards.
	DeltaMove DeltaKind = iota
	// DeltaRemove clears a square that is not the destination of any move.
	DeltaRemove
)

// String returns the wire name of the delta kind.
func (k DeltaKind) String() string {
	if k == DeltaRemove {
		return "remove"
	}
	return "move"
}

// DeltaOp is one square-level board mutation for the renderer.
type DeltaOp struct {
	Kind  DeltaKind
	From  Square
	To    Square
	Piece Piece
}

// MoveRecord is one step of the animation. Records are immutable once
// their variations are attached.
type MoveRecord struct {
	PlyIndex    int
	MoveNumber  uint
	Side        Colour
	Notation    string
	Explanation string
	Comment     string
	Deltas      []DeltaOp
	FEN         string
	Variations  []*VariationBranch
}

// HasVariations returns true if this record anchors any variations.
func (r *MoveRecord) HasVariations() bool {
	return len(r.Variations) > 0
}

// VariationBranch is an annotated side-line anchored to a main-line record.
// Its records replace the anchor move and continue its numbering.
type VariationBranch struct {
	ID        string
	Name      string
	AnchorPly int
	Moves     []MoveRecord
}

// Game is the assembled output: a start record followed by one record per
// accepted main-line move.
type Game struct {
	Title       string
	Description string

	// Tags from the header section (e.g., Event, Site, Date, White, Black, Result).
	Tags map[string]string

	// Terminating result marker found in the movetext, if any.
	Result string

	Moves []MoveRecord
}

// NewGame creates a new empty game.
func NewGame() *Game {
	return &Game{
		Tags: make(map[string]string),
	}
}

// GetTag returns a tag value, or empty string if not present.
func (g *Game) GetTag(name string) string {
	return g.Tags[name]
}

// SetTag sets a tag value.
func (g *Game) SetTag(name, value string) {
	if g.Tags == nil {
		g.Tags = make(map[string]string)
	}
	g.Tags[name] = value
}

// White returns the White player name.
func (g *Game) White() string {
	return g.GetTag(WhiteTag)
}

// Black returns the Black player name.
func (g *Game) Black() string {
	return g.GetTag(BlackTag)
}

// Event returns the event name.
func (g *Game) Event() string {
	return g.GetTag(EventTag)
}

// PlyCount returns the number of half-moves in the main line.
func (g *Game) PlyCount() int {
	if len(g.Moves) == 0 {
		return 0
	}
	return len(g.Moves) - 1
}

// LastMove returns the last record, or nil if the game has none.
func (g *Game) LastMove() *MoveRecord {
	if len(g.Moves) == 0 {
		return nil
	}
	return &g.Moves[len(g.Moves)-1]
}

// Variations returns every variation branch in main-line order.
func (g *Game) Variations() []*VariationBranch {
	var branches []*VariationBranch
	for i := range g.Moves {
		branches = append(branches, g.Moves[i].Variations...)
	}
	return branches
}
