package chess

// Move is a decoded notation token: what the text says, before it has been
// resolved against a board. Zero FromCol/FromRank mean "no hint".
type Move struct {
	// The move text as written (e.g., "Nf3", "exd5", "O-O").
	Text string

	// The piece type named by the token (Pawn when no letter is given).
	Piece Piece

	// Origin disambiguation hints.
	FromCol  Col
	FromRank Rank

	// Destination square.
	ToCol  Col
	ToRank Rank

	// Whether the token carries a capture marker.
	Capture bool

	// The piece promoted to (Empty if no promotion suffix).
	PromotedPiece Piece

	// KingsideCastle or QueensideCastle for castling tokens, NormalMove otherwise.
	Castle SpecialKind

	// Check or mate suffix.
	CheckStatus CheckStatus
}

// NewMove creates a new empty move.
func NewMove() *Move {
	return &Move{
		Piece:         Empty,
		PromotedPiece: Empty,
		CheckStatus:   NoCheck,
	}
}

// IsCastle returns true if this move is a castling move.
func (m *Move) IsCastle() bool {
	return m.Castle.IsCastle()
}

// Destination returns the destination square named by the token.
func (m *Move) Destination() Square {
	return SquareOf(m.ToCol, m.ToRank)
}

// ResolvedMove is a move fully specified against a board position.
type ResolvedMove struct {
	// The notation text the move was resolved from.
	Text string

	// The side making the move.
	Colour Colour

	From Square
	To   Square

	// The coloured piece that moves, and the coloured piece standing on To
	// afterwards (differs only for promotions).
	Piece       Piece
	ResultPiece Piece

	Capture CaptureKind

	// The coloured piece removed, and the square it was removed from.
	// CapturedAt differs from To only for en passant.
	CapturedPiece Piece
	CapturedAt    Square

	Special SpecialKind

	// Rook squares for castling moves.
	RookFrom Square
	RookTo   Square

	CheckStatus CheckStatus
}

// IsCapture returns true if this move removes an enemy piece.
func (m *ResolvedMove) IsCapture() bool {
	return m.Capture != NoCapture
}

// IsPromotion returns true if this move is a pawn promotion.
func (m *ResolvedMove) IsPromotion() bool {
	return m.Special == Promotion
}

// IsCastle returns true if this move is a castling move.
func (m *ResolvedMove) IsCastle() bool {
	return m.Special.IsCastle()
}
