// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Piece represents a chess piece type, or a coloured piece when built
// with MakeColouredPiece.
type Piece int

const (
	Empty Piece = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceValues
)

// String returns the string representation of a piece.
func (p Piece) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece (uppercase).
func (p Piece) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// PieceFromLetter returns the piece type for an uppercase SAN letter,
// or Empty if the letter names no piece.
func PieceFromLetter(c byte) Piece {
	switch c {
	case 'K':
		return King
	case 'Q':
		return Queen
	case 'R':
		return Rook
	case 'B':
		return Bishop
	case 'N':
		return Knight
	case 'P':
		return Pawn
	}
	return Empty
}

// CaptureKind says whether and how a move captures.
type CaptureKind int

const (
	NoCapture CaptureKind = iota
	NormalCapture
	EnPassantCapture
)

// String returns the string representation of a capture kind.
func (k CaptureKind) String() string {
	switch k {
	case NormalCapture:
		return "normal"
	case EnPassantCapture:
		return "en-passant"
	default:
		return "none"
	}
}

// SpecialKind categorizes moves that need more than a single from/to update.
type SpecialKind int

const (
	NormalMove SpecialKind = iota
	KingsideCastle
	QueensideCastle
	Promotion
)

// String returns the string representation of a special-move kind.
func (k SpecialKind) String() string {
	switch k {
	case KingsideCastle:
		return "castle-kingside"
	case QueensideCastle:
		return "castle-queenside"
	case Promotion:
		return "promotion"
	default:
		return "normal"
	}
}

// IsCastle returns true for either castling kind.
func (k SpecialKind) IsCastle() bool {
	return k == KingsideCastle || k == QueensideCastle
}

// Rank represents a chess rank (row) - '1' to '8'.
type Rank byte

// Col represents a chess file (column) - 'a' to 'h'.
type Col byte

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	RankBase  = '1'
	ColBase   = 'a'
	FirstRank = RankBase
	LastRank  = RankBase + BoardSize - 1
	FirstCol  = ColBase
	LastCol   = ColBase + BoardSize - 1
)

// IsCol returns true if c is a valid column (file) character.
func IsCol(c byte) bool {
	return c >= FirstCol && c <= LastCol
}

// IsRank returns true if c is a valid rank character.
func IsRank(c byte) bool {
	return c >= FirstRank && c <= LastRank
}

// ColourOffset returns +1 for White, -1 for Black (for pawn direction in ranks).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// HomeRank returns the back rank of the given colour.
func HomeRank(colour Colour) Rank {
	if colour == White {
		return FirstRank
	}
	return LastRank
}

// PieceShift is used for encoding coloured pieces.
const PieceShift = 3

// MakeColouredPiece creates a coloured piece value.
func MakeColouredPiece(colour Colour, piece Piece) Piece {
	return Piece((int(piece) << PieceShift) | int(colour))
}

// W creates a white piece.
func W(piece Piece) Piece {
	return MakeColouredPiece(White, piece)
}

// B creates a black piece.
func B(piece Piece) Piece {
	return MakeColouredPiece(Black, piece)
}

// ExtractColour extracts the colour from a coloured piece.
func ExtractColour(colouredPiece Piece) Colour {
	return Colour(colouredPiece & 0x01)
}

// ExtractPiece extracts the piece type from a coloured piece.
func ExtractPiece(colouredPiece Piece) Piece {
	return Piece(colouredPiece >> PieceShift)
}

// PieceCode returns the two-letter renderer code for a coloured piece,
// e.g. "wN" or "bP". Empty squares yield "".
func PieceCode(colouredPiece Piece) string {
	if colouredPiece == Empty {
		return ""
	}
	prefix := byte('b')
	if ExtractColour(colouredPiece) == White {
		prefix = 'w'
	}
	return string([]byte{prefix, ExtractPiece(colouredPiece).Letter()})
}

// CheckStatus indicates whether a move gives check or checkmate.
type CheckStatus int

const (
	NoCheck CheckStatus = iota
	Check
	Checkmate
)
