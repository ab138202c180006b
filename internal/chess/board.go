package chess

import "fmt"

// Square is a grid coordinate in renderer orientation: Row 0 is the far
// back rank (rank 8) and Col 0 is the a-file.
type Square struct {
	Row int
	Col int
}

// SquareOf converts algebraic coordinates to a Square.
func SquareOf(col Col, rank Rank) Square {
	return Square{Row: int(LastRank) - int(rank), Col: int(col) - int(ColBase)}
}

// ParseSquare parses a two-character algebraic square such as "e4".
func ParseSquare(s string) (Square, bool) {
	if len(s) != 2 || !IsCol(s[0]) || !IsRank(s[1]) {
		return Square{}, false
	}
	return SquareOf(Col(s[0]), Rank(s[1])), true
}

// OnBoard returns true if the square lies within the 8x8 grid.
func (s Square) OnBoard() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// File returns the algebraic file of the square.
func (s Square) File() Col {
	return Col(int(ColBase) + s.Col)
}

// Rank returns the algebraic rank of the square.
func (s Square) Rank() Rank {
	return Rank(int(LastRank) - s.Row)
}

// Offset returns the square shifted by the given file and rank deltas.
// A positive rank delta moves towards rank 8.
func (s Square) Offset(dCol, dRank int) Square {
	return Square{Row: s.Row - dRank, Col: s.Col + dCol}
}

// String returns the algebraic name of the square.
func (s Square) String() string {
	if !s.OnBoard() {
		return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
	}
	return string([]byte{byte(s.File()), byte(s.Rank())})
}

// Grid is the piece placement of a board indexed [row][col].
type Grid [BoardSize][BoardSize]Piece

// Board represents a chess board with all state needed to resolve moves.
// A Board is a plain value: copying it copies the whole position.
type Board struct {
	Squares Grid

	// Who has the next move.
	ToMove Colour

	// The current move number.
	MoveNumber uint

	// Remaining castling rights.
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool

	// Is EnPassant capture possible? If so then EPSquare is the square on
	// which the capturing pawn lands.
	EnPassant bool
	EPSquare  Square

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint
}

// NewBoard creates a new empty board with White to move.
func NewBoard() *Board {
	return &Board{
		ToMove:     White,
		MoveNumber: 1,
	}
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Squares = Grid{}

	backRank := []Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		b.Squares[0][col] = B(backRank[col])
		b.Squares[1][col] = B(Pawn)
		b.Squares[6][col] = W(Pawn)
		b.Squares[7][col] = W(backRank[col])
	}

	b.WhiteKingside = true
	b.WhiteQueenside = true
	b.BlackKingside = true
	b.BlackQueenside = true

	b.ToMove = White
	b.MoveNumber = 1
	b.EnPassant = false
	b.EPSquare = Square{}
	b.HalfmoveClock = 0
}

// Get returns the piece at the given coordinates (using char coords 'a'-'h', '1'-'8').
func (b *Board) Get(col Col, rank Rank) Piece {
	if !IsCol(byte(col)) || !IsRank(byte(rank)) {
		return Empty
	}
	return b.At(SquareOf(col, rank))
}

// Set places a piece at the given coordinates.
func (b *Board) Set(col Col, rank Rank, piece Piece) {
	if IsCol(byte(col)) && IsRank(byte(rank)) {
		b.Put(SquareOf(col, rank), piece)
	}
}

// At returns the piece on a square, or Empty when the square is off the board.
func (b *Board) At(sq Square) Piece {
	if !sq.OnBoard() {
		return Empty
	}
	return b.Squares[sq.Row][sq.Col]
}

// Put places a piece on a square. Off-board squares are ignored.
func (b *Board) Put(sq Square, piece Piece) {
	if sq.OnBoard() {
		b.Squares[sq.Row][sq.Col] = piece
	}
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// CanCastle reports whether the given side still holds the castling right.
func (b *Board) CanCastle(colour Colour, kingside bool) bool {
	switch {
	case colour == White && kingside:
		return b.WhiteKingside
	case colour == White:
		return b.WhiteQueenside
	case kingside:
		return b.BlackKingside
	default:
		return b.BlackQueenside
	}
}

// ClearCastling removes castling rights for one side.
func (b *Board) ClearCastling(colour Colour) {
	if colour == White {
		b.WhiteKingside = false
		b.WhiteQueenside = false
	} else {
		b.BlackKingside = false
		b.BlackQueenside = false
	}
}

// FindPieces returns the squares holding the given coloured piece, in
// row-major order.
func (b *Board) FindPieces(colouredPiece Piece) []Square {
	var squares []Square
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.Squares[row][col] == colouredPiece {
				squares = append(squares, Square{Row: row, Col: col})
			}
		}
	}
	return squares
}
