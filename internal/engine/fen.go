// Package engine resolves notation against a board position and applies
// the resulting moves. Piece movement is generated here directly.
package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/pgn-delta/internal/chess"
	"github.com/lgbarn/pgn-delta/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ConvertFENCharToPiece converts a FEN character to a piece type.
func ConvertFENCharToPiece(c byte) chess.Piece {
	return chess.PieceFromLetter(byte(unicode.ToUpper(rune(c))))
}

// ColouredPieceToSANLetter returns the FEN letter for a coloured piece.
func ColouredPieceToSANLetter(colouredPiece chess.Piece) byte {
	letter := chess.ExtractPiece(colouredPiece).Letter()
	if chess.ExtractColour(colouredPiece) == chess.Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// NewBoardFromFEN creates a board from a FEN string. Only the placement
// field is required; missing trailing fields take their usual defaults.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(board, parts); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(board, parts); err != nil {
		return nil, err
	}
	if err := parseEnPassant(board, parts); err != nil {
		return nil, err
	}
	if err := parseClocks(board, parts); err != nil {
		return nil, err
	}

	return board, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fmt.Errorf("expected %d ranks, got %d: %w", chess.BoardSize, len(ranks), errors.ErrInvalidFEN)
	}

	kings := map[chess.Colour]int{}
	for row, rankText := range ranks {
		col := 0
		for _, c := range rankText {
			switch {
			case c >= '1' && c <= '8':
				col += int(c - '0')
			default:
				piece := ConvertFENCharToPiece(byte(c))
				if piece == chess.Empty {
					return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
				}
				if col >= chess.BoardSize {
					return fmt.Errorf("rank %d overflows: %w", chess.BoardSize-row, errors.ErrInvalidFEN)
				}

				colour := chess.White
				if unicode.IsLower(c) {
					colour = chess.Black
				}
				if piece == chess.King {
					kings[colour]++
				}
				board.Set(fenCol(col), fenRank(row), chess.MakeColouredPiece(colour, piece))
				col++
			}
		}
		if col != chess.BoardSize {
			return fmt.Errorf("rank %d has %d files: %w", chess.BoardSize-row, col, errors.ErrInvalidFEN)
		}
	}

	if kings[chess.White] != 1 || kings[chess.Black] != 1 {
		return fmt.Errorf("each side needs exactly one king: %w", errors.ErrInvalidFEN)
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *chess.Board, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		board.ToMove = chess.White
	case "b":
		board.ToMove = chess.Black
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(board *chess.Board, parts []string) error {
	if len(parts) < 3 || parts[2] == "-" {
		return nil
	}

	for _, c := range parts[2] {
		switch c {
		case 'K':
			board.WhiteKingside = true
		case 'Q':
			board.WhiteQueenside = true
		case 'k':
			board.BlackKingside = true
		case 'q':
			board.BlackQueenside = true
		default:
			return fmt.Errorf("invalid castling right: %c: %w", c, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(board *chess.Board, parts []string) error {
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	sq, ok := chess.ParseSquare(parts[3])
	if !ok {
		return fmt.Errorf("invalid en passant square: %s: %w", parts[3], errors.ErrInvalidFEN)
	}
	board.EnPassant = true
	board.EPSquare = sq
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(board *chess.Board, parts []string) error {
	if len(parts) >= 5 {
		n, err := strconv.ParseUint(parts[4], 10, 32)
		if err != nil {
			return fmt.Errorf("invalid halfmove clock: %s: %w", parts[4], errors.ErrInvalidFEN)
		}
		board.HalfmoveClock = uint(n)
	}
	if len(parts) >= 6 {
		n, err := strconv.ParseUint(parts[5], 10, 32)
		if err != nil || n == 0 {
			return fmt.Errorf("invalid move number: %s: %w", parts[5], errors.ErrInvalidFEN)
		}
		board.MoveNumber = uint(n)
	}
	return nil
}

// BoardToFEN converts a board to a FEN string.
func BoardToFEN(board *chess.Board) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, board)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, board)
	sb.WriteByte(' ')
	writeEnPassant(&sb, board)
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", board.HalfmoveClock, board.MoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Get(fenCol(col), fenRank(row))
			if piece == chess.Empty {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(ColouredPieceToSANLetter(piece))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, board *chess.Board) {
	if board.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	hasCastling := false
	for _, right := range []struct {
		held   bool
		letter byte
	}{
		{board.WhiteKingside, 'K'},
		{board.WhiteQueenside, 'Q'},
		{board.BlackKingside, 'k'},
		{board.BlackQueenside, 'q'},
	} {
		if right.held {
			sb.WriteByte(right.letter)
			hasCastling = true
		}
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, board *chess.Board) {
	if board.EnPassant {
		sb.WriteString(board.EPSquare.String())
	} else {
		sb.WriteByte('-')
	}
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	board := chess.NewBoard()
	board.SetupInitialPosition()
	return board
}

// NewBoardForTags creates the starting board for a game. A FEN tag is used
// when present; an invalid one is reported and the standard position used.
func NewBoardForTags(tags map[string]string) (*chess.Board, error) {
	fen, ok := tags[chess.FENTag]
	if !ok || strings.TrimSpace(fen) == "" {
		return NewInitialBoard(), nil
	}
	board, err := NewBoardFromFEN(fen)
	if err != nil {
		return NewInitialBoard(), err
	}
	return board, nil
}

// fenCol and fenRank map placement-field indexes to algebraic coordinates.
// Ranks are listed from the eighth down.
func fenCol(col int) chess.Col { return chess.Col(int(chess.ColBase) + col) }
func fenRank(row int) chess.Rank { return chess.Rank(int(chess.LastRank) - row) }
