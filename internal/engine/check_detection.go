package engine

import "github.com/lgbarn/pgn-delta/internal/chess"

// IsInCheck returns true if the given colour's king is in check. A side
// without a king is never in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	king, ok := findKing(board, colour)
	if !ok {
		return false
	}
	return IsSquareAttacked(board, king, colour.Opposite())
}

// findKing finds the king of the given colour on the board.
func findKing(board *chess.Board, colour chess.Colour) (chess.Square, bool) {
	kings := board.FindPieces(chess.MakeColouredPiece(colour, chess.King))
	if len(kings) == 0 {
		return chess.Square{}, false
	}
	return kings[0], true
}

// IsSquareAttacked returns true if the square is attacked by the given colour.
func IsSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	// Pawns attack from one rank behind, relative to their direction.
	pawn := chess.MakeColouredPiece(byColour, chess.Pawn)
	back := -chess.ColourOffset(byColour)
	if board.At(sq.Offset(-1, back)) == pawn || board.At(sq.Offset(1, back)) == pawn {
		return true
	}

	knight := chess.MakeColouredPiece(byColour, chess.Knight)
	for _, d := range knightOffsets {
		if board.At(sq.Offset(d[0], d[1])) == knight {
			return true
		}
	}

	king := chess.MakeColouredPiece(byColour, chess.King)
	for _, d := range kingOffsets {
		if board.At(sq.Offset(d[0], d[1])) == king {
			return true
		}
	}

	queen := chess.MakeColouredPiece(byColour, chess.Queen)
	bishop := chess.MakeColouredPiece(byColour, chess.Bishop)
	for _, d := range diagonalDirs {
		if p := firstPieceOnRay(board, sq, d); p == bishop || p == queen {
			return true
		}
	}

	rook := chess.MakeColouredPiece(byColour, chess.Rook)
	for _, d := range straightDirs {
		if p := firstPieceOnRay(board, sq, d); p == rook || p == queen {
			return true
		}
	}

	return false
}

// firstPieceOnRay returns the first piece met walking from sq in direction
// d, or Empty if the ray leaves the board.
func firstPieceOnRay(board *chess.Board, sq chess.Square, d [2]int) chess.Piece {
	for next := sq.Offset(d[0], d[1]); next.OnBoard(); next = next.Offset(d[0], d[1]) {
		if p := board.At(next); p != chess.Empty {
			return p
		}
	}
	return chess.Empty
}
