package engine

import "github.com/lgbarn/pgn-delta/internal/chess"

// Movement offsets as {file delta, rank delta}.
var (
	knightOffsets = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs  = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs  = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// Destinations returns the squares the piece on from can move to, by the
// per-piece movement rules. Squares held by the mover's own pieces are
// excluded; whether the move leaves the mover's king attacked is not
// considered, and castling is handled separately.
func Destinations(board *chess.Board, from chess.Square) []chess.Square {
	piece := board.At(from)
	if piece == chess.Empty {
		return nil
	}
	colour := chess.ExtractColour(piece)

	switch chess.ExtractPiece(piece) {
	case chess.Pawn:
		return pawnDestinations(board, from, colour)
	case chess.Knight:
		return stepDestinations(board, from, colour, knightOffsets)
	case chess.King:
		return stepDestinations(board, from, colour, kingOffsets)
	case chess.Bishop:
		return slideDestinations(board, from, colour, diagonalDirs)
	case chess.Rook:
		return slideDestinations(board, from, colour, straightDirs)
	case chess.Queen:
		dests := slideDestinations(board, from, colour, diagonalDirs)
		return append(dests, slideDestinations(board, from, colour, straightDirs)...)
	}
	return nil
}

// canReach reports whether to is among the destinations of the piece on from.
func canReach(board *chess.Board, from, to chess.Square) bool {
	for _, sq := range Destinations(board, from) {
		if sq == to {
			return true
		}
	}
	return false
}

// stepDestinations handles fixed-offset pieces (knight, king).
func stepDestinations(board *chess.Board, from chess.Square, colour chess.Colour, offsets [][2]int) []chess.Square {
	var dests []chess.Square
	for _, d := range offsets {
		to := from.Offset(d[0], d[1])
		if !to.OnBoard() {
			continue
		}
		if target := board.At(to); target == chess.Empty || chess.ExtractColour(target) != colour {
			dests = append(dests, to)
		}
	}
	return dests
}

// slideDestinations casts rays until the board edge or the first occupied
// square, which is included only when it holds an enemy piece.
func slideDestinations(board *chess.Board, from chess.Square, colour chess.Colour, dirs [][2]int) []chess.Square {
	var dests []chess.Square
	for _, d := range dirs {
		for to := from.Offset(d[0], d[1]); to.OnBoard(); to = to.Offset(d[0], d[1]) {
			target := board.At(to)
			if target != chess.Empty {
				if chess.ExtractColour(target) != colour {
					dests = append(dests, to)
				}
				break // Blocked
			}
			dests = append(dests, to)
		}
	}
	return dests
}
