package engine

import "github.com/lgbarn/pgn-delta/internal/chess"

// pawnDestinations generates pawn advances, the double step from the
// starting rank, diagonal captures and the en passant capture.
func pawnDestinations(board *chess.Board, from chess.Square, colour chess.Colour) []chess.Square {
	var dests []chess.Square
	dir := chess.ColourOffset(colour)

	one := from.Offset(0, dir)
	if one.OnBoard() && board.At(one) == chess.Empty {
		dests = append(dests, one)
		two := one.Offset(0, dir)
		if from.Rank() == pawnStartRank(colour) && board.At(two) == chess.Empty {
			dests = append(dests, two)
		}
	}

	for _, dc := range []int{-1, 1} {
		to := from.Offset(dc, dir)
		if !to.OnBoard() {
			continue
		}
		target := board.At(to)
		switch {
		case target != chess.Empty && chess.ExtractColour(target) != colour:
			dests = append(dests, to)
		case target == chess.Empty && isEnPassantTarget(board, to):
			dests = append(dests, to)
		}
	}
	return dests
}

// pawnStartRank returns the rank from which pawns of colour may double step.
func pawnStartRank(colour chess.Colour) chess.Rank {
	if colour == chess.White {
		return '2'
	}
	return '7'
}

// promotionRank returns the rank on which pawns of colour promote.
func promotionRank(colour chess.Colour) chess.Rank {
	if colour == chess.White {
		return chess.LastRank
	}
	return chess.FirstRank
}

// isEnPassantTarget reports whether sq is the current en passant square.
func isEnPassantTarget(board *chess.Board, sq chess.Square) bool {
	return board.EnPassant && board.EPSquare == sq
}

// enPassantVictim returns the square of the pawn taken by an en passant
// capture landing on to: one rank behind the destination.
func enPassantVictim(to chess.Square, colour chess.Colour) chess.Square {
	return to.Offset(0, -chess.ColourOffset(colour))
}
