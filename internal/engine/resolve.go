package engine

import (
	"strings"

	"github.com/lgbarn/pgn-delta/internal/chess"
	"github.com/lgbarn/pgn-delta/internal/errors"
)

// ResolveMove resolves a decoded notation token against the board into a
// fully specified move for the side to move. The board is not modified.
//
// Every piece of the named type is a candidate; candidates are kept when
// their origin matches the token's hints, the destination is among their
// Destinations, and the move would not leave their own king attacked.
// Exactly one must remain.
func ResolveMove(board *chess.Board, move *chess.Move) (*chess.ResolvedMove, error) {
	if move == nil {
		return nil, errors.Wrap(errors.ErrBadNotation, "nil move")
	}
	if move.IsCastle() {
		return resolveCastle(board, move)
	}

	colour := board.ToMove
	piece := chess.MakeColouredPiece(colour, move.Piece)
	to := move.Destination()

	candidates := findCandidates(board, move, piece, to)
	switch len(candidates) {
	case 0:
		return nil, errors.Wrapf(errors.ErrNoCandidate, "%s: no %s %s can reach %s", move.Text, colour, move.Piece, to)
	case 1:
	default:
		names := make([]string, len(candidates))
		for i, sq := range candidates {
			names[i] = sq.String()
		}
		return nil, errors.Wrapf(errors.ErrAmbiguousMove, "%s: %s %s on %s can all reach %s",
			move.Text, colour, move.Piece, strings.Join(names, ", "), to)
	}

	from := candidates[0]
	resolved := &chess.ResolvedMove{
		Text:        move.Text,
		Colour:      colour,
		From:        from,
		To:          to,
		Piece:       piece,
		ResultPiece: piece,
		CheckStatus: move.CheckStatus,
	}

	if target := board.At(to); target != chess.Empty {
		resolved.Capture = chess.NormalCapture
		resolved.CapturedPiece = target
		resolved.CapturedAt = to
	} else if move.Piece == chess.Pawn && from.Col != to.Col {
		resolved.Capture = chess.EnPassantCapture
		resolved.CapturedAt = enPassantVictim(to, colour)
		resolved.CapturedPiece = board.At(resolved.CapturedAt)
	}

	if err := resolvePromotion(move, resolved); err != nil {
		return nil, err
	}
	return resolved, nil
}

// resolvePromotion checks the promotion suffix against the destination.
func resolvePromotion(move *chess.Move, resolved *chess.ResolvedMove) error {
	reachesLastRank := move.Piece == chess.Pawn && resolved.To.Rank() == promotionRank(resolved.Colour)

	switch {
	case reachesLastRank && move.PromotedPiece == chess.Empty:
		return errors.Wrapf(errors.ErrMissingPromotion, "%s", move.Text)
	case !reachesLastRank && move.PromotedPiece != chess.Empty:
		return errors.Wrapf(errors.ErrInvalidPromotion, "%s: not on the last rank", move.Text)
	case move.PromotedPiece == chess.King || move.PromotedPiece == chess.Pawn:
		return errors.Wrapf(errors.ErrInvalidPromotion, "%s: cannot promote to %s", move.Text, move.PromotedPiece)
	case reachesLastRank:
		resolved.Special = chess.Promotion
		resolved.ResultPiece = chess.MakeColouredPiece(resolved.Colour, move.PromotedPiece)
	}
	return nil
}

// findCandidates returns the origin squares that can legally play move.
func findCandidates(board *chess.Board, move *chess.Move, piece chess.Piece, to chess.Square) []chess.Square {
	var candidates []chess.Square
	for _, from := range board.FindPieces(piece) {
		if move.FromCol != 0 && from.File() != move.FromCol {
			continue
		}
		if move.FromRank != 0 && from.Rank() != move.FromRank {
			continue
		}
		if !canReach(board, from, to) {
			continue
		}
		if !leavesKingSafe(board, from, to) {
			continue
		}
		candidates = append(candidates, from)
	}
	return candidates
}

// leavesKingSafe plays the move on a copy of the board and reports whether
// the mover's king is then free of attack.
func leavesKingSafe(board *chess.Board, from, to chess.Square) bool {
	testBoard := board.Copy()
	piece := testBoard.At(from)
	colour := chess.ExtractColour(piece)

	if chess.ExtractPiece(piece) == chess.Pawn && from.Col != to.Col && testBoard.At(to) == chess.Empty {
		testBoard.Put(enPassantVictim(to, colour), chess.Empty)
	}
	testBoard.Put(from, chess.Empty)
	testBoard.Put(to, piece)

	return !IsInCheck(testBoard, colour)
}
