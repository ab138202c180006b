// Package delta converts resolved moves into the square operations consumed
// by the board renderer.
package delta

import "github.com/lgbarn/pgn-delta/internal/chess"

// Convert returns the renderer operations for a resolved move:
//
//   - a normal move, capture or promotion is one move op whose piece is
//     what stands on the destination afterwards;
//   - castling is two move ops, king then rook;
//   - en passant is the pawn's move op followed by a remove op for the
//     captured pawn, which is not on the destination.
func Convert(move *chess.ResolvedMove) []chess.DeltaOp {
	if move == nil {
		return nil
	}

	ops := []chess.DeltaOp{{
		Kind:  chess.DeltaMove,
		From:  move.From,
		To:    move.To,
		Piece: move.ResultPiece,
	}}

	switch {
	case move.IsCastle():
		ops = append(ops, chess.DeltaOp{
			Kind:  chess.DeltaMove,
			From:  move.RookFrom,
			To:    move.RookTo,
			Piece: chess.MakeColouredPiece(move.Colour, chess.Rook),
		})
	case move.Capture == chess.EnPassantCapture:
		ops = append(ops, Remove(move.CapturedAt))
	}
	return ops
}

// Remove returns an op clearing sq.
func Remove(sq chess.Square) chess.DeltaOp {
	return chess.DeltaOp{Kind: chess.DeltaRemove, From: sq, To: sq}
}

// Apply performs ops on grid in order, as the renderer would.
func Apply(grid *chess.Grid, ops []chess.DeltaOp) {
	for _, op := range ops {
		switch op.Kind {
		case chess.DeltaMove:
			if op.From.OnBoard() {
				grid[op.From.Row][op.From.Col] = chess.Empty
			}
			if op.To.OnBoard() {
				grid[op.To.Row][op.To.Col] = op.Piece
			}
		case chess.DeltaRemove:
			if op.From.OnBoard() {
				grid[op.From.Row][op.From.Col] = chess.Empty
			}
		}
	}
}
