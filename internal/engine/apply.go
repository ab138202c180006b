package engine

import "github.com/lgbarn/pgn-delta/internal/chess"

// ApplyMove applies a resolved move to the board: the origin is cleared, the
// resulting piece placed, the captured piece removed, and castling rights,
// the en passant square, the clocks and the side to move updated. It
// returns false, leaving the board untouched, if the move does not fit the
// position.
func ApplyMove(board *chess.Board, move *chess.ResolvedMove) bool {
	if move == nil || board.At(move.From) != move.Piece || move.Colour != board.ToMove {
		return false
	}
	if move.IsCastle() && board.At(move.RookFrom) != chess.MakeColouredPiece(move.Colour, chess.Rook) {
		return false
	}

	if move.IsCapture() {
		board.Put(move.CapturedAt, chess.Empty)
	}
	board.Put(move.From, chess.Empty)
	board.Put(move.To, move.ResultPiece)

	if move.IsCastle() {
		rook := board.At(move.RookFrom)
		board.Put(move.RookFrom, chess.Empty)
		board.Put(move.RookTo, rook)
	}

	if chess.ExtractPiece(move.Piece) == chess.King {
		board.ClearCastling(move.Colour)
	}
	updateCastlingRightsForSquare(board, move.From)
	updateCastlingRightsForSquare(board, move.To)

	board.EnPassant = false
	board.EPSquare = chess.Square{}
	if isDoublePawnPush(move) {
		board.EnPassant = true
		board.EPSquare = move.From.Offset(0, chess.ColourOffset(move.Colour))
	}

	if chess.ExtractPiece(move.Piece) == chess.Pawn || move.IsCapture() {
		board.HalfmoveClock = 0
	} else {
		board.HalfmoveClock++
	}
	if move.Colour == chess.Black {
		board.MoveNumber++
	}
	board.ToMove = move.Colour.Opposite()

	return true
}

// isDoublePawnPush reports a two-square pawn advance.
func isDoublePawnPush(move *chess.ResolvedMove) bool {
	if chess.ExtractPiece(move.Piece) != chess.Pawn {
		return false
	}
	d := move.To.Row - move.From.Row
	return d == 2 || d == -2
}

// PlayMove resolves and applies a decoded token. On error the board is
// unchanged. The returned move's CheckStatus is at least Check when the
// opponent's king is attacked afterwards.
func PlayMove(board *chess.Board, move *chess.Move) (*chess.ResolvedMove, error) {
	resolved, err := ResolveMove(board, move)
	if err != nil {
		return nil, err
	}
	ApplyMove(board, resolved)

	if resolved.CheckStatus == chess.NoCheck && IsInCheck(board, board.ToMove) {
		resolved.CheckStatus = chess.Check
	}
	return resolved, nil
}
