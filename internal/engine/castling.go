package engine

import (
	"github.com/lgbarn/pgn-delta/internal/chess"
	"github.com/lgbarn/pgn-delta/internal/errors"
)

// castleSquares holds the fixed squares of one castling move.
type castleSquares struct {
	kingFrom, kingTo chess.Square
	rookFrom, rookTo chess.Square
}

// castlingSquares returns the king and rook squares for castling.
func castlingSquares(colour chess.Colour, kingside bool) castleSquares {
	rank := chess.HomeRank(colour)
	if kingside {
		return castleSquares{
			kingFrom: chess.SquareOf('e', rank),
			kingTo:   chess.SquareOf('g', rank),
			rookFrom: chess.SquareOf('h', rank),
			rookTo:   chess.SquareOf('f', rank),
		}
	}
	return castleSquares{
		kingFrom: chess.SquareOf('e', rank),
		kingTo:   chess.SquareOf('c', rank),
		rookFrom: chess.SquareOf('a', rank),
		rookTo:   chess.SquareOf('d', rank),
	}
}

// resolveCastle resolves a castling token for the side to move. It needs the
// castling right, king and rook on their home squares, and nothing between
// them. Whether the king passes through an attacked square is not checked.
func resolveCastle(board *chess.Board, move *chess.Move) (*chess.ResolvedMove, error) {
	colour := board.ToMove
	kingside := move.Castle == chess.KingsideCastle
	sq := castlingSquares(colour, kingside)
	king := chess.MakeColouredPiece(colour, chess.King)
	rook := chess.MakeColouredPiece(colour, chess.Rook)

	if !board.CanCastle(colour, kingside) {
		return nil, errors.Wrapf(errors.ErrCastlingNotAllowed, "%s: %s has no %s right", move.Text, colour, move.Castle)
	}
	if board.At(sq.kingFrom) != king || board.At(sq.rookFrom) != rook {
		return nil, errors.Wrapf(errors.ErrCastlingNotAllowed, "%s: king or rook not on its home square", move.Text)
	}

	step := 1
	if sq.rookFrom.Col < sq.kingFrom.Col {
		step = -1
	}
	for col := sq.kingFrom.Col + step; col != sq.rookFrom.Col; col += step {
		if board.Squares[sq.kingFrom.Row][col] != chess.Empty {
			return nil, errors.Wrapf(errors.ErrCastlingNotAllowed, "%s: path is blocked", move.Text)
		}
	}

	return &chess.ResolvedMove{
		Text:        move.Text,
		Colour:      colour,
		From:        sq.kingFrom,
		To:          sq.kingTo,
		Piece:       king,
		ResultPiece: king,
		Special:     move.Castle,
		RookFrom:    sq.rookFrom,
		RookTo:      sq.rookTo,
		CheckStatus: move.CheckStatus,
	}, nil
}

// updateCastlingRightsForSquare removes the castling right tied to a corner
// square when a piece moves from it or is captured on it.
func updateCastlingRightsForSquare(board *chess.Board, sq chess.Square) {
	switch sq {
	case chess.SquareOf('a', chess.FirstRank):
		board.WhiteQueenside = false
	case chess.SquareOf('h', chess.FirstRank):
		board.WhiteKingside = false
	case chess.SquareOf('a', chess.LastRank):
		board.BlackQueenside = false
	case chess.SquareOf('h', chess.LastRank):
		board.BlackKingside = false
	}
}
