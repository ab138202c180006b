package parser

import (
	"strings"

	"github.com/lgbarn/pgn-delta/internal/chess"
	"github.com/lgbarn/pgn-delta/internal/errors"
)

// isCapture returns true if c is a capture character.
func isCapture(c byte) bool {
	return c == 'x' || c == 'X' || c == ':'
}

// isCastlingChar returns true if c is a castling character.
func isCastlingChar(c byte) bool {
	return c == 'O' || c == '0' || c == 'o'
}

// isCheck returns true if c is a check indicator.
func isCheck(c byte) bool {
	return c == '+' || c == '#'
}

// DecodeMove parses a move token into its notated parts:
//
//	[piece][from file][from rank][x][to file][to rank][=promotion][+|#]
//
// plus castling in O-O / 0-0 forms. Pawn moves without a file hint get the
// destination file as origin file, as SAN requires. The decoder knows
// nothing about the board; resolution happens in the engine.
func DecodeMove(moveString string) (*chess.Move, error) {
	move := chess.NewMove()
	move.Text = moveString

	text := stripSuffixes(moveString, move)
	if text == "" {
		return nil, errors.Wrapf(errors.ErrBadNotation, "%q", moveString)
	}

	if isCastlingChar(text[0]) {
		if !decodeCastle(text, move) {
			return nil, errors.Wrapf(errors.ErrBadNotation, "%q", moveString)
		}
		return move, nil
	}

	pos := 0
	move.Piece = chess.Pawn
	if piece := chess.PieceFromLetter(text[0]); piece != chess.Empty {
		move.Piece = piece
		pos++
	}

	rest := text[pos:]
	end := len(rest)

	// Promotion suffix: "=Q" or a bare trailing piece letter.
	if end >= 2 && rest[end-2] == '=' {
		move.PromotedPiece = chess.PieceFromLetter(rest[end-1])
		if move.PromotedPiece == chess.Empty {
			return nil, errors.Wrapf(errors.ErrBadNotation, "%q: unknown promotion piece", moveString)
		}
		end -= 2
	} else if end >= 1 && move.Piece == chess.Pawn {
		if piece := chess.PieceFromLetter(rest[end-1]); piece != chess.Empty {
			move.PromotedPiece = piece
			end--
		}
	}

	// Destination square.
	if end < 2 || !chess.IsCol(rest[end-2]) || !chess.IsRank(rest[end-1]) {
		return nil, errors.Wrapf(errors.ErrBadNotation, "%q: missing destination square", moveString)
	}
	move.ToCol = chess.Col(rest[end-2])
	move.ToRank = chess.Rank(rest[end-1])
	end -= 2

	// Capture marker, or the '-' of long algebraic notation.
	if end >= 1 && (isCapture(rest[end-1]) || rest[end-1] == '-') {
		move.Capture = isCapture(rest[end-1])
		end--
	}

	// Origin hints.
	hints := rest[:end]
	switch {
	case hints == "":
	case len(hints) == 1 && chess.IsCol(hints[0]):
		move.FromCol = chess.Col(hints[0])
	case len(hints) == 1 && chess.IsRank(hints[0]):
		move.FromRank = chess.Rank(hints[0])
	case len(hints) == 2 && chess.IsCol(hints[0]) && chess.IsRank(hints[1]):
		move.FromCol = chess.Col(hints[0])
		move.FromRank = chess.Rank(hints[1])
	default:
		return nil, errors.Wrapf(errors.ErrBadNotation, "%q: unreadable origin %q", moveString, hints)
	}

	if move.Piece == chess.Pawn {
		if move.FromCol == 0 {
			if move.Capture {
				return nil, errors.Wrapf(errors.ErrBadNotation, "%q: pawn capture without file", moveString)
			}
			move.FromCol = move.ToCol
		}
	} else if move.PromotedPiece != chess.Empty {
		return nil, errors.Wrapf(errors.ErrInvalidPromotion, "%q: only pawns promote", moveString)
	}

	return move, nil
}

// stripSuffixes removes check, mate and en passant suffixes, recording the
// check status on move.
func stripSuffixes(text string, move *chess.Move) string {
	for len(text) > 0 && isCheck(text[len(text)-1]) {
		if text[len(text)-1] == '#' {
			move.CheckStatus = chess.Checkmate
		} else if move.CheckStatus == chess.NoCheck {
			move.CheckStatus = chess.Check
		}
		text = text[:len(text)-1]
	}

	for _, ep := range []string{"e.p.", "ep"} {
		if len(text) > len(ep)+1 && strings.HasSuffix(text, ep) && chess.IsRank(text[len(text)-len(ep)-1]) {
			return strings.TrimSuffix(text, ep)
		}
	}
	return text
}

// decodeCastle recognizes O-O and O-O-O with letter O, lowercase o, or zero,
// and with or without the separating dashes.
func decodeCastle(text string, move *chess.Move) bool {
	count := 0
	for i := 0; i < len(text); i++ {
		switch {
		case isCastlingChar(text[i]):
			count++
		case text[i] == '-':
		default:
			return false
		}
	}

	switch count {
	case 2:
		move.Castle = chess.KingsideCastle
	case 3:
		move.Castle = chess.QueensideCastle
	default:
		return false
	}
	move.Piece = chess.King
	return true
}
