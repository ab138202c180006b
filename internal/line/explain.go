package line

import (
	"fmt"
	"strings"

	"github.com/lgbarn/pgn-delta/internal/chess"
)

// Explain builds the human-readable description of a resolved move, e.g.
//
//	3. White plays Bb5, bishop from f1 to b5.
//	4... Black plays exd6, pawn from e5 takes pawn on d5 en passant.
func Explain(move *chess.ResolvedMove, moveNumber uint) string {
	var sb strings.Builder

	if move.Colour == chess.White {
		fmt.Fprintf(&sb, "%d. ", moveNumber)
	} else {
		fmt.Fprintf(&sb, "%d... ", moveNumber)
	}
	fmt.Fprintf(&sb, "%s plays %s, ", move.Colour, move.Text)

	piece := pieceName(move.Piece)
	switch {
	case move.Special == chess.KingsideCastle:
		sb.WriteString("castling kingside")
	case move.Special == chess.QueensideCastle:
		sb.WriteString("castling queenside")
	case move.IsCapture():
		fmt.Fprintf(&sb, "%s from %s takes %s on %s", piece, move.From, pieceName(move.CapturedPiece), move.CapturedAt)
		if move.Capture == chess.EnPassantCapture {
			sb.WriteString(" en passant")
		}
	default:
		fmt.Fprintf(&sb, "%s from %s to %s", piece, move.From, move.To)
	}

	if move.IsPromotion() {
		fmt.Fprintf(&sb, " and promotes to %s", pieceName(move.ResultPiece))
	}
	sb.WriteByte('.')

	switch move.CheckStatus {
	case chess.Check:
		sb.WriteString(" Check.")
	case chess.Checkmate:
		sb.WriteString(" Checkmate.")
	}
	return sb.String()
}

// pieceName returns the lower-case name of a coloured piece.
func pieceName(colouredPiece chess.Piece) string {
	return strings.ToLower(chess.ExtractPiece(colouredPiece).String())
}
