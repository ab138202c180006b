package line

import (
	"testing"

	"github.com/lgbarn/pgn-delta/internal/engine"
	"github.com/lgbarn/pgn-delta/internal/testutil"
)

func TestExplain(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		moves []string
		want  string
	}{
		{"first move", engine.InitialFEN, []string{"e4"}, "1. White plays e4, pawn from e2 to e4."},
		{"black reply", engine.InitialFEN, []string{"e4", "Nf6"}, "1... Black plays Nf6, knight from g8 to f6."},
		{"bishop", engine.InitialFEN, []string{"e4", "e5", "Nf3", "Nc6", "Bb5"}, "3. White plays Bb5, bishop from f1 to b5."},
		{
			"capture", "rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2",
			[]string{"exd5"}, "2. White plays exd5, pawn from e4 takes pawn on d5.",
		},
		{
			"en passant", engine.InitialFEN, []string{"e4", "Nf6", "e5", "d5", "exd6"},
			"3. White plays exd6, pawn from e5 takes pawn on d5 en passant.",
		},
		{"kingside castle", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", []string{"O-O"}, "1. White plays O-O, castling kingside."},
		{"queenside castle", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", []string{"O-O-O"}, "1... Black plays O-O-O, castling queenside."},
		{
			"promotion with check", "4k3/P7/8/8/8/8/8/4K3 w - - 0 1", []string{"a8=Q+"},
			"1. White plays a8=Q+, pawn from a7 to a8 and promotes to queen. Check.",
		},
		{"check without suffix", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", []string{"Ra8"}, "1. White plays Ra8, rook from a1 to a8. Check."},
		{"mate", engine.InitialFEN, []string{"f3", "e5", "g4", "Qh4#"}, "2... Black plays Qh4#, queen from d8 to h4. Checkmate."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := engine.NewBoardFromFEN(tt.fen)
			testutil.AssertNoError(t, err)

			p := &Player{Mode: Strict}
			result, err := p.Play(board, items(tt.moves...), 1)
			if err != nil {
				t.Fatalf("Play() error = %v", err)
			}
			testutil.AssertEqual(t, result.Records[len(result.Records)-1].Explanation, tt.want)
		})
	}
}
