package delta_test

import (
	"testing"

	"github.com/lgbarn/pgn-delta/internal/chess"
	"github.com/lgbarn/pgn-delta/internal/delta"
	"github.com/lgbarn/pgn-delta/internal/engine"
	"github.com/lgbarn/pgn-delta/internal/parser"
	"github.com/lgbarn/pgn-delta/internal/testutil"
)

func sq(name string) chess.Square {
	s, ok := chess.ParseSquare(name)
	if !ok {
		panic("bad square " + name)
	}
	return s
}

// play resolves and applies text on board, returning the resolved move.
func play(t *testing.T, board *chess.Board, text string) *chess.ResolvedMove {
	t.Helper()
	move, err := parser.DecodeMove(text)
	if err != nil {
		t.Fatalf("DecodeMove(%q) error = %v", text, err)
	}
	resolved, err := engine.PlayMove(board, move)
	if err != nil {
		t.Fatalf("PlayMove(%q) error = %v", text, err)
	}
	return resolved
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		moves []string
		want  []chess.DeltaOp
	}{
		{
			name:  "pawn move",
			fen:   engine.InitialFEN,
			moves: []string{"e4"},
			want:  []chess.DeltaOp{{Kind: chess.DeltaMove, From: sq("e2"), To: sq("e4"), Piece: chess.W(chess.Pawn)}},
		},
		{
			name:  "capture",
			fen:   "rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2",
			moves: []string{"exd5"},
			want:  []chess.DeltaOp{{Kind: chess.DeltaMove, From: sq("e4"), To: sq("d5"), Piece: chess.W(chess.Pawn)}},
		},
		{
			name:  "promotion carries the new piece",
			fen:   "4k3/8/8/8/8/8/7p/K7 b - - 0 1",
			moves: []string{"h1=Q"},
			want:  []chess.DeltaOp{{Kind: chess.DeltaMove, From: sq("h2"), To: sq("h1"), Piece: chess.B(chess.Queen)}},
		},
		{
			name:  "white kingside castle",
			fen:   "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			moves: []string{"O-O"},
			want: []chess.DeltaOp{
				{Kind: chess.DeltaMove, From: sq("e1"), To: sq("g1"), Piece: chess.W(chess.King)},
				{Kind: chess.DeltaMove, From: sq("h1"), To: sq("f1"), Piece: chess.W(chess.Rook)},
			},
		},
		{
			name:  "black queenside castle",
			fen:   "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
			moves: []string{"O-O-O"},
			want: []chess.DeltaOp{
				{Kind: chess.DeltaMove, From: sq("e8"), To: sq("c8"), Piece: chess.B(chess.King)},
				{Kind: chess.DeltaMove, From: sq("a8"), To: sq("d8"), Piece: chess.B(chess.Rook)},
			},
		},
		{
			name:  "en passant removes the pawn behind the destination",
			fen:   engine.InitialFEN,
			moves: []string{"e4", "Nf6", "e5", "d5", "exd6"},
			want: []chess.DeltaOp{
				{Kind: chess.DeltaMove, From: sq("e5"), To: sq("d6"), Piece: chess.W(chess.Pawn)},
				{Kind: chess.DeltaRemove, From: sq("d5"), To: sq("d5")},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := engine.NewBoardFromFEN(tt.fen)
			testutil.AssertNoError(t, err)

			var last *chess.ResolvedMove
			for _, text := range tt.moves {
				last = play(t, board, text)
			}
			testutil.AssertEqual(t, delta.Convert(last), tt.want)
		})
	}
}

func TestConvert_Nil(t *testing.T) {
	if ops := delta.Convert(nil); ops != nil {
		t.Errorf("Convert(nil) = %v, want nil", ops)
	}
}

func TestConvert_RendererCoordinates(t *testing.T) {
	board := engine.NewInitialBoard()
	ops := delta.Convert(play(t, board, "Nf3"))

	// Row 0 is the far back rank, col 0 the a-file.
	testutil.AssertEqual(t, ops[0].From, chess.Square{Row: 7, Col: 6})
	testutil.AssertEqual(t, ops[0].To, chess.Square{Row: 5, Col: 5})
}

func TestApply_ReproducesBoard(t *testing.T) {
	texts := []string{"e4", "d5", "exd5", "c5", "dxc6", "Nf6", "cxb7", "e6", "bxa8=Q", "Bc5", "Nf3", "O-O"}

	board := engine.NewInitialBoard()
	grid := board.Squares
	for _, text := range texts {
		delta.Apply(&grid, delta.Convert(play(t, board, text)))
		testutil.AssertEqual(t, grid, board.Squares, "after "+text)
	}
}

func TestApply_IgnoresOffBoard(t *testing.T) {
	var grid chess.Grid
	grid[0][0] = chess.B(chess.Rook)

	delta.Apply(&grid, []chess.DeltaOp{
		{Kind: chess.DeltaMove, From: chess.Square{Row: -1, Col: 0}, To: chess.Square{Row: 8, Col: 8}, Piece: chess.W(chess.Queen)},
		delta.Remove(chess.Square{Row: 9, Col: 9}),
	})

	want := chess.Grid{}
	want[0][0] = chess.B(chess.Rook)
	testutil.AssertEqual(t, grid, want)
}
