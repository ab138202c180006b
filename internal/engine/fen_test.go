package engine

import (
	stderrors "errors"
	"testing"

	"github.com/lgbarn/pgn-delta/internal/chess"
	"github.com/lgbarn/pgn-delta/internal/errors"
	"github.com/lgbarn/pgn-delta/internal/testutil"
)

func TestNewBoardFromFEN(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		checkFn func(*chess.Board) bool
	}{
		{
			name: "initial position",
			fen:  InitialFEN,
			checkFn: func(b *chess.Board) bool {
				return b.Get('e', '1') == chess.W(chess.King) &&
					b.Get('e', '8') == chess.B(chess.King) &&
					b.Get('e', '2') == chess.W(chess.Pawn) &&
					b.Get('e', '7') == chess.B(chess.Pawn) &&
					b.ToMove == chess.White &&
					b.WhiteKingside && b.WhiteQueenside &&
					b.BlackKingside && b.BlackQueenside
			},
		},
		{
			name: "after 1.e4",
			fen:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			checkFn: func(b *chess.Board) bool {
				return b.Get('e', '4') == chess.W(chess.Pawn) &&
					b.Get('e', '2') == chess.Empty &&
					b.ToMove == chess.Black &&
					b.EnPassant &&
					b.EPSquare == chess.SquareOf('e', '3')
			},
		},
		{
			name: "no castling rights",
			fen:  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w - - 0 1",
			checkFn: func(b *chess.Board) bool {
				return !b.WhiteKingside && !b.WhiteQueenside &&
					!b.BlackKingside && !b.BlackQueenside
			},
		},
		{
			name: "clocks",
			fen:  "8/5k2/8/8/8/8/5K2/4R3 b - - 12 40",
			checkFn: func(b *chess.Board) bool {
				return b.HalfmoveClock == 12 && b.MoveNumber == 40 && b.ToMove == chess.Black
			},
		},
		{
			name: "placement only",
			fen:  "4k3/8/8/8/8/8/8/4K3",
			checkFn: func(b *chess.Board) bool {
				return b.ToMove == chess.White && b.MoveNumber == 1 && !b.EnPassant && !b.WhiteKingside
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := NewBoardFromFEN(tt.fen)
			if err != nil {
				t.Fatalf("NewBoardFromFEN() error = %v", err)
			}
			if !tt.checkFn(board) {
				t.Errorf("NewBoardFromFEN() board check failed: %s", BoardToFEN(board))
			}
		})
	}
}

func TestNewBoardFromFEN_Errors(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"empty string", ""},
		{"too few ranks", "8/8/8 w - - 0 1"},
		{"bad piece", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w KQkq - 0 1"},
		{"short rank", "rnbqkbnr/ppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"long rank", "rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"missing king", "8/8/8/8/8/8/8/4K3 w - - 0 1"},
		{"two kings", "4k3/8/8/8/8/8/8/3KK3 w - - 0 1"},
		{"bad side", "4k3/8/8/8/8/8/8/4K3 x - - 0 1"},
		{"bad castling", "4k3/8/8/8/8/8/8/4K3 w KX - 0 1"},
		{"bad en passant", "4k3/8/8/8/8/8/8/4K3 w - z9 0 1"},
		{"bad clock", "4k3/8/8/8/8/8/8/4K3 w - - x 1"},
		{"zero move number", "4k3/8/8/8/8/8/8/4K3 w - - 0 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBoardFromFEN(tt.fen)
			if !stderrors.Is(err, errors.ErrInvalidFEN) {
				t.Errorf("NewBoardFromFEN(%q) error = %v, want ErrInvalidFEN", tt.fen, err)
			}
		})
	}
}

func TestBoardToFEN(t *testing.T) {
	tests := []string{
		InitialFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w Kq - 0 1",
		"8/5k2/8/8/8/8/5K2/4R3 w - - 7 51",
	}

	for _, fen := range tests {
		t.Run(fen, func(t *testing.T) {
			board, err := NewBoardFromFEN(fen)
			if err != nil {
				t.Fatalf("NewBoardFromFEN() error = %v", err)
			}
			testutil.AssertEqual(t, BoardToFEN(board), fen)
		})
	}
}

func TestNewInitialBoard(t *testing.T) {
	board := NewInitialBoard()
	testutil.AssertEqual(t, BoardToFEN(board), InitialFEN)

	fromFEN, err := NewBoardFromFEN(InitialFEN)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, *board, *fromFEN)
}

func TestNewBoardForTags(t *testing.T) {
	const endgame = "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1"

	board, err := NewBoardForTags(map[string]string{})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, BoardToFEN(board), InitialFEN)

	board, err = NewBoardForTags(map[string]string{chess.FENTag: endgame})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, BoardToFEN(board), endgame)

	board, err = NewBoardForTags(map[string]string{chess.FENTag: "not a fen"})
	if !stderrors.Is(err, errors.ErrInvalidFEN) {
		t.Errorf("error = %v, want ErrInvalidFEN", err)
	}
	testutil.AssertEqual(t, BoardToFEN(board), InitialFEN)
}
