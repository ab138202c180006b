package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors_Are verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrInvalidFEN", ErrInvalidFEN, ErrInvalidFEN},
		{"ErrIllegalMove", ErrIllegalMove, ErrIllegalMove},
		{"ErrParseFailure", ErrParseFailure, ErrParseFailure},
		{"ErrAmbiguousMove", ErrAmbiguousMove, ErrAmbiguousMove},
		{"ErrNoCandidate", ErrNoCandidate, ErrNoCandidate},
		{"ErrAnchorNotFound", ErrAnchorNotFound, ErrAnchorNotFound},
		{"ErrUnterminatedVariation", ErrUnterminatedVariation, ErrUnterminatedVariation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

// TestSentinelErrors_Distinct verifies sentinels do not match each other
func TestSentinelErrors_Distinct(t *testing.T) {
	if errors.Is(ErrAmbiguousMove, ErrNoCandidate) {
		t.Error("ErrAmbiguousMove matched ErrNoCandidate")
	}
	if errors.Is(ErrMissingPromotion, ErrInvalidPromotion) {
		t.Error("ErrMissingPromotion matched ErrInvalidPromotion")
	}
}

// TestMoveError_Error verifies the error message format
func TestMoveError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *MoveError
		contains []string
	}{
		{
			name: "full context",
			err: &MoveError{
				Err:        ErrAmbiguousMove,
				Ply:        12,
				MoveNumber: 6,
				Side:       "Black",
				MoveText:   "Nd7",
				Variation:  "Sicilian",
			},
			contains: []string{"Sicilian", "ply 12", "move 6 (Black)", "Nd7", "ambiguous move"},
		},
		{
			name: "minimal context",
			err: &MoveError{
				Err: ErrBadNotation,
			},
			contains: []string{"unrecognized move notation"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("MoveError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

// TestMoveError_Unwrap verifies that MoveError properly implements Unwrap
func TestMoveError_Unwrap(t *testing.T) {
	moveErr := &MoveError{
		Err:      ErrNoCandidate,
		Ply:      3,
		MoveText: "Nf6",
	}

	unwrapped := errors.Unwrap(moveErr)
	if !errors.Is(unwrapped, ErrNoCandidate) {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, ErrNoCandidate)
	}

	if !errors.Is(moveErr, ErrNoCandidate) {
		t.Error("errors.Is(moveErr, ErrNoCandidate) = false, want true")
	}
}

// TestMoveError_As verifies that errors.As works with MoveError
func TestMoveError_As(t *testing.T) {
	moveErr := &MoveError{
		Err:      ErrCastlingNotAllowed,
		Ply:      24,
		MoveText: "O-O-O",
	}

	wrapped := fmt.Errorf("replaying line: %w", moveErr)

	var extractedErr *MoveError
	if !errors.As(wrapped, &extractedErr) {
		t.Fatal("errors.As() could not extract MoveError")
	}

	if extractedErr.Ply != 24 {
		t.Errorf("extractedErr.Ply = %d, want 24", extractedErr.Ply)
	}
	if extractedErr.MoveText != "O-O-O" {
		t.Errorf("extractedErr.MoveText = %q, want %q", extractedErr.MoveText, "O-O-O")
	}
}

// TestVariationError verifies VariationError formatting and unwrapping
func TestVariationError(t *testing.T) {
	err := &VariationError{
		Err:    ErrAnchorNotFound,
		Name:   "Najdorf",
		Offset: 57,
	}

	msg := err.Error()
	for _, s := range []string{"Najdorf", "offset 57", "anchor not found"} {
		if !containsIgnoreCase(msg, s) {
			t.Errorf("VariationError.Error() = %q, should contain %q", msg, s)
		}
	}
	if !errors.Is(err, ErrAnchorNotFound) {
		t.Error("errors.Is(err, ErrAnchorNotFound) = false, want true")
	}

	unknown := &VariationError{Err: ErrUnterminatedVariation, Offset: -1}
	if containsIgnoreCase(unknown.Error(), "offset") {
		t.Errorf("unknown offset should be omitted, got %q", unknown.Error())
	}
}

// TestParseError_Error verifies ParseError formatting
func TestParseError_Error(t *testing.T) {
	err := &ParseError{
		Err:      ErrUnterminatedComment,
		Line:     100,
		Column:   15,
		Expected: "'}'",
		Got:      "end of input",
	}

	msg := err.Error()

	if !containsIgnoreCase(msg, "line 100:15") {
		t.Errorf("ParseError.Error() should contain location, got %q", msg)
	}
	if !containsIgnoreCase(msg, "expected '}', got end of input") {
		t.Errorf("ParseError.Error() should contain expectation, got %q", msg)
	}
}

// TestParseError_Is verifies every ParseError is a parse failure
func TestParseError_Is(t *testing.T) {
	parseErr := NewParseError(ErrEmptyInput, "", 0)

	if !errors.Is(parseErr, ErrParseFailure) {
		t.Error("errors.Is(parseErr, ErrParseFailure) = false, want true")
	}
	if !errors.Is(parseErr, ErrEmptyInput) {
		t.Error("errors.Is(parseErr, ErrEmptyInput) = false, want true")
	}
	if errors.Is(parseErr, ErrNoMoves) {
		t.Error("errors.Is(parseErr, ErrNoMoves) = true, want false")
	}
}

// TestPosition verifies offset to line/column conversion
func TestPosition(t *testing.T) {
	text := "[Event \"x\"]\n\n1. e4 {open"
	tests := []struct {
		offset   int
		wantLine int
		wantCol  int
	}{
		{0, 1, 1},
		{12, 2, 1},
		{13, 3, 1},
		{19, 3, 7},
		{1000, 3, 12},
	}

	for _, tt := range tests {
		line, col := Position(text, tt.offset)
		if line != tt.wantLine || col != tt.wantCol {
			t.Errorf("Position(%d) = %d:%d, want %d:%d", tt.offset, line, col, tt.wantLine, tt.wantCol)
		}
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrInvalidFEN, "reading FEN tag")

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Error("Wrap should preserve the underlying error")
	}

	msg := wrapped.Error()
	if !containsIgnoreCase(msg, "reading FEN tag") {
		t.Errorf("Wrap should include context, got %q", msg)
	}
	if Wrap(nil, "ignored") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrIllegalMove, "move %d of variation %q", 15, "main")

	if !errors.Is(wrapped, ErrIllegalMove) {
		t.Error("Wrapf should preserve the underlying error")
	}

	msg := wrapped.Error()
	if !containsIgnoreCase(msg, "move 15") {
		t.Errorf("Wrapf should include formatted context, got %q", msg)
	}
}

// TestIsAs verifies the chain helpers match the standard library.
func TestIsAs(t *testing.T) {
	err := Wrap(&MoveError{Err: ErrAmbiguousMove, MoveText: "Nd2"}, "main line")

	if !Is(err, ErrAmbiguousMove) {
		t.Error("Is should find the sentinel through the wrappers")
	}
	if Is(err, ErrNoCandidate) {
		t.Error("Is should not match an unrelated sentinel")
	}

	var merr *MoveError
	if !As(err, &merr) || merr.MoveText != "Nd2" {
		t.Errorf("As should find the MoveError, got %+v", merr)
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
