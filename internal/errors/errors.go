// Package errors provides sentinel errors and error types for pgn-delta.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrParseFailure indicates the input could not be tokenized at all.
	ErrParseFailure = errors.New("parse failure")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrEmptyInput indicates blank input text.
	ErrEmptyInput = errors.New("empty input")

	// ErrNoMoves indicates movetext that contains no move tokens.
	ErrNoMoves = errors.New("no moves found")

	// ErrUnterminatedComment indicates a '{' without a closing '}'.
	ErrUnterminatedComment = errors.New("unterminated comment")

	// ErrMalformedTags indicates a tag section that could not be read.
	ErrMalformedTags = errors.New("malformed tag section")

	// ErrBadNotation indicates a token that does not follow move grammar.
	ErrBadNotation = errors.New("unrecognized move notation")

	// ErrNoCandidate indicates no piece can make the notated move.
	ErrNoCandidate = errors.New("no piece can make this move")

	// ErrAmbiguousMove indicates more than one piece can make the notated move.
	ErrAmbiguousMove = errors.New("ambiguous move")

	// ErrCastlingNotAllowed indicates castling without the right or with a blocked path.
	ErrCastlingNotAllowed = errors.New("castling not allowed")

	// ErrMissingPromotion indicates a pawn reaching the last rank without a promotion suffix.
	ErrMissingPromotion = errors.New("missing promotion piece")

	// ErrInvalidPromotion indicates a promotion suffix that cannot apply.
	ErrInvalidPromotion = errors.New("invalid promotion")

	// ErrUnterminatedVariation indicates a variation block without its closing ')'.
	ErrUnterminatedVariation = errors.New("unterminated variation")

	// ErrAnchorNotFound indicates a variation whose branch point is not in the main line.
	ErrAnchorNotFound = errors.New("variation anchor not found")

	// ErrNestedVariation indicates a sub-branch inside a variation, which is ignored.
	ErrNestedVariation = errors.New("nested variation ignored")

	// ErrUnbalancedParen indicates a ')' with no open variation.
	ErrUnbalancedParen = errors.New("unbalanced parenthesis")
)

// MoveError wraps a move-resolution failure with its position in a line.
// It implements the error interface and supports unwrapping via errors.Is()
// and errors.As().
type MoveError struct {
	Err        error  // The underlying error
	Ply        int    // Ply at which the move was attempted (1-based)
	MoveNumber uint   // Full move number
	Side       string // "White" or "Black"
	MoveText   string // The move text that caused the error
	Variation  string // Variation name, empty for the main line
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Variation != "" {
		parts = append(parts, fmt.Sprintf("variation %q", e.Variation))
	}

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}

	if e.MoveNumber > 0 && e.Side != "" {
		parts = append(parts, fmt.Sprintf("move %d (%s)", e.MoveNumber, e.Side))
	}

	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// VariationError reports a variation that was dropped or altered.
type VariationError struct {
	Err      error  // The underlying error
	Name     string // Display name of the variation
	Offset   int    // Byte offset of the block in the input (-1 if unknown)
	MoveText string // Offending move text, if a move failed
}

// Error returns a formatted error message with the variation context.
func (e *VariationError) Error() string {
	var parts []string

	if e.Name != "" {
		parts = append(parts, fmt.Sprintf("variation %q", e.Name))
	} else {
		parts = append(parts, "variation")
	}
	if e.Offset >= 0 {
		parts = append(parts, fmt.Sprintf("offset %d", e.Offset))
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	context := strings.Join(parts, ", ")
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error.
func (e *VariationError) Unwrap() error {
	return e.Err
}

// ParseError represents a tokenizing error with input location context.
type ParseError struct {
	Err      error  // The underlying error
	Offset   int    // Byte offset in the input (0-based)
	Line     int    // Line number (1-based)
	Column   int    // Column number (1-based)
	Expected string // What was expected (for syntax errors)
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Line > 0 {
		loc := fmt.Sprintf("line %d", e.Line)
		if e.Column > 0 {
			loc += fmt.Sprintf(":%d", e.Column)
		}
		parts = append(parts, loc)
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is makes every ParseError match ErrParseFailure, so callers can test for
// the fatal class without knowing the specific cause.
func (e *ParseError) Is(target error) bool {
	return target == ErrParseFailure
}

// NewParseError builds a ParseError for an offset in text, computing the
// line and column from it.
func NewParseError(err error, text string, offset int) *ParseError {
	line, col := Position(text, offset)
	return &ParseError{Err: err, Offset: offset, Line: line, Column: col}
}

// Position converts a byte offset into 1-based line and column numbers.
func Position(text string, offset int) (line, column int) {
	if offset > len(text) {
		offset = len(text)
	}
	if offset < 0 {
		offset = 0
	}
	line = 1 + strings.Count(text[:offset], "\n")
	column = offset - strings.LastIndex(text[:offset], "\n")
	return line, column
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
