// Package parser splits a game transcript into tag metadata, main-line move
// tokens, and located variation blocks, and decodes single move tokens.
package parser

// TokenType represents the type of a lexical token.
type TokenType int

const (
	// Tokens returned to the tokenizer
	EOFToken TokenType = iota
	MoveToken
	MoveNumber
	CommentToken
	VariationToken
	NAGToken
	TerminatingResult

	// Internal tokens used for identification
	Whitespace
	CommentStart
	CommentEnd
	RAVStart
	RAVEnd
	Annotate
	Dot
	Digit
	Star
	Semicolon
	Percent
	Bracket
	Alpha
	NoToken
)

// tokenTypeNames maps token types to their string representations.
var tokenTypeNames = [...]string{
	EOFToken:          "EOF",
	MoveToken:         "MOVE",
	MoveNumber:        "MOVE_NUMBER",
	CommentToken:      "COMMENT",
	VariationToken:    "VARIATION",
	NAGToken:          "NAG",
	TerminatingResult: "TERMINATING_RESULT",
	Whitespace:        "WHITESPACE",
	CommentStart:      "COMMENT_START",
	CommentEnd:        "COMMENT_END",
	RAVStart:          "RAV_START",
	RAVEnd:            "RAV_END",
	Annotate:          "ANNOTATE",
	Dot:               "DOT",
	Digit:             "DIGIT",
	Star:              "STAR",
	Semicolon:         "SEMICOLON",
	Percent:           "PERCENT",
	Bracket:           "BRACKET",
	Alpha:             "ALPHA",
	NoToken:           "NO_TOKEN",
}

// String returns the string representation of a token type.
func (t TokenType) String() string {
	if int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return "UNKNOWN"
}

// Token represents a lexical token with its value.
type Token struct {
	Type TokenType

	// Text is the move text, result, comment text or variation name.
	Text string

	// MoveNum holds move numbers; Black is set for "12..." forms.
	MoveNum uint
	Black   bool

	// Body and BodyOffset hold the movetext inside a variation's parentheses.
	Body       string
	BodyOffset int

	// Labelled is set for "{variation: NAME}" blocks, clear for bare "( ... )".
	Labelled bool

	// Byte offsets of the token in the full input.
	Offset int
	End    int
}

// MoveItem is one main-line or branch move as written, with the move
// number that preceded it, if any.
type MoveItem struct {
	Text   string
	Offset int

	// Numbered is set when an explicit move number preceded this token.
	Numbered   bool
	MoveNumber uint
	Black      bool

	// Comment is the text of plain {comments} that followed the move.
	Comment string
}

// VariationBlock is a located side-line. Its movetext is excluded from the
// main line.
type VariationBlock struct {
	Name     string
	Labelled bool

	// Offset and End bound the whole block in the input; Text is the
	// movetext inside the parentheses, starting at TextOffset.
	Offset     int
	End        int
	Text       string
	TextOffset int

	// Preceding is the number of main-line move tokens before the block.
	Preceding int
}

// Tokens is the tokenizer output for one game.
type Tokens struct {
	Tags       map[string]string
	Moves      []MoveItem
	Variations []VariationBlock

	// Result is the terminating result marker, if present.
	Result string

	// Warnings are recovered problems; they never abort tokenizing.
	Warnings []error
}
