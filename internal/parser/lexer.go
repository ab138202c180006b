package parser

import (
	"strings"

	"github.com/lgbarn/pgn-delta/internal/errors"
)

// Lexer tokenizes movetext. Offsets in returned tokens are relative to the
// full input, so a Lexer over a variation body reports positions in the
// original text.
type Lexer struct {
	text     string
	pos      int
	base     int
	warnings []error
}

// Character classification table
var chTab [256]TokenType

func init() {
	initLexTables()
}

// initLexTables initializes the character classification table. Anything
// not listed is treated as part of a move word.
func initLexTables() {
	for i := range chTab {
		chTab[i] = Alpha
	}

	for _, c := range []byte{' ', '\t', '\r', '\n', '\f', '\v'} {
		chTab[c] = Whitespace
	}

	chTab['{'] = CommentStart
	chTab['}'] = CommentEnd
	chTab['('] = RAVStart
	chTab[')'] = RAVEnd
	chTab['$'] = NAGToken
	chTab['!'] = Annotate
	chTab['?'] = Annotate
	chTab['.'] = Dot
	chTab['*'] = Star
	chTab[';'] = Semicolon
	chTab['%'] = Percent
	chTab['['] = Bracket
	chTab[']'] = Bracket

	for c := byte('0'); c <= '9'; c++ {
		chTab[c] = Digit
	}
}

// isDelimiter returns true if c ends a move word.
func isDelimiter(c byte) bool {
	switch chTab[c] {
	case Whitespace, CommentStart, CommentEnd, RAVStart, RAVEnd, NAGToken, Semicolon, Bracket:
		return true
	}
	return false
}

// NewLexer creates a lexer over text, whose first byte sits at offset base
// of the full input.
func NewLexer(text string, base int) *Lexer {
	return &Lexer{
		text: text,
		base: base,
	}
}

// Warnings returns the recovered problems seen so far.
func (l *Lexer) Warnings() []error {
	return l.warnings
}

// currentChar returns the current character or 0 if at end of input.
func (l *Lexer) currentChar() byte {
	if l.pos >= len(l.text) {
		return 0
	}
	return l.text[l.pos]
}

// advance moves to the next character.
func (l *Lexer) advance() {
	if l.pos < len(l.text) {
		l.pos++
	}
}

// NextToken returns the next token from the input. The only error is an
// unterminated comment, which makes the movetext unreadable.
func (l *Lexer) NextToken() (*Token, error) {
	for {
		token, err := l.getNextSymbol()
		if err != nil {
			return nil, err
		}
		if token.Type != NoToken {
			return token, nil
		}
	}
}

// getNextSymbol identifies the next symbol.
func (l *Lexer) getNextSymbol() (*Token, error) {
	if l.pos >= len(l.text) {
		return &Token{Type: EOFToken, Offset: l.base + l.pos}, nil
	}

	ch := l.currentChar()
	symbolStart := l.pos
	l.advance()

	switch chTab[ch] {
	case Whitespace:
		for l.pos < len(l.text) && chTab[l.currentChar()] == Whitespace {
			l.advance()
		}
		return &Token{Type: NoToken}, nil

	case CommentStart:
		return l.gatherComment(symbolStart)

	case RAVStart:
		return l.gatherVariation(symbolStart, "", false), nil

	case RAVEnd:
		l.warnings = append(l.warnings, &errors.VariationError{
			Err:    errors.ErrUnbalancedParen,
			Offset: l.base + symbolStart,
		})
		return &Token{Type: NoToken}, nil

	case NAGToken:
		for l.pos < len(l.text) && chTab[l.currentChar()] == Digit {
			l.advance()
		}
		return l.makeToken(NAGToken, symbolStart), nil

	case Annotate:
		for l.pos < len(l.text) && chTab[l.currentChar()] == Annotate {
			l.advance()
		}
		return l.makeToken(NAGToken, symbolStart), nil

	case Dot:
		for l.pos < len(l.text) && chTab[l.currentChar()] == Dot {
			l.advance()
		}
		return &Token{Type: NoToken}, nil

	case Digit:
		return l.gatherNumeric(symbolStart), nil

	case Star:
		return l.makeToken(TerminatingResult, symbolStart), nil

	case Semicolon, Percent:
		// Rest-of-line comment or escape line.
		for l.pos < len(l.text) && l.currentChar() != '\n' {
			l.advance()
		}
		return &Token{Type: NoToken}, nil

	case Alpha:
		return l.gatherMove(symbolStart), nil

	default:
		// Stray '}' or brackets.
		return &Token{Type: NoToken}, nil
	}
}

// makeToken builds a token spanning symbolStart up to the current position.
func (l *Lexer) makeToken(tokenType TokenType, symbolStart int) *Token {
	return &Token{
		Type:   tokenType,
		Text:   l.text[symbolStart:l.pos],
		Offset: l.base + symbolStart,
		End:    l.base + l.pos,
	}
}

// gatherComment gathers a {comment}. A comment of the form
// "{variation: NAME}" followed by "(" opens a labelled variation block.
func (l *Lexer) gatherComment(symbolStart int) (*Token, error) {
	closing := strings.IndexByte(l.text[l.pos:], '}')
	if closing < 0 {
		err := errors.NewParseError(errors.ErrUnterminatedComment, l.text, symbolStart)
		err.Offset = l.base + symbolStart
		err.Expected = "'}'"
		err.Got = "end of input"
		return nil, err
	}

	body := l.text[l.pos : l.pos+closing]
	l.pos += closing + 1

	if name, ok := variationLabel(body); ok {
		open := l.pos
		for open < len(l.text) && chTab[l.text[open]] == Whitespace {
			open++
		}
		if open < len(l.text) && l.text[open] == '(' {
			l.pos = open + 1
			return l.gatherVariation(symbolStart, name, true), nil
		}
	}

	return &Token{
		Type:   CommentToken,
		Text:   strings.TrimSpace(body),
		Offset: l.base + symbolStart,
		End:    l.base + l.pos,
	}, nil
}

// variationLabel recognizes the "variation: NAME" comment form.
func variationLabel(body string) (string, bool) {
	const label = "variation:"
	text := strings.TrimSpace(body)
	if len(text) < len(label) || !strings.EqualFold(text[:len(label)], label) {
		return "", false
	}
	return strings.TrimSpace(text[len(label):]), true
}

// gatherVariation gathers a parenthesized block whose '(' has just been
// consumed. Nested parentheses and comments are kept inside the body. A
// block without its closing ')' is dropped with a warning, and lexing
// resumes at the next labelled block or blank line.
func (l *Lexer) gatherVariation(symbolStart int, name string, labelled bool) *Token {
	bodyStart := l.pos
	depth := 1

	for p := bodyStart; p < len(l.text); p++ {
		switch l.text[p] {
		case '{':
			closing := strings.IndexByte(l.text[p:], '}')
			if closing < 0 {
				p = len(l.text)
				continue
			}
			p += closing
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				l.pos = p + 1
				return &Token{
					Type:       VariationToken,
					Text:       name,
					Labelled:   labelled,
					Body:       l.text[bodyStart:p],
					BodyOffset: l.base + bodyStart,
					Offset:     l.base + symbolStart,
					End:        l.base + l.pos,
				}
			}
		}
	}

	l.warnings = append(l.warnings, &errors.VariationError{
		Err:    errors.ErrUnterminatedVariation,
		Name:   name,
		Offset: l.base + symbolStart,
	})
	l.pos = l.unclosedBlockEnd(bodyStart)
	return &Token{Type: NoToken}
}

// unclosedBlockEnd returns where the body of an unclosed block starting at
// from stops: the '{' of the next variation label, the line after the next
// blank line, or the end of input.
func (l *Lexer) unclosedBlockEnd(from int) int {
	for p := from; p < len(l.text); p++ {
		switch l.text[p] {
		case '{':
			closing := strings.IndexByte(l.text[p:], '}')
			if closing < 0 {
				return len(l.text)
			}
			if _, ok := variationLabel(l.text[p+1 : p+closing]); ok {
				return p
			}
			p += closing
		case '\n':
			q := p + 1
			for q < len(l.text) && (l.text[q] == ' ' || l.text[q] == '\t' || l.text[q] == '\r') {
				q++
			}
			if q < len(l.text) && l.text[q] == '\n' {
				return q + 1
			}
		}
	}
	return len(l.text)
}

// gatherNumeric handles numeric tokens (move numbers, results, zero castling).
func (l *Lexer) gatherNumeric(symbolStart int) *Token {
	remaining := l.text[symbolStart:]

	for _, result := range []string{"1-0", "0-1", "1/2-1/2"} {
		if strings.HasPrefix(remaining, result) {
			l.pos = symbolStart + len(result)
			return l.makeToken(TerminatingResult, symbolStart)
		}
	}
	if strings.HasPrefix(remaining, "0-0") {
		return l.gatherMove(symbolStart)
	}

	return l.gatherMoveNumber(symbolStart)
}

// gatherMoveNumber parses a move number such as "12.", "12...", "12. ..."
// or "12".
func (l *Lexer) gatherMoveNumber(symbolStart int) *Token {
	var moveNum uint
	for l.pos = symbolStart; l.pos < len(l.text) && chTab[l.currentChar()] == Digit; l.advance() {
		moveNum = moveNum*10 + uint(l.currentChar()-'0')
	}

	dots := 0
	for l.pos < len(l.text) && l.currentChar() == '.' {
		dots++
		l.advance()
	}

	if dots == 0 && l.pos < len(l.text) && !isDelimiter(l.currentChar()) {
		// Digits glued to letters are not a move number.
		return l.gatherMove(symbolStart)
	}

	black := dots >= 3
	if !black {
		// "3. ... Nf6" marks Black with a separate ellipsis.
		if end := l.spacedEllipsis(); end > 0 {
			l.pos = end
			black = true
		}
	}

	return &Token{
		Type:    MoveNumber,
		Text:    l.text[symbolStart:l.pos],
		MoveNum: moveNum,
		Black:   black,
		Offset:  l.base + symbolStart,
		End:     l.base + l.pos,
	}
}

// spacedEllipsis returns the position just past a run of two or more dots
// that follows whitespace at the current position, or -1.
func (l *Lexer) spacedEllipsis() int {
	p := l.pos
	for p < len(l.text) && chTab[l.text[p]] == Whitespace {
		p++
	}
	if p == l.pos {
		return -1
	}
	end := p
	for end < len(l.text) && l.text[end] == '.' {
		end++
	}
	if end-p < 2 {
		return -1
	}
	return end
}

// gatherMove gathers a move word. Trailing annotation glyphs are dropped;
// the notation decoder decides whether the rest is a move.
func (l *Lexer) gatherMove(symbolStart int) *Token {
	l.pos = symbolStart
	for l.pos < len(l.text) && !isDelimiter(l.currentChar()) {
		l.advance()
	}

	token := l.makeToken(MoveToken, symbolStart)
	token.Text = strings.TrimRight(token.Text, "!?")
	if token.Text == "" {
		token.Type = NAGToken
	}
	return token
}
