package parser

import (
	"strings"
	"unicode"

	"github.com/lgbarn/pgn-delta/internal/errors"
)

// tagScanner reads the [Name "Value"] section at the head of the input.
type tagScanner struct {
	text string
	pos  int
}

func (s *tagScanner) currentChar() byte {
	if s.pos >= len(s.text) {
		return 0
	}
	return s.text[s.pos]
}

func (s *tagScanner) skipWhitespace() {
	for s.pos < len(s.text) && chTab[s.currentChar()] == Whitespace {
		s.pos++
	}
}

// parseTagSection fills tags from the leading tag pairs and returns the
// offset at which movetext starts. On a malformed pair it returns a
// non-nil error together with the offset just past the tag section, so
// movetext can still be read.
func parseTagSection(text string, tags map[string]string) (int, error) {
	s := &tagScanner{text: text}
	s.skipWhitespace()

	for s.currentChar() == '[' {
		pairStart := s.pos
		if err := s.parseTag(tags); err != nil {
			line, col := errors.Position(text, pairStart)
			return skipTagLines(text, pairStart), errors.Wrapf(err, "line %d:%d", line, col)
		}
		s.skipWhitespace()
	}

	return s.pos, nil
}

// parseTag parses a single tag pair.
func (s *tagScanner) parseTag(tags map[string]string) error {
	s.pos++ // '['
	s.skipWhitespace()

	start := s.pos
	for s.pos < len(s.text) {
		ch := rune(s.currentChar())
		if unicode.IsLetter(ch) || unicode.IsDigit(ch) || ch == '_' {
			s.pos++
		} else {
			break
		}
	}
	if s.pos == start {
		return errors.Wrap(errors.ErrMalformedTags, "missing tag name")
	}
	name := s.text[start:s.pos]

	s.skipWhitespace()
	if s.currentChar() != '"' {
		return errors.Wrapf(errors.ErrMalformedTags, "missing tag string for %s", name)
	}
	s.pos++

	var sb strings.Builder
	escaped := false
	closed := false
	for s.pos < len(s.text) && !closed {
		ch := s.currentChar()
		s.pos++

		switch {
		case escaped:
			sb.WriteByte(ch)
			escaped = false
		case ch == '\\':
			escaped = true
		case ch == '"':
			closed = true
		case ch == '\n':
			return errors.Wrapf(errors.ErrMalformedTags, "missing closing quote for %s", name)
		default:
			sb.WriteByte(ch)
		}
	}
	if !closed {
		return errors.Wrapf(errors.ErrMalformedTags, "missing closing quote for %s", name)
	}

	s.skipWhitespace()
	if s.currentChar() != ']' {
		return errors.Wrapf(errors.ErrMalformedTags, "missing ']' after %s", name)
	}
	s.pos++

	tags[name] = sb.String()
	return nil
}

// skipTagLines returns the offset of the first line at or after from that
// does not start with '['.
func skipTagLines(text string, from int) int {
	pos := from
	for pos < len(text) {
		lineStart := pos
		for lineStart < len(text) && (text[lineStart] == ' ' || text[lineStart] == '\t') {
			lineStart++
		}
		if pos != from && (lineStart >= len(text) || text[lineStart] != '[') {
			return pos
		}
		next := strings.IndexByte(text[pos:], '\n')
		if next < 0 {
			return len(text)
		}
		pos += next + 1
	}
	return pos
}
