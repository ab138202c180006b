package parser

import (
	"fmt"
	"strings"

	"github.com/lgbarn/pgn-delta/internal/config"
	"github.com/lgbarn/pgn-delta/internal/errors"
)

// Tokenize splits a game transcript into tag pairs, main-line move tokens
// and located variation blocks. Variation movetext is excluded from the
// main line. If cfg is nil, a default config is used.
//
// Only input that cannot be tokenized at all is an error: blank text, an
// unterminated comment, or movetext without a single move. Everything else
// is recovered and reported in Tokens.Warnings.
func Tokenize(text string, cfg *config.Config) (*Tokens, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if strings.TrimSpace(text) == "" {
		return nil, errors.NewParseError(errors.ErrEmptyInput, text, 0)
	}

	tokens := &Tokens{Tags: make(map[string]string)}

	start, err := parseTagSection(text, tokens.Tags)
	if err != nil {
		tokens.Tags = make(map[string]string)
		tokens.Warnings = append(tokens.Warnings, err)
	}

	lexer := &Lexer{text: text, pos: start}
	var numbered, black bool
	var moveNum uint

	for {
		tok, err := lexer.NextToken()
		if err != nil {
			return nil, err
		}
		if tok.Type == EOFToken {
			break
		}

		switch tok.Type {
		case MoveNumber:
			numbered, moveNum, black = true, tok.MoveNum, tok.Black

		case MoveToken:
			tokens.Moves = append(tokens.Moves, MoveItem{
				Text:       tok.Text,
				Offset:     tok.Offset,
				Numbered:   numbered,
				MoveNumber: moveNum,
				Black:      black,
			})
			numbered, moveNum, black = false, 0, false

		case CommentToken:
			if n := len(tokens.Moves); n > 0 {
				appendComment(&tokens.Moves[n-1], tok.Text)
			}

		case VariationToken:
			if !tok.Labelled && !cfg.BareVariations {
				continue
			}
			tokens.Variations = append(tokens.Variations, makeBlock(tok, len(tokens.Variations), len(tokens.Moves)))

		case TerminatingResult:
			tokens.Result = tok.Text
		}
	}

	tokens.Warnings = append(tokens.Warnings, lexer.Warnings()...)

	if len(tokens.Moves) == 0 {
		err := errors.NewParseError(errors.ErrNoMoves, text, start)
		err.Expected = "move"
		return nil, err
	}

	return tokens, nil
}

// TokenizeMovetext tokenizes the movetext of a variation body located at
// offset base in the full input. Nested blocks are not descended into:
// each is skipped with an ErrNestedVariation warning.
func TokenizeMovetext(body string, base int) ([]MoveItem, []error, error) {
	lexer := NewLexer(body, base)
	var moves []MoveItem
	var warnings []error
	var numbered, black bool
	var moveNum uint

	for {
		tok, err := lexer.NextToken()
		if err != nil {
			return nil, nil, err
		}
		if tok.Type == EOFToken {
			break
		}

		switch tok.Type {
		case MoveNumber:
			numbered, moveNum, black = true, tok.MoveNum, tok.Black
		case MoveToken:
			moves = append(moves, MoveItem{
				Text:       tok.Text,
				Offset:     tok.Offset,
				Numbered:   numbered,
				MoveNumber: moveNum,
				Black:      black,
			})
			numbered, moveNum, black = false, 0, false
		case CommentToken:
			if n := len(moves); n > 0 {
				appendComment(&moves[n-1], tok.Text)
			}
		case VariationToken:
			warnings = append(warnings, &errors.VariationError{
				Err:    errors.ErrNestedVariation,
				Name:   tok.Text,
				Offset: tok.Offset,
			})
		}
	}

	return moves, append(warnings, lexer.Warnings()...), nil
}

// makeBlock converts a variation token into a located block. Unnamed
// blocks are numbered in input order.
func makeBlock(tok *Token, index, preceding int) VariationBlock {
	name := tok.Text
	if name == "" {
		name = fmt.Sprintf("Variation %d", index+1)
	}
	return VariationBlock{
		Name:       name,
		Labelled:   tok.Labelled,
		Offset:     tok.Offset,
		End:        tok.End,
		Text:       tok.Body,
		TextOffset: tok.BodyOffset,
		Preceding:  preceding,
	}
}

// appendComment adds comment text to a move token.
func appendComment(move *MoveItem, text string) {
	if text == "" {
		return
	}
	if move.Comment != "" {
		move.Comment += " "
	}
	move.Comment += text
}
