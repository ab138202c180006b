package parser

import (
	"testing"
)

func collectTokens(t *testing.T, text string) []*Token {
	t.Helper()
	lexer := NewLexer(text, 0)
	var tokens []*Token
	for {
		tok, err := lexer.NextToken()
		if err != nil {
			t.Fatalf("NextToken error: %v", err)
		}
		if tok.Type == EOFToken {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

func TestLexerTokenTypes(t *testing.T) {
	tests := []struct {
		input string
		want  []TokenType
	}{
		{"e4", []TokenType{MoveToken}},
		{"1. e4", []TokenType{MoveNumber, MoveToken}},
		{"1... e5", []TokenType{MoveNumber, MoveToken}},
		{"e4 $1", []TokenType{MoveToken, NAGToken}},
		{"e4 !!", []TokenType{MoveToken, NAGToken}},
		{"{comment}", []TokenType{CommentToken}},
		{"(1. d4)", []TokenType{VariationToken}},
		{"{variation: A} (1. d4)", []TokenType{VariationToken}},
		{"1-0", []TokenType{TerminatingResult}},
		{"0-1", []TokenType{TerminatingResult}},
		{"1/2-1/2", []TokenType{TerminatingResult}},
		{"*", []TokenType{TerminatingResult}},
		{"O-O-O", []TokenType{MoveToken}},
		{"0-0-0", []TokenType{MoveToken}},
		{"; rest of line\ne4", []TokenType{MoveToken}},
		{"e4) e5", []TokenType{MoveToken, MoveToken}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens := collectTokens(t, tt.input)
			if len(tokens) != len(tt.want) {
				t.Fatalf("got %d tokens, want %d", len(tokens), len(tt.want))
			}
			for i, tok := range tokens {
				if tok.Type != tt.want[i] {
					t.Errorf("token %d: type = %v, want %v", i, tok.Type, tt.want[i])
				}
			}
		})
	}
}

func TestLexerMoveNumber(t *testing.T) {
	tests := []struct {
		input string
		num   uint
		black bool
	}{
		{"1.", 1, false},
		{"12.", 12, false},
		{"7...", 7, true},
		{"40 ", 40, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens := collectTokens(t, tt.input)
			if len(tokens) != 1 || tokens[0].Type != MoveNumber {
				t.Fatalf("tokens = %+v, want a single move number", tokens)
			}
			if tokens[0].MoveNum != tt.num || tokens[0].Black != tt.black {
				t.Errorf("MoveNum = %d Black = %v, want %d %v", tokens[0].MoveNum, tokens[0].Black, tt.num, tt.black)
			}
		})
	}
}

func TestLexerBaseOffset(t *testing.T) {
	lexer := NewLexer("Nf3 Nc6", 100)

	tok, err := lexer.NextToken()
	if err != nil {
		t.Fatal(err)
	}
	if tok.Offset != 100 || tok.End != 103 {
		t.Errorf("first token spans %d..%d, want 100..103", tok.Offset, tok.End)
	}

	tok, err = lexer.NextToken()
	if err != nil {
		t.Fatal(err)
	}
	if tok.Offset != 104 {
		t.Errorf("second token Offset = %d, want 104", tok.Offset)
	}
}

func TestLexerVariationBodySkipsBracesInComments(t *testing.T) {
	tokens := collectTokens(t, "(1. d4 {a ) inside} d5)")
	if len(tokens) != 1 {
		t.Fatalf("got %d tokens, want 1", len(tokens))
	}
	if got := tokens[0].Body; got != "1. d4 {a ) inside} d5" {
		t.Errorf("Body = %q", got)
	}
}

func TestTokenTypeString(t *testing.T) {
	if got := MoveToken.String(); got != "MOVE" {
		t.Errorf("MoveToken.String() = %q", got)
	}
	if got := TokenType(999).String(); got != "UNKNOWN" {
		t.Errorf("TokenType(999).String() = %q", got)
	}
}
