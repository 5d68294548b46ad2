package grammar

import (
	"testing"
)

func collectTokens(t *testing.T, input string) []Token {
	t.Helper()
	lexer := NewLexer([]byte(input), "test.gram")
	var tokens []Token
	for {
		tok := lexer.NextToken()
		if tok.Kind == TokenWhitespace {
			continue
		}
		tokens = append(tokens, tok)
		if tok.Kind == TokenEOF || tok.Kind == TokenError {
			return tokens
		}
	}
}

func TestLexerTokens(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		kinds   []TokenKind
		literal string
	}{
		{
			name:    "identifier",
			input:   "RecordFieldList",
			kinds:   []TokenKind{TokenIdent, TokenEOF},
			literal: "RecordFieldList",
		},
		{
			name:    "identifier with underscore and digits",
			input:   "int_number2",
			kinds:   []TokenKind{TokenIdent, TokenEOF},
			literal: "int_number2",
		},
		{
			name:    "token literal strips quotes",
			input:   "'fn'",
			kinds:   []TokenKind{TokenLiteral, TokenEOF},
			literal: "fn",
		},
		{
			name:    "punctuation literal",
			input:   "'::'",
			kinds:   []TokenKind{TokenLiteral, TokenEOF},
			literal: "::",
		},
		{
			name:  "symbols",
			input: "= | * ? : ( )",
			kinds: []TokenKind{
				TokenEq, TokenPipe, TokenStar, TokenQuestion,
				TokenColon, TokenLParen, TokenRParen, TokenEOF,
			},
		},
		{
			name:    "comment runs to end of line",
			input:   "// trailing words = 'x'\nA",
			kinds:   []TokenKind{TokenComment, TokenIdent, TokenEOF},
			literal: "// trailing words = 'x'",
		},
		{
			name:  "rule shaped input",
			input: "Rename = 'as' (Name | '_')",
			kinds: []TokenKind{
				TokenIdent, TokenEq, TokenLiteral, TokenLParen,
				TokenIdent, TokenPipe, TokenLiteral, TokenRParen, TokenEOF,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lexer := NewLexer([]byte(tt.input), "test.gram")
			var got []Token
			for {
				tok := lexer.NextToken()
				if tok.Kind == TokenWhitespace {
					continue
				}
				got = append(got, tok)
				if tok.Kind == TokenEOF {
					break
				}
			}
			if len(got) != len(tt.kinds) {
				t.Fatalf("got %d tokens, want %d", len(got), len(tt.kinds))
			}
			for i, kind := range tt.kinds {
				if got[i].Kind != kind {
					t.Errorf("token %d: kind = %s, want %s", i, got[i].Kind, kind)
				}
			}
			if tt.literal != "" && got[0].Literal != tt.literal {
				t.Errorf("token 0: literal = %q, want %q", got[0].Literal, tt.literal)
			}
		})
	}
}

func TestLexerPositions(t *testing.T) {
	input := "A = B\nC = D"
	lexer := NewLexer([]byte(input), "test.gram")

	var idents []Token
	for {
		tok := lexer.NextToken()
		if tok.Kind == TokenEOF {
			break
		}
		if tok.Kind == TokenIdent {
			idents = append(idents, tok)
		}
	}

	if len(idents) != 4 {
		t.Fatalf("got %d identifiers, want 4", len(idents))
	}
	checks := []struct {
		literal string
		line    int
		column  int
	}{
		{"A", 1, 1},
		{"B", 1, 5},
		{"C", 2, 1},
		{"D", 2, 5},
	}
	for i, want := range checks {
		got := idents[i].Span.Start
		if idents[i].Literal != want.literal || got.Line != want.line || got.Column != want.column {
			t.Errorf("ident %d: %q at %d:%d, want %q at %d:%d",
				i, idents[i].Literal, got.Line, got.Column, want.literal, want.line, want.column)
		}
		if got.File != "test.gram" {
			t.Errorf("ident %d: file = %q, want test.gram", i, got.File)
		}
	}
}

func TestLexerErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unterminated literal at end of input", "'fn"},
		{"literal may not span lines", "'fn\n'"},
		{"stray character", ";"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := collectTokens(t, tt.input)
			last := tokens[len(tokens)-1]
			if last.Kind != TokenError {
				t.Errorf("last token kind = %s, want invalid input", last.Kind)
			}
		})
	}
}

func TestLexerEmptyInput(t *testing.T) {
	lexer := NewLexer(nil, "test.gram")
	tok := lexer.NextToken()
	if tok.Kind != TokenEOF {
		t.Errorf("kind = %s, want end of input", tok.Kind)
	}
}
