package lexer_test

import (
	"testing"

	"github.com/SlashZ6/Pseudocode-Interpreter/internal/lexer"
	"github.com/SlashZ6/Pseudocode-Interpreter/internal/token"
)

func typesOf(t *testing.T, toks []token.Token) []token.Type {
	t.Helper()
	types := make([]token.Type, len(toks))
	for i, tok := range toks {
		types[i] = tok.Type
	}
	return types
}

func TestTokenizeMultiWordKeywordsArbitraryWhitespace(t *testing.T) {
	toks, err := lexer.Tokenize("End    If")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 2 || toks[0].Type != token.END_IF {
		t.Fatalf("got %v, want single END_IF token then EOF", typesOf(t, toks))
	}
}

func TestTokenizeLongestMatchKeywordOverIdentifierPrefix(t *testing.T) {
	toks, err := lexer.Tokenize("endIfValue")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toks[0].Type != token.IDENTIFIER || toks[0].Lexeme != "endIfValue" {
		t.Fatalf("expected a single identifier, got %v", toks[0])
	}
}

func TestTokenizeCaseInsensitiveKeywords(t *testing.T) {
	toks, err := lexer.Tokenize("DECLARE integer X")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []token.Type{token.DECLARE, token.INTEGER_TYPE, token.IDENTIFIER, token.EOF}
	got := typesOf(t, toks)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestTokenizeLineComment(t *testing.T) {
	toks, err := lexer.Tokenize("Set x = 1 // comment\nSet y = 2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, tok := range toks {
		if tok.Lexeme == "comment" {
			t.Fatalf("comment text leaked into token stream: %v", toks)
		}
	}
	if toks[len(toks)-2].Line != 2 {
		t.Fatalf("expected final Set on line 2, token stream: %v", toks)
	}
}

func TestTokenizeNumberAndString(t *testing.T) {
	toks, err := lexer.Tokenize(`3.14 "hi there"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toks[0].Type != token.NUMBER || toks[0].Lexeme != "3.14" {
		t.Fatalf("got %v", toks[0])
	}
	if toks[1].Type != token.STRING || toks[1].Lexeme != "hi there" {
		t.Fatalf("got %v", toks[1])
	}
}

func TestTokenizeUnterminatedStringIsSyntaxError(t *testing.T) {
	_, err := lexer.Tokenize(`"unterminated`)
	if err == nil {
		t.Fatalf("expected a syntax error")
	}
}

func TestTokenizeTwoCharOperatorsBeforeOneChar(t *testing.T) {
	toks, err := lexer.Tokenize("a != b >= c")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []token.Type{token.IDENTIFIER, token.NOTEQ, token.IDENTIFIER, token.GTE, token.IDENTIFIER, token.EOF}
	got := typesOf(t, toks)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token[%d] = %v, want %v (full: %v)", i, got[i], want[i], got)
		}
	}
}

func TestTokenizeUnexpectedCharacter(t *testing.T) {
	_, err := lexer.Tokenize("a @ b")
	if err == nil {
		t.Fatalf("expected an error for '@'")
	}
}
