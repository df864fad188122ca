// Package lexer converts pseudocode source text into a token stream.
package lexer

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	cerrors "github.com/SlashZ6/Pseudocode-Interpreter/internal/errors"
	"github.com/SlashZ6/Pseudocode-Interpreter/internal/token"
)

// multiWordKeywords lists every keyword spelling containing internal
// whitespace, sorted longest first by the length of its canonical
// (single-space) text.
var multiWordKeywords []string

func init() {
	for kw := range token.Keywords {
		if strings.Contains(kw, " ") {
			multiWordKeywords = append(multiWordKeywords, kw)
		}
	}
	sort.Slice(multiWordKeywords, func(i, j int) bool {
		return len(multiWordKeywords[i]) > len(multiWordKeywords[j])
	})
}

// Option configures a Lexer at construction time.
type Option func(*Lexer)

// WithFile records a source file name on the Lexer. The lexer's own
// diagnostics do not include it.
func WithFile(name string) Option {
	return func(l *Lexer) { l.file = name }
}

// Lexer scans pseudocode source text into a token stream.
type Lexer struct {
	src    []rune
	pos    int // index into src of the next unread rune
	line   int
	file   string
}

// New creates a Lexer over source, applying any Options.
func New(source string, opts ...Option) *Lexer {
	l := &Lexer{
		src:  []rune(source),
		pos:  0,
		line: 1,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Tokenize scans the entire source and returns its token stream,
// terminated with a single token.EOF. On the first lexical error it stops
// and returns the tokens scanned so far (with no EOF) and that error.
func Tokenize(source string, opts ...Option) ([]token.Token, *cerrors.CompilerError) {
	l := New(source, opts...)
	var tokens []token.Token
	for {
		tok, err := l.Next()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			return tokens, nil
		}
	}
}

func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.src)
}

func (l *Lexer) peekRune(offset int) (rune, bool) {
	idx := l.pos + offset
	if idx < 0 || idx >= len(l.src) {
		return 0, false
	}
	return l.src[idx], true
}

func (l *Lexer) advance() rune {
	r := l.src[l.pos]
	l.pos++
	if r == '\n' {
		l.line++
	}
	return r
}

func (l *Lexer) skipWhitespaceAndComments() {
	for !l.atEnd() {
		r, _ := l.peekRune(0)
		switch {
		case r == '/' && peekEquals(l, 1, '/'):
			for !l.atEnd() {
				if r, _ := l.peekRune(0); r == '\n' {
					break
				}
				l.advance()
			}
		case unicode.IsSpace(r):
			l.advance()
		default:
			return
		}
	}
}

func peekEquals(l *Lexer, offset int, want rune) bool {
	r, ok := l.peekRune(offset)
	return ok && r == want
}

// Next scans and returns the next token. Once EOF is returned, further
// calls keep returning EOF.
func (l *Lexer) Next() (token.Token, *cerrors.CompilerError) {
	l.skipWhitespaceAndComments()

	startLine := l.line
	if l.atEnd() {
		return token.Token{Type: token.EOF, Lexeme: "", Line: startLine}, nil
	}

	if kw, length, ok := l.matchMultiWordKeyword(); ok {
		l.advanceN(length)
		return token.Token{Type: token.Keywords[kw], Lexeme: l.sliceSince(length), Line: startLine}, nil
	}

	r, _ := l.peekRune(0)

	switch {
	case r == '"':
		return l.scanString(startLine)
	case unicode.IsDigit(r):
		return l.scanNumber(startLine), nil
	case isIdentStart(r):
		return l.scanIdentifierOrKeyword(startLine), nil
	default:
		return l.scanOperator(startLine)
	}
}

// matchMultiWordKeyword tries every multi-word keyword spelling against
// the upcoming source, case-insensitively, allowing any run of whitespace
// between the words. It requires a non-identifier boundary immediately
// after the match. Returns the canonical (single-space) keyword text, the
// number of source runes consumed, and whether a match was found.
func (l *Lexer) matchMultiWordKeyword() (string, int, bool) {
	for _, kw := range multiWordKeywords {
		words := strings.Fields(kw)
		consumed, ok := l.tryMatchWords(words)
		if !ok {
			continue
		}
		if next, hasNext := l.peekRune(consumed); hasNext && isIdentPart(next) {
			continue
		}
		return kw, consumed, true
	}
	return "", 0, false
}

func (l *Lexer) tryMatchWords(words []string) (int, bool) {
	offset := 0
	for i, word := range words {
		if i > 0 {
			wsStart := offset
			for {
				r, ok := l.peekRune(offset)
				if !ok || !unicode.IsSpace(r) {
					break
				}
				offset++
			}
			if offset == wsStart {
				return 0, false
			}
		}
		for _, want := range word {
			r, ok := l.peekRune(offset)
			if !ok || unicode.ToLower(r) != unicode.ToLower(want) {
				return 0, false
			}
			offset++
		}
	}
	return offset, true
}

func (l *Lexer) advanceN(n int) {
	for i := 0; i < n; i++ {
		l.advance()
	}
}

func (l *Lexer) sliceSince(n int) string {
	start := l.pos - n
	return string(l.src[start:l.pos])
}

func isIdentStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isIdentPart(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func (l *Lexer) scanIdentifierOrKeyword(line int) token.Token {
	start := l.pos
	for !l.atEnd() {
		r, _ := l.peekRune(0)
		if !isIdentPart(r) {
			break
		}
		l.advance()
	}
	text := string(l.src[start:l.pos])
	if tt, ok := token.Keywords[strings.ToLower(text)]; ok {
		return token.Token{Type: tt, Lexeme: text, Line: line}
	}
	return token.Token{Type: token.IDENTIFIER, Lexeme: text, Line: line}
}

func (l *Lexer) scanNumber(line int) token.Token {
	start := l.pos
	for !l.atEnd() {
		r, _ := l.peekRune(0)
		if !unicode.IsDigit(r) {
			break
		}
		l.advance()
	}
	if r, ok := l.peekRune(0); ok && r == '.' {
		if next, ok2 := l.peekRune(1); ok2 && unicode.IsDigit(next) {
			l.advance()
			for !l.atEnd() {
				r, _ := l.peekRune(0)
				if !unicode.IsDigit(r) {
					break
				}
				l.advance()
			}
		}
	}
	return token.Token{Type: token.NUMBER, Lexeme: string(l.src[start:l.pos]), Line: line}
}

func (l *Lexer) scanString(line int) (token.Token, *cerrors.CompilerError) {
	l.advance() // opening quote
	start := l.pos
	for {
		if l.atEnd() {
			return token.Token{}, cerrors.New(cerrors.SyntaxError, line, "unterminated string literal")
		}
		r, _ := l.peekRune(0)
		if r == '"' {
			text := string(l.src[start:l.pos])
			l.advance() // closing quote
			return token.Token{Type: token.STRING, Lexeme: text, Line: line}, nil
		}
		if r == '\n' {
			return token.Token{}, cerrors.New(cerrors.SyntaxError, line, "unterminated string literal")
		}
		l.advance()
	}
}

type opMatch struct {
	text string
	typ  token.Type
}

var operators = []opMatch{
	{"==", token.EQUAL},
	{"!=", token.NOTEQ},
	{"<=", token.LTE},
	{">=", token.GTE},
	{"=", token.ASSIGN},
	{"<", token.LT},
	{">", token.GT},
	{"+", token.PLUS},
	{"-", token.MINUS},
	{"*", token.STAR},
	{"/", token.SLASH},
	{"%", token.PERCENT},
	{"^", token.POWER},
	{"(", token.LPAREN},
	{")", token.RPAREN},
	{"[", token.LBRACKET},
	{"]", token.RBRACKET},
	{",", token.COMMA},
}

func (l *Lexer) scanOperator(line int) (token.Token, *cerrors.CompilerError) {
	for _, op := range operators {
		if l.matchesLiteral(op.text) {
			l.advanceN(utf8.RuneCountInString(op.text))
			return token.Token{Type: op.typ, Lexeme: op.text, Line: line}, nil
		}
	}
	r, _ := l.peekRune(0)
	l.advance()
	return token.Token{}, cerrors.New(cerrors.SyntaxError, line, "unexpected character %q", r)
}

func (l *Lexer) matchesLiteral(s string) bool {
	runes := []rune(s)
	for i, want := range runes {
		r, ok := l.peekRune(i)
		if !ok || r != want {
			return false
		}
	}
	return true
}
