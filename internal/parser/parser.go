// Package parser implements a recursive-descent parser that turns a token
// stream into an ast.Program.
package parser

import (
	"strconv"

	"github.com/SlashZ6/Pseudocode-Interpreter/internal/ast"
	cerrors "github.com/SlashZ6/Pseudocode-Interpreter/internal/errors"
	"github.com/SlashZ6/Pseudocode-Interpreter/internal/lexer"
	"github.com/SlashZ6/Pseudocode-Interpreter/internal/token"
)

// Parser holds a token cursor over the full token stream produced by the
// lexer, plus the original source (for error context).
type Parser struct {
	tokens []token.Token
	pos    int
	source string
}

// Parse lexes and parses source into an ast.Program.
func Parse(source string) (*ast.Program, *cerrors.CompilerError) {
	toks, lexErr := lexer.Tokenize(source)
	if lexErr != nil {
		return nil, lexErr.WithSource("", source)
	}
	p := &Parser{tokens: toks, source: source}
	prog, err := p.parseProgram()
	if err != nil {
		return nil, err.WithSource("", source)
	}
	return prog, nil
}

func (p *Parser) current() token.Token {
	return p.tokens[p.pos]
}

func (p *Parser) peek(offset int) token.Token {
	idx := p.pos + offset
	if idx >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[idx]
}

func (p *Parser) advance() token.Token {
	t := p.current()
	if t.Type != token.EOF {
		p.pos++
	}
	return t
}

func (p *Parser) check(tt token.Type) bool {
	return p.current().Type == tt
}

func (p *Parser) match(tt token.Type) bool {
	if p.check(tt) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) expect(tt token.Type) (token.Token, *cerrors.CompilerError) {
	if p.check(tt) {
		return p.advance(), nil
	}
	return token.Token{}, cerrors.New(cerrors.SyntaxError, p.current().Line,
		"expected %s but found %q", tt, p.current().Lexeme)
}

func (p *Parser) syntaxErrorf(format string, args ...any) *cerrors.CompilerError {
	return cerrors.New(cerrors.SyntaxError, p.current().Line, format, args...)
}

func (p *Parser) parseProgram() (*ast.Program, *cerrors.CompilerError) {
	prog := &ast.Program{}
	for !p.check(token.EOF) {
		stmt, err := p.parseTopLevel()
		if err != nil {
			return nil, err
		}
		prog.Declarations = append(prog.Declarations, stmt)
	}
	return prog, nil
}

// parseTopLevel parses a single top-level item: a module declaration, a
// function declaration, or any statement (for module-free scripts).
func (p *Parser) parseTopLevel() (ast.Statement, *cerrors.CompilerError) {
	switch p.current().Type {
	case token.MODULE:
		return p.parseModuleDeclaration()
	case token.FUNCTION:
		return p.parseFunctionDeclaration()
	default:
		return p.parseStatement()
	}
}

func parseIntegerText(text string) (int64, error) {
	return strconv.ParseInt(text, 10, 64)
}

func parseRealText(text string) (float64, error) {
	return strconv.ParseFloat(text, 64)
}
