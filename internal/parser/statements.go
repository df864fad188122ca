package parser

import (
	"github.com/SlashZ6/Pseudocode-Interpreter/internal/ast"
	cerrors "github.com/SlashZ6/Pseudocode-Interpreter/internal/errors"
	"github.com/SlashZ6/Pseudocode-Interpreter/internal/token"
)

// parseStatementsUntil parses statements until the current token is one of
// the given terminators (without consuming the terminator).
func (p *Parser) parseStatementsUntil(terminators ...token.Type) ([]ast.Statement, *cerrors.CompilerError) {
	var stmts []ast.Statement
	for !p.atAny(terminators) && !p.check(token.EOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

func (p *Parser) atAny(types []token.Type) bool {
	for _, tt := range types {
		if p.check(tt) {
			return true
		}
	}
	return false
}

func (p *Parser) parseStatement() (ast.Statement, *cerrors.CompilerError) {
	switch p.current().Type {
	case token.DECLARE, token.CONSTANT:
		return p.parseVariableDeclaration()
	case token.SET:
		return p.parseAssignment()
	case token.DISPLAY:
		return p.parseDisplayStatement()
	case token.INPUT:
		return p.parseInputStatement()
	case token.IF:
		return p.parseIfStatement()
	case token.WHILE:
		return p.parseWhileStatement()
	case token.DO:
		return p.parseDoStatement()
	case token.FOR:
		return p.parseForStatement()
	case token.CALL:
		return p.parseCallStatement()
	case token.RETURN:
		return p.parseReturnStatement()
	default:
		return nil, p.syntaxErrorf("unexpected token %q", p.current().Lexeme)
	}
}

func (p *Parser) parseAssignment() (ast.Statement, *cerrors.CompilerError) {
	line := p.current().Line
	p.advance() // Set
	lvalue, err := p.parsePostfix()
	if err != nil {
		return nil, err
	}
	switch lvalue.(type) {
	case *ast.Identifier, *ast.ArrayAccess:
	default:
		return nil, cerrors.New(cerrors.SemanticError, line, "invalid assignment target")
	}
	if _, err := p.expect(token.ASSIGN); err != nil {
		return nil, err
	}
	rhs, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return ast.NewAssignment(line, lvalue, rhs), nil
}

func (p *Parser) parseDisplayStatement() (ast.Statement, *cerrors.CompilerError) {
	line := p.current().Line
	p.advance() // Display
	if p.check(token.TAP) {
		return nil, p.syntaxErrorf("Display cannot start with Tap")
	}
	var items []ast.DisplayItem
	for {
		if p.match(token.TAP) {
			items = append(items, ast.DisplayItem{IsTap: true})
		} else {
			expr, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			items = append(items, ast.DisplayItem{Expr: expr})
		}
		if !p.match(token.COMMA) {
			break
		}
	}
	return ast.NewDisplayStatement(line, items), nil
}

func (p *Parser) parseInputStatement() (ast.Statement, *cerrors.CompilerError) {
	line := p.current().Line
	p.advance() // Input
	name, err := p.expect(token.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	return ast.NewInputStatement(line, name.Lexeme), nil
}

func (p *Parser) parseIfStatement() (ast.Statement, *cerrors.CompilerError) {
	line := p.current().Line
	p.advance() // If
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.THEN); err != nil {
		return nil, err
	}
	thenBody, err := p.parseStatementsUntil(token.ELSE, token.END_IF)
	if err != nil {
		return nil, err
	}

	var elseBody []ast.Statement
	if p.match(token.ELSE) {
		if p.check(token.IF) {
			nested, err := p.parseIfStatement()
			if err != nil {
				return nil, err
			}
			elseBody = []ast.Statement{nested}
			return ast.NewIfStatement(line, cond, thenBody, elseBody), nil
		}
		elseBody, err = p.parseStatementsUntil(token.END_IF)
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.END_IF); err != nil {
		return nil, err
	}
	return ast.NewIfStatement(line, cond, thenBody, elseBody), nil
}

func (p *Parser) parseWhileStatement() (ast.Statement, *cerrors.CompilerError) {
	line := p.current().Line
	p.advance() // While
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	body, err := p.parseStatementsUntil(token.END_WHILE)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.END_WHILE); err != nil {
		return nil, err
	}
	return ast.NewWhileStatement(line, cond, body), nil
}

// parseDoStatement parses "Do ... While expr" or "Do ... Until expr",
// disambiguated by which trailing keyword follows the body.
func (p *Parser) parseDoStatement() (ast.Statement, *cerrors.CompilerError) {
	line := p.current().Line
	p.advance() // Do
	body, err := p.parseStatementsUntil(token.WHILE, token.UNTIL)
	if err != nil {
		return nil, err
	}
	switch p.current().Type {
	case token.WHILE:
		p.advance()
		cond, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return ast.NewDoWhileStatement(line, body, cond), nil
	case token.UNTIL:
		p.advance()
		cond, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return ast.NewDoUntilStatement(line, body, cond), nil
	default:
		return nil, p.syntaxErrorf("expected While or Until to close Do block")
	}
}

func (p *Parser) parseForStatement() (ast.Statement, *cerrors.CompilerError) {
	line := p.current().Line
	p.advance() // For
	counter, err := p.expect(token.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.ASSIGN); err != nil {
		return nil, err
	}
	start, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.TO); err != nil {
		return nil, err
	}
	end, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	body, err := p.parseStatementsUntil(token.END_FOR)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.END_FOR); err != nil {
		return nil, err
	}
	return ast.NewForStatement(line, counter.Lexeme, start, end, body), nil
}

func (p *Parser) parseCallStatement() (ast.Statement, *cerrors.CompilerError) {
	line := p.current().Line
	p.advance() // Call
	name, err := p.expect(token.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	args, err := p.parseCallArguments()
	if err != nil {
		return nil, err
	}
	return ast.NewCallStatement(line, name.Lexeme, args), nil
}

func (p *Parser) parseCallArguments() ([]ast.Expression, *cerrors.CompilerError) {
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	var args []ast.Expression
	if p.check(token.RPAREN) {
		p.advance()
		return args, nil
	}
	for {
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if !p.match(token.COMMA) {
			break
		}
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return args, nil
}

func (p *Parser) parseReturnStatement() (ast.Statement, *cerrors.CompilerError) {
	line := p.current().Line
	p.advance() // Return
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return ast.NewReturnStatement(line, expr), nil
}
