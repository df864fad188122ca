package parser

import (
	"github.com/SlashZ6/Pseudocode-Interpreter/internal/ast"
	cerrors "github.com/SlashZ6/Pseudocode-Interpreter/internal/errors"
	"github.com/SlashZ6/Pseudocode-Interpreter/internal/token"
)

// parseExpression is the entry point into the precedence ladder, lowest
// precedence (Or) first.
func (p *Parser) parseExpression() (ast.Expression, *cerrors.CompilerError) {
	return p.parseOr()
}

func (p *Parser) parseOr() (ast.Expression, *cerrors.CompilerError) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.check(token.OR) {
		line := p.current().Line
		p.advance()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinary(line, left, ast.BinOr, right)
	}
	return left, nil
}

func (p *Parser) parseAnd() (ast.Expression, *cerrors.CompilerError) {
	left, err := p.parseEquality()
	if err != nil {
		return nil, err
	}
	for p.check(token.AND) {
		line := p.current().Line
		p.advance()
		right, err := p.parseEquality()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinary(line, left, ast.BinAnd, right)
	}
	return left, nil
}

func (p *Parser) parseEquality() (ast.Expression, *cerrors.CompilerError) {
	left, err := p.parseRelational()
	if err != nil {
		return nil, err
	}
	for p.check(token.EQUAL) || p.check(token.NOTEQ) || p.check(token.ASSIGN) {
		op := p.current().Type
		line := p.current().Line
		p.advance()
		right, err := p.parseRelational()
		if err != nil {
			return nil, err
		}
		binOp := ast.BinEqual
		if op == token.NOTEQ {
			binOp = ast.BinNotEqual
		}
		left = ast.NewBinary(line, left, binOp, right)
	}
	return left, nil
}

func (p *Parser) parseRelational() (ast.Expression, *cerrors.CompilerError) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for {
		var op ast.BinaryOp
		switch p.current().Type {
		case token.LT:
			op = ast.BinLess
		case token.LTE:
			op = ast.BinLessEqual
		case token.GT:
			op = ast.BinGreater
		case token.GTE:
			op = ast.BinGreaterEqual
		default:
			return left, nil
		}
		line := p.current().Line
		p.advance()
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinary(line, left, op, right)
	}
}

func (p *Parser) parseAdditive() (ast.Expression, *cerrors.CompilerError) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for p.check(token.PLUS) || p.check(token.MINUS) {
		op := ast.BinAdd
		if p.current().Type == token.MINUS {
			op = ast.BinSub
		}
		line := p.current().Line
		p.advance()
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinary(line, left, op, right)
	}
	return left, nil
}

func (p *Parser) parseMultiplicative() (ast.Expression, *cerrors.CompilerError) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.check(token.STAR) || p.check(token.SLASH) || p.check(token.PERCENT) || p.check(token.MOD) {
		var op ast.BinaryOp
		switch p.current().Type {
		case token.STAR:
			op = ast.BinMul
		case token.SLASH:
			op = ast.BinDiv
		default:
			op = ast.BinMod
		}
		line := p.current().Line
		p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinary(line, left, op, right)
	}
	return left, nil
}

func (p *Parser) parseUnary() (ast.Expression, *cerrors.CompilerError) {
	switch p.current().Type {
	case token.MINUS:
		line := p.current().Line
		p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ast.NewUnary(line, ast.UnaryNegate, right), nil
	case token.NOT:
		line := p.current().Line
		p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ast.NewUnary(line, ast.UnaryNot, right), nil
	default:
		return p.parsePostfix()
	}
}

// parsePostfix parses a primary expression followed by any chain of call
// `(...)` or index `[...]` suffixes, left-associative.
func (p *Parser) parsePostfix() (ast.Expression, *cerrors.CompilerError) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		switch p.current().Type {
		case token.LBRACKET:
			line := p.current().Line
			p.advance()
			index, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.RBRACKET); err != nil {
				return nil, err
			}
			expr = ast.NewArrayAccess(line, expr, index)
		case token.LPAREN:
			ident, ok := expr.(*ast.Identifier)
			if !ok {
				return nil, p.syntaxErrorf("only a function name may be called")
			}
			args, err := p.parseCallArguments()
			if err != nil {
				return nil, err
			}
			expr = ast.NewFunctionCall(ident.Line(), ident.Name, args)
		default:
			return expr, nil
		}
	}
}

func (p *Parser) parsePrimary() (ast.Expression, *cerrors.CompilerError) {
	tok := p.current()
	switch tok.Type {
	case token.NUMBER:
		p.advance()
		return ast.NewNumberLiteral(tok.Line, tok.Lexeme), nil
	case token.STRING:
		p.advance()
		return ast.NewStringLiteral(tok.Line, tok.Lexeme), nil
	case token.IDENTIFIER:
		p.advance()
		return ast.NewIdentifier(tok.Line, tok.Lexeme), nil
	case token.LPAREN:
		p.advance()
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return ast.NewGrouping(tok.Line, inner), nil
	case token.POWER:
		return nil, p.syntaxErrorf("unexpected token '^'; use the power(base, exponent) function")
	default:
		return nil, p.syntaxErrorf("unexpected token %q", tok.Lexeme)
	}
}
