package parser

import (
	"github.com/SlashZ6/Pseudocode-Interpreter/internal/ast"
	cerrors "github.com/SlashZ6/Pseudocode-Interpreter/internal/errors"
	"github.com/SlashZ6/Pseudocode-Interpreter/internal/token"
)

func (p *Parser) parseModuleDeclaration() (ast.Statement, *cerrors.CompilerError) {
	line := p.current().Line
	p.advance() // Module
	name, err := p.expect(token.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	params, err := p.parseParameterList()
	if err != nil {
		return nil, err
	}
	body, err := p.parseStatementsUntil(token.END_MODULE)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.END_MODULE); err != nil {
		return nil, err
	}
	return ast.NewModuleDeclaration(line, name.Lexeme, params, body), nil
}

func (p *Parser) parseFunctionDeclaration() (ast.Statement, *cerrors.CompilerError) {
	line := p.current().Line
	p.advance() // Function
	returnType, err := p.parseDataType()
	if err != nil {
		return nil, err
	}
	name, err := p.expect(token.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	params, err := p.parseParameterList()
	if err != nil {
		return nil, err
	}
	body, err := p.parseStatementsUntil(token.END_FUNCTION)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.END_FUNCTION); err != nil {
		return nil, err
	}
	return ast.NewFunctionDeclaration(line, name.Lexeme, returnType, params, body), nil
}

// parseDataType consumes one of the type keywords and returns its
// ast.DataType.
func (p *Parser) parseDataType() (ast.DataType, *cerrors.CompilerError) {
	switch p.current().Type {
	case token.INTEGER_TYPE:
		p.advance()
		return ast.IntegerType, nil
	case token.REAL_TYPE:
		p.advance()
		return ast.RealType, nil
	case token.STRING_TYPE:
		p.advance()
		return ast.StringType, nil
	default:
		return ast.AutoType, p.syntaxErrorf("expected a data type but found %q", p.current().Lexeme)
	}
}

func (p *Parser) isTypeKeyword() bool {
	switch p.current().Type {
	case token.INTEGER_TYPE, token.REAL_TYPE, token.STRING_TYPE:
		return true
	default:
		return false
	}
}

// parseParameterList parses "(" [param {"," param}] ")". Each param is:
// optional Ref, optional type keyword, optional Ref (when not already
// given), required identifier, optional trailing "[]". Ref may appear
// before or after the type keyword, never after the identifier.
func (p *Parser) parseParameterList() ([]ast.Parameter, *cerrors.CompilerError) {
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	var params []ast.Parameter
	if p.check(token.RPAREN) {
		p.advance()
		return params, nil
	}
	for {
		param, err := p.parseParameter()
		if err != nil {
			return nil, err
		}
		params = append(params, param)
		if !p.match(token.COMMA) {
			break
		}
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return params, nil
}

func (p *Parser) parseParameter() (ast.Parameter, *cerrors.CompilerError) {
	var param ast.Parameter
	param.DataType = ast.AutoType

	if p.match(token.REF) {
		param.IsReference = true
	}
	if p.isTypeKeyword() {
		dt, err := p.parseDataType()
		if err != nil {
			return param, err
		}
		param.DataType = dt
	}
	if !param.IsReference && p.match(token.REF) {
		param.IsReference = true
	}
	name, err := p.expect(token.IDENTIFIER)
	if err != nil {
		return param, err
	}
	param.Name = name.Lexeme
	if p.match(token.LBRACKET) {
		param.IsArray = true
		if _, err := p.expect(token.RBRACKET); err != nil {
			return param, err
		}
	}
	return param, nil
}

// parseVariableDeclaration parses a Declare or Constant statement. The
// caller has identified the leading keyword via p.current().Type; this
// function consumes it, then parses the data type and declarators.
func (p *Parser) parseVariableDeclaration() (ast.Statement, *cerrors.CompilerError) {
	line := p.current().Line
	isConstant := p.check(token.CONSTANT)
	p.advance() // Declare or Constant

	dataType, err := p.parseDataType()
	if err != nil {
		return nil, err
	}

	var decls []ast.Declarator
	for {
		decl, err := p.parseDeclarator(isConstant)
		if err != nil {
			return nil, err
		}
		decls = append(decls, decl)
		if !p.match(token.COMMA) {
			break
		}
	}
	return ast.NewVariableDeclaration(line, dataType, isConstant, decls), nil
}

func (p *Parser) parseDeclarator(isConstant bool) (ast.Declarator, *cerrors.CompilerError) {
	var decl ast.Declarator
	name, err := p.expect(token.IDENTIFIER)
	if err != nil {
		return decl, err
	}
	decl.Identifier = name.Lexeme

	isArray := false
	if p.match(token.LBRACKET) {
		isArray = true
		size, err := p.parseExpression()
		if err != nil {
			return decl, err
		}
		decl.Size = size
		if _, err := p.expect(token.RBRACKET); err != nil {
			return decl, err
		}
	}

	if p.match(token.ASSIGN) {
		if isArray {
			elements, err := p.parseExpressionList()
			if err != nil {
				return decl, err
			}
			decl.Initializer = ast.NewArrayLiteral(name.Line, elements)
		} else {
			init, err := p.parseExpression()
			if err != nil {
				return decl, err
			}
			decl.Initializer = init
		}
	} else if isConstant {
		return decl, cerrors.New(cerrors.SemanticError, name.Line,
			"constant %q must have an initializer", name.Lexeme)
	}
	return decl, nil
}

func (p *Parser) parseExpressionList() ([]ast.Expression, *cerrors.CompilerError) {
	var exprs []ast.Expression
	for {
		e, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
		if !p.match(token.COMMA) {
			break
		}
	}
	return exprs, nil
}
