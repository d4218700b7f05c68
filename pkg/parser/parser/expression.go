package parser

import (
	"fmt"

	"minisql/pkg/parser/lexer"
	"minisql/pkg/parser/statements"
)

// MaxExpressionDepth bounds recursion in the expression parser. Deeper
// nesting fails with an InvalidExpression error.
const MaxExpressionDepth = 128

const (
	lowestPrecedence = 1
	unaryPrecedence  = 6
)

// binaryOperator returns the operator and binding power of tok in infix
// position. The "*" identifier is multiplication here.
func binaryOperator(tok lexer.Token) (statements.BinaryOperator, int, bool) {
	switch tok.Type {
	case lexer.OR:
		return statements.Or, 1, true
	case lexer.AND:
		return statements.And, 2, true
	case lexer.EQ:
		return statements.Equals, 3, true
	case lexer.NEQ:
		return statements.NotEquals, 3, true
	case lexer.GT:
		return statements.GreaterThan, 4, true
	case lexer.GTE:
		return statements.GreaterThanOrEqual, 4, true
	case lexer.LT:
		return statements.LessThan, 4, true
	case lexer.LTE:
		return statements.LessThanOrEqual, 4, true
	case lexer.PLUS:
		return statements.Add, 5, true
	case lexer.MINUS:
		return statements.Subtract, 5, true
	case lexer.SLASH:
		return statements.Divide, 6, true
	case lexer.IDENTIFIER:
		if tok.IsWildcard() {
			return statements.Multiply, 6, true
		}
	}
	return 0, 0, false
}

// expressionParser is a precedence-climbing parser over the shared stream.
// Its failures are plain text; parseExpression wraps them.
type expressionParser struct {
	s        *tokenStream
	depth    int
	failedAt int
}

// parseExpression reads one expression starting at the stream cursor and
// leaves the cursor on the first token that cannot continue it.
func parseExpression(s *tokenStream) (statements.Expression, error) {
	p := &expressionParser{s: s, failedAt: -1}
	expr, err := p.parse(lowestPrecedence)
	if err != nil {
		return nil, &ParseError{Kind: InvalidExpression, Detail: err.Error(), Position: p.failedAt}
	}
	return expr, nil
}

func (p *expressionParser) fail(tok lexer.Token, format string, args ...any) error {
	p.failedAt = tok.Position
	return fmt.Errorf(format, args...)
}

func (p *expressionParser) parse(minPrecedence int) (statements.Expression, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > MaxExpressionDepth {
		return nil, p.fail(p.s.peek(), "expression nesting exceeds maximum depth of %d", MaxExpressionDepth)
	}

	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for {
		op, precedence, ok := binaryOperator(p.s.peek())
		if !ok || precedence < minPrecedence {
			return left, nil
		}
		p.s.advance()

		right, err := p.parse(precedence + 1)
		if err != nil {
			return nil, err
		}
		left = statements.NewBinary(left, op, right)
	}
}

func (p *expressionParser) parsePrimary() (statements.Expression, error) {
	tok := p.s.advance()

	switch tok.Type {
	case lexer.IDENTIFIER:
		if tok.IsWildcard() {
			return nil, p.fail(tok, "unexpected '*' in expression")
		}
		return statements.NewIdentifier(tok.Value), nil
	case lexer.NUMBER:
		return statements.NewNumber(tok.Number), nil
	case lexer.STRING:
		return statements.NewString(tok.Value), nil
	case lexer.TRUE:
		return statements.NewBoolean(true), nil
	case lexer.FALSE:
		return statements.NewBoolean(false), nil
	case lexer.NULL:
		return &statements.NullLiteral{}, nil
	case lexer.NOT:
		return p.parseUnary(statements.Not)
	case lexer.MINUS:
		return p.parseUnary(statements.Negate)
	case lexer.LPAREN:
		inner, err := p.parse(lowestPrecedence)
		if err != nil {
			return nil, err
		}
		closing := p.s.advance()
		if closing.Type != lexer.RPAREN {
			return nil, p.fail(closing, "expected ')', got %s", closing)
		}
		return statements.NewGrouped(inner), nil
	case lexer.EOF:
		return nil, p.fail(tok, "unexpected end of input")
	case lexer.INVALID:
		return nil, p.fail(tok, "invalid token %q", tok.Value)
	default:
		return nil, p.fail(tok, "unexpected token: %s", tok)
	}
}

func (p *expressionParser) parseUnary(op statements.UnaryOperator) (statements.Expression, error) {
	operand, err := p.parse(unaryPrecedence)
	if err != nil {
		return nil, err
	}
	return statements.NewUnary(op, operand), nil
}
