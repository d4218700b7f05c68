package parser

import (
	"minisql/pkg/logging"
	"minisql/pkg/parser/lexer"
	"minisql/pkg/parser/statements"
)

// ParseStatement parses one SQL statement and returns its AST.
// It lexes the whole input up front and then runs ParseTokens.
//
// Supported SQL statements:
//   - SELECT: column list or wildcard, optional WHERE and ORDER BY
//   - CREATE TABLE: typed columns with NOT NULL, PRIMARY KEY and CHECK constraints
//
// Every failure is a *ParseError; no partial statement is returned with it.
func ParseStatement(sql string) (statements.Statement, error) {
	return ParseTokens(lexer.Tokenize(sql))
}

// ParseTokens parses one statement from an already lexed token sequence.
// A sequence without a trailing EOF is treated as if it had one.
func ParseTokens(tokens []lexer.Token) (statements.Statement, error) {
	log := logging.WithComponent("parser")
	s := newTokenStream(tokens)

	stmt, err := dispatch(s)
	if err != nil {
		log.Debug("parse failed", "tokens", len(s.tokens), "consumed", s.consumed(), "error", err)
		return nil, err
	}

	log.Debug("statement parsed", "kind", stmt.GetType().String(), "tokens", len(s.tokens), "consumed", s.consumed())
	return stmt, nil
}

func dispatch(s *tokenStream) (statements.Statement, error) {
	tok := s.peek()

	switch tok.Type {
	case lexer.SELECT:
		return (&SelectParser{}).Parse(s)
	case lexer.CREATE:
		return (&CreateStatementParser{}).Parse(s)
	case lexer.EOF:
		return nil, newGeneralError(tok.Position, "empty input")
	default:
		return nil, &ParseError{Kind: UnknownStartOfStatement, Detail: tok.String(), Position: tok.Position}
	}
}

// ParseExpression parses a standalone expression such as "age >= 18".
// The whole input must be consumed.
func ParseExpression(sql string) (statements.Expression, error) {
	s := newTokenStream(lexer.Tokenize(sql))

	expr, err := parseExpression(s)
	if err != nil {
		return nil, err
	}

	if tok := s.peek(); tok.Type != lexer.EOF {
		return nil, &ParseError{Kind: InvalidExpression, Detail: "unexpected token after expression: " + tok.String(), Position: tok.Position}
	}
	return expr, nil
}
