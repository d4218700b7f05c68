package parser

import (
	"minisql/pkg/parser/lexer"
	"minisql/pkg/parser/statements"
)

type SelectParser struct{}

// Parse parses a SELECT statement.
//
// Syntax:
//
//	SELECT col [, col ...] FROM table [* [,...] FROM] [WHERE expr] [ORDER BY col [, col ...]] [;]
//
// A column may be the "*" wildcard. The bracketed "* FROM" tail after the
// table name appends a wildcard column and must restate FROM.
func (sp *SelectParser) Parse(s *tokenStream) (*statements.SelectStatement, error) {
	stmt := statements.NewSelectStatement("")

	parseFuncs := []func(*tokenStream, *statements.SelectStatement) error{
		parseSelectColumns,
		parseFrom,
		parseWildcardTail,
		parseWhere,
		parseOrderBy,
	}

	for _, parseFunc := range parseFuncs {
		if err := parseFunc(s, stmt); err != nil {
			return nil, err
		}
	}

	s.skipIf(lexer.SEMICOLON)
	return stmt, nil
}

// parseSelectColumns reads SELECT and the column list up to and including FROM.
func parseSelectColumns(s *tokenStream, stmt *statements.SelectStatement) error {
	if err := s.expectKeyword(lexer.SELECT); err != nil {
		return err
	}

	for {
		tok := s.advance()
		switch tok.Type {
		case lexer.IDENTIFIER:
			stmt.Columns = append(stmt.Columns, tok.Value)
		case lexer.EOF:
			return unexpectedEnd(tok)
		default:
			return newGeneralError(tok.Position, "unexpected token in column list: %s", tok)
		}

		tok = s.advance()
		switch tok.Type {
		case lexer.COMMA:
			continue
		case lexer.FROM:
			return nil
		case lexer.EOF:
			return unexpectedEnd(tok)
		default:
			return newGeneralError(tok.Position, "unexpected token in column list: %s", tok)
		}
	}
}

func parseFrom(s *tokenStream, stmt *statements.SelectStatement) error {
	table, err := s.expectIdentifier()
	if err != nil {
		return err
	}
	stmt.Table = table
	return nil
}

// parseWildcardTail handles "* [, ...] FROM" directly after the table name.
func parseWildcardTail(s *tokenStream, stmt *statements.SelectStatement) error {
	if !s.peek().IsWildcard() {
		return nil
	}
	s.advance()
	stmt.Columns = append(stmt.Columns, lexer.Wildcard)

	for s.skipIf(lexer.COMMA) {
	}
	return s.expectKeyword(lexer.FROM)
}

func parseWhere(s *tokenStream, stmt *statements.SelectStatement) error {
	if !s.skipIf(lexer.WHERE) {
		return nil
	}

	expr, err := parseExpression(s)
	if err != nil {
		return err
	}
	stmt.Selection = expr
	return nil
}

// parseOrderBy reads ORDER BY col [, col ...]; the list must end at ';' or
// the end of input.
func parseOrderBy(s *tokenStream, stmt *statements.SelectStatement) error {
	if !s.skipIf(lexer.ORDER) {
		return nil
	}
	if err := s.expectKeyword(lexer.BY); err != nil {
		return err
	}

	var cols []string
	for {
		name, err := s.expectIdentifier()
		if err != nil {
			return err
		}
		cols = append(cols, name)

		tok := s.advance()
		switch tok.Type {
		case lexer.COMMA:
			continue
		case lexer.SEMICOLON, lexer.EOF:
			stmt.OrderBy = cols
			return nil
		default:
			return newGeneralError(tok.Position, "unexpected token in ORDER BY: %s", tok)
		}
	}
}
