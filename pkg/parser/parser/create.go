package parser

import (
	"minisql/pkg/parser/lexer"
	"minisql/pkg/parser/statements"
)

type CreateStatementParser struct{}

// Parse parses a CREATE TABLE statement.
//
// Syntax:
//
//	CREATE TABLE name ( column_def [, column_def ...] ) [;]
//	column_def := name {INT | BOOL | VARCHAR} [NOT NULL | PRIMARY KEY | CHECK ( expr )]...
func (cp *CreateStatementParser) Parse(s *tokenStream) (*statements.CreateStatement, error) {
	if err := s.expectKeyword(lexer.CREATE); err != nil {
		return nil, err
	}
	if err := s.expectKeyword(lexer.TABLE); err != nil {
		return nil, err
	}

	tableName, err := s.expectIdentifier()
	if err != nil {
		return nil, err
	}
	stmt := statements.NewCreateStatement(tableName)

	if err := s.expect(lexer.LPAREN, "("); err != nil {
		return nil, err
	}

	for {
		if err := parseColumnDefinition(s, stmt); err != nil {
			return nil, err
		}

		tok := s.advance()
		if tok.Type == lexer.COMMA {
			continue
		}
		if tok.Type == lexer.RPAREN {
			break
		}
		if tok.Type == lexer.EOF {
			return nil, unexpectedEnd(tok)
		}
		return nil, &ParseError{Kind: General, Detail: "expected ',' or ')'", Found: tok.String(), Position: tok.Position}
	}

	s.skipIf(lexer.SEMICOLON)
	return stmt, nil
}

func parseColumnDefinition(s *tokenStream, stmt *statements.CreateStatement) error {
	name, err := s.expectIdentifier()
	if err != nil {
		return err
	}

	dataType, err := parseDataType(s.advance())
	if err != nil {
		return err
	}

	constraints, err := parseConstraints(s)
	if err != nil {
		return err
	}

	stmt.AddColumn(name, dataType, constraints)
	return nil
}

func parseDataType(tok lexer.Token) (statements.DBType, error) {
	switch tok.Type {
	case lexer.INT:
		return statements.Int, nil
	case lexer.BOOL:
		return statements.Bool, nil
	case lexer.VARCHAR:
		return statements.Varchar, nil
	case lexer.EOF:
		return 0, unexpectedEnd(tok)
	default:
		return 0, newGeneralError(tok.Position, "unknown data type: %s", tok)
	}
}

// parseConstraints reads constraint clauses until a token that starts none.
// It returns nil when the column has no constraints.
func parseConstraints(s *tokenStream) ([]statements.Constraint, error) {
	var constraints []statements.Constraint

	for {
		switch s.peek().Type {
		case lexer.NOT:
			s.advance()
			if err := s.expectKeyword(lexer.NULL); err != nil {
				return nil, err
			}
			constraints = append(constraints, statements.NotNullConstraint())
		case lexer.PRIMARY:
			s.advance()
			if err := s.expectKeyword(lexer.KEY); err != nil {
				return nil, err
			}
			constraints = append(constraints, statements.PrimaryKeyConstraint())
		case lexer.CHECK:
			s.advance()
			expr, err := readCheckExpression(s)
			if err != nil {
				return nil, err
			}
			constraints = append(constraints, statements.CheckConstraint(expr))
		default:
			return constraints, nil
		}
	}
}

func readCheckExpression(s *tokenStream) (statements.Expression, error) {
	if err := s.expect(lexer.LPAREN, "("); err != nil {
		return nil, err
	}
	expr, err := parseExpression(s)
	if err != nil {
		return nil, err
	}
	if err := s.expect(lexer.RPAREN, ")"); err != nil {
		return nil, err
	}
	return expr, nil
}
