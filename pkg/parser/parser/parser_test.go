package parser

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"minisql/pkg/parser/lexer"
	"minisql/pkg/parser/statements"
)

func TestParseStatement_Dispatch(t *testing.T) {
	tests := []struct {
		sql      string
		expected statements.StatementType
	}{
		{"SELECT a FROM t", statements.Select},
		{"select * from t;", statements.Select},
		{"CREATE TABLE t (a INT)", statements.CreateTable},
		{"  create TABLE t (a bool);", statements.CreateTable},
	}

	for _, tt := range tests {
		stmt, err := ParseStatement(tt.sql)
		if err != nil {
			t.Errorf("%q: unexpected error: %v", tt.sql, err)
			continue
		}
		if stmt.GetType() != tt.expected {
			t.Errorf("%q: expected %v, got %v", tt.sql, tt.expected, stmt.GetType())
		}
	}
}

func TestParseStatement_UnknownStart(t *testing.T) {
	tests := []string{
		"DROP TABLE users",
		"INSERT INTO t VALUES (1)",
		"users",
		"42",
		";",
		"@",
		"FROM t",
	}

	for _, sql := range tests {
		stmt, err := ParseStatement(sql)
		if !errors.Is(err, ErrUnknownStartOfStatement) {
			t.Errorf("%q: expected UnknownStartOfStatement, got %v", sql, err)
		}
		if stmt != nil {
			t.Errorf("%q: expected no statement, got %+v", sql, stmt)
		}
	}
}

func TestParseStatement_UnknownStartDescribesToken(t *testing.T) {
	_, err := ParseStatement("DROP TABLE users")

	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if pe.Detail != `IDENTIFIER("DROP")` {
		t.Errorf("expected detail to describe the token, got %q", pe.Detail)
	}
	if pe.Position != 0 {
		t.Errorf("expected position 0, got %d", pe.Position)
	}
}

func TestParseStatement_EmptyInput(t *testing.T) {
	for _, sql := range []string{"", "   ", "\n\t"} {
		_, err := ParseStatement(sql)
		if !errors.Is(err, ErrGeneral) {
			t.Errorf("%q: expected General, got %v", sql, err)
			continue
		}
		if !strings.Contains(err.Error(), "empty input") {
			t.Errorf("%q: expected 'empty input', got %q", sql, err.Error())
		}
	}
}

func TestParseTokens_WithoutEOF(t *testing.T) {
	tokens := []lexer.Token{
		{Type: lexer.SELECT, Value: "SELECT", Position: 0},
		{Type: lexer.IDENTIFIER, Value: "a", Position: 7},
		{Type: lexer.FROM, Value: "FROM", Position: 9},
		{Type: lexer.IDENTIFIER, Value: "t", Position: 14},
	}
	original := append([]lexer.Token(nil), tokens...)

	stmt, err := ParseTokens(tokens)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stmt.(*statements.SelectStatement).Table != "t" {
		t.Errorf("unexpected statement %+v", stmt)
	}
	if !reflect.DeepEqual(tokens, original) {
		t.Error("expected caller's tokens to be left unchanged")
	}
}

func TestParseTokens_EmptySlice(t *testing.T) {
	_, err := ParseTokens(nil)
	if !errors.Is(err, ErrGeneral) {
		t.Fatalf("expected General, got %v", err)
	}
}

func TestParseTokens_UnexpectedEndPosition(t *testing.T) {
	_, err := ParseTokens(lexer.Tokenize("SELECT a FROM"))

	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if pe.Kind != UnexpectedEnd {
		t.Fatalf("expected UnexpectedEnd, got %v", pe.Kind)
	}
	if pe.Position != 13 {
		t.Errorf("expected position 13, got %d", pe.Position)
	}
}

func TestParseStatement_FreshValuesPerCall(t *testing.T) {
	first, err := ParseStatement("SELECT a FROM t")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := ParseStatement("SELECT a FROM t")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first.(*statements.SelectStatement).Columns[0] = "changed"
	if second.(*statements.SelectStatement).Columns[0] != "a" {
		t.Error("expected statements from separate calls to share nothing")
	}
}

func TestParseError_Messages(t *testing.T) {
	tests := []struct {
		err      *ParseError
		expected string
	}{
		{&ParseError{Kind: UnexpectedEnd, Position: 5}, "unexpected end of input (position 5)"},
		{&ParseError{Kind: ExpectedKeyword, Detail: "FROM", Found: "','", Position: 9}, "expected keyword FROM, got ',' (position 9)"},
		{&ParseError{Kind: ExpectedIdentifier, Found: "EOF", Position: -1}, "expected an identifier, got EOF"},
		{&ParseError{Kind: InvalidExpression, Detail: "unexpected end of input", Position: -1}, "invalid expression: unexpected end of input"},
		{&ParseError{Kind: UnknownStartOfStatement, Detail: `IDENTIFIER("DROP")`, Position: 0}, `unknown start of statement: IDENTIFIER("DROP") (position 0)`},
		{&ParseError{Kind: General, Detail: "empty input", Position: -1}, "empty input"},
	}

	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.expected {
			t.Errorf("Error() = %q, want %q", got, tt.expected)
		}
	}
}

func TestParseError_IsMatchesKindOnly(t *testing.T) {
	err := &ParseError{Kind: ExpectedKeyword, Detail: "BY", Position: 3}

	if !errors.Is(err, ErrExpectedKeyword) {
		t.Error("expected match on same kind")
	}
	if errors.Is(err, ErrGeneral) {
		t.Error("expected no match on different kind")
	}
	if errors.Is(err, errors.New("expected keyword BY")) {
		t.Error("expected no match on unrelated error")
	}
}

func TestErrorKind_String(t *testing.T) {
	kinds := map[ErrorKind]string{
		UnexpectedEnd:           "UnexpectedEnd",
		ExpectedKeyword:         "ExpectedKeyword",
		ExpectedIdentifier:      "ExpectedIdentifier",
		InvalidExpression:       "InvalidExpression",
		UnknownStartOfStatement: "UnknownStartOfStatement",
		General:                 "General",
		ErrorKind(42):           "Unknown",
	}
	for kind, expected := range kinds {
		if got := kind.String(); got != expected {
			t.Errorf("String() = %q, want %q", got, expected)
		}
	}
}

func TestTokenStream_AdvanceStopsAtEOF(t *testing.T) {
	s := newTokenStream(lexer.Tokenize("a"))

	if tok := s.advance(); tok.Type != lexer.IDENTIFIER {
		t.Fatalf("expected IDENTIFIER, got %s", tok.Type)
	}
	for i := 0; i < 3; i++ {
		if tok := s.advance(); tok.Type != lexer.EOF {
			t.Fatalf("expected EOF, got %s", tok.Type)
		}
	}
	if s.consumed() != 1 {
		t.Errorf("expected cursor to stop at 1, got %d", s.consumed())
	}
}

func BenchmarkParseStatement_Select(b *testing.B) {
	sql := "SELECT id, name, email FROM users WHERE age >= 18 AND (status = 'active' OR score * 2 > 100) ORDER BY name, id;"
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := ParseStatement(sql); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParseStatement_CreateTable(b *testing.B) {
	sql := "CREATE TABLE users (id INT PRIMARY KEY, name VARCHAR NOT NULL, age INT CHECK (age >= 18 AND age < 150), active BOOL);"
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := ParseStatement(sql); err != nil {
			b.Fatal(err)
		}
	}
}
