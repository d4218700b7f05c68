package parser

import (
	"errors"
	"testing"
)

func FuzzParseStatement(f *testing.F) {
	// Seed corpus: representative statements plus common malformed inputs.
	seeds := []string{
		"SELECT * FROM users;",
		"SELECT a, b FROM t ORDER BY a, b;",
		"SELECT a FROM t * FROM",
		"SELECT a FROM t WHERE a > 1 AND NOT b OR c * 2 = -d",
		"CREATE TABLE t (id INT PRIMARY KEY, name VARCHAR NOT NULL, age INT CHECK (age >= 18));",
		"CREATE TABLE t (a BOOL CHECK ((a)))",
		// Truncated / malformed
		"SELECT",
		"CREATE TABLE",
		"CREATE TABLE t (",
		"",
		"SELECT * FROM",
		"WHERE id = 1",
		"DROP TABLE t",
		"SELECT a FROM t WHERE ((((",
		"CREATE TABLE t (a INT CHECK (99999999999999999999))",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		stmt, err := ParseStatement(input)
		if err == nil && stmt == nil {
			t.Fatalf("nil statement without error for %q", input)
		}
		if err != nil {
			if stmt != nil {
				t.Fatalf("partial statement returned with error for %q", input)
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("non-ParseError %T for %q", err, input)
			}
		}
	})
}
