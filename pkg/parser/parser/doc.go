// Package parser converts SQL text into an abstract syntax tree (AST).
//
// ParseStatement is the main entry point. It accepts a SQL string, lexes it
// into an EOF-terminated token sequence, and returns a typed
// statements.Statement value. ParseTokens accepts an already lexed sequence
// and ParseExpression parses a standalone expression.
//
// # Supported statements
//
//   - SELECT: column list (including the "*" wildcard), FROM, WHERE, ORDER BY
//   - CREATE TABLE: INT, BOOL and VARCHAR columns with NOT NULL,
//     PRIMARY KEY and CHECK (expr) constraints
//
// # Structure
//
// The statement parser is recursive descent with one token of lookahead.
// Expressions are parsed by precedence climbing; from loosest to tightest
// binding: OR, AND, = and !=, comparisons, + and -, * and /. NOT and unary
// minus bind at the tightest level. Both parsers share one token stream and
// one cursor, so the statement parser continues exactly where an expression
// ended.
//
// # Usage
//
//	stmt, err := parser.ParseStatement("SELECT id, name FROM users ORDER BY name")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// Type-switch on *statements.SelectStatement or *statements.CreateStatement.
//
// # Error handling
//
// Every failure is a *ParseError whose Kind is one of UnexpectedEnd,
// ExpectedKeyword, ExpectedIdentifier, InvalidExpression,
// UnknownStartOfStatement or General. The first error aborts the parse and no
// partial statement is returned. Use errors.Is with the Err* sentinels to
// test the kind. The parser does not panic on malformed input.
package parser
