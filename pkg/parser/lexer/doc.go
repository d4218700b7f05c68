// Package lexer implements the tokenizer for minisql's SQL dialect.
//
// The lexer converts a raw SQL string into a stream of typed tokens that the
// parser can consume. Keyword matching is case-insensitive, but the original
// spelling of every token is preserved in Token.Value so identifiers keep
// their case.
//
// # Usage
//
//	l := lexer.NewLexer("SELECT * FROM users")
//	for {
//	    tok := l.NextToken()
//	    if tok.Type == lexer.EOF {
//	        break
//	    }
//	    fmt.Printf("type=%s value=%q\n", tok.Type, tok.Value)
//	}
//
// Tokenize does the same in one call and returns the EOF-terminated slice.
//
// # Token types
//
// Keywords (SELECT, FROM, WHERE, ORDER, BY, CREATE, TABLE, INT, BOOL,
// VARCHAR, NOT, NULL, PRIMARY, KEY, CHECK, AND, OR, TRUE, FALSE), literals
// (NUMBER, STRING), identifiers (IDENTIFIER), operators and punctuation
// (+, -, /, =, !=, <, <=, >, >=, (, ), COMMA, SEMICOLON), the INVALID marker
// and the sentinel EOF token are all defined as TokenType constants.
//
// # Wildcard
//
// The asterisk is always emitted as an IDENTIFIER token with value "*". The
// parser decides from context whether it means "all columns" or
// multiplication.
//
// # Errors
//
// The lexer never fails. Unknown characters, a lone '!', unterminated
// strings and integer literals that overflow uint64 are returned as INVALID
// tokens and left for the parser to report.
package lexer
