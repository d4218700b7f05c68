package parser

import (
	"minisql/pkg/parser/lexer"
)

// tokenStream is the single cursor shared by the statement parser and the
// expression parser. The underlying slice is always EOF-terminated and the
// cursor never moves past the EOF token.
type tokenStream struct {
	tokens []lexer.Token
	pos    int
}

func newTokenStream(tokens []lexer.Token) *tokenStream {
	n := len(tokens)
	if n > 0 && tokens[n-1].Type == lexer.EOF {
		return &tokenStream{tokens: tokens}
	}

	end := 0
	if n > 0 {
		last := tokens[n-1]
		end = last.Position + len([]rune(last.Value))
	}
	terminated := make([]lexer.Token, n, n+1)
	copy(terminated, tokens)
	terminated = append(terminated, lexer.Token{Type: lexer.EOF, Position: end})
	return &tokenStream{tokens: terminated}
}

// peek returns the current token without consuming it.
func (s *tokenStream) peek() lexer.Token {
	return s.tokens[s.pos]
}

// advance consumes and returns the current token. At EOF it keeps
// returning EOF.
func (s *tokenStream) advance() lexer.Token {
	tok := s.tokens[s.pos]
	if tok.Type != lexer.EOF {
		s.pos++
	}
	return tok
}

// skipIf consumes the current token if it has the given type.
func (s *tokenStream) skipIf(t lexer.TokenType) bool {
	if s.peek().Type == t {
		s.advance()
		return true
	}
	return false
}

// consumed is the number of tokens read so far.
func (s *tokenStream) consumed() int {
	return s.pos
}

// expectKeyword consumes the current token and checks it is the keyword kw.
func (s *tokenStream) expectKeyword(kw lexer.TokenType) error {
	tok := s.advance()
	switch {
	case tok.Type == kw:
		return nil
	case tok.Type == lexer.EOF:
		return unexpectedEnd(tok)
	default:
		return &ParseError{Kind: ExpectedKeyword, Detail: kw.String(), Found: tok.String(), Position: tok.Position}
	}
}

// expectIdentifier consumes a table or column name. The "*" wildcard is not
// a name.
func (s *tokenStream) expectIdentifier() (string, error) {
	tok := s.advance()
	switch {
	case tok.Type == lexer.IDENTIFIER && !tok.IsWildcard():
		return tok.Value, nil
	case tok.Type == lexer.EOF:
		return "", unexpectedEnd(tok)
	default:
		return "", &ParseError{Kind: ExpectedIdentifier, Found: tok.String(), Position: tok.Position}
	}
}

// expect consumes a punctuation token of the given type.
func (s *tokenStream) expect(t lexer.TokenType, symbol string) error {
	tok := s.advance()
	switch {
	case tok.Type == t:
		return nil
	case tok.Type == lexer.EOF:
		return unexpectedEnd(tok)
	default:
		return &ParseError{Kind: General, Detail: "expected '" + symbol + "'", Found: tok.String(), Position: tok.Position}
	}
}

func unexpectedEnd(tok lexer.Token) *ParseError {
	return &ParseError{Kind: UnexpectedEnd, Position: tok.Position}
}
