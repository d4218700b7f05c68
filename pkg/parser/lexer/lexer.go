package lexer

import (
	"strconv"
	"unicode"
)

// singleCharTokens maps single-rune punctuation and operators to their token types.
var singleCharTokens = map[rune]TokenType{
	',': COMMA,
	';': SEMICOLON,
	'(': LPAREN,
	')': RPAREN,
	'+': PLUS,
	'-': MINUS,
	'/': SLASH,
	'=': EQ,
}

// Lexer performs lexical analysis on SQL input strings, breaking them into a
// sequence of tokens with a single read cursor.
type Lexer struct {
	input  []rune
	pos    int
	length int
}

// NewLexer creates a new Lexer for the given SQL input string.
func NewLexer(input string) *Lexer {
	runes := []rune(input)
	return &Lexer{
		input:  runes,
		pos:    0,
		length: len(runes),
	}
}

// Tokenize lexes the whole input and returns the tokens, always terminated
// by exactly one EOF token.
func Tokenize(input string) []Token {
	l := NewLexer(input)
	tokens := make([]Token, 0, len(l.input)/2+1)
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			return tokens
		}
	}
}

// NextToken scans and returns the next token from the input.
// It skips leading whitespace and returns an EOF token when the input is
// exhausted; further calls keep returning EOF at the same position.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	if l.pos >= l.length {
		return Token{Type: EOF, Value: "", Position: l.length}
	}

	start := l.pos
	ch := l.input[l.pos]

	if tt, ok := singleCharTokens[ch]; ok {
		l.pos++
		return l.createToken(tt, string(ch), start)
	}

	switch {
	case ch == '*':
		l.pos++
		return l.createToken(IDENTIFIER, Wildcard, start)
	case ch == '<' || ch == '>' || ch == '!':
		return l.readOperator(start)
	case ch == '\'' || ch == '"':
		return l.readString(start)
	case unicode.IsLetter(ch):
		return l.readIdentifier(start)
	case isDigit(ch):
		return l.readNumber(start)
	default:
		l.pos++
		return l.createToken(INVALID, string(ch), start)
	}
}

// skipWhitespace advances the position past any whitespace characters.
func (l *Lexer) skipWhitespace() {
	for l.pos < l.length && unicode.IsSpace(l.input[l.pos]) {
		l.pos++
	}
}

// peekNext returns the rune after the current one, or 0 at the end.
func (l *Lexer) peekNext() rune {
	if l.pos+1 < l.length {
		return l.input[l.pos+1]
	}
	return 0
}

// readOperator reads <, <=, >, >= and != using one rune of lookahead.
// A '!' that is not followed by '=' is returned as INVALID.
func (l *Lexer) readOperator(start int) Token {
	ch := l.input[l.pos]
	withEq := l.peekNext() == '='

	if withEq {
		l.pos += 2
		switch ch {
		case '<':
			return l.createToken(LTE, "<=", start)
		case '>':
			return l.createToken(GTE, ">=", start)
		default:
			return l.createToken(NEQ, "!=", start)
		}
	}

	l.pos++
	switch ch {
	case '<':
		return l.createToken(LT, "<", start)
	case '>':
		return l.createToken(GT, ">", start)
	default:
		return l.createToken(INVALID, "!", start)
	}
}

// readString reads a string literal delimited by single or double quotes.
// There are no escape sequences; a missing closing quote yields INVALID.
func (l *Lexer) readString(start int) Token {
	quote := l.input[l.pos]
	l.pos++

	begin := l.pos
	for l.pos < l.length && l.input[l.pos] != quote {
		l.pos++
	}

	if l.pos >= l.length {
		return l.createToken(INVALID, string(quote), start)
	}

	value := string(l.input[begin:l.pos])
	l.pos++ // closing quote
	return l.createToken(STRING, value, start)
}

// readNumber reads an unsigned decimal integer literal. Literals that do not
// fit in a uint64 are returned as INVALID with their digits as the value.
func (l *Lexer) readNumber(start int) Token {
	for l.pos < l.length && isDigit(l.input[l.pos]) {
		l.pos++
	}

	digits := string(l.input[start:l.pos])
	n, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return l.createToken(INVALID, digits, start)
	}

	tok := l.createToken(NUMBER, digits, start)
	tok.Number = n
	return tok
}

// readIdentifier reads an identifier or keyword token. It matches the value
// against known SQL keywords and returns the appropriate token type, falling
// back to IDENTIFIER for unrecognized words.
func (l *Lexer) readIdentifier(start int) Token {
	for l.pos < l.length && isIdentChar(l.input[l.pos]) {
		l.pos++
	}

	value := string(l.input[start:l.pos])
	if tt, ok := LookupKeyword(value); ok {
		return l.createToken(tt, value, start)
	}
	return l.createToken(IDENTIFIER, value, start)
}

// createToken constructs a Token with the given type, value, and starting position.
func (l *Lexer) createToken(t TokenType, value string, start int) Token {
	return Token{
		Type:     t,
		Value:    value,
		Position: start,
	}
}

func isIdentChar(ch rune) bool {
	return unicode.IsLetter(ch) || unicode.IsDigit(ch) || ch == '_'
}

// isDigit accepts ASCII decimal digits only; strconv cannot parse others.
func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}
