package parser

import (
	"fmt"
	"strings"
)

// ErrorKind classifies a ParseError.
type ErrorKind int

const (
	// UnexpectedEnd means a token was required but the input was exhausted.
	UnexpectedEnd ErrorKind = iota
	// ExpectedKeyword means a specific keyword was required; Detail names it.
	ExpectedKeyword
	// ExpectedIdentifier means a table or column name was required.
	ExpectedIdentifier
	// InvalidExpression wraps the expression parser's message in Detail.
	InvalidExpression
	// UnknownStartOfStatement means the first token starts no known statement.
	UnknownStartOfStatement
	// General covers punctuation, type and operator mismatches.
	General
)

func (k ErrorKind) String() string {
	switch k {
	case UnexpectedEnd:
		return "UnexpectedEnd"
	case ExpectedKeyword:
		return "ExpectedKeyword"
	case ExpectedIdentifier:
		return "ExpectedIdentifier"
	case InvalidExpression:
		return "InvalidExpression"
	case UnknownStartOfStatement:
		return "UnknownStartOfStatement"
	case General:
		return "General"
	default:
		return "Unknown"
	}
}

// ParseError is the only error type returned by the parser. The first error
// aborts the parse; no partial statement is ever returned with it.
type ParseError struct {
	Kind ErrorKind
	// Detail is the keyword name, expression message, offending token or
	// general message, depending on Kind.
	Detail string
	// Found describes the token that was present instead, if any.
	Found string
	// Position is the rune offset of the offending token, or -1.
	Position int
}

// Sentinels for errors.Is; they match any ParseError of the same kind.
var (
	ErrUnexpectedEnd           = &ParseError{Kind: UnexpectedEnd, Position: -1}
	ErrExpectedKeyword         = &ParseError{Kind: ExpectedKeyword, Position: -1}
	ErrExpectedIdentifier      = &ParseError{Kind: ExpectedIdentifier, Position: -1}
	ErrInvalidExpression       = &ParseError{Kind: InvalidExpression, Position: -1}
	ErrUnknownStartOfStatement = &ParseError{Kind: UnknownStartOfStatement, Position: -1}
	ErrGeneral                 = &ParseError{Kind: General, Position: -1}
)

func (e *ParseError) Error() string {
	var b strings.Builder

	switch e.Kind {
	case UnexpectedEnd:
		b.WriteString("unexpected end of input")
	case ExpectedKeyword:
		b.WriteString("expected keyword " + e.Detail)
	case ExpectedIdentifier:
		b.WriteString("expected an identifier")
	case InvalidExpression:
		b.WriteString("invalid expression: " + e.Detail)
	case UnknownStartOfStatement:
		b.WriteString("unknown start of statement: " + e.Detail)
	default:
		b.WriteString(e.Detail)
	}

	if e.Found != "" {
		b.WriteString(", got " + e.Found)
	}
	if e.Position >= 0 {
		b.WriteString(fmt.Sprintf(" (position %d)", e.Position))
	}
	return b.String()
}

// Is reports whether target is a ParseError of the same kind.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	return ok && t.Kind == e.Kind
}

func newGeneralError(pos int, format string, args ...any) *ParseError {
	return &ParseError{Kind: General, Detail: fmt.Sprintf(format, args...), Position: pos}
}
