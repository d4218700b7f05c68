package shell

import (
	"errors"

	dberror "minisql/pkg/error"
	"minisql/pkg/parser/parser"
)

// Error codes attached to parse failures.
const (
	CodeSyntaxError       = "SYNTAX_ERROR"
	CodeUnexpectedEnd     = "UNEXPECTED_END"
	CodeInvalidExpression = "INVALID_EXPRESSION"
	CodeUnknownStatement  = "UNKNOWN_STATEMENT"
	CodeReadFailed        = "READ_FAILED"
)

var parseHints = map[parser.ErrorKind]string{
	parser.UnexpectedEnd:           "The statement stopped early; look for a missing name, type or closing parenthesis.",
	parser.ExpectedKeyword:         "Clauses go in the order SELECT ... FROM ... WHERE ... ORDER BY ...",
	parser.ExpectedIdentifier:      "Table and column names must be plain identifiers, not keywords or '*'.",
	parser.InvalidExpression:       "Expressions combine names, numbers, strings, TRUE, FALSE and NULL with operators.",
	parser.UnknownStartOfStatement: "Only SELECT and CREATE TABLE statements are supported.",
}

var parseCodes = map[parser.ErrorKind]string{
	parser.UnexpectedEnd:           CodeUnexpectedEnd,
	parser.InvalidExpression:       CodeInvalidExpression,
	parser.UnknownStartOfStatement: CodeUnknownStatement,
}

// FromParseError converts a parser failure into a user-category DBError.
// Errors that are not parse errors are wrapped as system errors.
func FromParseError(err error) *dberror.DBError {
	if err == nil {
		return nil
	}

	var pe *parser.ParseError
	if !errors.As(err, &pe) {
		return dberror.Wrap(err, CodeSyntaxError, "ParseStatement", "parser")
	}

	code, ok := parseCodes[pe.Kind]
	if !ok {
		code = CodeSyntaxError
	}

	dbErr := dberror.New(dberror.ErrCategoryUser, code, pe.Error()).
		WithHint(parseHints[pe.Kind]).
		WithCause(pe)
	dbErr.Operation = "ParseStatement"
	dbErr.Component = "parser"
	return dbErr
}
