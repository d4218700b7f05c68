package lexer

import (
	"strconv"
	"strings"
)

type TokenType int

const (
	SELECT TokenType = iota
	FROM
	WHERE
	ORDER
	BY
	CREATE
	TABLE
	INT
	BOOL
	VARCHAR
	NOT
	NULL
	PRIMARY
	KEY
	CHECK
	AND
	OR
	TRUE
	FALSE

	IDENTIFIER
	STRING
	NUMBER

	COMMA
	SEMICOLON
	LPAREN
	RPAREN

	PLUS
	MINUS
	SLASH
	EQ
	NEQ
	GT
	GTE
	LT
	LTE

	INVALID
	EOF
)

// Wildcard is the value of the IDENTIFIER token produced for '*'.
const Wildcard = "*"

// keywords maps uppercase SQL keyword strings to their token types.
var keywords = map[string]TokenType{
	"SELECT":  SELECT,
	"FROM":    FROM,
	"WHERE":   WHERE,
	"ORDER":   ORDER,
	"BY":      BY,
	"CREATE":  CREATE,
	"TABLE":   TABLE,
	"INT":     INT,
	"BOOL":    BOOL,
	"VARCHAR": VARCHAR,
	"NOT":     NOT,
	"NULL":    NULL,
	"PRIMARY": PRIMARY,
	"KEY":     KEY,
	"CHECK":   CHECK,
	"AND":     AND,
	"OR":      OR,
	"TRUE":    TRUE,
	"FALSE":   FALSE,
}

// LookupKeyword reports the keyword token type for word, ignoring case.
func LookupKeyword(word string) (TokenType, bool) {
	tt, ok := keywords[strings.ToUpper(word)]
	return tt, ok
}

// IsKeyword returns true if t is one of the reserved words.
func (t TokenType) IsKeyword() bool {
	return t >= SELECT && t <= FALSE
}

func (t TokenType) String() string {
	switch t {
	case SELECT:
		return "SELECT"
	case FROM:
		return "FROM"
	case WHERE:
		return "WHERE"
	case ORDER:
		return "ORDER"
	case BY:
		return "BY"
	case CREATE:
		return "CREATE"
	case TABLE:
		return "TABLE"
	case INT:
		return "INT"
	case BOOL:
		return "BOOL"
	case VARCHAR:
		return "VARCHAR"
	case NOT:
		return "NOT"
	case NULL:
		return "NULL"
	case PRIMARY:
		return "PRIMARY"
	case KEY:
		return "KEY"
	case CHECK:
		return "CHECK"
	case AND:
		return "AND"
	case OR:
		return "OR"
	case TRUE:
		return "TRUE"
	case FALSE:
		return "FALSE"
	case IDENTIFIER:
		return "IDENTIFIER"
	case STRING:
		return "STRING"
	case NUMBER:
		return "NUMBER"
	case COMMA:
		return "COMMA"
	case SEMICOLON:
		return "SEMICOLON"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	case PLUS:
		return "PLUS"
	case MINUS:
		return "MINUS"
	case SLASH:
		return "SLASH"
	case EQ:
		return "EQ"
	case NEQ:
		return "NEQ"
	case GT:
		return "GT"
	case GTE:
		return "GTE"
	case LT:
		return "LT"
	case LTE:
		return "LTE"
	case INVALID:
		return "INVALID"
	case EOF:
		return "EOF"
	default:
		return "UNKNOWN"
	}
}

// Token is a single lexical unit. Position is the rune offset of the first
// character of the token in the input.
type Token struct {
	Type     TokenType
	Value    string
	Number   uint64
	Position int
}

// IsWildcard reports whether the token is the '*' identifier.
func (t Token) IsWildcard() bool {
	return t.Type == IDENTIFIER && t.Value == Wildcard
}

// String describes the token for error messages, e.g. IDENTIFIER("users").
func (t Token) String() string {
	switch {
	case t.Type == EOF:
		return "EOF"
	case t.Type.IsKeyword():
		return "keyword " + t.Type.String()
	case t.Type == IDENTIFIER, t.Type == STRING, t.Type == NUMBER, t.Type == INVALID:
		return t.Type.String() + "(" + strconv.Quote(t.Value) + ")"
	default:
		return "'" + t.Value + "'"
	}
}
