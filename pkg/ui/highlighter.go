package ui

import (
	"strings"
	"unicode"

	"minisql/pkg/parser/lexer"
	"minisql/pkg/ui/base"

	"github.com/charmbracelet/lipgloss"
)

// TokenClass groups token types that share a highlight style.
type TokenClass int

const (
	ClassPlain TokenClass = iota
	ClassKeyword
	ClassWildcard
	ClassString
	ClassNumber
	ClassOperator
	ClassInvalid
)

// Classify returns the highlight class of tok.
func Classify(tok lexer.Token) TokenClass {
	switch {
	case tok.Type.IsKeyword():
		return ClassKeyword
	case tok.IsWildcard():
		return ClassWildcard
	case tok.Type == lexer.IDENTIFIER, tok.Type == lexer.EOF:
		return ClassPlain
	case tok.Type == lexer.STRING:
		return ClassString
	case tok.Type == lexer.NUMBER:
		return ClassNumber
	case tok.Type == lexer.INVALID:
		return ClassInvalid
	default:
		return ClassOperator
	}
}

// SQLHighlighter renders SQL text with token classes styled. Tokens come
// from the real lexer, so what is highlighted is exactly what the parser
// will see.
type SQLHighlighter struct {
	styles map[TokenClass]lipgloss.Style
}

func NewSQLHighlighter() *SQLHighlighter {
	return newSQLHighlighter(lipgloss.DefaultRenderer(), base.DraculaSyntax)
}

func newSQLHighlighter(r *lipgloss.Renderer, p base.SyntaxPalette) *SQLHighlighter {
	return &SQLHighlighter{
		styles: map[TokenClass]lipgloss.Style{
			ClassPlain:    r.NewStyle(),
			ClassKeyword:  r.NewStyle().Foreground(p.Keyword).Bold(true),
			ClassWildcard: r.NewStyle().Foreground(p.Wildcard).Bold(true),
			ClassString:   r.NewStyle().Foreground(p.String),
			ClassNumber:   r.NewStyle().Foreground(p.Number),
			ClassOperator: r.NewStyle().Foreground(p.Operator),
			ClassInvalid:  r.NewStyle().Foreground(p.Invalid).Underline(true),
		},
	}
}

// Highlight styles each token of sql in place. Whitespace between tokens
// is kept as written.
func (h *SQLHighlighter) Highlight(sql string) string {
	runes := []rune(sql)
	tokens := lexer.Tokenize(sql)

	var b strings.Builder
	b.WriteString(string(runes[:tokens[0].Position]))

	for i := 0; i < len(tokens)-1; i++ {
		tok := tokens[i]
		span := runes[tok.Position:tokens[i+1].Position]

		end := len(span)
		for end > 0 && unicode.IsSpace(span[end-1]) {
			end--
		}

		b.WriteString(h.styles[Classify(tok)].Render(string(span[:end])))
		b.WriteString(string(span[end:]))
	}

	return b.String()
}
