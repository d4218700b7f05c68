package base

import "github.com/charmbracelet/lipgloss"

// ColorPalette defines a consistent color scheme
type ColorPalette struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
	Muted     lipgloss.Color

	Background lipgloss.Color
	Surface    lipgloss.Color
	Border     lipgloss.Color
	Text       lipgloss.Color
	TextDim    lipgloss.Color
}

// DarkPalette is the default dark theme palette
var DarkPalette = ColorPalette{
	Primary:   lipgloss.Color("#7C3AED"), // Purple
	Secondary: lipgloss.Color("#06B6D4"), // Cyan
	Accent:    lipgloss.Color("#10B981"), // Emerald
	Warning:   lipgloss.Color("#F59E0B"), // Amber
	Error:     lipgloss.Color("#EF4444"), // Red
	Muted:     lipgloss.Color("#94A3B8"), // Slate

	Background: lipgloss.Color("#0F172A"),
	Surface:    lipgloss.Color("#1E293B"),
	Border:     lipgloss.Color("#334155"),
	Text:       lipgloss.Color("#F8FAFC"),
	TextDim:    lipgloss.Color("#CBD5E1"),
}

// SyntaxPalette colors token classes in highlighted SQL.
type SyntaxPalette struct {
	Keyword  lipgloss.Color
	Wildcard lipgloss.Color
	String   lipgloss.Color
	Number   lipgloss.Color
	Operator lipgloss.Color
	Invalid  lipgloss.Color
}

// DraculaSyntax is the default syntax palette.
var DraculaSyntax = SyntaxPalette{
	Keyword:  lipgloss.Color("#FF79C6"),
	Wildcard: lipgloss.Color("#8BE9FD"),
	String:   lipgloss.Color("#F1FA8C"),
	Number:   lipgloss.Color("#BD93F9"),
	Operator: lipgloss.Color("#FFB86C"),
	Invalid:  lipgloss.Color("#FF5555"),
}
