package ui

import (
	"minisql/pkg/ui/base"

	"github.com/charmbracelet/lipgloss"
)

var (
	palette = base.DarkPalette

	primaryColor   = palette.Primary
	secondaryColor = palette.Secondary
	accentColor    = palette.Accent
	warningColor   = palette.Warning
	errorColor     = palette.Error

	bgDark   = palette.Background
	bgMedium = palette.Surface
	bgLight  = palette.Border

	textPrimary   = palette.Text
	textSecondary = palette.TextDim
	textMuted     = palette.Muted
)

// Styles for different UI components
var (
	appStyle = lipgloss.NewStyle().
			Background(bgDark).
			Foreground(textPrimary).
			Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#8B5CF6")).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true).
			Padding(0, 2).
			MarginBottom(1)

	badgeStyle = lipgloss.NewStyle().
			Background(secondaryColor).
			Foreground(bgDark).
			Bold(true).
			Padding(0, 1).
			MarginRight(2)

	statusBarStyle = lipgloss.NewStyle().
			Background(bgMedium).
			Foreground(textSecondary).
			Padding(0, 1)

	successStyle = lipgloss.NewStyle().
			Background(accentColor).
			Foreground(bgDark).
			Bold(true).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Background(errorColor).
			Foreground(textPrimary).
			Bold(true).
			Padding(0, 1)

	errorTextStyle = lipgloss.NewStyle().Foreground(errorColor)

	hintStyle = lipgloss.NewStyle().Foreground(textMuted).Italic(true)

	warningStyle = lipgloss.NewStyle().Foreground(warningColor)

	dumpStyle = lipgloss.NewStyle().Foreground(textSecondary)

	editorStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(0, 1)

	resultStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(bgLight).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)
)
