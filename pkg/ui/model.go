package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"minisql/pkg/logging"
	"minisql/pkg/parser/lexer"
	"minisql/pkg/shell"
	"minisql/pkg/ui/base"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// CheckCommand parses every line of a file instead of the line itself,
// e.g. `\check queries.sql`.
const CheckCommand = `\check`

const (
	historyLimit = 500
	editorHeight = 3
	tokensHeight = 8
)

// Model represents the application state
type Model struct {
	editor      textarea.Model
	output      viewport.Model
	tokenTable  table.Model
	spinner     spinner.Model
	help        help.Model
	highlighter *SQLHighlighter
	history     *history
	keys        keyMap

	width      int
	height     int
	workers    int
	checking   bool
	showHelp   bool
	showTokens bool
	quitting   bool

	last      *shell.Result
	evaluated int
	failed    int
}

// NewModel builds the interactive shell. workers bounds the concurrency of
// the check command.
func NewModel(workers int) Model {
	ta := textarea.New()
	ta.Placeholder = "SELECT * FROM users;  (enter to parse, exit to quit)"
	ta.CharLimit = 5000
	ta.ShowLineNumbers = false
	ta.SetHeight(editorHeight)
	ta.KeyMap.InsertNewline.SetEnabled(false)
	ta.Focus()

	ta.FocusedStyle.CursorLine = lipgloss.NewStyle().Background(bgLight)
	ta.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(textMuted)
	ta.FocusedStyle.Text = lipgloss.NewStyle().Foreground(textPrimary)

	vp := viewport.New(80, 10)
	vp.Style = resultStyle

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Pos", Width: 6},
			{Title: "Type", Width: 12},
			{Title: "Value", Width: 32},
		}),
		table.WithRows([]table.Row{}),
		table.WithFocused(false),
		table.WithHeight(tokensHeight),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(primaryColor).
		BorderBottom(true).
		Bold(true).
		Foreground(primaryColor)
	s.Selected = s.Selected.
		Foreground(textPrimary).
		Bold(false)
	t.SetStyles(s)

	sp := spinner.New()
	sp.Spinner = spinner.Points
	sp.Style = lipgloss.NewStyle().Foreground(primaryColor)

	return Model{
		editor:      ta,
		output:      vp,
		tokenTable:  t,
		spinner:     sp,
		help:        help.New(),
		highlighter: NewSQLHighlighter(),
		history:     newHistory(historyLimit),
		keys:        keys,
		workers:     workers,
	}
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		if m.checking {
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.Submit):
			return m.submit()

		case key.Matches(msg, m.keys.HistoryPrev):
			if line, ok := m.history.prev(); ok {
				m.editor.SetValue(line)
			}
			return m, nil

		case key.Matches(msg, m.keys.HistoryNext):
			if line, ok := m.history.next(); ok {
				m.editor.SetValue(line)
			}
			return m, nil

		case key.Matches(msg, m.keys.Clear):
			m.editor.Reset()
			m.last = nil
			m.output.SetContent("")
			m.tokenTable.SetRows([]table.Row{})
			return m, nil

		case key.Matches(msg, m.keys.Tokens):
			m.showTokens = !m.showTokens
			m.updateLayout()
			return m, nil

		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, m.keys.PageUp, m.keys.PageDown):
			var cmd tea.Cmd
			m.output, cmd = m.output.Update(msg)
			return m, cmd
		}

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.output, cmd = m.output.Update(msg)
		return m, cmd

	case checkResultMsg:
		m.checking = false
		m.output.SetContent(m.renderCheck(msg))
		m.output.GotoTop()
		return m, nil

	case spinner.TickMsg:
		if !m.checking {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

// submit runs the pipeline once on the editor contents.
func (m Model) submit() (tea.Model, tea.Cmd) {
	line := m.editor.Value()
	if strings.TrimSpace(line) == "" {
		return m, nil
	}
	if shell.IsExit(line) {
		m.quitting = true
		return m, tea.Quit
	}

	m.history.add(line)
	m.editor.Reset()

	if path, ok := parseCheckCommand(line); ok {
		if path == "" {
			m.output.SetContent(errorTextStyle.Render("usage: " + CheckCommand + " <file>"))
			return m, nil
		}
		m.checking = true
		return m, tea.Batch(m.spinner.Tick, m.checkFile(path))
	}

	res := shell.Evaluate(line)
	m.last = &res
	m.evaluated++
	if !res.OK() {
		m.failed++
	}

	m.tokenTable.SetRows(tokenRows(line))
	m.output.SetContent(m.renderResult(res))
	m.output.GotoTop()
	return m, nil
}

func parseCheckCommand(line string) (string, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 || fields[0] != CheckCommand {
		return "", false
	}
	return strings.Join(fields[1:], " "), true
}

func tokenRows(line string) []table.Row {
	tokens := lexer.Tokenize(line)
	rows := make([]table.Row, len(tokens))
	for i, tok := range tokens {
		rows[i] = table.Row{strconv.Itoa(tok.Position), tok.Type.String(), tok.Value}
	}
	return rows
}

type checkResultMsg struct {
	path     string
	results  []shell.Result
	err      error
	duration time.Duration
}

func (m Model) checkFile(path string) tea.Cmd {
	workers := m.workers
	return func() tea.Msg {
		start := time.Now()
		results, err := shell.CheckFile(context.Background(), path, workers)
		if err != nil {
			logging.WithError(err).Error("check failed", "path", path)
		}
		return checkResultMsg{
			path:     path,
			results:  results,
			err:      err,
			duration: time.Since(start),
		}
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		m.renderHeader(),
		m.renderEditor(),
		m.renderOutput(),
	}

	if m.showTokens {
		sections = append(sections, m.renderTokens())
	}

	sections = append(sections, m.renderStatusBar())

	if m.showHelp {
		sections = append(sections, m.renderHelp())
	}

	return appStyle.Render(strings.Join(sections, "\n"))
}

func (m Model) renderHeader() string {
	title := titleStyle.Render("minisql")
	badge := badgeStyle.Render("SELECT | CREATE TABLE")

	header := lipgloss.JoinHorizontal(lipgloss.Left, title, "  ", badge)

	separator := strings.Repeat("─", base.Clamp(m.width-4, 0, m.width))
	return header + "\n" + lipgloss.NewStyle().Foreground(bgLight).Render(separator)
}

func (m Model) renderEditor() string {
	return fmt.Sprintf("%s\n%s", labelStyle.Render("SQL"), editorStyle.Render(m.editor.View()))
}

func (m Model) renderOutput() string {
	if m.checking {
		content := lipgloss.JoinHorizontal(lipgloss.Left, m.spinner.View(), " Checking file...")
		return lipgloss.NewStyle().Foreground(primaryColor).Padding(1, 0).Render(content)
	}
	return fmt.Sprintf("%s\n%s", labelStyle.Render("Result"), m.output.View())
}

func (m Model) renderTokens() string {
	return fmt.Sprintf("%s\n%s", labelStyle.Render("Tokens"), m.tokenTable.View())
}

func (m Model) renderResult(res shell.Result) string {
	var b strings.Builder

	b.WriteString(m.highlighter.Highlight(res.Input) + "\n\n")

	if res.Err != nil {
		b.WriteString(errorStyle.Render(" ERROR ") + " " + errorTextStyle.Render(res.Err.Message) + "\n")
		if res.Err.Hint != "" {
			b.WriteString(hintStyle.Render(res.Err.Hint) + "\n")
		}
		return b.String()
	}

	b.WriteString(successStyle.Render(" ✓ "+res.Statement.GetType().String()+" ") + "\n")
	b.WriteString(dumpStyle.Render(strings.TrimSuffix(res.Dump, "\n")) + "\n")
	for _, w := range res.Warnings {
		b.WriteString(warningStyle.Render("warning: "+w) + "\n")
	}
	return b.String()
}

func (m Model) renderCheck(msg checkResultMsg) string {
	if msg.err != nil {
		return errorStyle.Render(" ERROR ") + " " + errorTextStyle.Render(msg.err.Error())
	}

	var report strings.Builder
	if err := shell.WriteReport(&report, msg.results); err != nil {
		return errorTextStyle.Render(err.Error())
	}

	header := successStyle.Render(fmt.Sprintf(" ✓ %s checked in %v ", msg.path, msg.duration.Round(time.Microsecond)))
	return header + "\n\n" + report.String()
}

func (m Model) renderStatusBar() string {
	status := "● Ready"
	statusColor := accentColor
	if m.checking {
		status = "● Checking"
		statusColor = warningColor
	}

	info := fmt.Sprintf(" | Parsed: %d | Failed: %d", m.evaluated, m.failed)
	if m.last != nil {
		info += " | Last: " + base.Truncate(m.last.Input, 40)
	}
	info += " | " + m.help.View(m.keys)

	content := lipgloss.NewStyle().Foreground(statusColor).Render(status) +
		lipgloss.NewStyle().Foreground(textMuted).Render(info)

	return statusBarStyle.
		Width(base.Clamp(m.width-4, 0, m.width)).
		Render(content)
}

func (m Model) renderHelp() string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(primaryColor).
		Padding(1, 2).
		Background(bgMedium).
		Render(m.help.FullHelpView(m.keys.FullHelp()))
}

// updateLayout adjusts component sizes based on window size
func (m *Model) updateLayout() {
	reserved := editorHeight + 12 // header, labels, status bar, padding
	if m.showTokens {
		reserved += tokensHeight + 2
	}

	width := base.Clamp(m.width-6, 20, m.width)
	m.editor.SetWidth(width)
	m.output.Width = width
	m.output.Height = base.Clamp(m.height-reserved, 3, m.height)
	m.tokenTable.SetWidth(width)
	m.tokenTable.SetHeight(tokensHeight)
}
