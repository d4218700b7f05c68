package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	dberror "minisql/pkg/error"
	"minisql/pkg/logging"

	"github.com/charmbracelet/lipgloss"
)

// Prompt is written before each line in RunPlain.
const Prompt = "minisql> "

type plainStyles struct {
	err     lipgloss.Style
	hint    lipgloss.Style
	warning lipgloss.Style
	dump    lipgloss.Style
}

// newPlainStyles binds styles to w so that color is only emitted when w is
// a terminal that supports it.
func newPlainStyles(w io.Writer) plainStyles {
	r := lipgloss.NewRenderer(w)
	return plainStyles{
		err:     r.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true),
		hint:    r.NewStyle().Foreground(lipgloss.Color("#94A3B8")).Italic(true),
		warning: r.NewStyle().Foreground(lipgloss.Color("#F59E0B")),
		dump:    r.NewStyle().Foreground(lipgloss.Color("#06B6D4")),
	}
}

func (s plainStyles) render(r Result) string {
	var b strings.Builder

	if r.Err != nil {
		b.WriteString(s.err.Render("error: "+r.Err.Message) + "\n")
		if r.Err.Hint != "" {
			b.WriteString(s.hint.Render("hint: "+r.Err.Hint) + "\n")
		}
		return b.String()
	}

	b.WriteString(s.dump.Render(strings.TrimSuffix(r.Dump, "\n")) + "\n")
	for _, w := range r.Warnings {
		b.WriteString(s.warning.Render("warning: "+w) + "\n")
	}
	return b.String()
}

// RunPlain reads one statement per line from r and writes the outcome of
// each to w until r is exhausted, the exit command is read, or ctx is
// cancelled. Blank lines are skipped. Parse errors are reported and the
// loop continues.
func RunPlain(ctx context.Context, r io.Reader, w io.Writer) error {
	log := logging.WithComponent("shell")
	styles := newPlainStyles(w)
	scanner := bufio.NewScanner(r)

	log.Info("plain session started")
	defer log.Info("plain session ended")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(w, Prompt)
		if !scanner.Scan() {
			fmt.Fprintln(w)
			break
		}

		line := scanner.Text()
		if IsExit(line) {
			return nil
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		fmt.Fprint(w, styles.render(Evaluate(line)))
	}

	if err := scanner.Err(); err != nil {
		return dberror.New(dberror.ErrCategorySystem, CodeReadFailed, "failed to read input").
			WithCause(err)
	}
	return nil
}
