package shell

import (
	"strings"
	"sync"
	"time"

	dberror "minisql/pkg/error"
	"minisql/pkg/logging"
	"minisql/pkg/parser/parser"
	"minisql/pkg/parser/statements"
)

// ExitCommand ends an interactive session. It is matched case-insensitively
// after trimming surrounding whitespace.
const ExitCommand = "exit"

// Observer is told the outcome of every evaluation. statement is the
// statement kind on success; code is the error code on failure.
type Observer interface {
	ObserveParse(statement, code string, duration time.Duration)
}

var (
	observerMu sync.RWMutex
	observer   Observer
)

// SetObserver installs o for all later evaluations; nil removes it.
func SetObserver(o Observer) {
	observerMu.Lock()
	defer observerMu.Unlock()
	observer = o
}

func notify(res Result) {
	observerMu.RLock()
	o := observer
	observerMu.RUnlock()
	if o == nil {
		return
	}

	if res.Err != nil {
		o.ObserveParse("", res.Err.Code, res.Duration)
		return
	}
	o.ObserveParse(res.Statement.GetType().String(), "", res.Duration)
}

// Result is the outcome of running the pipeline once on one input.
// Exactly one of Statement and Err is set.
type Result struct {
	Input     string
	Line      int // 1-based source line; zero outside CheckFile
	Statement statements.Statement
	Dump      string
	Err       *dberror.DBError
	Warnings  []string
	Duration  time.Duration
}

// OK reports whether the input parsed.
func (r Result) OK() bool {
	return r.Err == nil
}

// IsExit reports whether line is the exit command.
func IsExit(line string) bool {
	return strings.EqualFold(strings.TrimSpace(line), ExitCommand)
}

// Evaluate lexes and parses line, then lints the statement.
// Validation findings are reported as warnings; they do not fail the result.
func Evaluate(line string) Result {
	log := logging.WithQuery(line)
	start := time.Now()

	stmt, err := parser.ParseStatement(line)
	res := Result{Input: line, Duration: time.Since(start)}

	if err != nil {
		res.Err = FromParseError(err)
		log.Debug("query rejected", "code", res.Err.Code, "duration", res.Duration)
		notify(res)
		return res
	}

	res.Statement = stmt
	res.Dump = statements.Dump(stmt)

	if verr := stmt.Validate(); verr != nil {
		res.Warnings = append(res.Warnings, verr.Error())
		logging.WithStatement(stmt.GetType().String()).Warn("validation finding", "detail", verr.Error())
	}

	log.Debug("query parsed", "statement", stmt.GetType().String(), "duration", res.Duration)
	notify(res)
	return res
}

// Text renders the result without styling: the AST dump followed by any
// warnings, or the error and its hint.
func (r Result) Text() string {
	var b strings.Builder

	if r.Err != nil {
		b.WriteString("error: " + r.Err.Message + "\n")
		if r.Err.Hint != "" {
			b.WriteString("hint: " + r.Err.Hint + "\n")
		}
		return b.String()
	}

	b.WriteString(r.Dump)
	for _, w := range r.Warnings {
		b.WriteString("warning: " + w + "\n")
	}
	return b.String()
}
