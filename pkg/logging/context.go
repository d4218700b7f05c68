package logging

import (
	"log/slog"
	"unicode/utf8"
)

// maxQueryAttrLen bounds the query text attached to log records.
const maxQueryAttrLen = 200

// WithComponent creates a logger with component/subsystem context.
//
// Example:
//
//	log := logging.WithComponent("parser")
//	log.Debug("statement parsed", "kind", "SELECT")
func WithComponent(component string) *slog.Logger {
	return GetLogger().With("component", component)
}

// WithQuery creates a logger carrying the SQL text being processed.
// Long queries are truncated.
//
// Example:
//
//	log := logging.WithQuery(line)
//	log.Info("query submitted")
func WithQuery(sql string) *slog.Logger {
	return GetLogger().With("query", truncate(sql, maxQueryAttrLen))
}

// WithStatement creates a logger with statement kind context.
//
// Example:
//
//	log := logging.WithStatement(stmt.GetType().String())
//	log.Warn("validation finding", "detail", err)
func WithStatement(kind string) *slog.Logger {
	return GetLogger().With("statement", kind)
}

// WithError creates a logger with error context.
// Use this when logging errors to include the error in structured format.
//
// Example:
//
//	log := logging.WithError(err)
//	log.Error("operation failed", "operation", "check file")
func WithError(err error) *slog.Logger {
	return GetLogger().With("error", err.Error())
}

func truncate(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxLen-3]) + "..."
}
