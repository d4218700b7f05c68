// Package logging provides a process-wide structured logger for minisql.
//
// The package wraps [log/slog] and exposes a single global logger instance
// that is initialized once and then retrieved via GetLogger. The parser, the
// shell and the CLI obtain their logger through this package so that log
// level and output destination are controlled from a single place.
//
// # Initialisation
//
// Call Init (or InitDefault for sensible defaults) once at program startup:
//
//	if err := logging.Init(logging.Config{Level: logging.LevelDebug, OutputPath: "minisql.log"}); err != nil {
//	    log.Fatal(err)
//	}
//
// InitDefault writes INFO-level text logs to stderr. The interactive shell
// owns the terminal, so it should log to a file or to io.Discard.
//
// # Retrieving the logger
//
//	logger := logging.GetLogger()
//	logger.Info("session started", "mode", "tui")
//
// If GetLogger is called before Init, a default stderr logger is created
// lazily (via sync.Once) so that packages that log during init are safe.
//
// # Context helpers
//
//	log := logging.WithComponent("parser") // adds component field
//	log := logging.WithQuery(sql)          // adds query field
//	log := logging.WithStatement(kind)     // adds statement field
package logging
