package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"minisql/monitoring/exporter"
	dberror "minisql/pkg/error"
	"minisql/pkg/logging"
	"minisql/pkg/shell"
	"minisql/pkg/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type Configuration struct {
	LogLevel    string
	LogFile     string
	LogFormat   string
	Execute     string
	CheckFile   string
	Workers     int
	Plain       bool
	MetricsAddr string
}

func main() {
	config := parseArguments(os.Args[1:])

	if err := initLogging(config); err != nil {
		fmt.Fprintf(os.Stderr, "minisql: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	if config.MetricsAddr != "" {
		startMetrics(ctx, config.MetricsAddr)
	}

	code, err := run(ctx, config, os.Stdin, os.Stdout)
	if err != nil {
		logging.WithError(err).Error("minisql failed")
		fmt.Fprintf(os.Stderr, "minisql: %v\n", err)
	}
	stop()
	_ = logging.Close()
	os.Exit(code)
}

// parseArguments processes command-line flags
func parseArguments(args []string) Configuration {
	var config Configuration

	fs := flag.NewFlagSet("minisql", flag.ExitOnError)
	fs.StringVar(&config.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	fs.StringVar(&config.LogFile, "log-file", "", "Write logs to this file instead of stderr")
	fs.StringVar(&config.LogFormat, "log-format", "text", "Log format: text or json")
	fs.StringVar(&config.Execute, "e", "", "Parse one statement, print the result and exit")
	fs.StringVar(&config.CheckFile, "file", "", "Parse every line of a file and report the results")
	fs.IntVar(&config.Workers, "workers", runtime.NumCPU(), "Concurrent parsers for -file")
	fs.BoolVar(&config.Plain, "plain", false, "Line-oriented shell without the terminal UI")
	fs.StringVar(&config.MetricsAddr, "metrics-addr", "", "Serve parse metrics on this address, e.g. :9090")

	_ = fs.Parse(args)
	return config
}

func initLogging(config Configuration) error {
	level, err := logging.ParseLevel(config.LogLevel)
	if err != nil {
		return err
	}

	cfg := logging.Config{
		Level:      level,
		OutputPath: config.LogFile,
		Format:     config.LogFormat,
	}

	// The terminal UI owns the screen; logs go nowhere without -log-file.
	if cfg.OutputPath == "" && interactiveUI(config) {
		cfg.Output = io.Discard
	}
	return logging.Init(cfg)
}

// startMetrics records every evaluation and serves the counters in the
// background for the life of ctx.
func startMetrics(ctx context.Context, addr string) {
	collector := exporter.NewMetricsCollector()
	shell.SetObserver(collector)

	go func() {
		if err := exporter.Serve(ctx, addr, collector); err != nil {
			logging.WithError(err).Error("metrics server stopped", "addr", addr)
		}
	}()
}

func interactiveUI(config Configuration) bool {
	return config.Execute == "" && config.CheckFile == "" && !config.Plain
}

// run dispatches to the selected mode and returns the process exit code.
// Exit code 1 means a statement was rejected; 2 means the tool itself failed.
func run(ctx context.Context, config Configuration, stdin io.Reader, stdout io.Writer) (int, error) {
	switch {
	case config.Execute != "":
		res := shell.Evaluate(config.Execute)
		fmt.Fprint(stdout, res.Text())
		if !res.OK() {
			return 1, nil
		}
		return 0, nil

	case config.CheckFile != "":
		results, err := shell.CheckFile(ctx, config.CheckFile, config.Workers)
		if err != nil {
			return 2, err
		}
		if err := shell.WriteReport(stdout, results); err != nil {
			return 2, dberror.Wrap(err, shell.CodeReadFailed, "WriteReport", "main")
		}
		if shell.CountFailed(results) > 0 {
			return 1, nil
		}
		return 0, nil

	case config.Plain:
		showBanner(stdout)
		if err := shell.RunPlain(ctx, stdin, stdout); err != nil && ctx.Err() == nil {
			return 2, err
		}
		return 0, nil

	default:
		return startInteractiveMode(config)
	}
}

func showBanner(w io.Writer) {
	style := lipgloss.NewRenderer(w).NewStyle().
		Foreground(lipgloss.Color("#7C3AED")).
		Bold(true)

	fmt.Fprintln(w, style.Render("minisql: SELECT and CREATE TABLE parser. Type exit to quit."))
}

// startInteractiveMode launches the Bubble Tea UI
func startInteractiveMode(config Configuration) (int, error) {
	log := logging.WithComponent("ui")
	log.Info("interactive session started")

	p := tea.NewProgram(
		ui.NewModel(config.Workers),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		return 2, fmt.Errorf("error running program: %w", err)
	}

	log.Info("interactive session ended")
	return 0, nil
}
