// Package exporter publishes parse statistics in the Prometheus text format.
package exporter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"minisql/pkg/logging"
)

// maxDurations bounds the window used for the average parse duration.
const maxDurations = 1000

// MetricsCollector counts parse outcomes. It is safe for concurrent use.
type MetricsCollector struct {
	parseCount     int64
	errorCount     int64
	byStatement    map[string]int64
	byErrorCode    map[string]int64
	parseDurations []time.Duration
	lastParseTime  time.Time
	startTime      time.Time
	mu             sync.RWMutex
}

func NewMetricsCollector() *MetricsCollector {
	return &MetricsCollector{
		byStatement:    make(map[string]int64),
		byErrorCode:    make(map[string]int64),
		parseDurations: make([]time.Duration, 0),
		startTime:      time.Now(),
	}
}

// ObserveParse records one parse. statement is the statement kind on
// success; code is the error code on failure.
func (mc *MetricsCollector) ObserveParse(statement, code string, duration time.Duration) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	mc.parseCount++
	mc.parseDurations = append(mc.parseDurations, duration)
	mc.lastParseTime = time.Now()

	if len(mc.parseDurations) > maxDurations {
		mc.parseDurations = mc.parseDurations[len(mc.parseDurations)-maxDurations:]
	}

	if code != "" {
		mc.errorCount++
		mc.byErrorCode[code]++
		return
	}
	mc.byStatement[statement]++
}

// GetMetrics renders the current counters.
func (mc *MetricsCollector) GetMetrics() string {
	mc.mu.RLock()
	defer mc.mu.RUnlock()

	var totalDuration time.Duration
	for _, d := range mc.parseDurations {
		totalDuration += d
	}

	avgDuration := float64(0)
	if len(mc.parseDurations) > 0 {
		avgDuration = float64(totalDuration.Nanoseconds()) / 1000.0 / float64(len(mc.parseDurations))
	}

	var lastParse int64
	if !mc.lastParseTime.IsZero() {
		lastParse = mc.lastParseTime.Unix()
	}

	var b strings.Builder

	fmt.Fprintf(&b, `# HELP minisql_parses_total Total number of statements submitted to the parser
# TYPE minisql_parses_total counter
minisql_parses_total %d

# HELP minisql_parse_errors_total Total number of rejected statements
# TYPE minisql_parse_errors_total counter
minisql_parse_errors_total %d

# HELP minisql_parse_duration_microseconds Average parse duration over the last %d parses
# TYPE minisql_parse_duration_microseconds gauge
minisql_parse_duration_microseconds %.2f

# HELP minisql_last_parse_timestamp_seconds Unix timestamp of last parse
# TYPE minisql_last_parse_timestamp_seconds gauge
minisql_last_parse_timestamp_seconds %d

# HELP minisql_uptime_seconds Seconds since the collector started
# TYPE minisql_uptime_seconds gauge
minisql_uptime_seconds %.0f
`,
		mc.parseCount,
		mc.errorCount,
		maxDurations,
		avgDuration,
		lastParse,
		time.Since(mc.startTime).Seconds(),
	)

	writeLabeled(&b, "minisql_statements_total", "Accepted statements by kind", "statement", mc.byStatement)
	writeLabeled(&b, "minisql_parse_errors_by_code_total", "Rejected statements by error code", "code", mc.byErrorCode)

	return b.String()
}

func writeLabeled(b *strings.Builder, name, help, label string, counts map[string]int64) {
	fmt.Fprintf(b, "\n# HELP %s %s\n# TYPE %s counter\n", name, help, name)

	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		fmt.Fprintf(b, "%s{%s=%q} %d\n", name, label, k, counts[k])
	}
}

// Handler serves /metrics and /health.
func Handler(collector *MetricsCollector) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/metrics", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; version=0.0.4")
		fmt.Fprint(w, collector.GetMetrics())
	})
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	})
	return mux
}

// Serve listens on addr until ctx is cancelled.
func Serve(ctx context.Context, addr string, collector *MetricsCollector) error {
	log := logging.WithComponent("exporter")

	srv := &http.Server{
		Addr:         addr,
		Handler:      Handler(collector),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info("metrics available", "addr", addr, "path", "/metrics")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
