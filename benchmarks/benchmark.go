package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"minisql/pkg/parser/parser"

	"golang.org/x/sync/errgroup"
)

// BenchmarkResult captures timing statistics for one statement parsed many times.
type BenchmarkResult struct {
	Name                string        `json:"name"`                  // Descriptive name of the benchmark case
	Statement           string        `json:"statement"`             // The SQL text being parsed
	Iterations          int           `json:"iterations"`            // Total number of parse calls
	TotalDuration       time.Duration `json:"total_duration_ns"`     // Wall time for all iterations
	AvgDuration         time.Duration `json:"avg_duration_ns"`       // Average time per parse
	MinDuration         time.Duration `json:"min_duration_ns"`       // Fastest parse
	MaxDuration         time.Duration `json:"max_duration_ns"`       // Slowest parse
	MedianDuration      time.Duration `json:"median_duration_ns"`    // Median parse time
	P95Duration         time.Duration `json:"p95_duration_ns"`       // 95th percentile parse time
	P99Duration         time.Duration `json:"p99_duration_ns"`       // 99th percentile parse time
	StatementsPerSecond float64       `json:"statements_per_second"` // Throughput metric
	Concurrency         int           `json:"concurrency"`           // Number of parsing goroutines
	SuccessCount        int           `json:"success_count"`         // Parses that returned a statement
	ErrorCount          int           `json:"error_count"`           // Parses that returned an error
	ErrorSamples        []string      `json:"error_samples"`         // Sample error messages
	Timestamp           time.Time     `json:"timestamp"`             // When this case was run
}

// BenchmarkReport aggregates the results of one run of the suite.
type BenchmarkReport struct {
	StartTime     time.Time         `json:"start_time"`
	EndTime       time.Time         `json:"end_time"`
	TotalDuration time.Duration     `json:"total_duration"`
	Results       []BenchmarkResult `json:"results"`
}

type benchmarkCase struct {
	name string
	sql  string
}

var benchmarkCases = []benchmarkCase{
	{"Simple SELECT", "SELECT * FROM users"},
	{"SELECT column list", "SELECT id, name, email, age, created_at FROM users;"},
	{"SELECT with WHERE", "SELECT id, name FROM users WHERE age >= 18 AND (status = 'active' OR score * 2 > 100)"},
	{"SELECT with ORDER BY", "SELECT id, name FROM users WHERE NOT deleted ORDER BY name, id;"},
	{"CREATE TABLE", "CREATE TABLE users (id INT PRIMARY KEY, name VARCHAR NOT NULL, active BOOL)"},
	{"CREATE TABLE with CHECK", "CREATE TABLE orders (id INT PRIMARY KEY, qty INT CHECK (qty > 0 AND qty <= 1000), total INT CHECK (total = qty * 10 - 5))"},
	{"Rejected statement", "SELECT id, FROM users"},
}

// main runs every benchmark case sequentially and concurrently and writes a
// JSON report.
//
// Environment variables:
//   - BENCHMARK_OUTPUT: Directory for the JSON report (default: ./benchmark-results)
//   - BENCHMARK_ITERATIONS: Parse calls per case (default: 100000)
//   - BENCHMARK_CONCURRENCY: Goroutines for the concurrent run (default: 8)
func main() {
	outputDir := filepath.Clean(os.Getenv("BENCHMARK_OUTPUT"))
	if outputDir == "." {
		outputDir = "./benchmark-results"
	}

	iterations := 100000
	if iter := os.Getenv("BENCHMARK_ITERATIONS"); iter != "" {
		_, _ = fmt.Sscanf(iter, "%d", &iterations)
	}

	concurrency := 8
	if conc := os.Getenv("BENCHMARK_CONCURRENCY"); conc != "" {
		_, _ = fmt.Sscanf(conc, "%d", &concurrency)
	}

	_ = os.MkdirAll(outputDir, 0o750)

	log.Printf("Starting parser benchmark suite...")
	log.Printf("Iterations: %d, Concurrency: %d", iterations, concurrency)

	report := BenchmarkReport{StartTime: time.Now()}

	for _, bench := range benchmarkCases {
		log.Printf("%s", "\n"+strings.Repeat("=", 80))
		log.Printf("TEST: %s", bench.name)
		log.Printf("SQL:  %s", bench.sql)

		seq := runBenchmark(bench.name, bench.sql, iterations, 1)
		report.Results = append(report.Results, seq)
		printBenchmarkResult(seq)

		conc := runBenchmark(bench.name+" (Concurrent)", bench.sql, iterations, concurrency)
		report.Results = append(report.Results, conc)
		printBenchmarkResult(conc)
	}

	report.EndTime = time.Now()
	report.TotalDuration = report.EndTime.Sub(report.StartTime)

	log.Printf("%s", "\n"+strings.Repeat("=", 80))
	log.Printf("BENCHMARK SUITE COMPLETE in %s (%d runs)", formatDuration(report.TotalDuration), len(report.Results))

	jsonFile := filepath.Join(outputDir, fmt.Sprintf("parser_benchmark_%s.json", time.Now().Format("20060102_150405")))
	if err := saveJSONReport(report, jsonFile); err != nil {
		log.Fatalf("Error writing JSON report: %v", err)
	}
	log.Printf("JSON report saved: %s", jsonFile)
}

// runBenchmark parses sql the given number of times on at most concurrency
// goroutines and summarizes the per-call timings.
func runBenchmark(name, sql string, iterations, concurrency int) BenchmarkResult {
	durations := make([]time.Duration, 0, iterations)
	var mu sync.Mutex

	successCount := 0
	errorCount := 0
	errorSamples := make([]string, 0, 5)

	var g errgroup.Group
	g.SetLimit(max(concurrency, 1))

	startTime := time.Now()
	for range iterations {
		g.Go(func() error {
			parseStart := time.Now()
			_, err := parser.ParseStatement(sql)
			duration := time.Since(parseStart)

			mu.Lock()
			defer mu.Unlock()
			durations = append(durations, duration)
			if err != nil {
				errorCount++
				if len(errorSamples) < 5 {
					errorSamples = append(errorSamples, err.Error())
				}
			} else {
				successCount++
			}
			return nil
		})
	}
	_ = g.Wait()
	totalDuration := time.Since(startTime)

	result := summarize(durations)
	result.Name = name
	result.Statement = sql
	result.Iterations = iterations
	result.TotalDuration = totalDuration
	result.Concurrency = concurrency
	result.SuccessCount = successCount
	result.ErrorCount = errorCount
	result.ErrorSamples = errorSamples
	result.Timestamp = time.Now()
	if totalDuration > 0 {
		result.StatementsPerSecond = float64(iterations) / totalDuration.Seconds()
	}
	return result
}

// summarize fills the timing fields of a result from raw durations.
func summarize(durations []time.Duration) BenchmarkResult {
	if len(durations) == 0 {
		return BenchmarkResult{}
	}

	sorted := slices.Clone(durations)
	slices.Sort(sorted)

	var sum time.Duration
	for _, d := range sorted {
		sum += d
	}

	n := len(sorted)
	return BenchmarkResult{
		AvgDuration:    sum / time.Duration(n),
		MinDuration:    sorted[0],
		MaxDuration:    sorted[n-1],
		MedianDuration: sorted[n/2],
		P95Duration:    sorted[int(float64(n)*0.95)],
		P99Duration:    sorted[int(float64(n)*0.99)],
	}
}

// formatDuration formats a duration in a human-readable way with appropriate units.
// Examples: 1.23ms, 456.78µs, 12.34s
func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.2fms", float64(d.Microseconds())/1000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.2fµs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}

func printBenchmarkResult(result BenchmarkResult) {
	log.Printf("  ┌─ %s", result.Name)
	log.Printf("  │  Total Time:        %s", formatDuration(result.TotalDuration))
	log.Printf("  │  Avg per Parse:     %s", formatDuration(result.AvgDuration))
	log.Printf("  │  Min / Max:         %s / %s", formatDuration(result.MinDuration), formatDuration(result.MaxDuration))
	log.Printf("  │  Median (P50):      %s", formatDuration(result.MedianDuration))
	log.Printf("  │  P95 / P99:         %s / %s", formatDuration(result.P95Duration), formatDuration(result.P99Duration))
	log.Printf("  │  Throughput:        %.0f statements/sec", result.StatementsPerSecond)
	log.Printf("  │  Accepted:          %d/%d", result.SuccessCount, result.Iterations)

	if len(result.ErrorSamples) > 0 {
		log.Printf("  │  Sample error:      %s", result.ErrorSamples[0])
	}
	log.Printf("  └─")
}

func saveJSONReport(report BenchmarkReport, filename string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	return os.WriteFile(filename, data, 0o600)
}
