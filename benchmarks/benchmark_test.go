package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSummarize(t *testing.T) {
	var durations []time.Duration
	for i := 100; i >= 1; i-- {
		durations = append(durations, time.Duration(i)*time.Microsecond)
	}

	r := summarize(durations)

	if r.MinDuration != time.Microsecond || r.MaxDuration != 100*time.Microsecond {
		t.Errorf("unexpected min/max %v/%v", r.MinDuration, r.MaxDuration)
	}
	if r.MedianDuration != 51*time.Microsecond {
		t.Errorf("unexpected median %v", r.MedianDuration)
	}
	if r.P95Duration != 96*time.Microsecond || r.P99Duration != 100*time.Microsecond {
		t.Errorf("unexpected percentiles %v/%v", r.P95Duration, r.P99Duration)
	}
	if r.AvgDuration != 50500*time.Nanosecond {
		t.Errorf("unexpected average %v", r.AvgDuration)
	}
	if durations[0] != 100*time.Microsecond {
		t.Error("expected input order to be left unchanged")
	}
}

func TestSummarize_Empty(t *testing.T) {
	if r := summarize(nil); r.MaxDuration != 0 {
		t.Errorf("expected zero result, got %+v", r)
	}
}

func TestRunBenchmark_CountsOutcomes(t *testing.T) {
	for _, bench := range benchmarkCases {
		r := runBenchmark(bench.name, bench.sql, 50, 4)
		if r.SuccessCount+r.ErrorCount != 50 {
			t.Errorf("%s: expected 50 outcomes, got %d", bench.name, r.SuccessCount+r.ErrorCount)
		}
		rejected := bench.name == "Rejected statement"
		if rejected != (r.ErrorCount == 50) {
			t.Errorf("%s: unexpected error count %d", bench.name, r.ErrorCount)
		}
	}
}

func TestSaveJSONReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	report := BenchmarkReport{Results: []BenchmarkResult{{Name: "x", Iterations: 3}}}

	if err := saveJSONReport(report, path); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var decoded BenchmarkReport
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if len(decoded.Results) != 1 || decoded.Results[0].Name != "x" {
		t.Errorf("unexpected decoded report %+v", decoded)
	}
}
