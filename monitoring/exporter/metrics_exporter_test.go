package exporter

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestMetricsCollector_Counts(t *testing.T) {
	mc := NewMetricsCollector()
	mc.ObserveParse("SELECT", "", 2*time.Microsecond)
	mc.ObserveParse("SELECT", "", 4*time.Microsecond)
	mc.ObserveParse("CREATE TABLE", "", 6*time.Microsecond)
	mc.ObserveParse("", "SYNTAX_ERROR", 8*time.Microsecond)

	metrics := mc.GetMetrics()

	expected := []string{
		"minisql_parses_total 4\n",
		"minisql_parse_errors_total 1\n",
		"minisql_parse_duration_microseconds 5.00\n",
		`minisql_statements_total{statement="CREATE TABLE"} 1` + "\n",
		`minisql_statements_total{statement="SELECT"} 2` + "\n",
		`minisql_parse_errors_by_code_total{code="SYNTAX_ERROR"} 1` + "\n",
	}
	for _, e := range expected {
		if !strings.Contains(metrics, e) {
			t.Errorf("expected %q in metrics:\n%s", e, metrics)
		}
	}
}

func TestMetricsCollector_BoundedWindow(t *testing.T) {
	mc := NewMetricsCollector()
	for i := 0; i < maxDurations+10; i++ {
		mc.ObserveParse("SELECT", "", time.Microsecond)
	}
	if len(mc.parseDurations) != maxDurations {
		t.Errorf("expected %d durations kept, got %d", maxDurations, len(mc.parseDurations))
	}
}

func TestMetricsCollector_Concurrent(t *testing.T) {
	mc := NewMetricsCollector()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				mc.ObserveParse("SELECT", "", time.Microsecond)
				_ = mc.GetMetrics()
			}
		}()
	}
	wg.Wait()

	if !strings.Contains(mc.GetMetrics(), "minisql_parses_total 800\n") {
		t.Error("expected 800 parses")
	}
}

func TestHandler(t *testing.T) {
	mc := NewMetricsCollector()
	mc.ObserveParse("SELECT", "", time.Microsecond)

	srv := httptest.NewServer(Handler(mc))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatal(err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	if !strings.HasPrefix(resp.Header.Get("Content-Type"), "text/plain") {
		t.Errorf("unexpected content type %q", resp.Header.Get("Content-Type"))
	}
	if !strings.Contains(string(body), "minisql_parses_total 1") {
		t.Errorf("unexpected body:\n%s", body)
	}

	resp, err = http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200 from /health, got %d", resp.StatusCode)
	}
}
