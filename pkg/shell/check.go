package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	dberror "minisql/pkg/error"
	"minisql/pkg/logging"

	"golang.org/x/sync/errgroup"
)

// CheckFile parses every non-empty line of the file at path as its own
// statement. Lines are parsed concurrently by at most workers goroutines
// (NumCPU when workers <= 0); the results are in line order regardless.
// The returned error is only set for I/O failures or cancellation; parse
// failures are reported per Result.
func CheckFile(ctx context.Context, path string, workers int) ([]Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, dberror.Wrap(err, CodeReadFailed, "CheckFile", "shell").WithDetail(path)
	}
	defer f.Close()

	return CheckReader(ctx, f, workers)
}

// CheckReader is CheckFile over an arbitrary reader.
func CheckReader(ctx context.Context, r io.Reader, workers int) ([]Result, error) {
	log := logging.WithComponent("shell")

	type job struct {
		line int
		text string
	}

	var jobs []job
	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		jobs = append(jobs, job{line: n, text: text})
	}
	if err := scanner.Err(); err != nil {
		return nil, dberror.Wrap(err, CodeReadFailed, "CheckFile", "shell")
	}

	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]Result, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, j := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res := Evaluate(j.text)
			res.Line = j.line
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	failed := CountFailed(results)
	log.Info("check finished", "statements", len(results), "failed", failed, "workers", workers)
	return results, nil
}

// CountFailed returns how many results carry an error.
func CountFailed(results []Result) int {
	n := 0
	for _, r := range results {
		if !r.OK() {
			n++
		}
	}
	return n
}

// WriteReport writes one summary line per result followed by a total.
func WriteReport(w io.Writer, results []Result) error {
	bw := bufio.NewWriter(w)

	for _, r := range results {
		switch {
		case r.Err != nil:
			fmt.Fprintf(bw, "line %d: %s\n", r.Line, r.Err.Message)
		case len(r.Warnings) > 0:
			fmt.Fprintf(bw, "line %d: ok %s (warning: %s)\n", r.Line, r.Statement.GetType(), strings.Join(r.Warnings, "; "))
		default:
			fmt.Fprintf(bw, "line %d: ok %s\n", r.Line, r.Statement.GetType())
		}
	}
	fmt.Fprintf(bw, "%d statements, %d failed\n", len(results), CountFailed(results))

	return bw.Flush()
}
