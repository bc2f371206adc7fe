// Package driver orchestrates validation runs over files and directories,
// layering timing, caching, and parallelism on top of the validate package.
package driver

import (
	"crypto/sha256"
	"fmt"
	"os"

	"github.com/dembrandt/dtcg-validator/internal/observ"
	"github.com/dembrandt/dtcg-validator/internal/validate"
)

// Options tune a driver run.
type Options struct {
	MaxDiagnostics int
	// Jobs bounds parallel workers for directory runs; 0 means one per CPU.
	Jobs int
	// Cache, when set, short-circuits validation of unchanged files.
	Cache *DiskCache
	// Events, when set, receives per-file progress notifications.
	Events chan<- Event
	// EnableTimings records phase durations in FileResult.Timing.
	EnableTimings bool
}

// Event is one progress notification for a batch run.
type Event struct {
	Path   string
	Status EventStatus
}

type EventStatus uint8

const (
	EventStart EventStatus = iota
	EventDone
	EventCached
	EventFailed
)

// FileResult is the outcome of validating one file.
type FileResult struct {
	Path      string
	Result    validate.Result
	FromCache bool
	Timing    *observ.Report
}

// ValidateFile reads and validates a single token file.
func ValidateFile(path string, opts Options) (FileResult, error) {
	timer := observ.NewTimer()

	phase := timer.Begin("read")
	content, err := os.ReadFile(path)
	timer.End(phase, fmt.Sprintf("%d bytes", len(content)))
	if err != nil {
		return FileResult{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if opts.Cache != nil {
		digest := sha256.Sum256(content)
		if res, ok := opts.Cache.Load(digest); ok {
			return FileResult{Path: path, Result: res, FromCache: true, Timing: timingReport(timer, opts)}, nil
		}
		phase = timer.Begin("validate")
		res := validate.BytesWithOptions(content, validate.Options{MaxDiagnostics: opts.MaxDiagnostics})
		timer.End(phase, fmt.Sprintf("%d tokens", res.TokenCount))
		if err := opts.Cache.Store(digest, res); err != nil {
			// A cache write failure never fails the run.
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}
		return FileResult{Path: path, Result: res, Timing: timingReport(timer, opts)}, nil
	}

	phase = timer.Begin("validate")
	res := validate.BytesWithOptions(content, validate.Options{MaxDiagnostics: opts.MaxDiagnostics})
	timer.End(phase, fmt.Sprintf("%d tokens", res.TokenCount))
	return FileResult{Path: path, Result: res, Timing: timingReport(timer, opts)}, nil
}

func timingReport(timer *observ.Timer, opts Options) *observ.Report {
	if !opts.EnableTimings {
		return nil
	}
	report := timer.Report()
	return &report
}

func notify(opts Options, path string, status EventStatus) {
	if opts.Events != nil {
		opts.Events <- Event{Path: path, Status: status}
	}
}
