package driver

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"fortio.org/safecast"
	"golang.org/x/sync/errgroup"
)

// ListTokenFiles returns the sorted relative paths of all *.json files under
// dir, skipping hidden directories.
func ListTokenFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if name := d.Name(); name != "." && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(path, ".json") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", dir, err)
	}
	sort.Strings(files)
	return files, nil
}

// ValidateDir validates every token file under dir in parallel. Results come
// back sorted by path regardless of completion order; each file gets its own
// registry and accumulators, so workers share nothing.
func ValidateDir(ctx context.Context, dir string, opts Options) ([]FileResult, error) {
	files, err := ListTokenFiles(dir)
	if err != nil {
		return nil, err
	}
	return ValidateFiles(ctx, files, opts)
}

// ValidateFiles validates an explicit file list in parallel.
func ValidateFiles(ctx context.Context, files []string, opts Options) ([]FileResult, error) {
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if limit, err := safecast.Conv[uint](jobs); err != nil || limit == 0 {
		jobs = 1
	}

	results := make([]FileResult, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			notify(opts, path, EventStart)
			fr, err := ValidateFile(path, opts)
			if err != nil {
				notify(opts, path, EventFailed)
				return err
			}
			status := EventDone
			if fr.FromCache {
				status = EventCached
			}
			notify(opts, path, status)
			results[i] = fr
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Path < results[j].Path })
	return results, nil
}
