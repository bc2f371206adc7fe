package driver

import (
	"context"
	"crypto/sha256"
	"os"
	"path/filepath"
	"testing"

	"github.com/dembrandt/dtcg-validator/internal/validate"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

const validTokens = `{"primary": {"$type": "color", "$value": "#336699"}}`
const brokenTokens = `{"primary": {"$type": "color", "$value": 12}}`

func TestValidateFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tokens.json")
	writeFile(t, path, validTokens)

	fr, err := ValidateFile(path, Options{})
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !fr.Result.Valid || fr.Result.TokenCount != 1 {
		t.Fatalf("result = %+v", fr.Result)
	}
	if fr.FromCache {
		t.Fatal("no cache configured")
	}
	if fr.Timing != nil {
		t.Fatal("timings not requested")
	}
}

func TestValidateFileMissing(t *testing.T) {
	_, err := ValidateFile(filepath.Join(t.TempDir(), "absent.json"), Options{})
	if err == nil {
		t.Fatal("missing file must error")
	}
}

func TestValidateFileTimings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tokens.json")
	writeFile(t, path, validTokens)

	fr, err := ValidateFile(path, Options{EnableTimings: true})
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if fr.Timing == nil || len(fr.Timing.Phases) < 2 {
		t.Fatalf("timing = %+v", fr.Timing)
	}
}

func TestListTokenFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.json"), validTokens)
	writeFile(t, filepath.Join(dir, "a.json"), validTokens)
	writeFile(t, filepath.Join(dir, "sub", "c.json"), validTokens)
	writeFile(t, filepath.Join(dir, ".hidden", "d.json"), validTokens)
	writeFile(t, filepath.Join(dir, "notes.txt"), "not tokens")

	files, err := ListTokenFiles(dir)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(files) != 3 {
		t.Fatalf("files = %v", files)
	}
	for i := 1; i < len(files); i++ {
		if files[i-1] >= files[i] {
			t.Fatalf("not sorted: %v", files)
		}
	}
	for _, f := range files {
		if filepath.Base(filepath.Dir(f)) == ".hidden" {
			t.Fatalf("hidden dir not skipped: %v", files)
		}
	}
}

func TestValidateFilesSortedResults(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		filepath.Join(dir, "z.json"),
		filepath.Join(dir, "a.json"),
		filepath.Join(dir, "m.json"),
	}
	for _, p := range paths {
		writeFile(t, p, validTokens)
	}

	results, err := ValidateFiles(context.Background(), paths, Options{Jobs: 2})
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("results = %d", len(results))
	}
	for i := 1; i < len(results); i++ {
		if results[i-1].Path >= results[i].Path {
			t.Fatalf("results not sorted by path: %v, %v", results[i-1].Path, results[i].Path)
		}
	}
}

func TestValidateFilesEvents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tokens.json")
	writeFile(t, path, validTokens)

	events := make(chan Event, 8)
	_, err := ValidateFiles(context.Background(), []string{path}, Options{Jobs: 1, Events: events})
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	close(events)

	var statuses []EventStatus
	for ev := range events {
		if ev.Path != path {
			t.Fatalf("event path = %q", ev.Path)
		}
		statuses = append(statuses, ev.Status)
	}
	if len(statuses) != 2 || statuses[0] != EventStart || statuses[1] != EventDone {
		t.Fatalf("statuses = %v", statuses)
	}
}

func TestDiskCacheRoundTrip(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	cache, err := OpenDiskCache("dtcg-test")
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	digest := sha256.Sum256([]byte(validTokens))
	if _, ok := cache.Load(digest); ok {
		t.Fatal("empty cache must miss")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "tokens.json")
	writeFile(t, path, validTokens)

	first, err := ValidateFile(path, Options{Cache: cache})
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	if first.FromCache {
		t.Fatal("first run must not hit the cache")
	}

	second, err := ValidateFile(path, Options{Cache: cache})
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if !second.FromCache {
		t.Fatal("second run must hit the cache")
	}
	if second.Result.Valid != first.Result.Valid || second.Result.TokenCount != first.Result.TokenCount {
		t.Fatalf("cached result drifted: %+v vs %+v", second.Result, first.Result)
	}
}

func TestDiskCacheKeyedByContent(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	cache, err := OpenDiskCache("dtcg-test")
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "tokens.json")
	writeFile(t, path, validTokens)
	if _, err := ValidateFile(path, Options{Cache: cache}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	// Changing the content must miss the old entry and re-validate.
	writeFile(t, path, brokenTokens)
	fr, err := ValidateFile(path, Options{Cache: cache})
	if err != nil {
		t.Fatalf("rerun: %v", err)
	}
	if fr.FromCache {
		t.Fatal("changed content must not hit the cache")
	}
	if fr.Result.Valid {
		t.Fatal("broken tokens must fail")
	}
}

func TestDiskCacheClear(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	cache, err := OpenDiskCache("dtcg-test")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	digest := sha256.Sum256([]byte("payload"))
	res := validate.Result{Valid: true, Errors: []string{}, Warnings: []string{}, TokenCount: 3}
	if err := cache.Store(digest, res); err != nil {
		t.Fatalf("store: %v", err)
	}
	if _, ok := cache.Load(digest); !ok {
		t.Fatal("stored entry must load")
	}
	if err := cache.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, ok := cache.Load(digest); ok {
		t.Fatal("cleared cache must miss")
	}
}
