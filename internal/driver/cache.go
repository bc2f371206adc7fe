package driver

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/dembrandt/dtcg-validator/internal/validate"
)

// Current schema version - increment when the cached payload format changes.
const cacheSchemaVersion uint16 = 1

// DiskCache stores validation results keyed by the sha256 digest of the file
// content. Identical content always validates identically, so a digest hit
// can skip the run entirely. Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

type cachePayload struct {
	Schema uint16          `msgpack:"schema"`
	Result validate.Result `msgpack:"result"`
}

// OpenDiskCache initializes a disk cache at the standard cache location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app, "results")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(digest [32]byte) string {
	return filepath.Join(c.dir, hex.EncodeToString(digest[:])+".msgpack")
}

// Load returns the cached result for digest, if present and current.
func (c *DiskCache) Load(digest [32]byte) (validate.Result, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	raw, err := os.ReadFile(c.pathFor(digest))
	if err != nil {
		return validate.Result{}, false
	}
	var payload cachePayload
	if err := msgpack.Unmarshal(raw, &payload); err != nil {
		return validate.Result{}, false
	}
	if payload.Schema != cacheSchemaVersion {
		return validate.Result{}, false
	}
	return payload.Result, true
}

// Store writes the result under digest.
func (c *DiskCache) Store(digest [32]byte, res validate.Result) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	raw, err := msgpack.Marshal(cachePayload{Schema: cacheSchemaVersion, Result: res})
	if err != nil {
		return fmt.Errorf("failed to encode cache entry: %w", err)
	}
	path := c.pathFor(digest)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write cache entry: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to finalize cache entry: %w", err)
	}
	return nil
}

// Clear removes every cached entry.
func (c *DiskCache) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	entries, err := os.ReadDir(c.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err := os.Remove(filepath.Join(c.dir, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}
