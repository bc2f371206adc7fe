// Package project locates and loads the dtcg.toml manifest that carries
// default validation settings for a token project.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file searched for, walking up from the start directory.
const ManifestName = "dtcg.toml"

// Manifest is a loaded dtcg.toml plus where it was found.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

type Config struct {
	Project  ProjectConfig  `toml:"project"`
	Validate ValidateConfig `toml:"validate"`
}

type ProjectConfig struct {
	Name string `toml:"name"`
}

type ValidateConfig struct {
	// Files lists token files or directories validated when the CLI gets
	// no explicit path.
	Files            []string `toml:"files"`
	MaxDiagnostics   int      `toml:"max_diagnostics"`
	WarningsAsErrors bool     `toml:"warnings_as_errors"`
	Jobs             int      `toml:"jobs"`
}

// Find walks up from startDir looking for the manifest.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load finds and parses the manifest. The second return is false when no
// manifest exists between startDir and the filesystem root.
func Load(startDir string) (*Manifest, bool, error) {
	path, ok, err := Find(startDir)
	if err != nil || !ok {
		return nil, false, err
	}
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, false, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &Manifest{
		Path:   path,
		Root:   filepath.Dir(path),
		Config: cfg,
	}, true, nil
}

// Skeleton returns the manifest content scaffolded by `dtcg init`.
func Skeleton(name string) string {
	return fmt.Sprintf(`[project]
name = %q

[validate]
files = ["tokens.json"]
max_diagnostics = 100
warnings_as_errors = false
jobs = 0
`, name)
}
