package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dembrandt/dtcg-validator/internal/project"
)

var initCmd = &cobra.Command{
	Use:   "init [path|name]",
	Short: "Initialize a new token project",
	Long: `Initialize a new token project by creating a project manifest (dtcg.toml)
and a starter token file (tokens.json). If [path|name] is omitted, initializes
the current directory. If a non-existing name is provided, a directory will be
created.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

const starterTokens = `{
  "color": {
    "$type": "color",
    "primary": { "$value": "#3366ff" },
    "accent": { "$value": "{color.primary}" }
  },
  "spacing": {
    "$type": "dimension",
    "small": { "$value": "4px" },
    "medium": { "$value": "8px" }
  }
}
`

func runInit(cmd *cobra.Command, args []string) error {
	var target string
	if len(args) == 0 || args[0] == "." {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		target = wd
	} else {
		arg := args[0]
		if !filepath.IsAbs(arg) {
			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			target = filepath.Join(wd, arg)
		} else {
			target = arg
		}
	}

	if st, err := os.Stat(target); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if err = os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("failed to create directory %q: %w", target, err)
			}
		} else {
			return err
		}
	} else if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	name := strings.TrimSpace(filepath.Base(target))
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "token-project"
	}

	manifestPath := filepath.Join(target, project.ManifestName)
	if _, err := os.Stat(manifestPath); err == nil {
		return fmt.Errorf("project already initialized: %s exists", manifestPath)
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}
	if err := os.WriteFile(manifestPath, []byte(project.Skeleton(name)), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", manifestPath, err)
	}

	tokensPath := filepath.Join(target, "tokens.json")
	if _, err := os.Stat(tokensPath); errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(tokensPath, []byte(starterTokens), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", tokensPath, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", tokensPath)
	} else if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", manifestPath)
	return nil
}
