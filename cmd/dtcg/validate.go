package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/dembrandt/dtcg-validator/internal/diag"
	"github.com/dembrandt/dtcg-validator/internal/driver"
	"github.com/dembrandt/dtcg-validator/internal/explain"
	"github.com/dembrandt/dtcg-validator/internal/project"
	"github.com/dembrandt/dtcg-validator/internal/report"
	"github.com/dembrandt/dtcg-validator/internal/ui"
	"github.com/dembrandt/dtcg-validator/internal/validate"
)

var validateCmd = &cobra.Command{
	Use:   "validate [flags] [file.json|directory]",
	Short: "Validate design token files",
	Long:  `Validate one token file, or all *.json files within a directory. With no argument, validates the files listed in dtcg.toml`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().String("format", "pretty", "output format (pretty|short|json)")
	validateCmd.Flags().Bool("explain", false, "annotate errors with categories and suggestions")
	validateCmd.Flags().Bool("no-warnings", false, "ignore warnings in output")
	validateCmd.Flags().Bool("warnings-as-errors", false, "treat warnings as errors for the exit code")
	validateCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	validateCmd.Flags().Bool("disk-cache", false, "cache results of unchanged files on disk")
	validateCmd.Flags().Bool("progress", false, "show a live progress display for batch runs")
}

type validateFlags struct {
	format           string
	explain          bool
	noWarnings       bool
	warningsAsErrors bool
	jobs             int
	diskCache        bool
	progress         bool
	color            bool
	quiet            bool
	timings          bool
	maxDiagnostics   int
}

func readValidateFlags(cmd *cobra.Command) (validateFlags, error) {
	var (
		f   validateFlags
		err error
	)
	if f.format, err = cmd.Flags().GetString("format"); err != nil {
		return f, fmt.Errorf("failed to get format flag: %w", err)
	}
	if f.explain, err = cmd.Flags().GetBool("explain"); err != nil {
		return f, fmt.Errorf("failed to get explain flag: %w", err)
	}
	if f.noWarnings, err = cmd.Flags().GetBool("no-warnings"); err != nil {
		return f, fmt.Errorf("failed to get no-warnings flag: %w", err)
	}
	if f.warningsAsErrors, err = cmd.Flags().GetBool("warnings-as-errors"); err != nil {
		return f, fmt.Errorf("failed to get warnings-as-errors flag: %w", err)
	}
	if f.noWarnings && f.warningsAsErrors {
		return f, fmt.Errorf("no-warnings and warnings-as-errors flags cannot be used together")
	}
	if f.jobs, err = cmd.Flags().GetInt("jobs"); err != nil {
		return f, fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if f.diskCache, err = cmd.Flags().GetBool("disk-cache"); err != nil {
		return f, fmt.Errorf("failed to get disk-cache flag: %w", err)
	}
	if f.progress, err = cmd.Flags().GetBool("progress"); err != nil {
		return f, fmt.Errorf("failed to get progress flag: %w", err)
	}

	root := cmd.Root().PersistentFlags()
	colorFlag, err := persistentString(root, "color")
	if err != nil {
		return f, err
	}
	f.color = colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stdout))
	if f.quiet, err = root.GetBool("quiet"); err != nil {
		return f, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if f.timings, err = root.GetBool("timings"); err != nil {
		return f, fmt.Errorf("failed to get timings flag: %w", err)
	}
	if f.maxDiagnostics, err = root.GetInt("max-diagnostics"); err != nil {
		return f, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	return f, nil
}

func persistentString(flags *pflag.FlagSet, name string) (string, error) {
	v, err := flags.GetString(name)
	if err != nil {
		return "", fmt.Errorf("failed to get %s flag: %w", name, err)
	}
	return v, nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	flags, err := readValidateFlags(cmd)
	if err != nil {
		return err
	}
	switch flags.format {
	case "pretty", "short", "json":
		// supported
	default:
		return fmt.Errorf("unknown format: %s", flags.format)
	}

	targets, manifest, err := resolveTargets(args)
	if err != nil {
		return err
	}
	if manifest != nil {
		applyManifestDefaults(cmd, manifest, &flags)
	}

	opts := driver.Options{
		MaxDiagnostics: flags.maxDiagnostics,
		Jobs:           flags.jobs,
		EnableTimings:  flags.timings,
	}
	if flags.diskCache {
		cache, err := driver.OpenDiskCache("dtcg")
		if err != nil {
			return fmt.Errorf("failed to open disk cache: %w", err)
		}
		opts.Cache = cache
	}

	results, err := runTargets(cmd, targets, opts, flags)
	if err != nil {
		return err
	}

	exitCode := 0
	for _, fr := range results {
		res := fr.Result
		if flags.noWarnings {
			res = stripWarnings(res)
		}
		if renderErr := render(fr.Path, res, flags, len(results) > 1); renderErr != nil {
			return renderErr
		}
		if flags.timings && fr.Timing != nil {
			fmt.Fprintf(os.Stderr, "%s:\n", fr.Path)
			for _, p := range fr.Timing.Phases {
				fmt.Fprintf(os.Stderr, "  %-12s %7.2f ms  %s\n", p.Name, p.DurationMS, p.Note)
			}
		}
		if !res.Valid || (flags.warningsAsErrors && len(res.Warnings) > 0) {
			exitCode = 1
		}
	}
	if exitCode != 0 {
		os.Exit(exitCode)
	}
	return nil
}

// resolveTargets turns the optional CLI argument into a file list; with no
// argument, the dtcg.toml manifest supplies the targets.
func resolveTargets(args []string) ([]string, *project.Manifest, error) {
	if len(args) == 1 {
		st, err := os.Stat(args[0])
		if err != nil {
			return nil, nil, fmt.Errorf("failed to stat path: %w", err)
		}
		if st.IsDir() {
			files, err := driver.ListTokenFiles(args[0])
			if err != nil {
				return nil, nil, err
			}
			if len(files) == 0 {
				return nil, nil, fmt.Errorf("no *.json files found under %s", args[0])
			}
			return files, nil, nil
		}
		return []string{args[0]}, nil, nil
	}

	manifest, ok, err := project.Load(".")
	if err != nil {
		return nil, nil, err
	}
	if !ok {
		return nil, nil, fmt.Errorf("no %s found\nplease specify a file or directory, e.g.:\n  dtcg validate tokens.json", project.ManifestName)
	}
	var files []string
	for _, entry := range manifest.Config.Validate.Files {
		st, err := os.Stat(entry)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to stat %s from %s: %w", entry, manifest.Path, err)
		}
		if st.IsDir() {
			sub, err := driver.ListTokenFiles(entry)
			if err != nil {
				return nil, nil, err
			}
			files = append(files, sub...)
		} else {
			files = append(files, entry)
		}
	}
	if len(files) == 0 {
		return nil, nil, fmt.Errorf("%s lists no token files", manifest.Path)
	}
	return files, manifest, nil
}

// applyManifestDefaults lets dtcg.toml fill in flags the user did not set.
func applyManifestDefaults(cmd *cobra.Command, manifest *project.Manifest, flags *validateFlags) {
	cfg := manifest.Config.Validate
	if !cmd.Flags().Changed("jobs") && cfg.Jobs > 0 {
		flags.jobs = cfg.Jobs
	}
	if !cmd.Flags().Changed("warnings-as-errors") && cfg.WarningsAsErrors && !flags.noWarnings {
		flags.warningsAsErrors = true
	}
	if !cmd.Root().PersistentFlags().Changed("max-diagnostics") && cfg.MaxDiagnostics > 0 {
		flags.maxDiagnostics = cfg.MaxDiagnostics
	}
}

func runTargets(cmd *cobra.Command, targets []string, opts driver.Options, flags validateFlags) ([]driver.FileResult, error) {
	if flags.progress && len(targets) > 1 && isTerminal(os.Stdout) {
		return runWithProgress(cmd, targets, opts)
	}
	results, err := driver.ValidateFiles(cmd.Context(), targets, opts)
	if err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	return results, nil
}

func runWithProgress(cmd *cobra.Command, targets []string, opts driver.Options) ([]driver.FileResult, error) {
	events := make(chan driver.Event, len(targets)*2)
	opts.Events = events

	type batch struct {
		results []driver.FileResult
		err     error
	}
	done := make(chan batch, 1)
	go func() {
		results, err := driver.ValidateFiles(cmd.Context(), targets, opts)
		close(events)
		done <- batch{results: results, err: err}
	}()

	prog := tea.NewProgram(ui.NewProgressModel("validating tokens", targets, events))
	if _, err := prog.Run(); err != nil {
		return nil, fmt.Errorf("progress display failed: %w", err)
	}
	b := <-done
	if b.err != nil {
		return nil, fmt.Errorf("validation failed: %w", b.err)
	}
	return b.results, nil
}

func render(path string, res validate.Result, flags validateFlags, multi bool) error {
	var analysis *explain.Analysis
	if flags.explain {
		a := explain.Analyze(res.Errors)
		analysis = &a
	}

	label := ""
	if multi || flags.format != "pretty" {
		label = path
	}

	switch flags.format {
	case "pretty":
		popts := report.PrettyOpts{Color: flags.color, Quiet: flags.quiet}
		report.Pretty(os.Stdout, label, res, popts)
		if analysis != nil && !flags.quiet {
			report.PrettyAnalysis(os.Stdout, *analysis, popts)
		}
	case "short":
		report.Short(os.Stdout, label, res)
	case "json":
		if err := report.JSON(os.Stdout, label, res, analysis); err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
	}
	return nil
}

func stripWarnings(res validate.Result) validate.Result {
	res.Warnings = []string{}
	kept := res.Diagnostics[:0:0]
	for _, d := range res.Diagnostics {
		if d.Severity >= diag.SevError {
			kept = append(kept, d)
		}
	}
	res.Diagnostics = kept
	return res
}
