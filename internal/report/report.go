// Package report renders validation results for the CLI in pretty, short,
// and json forms. It is presentation only: nothing here changes validity,
// message text, or ordering.
package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/goccy/go-json"
	"github.com/mattn/go-runewidth"

	"github.com/dembrandt/dtcg-validator/internal/diag"
	"github.com/dembrandt/dtcg-validator/internal/explain"
	"github.com/dembrandt/dtcg-validator/internal/validate"
)

// PrettyOpts controls the human-readable format.
type PrettyOpts struct {
	Color  bool
	Quiet  bool // suppress per-diagnostic lines, keep the summary
}

var (
	validStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	invalidStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

// Pretty writes a summary banner plus one aligned line per diagnostic.
func Pretty(w io.Writer, file string, res validate.Result, opts PrettyOpts) {
	banner := summaryLine(file, res)
	if opts.Color {
		style := validStyle
		if !res.Valid {
			style = invalidStyle
		}
		banner = style.Render(banner)
	}
	fmt.Fprintln(w, banner)

	if opts.Quiet {
		return
	}

	errColor := color.New(color.FgRed, color.Bold)
	warnColor := color.New(color.FgYellow, color.Bold)
	if !opts.Color {
		errColor.DisableColor()
		warnColor.DisableColor()
	}

	width := 0
	for _, d := range res.Diagnostics {
		if pw := runewidth.StringWidth(d.Code.ID()); pw > width {
			width = pw
		}
	}
	for _, d := range res.Diagnostics {
		label := errColor.Sprint("error")
		if d.Severity == diag.SevWarning {
			label = warnColor.Sprint("warning")
		}
		fmt.Fprintf(w, "  %s %s %s\n", label, runewidth.FillRight(d.Code.ID(), width), d.Message)
	}
}

// PrettyAnalysis writes the explanation block under a pretty report.
func PrettyAnalysis(w io.Writer, analysis explain.Analysis, opts PrettyOpts) {
	catColor := color.New(color.FgCyan)
	if !opts.Color {
		catColor.DisableColor()
	}
	for _, a := range analysis.Annotations {
		fmt.Fprintf(w, "  %s %s\n", catColor.Sprintf("[%s]", a.Category), a.Message)
		fmt.Fprintf(w, "    hint: %s\n", a.Suggestion)
	}
	fmt.Fprintf(w, "  %s\n", analysis.Summary)
}

// Short writes one machine-grep-friendly line per diagnostic:
// <severity> <code> <file> <message>.
func Short(w io.Writer, file string, res validate.Result) {
	for _, d := range res.Diagnostics {
		sev := "error"
		if d.Severity == diag.SevWarning {
			sev = "warning"
		}
		fmt.Fprintf(w, "%s %s %s %s\n", sev, d.Code.ID(), file, d.Message)
	}
}

// Payload is the json-format output for one validated file.
type Payload struct {
	File       string            `json:"file,omitempty"`
	Valid      bool              `json:"valid"`
	Errors     []string          `json:"errors"`
	Warnings   []string          `json:"warnings"`
	TokenCount int               `json:"tokenCount"`
	Analysis   *explain.Analysis `json:"analysis,omitempty"`
}

// JSON writes the result (and optional analysis) as indented JSON.
func JSON(w io.Writer, file string, res validate.Result, analysis *explain.Analysis) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Payload{
		File:       file,
		Valid:      res.Valid,
		Errors:     res.Errors,
		Warnings:   res.Warnings,
		TokenCount: res.TokenCount,
		Analysis:   analysis,
	})
}

func summaryLine(file string, res validate.Result) string {
	verdict := "valid"
	if !res.Valid {
		verdict = "invalid"
	}
	prefix := ""
	if file != "" {
		prefix = file + ": "
	}
	return fmt.Sprintf("%s%s — %d error(s), %d warning(s), %d token(s)",
		prefix, verdict, len(res.Errors), len(res.Warnings), res.TokenCount)
}
