// Package validate implements the token validation engine: the tree walk,
// the per-type value validators, and the two raw/parsed entry points.
package validate

import (
	"github.com/dembrandt/dtcg-validator/internal/diag"
)

// Result is the outcome of one validation run. Errors and warnings appear in
// document traversal order (depth-first, children in declaration order); that
// order is part of the contract, consumers display it as-is.
type Result struct {
	Valid      bool     `json:"valid" msgpack:"valid"`
	Errors     []string `json:"errors" msgpack:"errors"`
	Warnings   []string `json:"warnings" msgpack:"warnings"`
	TokenCount int      `json:"tokenCount" msgpack:"tokenCount"`

	// Diagnostics carries the structured findings behind Errors/Warnings
	// for renderers that want severity and category codes.
	Diagnostics []diag.Diagnostic `json:"-" msgpack:"diagnostics"`
}

func resultFromBag(bag *diag.Bag, tokenCount int) Result {
	errs, warns := bag.Messages()
	if errs == nil {
		errs = []string{}
	}
	if warns == nil {
		warns = []string{}
	}
	items := bag.Items()
	diags := make([]diag.Diagnostic, len(items))
	copy(diags, items)
	return Result{
		Valid:       !bag.HasErrors(),
		Errors:      errs,
		Warnings:    warns,
		TokenCount:  tokenCount,
		Diagnostics: diags,
	}
}

func invalidResult(code diag.Code, msg string) Result {
	bag := diag.NewBag(diag.DefaultMax)
	bag.Error(code, "", msg)
	return resultFromBag(bag, 0)
}
