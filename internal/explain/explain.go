// Package explain annotates validator error strings with a category and a
// human suggestion. It is deliberately mechanical: classification is substring
// matching over the message text, and the input list is never altered, only
// annotated.
package explain

import (
	"fmt"
	"strings"
)

// Annotation is the per-error analysis record.
type Annotation struct {
	Message    string `json:"message"`
	Category   string `json:"category"`
	Suggestion string `json:"suggestion"`
	Details    string `json:"details"`
}

// Analysis is the full output: one annotation per input error, in input
// order, plus an aggregate summary line.
type Analysis struct {
	Annotations []Annotation `json:"annotations"`
	Summary     string       `json:"summary"`
}

// Categories, in summary display order.
const (
	CategoryStructure = "structure"
	CategoryType      = "type"
	CategoryValue     = "value"
	CategoryNaming    = "naming"
	CategoryReference = "reference"
)

type rule struct {
	substr     string
	category   string
	suggestion string
	details    string
}

// First match wins, so the more specific patterns sit on top.
var rules = []rule{
	{"Circular reference", CategoryReference,
		"Break the cycle by pointing one of the tokens at a concrete value.",
		"Reference chains must terminate in a token whose $value is not itself a reference."},
	{"points to non-existent token", CategoryReference,
		"Check the referenced path for typos and make sure the target token exists.",
		"References use the dotted path of the target token, e.g. {color.primary}."},
	{"Input is empty", CategoryStructure,
		"Provide a JSON document with at least a top-level object.",
		"An empty or whitespace-only input cannot be validated."},
	{"Invalid JSON", CategoryStructure,
		"Fix the JSON syntax before validating token semantics.",
		"The document must parse before tokens can be checked."},
	{"Root must be an object", CategoryStructure,
		"Wrap the document in a top-level object of groups and tokens.",
		"Arrays and scalars cannot form a token tree."},
	{"missing a $value", CategoryStructure,
		"Add a $value to the token, or remove the stray $type.",
		"Every token must carry a $value; groups carry children instead."},
	{"must be an object carrying", CategoryStructure,
		"Replace the scalar with a token object holding a $value.",
		"Children of a group are either tokens or nested groups."},
	{"must not contain", CategoryNaming,
		"Rename the token without '{', '}', '.', or '\"' characters.",
		"These characters collide with reference syntax and dotted paths."},
	{"unknown $type", CategoryType,
		"Use one of the thirteen token types, e.g. color, dimension, or typography.",
		"Unrecognized types skip value validation and only warn."},
	{"has no $type", CategoryType,
		"Declare a $type on the token or on one of its enclosing groups.",
		"A token's type may also be inherited through a resolved reference."},
}

const valueSuggestion = "Check the value against the rules for its declared $type."
const valueDetails = "Each token type constrains the shape and ranges of its $value."

// Classify categorizes one error message.
func Classify(message string) Annotation {
	for _, r := range rules {
		if strings.Contains(message, r.substr) {
			return Annotation{
				Message:    message,
				Category:   r.category,
				Suggestion: r.suggestion,
				Details:    r.details,
			}
		}
	}
	return Annotation{
		Message:    message,
		Category:   CategoryValue,
		Suggestion: valueSuggestion,
		Details:    valueDetails,
	}
}

// Analyze classifies every error string, preserving input order.
func Analyze(errors []string) Analysis {
	annotations := make([]Annotation, 0, len(errors))
	counts := map[string]int{}
	for _, msg := range errors {
		a := Classify(msg)
		annotations = append(annotations, a)
		counts[a.Category]++
	}
	return Analysis{
		Annotations: annotations,
		Summary:     summarize(len(errors), counts),
	}
}

func summarize(total int, counts map[string]int) string {
	if total == 0 {
		return "No issues found"
	}
	parts := make([]string, 0, 5)
	for _, cat := range []string{CategoryStructure, CategoryType, CategoryValue, CategoryNaming, CategoryReference} {
		if n := counts[cat]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, cat))
		}
	}
	noun := "issues"
	if total == 1 {
		noun = "issue"
	}
	return fmt.Sprintf("%d %s found: %s", total, noun, strings.Join(parts, ", "))
}
