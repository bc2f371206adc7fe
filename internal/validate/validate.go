package validate

import (
	"bytes"
	"fmt"

	"github.com/dembrandt/dtcg-validator/internal/diag"
	"github.com/dembrandt/dtcg-validator/internal/dtcg"
	"github.com/dembrandt/dtcg-validator/internal/registry"
)

// Options tune one validation run.
type Options struct {
	// MaxDiagnostics caps the number of findings; 0 means the default cap.
	MaxDiagnostics int
}

// Bytes parses raw JSON and validates the resulting document. Empty input,
// unparseable input, and a non-object root short-circuit before any registry
// is built.
func Bytes(raw []byte) Result {
	return BytesWithOptions(raw, Options{})
}

// BytesWithOptions is Bytes with an explicit diagnostics cap.
func BytesWithOptions(raw []byte, opts Options) Result {
	if len(bytes.TrimSpace(raw)) == 0 {
		return invalidResult(diag.StructEmptyInput, "Input is empty")
	}
	value, err := dtcg.Parse(raw)
	if err != nil {
		return invalidResult(diag.StructInvalidJSON, fmt.Sprintf("Invalid JSON: %v", err))
	}
	doc, ok := value.(*dtcg.Object)
	if !ok {
		return invalidResult(diag.StructBadRoot, "Root must be an object")
	}
	return DocumentWithOptions(doc, opts)
}

// Document validates an already-parsed document. A nil document yields the
// empty-input error.
func Document(doc *dtcg.Object) Result {
	return DocumentWithOptions(doc, Options{})
}

// DocumentWithOptions is Document with an explicit diagnostics cap.
// The registry, the walker, and the bag live only for this call; repeated
// runs over the same document produce identical results.
func DocumentWithOptions(doc *dtcg.Object, opts Options) Result {
	if doc == nil {
		return invalidResult(diag.StructEmptyInput, "Input is empty")
	}
	maxDiags := opts.MaxDiagnostics
	if maxDiags <= 0 {
		maxDiags = diag.DefaultMax
	}
	w := &walker{
		reg: registry.Build(doc),
		bag: diag.NewBag(maxDiags),
	}
	w.walkNode(doc, "", "")
	return resultFromBag(w.bag, CountTokens(doc))
}
