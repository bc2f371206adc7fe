package diag

import (
	"fortio.org/safecast"
)

// Bag accumulates diagnostics in emission order, up to a cap. Emission order
// is the document traversal order and is part of the validator's contract, so
// the bag never reorders.
type Bag struct {
	items []Diagnostic
	max   uint16
}

// DefaultMax bounds a bag when the caller does not care.
const DefaultMax = 1000

func NewBag(max int) *Bag {
	capped, err := safecast.Conv[uint16](max)
	if err != nil || capped == 0 {
		capped = DefaultMax
	}
	return &Bag{
		items: make([]Diagnostic, 0, 16),
		max:   capped,
	}
}

// Add appends a diagnostic, honoring the cap.
// Returns false if the diagnostic was not added.
func (b *Bag) Add(d Diagnostic) bool {
	if len(b.items) >= int(b.max) {
		return false
	}
	b.items = append(b.items, d)
	return true
}

// Error appends an error diagnostic.
func (b *Bag) Error(code Code, path, msg string) {
	b.Add(NewError(code, path, msg))
}

// Warn appends a warning diagnostic.
func (b *Bag) Warn(code Code, path, msg string) {
	b.Add(NewWarning(code, path, msg))
}

func (b *Bag) Cap() uint16 {
	return b.max
}

func (b *Bag) Len() int {
	return len(b.items)
}

// HasErrors returns true if at least one diagnostic has error severity.
func (b *Bag) HasErrors() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevError {
			return true
		}
	}
	return false
}

// HasWarnings returns true if at least one diagnostic has warning severity.
func (b *Bag) HasWarnings() bool {
	for i := range b.items {
		if b.items[i].Severity == SevWarning {
			return true
		}
	}
	return false
}

// Items returns a read-only slice of diagnostics.
// Do not modify the returned slice, it aliases the bag's storage.
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Messages splits the bag into error and warning message strings, each in
// emission order.
func (b *Bag) Messages() (errors, warnings []string) {
	for i := range b.items {
		if b.items[i].Severity >= SevError {
			errors = append(errors, b.items[i].Message)
		} else {
			warnings = append(warnings, b.items[i].Message)
		}
	}
	return errors, warnings
}
