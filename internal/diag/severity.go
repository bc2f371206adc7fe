package diag

// Severity defines the importance of a diagnostic. Warnings are informational
// and never render a document invalid.
type Severity uint8

const (
	// SevWarning is for warning diagnostics.
	SevWarning Severity = iota
	// SevError is for diagnostics that make the document invalid.
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}
