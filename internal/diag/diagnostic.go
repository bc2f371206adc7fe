package diag

// Diagnostic is one finding produced by the validator. Path is the dotted
// token path the finding is anchored at (empty for whole-document findings);
// Message is the full consumer-facing text.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Path     string
	Message  string
}

func New(sev Severity, code Code, path, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Path:     path,
		Message:  msg,
	}
}

func NewError(code Code, path, msg string) Diagnostic {
	return New(SevError, code, path, msg)
}

func NewWarning(code Code, path, msg string) Diagnostic {
	return New(SevWarning, code, path, msg)
}
