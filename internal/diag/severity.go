package diag

// Severity defines the importance of a diagnostic. The pipeline maps its
// error taxonomy onto three levels: lexical and I/O failures are errors,
// structural heuristics that degrade to best-effort output are warnings,
// and info is reserved for verbose tooling output.
type Severity uint8

const (
	// SevInfo is informational; no pipeline phase emits it today.
	SevInfo Severity = iota
	// SevWarning marks a heuristic fallback. The file still produces output.
	SevWarning
	// SevError marks a failure; the file's result is missing or partial.
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}
