package finding

type Severity string

const (
	Info    Severity = "INFO"
	Warning Severity = "WARN"
	Error   Severity = "ERROR"
)

// Finding is one classified outcome of a template check. Path is relative
// to the project root and may be empty for checks that are not tied to a
// single file.
type Finding struct {
	Path     string   `json:"path,omitempty"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// Count returns how many findings carry the given severity.
func Count(findings []Finding, sev Severity) int {
	n := 0
	for _, f := range findings {
		if f.Severity == sev {
			n++
		}
	}
	return n
}
