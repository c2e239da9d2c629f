// Package session accumulates the findings of a single validation run.
package session

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/salchaD-27/template-check/internal/finding"
)

// Session owns the resolved project root and the ordered findings of one
// run. Every finding is echoed to the output writer as it is recorded.
type Session struct {
	root     string
	out      io.Writer
	findings []finding.Finding
}

// New resolves root to an absolute path and returns an empty session that
// streams to out. A nil out discards the stream.
func New(root string, out io.Writer) (*Session, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve project root %q: %w", root, err)
	}
	if out == nil {
		out = io.Discard
	}
	return &Session{root: abs, out: out}, nil
}

// Root returns the absolute project root.
func (s *Session) Root() string {
	return s.root
}

// Resolve joins a slash-separated relative path onto the root.
func (s *Session) Resolve(rel string) string {
	return filepath.Join(s.root, filepath.FromSlash(rel))
}

// Out is the stream findings are echoed to.
func (s *Session) Out() io.Writer {
	return s.out
}

// Section prints a progress marker for the start of a pass.
func (s *Session) Section(title string) {
	fmt.Fprintf(s.out, "\n🔍 %s...\n", title)
}

// Info records a passed check.
func (s *Session) Info(path, msg string) {
	s.record(path, finding.Info, msg)
}

// Warn records an advisory finding.
func (s *Session) Warn(path, msg string) {
	s.record(path, finding.Warning, msg)
}

// Error records a missing required artifact or malformed file.
func (s *Session) Error(path, msg string) {
	s.record(path, finding.Error, msg)
}

func (s *Session) record(path string, sev finding.Severity, msg string) {
	s.findings = append(s.findings, finding.Finding{Path: path, Severity: sev, Message: msg})
	fmt.Fprintf(s.out, "%s %s\n", Marker(sev), msg)
}

// Findings returns every recorded finding in record order.
func (s *Session) Findings() []finding.Finding {
	out := make([]finding.Finding, len(s.findings))
	copy(out, s.findings)
	return out
}

// Warnings returns the warning findings in record order.
func (s *Session) Warnings() []finding.Finding {
	return s.filter(finding.Warning)
}

// Errors returns the error findings in record order.
func (s *Session) Errors() []finding.Finding {
	return s.filter(finding.Error)
}

func (s *Session) filter(sev finding.Severity) []finding.Finding {
	var out []finding.Finding
	for _, f := range s.findings {
		if f.Severity == sev {
			out = append(out, f)
		}
	}
	return out
}

// Marker is the console prefix for a severity.
func Marker(sev finding.Severity) string {
	switch sev {
	case finding.Error:
		return "❌"
	case finding.Warning:
		return "⚠️ "
	default:
		return "✅"
	}
}
