package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"

	"github.com/salchaD-27/template-check/internal/finding"
	"github.com/salchaD-27/template-check/internal/session"
)

// WriteSummary prints the closing block of a text run: counts, then the
// itemised errors or a pass line.
func WriteSummary(w io.Writer, findings []finding.Finding) {
	warnings := finding.Count(findings, finding.Warning)
	errs := finding.Count(findings, finding.Error)

	fmt.Fprintln(w, "\n📊 Validation Summary:")
	fmt.Fprintln(w, "✅ Validation completed")

	if warnings > 0 {
		fmt.Fprintf(w, "%s %d warnings found\n", session.Marker(finding.Warning), warnings)
	}

	if errs == 0 {
		fmt.Fprintln(w, "🎉 Template validation passed!")
		return
	}
	fmt.Fprintf(w, "%s %d errors found\n", session.Marker(finding.Error), errs)
	fmt.Fprintln(w, "\nErrors:")
	for _, f := range findings {
		if f.Severity == finding.Error {
			fmt.Fprintf(w, "  - %s\n", f.Message)
		}
	}
}

// ExportMarkdown returns a Markdown formatted report string.
func ExportMarkdown(findings []finding.Finding) (string, error) {
	var b strings.Builder
	b.WriteString("# Template Check Report\n\n")

	if finding.Count(findings, finding.Warning)+finding.Count(findings, finding.Error) == 0 {
		b.WriteString("✅ No issues found.\n")
		return b.String(), nil
	}

	for _, f := range findings {
		if f.Severity == finding.Info {
			continue
		}
		if f.Path != "" {
			b.WriteString(fmt.Sprintf("- **[%s]** `%s`: %s\n", f.Severity, f.Path, f.Message))
		} else {
			b.WriteString(fmt.Sprintf("- **[%s]** %s\n", f.Severity, f.Message))
		}
	}

	return b.String(), nil
}

// ExportJSON returns the JSON formatted report string.
func ExportJSON(findings []finding.Finding) (string, error) {
	if findings == nil {
		findings = []finding.Finding{}
	}
	data, err := json.MarshalIndent(findings, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ExportGitHubActions returns a GitHub Actions annotation formatted string.
// Info findings are omitted.
func ExportGitHubActions(findings []finding.Finding) (string, error) {
	var b strings.Builder
	for _, f := range findings {
		var level string
		switch f.Severity {
		case finding.Error:
			level = "error"
		case finding.Warning:
			level = "warning"
		default:
			continue
		}
		if f.Path != "" {
			b.WriteString(fmt.Sprintf("::%s file=%s::%s\n", level, escapeProperty(f.Path), escapeData(f.Message)))
		} else {
			b.WriteString(fmt.Sprintf("::%s::%s\n", level, escapeData(f.Message)))
		}
	}
	return b.String(), nil
}

// escapeData escapes an annotation message:
// ::error file=app.js,line=1,col=5::Missing semicolon
func escapeData(msg string) string {
	return strings.NewReplacer("%", "%25", "\r", "%0D", "\n", "%0A").Replace(msg)
}

// escapeProperty escapes a property value, which additionally may not
// contain ':' or ','.
func escapeProperty(v string) string {
	return strings.NewReplacer("%", "%25", "\r", "%0D", "\n", "%0A", ":", "%3A", ",", "%2C").Replace(v)
}
