package validate

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/salchaD-27/template-check/internal/pkgmeta"
)

// CheckFileExists records whether rel exists under the project root.
func (e *Engine) CheckFileExists(rel, label string) bool {
	_, err := os.Stat(e.sess.Resolve(rel))
	if err != nil {
		e.log.Debug("stat failed", zap.String("path", rel), zap.Error(err))
		e.sess.Error(rel, fmt.Sprintf("Missing %s: %s", label, rel))
		return false
	}
	e.sess.Info(rel, fmt.Sprintf("Found %s: %s", label, rel))
	return true
}

// CheckDirectoryExists records whether rel exists and is a directory.
func (e *Engine) CheckDirectoryExists(rel, label string) bool {
	info, err := os.Stat(e.sess.Resolve(rel))
	if err != nil || !info.IsDir() {
		e.sess.Error(rel, fmt.Sprintf("Missing %s: %s", label, rel))
		return false
	}
	e.sess.Info(rel, fmt.Sprintf("Found %s: %s", label, rel))
	return true
}

// CheckCommandDocumentStructure looks for a heading and for the goal and
// usage keyword groups in a command document. The two outcomes are
// recorded independently.
func (e *Engine) CheckCommandDocumentStructure(rel string) {
	data, err := os.ReadFile(e.sess.Resolve(rel))
	if err != nil {
		e.sess.Error(rel, fmt.Sprintf("Cannot read command %s: %v", rel, err))
		return
	}
	content := string(data)
	c := &e.list.Commands

	if c.Heading().MatchString(content) {
		e.sess.Info(rel, fmt.Sprintf("Command %s has proper heading structure", rel))
	} else {
		e.sess.Warn(rel, fmt.Sprintf("Command %s may be missing proper headings", rel))
	}

	if c.Goal().MatchString(content) && c.Usage().MatchString(content) {
		e.sess.Info(rel, fmt.Sprintf("Command %s has expected sections", rel))
	} else {
		e.sess.Warn(rel, fmt.Sprintf("Command %s may be missing expected sections", rel))
	}
}

// CheckPackageMetadata validates the required fields, scripts and keywords
// of package.json. A missing or unparseable file ends the pass with a
// single error.
func (e *Engine) CheckPackageMetadata() {
	p := e.list.Package
	data, err := os.ReadFile(e.sess.Resolve(p.Path))
	if err != nil {
		e.log.Debug("package metadata unavailable", zap.String("path", p.Path), zap.Error(err))
		e.sess.Error(p.Path, p.Path+" not found")
		return
	}

	meta, err := pkgmeta.Parse(data)
	if err != nil {
		e.sess.Error(p.Path, fmt.Sprintf("Invalid JSON in %s: %v", p.Path, err))
		return
	}

	for _, field := range p.RequiredFields {
		if meta.Field(field).Set() {
			e.sess.Info(p.Path, fmt.Sprintf("%s has %s", p.Path, field))
		} else {
			e.sess.Error(p.Path, fmt.Sprintf("%s missing %s", p.Path, field))
		}
	}

	if meta.Scripts.Set() {
		for _, script := range p.Scripts {
			if meta.Script(script).Set() {
				e.sess.Info(p.Path, fmt.Sprintf("%s has %s script", p.Path, script))
			} else {
				e.sess.Warn(p.Path, fmt.Sprintf("%s missing %s script", p.Path, script))
			}
		}
	}

	if meta.HasKeyword(p.Keyword) {
		e.sess.Info(p.Path, p.Path+" has appropriate keywords")
	} else {
		e.sess.Warn(p.Path, p.Path+" may be missing relevant keywords")
	}
}

// CheckReadmeSections matches the README against each section pattern and
// looks for a command table or example invocation.
func (e *Engine) CheckReadmeSections() {
	r := e.list.Readme
	data, err := os.ReadFile(e.sess.Resolve(r.Path))
	if err != nil {
		e.log.Debug("readme unavailable", zap.String("path", r.Path), zap.Error(err))
		e.sess.Error(r.Path, r.Path+" not found")
		return
	}
	content := string(data)

	for i := range r.Sections {
		s := &r.Sections[i]
		if s.Regexp().MatchString(content) {
			e.sess.Info(r.Path, fmt.Sprintf("README has %s section", s.Name))
		} else {
			e.sess.Warn(r.Path, fmt.Sprintf("README may be missing %s section", s.Name))
		}
	}

	documented := false
	for _, marker := range r.CommandMarkers {
		if strings.Contains(content, marker) {
			documented = true
			break
		}
	}
	if documented {
		e.sess.Info(r.Path, "README includes command documentation")
	} else {
		e.sess.Warn(r.Path, "README may be missing command documentation")
	}
}
