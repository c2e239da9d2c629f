// Package validate runs the template checks against a project tree.
package validate

import (
	"fmt"
	"os"
	"path"
	"strings"

	"go.uber.org/zap"

	"github.com/salchaD-27/template-check/internal/checklist"
	"github.com/salchaD-27/template-check/internal/finding"
	"github.com/salchaD-27/template-check/internal/session"
)

// Engine executes checks and records their outcome in a session.
type Engine struct {
	sess *session.Session
	list *checklist.Checklist
	log  *zap.Logger
}

// Result summarises a completed run.
type Result struct {
	Findings []finding.Finding
	Warnings int
	Errors   int
}

// Passed reports whether the run recorded no errors.
func (r Result) Passed() bool {
	return r.Errors == 0
}

// New returns an engine bound to a session. A nil logger disables
// diagnostics.
func New(sess *session.Session, list *checklist.Checklist, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{sess: sess, list: list, log: log}
}

// Run executes every pass in order. Nothing a single check finds stops the
// run; a missing prerequisite directory only skips the checks nested
// under it.
func (e *Engine) Run() Result {
	e.log.Debug("starting validation", zap.String("root", e.sess.Root()))

	passes := []struct {
		title string
		run   func()
	}{
		{"Validating essential files", e.essentialFiles},
		{"Validating Claude commands", e.commands},
		{"Validating GitHub templates", e.githubTemplates},
		{"Validating documentation", e.documentation},
		{"Validating project structure", e.projectStructure},
		{"Validating " + e.list.Package.Path, e.CheckPackageMetadata},
		{"Validating " + e.list.Readme.Path, e.CheckReadmeSections},
	}
	for _, p := range passes {
		e.sess.Section(p.title)
		p.run()
	}

	findings := e.sess.Findings()
	res := Result{
		Findings: findings,
		Warnings: finding.Count(findings, finding.Warning),
		Errors:   finding.Count(findings, finding.Error),
	}
	e.log.Debug("validation finished", zap.Int("warnings", res.Warnings), zap.Int("errors", res.Errors))
	return res
}

func (e *Engine) essentialFiles() {
	for _, f := range e.list.EssentialFiles {
		e.CheckFileExists(f.Path, f.Label)
	}
}

func (e *Engine) commands() {
	c := &e.list.Commands
	if !e.CheckDirectoryExists(c.Dir.Path, c.Dir.Label) {
		return
	}
	for _, name := range c.Documents {
		rel := c.DocumentPath(name)
		if e.CheckFileExists(rel, "Claude command: "+name) {
			e.CheckCommandDocumentStructure(rel)
		}
	}
}

func (e *Engine) githubTemplates() {
	g := e.list.GitHub
	if !e.CheckDirectoryExists(g.Dir.Path, g.Dir.Label) {
		return
	}
	for _, f := range g.Files {
		e.CheckFileExists(f.Path, f.Label)
	}
	if e.CheckDirectoryExists(g.WorkflowsDir.Path, g.WorkflowsDir.Label) {
		for _, f := range g.Workflows {
			e.CheckFileExists(f.Path, f.Label)
		}
	}
}

func (e *Engine) documentation() {
	d := e.list.Docs
	if !e.CheckDirectoryExists(d.Dir.Path, d.Dir.Label) {
		return
	}
	for _, f := range d.Files {
		e.CheckFileExists(f.Path, f.Label)
	}
}

func (e *Engine) projectStructure() {
	s := e.list.Structure
	for _, d := range s.Dirs {
		e.CheckDirectoryExists(d.Path, d.Label)
	}

	if s.PlaceholderDir == "" || !exists(e.sess.Resolve(s.PlaceholderDir)) {
		return
	}
	dir := s.PlaceholderDir
	dir = strings.ToUpper(dir[:1]) + dir[1:]
	if exists(e.sess.Resolve(s.Placeholder)) {
		e.sess.Info(s.Placeholder, fmt.Sprintf("%s directory has proper placeholder", dir))
	} else {
		e.sess.Warn(s.Placeholder, fmt.Sprintf("%s directory missing %s file", dir, path.Base(s.Placeholder)))
	}
}

func exists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
