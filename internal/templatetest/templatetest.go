// Package templatetest builds template repository trees for tests.
package templatetest

import (
	"os"
	"path/filepath"
	"testing"
)

const CommandDoc = `# Create PRD

## Goal

Describe the feature.

## Process

1. Ask clarifying questions.
`

const Readme = `# Claude Code Command Template

## Quick Start

## Workflow Overview

## Commands

| Command | Purpose |
|---------|---------|
| ` + "`/create-prd`" + ` | Create a PRD |

## Directory Structure

## Contributing

## License
`

const PackageJSON = `{
  "name": "claude-code-command-template",
  "version": "1.0.0",
  "description": "Command template",
  "license": "MIT",
  "scripts": {
    "validate": "template-check",
    "lint:docs": "markdownlint docs",
    "lint:commands": "markdownlint .claude/commands"
  },
  "keywords": ["claude-code", "template"]
}
`

// Files maps every artifact of a complete template repository to its
// content.
var Files = map[string]string{
	"README.md":          Readme,
	"LICENSE":            "MIT License\n",
	".gitignore":         "node_modules/\n",
	"CONTRIBUTING.md":    "# Contributing\n",
	"CODE_OF_CONDUCT.md": "# Code of Conduct\n",
	"package.json":       PackageJSON,

	".claude/commands/create-prd.md":           CommandDoc,
	".claude/commands/generate-tasks.md":       CommandDoc,
	".claude/commands/process-task-list.md":    CommandDoc,
	".claude/commands/resume-task-list.md":     CommandDoc,
	".claude/commands/create-documentation.md": CommandDoc,

	".github/template.yml":                       "name: template\n",
	".github/pull_request_template.md":           "## Summary\n",
	".github/ISSUE_TEMPLATE/bug_report.yml":      "name: Bug\n",
	".github/ISSUE_TEMPLATE/feature_request.yml": "name: Feature\n",
	".github/ISSUE_TEMPLATE/prd_request.yml":     "name: PRD\n",
	".github/workflows/validate-template.yml":    "on: push\n",

	"docs/workflow-guide.md":   "# Workflow\n",
	"docs/command-usage.md":    "# Usage\n",
	"docs/best-practices.md":   "# Best practices\n",
	"docs/examples/README.md":  "# Examples\n",
	"tasks/.gitkeep":           "",
	"scripts/validate-hook.sh": "#!/bin/sh\n",
}

// WriteComplete populates root with a template repository that passes
// every check.
func WriteComplete(t testing.TB, root string) {
	t.Helper()
	for rel, content := range Files {
		WriteFile(t, root, rel, content)
	}
}

// WriteFile writes content to root/rel, creating parent directories.
func WriteFile(t testing.TB, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", rel, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", rel, err)
	}
}

// Remove deletes root/rel and everything below it.
func Remove(t testing.TB, root, rel string) {
	t.Helper()
	if err := os.RemoveAll(filepath.Join(root, filepath.FromSlash(rel))); err != nil {
		t.Fatalf("remove %s: %v", rel, err)
	}
}
