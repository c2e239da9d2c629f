package session

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salchaD-27/template-check/internal/finding"
)

func TestNew_ResolvesRoot(t *testing.T) {
	dir := t.TempDir()
	s, err := New(filepath.Join(dir, "a", ".."), nil)
	require.NoError(t, err)

	assert.Equal(t, dir, s.Root())
	assert.Equal(t, filepath.Join(dir, ".github", "template.yml"), s.Resolve(".github/template.yml"))
}

func TestSession_RecordsAndStreams(t *testing.T) {
	var buf bytes.Buffer
	s, err := New(t.TempDir(), &buf)
	require.NoError(t, err)

	s.Section("Validating things")
	s.Info("a", "found a")
	s.Warn("b", "odd b")
	s.Error("c", "missing c")
	s.Warn("", "odd d")

	assert.Equal(t, "\n🔍 Validating things...\n✅ found a\n⚠️  odd b\n❌ missing c\n⚠️  odd d\n", buf.String())

	assert.Equal(t, []finding.Finding{
		{Path: "a", Severity: finding.Info, Message: "found a"},
		{Path: "b", Severity: finding.Warning, Message: "odd b"},
		{Path: "c", Severity: finding.Error, Message: "missing c"},
		{Path: "", Severity: finding.Warning, Message: "odd d"},
	}, s.Findings())
	assert.Len(t, s.Warnings(), 2)
	assert.Len(t, s.Errors(), 1)
	assert.Equal(t, "missing c", s.Errors()[0].Message)
}

func TestSession_FindingsIsACopy(t *testing.T) {
	s, err := New(t.TempDir(), nil)
	require.NoError(t, err)
	s.Info("a", "found a")

	fs := s.Findings()
	fs[0].Message = "changed"

	assert.Equal(t, "found a", s.Findings()[0].Message)
}
