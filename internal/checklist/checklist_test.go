package checklist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cl, err := Default()
	require.NoError(t, err)

	assert.Len(t, cl.EssentialFiles, 6)
	assert.Equal(t, Entry{Path: "README.md", Label: "main README"}, cl.EssentialFiles[0])
	assert.Equal(t, ".claude/commands", cl.Commands.Dir.Path)
	assert.Equal(t, []string{
		"create-prd.md",
		"generate-tasks.md",
		"process-task-list.md",
		"resume-task-list.md",
		"create-documentation.md",
	}, cl.Commands.Documents)
	assert.Equal(t, ".claude/commands/create-prd.md", cl.Commands.DocumentPath("create-prd.md"))
	assert.Len(t, cl.GitHub.Files, 5)
	assert.Len(t, cl.Docs.Files, 4)
	assert.Len(t, cl.Structure.Dirs, 3)
	assert.Equal(t, []string{"name", "version", "description", "license"}, cl.Package.RequiredFields)
	assert.Equal(t, []string{"validate", "lint:docs", "lint:commands"}, cl.Package.Scripts)
	assert.Equal(t, "claude-code", cl.Package.Keyword)
	assert.Len(t, cl.Readme.Sections, 6)
	assert.Equal(t, []string{"| Command |", "`/create-prd`"}, cl.Readme.CommandMarkers)
}

func TestDefault_Patterns(t *testing.T) {
	cl, err := Default()
	require.NoError(t, err)

	assert.True(t, cl.Commands.Heading().MatchString("intro\n# Title\n"))
	assert.True(t, cl.Commands.Heading().MatchString("## Section"))
	assert.False(t, cl.Commands.Heading().MatchString("### Deep\n"))
	assert.False(t, cl.Commands.Heading().MatchString("text # not a heading"))

	assert.True(t, cl.Commands.Goal().MatchString("OVERVIEW"))
	assert.True(t, cl.Commands.Usage().MatchString("Implementation"))

	for _, s := range cl.Readme.Sections {
		assert.NotNil(t, s.Regexp(), s.Name)
	}
	assert.True(t, cl.Readme.Sections[0].Regexp().MatchString("GETTING STARTED"))
}

func TestLoad_Override(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checklist.yaml")
	content := `
essential_files:
  - path: go.mod
    label: module file
commands:
  dir: {path: commands, label: commands}
  heading_pattern: "(?m)^# "
  goal_pattern: "goal"
  usage_pattern: "usage"
readme:
  path: README.md
  sections:
    - name: Install
      pattern: "(?i)install"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cl, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []Entry{{Path: "go.mod", Label: "module file"}}, cl.EssentialFiles)
	assert.Empty(t, cl.Commands.Documents)
	assert.Equal(t, "Install", cl.Readme.Sections[0].Name)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read checklist")

	_, err = Parse([]byte("essential_files: [\n"))
	assert.ErrorContains(t, err, "invalid YAML")

	_, err = Parse([]byte(`commands: {heading_pattern: "(", goal_pattern: a, usage_pattern: b}`))
	assert.ErrorContains(t, err, "commands.heading_pattern")

	_, err = Parse([]byte(`commands: {heading_pattern: a, usage_pattern: b}`))
	assert.ErrorContains(t, err, "'commands.goal_pattern' is missing")
}

func TestMarshal_RoundTrip(t *testing.T) {
	cl, err := Default()
	require.NoError(t, err)

	out, err := cl.Marshal()
	require.NoError(t, err)

	again, err := Parse(out)
	require.NoError(t, err)
	assert.Equal(t, cl.EssentialFiles, again.EssentialFiles)
	assert.Equal(t, cl.Package, again.Package)
	assert.Equal(t, cl.Commands.HeadingPattern, again.Commands.HeadingPattern)
}
