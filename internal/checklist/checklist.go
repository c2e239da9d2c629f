// Package checklist holds the expected layout of a command template
// repository: which paths must exist and which content markers the
// validator looks for.
package checklist

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// Entry is a path relative to the project root with a human label used in
// messages.
type Entry struct {
	Path  string `yaml:"path"`
	Label string `yaml:"label"`
}

type Commands struct {
	Dir            Entry    `yaml:"dir"`
	Documents      []string `yaml:"documents"`
	HeadingPattern string   `yaml:"heading_pattern"`
	GoalPattern    string   `yaml:"goal_pattern"`
	UsagePattern   string   `yaml:"usage_pattern"`

	heading *regexp.Regexp
	goal    *regexp.Regexp
	usage   *regexp.Regexp
}

// DocumentPath returns the root-relative path of a command document.
func (c *Commands) DocumentPath(name string) string {
	return c.Dir.Path + "/" + name
}

func (c *Commands) Heading() *regexp.Regexp { return c.heading }
func (c *Commands) Goal() *regexp.Regexp    { return c.goal }
func (c *Commands) Usage() *regexp.Regexp   { return c.usage }

type GitHub struct {
	Dir          Entry   `yaml:"dir"`
	Files        []Entry `yaml:"files"`
	WorkflowsDir Entry   `yaml:"workflows_dir"`
	Workflows    []Entry `yaml:"workflows"`
}

type Docs struct {
	Dir   Entry   `yaml:"dir"`
	Files []Entry `yaml:"files"`
}

type Structure struct {
	Dirs           []Entry `yaml:"dirs"`
	PlaceholderDir string  `yaml:"placeholder_dir"`
	Placeholder    string  `yaml:"placeholder"`
}

type Package struct {
	Path           string   `yaml:"path"`
	RequiredFields []string `yaml:"required_fields"`
	Scripts        []string `yaml:"scripts"`
	Keyword        string   `yaml:"keyword"`
}

// Section is a README section recognised by a pattern anywhere in the
// document.
type Section struct {
	Name    string `yaml:"name"`
	Pattern string `yaml:"pattern"`

	re *regexp.Regexp
}

func (s *Section) Regexp() *regexp.Regexp { return s.re }

type Readme struct {
	Path           string    `yaml:"path"`
	Sections       []Section `yaml:"sections"`
	CommandMarkers []string  `yaml:"command_markers"`
}

// Checklist is the complete set of expectations, listed in pass order.
type Checklist struct {
	EssentialFiles []Entry   `yaml:"essential_files"`
	Commands       Commands  `yaml:"commands"`
	GitHub         GitHub    `yaml:"github"`
	Docs           Docs      `yaml:"docs"`
	Structure      Structure `yaml:"structure"`
	Package        Package   `yaml:"package"`
	Readme         Readme    `yaml:"readme"`
}

// Default returns the built-in checklist.
func Default() (*Checklist, error) {
	return Parse(defaultYAML)
}

// Load reads a checklist from a YAML file. An empty path yields the
// built-in checklist.
func Load(path string) (*Checklist, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read checklist %q: %w", path, err)
	}
	cl, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("checklist %s: %w", path, err)
	}
	return cl, nil
}

// Parse decodes YAML into a checklist and compiles its patterns.
func Parse(data []byte) (*Checklist, error) {
	var cl Checklist
	if err := yaml.Unmarshal(data, &cl); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	if err := cl.compile(); err != nil {
		return nil, err
	}
	return &cl, nil
}

// Marshal renders the checklist back to YAML.
func (cl *Checklist) Marshal() ([]byte, error) {
	return yaml.Marshal(cl)
}

func (cl *Checklist) compile() error {
	var err error
	c := &cl.Commands
	if c.heading, err = compile("commands.heading_pattern", c.HeadingPattern); err != nil {
		return err
	}
	if c.goal, err = compile("commands.goal_pattern", c.GoalPattern); err != nil {
		return err
	}
	if c.usage, err = compile("commands.usage_pattern", c.UsagePattern); err != nil {
		return err
	}
	for i := range cl.Readme.Sections {
		s := &cl.Readme.Sections[i]
		if s.re, err = compile(fmt.Sprintf("readme.sections[%d]", i), s.Pattern); err != nil {
			return err
		}
	}
	return nil
}

func compile(field, pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, fmt.Errorf("'%s' is missing", field)
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("'%s' is not a valid pattern: %w", field, err)
	}
	return re, nil
}
