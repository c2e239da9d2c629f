// Package pkgmeta reads the package.json of a template repository into an
// explicit record. Each field tracks whether it was present and whether its
// value is truthy; a present but falsy value ("", 0, false, null) is
// treated by callers exactly like an absent one.
package pkgmeta

import (
	"bytes"
	stdjson "encoding/json"
	"errors"
	"strconv"

	"github.com/goccy/go-json"
)

var (
	ErrEmpty     = errors.New("file is empty")
	ErrNotObject = errors.New("top-level value is not an object")
)

// Field describes one JSON member.
type Field struct {
	Present bool
	Truthy  bool
}

// Set reports whether the field is present with a truthy value.
func (f Field) Set() bool {
	return f.Present && f.Truthy
}

// Metadata is the subset of package.json the validator inspects.
type Metadata struct {
	Name        Field
	Version     Field
	Description Field
	License     Field

	// Scripts is set when "scripts" is present and truthy. Entries are
	// only populated when it is an object.
	Scripts Field
	scripts map[string]Field

	// Keywords holds the string elements of "keywords" when it is an
	// array; KeywordsList is false otherwise.
	Keywords     []string
	KeywordsList bool

	other map[string]Field
}

// Field looks up a top-level member by name.
func (m *Metadata) Field(name string) Field {
	switch name {
	case "name":
		return m.Name
	case "version":
		return m.Version
	case "description":
		return m.Description
	case "license":
		return m.License
	case "scripts":
		return m.Scripts
	}
	return m.other[name]
}

// Script looks up an entry of the scripts object.
func (m *Metadata) Script(name string) Field {
	return m.scripts[name]
}

// HasKeyword reports whether keywords is a list containing kw.
func (m *Metadata) HasKeyword(kw string) bool {
	for _, k := range m.Keywords {
		if k == kw {
			return true
		}
	}
	return false
}

// Parse decodes package.json content.
func Parse(data []byte) (*Metadata, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmpty
	}
	// goccy accepts some input RFC 8259 rejects, such as raw control
	// characters inside strings.
	if !stdjson.Valid(data) {
		var v any
		if err := stdjson.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return nil, errors.New("invalid JSON")
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, ErrNotObject
	}

	m := &Metadata{other: make(map[string]Field, len(raw))}
	for k, v := range raw {
		f := Field{Present: true, Truthy: truthy(v)}
		switch k {
		case "name":
			m.Name = f
		case "version":
			m.Version = f
		case "description":
			m.Description = f
		case "license":
			m.License = f
		case "scripts":
			m.Scripts = f
			m.scripts = members(v)
		case "keywords":
			m.Keywords, m.KeywordsList = stringList(v)
		default:
			m.other[k] = f
		}
	}
	return m, nil
}

func members(v json.RawMessage) map[string]Field {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(v, &obj); err != nil {
		return nil
	}
	out := make(map[string]Field, len(obj))
	for k, mv := range obj {
		out[k] = Field{Present: true, Truthy: truthy(mv)}
	}
	return out
}

func stringList(v json.RawMessage) ([]string, bool) {
	var items []json.RawMessage
	if err := json.Unmarshal(v, &items); err != nil || items == nil {
		return nil, false
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		var s string
		if json.Unmarshal(it, &s) == nil {
			out = append(out, s)
		}
	}
	return out, true
}

// truthy follows JavaScript truthiness for a decoded JSON value.
func truthy(v json.RawMessage) bool {
	v = bytes.TrimSpace(v)
	if len(v) == 0 {
		return false
	}
	switch v[0] {
	case 'n':
		return false
	case 't':
		return true
	case 'f':
		return false
	case '"':
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return false
		}
		return s != ""
	case '{', '[':
		return true
	}
	n, err := strconv.ParseFloat(string(v), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return false
	}
	return n != 0
}
