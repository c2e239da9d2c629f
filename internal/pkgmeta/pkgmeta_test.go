package pkgmeta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Fields(t *testing.T) {
	m, err := Parse([]byte(`{
		"name": "tmpl",
		"version": "",
		"description": null,
		"author": "someone",
		"private": false
	}`))
	require.NoError(t, err)

	assert.Equal(t, Field{Present: true, Truthy: true}, m.Name)
	assert.Equal(t, Field{Present: true, Truthy: false}, m.Version)
	assert.Equal(t, Field{Present: true, Truthy: false}, m.Description)
	assert.Equal(t, Field{}, m.License)

	assert.True(t, m.Field("name").Set())
	assert.False(t, m.Field("version").Set())
	assert.False(t, m.Field("license").Set())
	assert.True(t, m.Field("author").Set())
	assert.False(t, m.Field("private").Set())
	assert.False(t, m.Field("nope").Present)
}

func TestTruthy(t *testing.T) {
	tests := map[string]bool{
		`null`:     false,
		`true`:     true,
		`false`:    false,
		`""`:       false,
		`"x"`:      true,
		`0`:        false,
		`-0`:       false,
		`0.0`:      false,
		`1`:        true,
		`-2.5e3`:   true,
		`1e400`:    true,
		`-1e400`:   true,
		`1e-400`:   false,
		`{}`:       true,
		`[]`:       true,
		` "pad" `:  true,
		`"\u0000"`: true,
	}
	for raw, want := range tests {
		assert.Equal(t, want, truthy([]byte(raw)), raw)
	}
}

func TestParse_Scripts(t *testing.T) {
	t.Run("object", func(t *testing.T) {
		m, err := Parse([]byte(`{"scripts": {"validate": "node x", "lint:docs": ""}}`))
		require.NoError(t, err)
		assert.True(t, m.Scripts.Set())
		assert.True(t, m.Script("validate").Set())
		assert.False(t, m.Script("lint:docs").Set())
		assert.False(t, m.Script("lint:commands").Present)
	})

	t.Run("not an object", func(t *testing.T) {
		m, err := Parse([]byte(`{"scripts": "validate"}`))
		require.NoError(t, err)
		assert.True(t, m.Scripts.Set())
		assert.False(t, m.Script("validate").Set())
	})

	t.Run("absent", func(t *testing.T) {
		m, err := Parse([]byte(`{}`))
		require.NoError(t, err)
		assert.False(t, m.Scripts.Present)
	})
}

func TestParse_Keywords(t *testing.T) {
	tests := []struct {
		name   string
		json   string
		isList bool
		has    bool
	}{
		{"list with tag", `{"keywords": ["template", "claude-code"]}`, true, true},
		{"list without tag", `{"keywords": ["claude"]}`, true, false},
		{"mixed element types", `{"keywords": [1, "claude-code", null]}`, true, true},
		{"string is not a list", `{"keywords": "claude-code"}`, false, false},
		{"null", `{"keywords": null}`, false, false},
		{"absent", `{}`, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Parse([]byte(tt.json))
			require.NoError(t, err)
			assert.Equal(t, tt.isList, m.KeywordsList)
			assert.Equal(t, tt.has, m.HasKeyword("claude-code"))
		})
	}
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse([]byte("  \n"))
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = Parse([]byte("null"))
	assert.ErrorIs(t, err, ErrNotObject)

	_, err = Parse([]byte(`{"name": }`))
	assert.Error(t, err)

	_, err = Parse([]byte(`[1, 2]`))
	assert.Error(t, err)

	_, err = Parse([]byte("{\"name\": \"a\x01b\"}"))
	assert.Error(t, err)
}
