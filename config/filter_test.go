package config

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yaml "go.yaml.in/yaml/v4"
)

func TestParseTagMatcher(t *testing.T) {
	tests := []struct {
		input   string
		ok      bool
		matches []string
		misses  []string
	}{
		{input: "pets", ok: true, matches: []string{"pets"}, misses: []string{"Pets", "pets-admin"}},
		{input: "/^pet/", ok: true, matches: []string{"pets", "petstore"}, misses: []string{"store"}},
		{input: "/", ok: true, matches: []string{"/"}},
		{input: "//", ok: true, matches: []string{"anything", ""}},
		{input: "/[unclosed/", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			m, ok := ParseTagMatcher(tt.input)
			require.Equal(t, tt.ok, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.input, m.String())
			for _, tag := range tt.matches {
				assert.True(t, m.Match(tag), "expected %q to match %q", tt.input, tag)
			}
			for _, tag := range tt.misses {
				assert.False(t, m.Match(tag), "expected %q not to match %q", tt.input, tag)
			}
		})
	}
}

func TestPatternMatcher(t *testing.T) {
	m := Pattern(regexp.MustCompile(`admin$`))
	assert.True(t, m.Match("super-admin"))
	assert.False(t, m.Match("admins"))
	assert.Equal(t, "/admin$/", m.String())
}

func TestFiltersUnmarshalYAML(t *testing.T) {
	t.Run("drops non-string and invalid entries", func(t *testing.T) {
		var f Filters
		require.NoError(t, yaml.Unmarshal([]byte(`
mode: exclude
tags:
  - pets
  - 42
  - {nested: map}
  - [a, b]
  - "/^store/"
  - "/(/"
  - true
`), &f))

		require.Len(t, f.Tags, 2)
		assert.Equal(t, "pets", f.Tags[0].String())
		assert.Equal(t, "/^store/", f.Tags[1].String())
		assert.Equal(t, FilterExclude, f.EffectiveMode())
	})

	t.Run("missing tags means no filter", func(t *testing.T) {
		var f Filters
		require.NoError(t, yaml.Unmarshal([]byte(`mode: include`), &f))
		assert.Nil(t, f.Tags)
	})

	t.Run("empty tags list is configured", func(t *testing.T) {
		var f Filters
		require.NoError(t, yaml.Unmarshal([]byte(`tags: []`), &f))
		assert.NotNil(t, f.Tags)
		assert.Empty(t, f.Tags)
	})

	t.Run("quoted numbers are strings", func(t *testing.T) {
		var f Filters
		require.NoError(t, yaml.Unmarshal([]byte(`tags: ["42"]`), &f))
		require.Len(t, f.Tags, 1)
		assert.True(t, f.Tags[0].Match("42"))
	})
}

func TestEffectiveMode(t *testing.T) {
	var nilFilters *Filters
	assert.Equal(t, FilterInclude, nilFilters.EffectiveMode())
	assert.Equal(t, FilterInclude, (&Filters{}).EffectiveMode())
	assert.Equal(t, FilterInclude, (&Filters{Mode: "bogus"}).EffectiveMode())
	assert.Equal(t, FilterExclude, (&Filters{Mode: FilterExclude}).EffectiveMode())
}
