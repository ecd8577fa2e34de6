package config

import (
	"regexp"
	"strings"

	yaml "go.yaml.in/yaml/v4"
)

// FilterMode decides whether matching operations are kept or removed.
type FilterMode string

// Filter modes.
const (
	FilterInclude FilterMode = "include"
	FilterExclude FilterMode = "exclude"
)

// Filters restricts synthesis to a subset of operations by tag.
type Filters struct {
	// Tags lists the matchers. Nil means no tag filter is configured.
	Tags []TagMatcher `json:"tags,omitempty" yaml:"tags,omitempty"`
	// Mode defaults to include
	Mode FilterMode `json:"mode,omitempty" yaml:"mode,omitempty"`
}

// EffectiveMode returns Mode, defaulting to include.
func (f *Filters) EffectiveMode() FilterMode {
	if f == nil || f.Mode != FilterExclude {
		return FilterInclude
	}
	return FilterExclude
}

// UnmarshalYAML decodes filters. Tag entries that are not strings, and
// "/pattern/" entries that do not compile, are dropped.
func (f *Filters) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Tags []yaml.Node `yaml:"tags"`
		Mode string      `yaml:"mode"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}

	f.Mode = FilterMode(raw.Mode)
	f.Tags = nil
	if raw.Tags == nil {
		return nil
	}
	f.Tags = make([]TagMatcher, 0, len(raw.Tags))
	for _, node := range raw.Tags {
		if node.Kind != yaml.ScalarNode || node.ShortTag() != "!!str" {
			continue
		}
		if m, ok := ParseTagMatcher(node.Value); ok {
			f.Tags = append(f.Tags, m)
		}
	}
	return nil
}

// TagMatcher matches a tag exactly or against a regular expression.
type TagMatcher struct {
	literal string
	pattern *regexp.Regexp
}

// Literal returns a matcher for exactly tag.
func Literal(tag string) TagMatcher {
	return TagMatcher{literal: tag}
}

// Pattern returns a matcher that tests re against each tag.
func Pattern(re *regexp.Regexp) TagMatcher {
	return TagMatcher{pattern: re}
}

// ParseTagMatcher reads "/expr/" as a pattern and anything else as a literal.
// It reports false for a pattern that does not compile.
func ParseTagMatcher(s string) (TagMatcher, bool) {
	if len(s) >= 2 && strings.HasPrefix(s, "/") && strings.HasSuffix(s, "/") {
		re, err := regexp.Compile(s[1 : len(s)-1])
		if err != nil {
			return TagMatcher{}, false
		}
		return Pattern(re), true
	}
	return Literal(s), true
}

// Match reports whether tag satisfies the matcher.
func (m TagMatcher) Match(tag string) bool {
	if m.pattern != nil {
		return m.pattern.MatchString(tag)
	}
	return m.literal == tag
}

// String returns the literal, or the pattern wrapped in slashes.
func (m TagMatcher) String() string {
	if m.pattern != nil {
		return "/" + m.pattern.String() + "/"
	}
	return m.literal
}

// MarshalText renders the matcher in its configuration form.
func (m TagMatcher) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}
