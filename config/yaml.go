package config

import (
	"fmt"
	"maps"
	"slices"

	yaml "go.yaml.in/yaml/v4"

	"github.com/froggy1014/orval/hooks"
	"github.com/froggy1014/orval/oaserrors"
)

type overrideYAML struct {
	ContentType      *ContentTypeFilter `yaml:"contentType"`
	OperationName    string             `yaml:"operationName"`
	Mutator          *hooks.Reference   `yaml:"mutator"`
	FormData         *FormData          `yaml:"formData"`
	FormURLEncoded   *FormURLEncoded    `yaml:"formUrlEncoded"`
	ParamsSerializer *hooks.Reference   `yaml:"paramsSerializer"`
	Fetch            *Fetch             `yaml:"fetch"`
	Query            *Query             `yaml:"query"`
	Header           *bool              `yaml:"header"`
	Transformer      *hooks.Reference   `yaml:"transformer"`
	Extensions       map[string]any     `yaml:"extensions"`
}

// UnmarshalYAML decodes one override layer. Hook references are decoded as
// {path, name, alias}; operationName is kept as source until compileTemplates.
func (o *Override) UnmarshalYAML(value *yaml.Node) error {
	var raw overrideYAML
	if err := value.Decode(&raw); err != nil {
		return err
	}

	*o = Override{
		ContentType:    raw.ContentType,
		FormData:       raw.FormData,
		FormURLEncoded: raw.FormURLEncoded,
		Fetch:          raw.Fetch,
		Query:          raw.Query,
		Header:         raw.Header,
		Extensions:     raw.Extensions,
	}
	if raw.Mutator != nil {
		o.Mutator = *raw.Mutator
	}
	if raw.ParamsSerializer != nil {
		o.ParamsSerializer = *raw.ParamsSerializer
	}
	if raw.Transformer != nil {
		o.Transformer = *raw.Transformer
	}
	o.OperationNameTemplate = raw.OperationName
	return nil
}

// compileTemplates compiles every operationName template after decoding.
// Errors raised inside UnmarshalYAML come back wrapped by the decoder, so
// template failures are reported from here instead.
func (o *Overrides) compileTemplates() error {
	if err := o.Override.compileTemplate("output.override"); err != nil {
		return err
	}
	for _, t := range o.Tags {
		if err := t.Override.compileTemplate(fmt.Sprintf("output.override.tags.%s", t.Tag)); err != nil {
			return err
		}
	}
	for _, id := range slices.Sorted(maps.Keys(o.Operations)) {
		if err := o.Operations[id].compileTemplate(fmt.Sprintf("output.override.operations.%s", id)); err != nil {
			return err
		}
	}
	return nil
}

func (o *Override) compileTemplate(prefix string) error {
	if o == nil || o.OperationNameTemplate == "" || o.OperationName != nil {
		return nil
	}
	fn, err := CompileOperationName(o.OperationNameTemplate)
	if err != nil {
		return &oaserrors.ConfigError{
			Option:  prefix + ".operationName",
			Value:   o.OperationNameTemplate,
			Message: "invalid template",
			Cause:   err,
		}
	}
	o.OperationName = fn
	return nil
}

// UnmarshalYAML decodes the global layer plus the tags and operations maps.
// Tag layers keep the order in which they are written.
func (o *Overrides) UnmarshalYAML(value *yaml.Node) error {
	if err := value.Decode(&o.Override); err != nil {
		return err
	}
	if value.Kind != yaml.MappingNode {
		return nil
	}

	for i := 0; i+1 < len(value.Content); i += 2 {
		key, val := value.Content[i], value.Content[i+1]
		switch key.Value {
		case "tags":
			if val.Kind != yaml.MappingNode {
				return &oaserrors.ConfigError{Option: "override.tags", Message: fmt.Sprintf("expected a mapping at line %d", val.Line)}
			}
			o.Tags = make([]TagOverride, 0, len(val.Content)/2)
			for j := 0; j+1 < len(val.Content); j += 2 {
				layer := &Override{}
				if err := val.Content[j+1].Decode(layer); err != nil {
					return err
				}
				o.SetTag(val.Content[j].Value, layer)
			}
		case "operations":
			ops := map[string]*Override{}
			if err := val.Decode(&ops); err != nil {
				return err
			}
			o.Operations = ops
		}
	}
	return nil
}

// UnmarshalYAML accepts a boolean (false disables), a hook reference, or
// {disabled, mutator, arrayHandling}.
func (f *FormData) UnmarshalYAML(value *yaml.Node) error {
	disabled, ref, rest, err := decodeToggle(value)
	if err != nil {
		return err
	}
	*f = FormData{Disabled: disabled}
	if ref != nil {
		f.Mutator = *ref
	}
	if rest != nil {
		var raw struct {
			ArrayHandling string `yaml:"arrayHandling"`
		}
		if err := rest.Decode(&raw); err != nil {
			return err
		}
		f.ArrayHandling = raw.ArrayHandling
	}
	return nil
}

// UnmarshalYAML accepts a boolean (false disables), a hook reference, or
// {disabled, mutator}.
func (f *FormURLEncoded) UnmarshalYAML(value *yaml.Node) error {
	disabled, ref, _, err := decodeToggle(value)
	if err != nil {
		return err
	}
	*f = FormURLEncoded{Disabled: disabled}
	if ref != nil {
		f.Mutator = *ref
	}
	return nil
}

// UnmarshalYAML decodes fetch settings.
func (f *Fetch) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		IncludeHTTPResponseReturnType *bool            `yaml:"includeHttpResponseReturnType"`
		ForceSuccessResponse          *bool            `yaml:"forceSuccessResponse"`
		JSONReviver                   *hooks.Reference `yaml:"jsonReviver"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	*f = Fetch{
		IncludeHTTPResponseReturnType: raw.IncludeHTTPResponseReturnType,
		ForceSuccessResponse:          raw.ForceSuccessResponse,
	}
	if raw.JSONReviver != nil {
		f.JSONReviver = *raw.JSONReviver
	}
	return nil
}

// decodeToggle reads the shared boolean-or-reference-or-record form.
// rest is the mapping node when the record form was used.
func decodeToggle(value *yaml.Node) (disabled *bool, ref *hooks.Reference, rest *yaml.Node, err error) {
	switch value.Kind {
	case yaml.ScalarNode:
		var enabled bool
		if err := value.Decode(&enabled); err != nil {
			return nil, nil, nil, err
		}
		off := !enabled
		return &off, nil, nil, nil
	case yaml.MappingNode:
		if hasKey(value, "path") {
			ref = &hooks.Reference{}
			if err := value.Decode(ref); err != nil {
				return nil, nil, nil, err
			}
			return nil, ref, nil, nil
		}
		var raw struct {
			Disabled *bool            `yaml:"disabled"`
			Mutator  *hooks.Reference `yaml:"mutator"`
		}
		if err := value.Decode(&raw); err != nil {
			return nil, nil, nil, err
		}
		return raw.Disabled, raw.Mutator, value, nil
	default:
		return nil, nil, nil, &oaserrors.ConfigError{Message: fmt.Sprintf("expected a boolean or mapping at line %d", value.Line)}
	}
}

func hasKey(m *yaml.Node, key string) bool {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return true
		}
	}
	return false
}
