package config

import (
	"fmt"
	"maps"
	"slices"

	"github.com/froggy1014/orval/document"
	"github.com/froggy1014/orval/hooks"
	"github.com/froggy1014/orval/internal/httputil"
	"github.com/froggy1014/orval/oaserrors"
)

// OperationNameFunc derives the base name of an operation.
// Returning "" falls back to the camel-cased operation id.
type OperationNameFunc func(op *document.Operation, route string, verb document.Verb) string

// Override is one partial override record. A nil or zero field is "not set"
// and leaves the lower layer's value in place when merged.
type Override struct {
	// ContentType filters request content types
	ContentType *ContentTypeFilter `json:"contentType,omitempty" yaml:"contentType,omitempty"`
	// OperationName replaces the default naming
	OperationName OperationNameFunc `json:"-" yaml:"-"`
	// OperationNameTemplate is the configuration-file source of OperationName
	OperationNameTemplate string `json:"operationName,omitempty" yaml:"operationName,omitempty"`
	// Mutator wraps the request made for the operation
	Mutator hooks.MutatorRef `json:"mutator,omitempty" yaml:"mutator,omitempty"`
	// FormData controls multipart/form-data encoding
	FormData *FormData `json:"formData,omitempty" yaml:"formData,omitempty"`
	// FormURLEncoded controls application/x-www-form-urlencoded encoding
	FormURLEncoded *FormURLEncoded `json:"formUrlEncoded,omitempty" yaml:"formUrlEncoded,omitempty"`
	// ParamsSerializer serializes query parameters
	ParamsSerializer hooks.MutatorRef `json:"paramsSerializer,omitempty" yaml:"paramsSerializer,omitempty"`
	// Fetch holds settings of the fetch client
	Fetch *Fetch `json:"fetch,omitempty" yaml:"fetch,omitempty"`
	// Query holds settings of generated query helpers
	Query *Query `json:"query,omitempty" yaml:"query,omitempty"`
	// Header enables header parameter models
	Header *bool `json:"header,omitempty" yaml:"header,omitempty"`
	// Transformer rewrites the assembled record
	Transformer hooks.TransformerRef `json:"-" yaml:"-"`
	// Extensions holds free-form emitter flags
	Extensions map[string]any `json:"extensions,omitempty" yaml:"extensions,omitempty"`
}

// ContentTypeFilter narrows the request content types of an operation.
// A nil list is "not set"; a non-nil empty Include keeps nothing.
type ContentTypeFilter struct {
	Include []string `json:"include,omitempty" yaml:"include,omitempty"`
	Exclude []string `json:"exclude,omitempty" yaml:"exclude,omitempty"`
}

// FormData controls multipart/form-data bodies.
type FormData struct {
	Disabled      *bool            `json:"disabled,omitempty" yaml:"disabled,omitempty"`
	Mutator       hooks.MutatorRef `json:"mutator,omitempty" yaml:"mutator,omitempty"`
	ArrayHandling string           `json:"arrayHandling,omitempty" yaml:"arrayHandling,omitempty"`
}

// IsDisabled reports whether form-data handling was switched off.
func (f *FormData) IsDisabled() bool {
	return f != nil && f.Disabled != nil && *f.Disabled
}

// FormURLEncoded controls application/x-www-form-urlencoded bodies.
type FormURLEncoded struct {
	Disabled *bool            `json:"disabled,omitempty" yaml:"disabled,omitempty"`
	Mutator  hooks.MutatorRef `json:"mutator,omitempty" yaml:"mutator,omitempty"`
}

// IsDisabled reports whether form-url-encoded handling was switched off.
func (f *FormURLEncoded) IsDisabled() bool {
	return f != nil && f.Disabled != nil && *f.Disabled
}

// Fetch holds settings of the fetch client.
type Fetch struct {
	IncludeHTTPResponseReturnType *bool            `json:"includeHttpResponseReturnType,omitempty" yaml:"includeHttpResponseReturnType,omitempty"`
	ForceSuccessResponse          *bool            `json:"forceSuccessResponse,omitempty" yaml:"forceSuccessResponse,omitempty"`
	JSONReviver                   hooks.MutatorRef `json:"jsonReviver,omitempty" yaml:"jsonReviver,omitempty"`
}

// Query holds settings of generated query helpers.
type Query struct {
	UseQuery    *bool `json:"useQuery,omitempty" yaml:"useQuery,omitempty"`
	UseInfinite *bool `json:"useInfinite,omitempty" yaml:"useInfinite,omitempty"`
	UseMutation *bool `json:"useMutation,omitempty" yaml:"useMutation,omitempty"`
	Signal      *bool `json:"signal,omitempty" yaml:"signal,omitempty"`
}

// TagOverride is the override layer of one tag.
type TagOverride struct {
	Tag      string    `json:"tag" yaml:"tag"`
	Override *Override `json:"override" yaml:"override"`
}

// Overrides holds every override layer.
type Overrides struct {
	// Override is the global layer
	Override `yaml:",inline"`
	// Tags are applied in this order when an operation carries several of them
	Tags []TagOverride `json:"tags,omitempty" yaml:"tags,omitempty"`
	// Operations are keyed by operation id
	Operations map[string]*Override `json:"operations,omitempty" yaml:"operations,omitempty"`
}

// Tag returns the layer of tag, or nil.
func (o *Overrides) Tag(tag string) *Override {
	for _, t := range o.Tags {
		if t.Tag == tag {
			return t.Override
		}
	}
	return nil
}

// SetTag adds or replaces the layer of tag, keeping its position.
func (o *Overrides) SetTag(tag string, override *Override) {
	for i := range o.Tags {
		if o.Tags[i].Tag == tag {
			o.Tags[i].Override = override
			return
		}
	}
	o.Tags = append(o.Tags, TagOverride{Tag: tag, Override: override})
}

// Validate checks every hook reference of every layer.
func (o *Overrides) Validate() error {
	if err := o.Override.validate("output.override"); err != nil {
		return err
	}
	for _, t := range o.Tags {
		if err := t.Override.validate(fmt.Sprintf("output.override.tags.%s", t.Tag)); err != nil {
			return err
		}
	}
	for _, id := range slices.Sorted(maps.Keys(o.Operations)) {
		if err := o.Operations[id].validate(fmt.Sprintf("output.override.operations.%s", id)); err != nil {
			return err
		}
	}
	return nil
}

func (o *Override) validate(prefix string) error {
	if o == nil {
		return nil
	}
	if o.ContentType != nil {
		for _, ct := range o.ContentType.Include {
			if !httputil.IsValidMediaType(ct) {
				return &oaserrors.ConfigError{Option: prefix + ".contentType.include", Value: ct, Message: "invalid media type"}
			}
		}
		for _, ct := range o.ContentType.Exclude {
			if !httputil.IsValidMediaType(ct) {
				return &oaserrors.ConfigError{Option: prefix + ".contentType.exclude", Value: ct, Message: "invalid media type"}
			}
		}
	}
	type slot struct {
		name string
		ref  hooks.MutatorRef
	}
	refs := []slot{{"mutator", o.Mutator}, {"paramsSerializer", o.ParamsSerializer}}
	if o.FormData != nil {
		refs = append(refs, slot{"formData.mutator", o.FormData.Mutator})
	}
	if o.FormURLEncoded != nil {
		refs = append(refs, slot{"formUrlEncoded.mutator", o.FormURLEncoded.Mutator})
	}
	if o.Fetch != nil {
		refs = append(refs, slot{"fetch.jsonReviver", o.Fetch.JSONReviver})
	}
	for _, s := range refs {
		r, ok := s.ref.(hooks.Reference)
		if !ok {
			continue
		}
		if err := r.Validate(); err != nil {
			return &oaserrors.ConfigError{Option: prefix + "." + s.name, Value: r.String(), Message: "invalid hook reference", Cause: err}
		}
	}
	if r, ok := o.Transformer.(hooks.Reference); ok {
		if err := r.Validate(); err != nil {
			return &oaserrors.ConfigError{Option: prefix + ".transformer", Value: r.String(), Message: "invalid hook reference", Cause: err}
		}
	}
	return nil
}

// Apply filters types: when Include is set only listed types are kept, then
// listed Exclude types are dropped. Order is preserved. A nil filter keeps all.
func (f *ContentTypeFilter) Apply(types []string) []string {
	out := make([]string, 0, len(types))
	for _, ct := range types {
		if f != nil && f.Include != nil && !slices.Contains(f.Include, ct) {
			continue
		}
		if f != nil && slices.Contains(f.Exclude, ct) {
			continue
		}
		out = append(out, ct)
	}
	return out
}
