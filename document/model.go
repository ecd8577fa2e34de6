package document

// Document is the set of path items of an API description, in declaration order.
type Document struct {
	// Title is info.title of the source document
	Title string
	// Version is info.version of the source document
	Version string
	// Paths holds every path item in declaration order
	Paths []*PathItem
}

// PathItem groups the operations bound to one route.
type PathItem struct {
	// Route is the path template, e.g. "/pets/{petId}"
	Route string
	// Parameters are declared on the path item and apply to every operation
	Parameters []Parameter
	// Operations are kept in the order their verb keys appear in the source
	Operations []VerbOperation
}

// Operation returns the operation bound to v, or nil.
func (p *PathItem) Operation(v Verb) *Operation {
	for _, op := range p.Operations {
		if op.Verb == v {
			return op.Operation
		}
	}
	return nil
}

// VerbOperation pairs a method token with its operation.
type VerbOperation struct {
	Verb      Verb
	Operation *Operation
}

// Operation describes one HTTP operation. It is never modified by synthesis.
type Operation struct {
	OperationID string         `json:"operationId,omitempty" yaml:"operationId,omitempty"`
	Tags        []string       `json:"tags,omitempty" yaml:"tags,omitempty"`
	Summary     string         `json:"summary,omitempty" yaml:"summary,omitempty"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
	Deprecated  bool           `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`
	RequestBody *RequestBody   `json:"requestBody,omitempty" yaml:"requestBody,omitempty"`
	Responses   []Response     `json:"responses,omitempty" yaml:"responses,omitempty"`
	Parameters  []Parameter    `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	Extensions  map[string]any `json:"extensions,omitempty" yaml:"extensions,omitempty"`
}

// RequestBody describes the payload an operation accepts.
type RequestBody struct {
	Ref         string      `json:"ref,omitempty" yaml:"ref,omitempty"`
	Description string      `json:"description,omitempty" yaml:"description,omitempty"`
	Required    bool        `json:"required,omitempty" yaml:"required,omitempty"`
	Content     []MediaType `json:"content,omitempty" yaml:"content,omitempty"`
}

// ContentTypes returns the declared media types in declaration order.
// Duplicates are kept.
func (b *RequestBody) ContentTypes() []string {
	if b == nil {
		return nil
	}
	out := make([]string, 0, len(b.Content))
	for _, mt := range b.Content {
		out = append(out, mt.ContentType)
	}
	return out
}

// Media returns the first media type declared as contentType, or nil.
func (b *RequestBody) Media(contentType string) *MediaType {
	if b == nil {
		return nil
	}
	for i := range b.Content {
		if b.Content[i].ContentType == contentType {
			return &b.Content[i]
		}
	}
	return nil
}

// MediaType is one entry of a content map.
type MediaType struct {
	ContentType string  `json:"contentType" yaml:"contentType"`
	Schema      *Schema `json:"schema,omitempty" yaml:"schema,omitempty"`
}

// Response is one entry of the responses map.
type Response struct {
	// Status is the status code key ("200", "4XX") or "default"
	Status      string      `json:"status" yaml:"status"`
	Description string      `json:"description,omitempty" yaml:"description,omitempty"`
	Content     []MediaType `json:"content,omitempty" yaml:"content,omitempty"`
}

// Parameter locations.
const (
	InPath   = "path"
	InQuery  = "query"
	InHeader = "header"
	InCookie = "cookie"
)

// Parameter describes one operation or path-item parameter.
type Parameter struct {
	Name        string  `json:"name" yaml:"name"`
	In          string  `json:"in" yaml:"in"`
	Required    bool    `json:"required,omitempty" yaml:"required,omitempty"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	Deprecated  bool    `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`
	Schema      *Schema `json:"schema,omitempty" yaml:"schema,omitempty"`
}

// Schema is the shallow view of a JSON schema needed to name and type models.
// Nested schemas are kept only one level deep for properties and items.
type Schema struct {
	// Ref is the original $ref, when the schema was referenced
	Ref        string     `json:"ref,omitempty" yaml:"ref,omitempty"`
	Type       string     `json:"type,omitempty" yaml:"type,omitempty"`
	Format     string     `json:"format,omitempty" yaml:"format,omitempty"`
	Items      *Schema    `json:"items,omitempty" yaml:"items,omitempty"`
	Properties []Property `json:"properties,omitempty" yaml:"properties,omitempty"`
	Required   []string   `json:"required,omitempty" yaml:"required,omitempty"`
	Nullable   bool       `json:"nullable,omitempty" yaml:"nullable,omitempty"`
}

// RefName returns the last segment of Ref ("#/components/schemas/Pet" -> "Pet").
func (s *Schema) RefName() string {
	if s == nil || s.Ref == "" {
		return ""
	}
	for i := len(s.Ref) - 1; i >= 0; i-- {
		if s.Ref[i] == '/' {
			return s.Ref[i+1:]
		}
	}
	return s.Ref
}

// Property is a named member of an object schema.
type Property struct {
	Name   string  `json:"name" yaml:"name"`
	Schema *Schema `json:"schema,omitempty" yaml:"schema,omitempty"`
}
