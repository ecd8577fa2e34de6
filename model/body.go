package model

import (
	"fmt"
	"slices"

	"github.com/froggy1014/orval/document"
	"github.com/froggy1014/orval/internal/naming"
	"github.com/froggy1014/orval/oaserrors"
)

// Well-known request content types.
const (
	ContentTypeMultipart      = "multipart/form-data"
	ContentTypeFormURLEncoded = "application/x-www-form-urlencoded"
)

// Body is the request body model of one operation variant.
type Body struct {
	// Definition is the Go type of the body ("" when the operation has none)
	Definition string `json:"definition" yaml:"definition"`
	// Implementation is the parameter identifier used in generated functions
	Implementation string `json:"implementation" yaml:"implementation"`
	// ContentType is the content type this variant sends
	ContentType string `json:"contentType" yaml:"contentType"`
	// ContentTypes lists every declared content type in first-seen order
	ContentTypes []string `json:"contentTypes,omitempty" yaml:"contentTypes,omitempty"`
	// Required mirrors requestBody.required
	Required bool `json:"required" yaml:"required"`
	// IsFormData is true for multipart/form-data
	IsFormData bool `json:"isFormData,omitempty" yaml:"isFormData,omitempty"`
	// IsFormURLEncoded is true for application/x-www-form-urlencoded
	IsFormURLEncoded bool `json:"isFormUrlEncoded,omitempty" yaml:"isFormUrlEncoded,omitempty"`
	// Imports lists referenced component names
	Imports []string `json:"imports,omitempty" yaml:"imports,omitempty"`
}

// IsEmpty reports whether the operation sends no body.
func (b *Body) IsEmpty() bool {
	return b == nil || b.Definition == ""
}

// HasMultipart reports whether multipart/form-data is declared at all.
func (b *Body) HasMultipart() bool {
	return b != nil && slices.Contains(b.ContentTypes, ContentTypeMultipart)
}

// HasFormURLEncoded reports whether application/x-www-form-urlencoded is declared.
func (b *Body) HasFormURLEncoded() bool {
	return b != nil && slices.Contains(b.ContentTypes, ContentTypeFormURLEncoded)
}

// BuildBody derives the body model for operationName. contentType selects the
// variant; "" selects the first declared content type. A nil body yields an
// empty model.
func BuildBody(body *document.RequestBody, operationName, contentType string) (*Body, error) {
	if body == nil {
		return &Body{}, nil
	}
	if len(body.Content) == 0 {
		if body.Ref != "" {
			return nil, &oaserrors.DescriptorError{
				Component: "requestBody",
				Ref:       body.Ref,
				Message:   "referenced request body declares no content",
			}
		}
		return &Body{Required: body.Required}, nil
	}

	declared := uniqueStrings(body.ContentTypes())
	if contentType == "" {
		contentType = declared[0]
	}
	media := body.Media(contentType)
	if media == nil {
		return nil, &oaserrors.DescriptorError{
			Component: "requestBody",
			Ref:       body.Ref,
			Message:   fmt.Sprintf("content type %q is not declared", contentType),
		}
	}

	out := &Body{
		ContentType:      contentType,
		ContentTypes:     declared,
		Required:         body.Required,
		IsFormData:       contentType == ContentTypeMultipart,
		IsFormURLEncoded: contentType == ContentTypeFormURLEncoded,
	}

	base := naming.ToPascalCase(operationName) + "Body"
	switch {
	case media.Schema == nil:
		out.Definition = "[]byte"
		out.Implementation = "body"
	case isInlineObject(media.Schema):
		out.Definition = base
		out.Implementation = naming.Sanitize(naming.ToCamelCase(base))
	case media.Schema.Ref != "":
		out.Definition = GoType(media.Schema)
		out.Implementation = naming.Sanitize(naming.ToCamelCase(out.Definition))
	default:
		out.Definition = GoType(media.Schema)
		out.Implementation = naming.Sanitize(naming.ToCamelCase(base))
	}
	if imp := refImport(media.Schema); imp != "" {
		out.Imports = []string{imp}
	}
	return out, nil
}

// uniqueStrings returns values without duplicates, keeping first occurrences.
func uniqueStrings(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
