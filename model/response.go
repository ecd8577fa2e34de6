package model

import (
	"slices"
	"strings"

	"github.com/froggy1014/orval/config"
	"github.com/froggy1014/orval/document"
	"github.com/froggy1014/orval/internal/httputil"
	"github.com/froggy1014/orval/internal/naming"
)

// ResponseType is the Go type returned for one status and content type.
type ResponseType struct {
	Status      string `json:"status" yaml:"status"`
	ContentType string `json:"contentType,omitempty" yaml:"contentType,omitempty"`
	// Type is "" when the status carries no body
	Type   string `json:"type" yaml:"type"`
	IsBlob bool   `json:"isBlob,omitempty" yaml:"isBlob,omitempty"`
}

// ResponseDefinition summarizes the success and error types.
// A single distinct type is used as-is, several collapse to any, none is "".
type ResponseDefinition struct {
	Success string `json:"success" yaml:"success"`
	Errors  string `json:"errors" yaml:"errors"`
}

// Response is the response model of an operation.
type Response struct {
	Definition   ResponseDefinition `json:"definition" yaml:"definition"`
	Success      []ResponseType     `json:"success,omitempty" yaml:"success,omitempty"`
	Errors       []ResponseType     `json:"errors,omitempty" yaml:"errors,omitempty"`
	ContentTypes []string           `json:"contentTypes,omitempty" yaml:"contentTypes,omitempty"`
	// IsBlob is true when every success type is binary
	IsBlob  bool     `json:"isBlob,omitempty" yaml:"isBlob,omitempty"`
	Imports []string `json:"imports,omitempty" yaml:"imports,omitempty"`
}

// BuildResponse derives the response model. Response content types are
// narrowed with filter, the same filter applied to request content types.
func BuildResponse(responses []document.Response, operationName string, filter *config.ContentTypeFilter) *Response {
	out := &Response{}
	base := naming.ToPascalCase(operationName)

	for _, r := range responses {
		if !httputil.ValidateStatusCode(r.Status) {
			continue
		}
		types := responseTypes(r, base, filter)
		if httputil.IsSuccessStatus(r.Status) {
			out.Success = append(out.Success, types...)
		} else {
			out.Errors = append(out.Errors, types...)
		}
		for _, mt := range r.Content {
			if imp := refImport(mt.Schema); imp != "" && !slices.Contains(out.Imports, imp) {
				out.Imports = append(out.Imports, imp)
			}
		}
	}

	for _, list := range [][]ResponseType{out.Success, out.Errors} {
		for _, rt := range list {
			if rt.ContentType != "" && !slices.Contains(out.ContentTypes, rt.ContentType) {
				out.ContentTypes = append(out.ContentTypes, rt.ContentType)
			}
		}
	}
	slices.Sort(out.Imports)

	out.Definition = ResponseDefinition{
		Success: collapse(out.Success),
		Errors:  collapse(out.Errors),
	}
	out.IsBlob = len(out.Success) > 0
	for _, rt := range out.Success {
		if !rt.IsBlob {
			out.IsBlob = false
			break
		}
	}
	return out
}

func responseTypes(r document.Response, base string, filter *config.ContentTypeFilter) []ResponseType {
	if len(r.Content) == 0 {
		return []ResponseType{{Status: r.Status}}
	}

	var declared []string
	for _, mt := range r.Content {
		declared = append(declared, mt.ContentType)
	}
	kept := filter.Apply(uniqueStrings(declared))

	out := make([]ResponseType, 0, len(kept))
	for _, ct := range kept {
		var schema *document.Schema
		for _, mt := range r.Content {
			if mt.ContentType == ct {
				schema = mt.Schema
				break
			}
		}
		rt := ResponseType{Status: r.Status, ContentType: ct, IsBlob: isBlobContent(ct, schema)}
		switch {
		case rt.IsBlob:
			rt.Type = "[]byte"
		case isInlineObject(schema):
			rt.Type = base + naming.ToPascalCase(r.Status)
		default:
			rt.Type = GoType(schema)
		}
		out = append(out, rt)
	}
	return out
}

func isBlobContent(contentType string, schema *document.Schema) bool {
	if isBinary(schema) {
		return true
	}
	return contentType == "application/octet-stream" ||
		strings.HasPrefix(contentType, "image/") ||
		strings.HasPrefix(contentType, "audio/") ||
		strings.HasPrefix(contentType, "video/") ||
		contentType == "application/pdf"
}

func collapse(types []ResponseType) string {
	var distinct []string
	for _, rt := range types {
		if rt.Type != "" && !slices.Contains(distinct, rt.Type) {
			distinct = append(distinct, rt.Type)
		}
	}
	switch len(distinct) {
	case 0:
		return ""
	case 1:
		return distinct[0]
	default:
		return "any"
	}
}
