package model

import (
	"fmt"

	"github.com/froggy1014/orval/document"
	"github.com/froggy1014/orval/internal/naming"
	"github.com/froggy1014/orval/oaserrors"
)

// Parameters groups the effective parameters of an operation by location.
type Parameters struct {
	Path   []document.Parameter
	Query  []document.Parameter
	Header []document.Parameter
	Cookie []document.Parameter
}

// BuildParameters merges path-item parameters with operation parameters and
// groups them by location. An operation parameter replaces a path-item
// parameter with the same name and location.
func BuildParameters(pathLevel, operationLevel []document.Parameter) (*Parameters, error) {
	merged := make([]document.Parameter, 0, len(pathLevel)+len(operationLevel))
	for _, list := range [][]document.Parameter{pathLevel, operationLevel} {
		for _, p := range list {
			if p.Name == "" {
				return nil, &oaserrors.DescriptorError{Component: "parameters", Message: fmt.Sprintf("parameter in %q has no name", p.In)}
			}
			idx := -1
			for i := range merged {
				if merged[i].Name == p.Name && merged[i].In == p.In {
					idx = i
					break
				}
			}
			if idx >= 0 {
				merged[idx] = p
			} else {
				merged = append(merged, p)
			}
		}
	}

	out := &Parameters{}
	for _, p := range merged {
		switch p.In {
		case document.InPath:
			out.Path = append(out.Path, p)
		case document.InQuery:
			out.Query = append(out.Query, p)
		case document.InHeader:
			out.Header = append(out.Header, p)
		case document.InCookie:
			out.Cookie = append(out.Cookie, p)
		default:
			return nil, &oaserrors.DescriptorError{
				Component: "parameters",
				Message:   fmt.Sprintf("parameter %q has unknown location %q", p.Name, p.In),
			}
		}
	}
	return out, nil
}

// Param is one parameter as generated code sees it.
type Param struct {
	// Name is the name used on the wire
	Name string `json:"name" yaml:"name"`
	// Identifier is the Go identifier
	Identifier  string `json:"identifier" yaml:"identifier"`
	Type        string `json:"type" yaml:"type"`
	Required    bool   `json:"required" yaml:"required"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Deprecated  bool   `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`
}

// BuildPathParams returns the path parameters in route order. Every
// placeholder in route must have a matching path parameter.
func BuildPathParams(route string, params []document.Parameter, operationID string) ([]Param, error) {
	names := document.PathParamNames(route)
	out := make([]Param, 0, len(names))
	for _, name := range names {
		var def *document.Parameter
		for i := range params {
			if params[i].Name == name && params[i].In == document.InPath {
				def = &params[i]
				break
			}
		}
		if def == nil {
			return nil, &oaserrors.DescriptorError{
				Component: "parameters",
				Message:   fmt.Sprintf("path parameter %q of %s (%s) has no definition", name, route, operationID),
			}
		}
		typ := "string"
		if def.Schema != nil {
			typ = GoType(def.Schema)
		}
		out = append(out, Param{
			Name:        name,
			Identifier:  naming.Sanitize(naming.ToCamelCase(name)),
			Type:        typ,
			Required:    true,
			Description: def.Description,
			Deprecated:  def.Deprecated,
		})
	}
	return out, nil
}

// ParamsModel is the struct generated for query parameters or headers.
type ParamsModel struct {
	// Name is the Go type name, e.g. ListPetsParams
	Name   string  `json:"name" yaml:"name"`
	Fields []Param `json:"fields" yaml:"fields"`
	// IsOptional is true when no field is required
	IsOptional bool `json:"isOptional" yaml:"isOptional"`
}

// Suffixes of parameter model names.
const (
	ParamsSuffix  = "Params"
	HeadersSuffix = "Headers"
)

// BuildQueryParams returns the model named <OperationName><suffix>, or nil when
// params is empty.
func BuildQueryParams(params []document.Parameter, operationName, suffix string) *ParamsModel {
	if len(params) == 0 {
		return nil
	}
	out := &ParamsModel{
		Name:       naming.ToPascalCase(operationName) + suffix,
		IsOptional: true,
	}
	for _, p := range params {
		typ := "string"
		if p.Schema != nil {
			typ = GoType(p.Schema)
		}
		out.Fields = append(out.Fields, Param{
			Name:        p.Name,
			Identifier:  naming.Sanitize(naming.ToPascalCase(p.Name)),
			Type:        typ,
			Required:    p.Required,
			Description: p.Description,
			Deprecated:  p.Deprecated,
		})
		if p.Required {
			out.IsOptional = false
		}
	}
	return out
}
