package model

import "github.com/froggy1014/orval/internal/naming"

// PropKind tells emitters where a prop comes from.
type PropKind string

// Prop kinds.
const (
	PropPath    PropKind = "path"
	PropBody    PropKind = "body"
	PropParams  PropKind = "params"
	PropHeaders PropKind = "headers"
)

// Prop is one argument of a generated function.
type Prop struct {
	Name string   `json:"name" yaml:"name"`
	Type string   `json:"type" yaml:"type"`
	Kind PropKind `json:"kind" yaml:"kind"`
	// Required is false for arguments that may be nil
	Required bool `json:"required" yaml:"required"`
	// Definition is "name type"
	Definition string `json:"definition" yaml:"definition"`
}

// BuildProps lists function arguments in order: path params, body, query
// params, headers. Optional query and header models are passed by pointer.
func BuildProps(pathParams []Param, body *Body, queryParams, headers *ParamsModel) []Prop {
	var props []Prop
	add := func(name, typ string, kind PropKind, required bool) {
		props = append(props, Prop{Name: name, Type: typ, Kind: kind, Required: required, Definition: name + " " + typ})
	}

	for _, p := range pathParams {
		add(p.Identifier, p.Type, PropPath, true)
	}
	if !body.IsEmpty() {
		add(body.Implementation, body.Definition, PropBody, body.Required)
	}
	if queryParams != nil {
		add(naming.EscapeReservedWord("params"), "*"+queryParams.Name, PropParams, !queryParams.IsOptional)
	}
	if headers != nil {
		add("headers", "*"+headers.Name, PropHeaders, !headers.IsOptional)
	}
	return props
}
