package config

import (
	"strings"
	"text/template"

	"github.com/froggy1014/orval/document"
	"github.com/froggy1014/orval/internal/naming"
)

// operationNameData is the data passed to operationName templates.
type operationNameData struct {
	OperationID string
	Verb        string
	Route       string
	Summary     string
	Tags        []string
}

var operationNameFuncs = template.FuncMap{
	"camel":  naming.ToCamelCase,
	"pascal": naming.ToPascalCase,
	"snake":  naming.ToSnakeCase,
	"kebab":  naming.ToKebabCase,
	"lower":  strings.ToLower,
	"upper":  strings.ToUpper,
}

// CompileOperationName compiles an operationName template into an OperationNameFunc.
//
// The template sees .OperationID (derived when the operation has none), .Verb,
// .Route, .Summary and .Tags, plus the functions camel, pascal, snake, kebab,
// lower and upper:
//
//	operationName: "{{ .Verb }}{{ pascal .OperationID }}"
//
// A template that fails at execution time yields "", which selects the default name.
func CompileOperationName(text string) (OperationNameFunc, error) {
	tmpl, err := template.New("operationName").
		Option("missingkey=error").
		Funcs(operationNameFuncs).
		Parse(text)
	if err != nil {
		return nil, err
	}

	return func(op *document.Operation, route string, verb document.Verb) string {
		data := operationNameData{
			OperationID: document.OperationID(op, route, verb),
			Verb:        string(verb),
			Route:       route,
		}
		if op != nil {
			data.Summary = op.Summary
			data.Tags = op.Tags
		}
		var b strings.Builder
		if err := tmpl.Execute(&b, data); err != nil {
			return ""
		}
		return strings.TrimSpace(b.String())
	}, nil
}
