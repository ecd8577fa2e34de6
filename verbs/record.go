package verbs

import (
	"context"
	"fmt"

	"github.com/froggy1014/orval/config"
	"github.com/froggy1014/orval/document"
	"github.com/froggy1014/orval/hooks"
	"github.com/froggy1014/orval/internal/issues"
	"github.com/froggy1014/orval/internal/severity"
	"github.com/froggy1014/orval/model"
)

// VerbOptions is the record handed to emitters for one operation variant.
// Split and unsplit operations produce records of the same shape.
type VerbOptions struct {
	Verb document.Verb `json:"verb" yaml:"verb"`
	Tags []string      `json:"tags,omitempty" yaml:"tags,omitempty"`
	// Route is the format form of the path ("/pets/%s")
	Route string `json:"route" yaml:"route"`
	// PathRoute is the path template as declared ("/pets/{petId}")
	PathRoute     string `json:"pathRoute" yaml:"pathRoute"`
	Summary       string `json:"summary,omitempty" yaml:"summary,omitempty"`
	OperationID   string `json:"operationId" yaml:"operationId"`
	OperationName string `json:"operationName" yaml:"operationName"`

	Response    *model.Response    `json:"response" yaml:"response"`
	Body        *model.Body        `json:"body" yaml:"body"`
	Headers     *model.ParamsModel `json:"headers,omitempty" yaml:"headers,omitempty"`
	QueryParams *model.ParamsModel `json:"queryParams,omitempty" yaml:"queryParams,omitempty"`
	Params      []model.Param      `json:"params,omitempty" yaml:"params,omitempty"`
	Props       []model.Prop       `json:"props,omitempty" yaml:"props,omitempty"`

	Mutator          *hooks.Mutator `json:"mutator,omitempty" yaml:"mutator,omitempty"`
	FormData         *hooks.Mutator `json:"formData,omitempty" yaml:"formData,omitempty"`
	FormURLEncoded   *hooks.Mutator `json:"formUrlEncoded,omitempty" yaml:"formUrlEncoded,omitempty"`
	ParamsSerializer *hooks.Mutator `json:"paramsSerializer,omitempty" yaml:"paramsSerializer,omitempty"`
	FetchReviver     *hooks.Mutator `json:"fetchReviver,omitempty" yaml:"fetchReviver,omitempty"`

	// Override is the effective configuration of the operation
	Override   *config.Override `json:"override" yaml:"override"`
	Doc        string           `json:"doc,omitempty" yaml:"doc,omitempty"`
	Deprecated bool             `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`

	OriginalOperation *document.Operation `json:"originalOperation" yaml:"originalOperation"`
}

// Transformer adapts a typed rewrite function to a hooks.TransformerFunc.
//
//	hooks.RegisterTransformer("example.com/hooks", "Rename", verbs.Transformer(rename))
func Transformer(fn func(ctx context.Context, v *VerbOptions) (*VerbOptions, error)) hooks.TransformerFunc {
	return func(ctx context.Context, record any) (any, error) {
		v, ok := record.(*VerbOptions)
		if !ok {
			return nil, fmt.Errorf("transformer: unexpected record type %T", record)
		}
		return fn(ctx, v)
	}
}

// Issue is a non-fatal note recorded during synthesis.
type Issue = issues.Issue

// Severity is the level of an Issue.
type Severity = severity.Severity

// Severity levels.
const (
	SeverityInfo    = severity.SeverityInfo
	SeverityWarning = severity.SeverityWarning
)
