package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/froggy1014/orval/hooks"
	"github.com/froggy1014/orval/verbs"
)

// hookLoader is shared by every call so a hook package is type-checked once per session.
var hookLoader = hooks.NewCachingLoader(hooks.NewPackagesLoader())

type verbOptionsInput struct {
	Spec      specInput   `json:"spec"                jsonschema:"The OpenAPI document to synthesize from"`
	Config    configInput `json:"config,omitempty"    jsonschema:"orval configuration (defaults apply when omitted)"`
	Operation string      `json:"operation,omitempty" jsonschema:"Select records by operationId or operation name"`
	Detail    bool        `json:"detail,omitempty"    jsonschema:"Return full records as JSON instead of summaries"`
	Limit     int         `json:"limit,omitempty"     jsonschema:"Maximum number of records to return (default 100)"`
	Offset    int         `json:"offset,omitempty"    jsonschema:"Skip the first N records (for pagination)"`
}

type recordSummary struct {
	OperationName string   `json:"operation_name"`
	OperationID   string   `json:"operation_id"`
	Verb          string   `json:"verb"`
	Route         string   `json:"route"`
	ContentType   string   `json:"content_type,omitempty"`
	Body          string   `json:"body,omitempty"`
	Response      string   `json:"response,omitempty"`
	Props         []string `json:"props,omitempty"`
	Mutator       string   `json:"mutator,omitempty"`
}

// verbOptionsOutput carries full records as a JSON string. Records hold
// recursive schema trees that an inferred output schema cannot describe.
type verbOptionsOutput struct {
	Title    string          `json:"title,omitempty"`
	Version  string          `json:"version,omitempty"`
	Stats    verbs.Stats     `json:"stats"`
	Matched  int             `json:"matched"`
	Returned int             `json:"returned"`
	Records  []recordSummary `json:"records,omitempty"`
	Detail   string          `json:"detail,omitempty"`
	Issues   []string        `json:"issues,omitempty"`
}

func handleVerbOptions(ctx context.Context, _ *mcp.CallToolRequest, input verbOptionsInput) (*mcp.CallToolResult, any, error) {
	doc, err := input.Spec.resolve(ctx)
	if err != nil {
		return errResult(err), nil, nil
	}
	conf, err := input.Config.resolve()
	if err != nil {
		return errResult(err), nil, nil
	}

	result, err := verbs.Generate(ctx, doc,
		verbs.WithConfig(conf),
		verbs.WithLoader(hookLoader),
		verbs.WithLogger(verbs.NewSlogAdapter(slog.Default())),
	)
	if err != nil {
		return errResult(err), nil, nil
	}

	matched := result.Verbs
	if input.Operation != "" {
		matched = nil
		for _, v := range result.Verbs {
			if v.OperationID == input.Operation || v.OperationName == input.Operation {
				matched = append(matched, v)
			}
		}
	}

	limit := input.Limit
	if input.Detail {
		limit = detailLimit(limit)
	}
	returned := paginate(matched, input.Offset, limit)

	output := verbOptionsOutput{
		Title:    doc.Title,
		Version:  doc.Version,
		Stats:    result.Stats,
		Matched:  len(matched),
		Returned: len(returned),
	}
	for _, issue := range result.Issues {
		output.Issues = append(output.Issues, issue.String())
	}

	if input.Detail {
		data, err := json.MarshalIndent(returned, "", "  ")
		if err != nil {
			return errResult(fmt.Errorf("encoding records: %w", err)), nil, nil
		}
		output.Detail = string(data)
		return nil, output, nil
	}

	output.Records = makeSlice[recordSummary](len(returned))
	for _, v := range returned {
		output.Records = append(output.Records, summarizeRecord(v))
	}
	return nil, output, nil
}

func summarizeRecord(v *verbs.VerbOptions) recordSummary {
	s := recordSummary{
		OperationName: v.OperationName,
		OperationID:   v.OperationID,
		Verb:          v.Verb.String(),
		Route:         v.PathRoute,
	}
	if v.Body != nil {
		s.ContentType = v.Body.ContentType
		s.Body = v.Body.Definition
	}
	if v.Response != nil {
		s.Response = v.Response.Definition.Success
	}
	for _, p := range v.Props {
		s.Props = append(s.Props, p.Definition)
	}
	if v.Mutator != nil {
		s.Mutator = v.Mutator.Path + "." + v.Mutator.Name
	}
	return s
}
