package mcpserver

import (
	"context"
	"path/filepath"
	"slices"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/froggy1014/orval/document"
)

type operationsInput struct {
	Spec       specInput `json:"spec"                 jsonschema:"The OpenAPI document to list"`
	Tag        string    `json:"tag,omitempty"        jsonschema:"Filter by tag name"`
	Verb       string    `json:"verb,omitempty"       jsonschema:"Filter by HTTP method (get\\, post\\, put\\, delete\\, patch\\, etc.)"`
	Route      string    `json:"route,omitempty"      jsonschema:"Filter by route pattern (* = one segment\\, ** = zero or more segments\\, e.g. /pets/*)"`
	Deprecated bool      `json:"deprecated,omitempty" jsonschema:"Only show deprecated operations"`
	GroupBy    string    `json:"group_by,omitempty"   jsonschema:"Group results by tag or verb and return counts instead of individual items"`
	Limit      int       `json:"limit,omitempty"      jsonschema:"Maximum number of results to return (default 100)"`
	Offset     int       `json:"offset,omitempty"     jsonschema:"Skip the first N results (for pagination)"`
}

type operationSummary struct {
	Verb        string   `json:"verb"`
	Route       string   `json:"route"`
	OperationID string   `json:"operation_id"`
	Declared    bool     `json:"declared"`
	Summary     string   `json:"summary,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Deprecated  bool     `json:"deprecated,omitempty"`
	HasBody     bool     `json:"has_body,omitempty"`
}

type operationsOutput struct {
	Total      int                `json:"total"`
	Matched    int                `json:"matched"`
	Returned   int                `json:"returned"`
	Operations []operationSummary `json:"operations,omitempty"`
	Groups     []groupCount       `json:"groups,omitempty"`
}

var operationGroupBy = []string{"tag", "verb"}

// operationRef locates one declared operation.
type operationRef struct {
	route string
	verb  document.Verb
	op    *document.Operation
}

func handleOperations(ctx context.Context, _ *mcp.CallToolRequest, input operationsInput) (*mcp.CallToolResult, any, error) {
	if err := validateGroupBy(input.GroupBy, false, operationGroupBy); err != nil {
		return errResult(err), nil, nil
	}
	if err := validateGlobPattern(input.Route); err != nil {
		return errResult(err), nil, nil
	}

	doc, err := input.Spec.resolve(ctx)
	if err != nil {
		return errResult(err), nil, nil
	}

	all := collectOperations(doc)
	matched := filterOperations(all, input)

	output := operationsOutput{
		Total:   len(all),
		Matched: len(matched),
	}

	if input.GroupBy != "" {
		output.Groups = groupAndSort(matched, func(ref operationRef) []string {
			if strings.EqualFold(input.GroupBy, "verb") {
				return []string{strings.ToUpper(ref.verb.String())}
			}
			if len(ref.op.Tags) == 0 {
				return []string{"(untagged)"}
			}
			return ref.op.Tags
		})
		output.Returned = len(output.Groups)
		return nil, output, nil
	}

	returned := paginate(matched, input.Offset, input.Limit)
	output.Returned = len(returned)
	output.Operations = makeSlice[operationSummary](len(returned))
	for _, ref := range returned {
		output.Operations = append(output.Operations, operationSummary{
			Verb:        strings.ToUpper(ref.verb.String()),
			Route:       ref.route,
			OperationID: document.OperationID(ref.op, ref.route, ref.verb),
			Declared:    ref.op.OperationID != "",
			Summary:     ref.op.Summary,
			Tags:        ref.op.Tags,
			Deprecated:  ref.op.Deprecated,
			HasBody:     ref.op.RequestBody != nil && len(ref.op.RequestBody.Content) > 0,
		})
	}
	return nil, output, nil
}

// collectOperations flattens doc into declaration order.
func collectOperations(doc *document.Document) []operationRef {
	var out []operationRef
	for _, item := range doc.Paths {
		for _, vo := range item.Operations {
			if !document.IsVerb(vo.Verb.String()) || vo.Operation == nil {
				continue
			}
			out = append(out, operationRef{route: item.Route, verb: vo.Verb, op: vo.Operation})
		}
	}
	return out
}

func filterOperations(ops []operationRef, input operationsInput) []operationRef {
	var matched []operationRef
	for _, ref := range ops {
		if input.Verb != "" && !strings.EqualFold(ref.verb.String(), input.Verb) {
			continue
		}
		if input.Route != "" && !matchRoute(ref.route, input.Route) {
			continue
		}
		if input.Tag != "" && !slices.Contains(ref.op.Tags, input.Tag) {
			continue
		}
		if input.Deprecated && !ref.op.Deprecated {
			continue
		}
		matched = append(matched, ref)
	}
	return matched
}

// matchRoute matches a route template against a segment pattern.
// "*" matches exactly one segment, "**" matches zero or more, and other
// segments are compared with filepath.Match.
func matchRoute(route, pattern string) bool {
	if pattern == "" {
		return true
	}
	if !strings.ContainsAny(pattern, "*?[") {
		return route == pattern
	}
	return matchSegments(strings.Split(route, "/"), strings.Split(pattern, "/"))
}

func matchSegments(route, pattern []string) bool {
	for len(pattern) > 0 {
		if pattern[0] == "**" {
			for i := 0; i <= len(route); i++ {
				if matchSegments(route[i:], pattern[1:]) {
					return true
				}
			}
			return false
		}
		if len(route) == 0 {
			return false
		}
		if ok, _ := filepath.Match(pattern[0], route[0]); !ok {
			return false
		}
		route, pattern = route[1:], pattern[1:]
	}
	return len(route) == 0
}
