package document

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/pb33f/libopenapi"
	"github.com/pb33f/libopenapi/datamodel/high/base"
	v3 "github.com/pb33f/libopenapi/datamodel/high/v3"
	"github.com/pb33f/libopenapi/orderedmap"
	yaml "go.yaml.in/yaml/v4"

	"github.com/froggy1014/orval/oaserrors"
)

// LoadFile reads and loads the API description at path.
func LoadFile(ctx context.Context, path string) (*Document, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided input
	if err != nil {
		return nil, &oaserrors.ParseError{Path: path, Message: "failed to read file", Cause: err}
	}
	doc, err := Load(ctx, data)
	if err != nil {
		var pe *oaserrors.ParseError
		if errors.As(err, &pe) && pe.Path == "" {
			pe.Path = path
		}
		return nil, err
	}
	return doc, nil
}

// Load parses an OpenAPI 3.x description (YAML or JSON) into a Document.
// Local references are resolved. Operations keep the order of their verb keys.
func Load(ctx context.Context, data []byte) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	order, err := verbOrder(data)
	if err != nil {
		return nil, err
	}

	raw, err := libopenapi.NewDocument(data)
	if err != nil {
		return nil, &oaserrors.ParseError{Message: "failed to create document", Cause: err}
	}
	model, err := raw.BuildV3Model()
	if err != nil {
		return nil, &oaserrors.ParseError{Message: "failed to build OpenAPI 3 model", Cause: err}
	}
	if model == nil {
		return nil, &oaserrors.ParseError{Message: "document is not OpenAPI 3.x"}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	spec := model.Model
	doc := &Document{}
	if spec.Info != nil {
		doc.Title = spec.Info.Title
		doc.Version = spec.Info.Version
	}
	if spec.Paths == nil || spec.Paths.PathItems == nil {
		return doc, nil
	}

	for route, item := range spec.Paths.PathItems.FromOldest() {
		if item == nil {
			continue
		}
		doc.Paths = append(doc.Paths, convertPathItem(route, item, order[route]))
	}
	return doc, nil
}

func convertPathItem(route string, item *v3.PathItem, declared []Verb) *PathItem {
	byVerb := map[Verb]*v3.Operation{
		VerbGet:     item.Get,
		VerbPut:     item.Put,
		VerbPost:    item.Post,
		VerbPatch:   item.Patch,
		VerbDelete:  item.Delete,
		VerbHead:    item.Head,
		VerbOptions: item.Options,
		VerbTrace:   item.Trace,
	}

	// Path items pulled in through $ref have no raw keys to order by.
	if len(declared) == 0 {
		declared = Verbs
	}

	out := &PathItem{
		Route:      route,
		Parameters: convertParameters(item.Parameters),
	}
	for _, verb := range declared {
		op := byVerb[verb]
		if op == nil {
			continue
		}
		out.Operations = append(out.Operations, VerbOperation{Verb: verb, Operation: convertOperation(op)})
	}
	return out
}

func convertOperation(op *v3.Operation) *Operation {
	out := &Operation{
		OperationID: op.OperationId,
		Tags:        convertTags(op),
		Summary:     op.Summary,
		Description: op.Description,
		Deprecated:  op.Deprecated != nil && *op.Deprecated,
		Parameters:  convertParameters(op.Parameters),
		Extensions:  convertExtensions(op.Extensions),
	}
	if op.RequestBody != nil {
		out.RequestBody = &RequestBody{
			Description: op.RequestBody.Description,
			Required:    op.RequestBody.Required != nil && *op.RequestBody.Required,
			Content:     convertContent(op.RequestBody.Content),
		}
	}
	if op.Responses != nil {
		if op.Responses.Codes != nil {
			for status, resp := range op.Responses.Codes.FromOldest() {
				if resp == nil {
					continue
				}
				out.Responses = append(out.Responses, Response{
					Status:      status,
					Description: resp.Description,
					Content:     convertContent(resp.Content),
				})
			}
		}
		if op.Responses.Default != nil {
			out.Responses = append(out.Responses, Response{
				Status:      "default",
				Description: op.Responses.Default.Description,
				Content:     convertContent(op.Responses.Default.Content),
			})
		}
	}
	return out
}

func convertParameters(params []*v3.Parameter) []Parameter {
	if len(params) == 0 {
		return nil
	}
	out := make([]Parameter, 0, len(params))
	for _, p := range params {
		if p == nil {
			continue
		}
		out = append(out, Parameter{
			Name:        p.Name,
			In:          p.In,
			Required:    p.Required != nil && *p.Required,
			Description: p.Description,
			Deprecated:  p.Deprecated,
			Schema:      convertSchema(p.Schema, 1),
		})
	}
	return out
}

func convertContent(content *orderedmap.Map[string, *v3.MediaType]) []MediaType {
	if content == nil || content.Len() == 0 {
		return nil
	}
	out := make([]MediaType, 0, content.Len())
	for contentType, mt := range content.FromOldest() {
		media := MediaType{ContentType: contentType}
		if mt != nil {
			media.Schema = convertSchema(mt.Schema, 1)
		}
		out = append(out, media)
	}
	return out
}

// convertSchema keeps depth levels of nesting below the top schema.
func convertSchema(proxy *base.SchemaProxy, depth int) *Schema {
	if proxy == nil {
		return nil
	}
	out := &Schema{}
	if proxy.IsReference() {
		out.Ref = proxy.GetReference()
	}
	s := proxy.Schema()
	if s == nil {
		return out
	}
	if len(s.Type) > 0 {
		out.Type = s.Type[0]
		for _, t := range s.Type[1:] {
			if t == "null" {
				out.Nullable = true
			}
		}
	}
	out.Format = s.Format
	out.Required = s.Required
	if s.Nullable != nil && *s.Nullable {
		out.Nullable = true
	}
	if depth <= 0 {
		return out
	}
	if s.Items != nil && s.Items.IsA() {
		out.Items = convertSchema(s.Items.A, depth-1)
	}
	if s.Properties != nil {
		for name, prop := range s.Properties.FromOldest() {
			out.Properties = append(out.Properties, Property{Name: name, Schema: convertSchema(prop, depth-1)})
		}
	}
	return out
}

func convertExtensions(exts *orderedmap.Map[string, *yaml.Node]) map[string]any {
	if exts == nil || exts.Len() == 0 {
		return nil
	}
	result := make(map[string]any, exts.Len())
	for key, node := range exts.FromOldest() {
		if node == nil {
			continue
		}
		var value any
		if err := node.Decode(&value); err != nil {
			if node.Kind == yaml.ScalarNode {
				result[key] = node.Value
			}
			continue
		}
		result[key] = value
	}
	if len(result) == 0 {
		return nil
	}
	return result
}

// convertTags keeps only tags written as strings. The high-level model
// stringifies every item, so the raw nodes are checked instead.
func convertTags(op *v3.Operation) []string {
	low := op.GoLow()
	if low == nil {
		return op.Tags
	}
	var tags []string
	for _, item := range low.Tags.Value {
		node := item.ValueNode
		if node == nil || node.Kind != yaml.ScalarNode || node.ShortTag() != "!!str" {
			continue
		}
		tags = append(tags, node.Value)
	}
	return tags
}

// verbOrder walks the raw document and returns, per route, the verb keys in
// the order they were written.
func verbOrder(data []byte) (map[string][]Verb, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &oaserrors.ParseError{Message: "invalid YAML or JSON", Cause: err}
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, &oaserrors.ParseError{Message: "empty document"}
	}
	top := root.Content[0]
	if top.Kind != yaml.MappingNode {
		return nil, &oaserrors.ParseError{
			Line:    top.Line,
			Message: fmt.Sprintf("expected a mapping at the document root, got %s", kindName(top.Kind)),
		}
	}

	paths := mappingValue(top, "paths")
	if paths == nil || paths.Kind != yaml.MappingNode {
		return nil, nil
	}

	order := make(map[string][]Verb, len(paths.Content)/2)
	for i := 0; i+1 < len(paths.Content); i += 2 {
		route, item := paths.Content[i].Value, paths.Content[i+1]
		if item.Kind != yaml.MappingNode {
			continue
		}
		var verbs []Verb
		for j := 0; j+1 < len(item.Content); j += 2 {
			if v, ok := ParseVerb(item.Content[j].Value); ok && !slices.Contains(verbs, v) {
				verbs = append(verbs, v)
			}
		}
		order[route] = verbs
	}
	return order, nil
}

func mappingValue(m *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown node"
	}
}
