package verbs

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/froggy1014/orval/config"
	"github.com/froggy1014/orval/document"
	"github.com/froggy1014/orval/hooks"
	"github.com/froggy1014/orval/internal/issues"
	"github.com/froggy1014/orval/internal/metrics"
	"github.com/froggy1014/orval/model"
	"github.com/froggy1014/orval/oaserrors"
)

// Generator synthesizes VerbOptions records. It holds no per-run state and is
// safe for concurrent use.
type Generator struct {
	config   *config.Config
	resolver *hooks.Resolver
	registry *hooks.Registry
	logger   Logger
	metrics  *metrics.Metrics
}

// New creates a Generator.
func New(opts ...Option) (*Generator, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("verbs: invalid options: %w", err)
	}
	cfg.config.ApplyDefaults()
	if err := cfg.config.Validate(); err != nil {
		return nil, err
	}

	var m *metrics.Metrics
	if cfg.metrics != nil {
		if m, err = metrics.New(cfg.metrics); err != nil {
			return nil, fmt.Errorf("verbs: registering metrics: %w", err)
		}
	}

	g := &Generator{
		config:   cfg.config,
		registry: cfg.registry,
		logger:   cfg.logger,
		metrics:  m,
	}
	g.resolver = hooks.NewResolver(cfg.loader).WithObserver(func(slot hooks.Slot, kind string) {
		g.metrics.HookResolved(string(slot), kind)
	})
	return g, nil
}

// Config returns the configuration in use.
func (g *Generator) Config() *config.Config {
	return g.config
}

// VerbInput describes one operation variant.
type VerbInput struct {
	Verb document.Verb
	// Route is the path template ("/pets/{petId}")
	Route string
	// PathParameters are declared on the path item
	PathParameters []document.Parameter
	Operation      *document.Operation
	// ContentType selects the request content type; "" selects the first declared
	ContentType string
	// Suffix appends ContentType to the operation name
	Suffix bool
	// Override is the effective configuration; nil resolves it from the layers
	Override *config.Override
}

// GenerateVerbOptions builds the record of one operation variant and passes it
// through the configured transformer. Failures are *oaserrors.OperationError.
func (g *Generator) GenerateVerbOptions(ctx context.Context, in VerbInput) (*VerbOptions, error) {
	op := in.Operation
	if op == nil {
		op = &document.Operation{}
	}
	operationID := document.OperationID(op, in.Route, in.Verb)
	wrap := func(err error) error {
		return &oaserrors.OperationError{
			OperationID: operationID,
			Verb:        string(in.Verb),
			Route:       in.Route,
			ContentType: in.ContentType,
			Cause:       err,
		}
	}

	override := in.Override
	if override == nil {
		override = ResolveOverride(&g.config.Output.Override, op.Tags, operationID)
	}

	suffix := ""
	if in.Suffix {
		suffix = in.ContentType
	}
	name := OperationName(NameInput{
		OperationID: operationID,
		Verb:        in.Verb,
		Route:       in.Route,
		Operation:   op,
		Override:    override.OperationName,
		ContentType: suffix,
	})

	params, err := model.BuildParameters(in.PathParameters, op.Parameters)
	if err != nil {
		return nil, wrap(err)
	}
	body, err := model.BuildBody(op.RequestBody, name, in.ContentType)
	if err != nil {
		return nil, wrap(err)
	}
	pathParams, err := model.BuildPathParams(in.Route, params.Path, operationID)
	if err != nil {
		return nil, wrap(err)
	}
	response := model.BuildResponse(op.Responses, name, override.ContentType)
	query := model.BuildQueryParams(params.Query, name, model.ParamsSuffix)

	headersEnabled := g.config.Output.Headers
	if override.Header != nil {
		headersEnabled = *override.Header
	}
	var headers *model.ParamsModel
	if headersEnabled {
		headers = model.BuildQueryParams(params.Header, name, model.HeadersSuffix)
	}

	set, err := g.resolver.Resolve(ctx, resolveInput(override, body, in.ContentType, g.config.Output))
	if err != nil {
		return nil, wrap(err)
	}
	g.logger.Debug("resolved hooks", "operationId", operationID, "operationName", name,
		"mutator", set.Mutator != nil, "formData", set.FormData != nil)

	record := &VerbOptions{
		Verb:              in.Verb,
		Tags:              op.Tags,
		Route:             document.FormatRoute(in.Route),
		PathRoute:         in.Route,
		Summary:           op.Summary,
		OperationID:       operationID,
		OperationName:     name,
		Response:          response,
		Body:              body,
		Headers:           headers,
		QueryParams:       query,
		Params:            pathParams,
		Props:             model.BuildProps(pathParams, body, query, headers),
		Mutator:           set.Mutator,
		FormData:          set.FormData,
		FormURLEncoded:    set.FormURLEncoded,
		ParamsSerializer:  set.ParamsSerializer,
		FetchReviver:      set.FetchReviver,
		Override:          override,
		Doc:               model.Doc(op.Summary, op.Description, op.Deprecated),
		Deprecated:        op.Deprecated,
		OriginalOperation: op,
	}

	out, err := g.transform(ctx, record, override.Transformer)
	if err != nil {
		return nil, wrap(err)
	}
	return out, nil
}

// resolveInput maps the effective configuration onto the mutator slots.
// An explicit content type means the record covers that type only.
func resolveInput(override *config.Override, body *model.Body, contentType string, output config.Output) hooks.ResolveInput {
	in := hooks.ResolveInput{
		Mutator:          override.Mutator,
		ParamsSerializer: override.ParamsSerializer,
		Options: hooks.LoadOptions{
			Workspace:   output.Workspace,
			ProjectFile: output.ProjectFile,
		},
	}

	multipart := body.IsFormData || (contentType == "" && body.HasMultipart())
	if fd := override.FormData; fd != nil {
		in.FormData = fd.Mutator
	}
	in.FormDataEnabled = !override.FormData.IsDisabled() && multipart

	if fu := override.FormURLEncoded; fu != nil && fu.Mutator != nil && !fu.IsDisabled() {
		in.FormURLEncoded = fu.Mutator
		in.FormURLEncodedEnabled = true
	}
	if override.Fetch != nil {
		in.FetchReviver = override.Fetch.JSONReviver
	}
	return in
}

// transform applies the transformer, if any. Without one the record is
// returned unchanged.
func (g *Generator) transform(ctx context.Context, record *VerbOptions, ref hooks.TransformerRef) (*VerbOptions, error) {
	fn, err := hooks.ResolveTransformer(ref, g.registry)
	if err != nil {
		return nil, err
	}
	if fn == nil {
		return record, nil
	}

	out, err := fn(ctx, record)
	if err != nil {
		return nil, &oaserrors.HookError{Slot: "transformer", Message: "transformer failed", Cause: err}
	}
	v, ok := out.(*VerbOptions)
	if !ok || v == nil {
		return nil, &oaserrors.HookError{
			Slot:    "transformer",
			Message: fmt.Sprintf("transformer returned %T, want *verbs.VerbOptions", out),
		}
	}
	return v, nil
}

// PathInput describes the operations of one path item.
type PathInput struct {
	Item *document.PathItem
	// Report receives non-fatal issues; nil discards them
	Report func(Issue)
}

// GenerateVerbsOptions builds the records of every operation of a path item.
// Operations are processed one after another in declaration order; the
// content-type variants of one operation are built concurrently and appended
// in content-type order.
func (g *Generator) GenerateVerbsOptions(ctx context.Context, in PathInput) ([]*VerbOptions, error) {
	item := in.Item
	if item == nil {
		return nil, nil
	}
	report := in.Report
	if report == nil {
		report = func(Issue) {}
	}

	kept := FilterOperations(item, g.config.Input.Filters)
	if len(kept) < len(item.Operations) {
		g.reportFiltered(item, kept, report)
	}

	var out []*VerbOptions
	for _, vo := range kept {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		records, err := g.generateVerb(ctx, item, vo, report)
		if err != nil {
			return nil, err
		}
		for _, r := range records {
			g.metrics.OperationSynthesized(string(r.Verb))
		}
		out = append(out, records...)
	}
	return out, nil
}

func (g *Generator) generateVerb(ctx context.Context, item *document.PathItem, vo document.VerbOperation, report func(Issue)) ([]*VerbOptions, error) {
	op := vo.Operation
	operationID := document.OperationID(op, item.Route, vo.Verb)
	override := ResolveOverride(&g.config.Output.Override, op.Tags, operationID)

	base := VerbInput{
		Verb:           vo.Verb,
		Route:          item.Route,
		PathParameters: item.Parameters,
		Operation:      op,
		Override:       override,
	}

	if op.RequestBody == nil || len(op.RequestBody.Content) == 0 || !SupportsContentTypeSplit(g.config.Output.Client) {
		record, err := g.GenerateVerbOptions(ctx, base)
		if err != nil {
			return nil, err
		}
		return []*VerbOptions{record}, nil
	}

	types := RequestContentTypes(op.RequestBody, override.ContentType)
	log := g.logger.With("operationId", operationID, "verb", string(vo.Verb), "route", item.Route)

	switch len(types) {
	case 0:
		log.Warn("operation dropped: no request content type left after filtering",
			"declared", op.RequestBody.ContentTypes())
		g.metrics.OperationDropped()
		report(Issue{
			Path:     issues.FormatPath("paths", item.Route, string(vo.Verb), "requestBody"),
			Message:  "operation omitted: every request content type was filtered out",
			Severity: SeverityWarning,
			Context:  fmt.Sprintf("declared content types: %v", op.RequestBody.ContentTypes()),
			OperationContext: &issues.OperationContext{
				Method:      string(vo.Verb),
				Path:        item.Route,
				OperationID: operationID,
			},
		})
		return nil, nil

	case 1:
		in := base
		in.ContentType = types[0]
		record, err := g.GenerateVerbOptions(ctx, in)
		if err != nil {
			return nil, err
		}
		return []*VerbOptions{record}, nil
	}

	log.Debug("splitting operation by content type", "contentTypes", types)
	records := make([]*VerbOptions, len(types))
	eg, egctx := errgroup.WithContext(ctx)
	for i, ct := range types {
		eg.Go(func() error {
			in := base
			in.ContentType = ct
			in.Suffix = true
			record, err := g.GenerateVerbOptions(egctx, in)
			if err != nil {
				return err
			}
			records[i] = record
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}

func (g *Generator) reportFiltered(item *document.PathItem, kept []document.VerbOperation, report func(Issue)) {
	survived := make(map[document.Verb]bool, len(kept))
	for _, vo := range kept {
		survived[vo.Verb] = true
	}
	for _, vo := range item.Operations {
		if survived[vo.Verb] || vo.Operation == nil || !document.IsVerb(string(vo.Verb)) {
			continue
		}
		operationID := document.OperationID(vo.Operation, item.Route, vo.Verb)
		g.logger.Debug("operation filtered by tag", "operationId", operationID, "tags", vo.Operation.Tags)
		g.metrics.OperationFiltered()
		report(Issue{
			Path:     issues.FormatPath("paths", item.Route, string(vo.Verb)),
			Message:  "operation excluded by tag filter",
			Severity: SeverityInfo,
			OperationContext: &issues.OperationContext{
				Method:      string(vo.Verb),
				Path:        item.Route,
				OperationID: operationID,
			},
		})
	}
}

// Stats summarizes a synthesis run.
type Stats struct {
	Paths      int `json:"paths" yaml:"paths"`
	Operations int `json:"operations" yaml:"operations"`
	Filtered   int `json:"filtered" yaml:"filtered"`
	Dropped    int `json:"dropped" yaml:"dropped"`
	Records    int `json:"records" yaml:"records"`
}

// Result is the output of Generate.
type Result struct {
	Verbs  []*VerbOptions `json:"verbs" yaml:"verbs"`
	Issues []Issue        `json:"issues,omitempty" yaml:"issues,omitempty"`
	Stats  Stats          `json:"stats" yaml:"stats"`
}

// Generate builds the records of every path of doc in document order.
func (g *Generator) Generate(ctx context.Context, doc *document.Document) (*Result, error) {
	start := time.Now()
	defer g.metrics.ObserveDuration(start)

	collector := &issues.Collector{}
	result := &Result{}
	for _, item := range doc.Paths {
		result.Stats.Paths++
		result.Stats.Operations += len(item.Operations)

		records, err := g.GenerateVerbsOptions(ctx, PathInput{Item: item, Report: collector.Add})
		if err != nil {
			return nil, err
		}
		result.Verbs = append(result.Verbs, records...)
	}

	result.Issues = collector.Issues()
	result.Stats.Filtered = collector.Count(SeverityInfo)
	result.Stats.Dropped = collector.Count(SeverityWarning)
	result.Stats.Records = len(result.Verbs)

	g.logger.Info("synthesis complete",
		"paths", result.Stats.Paths,
		"records", result.Stats.Records,
		"dropped", result.Stats.Dropped,
		"duration", time.Since(start))
	return result, nil
}

// Generate is a convenience wrapper around New and Generator.Generate.
//
// Example:
//
//	result, err := verbs.Generate(ctx, doc,
//	    verbs.WithConfig(cfg),
//	    verbs.WithLogger(verbs.NewSlogAdapter(slog.Default())),
//	)
func Generate(ctx context.Context, doc *document.Document, opts ...Option) (*Result, error) {
	g, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return g.Generate(ctx, doc)
}
