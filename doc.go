// Package orval synthesizes the per-operation records a client code emitter
// consumes from an OpenAPI 3.x document.
//
// # Overview
//
// For every operation of a document, orval derives a verb options record: the
// operation name, path and query parameters, request body, response types,
// props of the generated function, documentation block and the resolved
// customization hooks (mutators and transformers). Operations whose request
// body declares several content types are split into one record per type for
// clients that can send each encoding separately.
//
// The library is organized in the following packages:
//
//   - document: load an OpenAPI 3.x description into an ordered model
//   - config: orval.yaml decoding, tag filters and override layers
//   - hooks: mutator and transformer references and their resolution
//   - model: body, response, parameter and prop models of one operation
//   - verbs: the synthesis entry points (Generate, GenerateVerbsOptions)
//   - oaserrors: sentinel and typed errors shared by all packages
//
// # Quick Start
//
//	import (
//		"github.com/froggy1014/orval/config"
//		"github.com/froggy1014/orval/document"
//		"github.com/froggy1014/orval/verbs"
//	)
//
//	cfg, err := config.Load("orval.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	doc, err := document.LoadFile(ctx, cfg.Input.Target)
//	if err != nil {
//		log.Fatal(err)
//	}
//	result, err := verbs.Generate(ctx, doc, verbs.WithConfig(cfg))
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, v := range result.Verbs {
//		fmt.Println(v.OperationName, v.Verb, v.Route)
//	}
//
// # Command Line
//
// The orval command exposes the same pipeline:
//
//	orval verbs --config orval.yaml --format yaml
//	orval mcp
//	orval version
package orval
