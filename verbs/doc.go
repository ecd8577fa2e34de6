// Package verbs turns the operations of an API description into VerbOptions
// records, the per-operation input of client code emitters.
//
// For every path the operations are tag-filtered, their override layers are
// folded into one effective configuration, and a name is synthesized. Request
// bodies with several content types are split into one record per type when
// the output client encodes bodies itself. Mutator hooks are resolved and the
// assembled record may finally be rewritten by a transformer.
//
// # Basic usage
//
//	doc, err := document.LoadFile(ctx, "petstore.yaml")
//	if err != nil {
//	    return err
//	}
//	cfg, err := config.Load("orval.yaml")
//	if err != nil {
//	    return err
//	}
//	result, err := verbs.Generate(ctx, doc, verbs.WithConfig(cfg))
//	if err != nil {
//	    return err
//	}
//	for _, v := range result.Verbs {
//	    fmt.Println(v.OperationName, v.Route)
//	}
//
// # Dropped operations
//
// When a content-type filter removes every request content type of an
// operation, the operation produces no record. This is not an error; it is
// logged as a warning and listed in Result.Issues.
//
// # Errors
//
// Failures are returned as *oaserrors.OperationError carrying the operation
// id, verb and route. Use errors.Is with the oaserrors sentinels to classify
// them.
package verbs
