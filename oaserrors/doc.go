// Package oaserrors provides structured error types for orval.
//
// Import path: github.com/froggy1014/orval/oaserrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to tell a broken override configuration apart from an unusable
// API description.
//
// # Error Types
//
//   - [ParseError]: the API description or configuration file could not be read
//   - [ConfigError]: malformed override values or options
//   - [DescriptorError]: a structurally invalid request body, response or parameter
//   - [HookError]: a mutator or transformer reference could not be resolved
//   - [OperationError]: wraps any of the above with the operation id, verb and route
//
// Every one of them aborts the synthesis run: a single misconfigured operation halts
// generation instead of producing partial output. Nothing is retried.
//
// # Sentinel Errors
//
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrConfig]: Matches any [ConfigError]
//   - [ErrDescriptor]: Matches any [DescriptorError]
//   - [ErrHook]: Matches any [HookError]
//   - [ErrMissingExport]: Matches [HookError] with IsMissingExport=true
//
// # Usage Examples
//
//	records, err := verbs.GenerateVerbsOptions(ctx, input)
//	if errors.Is(err, oaserrors.ErrHook) {
//	    // a mutator or transformer reference is wrong
//	}
//
//	var opErr *oaserrors.OperationError
//	if errors.As(err, &opErr) {
//	    fmt.Printf("failed at %s %s\n", opErr.Verb, opErr.Route)
//	}
package oaserrors
