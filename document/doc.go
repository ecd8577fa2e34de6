// Package document provides the read-only operation model consumed by verb synthesis.
//
// A [Document] is an ordered list of [PathItem] values, each carrying its
// operations in the order the verbs were declared in the source file. Documents
// are normally produced by [Load] or [LoadFile], which parse OpenAPI 3.x with
// libopenapi and resolve local $ref pointers, but they can also be built by hand
// in tests or by other front-ends.
//
// The package also provides the small helpers every synthesis step needs:
//
//   - [IsVerb] and [ParseVerb] recognize HTTP method tokens
//   - [OperationID] derives a non-empty identifier for an operation
//   - [FormatRoute] and [PathParamNames] turn a path template into an emitter route
package document
