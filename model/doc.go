// Package model derives the emitter-facing models of an operation: its request
// body, responses, parameters and the ordered list of function props.
//
// Builders read the descriptors of the document package and never interpret
// schema content beyond naming and Go type mapping. A structurally invalid
// descriptor (a path placeholder without a parameter, a parameter without a
// name) is reported as a *oaserrors.DescriptorError.
package model
