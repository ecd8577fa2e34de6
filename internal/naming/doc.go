// Package naming provides shared case conversion and identifier utilities for orval packages.
//
// This internal package contains the string transformations used when deriving
// names for synthesized operations and their models. Functions include
// ToPascalCase, ToCamelCase, ToSnakeCase, ToKebabCase and Sanitize.
//
// These functions are used for:
//   - verbs package: operation names and content-type suffixes (createPetWithApplicationJson)
//   - model package: body, params and response definition names
//   - config package: helpers exposed to operationName templates
//
// As an internal package, these functions are not part of the public API
// and may change without notice.
package naming
