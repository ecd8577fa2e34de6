package verbs

import (
	"github.com/froggy1014/orval/config"
	"github.com/froggy1014/orval/document"
	"github.com/froggy1014/orval/internal/naming"
)

// NameInput carries what OperationName needs.
type NameInput struct {
	OperationID string
	Verb        document.Verb
	Route       string
	Operation   *document.Operation
	// Override replaces the camel-cased operation id when set
	Override config.OperationNameFunc
	// ContentType requests a "With<ContentType>" suffix when non-empty
	ContentType string
}

// OperationName returns the identifier of an operation variant.
//
// Example: createPet -> createPet
// Example: createPet + application/json -> createPetWithApplicationJson
func OperationName(in NameInput) string {
	var base string
	if in.Override != nil {
		base = naming.Sanitize(in.Override(in.Operation, in.Route, in.Verb))
	}
	if base == "" {
		base = naming.Sanitize(naming.ToCamelCase(in.OperationID))
	}
	if in.ContentType == "" {
		return base
	}
	return naming.Sanitize(base + "With" + naming.ToPascalCase(in.ContentType))
}
