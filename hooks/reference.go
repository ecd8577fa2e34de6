package hooks

import (
	"go/token"
	"strings"

	"github.com/froggy1014/orval/oaserrors"
)

// Reference addresses an exported identifier in a Go package.
type Reference struct {
	// Path is an import path, or a path relative to the workspace ("./internal/client")
	Path string `json:"path" yaml:"path"`
	// Name is the exported identifier
	Name string `json:"name" yaml:"name"`
	// Alias is the import alias emitters should use, if any
	Alias string `json:"alias,omitempty" yaml:"alias,omitempty"`
}

// String returns "path.Name".
func (r Reference) String() string {
	return r.Path + "." + r.Name
}

// IsRelative reports whether Path is relative to the workspace.
func (r Reference) IsRelative() bool {
	return r.Path == "." || strings.HasPrefix(r.Path, "./") || strings.HasPrefix(r.Path, "../")
}

// Validate checks that the reference is addressable.
func (r Reference) Validate() error {
	if r.Path == "" {
		return &oaserrors.ConfigError{Option: "path", Message: "hook reference has no path"}
	}
	if !token.IsIdentifier(r.Name) || !token.IsExported(r.Name) {
		return &oaserrors.ConfigError{Option: "name", Value: r.Name, Message: "must be an exported Go identifier"}
	}
	if r.Alias != "" && !token.IsIdentifier(r.Alias) {
		return &oaserrors.ConfigError{Option: "alias", Value: r.Alias, Message: "must be a Go identifier"}
	}
	return nil
}

func (Reference) isMutatorRef()     {}
func (Reference) isTransformerRef() {}
