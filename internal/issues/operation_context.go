package issues

import (
	"fmt"
	"strings"
)

// OperationContext identifies the operation an issue was raised for.
type OperationContext struct {
	// Method is the HTTP verb token (get, post, ...)
	Method string `json:"method,omitempty" yaml:"method,omitempty"`
	// Path is the path template (e.g., "/pets/{petId}")
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
	// OperationID is the derived operation identifier
	OperationID string `json:"operationId,omitempty" yaml:"operationId,omitempty"`
}

// String returns a formatted string representation of the operation context.
// Returns empty string if the context is empty.
func (c OperationContext) String() string {
	switch {
	case c.IsEmpty():
		return ""
	case c.OperationID != "":
		return fmt.Sprintf("(operationId: %s)", c.OperationID)
	case c.Method != "":
		return fmt.Sprintf("(%s %s)", strings.ToUpper(c.Method), c.Path)
	default:
		return fmt.Sprintf("(path: %s)", c.Path)
	}
}

// IsEmpty returns true if the context has no meaningful information.
func (c OperationContext) IsEmpty() bool {
	return c.Method == "" && c.Path == "" && c.OperationID == ""
}
