// Package issues provides the non-fatal notes collected during verb synthesis.
package issues

import (
	"fmt"
	"strings"
	"sync"

	"github.com/froggy1014/orval/internal/severity"
)

// Issue represents a single non-fatal observation made while synthesizing records.
type Issue struct {
	// Path is the dotted location of the problem (e.g., "paths./pets.post.requestBody")
	Path string `json:"path" yaml:"path"`
	// Message is a human-readable description of the issue
	Message string `json:"message" yaml:"message"`
	// Severity indicates the severity level of the issue
	Severity severity.Severity `json:"severity" yaml:"severity"`
	// Context provides additional information about the issue (optional)
	Context string `json:"context,omitempty" yaml:"context,omitempty"`
	// OperationContext identifies the affected operation. Nil when not applicable.
	OperationContext *OperationContext `json:"operation,omitempty" yaml:"operation,omitempty"`
}

// String returns a formatted string representation of the issue.
// Uses "⚠" for Warning severity and "ℹ" for Info severity.
func (i Issue) String() string {
	var symbol string
	switch i.Severity {
	case severity.SeverityWarning:
		symbol = "⚠"
	case severity.SeverityInfo:
		symbol = "ℹ"
	default:
		symbol = "?"
	}

	pathWithContext := i.Path
	if i.OperationContext != nil && !i.OperationContext.IsEmpty() {
		pathWithContext = fmt.Sprintf("%s %s", i.Path, i.OperationContext.String())
	}

	result := fmt.Sprintf("%s %s: %s", symbol, pathWithContext, i.Message)
	if i.Context != "" {
		result += fmt.Sprintf("\n    Context: %s", i.Context)
	}
	return result
}

// FormatPath joins path segments with dots.
func FormatPath(segments ...string) string {
	return strings.Join(segments, ".")
}

// Collector accumulates issues. It is safe for concurrent use.
type Collector struct {
	mu     sync.Mutex
	issues []Issue
}

// Add records an issue.
func (c *Collector) Add(issue Issue) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.issues = append(c.issues, issue)
}

// Issues returns a copy of the recorded issues in insertion order.
func (c *Collector) Issues() []Issue {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Issue, len(c.issues))
	copy(out, c.issues)
	return out
}

// Count returns the number of issues at the given severity.
func (c *Collector) Count(level severity.Severity) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, issue := range c.issues {
		if issue.Severity == level {
			n++
		}
	}
	return n
}
