package oaserrors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrParse indicates a document or configuration parsing failure.
	ErrParse = errors.New("parse error")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")

	// ErrDescriptor indicates a structurally invalid operation descriptor.
	ErrDescriptor = errors.New("descriptor error")

	// ErrHook indicates a customization hook could not be resolved.
	ErrHook = errors.New("hook resolution error")

	// ErrMissingExport indicates a hook package was found but lacks the named export.
	ErrMissingExport = errors.New("missing export")
)

// ParseError represents a failure to parse an API description or configuration file.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
	// Line is the line number where the error occurred (0 if unknown)
	Line int
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// ConfigError represents an invalid configuration or override value.
type ConfigError struct {
	// Option is the name of the problematic configuration option (e.g. "override.mutator")
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// DescriptorError represents an operation descriptor that cannot be turned into a model.
type DescriptorError struct {
	// Component names the descriptor part (e.g. "requestBody", "parameters", "responses")
	Component string
	// Ref is the $ref of the descriptor, if it had one
	Ref string
	// Message describes what is wrong with the descriptor
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *DescriptorError) Error() string {
	msg := "descriptor error"
	if e.Component != "" {
		msg += " in " + e.Component
	}
	if e.Ref != "" {
		msg += " (" + e.Ref + ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *DescriptorError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *DescriptorError) Is(target error) bool {
	return target == ErrDescriptor
}

// HookError represents a mutator or transformer reference that failed to resolve.
type HookError struct {
	// Slot is the hook slot being resolved (e.g. "mutator", "formData", "transformer")
	Slot string
	// Path is the package path of the reference
	Path string
	// Name is the exported name that was requested
	Name string
	// IsMissingExport is true when the package loaded but the export does not exist
	IsMissingExport bool
	// Message provides additional context about the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *HookError) Error() string {
	msg := "hook resolution error"
	if e.IsMissingExport {
		msg = "missing export"
	}
	if e.Slot != "" {
		msg += " for " + e.Slot
	}
	if ref := e.reference(); ref != "" {
		msg += ": " + ref
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *HookError) reference() string {
	switch {
	case e.Path != "" && e.Name != "":
		return e.Path + "." + e.Name
	case e.Path != "":
		return e.Path
	default:
		return e.Name
	}
}

// Unwrap returns the underlying cause for error chaining.
func (e *HookError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
// Matches ErrHook, and ErrMissingExport when IsMissingExport is set.
func (e *HookError) Is(target error) bool {
	if target == ErrHook {
		return true
	}
	return target == ErrMissingExport && e.IsMissingExport
}

// OperationError locates a synthesis failure at a single operation so the
// offending entry of the API description can be found.
type OperationError struct {
	// OperationID is the derived operation identifier
	OperationID string
	// Verb is the HTTP method token (e.g. "post")
	Verb string
	// Route is the path template (e.g. "/pets/{petId}")
	Route string
	// ContentType is set when the failure happened in one content-type variant
	ContentType string
	// Cause is the underlying error
	Cause error
}

// Error returns a human-readable error message.
func (e *OperationError) Error() string {
	var parts []string
	if e.OperationID != "" {
		parts = append(parts, "operationId "+e.OperationID)
	}
	if e.Verb != "" || e.Route != "" {
		parts = append(parts, strings.TrimSpace(strings.ToUpper(e.Verb)+" "+e.Route))
	}
	if e.ContentType != "" {
		parts = append(parts, "content type "+e.ContentType)
	}

	msg := "operation"
	if len(parts) > 0 {
		msg += " (" + strings.Join(parts, ", ") + ")"
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *OperationError) Unwrap() error {
	return e.Cause
}
