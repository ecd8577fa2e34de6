package model

import (
	"github.com/froggy1014/orval/document"
	"github.com/froggy1014/orval/internal/naming"
)

// GoType returns the Go type expression for s.
// References map to the pascal-cased component name. Objects without a
// reference map to map[string]any; a nil schema maps to any.
func GoType(s *document.Schema) string {
	if s == nil {
		return "any"
	}
	if name := s.RefName(); name != "" {
		return naming.ToPascalCase(name)
	}

	var t string
	switch schemaType(s) {
	case "string":
		t = stringFormatToGoType(s.Format)
	case "integer":
		t = integerFormatToGoType(s.Format)
	case "number":
		t = numberFormatToGoType(s.Format)
	case "boolean":
		t = "bool"
	case "array":
		return "[]" + GoType(s.Items)
	case "object":
		return "map[string]any"
	default:
		return "any"
	}
	if s.Nullable {
		return "*" + t
	}
	return t
}

// schemaType returns the declared type, inferring it from other fields when absent.
func schemaType(s *document.Schema) string {
	if s.Type != "" {
		return s.Type
	}
	if len(s.Properties) > 0 {
		return "object"
	}
	if s.Items != nil {
		return "array"
	}
	return ""
}

// isInlineObject reports whether s declares an object in place.
func isInlineObject(s *document.Schema) bool {
	return s != nil && s.Ref == "" && schemaType(s) == "object"
}

// isBinary reports whether s describes raw bytes.
func isBinary(s *document.Schema) bool {
	return s != nil && schemaType(s) == "string" && (s.Format == "binary" || s.Format == "byte")
}

// stringFormatToGoType maps OpenAPI string formats to Go types.
func stringFormatToGoType(format string) string {
	switch format {
	case "date-time":
		return "time.Time"
	case "byte", "binary":
		return "[]byte"
	default:
		return "string"
	}
}

// integerFormatToGoType maps OpenAPI integer formats to Go types.
func integerFormatToGoType(format string) string {
	if format == "int32" {
		return "int32"
	}
	return "int64"
}

// numberFormatToGoType maps OpenAPI number formats to Go types.
func numberFormatToGoType(format string) string {
	if format == "float" {
		return "float32"
	}
	return "float64"
}

// refImport returns the component name s depends on, looking through arrays.
func refImport(s *document.Schema) string {
	for s != nil {
		if name := s.RefName(); name != "" {
			return naming.ToPascalCase(name)
		}
		s = s.Items
	}
	return ""
}
