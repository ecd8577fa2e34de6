// Package httputil provides status code and media type checks shared by the
// config and model packages.
package httputil

import (
	"mime"
	"strconv"
	"strings"
)

// HTTP Status Code Constants
const (
	StatusCodeLength = 3   // Standard length of HTTP status codes (e.g., "200", "404")
	MinStatusCode    = 100 // Minimum valid HTTP status code
	MaxStatusCode    = 599 // Maximum valid HTTP status code
	WildcardChar     = 'X' // Wildcard character used in status code patterns (e.g., "2XX")
)

// ValidateStatusCode reports whether code is a usable response key.
// Valid values are:
//   - "default" for default response
//   - Wildcard patterns: 1XX, 2XX, 3XX, 4XX, 5XX (case-insensitive)
//   - Numeric codes: 100-599
//
// Extension keys ("x-...") are not responses and are rejected.
func ValidateStatusCode(code string) bool {
	if code == "default" {
		return true
	}
	if len(code) != StatusCodeLength {
		return false
	}

	upper := strings.ToUpper(code)
	if upper[1] == WildcardChar && upper[2] == WildcardChar {
		return upper[0] >= '1' && upper[0] <= '5'
	}

	statusCode, err := strconv.Atoi(code)
	return err == nil && statusCode >= MinStatusCode && statusCode <= MaxStatusCode
}

// IsSuccessStatus reports whether code is a 2xx code or the 2XX wildcard.
func IsSuccessStatus(code string) bool {
	return ValidateStatusCode(code) && code[0] == '2'
}

// IsValidMediaType validates a media type string according to RFC 2045/2046.
// Handles wildcards (*/* and type/*) and prevents invalid combinations (*/subtype).
func IsValidMediaType(mediaType string) bool {
	if mediaType == "*/*" {
		return true
	}

	if strings.HasSuffix(mediaType, "/*") {
		// Check format: type/* (e.g., application/*)
		parts := strings.Split(mediaType, "/")
		return len(parts) == 2 && parts[0] != "" && parts[0] != "*"
	}

	_, _, err := mime.ParseMediaType(mediaType)
	return err == nil
}
