package document

import (
	"regexp"
	"strings"
)

var pathParamPattern = regexp.MustCompile(`\{([^{}]+)\}`)

// PathParamNames returns the placeholder names of a path template in order of appearance.
//
// Example: "/pets/{petId}/toys/{toyId}" -> ["petId", "toyId"]
func PathParamNames(route string) []string {
	matches := pathParamPattern.FindAllStringSubmatch(route, -1)
	if len(matches) == 0 {
		return nil
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[1])
	}
	return names
}

// FormatRoute turns a path template into a format string for emitters.
// Placeholders become %s verbs in the order returned by PathParamNames;
// literal percent signs are escaped.
//
// Example: "/pets/{petId}" -> "/pets/%s"
func FormatRoute(route string) string {
	escaped := strings.ReplaceAll(route, "%", "%%")
	return pathParamPattern.ReplaceAllString(escaped, "%s")
}
