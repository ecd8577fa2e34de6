package verbs

import (
	"github.com/froggy1014/orval/config"
	"github.com/froggy1014/orval/document"
)

// SupportsContentTypeSplit reports whether client emits one function per
// request content type. Only clients that encode request bodies themselves do.
func SupportsContentTypeSplit(client config.OutputClient) bool {
	switch client {
	case config.ClientNetHTTP, config.ClientResty:
		return true
	default:
		return false
	}
}

// RequestContentTypes returns the declared request content types of body in
// first-seen order without duplicates, narrowed by filter (include first,
// then exclude).
func RequestContentTypes(body *document.RequestBody, filter *config.ContentTypeFilter) []string {
	if body == nil {
		return nil
	}
	seen := make(map[string]struct{}, len(body.Content))
	declared := make([]string, 0, len(body.Content))
	for _, ct := range body.ContentTypes() {
		if _, ok := seen[ct]; ok {
			continue
		}
		seen[ct] = struct{}{}
		declared = append(declared, ct)
	}
	return filter.Apply(declared)
}
