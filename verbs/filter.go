package verbs

import (
	"github.com/froggy1014/orval/config"
	"github.com/froggy1014/orval/document"
)

// MatchTags reports whether an operation carrying tags survives filters.
// Without a configured tag list everything survives. In include mode an
// operation survives when one of its tags matches; exclude mode is the exact
// negation.
func MatchTags(tags []string, filters *config.Filters) bool {
	if filters == nil || filters.Tags == nil {
		return true
	}
	matched := false
	for _, tag := range tags {
		for _, m := range filters.Tags {
			if m.Match(tag) {
				matched = true
				break
			}
		}
		if matched {
			break
		}
	}
	if filters.EffectiveMode() == config.FilterExclude {
		return !matched
	}
	return matched
}

// FilterOperations returns the operations of item that survive filters, in
// declaration order. Only recognized HTTP verbs are returned.
func FilterOperations(item *document.PathItem, filters *config.Filters) []document.VerbOperation {
	if item == nil {
		return nil
	}
	out := make([]document.VerbOperation, 0, len(item.Operations))
	for _, vo := range item.Operations {
		if vo.Operation == nil || !document.IsVerb(string(vo.Verb)) {
			continue
		}
		if MatchTags(vo.Operation.Tags, filters) {
			out = append(out, vo)
		}
	}
	return out
}
