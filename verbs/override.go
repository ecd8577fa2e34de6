package verbs

import (
	"slices"

	"github.com/froggy1014/orval/config"
)

// ResolveOverride folds the override layers that apply to one operation:
// the global layer, then every tag layer matching one of tags in configured
// order, then the layer of operationID. The inputs are not modified and the
// result shares no mutable state with them.
func ResolveOverride(global *config.Overrides, tags []string, operationID string) *config.Override {
	if global == nil {
		return config.Merge(nil, nil)
	}

	effective := config.Merge(&global.Override, nil)
	for _, layer := range global.Tags {
		if !slices.Contains(tags, layer.Tag) {
			continue
		}
		effective = config.Merge(effective, layer.Override)
	}
	if op, ok := global.Operations[operationID]; ok {
		effective = config.Merge(effective, op)
	}
	return effective
}
