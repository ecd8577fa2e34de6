package config

// Merge returns base overlaid with higher. Neither argument is modified and the
// result shares no maps with them; slices and hook values are shared read-only.
//
// Per-field policy:
//   - scalars (*bool, strings), functions and hook references: higher replaces base when set
//   - lists (content-type include/exclude): higher replaces base wholesale when non-nil
//   - nested records (ContentType, FormData, FormURLEncoded, Fetch, Query): merged field by field
//   - Extensions: merged structurally; maps merge key by key, lists and scalars replace
//
// A nil argument is treated as an empty record.
func Merge(base, higher *Override) *Override {
	if base == nil {
		base = &Override{}
	}
	if higher == nil {
		higher = &Override{}
	}

	out := &Override{
		ContentType:           mergeContentType(base.ContentType, higher.ContentType),
		OperationName:         base.OperationName,
		OperationNameTemplate: base.OperationNameTemplate,
		Mutator:               pick(base.Mutator, higher.Mutator),
		FormData:              mergeFormData(base.FormData, higher.FormData),
		FormURLEncoded:        mergeFormURLEncoded(base.FormURLEncoded, higher.FormURLEncoded),
		ParamsSerializer:      pick(base.ParamsSerializer, higher.ParamsSerializer),
		Fetch:                 mergeFetch(base.Fetch, higher.Fetch),
		Query:                 mergeQuery(base.Query, higher.Query),
		Header:                pick(base.Header, higher.Header),
		Transformer:           pick(base.Transformer, higher.Transformer),
		Extensions:            mergeExtensions(base.Extensions, higher.Extensions),
	}
	// The template travels with the function it was compiled into.
	if higher.OperationName != nil {
		out.OperationName = higher.OperationName
		out.OperationNameTemplate = higher.OperationNameTemplate
	}
	return out
}

// pick returns higher unless it is the zero value of its type.
func pick[T comparable](base, higher T) T {
	var zero T
	if higher != zero {
		return higher
	}
	return base
}

func pickSlice(base, higher []string) []string {
	if higher != nil {
		return higher
	}
	return base
}

func mergeContentType(base, higher *ContentTypeFilter) *ContentTypeFilter {
	if base == nil && higher == nil {
		return nil
	}
	b, h := deref(base), deref(higher)
	return &ContentTypeFilter{
		Include: pickSlice(b.Include, h.Include),
		Exclude: pickSlice(b.Exclude, h.Exclude),
	}
}

func mergeFormData(base, higher *FormData) *FormData {
	if base == nil && higher == nil {
		return nil
	}
	b, h := deref(base), deref(higher)
	return &FormData{
		Disabled:      pick(b.Disabled, h.Disabled),
		Mutator:       pick(b.Mutator, h.Mutator),
		ArrayHandling: pick(b.ArrayHandling, h.ArrayHandling),
	}
}

func mergeFormURLEncoded(base, higher *FormURLEncoded) *FormURLEncoded {
	if base == nil && higher == nil {
		return nil
	}
	b, h := deref(base), deref(higher)
	return &FormURLEncoded{
		Disabled: pick(b.Disabled, h.Disabled),
		Mutator:  pick(b.Mutator, h.Mutator),
	}
}

func mergeFetch(base, higher *Fetch) *Fetch {
	if base == nil && higher == nil {
		return nil
	}
	b, h := deref(base), deref(higher)
	return &Fetch{
		IncludeHTTPResponseReturnType: pick(b.IncludeHTTPResponseReturnType, h.IncludeHTTPResponseReturnType),
		ForceSuccessResponse:          pick(b.ForceSuccessResponse, h.ForceSuccessResponse),
		JSONReviver:                   pick(b.JSONReviver, h.JSONReviver),
	}
}

func mergeQuery(base, higher *Query) *Query {
	if base == nil && higher == nil {
		return nil
	}
	b, h := deref(base), deref(higher)
	return &Query{
		UseQuery:    pick(b.UseQuery, h.UseQuery),
		UseInfinite: pick(b.UseInfinite, h.UseInfinite),
		UseMutation: pick(b.UseMutation, h.UseMutation),
		Signal:      pick(b.Signal, h.Signal),
	}
}

func deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

func mergeExtensions(base, higher map[string]any) map[string]any {
	if base == nil && higher == nil {
		return nil
	}
	merged, _ := mergeValue(base, higher).(map[string]any)
	return merged
}

// mergeValue merges two configuration nodes. Only when both are records are
// they merged key by key; otherwise higher wins. Records are always copied.
func mergeValue(base, higher any) any {
	hm, hIsMap := higher.(map[string]any)
	bm, bIsMap := base.(map[string]any)
	switch {
	case hIsMap && bIsMap:
		out := make(map[string]any, len(bm)+len(hm))
		for k, v := range bm {
			out[k] = copyValue(v)
		}
		for k, v := range hm {
			if prev, ok := out[k]; ok {
				out[k] = mergeValue(prev, v)
			} else {
				out[k] = copyValue(v)
			}
		}
		return out
	case higher != nil:
		return copyValue(higher)
	default:
		return copyValue(base)
	}
}

func copyValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, inner := range t {
			out[k] = copyValue(inner)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, inner := range t {
			out[i] = copyValue(inner)
		}
		return out
	default:
		return v
	}
}
