package hooks

import (
	"context"
	"sync"

	"github.com/froggy1014/orval/oaserrors"
)

// TransformerRef is the value of the transformer setting: either a
// [TransformerFunc] or a [Reference] looked up in a [Registry].
type TransformerRef interface {
	isTransformerRef()
}

// TransformerFunc rewrites an assembled record and returns its replacement.
// The record is passed as the emitter-facing value; callers assert its type.
type TransformerFunc func(ctx context.Context, record any) (any, error)

func (TransformerFunc) isTransformerRef() {}

// Registry maps references to transformer functions. The zero value is ready to use.
type Registry struct {
	mu    sync.RWMutex
	funcs map[string]map[string]TransformerFunc
}

// DefaultRegistry is used by RegisterTransformer.
var DefaultRegistry = &Registry{}

// RegisterTransformer registers fn in DefaultRegistry under path and name.
// It is meant to be called from an init function.
func RegisterTransformer(path, name string, fn TransformerFunc) {
	DefaultRegistry.Register(path, name, fn)
}

// Register adds fn under path and name, replacing any earlier registration.
func (r *Registry) Register(path, name string, fn TransformerFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.funcs == nil {
		r.funcs = make(map[string]map[string]TransformerFunc)
	}
	if r.funcs[path] == nil {
		r.funcs[path] = make(map[string]TransformerFunc)
	}
	r.funcs[path][name] = fn
}

// Lookup returns the function registered for ref.
func (r *Registry) Lookup(ref Reference) (TransformerFunc, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byName, ok := r.funcs[ref.Path]
	if !ok {
		return nil, &oaserrors.HookError{
			Slot:    "transformer",
			Path:    ref.Path,
			Name:    ref.Name,
			Message: "no transformer registered for package",
		}
	}
	fn, ok := byName[ref.Name]
	if !ok || fn == nil {
		return nil, &oaserrors.HookError{Slot: "transformer", Path: ref.Path, Name: ref.Name, IsMissingExport: true}
	}
	return fn, nil
}

// ResolveTransformer turns ref into a callable. A nil ref yields a nil function.
// A nil registry means DefaultRegistry.
func ResolveTransformer(ref TransformerRef, reg *Registry) (TransformerFunc, error) {
	if reg == nil {
		reg = DefaultRegistry
	}
	switch v := ref.(type) {
	case nil:
		return nil, nil
	case TransformerFunc:
		if v == nil {
			return nil, nil
		}
		return v, nil
	case Reference:
		return reg.Lookup(v)
	default:
		return nil, &oaserrors.HookError{Slot: "transformer", Message: "unsupported transformer value"}
	}
}
