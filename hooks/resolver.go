package hooks

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/froggy1014/orval/oaserrors"
)

// Slot names one of the mutator slots of an operation.
type Slot string

// Mutator slots.
const (
	SlotMutator          Slot = "mutator"
	SlotFormData         Slot = "formData"
	SlotFormURLEncoded   Slot = "formUrlEncoded"
	SlotParamsSerializer Slot = "paramsSerializer"
	SlotFetchReviver     Slot = "fetchReviver"
)

// Resolution kinds reported to ResolveObserver.
const (
	KindInline    = "inline"
	KindReference = "reference"
)

// ResolveObserver is notified once per resolved, non-empty slot.
type ResolveObserver func(slot Slot, kind string)

// ResolveInput holds the slot values of one operation.
type ResolveInput struct {
	Mutator          MutatorRef
	FormData         MutatorRef
	FormURLEncoded   MutatorRef
	ParamsSerializer MutatorRef
	FetchReviver     MutatorRef

	// FormDataEnabled gates the form-data slot: false when form-data handling
	// is disabled or the body has no multipart content.
	FormDataEnabled bool
	// FormURLEncodedEnabled gates the form-url-encoded slot.
	FormURLEncodedEnabled bool

	Options LoadOptions
}

// MutatorSet is the outcome of resolving every slot. Absent slots are nil.
type MutatorSet struct {
	Mutator          *Mutator `json:"mutator,omitempty" yaml:"mutator,omitempty"`
	FormData         *Mutator `json:"formData,omitempty" yaml:"formData,omitempty"`
	FormURLEncoded   *Mutator `json:"formUrlEncoded,omitempty" yaml:"formUrlEncoded,omitempty"`
	ParamsSerializer *Mutator `json:"paramsSerializer,omitempty" yaml:"paramsSerializer,omitempty"`
	FetchReviver     *Mutator `json:"fetchReviver,omitempty" yaml:"fetchReviver,omitempty"`
}

// Resolver resolves mutator slots. It holds no per-call state.
type Resolver struct {
	loader   Loader
	observer ResolveObserver
}

// NewResolver returns a Resolver that loads references with loader.
// A nil loader only accepts inline mutators.
func NewResolver(loader Loader) *Resolver {
	return &Resolver{loader: loader}
}

// WithObserver returns a copy of r that reports resolved slots to fn.
func (r *Resolver) WithObserver(fn ResolveObserver) *Resolver {
	cp := *r
	cp.observer = fn
	return &cp
}

// Resolve resolves all slots concurrently. Every slot finishes before Resolve
// returns; the first failure is returned as a *oaserrors.HookError.
func (r *Resolver) Resolve(ctx context.Context, in ResolveInput) (*MutatorSet, error) {
	set := &MutatorSet{}
	g, gctx := errgroup.WithContext(ctx)

	slot := func(name Slot, ref MutatorRef, enabled bool, dst **Mutator) {
		if !enabled || ref == nil {
			return
		}
		g.Go(func() error {
			m, err := r.resolveOne(gctx, name, ref, in.Options)
			if err != nil {
				return err
			}
			*dst = m
			return nil
		})
	}

	slot(SlotMutator, in.Mutator, true, &set.Mutator)
	slot(SlotFormData, in.FormData, in.FormDataEnabled, &set.FormData)
	slot(SlotFormURLEncoded, in.FormURLEncoded, in.FormURLEncodedEnabled, &set.FormURLEncoded)
	slot(SlotParamsSerializer, in.ParamsSerializer, true, &set.ParamsSerializer)
	slot(SlotFetchReviver, in.FetchReviver, true, &set.FetchReviver)

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return set, nil
}

func (r *Resolver) resolveOne(ctx context.Context, slot Slot, ref MutatorRef, opts LoadOptions) (*Mutator, error) {
	switch v := ref.(type) {
	case *Mutator:
		if v == nil {
			return nil, nil
		}
		r.notify(slot, KindInline)
		cp := *v
		return &cp, nil

	case Reference:
		if r.loader == nil {
			return nil, &oaserrors.HookError{Slot: string(slot), Path: v.Path, Name: v.Name, Message: "no loader configured"}
		}
		if err := v.Validate(); err != nil {
			return nil, &oaserrors.HookError{Slot: string(slot), Path: v.Path, Name: v.Name, Message: "invalid reference", Cause: err}
		}
		info, err := r.loader.LoadFunc(ctx, v, opts)
		if err != nil {
			return nil, withSlot(err, slot, v)
		}
		r.notify(slot, KindReference)
		return newMutator(v, info), nil

	default:
		return nil, &oaserrors.HookError{Slot: string(slot), Message: "unsupported mutator value"}
	}
}

func (r *Resolver) notify(slot Slot, kind string) {
	if r.observer != nil {
		r.observer(slot, kind)
	}
}

// withSlot attaches slot information to loader errors.
func withSlot(err error, slot Slot, ref Reference) error {
	var hookErr *oaserrors.HookError
	if errors.As(err, &hookErr) {
		cp := *hookErr
		if cp.Slot == "" {
			cp.Slot = string(slot)
		}
		return &cp
	}
	return &oaserrors.HookError{Slot: string(slot), Path: ref.Path, Name: ref.Name, Cause: err}
}
