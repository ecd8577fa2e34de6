package hooks

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/froggy1014/orval/oaserrors"
)

// stubLoader answers from a fixed table keyed by reference.
func stubLoader(known map[string]*FuncInfo) LoaderFunc {
	return func(_ context.Context, ref Reference, _ LoadOptions) (*FuncInfo, error) {
		info, ok := known[ref.String()]
		if !ok {
			return nil, &oaserrors.HookError{Path: ref.Path, Name: ref.Name, IsMissingExport: true}
		}
		return info, nil
	}
}

func TestResolveEmpty(t *testing.T) {
	set, err := NewResolver(nil).Resolve(context.Background(), ResolveInput{})
	require.NoError(t, err)
	assert.Equal(t, &MutatorSet{}, set)
}

func TestResolveInlineAndReference(t *testing.T) {
	loader := stubLoader(map[string]*FuncInfo{
		"example.com/client.CustomInstance": {
			ImportPath:   "example.com/client",
			Params:       2,
			ReturnsError: true,
			ErrorType:    "ErrorType",
			BodyType:     "BodyType",
		},
	})
	inline := &Mutator{Name: "Serialize", Path: "example.com/params"}

	var mu sync.Mutex
	seen := map[Slot]string{}
	resolver := NewResolver(loader).WithObserver(func(slot Slot, kind string) {
		mu.Lock()
		defer mu.Unlock()
		seen[slot] = kind
	})

	set, err := resolver.Resolve(context.Background(), ResolveInput{
		Mutator:          Reference{Path: "example.com/client", Name: "CustomInstance", Alias: "client"},
		ParamsSerializer: inline,
	})
	require.NoError(t, err)

	require.NotNil(t, set.Mutator)
	assert.Equal(t, "CustomInstance", set.Mutator.Name)
	assert.Equal(t, "example.com/client", set.Mutator.Path)
	assert.Equal(t, "client", set.Mutator.Alias)
	assert.True(t, set.Mutator.HasSecondArg)
	assert.False(t, set.Mutator.HasThirdArg)
	assert.True(t, set.Mutator.ReturnsError)
	assert.True(t, set.Mutator.HasErrorType())
	assert.Equal(t, "BodyType", set.Mutator.BodyTypeName)

	require.NotNil(t, set.ParamsSerializer)
	assert.Equal(t, *inline, *set.ParamsSerializer)
	assert.NotSame(t, inline, set.ParamsSerializer, "inline mutators are copied")

	assert.Nil(t, set.FormData)
	assert.Nil(t, set.FormURLEncoded)
	assert.Nil(t, set.FetchReviver)

	assert.Equal(t, map[Slot]string{
		SlotMutator:          KindReference,
		SlotParamsSerializer: KindInline,
	}, seen)
}

func TestResolveGates(t *testing.T) {
	formData := &Mutator{Name: "EncodeForm", Path: "example.com/form"}
	urlEncoded := &Mutator{Name: "EncodeURL", Path: "example.com/form"}

	tests := []struct {
		name           string
		formEnabled    bool
		urlEnabled     bool
		wantForm       bool
		wantURLEncoded bool
	}{
		{"both disabled", false, false, false, false},
		{"form data only", true, false, true, false},
		{"url encoded only", false, true, false, true},
		{"both enabled", true, true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := NewResolver(nil).Resolve(context.Background(), ResolveInput{
				FormData:              formData,
				FormURLEncoded:        urlEncoded,
				FormDataEnabled:       tt.formEnabled,
				FormURLEncodedEnabled: tt.urlEnabled,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantForm, set.FormData != nil)
			assert.Equal(t, tt.wantURLEncoded, set.FormURLEncoded != nil)
		})
	}
}

func TestResolveMissingExport(t *testing.T) {
	set, err := NewResolver(stubLoader(nil)).Resolve(context.Background(), ResolveInput{
		FetchReviver: Reference{Path: "example.com/json", Name: "Reviver"},
	})
	require.Error(t, err)
	assert.Nil(t, set)
	assert.True(t, errors.Is(err, oaserrors.ErrMissingExport))

	var hookErr *oaserrors.HookError
	require.ErrorAs(t, err, &hookErr)
	assert.Equal(t, string(SlotFetchReviver), hookErr.Slot)
	assert.Equal(t, "Reviver", hookErr.Name)
}

func TestResolveLoaderFailureWrapped(t *testing.T) {
	boom := errors.New("go command not found")
	loader := LoaderFunc(func(context.Context, Reference, LoadOptions) (*FuncInfo, error) {
		return nil, boom
	})

	_, err := NewResolver(loader).Resolve(context.Background(), ResolveInput{
		Mutator: Reference{Path: "example.com/client", Name: "Instance"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, err, oaserrors.ErrHook)
}

func TestResolveInvalidReference(t *testing.T) {
	tests := []struct {
		name string
		ref  Reference
	}{
		{"no path", Reference{Name: "Instance"}},
		{"unexported name", Reference{Path: "example.com/x", Name: "instance"}},
		{"not an identifier", Reference{Path: "example.com/x", Name: "My-Func"}},
		{"bad alias", Reference{Path: "example.com/x", Name: "Instance", Alias: "1x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewResolver(stubLoader(nil)).Resolve(context.Background(), ResolveInput{Mutator: tt.ref})
			require.Error(t, err)
			assert.ErrorIs(t, err, oaserrors.ErrHook)
			assert.ErrorIs(t, err, oaserrors.ErrConfig)
		})
	}
}

func TestResolveWithoutLoader(t *testing.T) {
	_, err := NewResolver(nil).Resolve(context.Background(), ResolveInput{
		Mutator: Reference{Path: "example.com/client", Name: "Instance"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, oaserrors.ErrHook)
	assert.Contains(t, err.Error(), "no loader configured")
}

func TestResolveSlotsRunConcurrently(t *testing.T) {
	var inFlight, peak atomic.Int32
	release := make(chan struct{})
	loader := LoaderFunc(func(_ context.Context, ref Reference, _ LoadOptions) (*FuncInfo, error) {
		n := inFlight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		if n == 4 {
			close(release)
		}
		select {
		case <-release:
		case <-time.After(5 * time.Second):
		}
		inFlight.Add(-1)
		return &FuncInfo{ImportPath: ref.Path}, nil
	})

	ref := func(name string) Reference { return Reference{Path: "example.com/h", Name: name} }
	set, err := NewResolver(loader).Resolve(context.Background(), ResolveInput{
		Mutator:          ref("A"),
		FormData:         ref("B"),
		ParamsSerializer: ref("C"),
		FetchReviver:     ref("D"),
		FormDataEnabled:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, int32(4), peak.Load())
	assert.Equal(t, "A", set.Mutator.Name)
	assert.Equal(t, "B", set.FormData.Name)
	assert.Equal(t, "C", set.ParamsSerializer.Name)
	assert.Equal(t, "D", set.FetchReviver.Name)
}
