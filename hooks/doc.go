// Package hooks resolves the user-supplied customization hooks of a synthesized operation.
//
// A hook is either provided inline (an already resolved [*Mutator] or a
// [TransformerFunc]) or addressed by a [Reference] naming a Go package and an
// exported identifier. References to mutators are resolved by a [Loader]; the
// default [PackagesLoader] type-checks the referenced package with
// golang.org/x/tools/go/packages and records the shape of the exported function
// so emitters can call it correctly. References to transformers are resolved
// through a [Registry] that user code fills from init functions.
//
// # Mutator slots
//
// Each operation has five independent mutator slots (see [Slot]). [Resolver.Resolve]
// resolves all of them concurrently and returns once every slot is done:
//
//	set, err := hooks.NewResolver(loader).Resolve(ctx, hooks.ResolveInput{
//		Mutator:         hooks.Reference{Path: "./internal/client", Name: "CustomInstance"},
//		FormDataEnabled: true,
//		Options:         hooks.LoadOptions{Workspace: "."},
//	})
//
// Resolution failures are fatal and reported as [*oaserrors.HookError].
// Resolver never caches; wrap a loader with [NewCachingLoader] to share results
// across operations.
package hooks
