package hooks

import (
	"context"
	"errors"
	"fmt"
	"go/types"
	"os"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"golang.org/x/tools/go/packages"

	"github.com/froggy1014/orval/oaserrors"
)

// Exported type names a mutator package may declare to customize emitted code.
const (
	ErrorTypeName = "ErrorType"
	BodyTypeName  = "BodyType"
)

// LoadOptions locate the workspace a reference is resolved in.
type LoadOptions struct {
	// Workspace is the directory relative references and go.mod are resolved against
	Workspace string
	// ProjectFile optionally selects the build: a go.work file sets GOWORK,
	// any other file is passed as -modfile
	ProjectFile string
}

// FuncInfo describes an exported function found by a Loader.
type FuncInfo struct {
	// ImportPath is the resolved import path of the package
	ImportPath string
	// Params is the number of parameters
	Params int
	// ReturnsError is true when the last result is the error type
	ReturnsError bool
	// ErrorType is set when the package declares an exported ErrorType
	ErrorType string
	// BodyType is set when the package declares an exported BodyType
	BodyType string
}

// Loader loads the function a Reference points at.
type Loader interface {
	LoadFunc(ctx context.Context, ref Reference, opts LoadOptions) (*FuncInfo, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(ctx context.Context, ref Reference, opts LoadOptions) (*FuncInfo, error)

// LoadFunc calls f.
func (f LoaderFunc) LoadFunc(ctx context.Context, ref Reference, opts LoadOptions) (*FuncInfo, error) {
	return f(ctx, ref, opts)
}

// PackagesLoader type-checks referenced packages with go/packages.
// It needs the go command at run time.
type PackagesLoader struct {
	// Env is appended to the process environment of the go command
	Env []string
}

// NewPackagesLoader returns a loader that runs the go command with env appended
// to the process environment.
func NewPackagesLoader(env ...string) *PackagesLoader {
	return &PackagesLoader{Env: env}
}

// LoadFunc implements Loader.
func (l *PackagesLoader) LoadFunc(ctx context.Context, ref Reference, opts LoadOptions) (*FuncInfo, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}

	workspace := opts.Workspace
	if workspace == "" {
		workspace = "."
	}
	workspace, err := filepath.Abs(workspace)
	if err != nil {
		return nil, fmt.Errorf("resolving workspace: %w", err)
	}

	importPath, err := ResolveImportPath(ref.Path, workspace)
	if err != nil {
		return nil, &oaserrors.HookError{Path: ref.Path, Name: ref.Name, Message: "invalid package path", Cause: err}
	}

	cfg := &packages.Config{
		Context: ctx,
		Mode:    packages.NeedName | packages.NeedTypes,
		Dir:     workspace,
		Env:     append(os.Environ(), l.Env...),
	}
	if opts.ProjectFile != "" {
		project := opts.ProjectFile
		if !filepath.IsAbs(project) {
			project = filepath.Join(workspace, project)
		}
		if filepath.Base(project) == "go.work" {
			cfg.Env = append(cfg.Env, "GOWORK="+project)
		} else {
			cfg.BuildFlags = []string{"-modfile=" + project}
		}
	}

	pkgs, err := packages.Load(cfg, importPath)
	if err != nil {
		return nil, &oaserrors.HookError{Path: importPath, Name: ref.Name, Message: "failed to load package", Cause: err}
	}
	if len(pkgs) == 0 {
		return nil, &oaserrors.HookError{Path: importPath, Name: ref.Name, Message: "no packages found"}
	}
	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		errs := make([]error, 0, len(pkg.Errors))
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
		return nil, &oaserrors.HookError{Path: importPath, Name: ref.Name, Message: "package has errors", Cause: errors.Join(errs...)}
	}

	return inspectFunc(pkg.Types, ref.Name)
}

// inspectFunc reads the signature of the exported function name in pkg.
func inspectFunc(pkg *types.Package, name string) (*FuncInfo, error) {
	scope := pkg.Scope()
	obj := scope.Lookup(name)
	if obj == nil || !obj.Exported() {
		return nil, &oaserrors.HookError{Path: pkg.Path(), Name: name, IsMissingExport: true}
	}

	var sig *types.Signature
	switch o := obj.(type) {
	case *types.Func:
		sig, _ = o.Type().(*types.Signature)
	case *types.Var:
		sig, _ = o.Type().Underlying().(*types.Signature)
	}
	if sig == nil {
		return nil, &oaserrors.HookError{
			Path:    pkg.Path(),
			Name:    name,
			Message: fmt.Sprintf("%s is a %s, not a function", name, objectKind(obj)),
		}
	}

	info := &FuncInfo{
		ImportPath: pkg.Path(),
		Params:     sig.Params().Len(),
	}
	if n := sig.Results().Len(); n > 0 {
		last := sig.Results().At(n - 1).Type()
		info.ReturnsError = types.Identical(last, types.Universe.Lookup("error").Type())
	}
	if tn, ok := scope.Lookup(ErrorTypeName).(*types.TypeName); ok {
		info.ErrorType = tn.Name()
	}
	if tn, ok := scope.Lookup(BodyTypeName).(*types.TypeName); ok {
		info.BodyType = tn.Name()
	}
	return info, nil
}

func objectKind(obj types.Object) string {
	switch obj.(type) {
	case *types.TypeName:
		return "type"
	case *types.Const:
		return "constant"
	case *types.Var:
		return "variable"
	default:
		return "non-function"
	}
}

// ResolveImportPath returns the import path of p. Relative paths are resolved
// against the module declared in workspace/go.mod and must stay inside it.
func ResolveImportPath(p, workspace string) (string, error) {
	ref := Reference{Path: p}
	if !ref.IsRelative() {
		if err := module.CheckImportPath(p); err != nil {
			return "", err
		}
		return p, nil
	}

	data, err := os.ReadFile(filepath.Join(workspace, "go.mod")) //nolint:gosec // workspace is user-provided input
	if err != nil {
		return "", fmt.Errorf("relative path %q needs a go.mod in the workspace: %w", p, err)
	}
	modPath := modfile.ModulePath(data)
	if modPath == "" {
		return "", fmt.Errorf("go.mod in %s declares no module path", workspace)
	}

	rel := path.Clean(filepath.ToSlash(p))
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return "", fmt.Errorf("relative path %q escapes module %s", p, modPath)
	}
	if rel == "." {
		return modPath, nil
	}
	return modPath + "/" + rel, nil
}
