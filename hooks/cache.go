package hooks

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

// CachingLoader remembers the outcome of every distinct load, errors included.
// Concurrent loads of the same reference share one call to the wrapped loader.
type CachingLoader struct {
	next  Loader
	group singleflight.Group

	mu      sync.Mutex
	results map[cacheKey]cacheEntry
}

type cacheKey struct {
	ref  Reference
	opts LoadOptions
}

type cacheEntry struct {
	info *FuncInfo
	err  error
}

// NewCachingLoader wraps next with a per-reference cache.
func NewCachingLoader(next Loader) *CachingLoader {
	return &CachingLoader{next: next, results: make(map[cacheKey]cacheEntry)}
}

// LoadFunc implements Loader. The shared load is detached from the caller
// that started it; each caller stops waiting when its own ctx is done.
func (c *CachingLoader) LoadFunc(ctx context.Context, ref Reference, opts LoadOptions) (*FuncInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	// Alias does not change what is loaded.
	key := cacheKey{ref: Reference{Path: ref.Path, Name: ref.Name}, opts: opts}

	c.mu.Lock()
	if e, ok := c.results[key]; ok {
		c.mu.Unlock()
		return e.info, e.err
	}
	c.mu.Unlock()

	ch := c.group.DoChan(key.ref.String()+"\x00"+opts.Workspace+"\x00"+opts.ProjectFile, func() (any, error) {
		info, err := c.next.LoadFunc(context.WithoutCancel(ctx), key.ref, opts)
		c.mu.Lock()
		c.results[key] = cacheEntry{info: info, err: err}
		c.mu.Unlock()
		return info, err
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*FuncInfo), nil
	}
}

// Len returns the number of cached outcomes.
func (c *CachingLoader) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.results)
}
