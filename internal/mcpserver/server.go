// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes verb option synthesis as MCP tools over stdio.
package mcpserver

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/froggy1014/orval"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `orval MCP server. Synthesizes per-operation verb options (the records client emitters consume) from OpenAPI 3.x documents and lists the operations a document declares.

Configuration: All defaults are configurable via ORVAL_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- ORVAL_CLIENT (default: net-http) output client used when a call carries no config
- ORVAL_HEADERS (default: false) build header models when a call carries no config
- ORVAL_CACHE_ENABLED (default: true) disable document caching entirely
- ORVAL_CACHE_FILE_TTL (default: 15m) cache TTL for local file documents
- ORVAL_CACHE_CONTENT_TTL (default: 15m) cache TTL for inline documents
- ORVAL_RECORD_LIMIT (default: 100) default result limit
- ORVAL_DETAIL_LIMIT (default: 25) default limit in detail mode
- ORVAL_MAX_LIMIT (default: 1000) upper bound for any limit
- ORVAL_MAX_INLINE_SIZE (default: 10MiB) maximum inline document size

Caching: Loaded documents are cached per session. File entries use path+mtime as key (auto-invalidated on change). Inline entries are keyed by content hash. A background sweeper removes expired entries every 60s.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	if cfg.CacheEnabled {
		docCache.startSweeper(ctx, cfg.CacheSweepInterval)
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "orval", Version: orval.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "verb_options",
		Description: "Synthesize verb options for every operation of an OpenAPI 3.x document. Applies the orval configuration (tag filters, overrides, content-type filters, hooks) and splits operations with several request content types into one record per type for net-http and resty clients. Returns summaries (operation name, verb, route, content type, body and response types) by default. Set operation to an operationId or operation name together with detail=true to get the full record as JSON. Issues list tag-filtered and dropped operations. Default limit is configurable via ORVAL_RECORD_LIMIT (default 100, 25 in detail mode).",
	}, handleVerbOptions)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "operations",
		Description: "List the operations an OpenAPI 3.x document declares, before any configuration is applied. Filter by tag, verb, route pattern, or deprecated status. Route patterns support * (one segment) and ** (zero or more segments). Use group_by (tag or verb) to get distribution counts instead of individual items.",
	}, handleOperations)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.RecordLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.RecordLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// detailLimit returns a lower default limit for detail mode output.
// When the user hasn't specified an explicit limit (limit <= 0),
// detail mode defaults to cfg.DetailLimit to keep output manageable.
func detailLimit(limit int) int {
	if limit <= 0 {
		return cfg.DetailLimit
	}
	return limit
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}

// groupCount represents a single group in group_by results.
type groupCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// groupAndSort groups items by key, sorts by count descending (ties
// broken alphabetically by key), and returns the sorted groups.
func groupAndSort[T any](items []T, keyFn func(T) []string) []groupCount {
	counts := make(map[string]int)
	for _, item := range items {
		for _, key := range keyFn(item) {
			counts[key]++
		}
	}
	groups := make([]groupCount, 0, len(counts))
	for key, count := range counts {
		groups = append(groups, groupCount{Key: key, Count: count})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Count != groups[j].Count {
			return groups[i].Count > groups[j].Count
		}
		return groups[i].Key < groups[j].Key
	})
	return groups
}

// validateGroupBy checks that group_by is a valid value and is not combined with detail.
func validateGroupBy(groupBy string, detail bool, allowed []string) error {
	if groupBy == "" {
		return nil
	}
	if detail {
		return fmt.Errorf("cannot use both group_by and detail")
	}
	for _, a := range allowed {
		if strings.EqualFold(groupBy, a) {
			return nil
		}
	}
	return fmt.Errorf("invalid group_by value %q; valid values: %s", groupBy, strings.Join(allowed, ", "))
}

// validateGlobPattern checks whether a glob pattern is syntactically valid.
// Call this once before a filter loop so matchRoute never encounters an
// invalid pattern at match time.
func validateGlobPattern(pattern string) error {
	if pattern == "" || !strings.ContainsAny(pattern, "*?[") {
		return nil
	}
	if _, err := filepath.Match(pattern, ""); err != nil {
		return fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
	}
	return nil
}
