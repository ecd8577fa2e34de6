package mcpserver

import (
	"log/slog"
	"os"
	"slices"
	"strconv"
	"time"

	"github.com/froggy1014/orval/config"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Cache settings.
	CacheEnabled       bool
	CacheMaxSize       int
	CacheFileTTL       time.Duration
	CacheContentTTL    time.Duration
	CacheSweepInterval time.Duration

	// Result limits.
	RecordLimit   int
	DetailLimit   int
	MaxLimit      int
	MaxInlineSize int64

	// Synthesis defaults used when a call carries no configuration.
	Client  config.OutputClient
	Headers bool
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from ORVAL_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		CacheEnabled:       envBool("ORVAL_CACHE_ENABLED", true),
		CacheMaxSize:       envInt("ORVAL_CACHE_MAX_SIZE", 10),
		CacheFileTTL:       envDuration("ORVAL_CACHE_FILE_TTL", 15*time.Minute),
		CacheContentTTL:    envDuration("ORVAL_CACHE_CONTENT_TTL", 15*time.Minute),
		CacheSweepInterval: envDuration("ORVAL_CACHE_SWEEP_INTERVAL", 60*time.Second),
		RecordLimit:        envInt("ORVAL_RECORD_LIMIT", 100),
		DetailLimit:        envInt("ORVAL_DETAIL_LIMIT", 25),
		MaxLimit:           envInt("ORVAL_MAX_LIMIT", 1000),
		MaxInlineSize:      int64(envInt("ORVAL_MAX_INLINE_SIZE", 10*1024*1024)),
		Client:             envClient("ORVAL_CLIENT"),
		Headers:            envBool("ORVAL_HEADERS", false),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}

func envClient(key string) config.OutputClient {
	v := config.OutputClient(os.Getenv(key))
	if v == "" {
		return config.DefaultClient
	}
	if !slices.Contains(config.Clients, v) {
		slog.Warn("invalid client env var, using default", "key", key, "value", v, "default", config.DefaultClient) //nolint:gosec // G706: values are structured log fields, not format strings
		return config.DefaultClient
	}
	return v
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return d
}
