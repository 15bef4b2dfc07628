package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Environment variables read by LoadConfig.
const (
	EnvEnabled         = "FORMAT_ANALYZER_RATE_LIMIT_ENABLED"
	EnvDefaultLimit    = "FORMAT_ANALYZER_RATE_LIMIT_DEFAULT_LIMIT"
	EnvDefaultWindow   = "FORMAT_ANALYZER_RATE_LIMIT_DEFAULT_WINDOW"
	EnvBatchLimit      = "FORMAT_ANALYZER_RATE_LIMIT_BATCH_LIMIT"
	EnvCleanupInterval = "FORMAT_ANALYZER_RATE_LIMIT_CLEANUP_INTERVAL"
	EnvAllowlist       = "FORMAT_ANALYZER_RATE_LIMIT_ALLOWLIST"
	EnvDenylist        = "FORMAT_ANALYZER_RATE_LIMIT_DENYLIST"
)

// EndpointConfig is the limit for one method and path. A path ending in "/"
// matches every path under it.
type EndpointConfig struct {
	Path   string
	Method string
	Limit  int           // requests per Window; 0 means unlimited
	Window time.Duration // refill period for Limit
	Burst  int           // defaults to Limit
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	IdleTimeout     time.Duration // clients unseen this long are forgotten
	Allowlist       map[string]bool
	Denylist        map[string]bool
	EndpointConfigs []EndpointConfig
}

// DefaultConfig returns limits suited to a single analyzer instance.
func DefaultConfig() *Config {
	return &Config{
		Enabled:         true,
		DefaultLimit:    600,
		DefaultWindow:   time.Minute,
		CleanupInterval: 5 * time.Minute,
		IdleTimeout:     time.Hour,
		Allowlist:       map[string]bool{},
		Denylist:        map[string]bool{},
		EndpointConfigs: DefaultEndpointConfigs(60),
	}
}

// DefaultEndpointConfigs returns per-endpoint limits. batchLimit caps batch
// requests per minute since each carries up to 100 documents.
func DefaultEndpointConfigs(batchLimit int) []EndpointConfig {
	return []EndpointConfig{
		{Path: "/analyze/batch", Method: "POST", Limit: batchLimit, Window: time.Minute, Burst: max(1, batchLimit/10)},
		{Path: "/suggest", Method: "POST", Limit: 300, Window: time.Minute, Burst: 30},
		{Path: "/analyze", Method: "POST", Limit: 300, Window: time.Minute, Burst: 30},
		{Path: "/validate", Method: "POST", Limit: 300, Window: time.Minute, Burst: 30},
		{Path: "/health", Method: "GET", Limit: 0},
		// Reads fall through to the default limit.
	}
}

// LoadConfig starts from DefaultConfig and applies environment overrides.
func LoadConfig() *Config {
	cfg := DefaultConfig()
	cfg.Enabled = envBool(EnvEnabled, cfg.Enabled)
	if !cfg.Enabled {
		return cfg
	}

	cfg.DefaultLimit = envInt(EnvDefaultLimit, cfg.DefaultLimit)
	cfg.DefaultWindow = envDuration(EnvDefaultWindow, cfg.DefaultWindow)
	cfg.CleanupInterval = envDuration(EnvCleanupInterval, cfg.CleanupInterval)
	cfg.EndpointConfigs = DefaultEndpointConfigs(envInt(EnvBatchLimit, 60))
	cfg.Allowlist = splitClients(os.Getenv(EnvAllowlist))
	cfg.Denylist = splitClients(os.Getenv(EnvDenylist))
	return cfg
}

func envInt(key string, fallback int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return n
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if b, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return b
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return d
	}
	return fallback
}

// splitClients parses a comma-separated list of client addresses.
func splitClients(list string) map[string]bool {
	out := make(map[string]bool)
	for _, c := range strings.Split(list, ",") {
		if c = strings.TrimSpace(c); c != "" {
			out[c] = true
		}
	}
	return out
}
