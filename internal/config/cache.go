package config

import (
	"os"
	"strconv"
	"time"
)

// CacheConfig defines settings for the list-response cache middleware.
// Caching is off by default: booking listings are read-your-writes for the
// staff tools that call them, so operators opt in deliberately with a short
// TTL. The cache key is built from the route and query string.
type CacheConfig struct {
	Enabled bool
	TTL     time.Duration
	Prefix  string
}

// LoadCacheConfig reads environment variables to build a CacheConfig.
// Defaults are used when variables are not set.
func LoadCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled: getenv("CACHE_ENABLED", "false") == "true",
		TTL:     parseDur(getenv("CACHE_TTL", "10s")),
		Prefix:  getenv("CACHE_PREFIX", "cache"),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoi(s string, def int) int {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return def
}

func parseDur(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return time.Second
	}
	return d
}
