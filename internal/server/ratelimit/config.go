package ratelimit

import (
	"net/http"
	"strings"
	"time"

	"github.com/jonathan/resume-matcher/internal/config"
)

// DefaultCleanupInterval is how often idle client buckets are swept.
const DefaultCleanupInterval = 5 * time.Minute

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string        // Endpoint path pattern (supports prefix matching)
	Method string        // HTTP method (GET, POST, etc.)
	Limit  int           // Maximum requests per window
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

// FromSettings builds a limiter Config from the server configuration.
func FromSettings(s config.RateLimitConfig) *Config {
	return &Config{
		Enabled:         s.Enabled,
		DefaultLimit:    s.DefaultLimit,
		DefaultWindow:   s.DefaultWindow,
		CleanupInterval: DefaultCleanupInterval,
		Whitelist:       parseIPList(s.Whitelist),
		Blacklist:       map[string]bool{},
		EndpointConfigs: DefaultEndpointConfigs(s.AnalyzeLimit, s.AnalyzeWindow),
	}
}

// DefaultEndpointConfigs returns the endpoint-specific limits. Analysis
// endpoints embed text and are the expensive tier; reads use the default limit.
func DefaultEndpointConfigs(analyzeLimit int, analyzeWindow time.Duration) []EndpointConfig {
	burst := max(1, analyzeLimit/10)
	return []EndpointConfig{
		{Path: "/api/analyze", Method: http.MethodPost, Limit: analyzeLimit, Window: analyzeWindow, Burst: burst},
		{Path: "/api/analyze/stream", Method: http.MethodPost, Limit: analyzeLimit, Window: analyzeWindow, Burst: burst},
		{Path: "/api/analyses/", Method: http.MethodDelete, Limit: 100, Window: time.Minute, Burst: 10},
	}
}

// parseIPList turns a list of IP addresses into a lookup set.
func parseIPList(ips []string) map[string]bool {
	result := make(map[string]bool, len(ips))
	for _, ip := range ips {
		ip = strings.TrimSpace(ip)
		if ip != "" {
			result[ip] = true
		}
	}
	return result
}
