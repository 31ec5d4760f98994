package config

import "time"

// CatalogAPIConfig holds settings for the external card catalog API
type CatalogAPIConfig struct {
	BaseURL   string
	APIKey    string
	Timeout   time.Duration
	RateLimit RateLimitConfig
}

// RateLimitConfig holds retry and backoff configuration
type RateLimitConfig struct {
	MaxRetries     int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// DefaultCatalogAPIConfig returns the default catalog API configuration
func DefaultCatalogAPIConfig() *CatalogAPIConfig {
	return &CatalogAPIConfig{
		BaseURL: "https://api.pokemontcg.io/v2",
		Timeout: 60 * time.Second,
		RateLimit: RateLimitConfig{
			MaxRetries:     3,
			InitialBackoff: time.Second,
			MaxBackoff:     30 * time.Second,
		},
	}
}

// SearchConfig holds live search cache configuration
type SearchConfig struct {
	CacheSize int
	CacheTTL  time.Duration
}

// DefaultSearchConfig returns the default search configuration
func DefaultSearchConfig() *SearchConfig {
	return &SearchConfig{
		CacheSize: 256,
		CacheTTL:  5 * time.Minute,
	}
}
