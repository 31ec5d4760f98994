package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port               string
	DBConnectionString string
	LogLevel           string
	CatalogAPI         *CatalogAPIConfig
	Sync               *SyncConfig
	Search             *SearchConfig
}

func Load() (*Config, error) {
	api := DefaultCatalogAPIConfig()
	api.BaseURL = getEnv("TCG_API_BASE_URL", api.BaseURL)
	api.APIKey = getEnv("TCG_API_KEY", "")

	timeout, err := getEnvInt("TCG_API_TIMEOUT_SECONDS", int(api.Timeout/time.Second))
	if err != nil {
		return nil, err
	}
	api.Timeout = time.Duration(timeout) * time.Second

	if api.RateLimit.MaxRetries, err = getEnvInt("TCG_API_MAX_RETRIES", api.RateLimit.MaxRetries); err != nil {
		return nil, err
	}

	syncCfg := DefaultSyncConfig()
	syncCfg.Query = getEnv("SYNC_QUERY", syncCfg.Query)
	if syncCfg.PageSize, err = getEnvInt("SYNC_PAGE_SIZE", syncCfg.PageSize); err != nil {
		return nil, err
	}
	if syncCfg.PageSize > MaxPageSize || syncCfg.PageSize <= 0 {
		syncCfg.PageSize = MaxPageSize
	}

	delayMS, err := getEnvInt("SYNC_PAGE_DELAY_MS", int(syncCfg.PageDelay/time.Millisecond))
	if err != nil {
		return nil, err
	}
	syncCfg.PageDelay = time.Duration(delayMS) * time.Millisecond

	if syncCfg.ProgressEvery, err = getEnvInt("SYNC_PROGRESS_EVERY", syncCfg.ProgressEvery); err != nil {
		return nil, err
	}

	search := DefaultSearchConfig()
	if search.CacheSize, err = getEnvInt("SEARCH_CACHE_SIZE", search.CacheSize); err != nil {
		return nil, err
	}
	ttl, err := getEnvInt("SEARCH_CACHE_TTL_MINUTES", int(search.CacheTTL/time.Minute))
	if err != nil {
		return nil, err
	}
	search.CacheTTL = time.Duration(ttl) * time.Minute

	return &Config{
		Port:               getEnv("PORT", "8080"),
		DBConnectionString: getEnv("DB_CONNECTION_STRING", ""),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		CatalogAPI:         api,
		Sync:               syncCfg,
		Search:             search,
	}, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}
