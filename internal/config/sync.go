package config

import "time"

// MaxPageSize is the largest page the catalog API will serve
const MaxPageSize = 250

// SyncConfig holds catalog synchronization configuration
type SyncConfig struct {
	Query         string
	PageSize      int
	PageDelay     time.Duration
	ProgressEvery int
}

// DefaultSyncConfig returns the default sync configuration
func DefaultSyncConfig() *SyncConfig {
	return &SyncConfig{
		Query:         "*",
		PageSize:      MaxPageSize,
		PageDelay:     100 * time.Millisecond,
		ProgressEvery: 50,
	}
}
