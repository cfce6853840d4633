package constants

import "time"

const (
	// Three attempts total against the scraped sites, backing off 1s/2s/4s.
	FetchMaxAttempts = 3
	FetchBackoffBase = 1 * time.Second
	FetchTimeout     = 15 * time.Second
)

const (
	// Adapters for one player after identity resolution run under this pool.
	AdapterPoolSize = 3
	AdapterTimeout  = 30 * time.Second

	// Team-wide refresh pool. Kept small to stay under anti-scraping radar.
	TeamRefreshPoolSize = 3
)

const (
	DDragonVersionTTL = 24 * time.Hour
	CounterCacheTTL   = 24 * time.Hour
)

const (
	DatabaseTimeout = 5 * time.Second
	RequestTimeout  = 120 * time.Second
	ShutdownTimeout = 5 * time.Second
)

const (
	DBMaxOpenConns    = 10
	DBMaxIdleConns    = 5
	DBConnMaxLifetime = 1 * time.Hour
	DBMaxIdleTime     = 10 * time.Minute
)
