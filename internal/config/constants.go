package config

import "time"

const (
	// Configuration file paths
	ConfigPathTaskCatalogue   = "configs/tasks.yaml"
	ConfigPathMarketCatalogue = "configs/market.yaml"
)

// Storage backends
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Gameplay timing defaults
const (
	DefaultGrowthDelay     = 3 * time.Second
	DefaultWeatherInterval = 8 * time.Second
)

// Session cache defaults
const (
	DefaultSessionCacheSize = 1024
	DefaultSessionTTL       = 30 * time.Minute
)

// Chat defaults
const (
	DefaultChatEndpoint = "http://localhost:5000/api/voice-chat"
	DefaultChatTimeout  = 15 * time.Second
	DefaultChatLanguage = "hi-IN"
)

// Database pool defaults
const (
	DefaultDBMaxConns    = 10
	DefaultDBMaxIdleTime = 5 * time.Minute
	DefaultDBMaxLifetime = time.Hour
)
