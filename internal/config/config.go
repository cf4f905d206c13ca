package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	APIKey      string // API key for authentication
	LogLevel    string
	LogFormat   string
	LogDir      string // empty logs to stdout only
	ServiceName string
	Version     string
	Environment string

	StorageBackend string
	DBUser         string
	DBPassword     string
	DBHost         string
	DBPort         string
	DBName         string
	DBMaxConns     int
	DBMaxIdleTime  time.Duration
	DBMaxLifetime  time.Duration

	ChatEndpoint string
	ChatTimeout  time.Duration
	ChatLanguage string

	GrowthDelay     time.Duration
	WeatherInterval time.Duration

	SessionCacheSize int
	SessionTTL       time.Duration

	TaskCataloguePath   string
	MarketCataloguePath string

	TrustedProxies []string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		APIKey:      getEnv("API_KEY", ""),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		LogDir:      getEnv("LOG_DIR", ""),
		ServiceName: getEnv("SERVICE_NAME", "krishiquest"),
		Version:     getEnv("VERSION", "dev"),
		Environment: getEnv("ENVIRONMENT", "dev"),

		StorageBackend: getEnv("STORAGE_BACKEND", StorageMemory),
		DBMaxConns:     getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxIdleTime:  getEnvAsDuration("DB_MAX_IDLE_TIME", DefaultDBMaxIdleTime),
		DBMaxLifetime:  getEnvAsDuration("DB_MAX_LIFETIME", DefaultDBMaxLifetime),

		ChatEndpoint: getEnv("CHAT_ENDPOINT", DefaultChatEndpoint),
		ChatTimeout:  getEnvAsDuration("CHAT_TIMEOUT", DefaultChatTimeout),
		ChatLanguage: getEnv("CHAT_LANGUAGE", DefaultChatLanguage),

		GrowthDelay:     getEnvAsDuration("GROWTH_DELAY", DefaultGrowthDelay),
		WeatherInterval: getEnvAsDuration("WEATHER_INTERVAL", DefaultWeatherInterval),

		SessionCacheSize: getEnvAsInt("SESSION_CACHE_SIZE", DefaultSessionCacheSize),
		SessionTTL:       getEnvAsDuration("SESSION_TTL", DefaultSessionTTL),

		TaskCataloguePath:   getEnv("TASK_CATALOGUE_PATH", ConfigPathTaskCatalogue),
		MarketCataloguePath: getEnv("MARKET_CATALOGUE_PATH", ConfigPathMarketCatalogue),

		TrustedProxies: getEnvAsList("TRUSTED_PROXIES"),
	}
	cfg.loadDBServer()

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	if cfg.StorageBackend != StorageMemory && cfg.StorageBackend != StoragePostgres {
		return nil, fmt.Errorf("invalid STORAGE_BACKEND %q: expected %s or %s", cfg.StorageBackend, StorageMemory, StoragePostgres)
	}

	if cfg.GrowthDelay <= 0 {
		return nil, fmt.Errorf("GROWTH_DELAY must be positive, got %s", cfg.GrowthDelay)
	}
	if cfg.WeatherInterval <= 0 {
		return nil, fmt.Errorf("WEATHER_INTERVAL must be positive, got %s", cfg.WeatherInterval)
	}

	return cfg, nil
}

// IsDevelopment reports whether the service runs in a dev environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "dev" || c.Environment == "development"
}

// LoadDatabase reads only the postgres server settings, for tools that do not
// start the game server
func LoadDatabase() *Config {
	_ = godotenv.Load()
	cfg := &Config{LogLevel: getEnv("LOG_LEVEL", "info"), LogFormat: getEnv("LOG_FORMAT", "text")}
	cfg.loadDBServer()
	return cfg
}

func (c *Config) loadDBServer() {
	c.DBUser = getEnv("DB_USER", "postgres")
	c.DBPassword = getEnv("DB_PASSWORD", "postgres")
	c.DBHost = getEnv("DB_HOST", "localhost")
	c.DBPort = getEnv("DB_PORT", "5432")
	c.DBName = getEnv("DB_NAME", "krishiquest")
}

// GetDBConnString returns the URL of the configured database
func (c *Config) GetDBConnString() string {
	return c.DBConnStringFor(c.DBName)
}

// DBConnStringFor returns the URL of database dbname on the configured server.
// Credentials are escaped, so any password is accepted.
func (c *Config) DBConnStringFor(dbname string) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, c.DBPort),
		Path:     "/" + dbname,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

// getEnvAsDuration accepts Go duration strings ("3s", "500ms")
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}

func getEnvAsList(key string) []string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return nil
	}
	return splitAndTrim(value)
}
