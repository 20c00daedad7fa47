package config

import (
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// CatalogConfig holds remote catalog API configuration
type CatalogConfig struct {
	BaseURL          string
	Subdomain        string
	Timeout          time.Duration
	PageSize         int
	MaxCategoryItems int
	MaxCategoryPages int
	SessionTTL       time.Duration
}

// ImagesConfig holds image CDN configuration
type ImagesConfig struct {
	BaseURL string
}

// SearchConfig holds search behavior configuration
type SearchConfig struct {
	Strategy        string // "remote" or "local"
	SuggestLimit    int
	SuggestMinChars int
	Debounce        time.Duration
}

// HomeConfig holds home page behavior configuration
type HomeConfig struct {
	BannerInterval time.Duration
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
	Env  string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string
}

// MetricsConfig holds metrics configuration
type MetricsConfig struct {
	Prefix string
}

// Config holds all configuration
type Config struct {
	ServiceName string
	Server      ServerConfig
	Catalog     CatalogConfig
	Images      ImagesConfig
	Search      SearchConfig
	Home        HomeConfig
	Log         LogConfig
	Metrics     MetricsConfig
}

// Load loads configuration from environment variables
func Load(serviceName string) (*Config, error) {
	config := &Config{
		ServiceName: serviceName,
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
			Env:  getEnv("APP_ENV", "development"),
		},
		Catalog: CatalogConfig{
			BaseURL:          getEnv("CATALOG_BASE_URL", "https://api.instabuy.com.br/apiv3"),
			Subdomain:        getEnv("CATALOG_SUBDOMAIN", "supermercado"),
			Timeout:          getEnvAsDuration("CATALOG_TIMEOUT", 30*time.Second),
			PageSize:         getEnvAsInt("CATALOG_PAGE_SIZE", 30),
			MaxCategoryItems: getEnvAsInt("CATALOG_MAX_CATEGORY_ITEMS", 500),
			MaxCategoryPages: getEnvAsInt("CATALOG_MAX_CATEGORY_PAGES", 20),
			SessionTTL:       getEnvAsDuration("CATALOG_SESSION_TTL", 10*time.Minute),
		},
		Images: ImagesConfig{
			BaseURL: getEnv("IMAGES_BASE_URL", "https://ibassets.com.br"),
		},
		Search: SearchConfig{
			Strategy:        getEnv("SEARCH_STRATEGY", "remote"),
			SuggestLimit:    getEnvAsInt("SEARCH_SUGGEST_LIMIT", 6),
			SuggestMinChars: getEnvAsInt("SEARCH_SUGGEST_MIN_CHARS", 2),
			Debounce:        getEnvAsDuration("SEARCH_DEBOUNCE", 300*time.Millisecond),
		},
		Home: HomeConfig{
			BannerInterval: getEnvAsDuration("HOME_BANNER_INTERVAL", 5*time.Second),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Metrics: MetricsConfig{
			Prefix: getEnv("METRICS_PREFIX", serviceName),
		},
	}

	return config, nil
}

// LogConfig returns the configuration as a zap logger-friendly format
func (c *Config) LogConfig() []zap.Field {
	return []zap.Field{
		zap.String("service", c.ServiceName),
		zap.String("environment", c.Server.Env),
		zap.String("catalog_base_url", c.Catalog.BaseURL),
		zap.String("catalog_subdomain", c.Catalog.Subdomain),
		zap.String("search_strategy", c.Search.Strategy),
		zap.String("server_port", c.Server.Port),
	}
}

// Helper function to get environment variables with defaults
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// Helper function to get environment variables as integers
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// Helper function to get environment variables as durations
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}
