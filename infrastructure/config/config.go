package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Supported persistence drivers.
const (
	DriverDynamoDB = "dynamodb"
	DriverMemory   = "memory"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string
	Environment   string

	// AWS configuration
	AWSRegion     string
	DynamoDBTable string
	IndexName     string // GSI1 - entity-type scans
	EventBusName  string

	// Persistence driver: "dynamodb" or "memory"
	RepositoryDriver string

	// Cache expirations. Lists change often and get the short TTL;
	// graph and dashboard aggregates tolerate longer staleness.
	CacheDefaultTTL     time.Duration
	CacheClubsTTL       time.Duration
	CacheConnectionsTTL time.Duration
	CacheGraphTTL       time.Duration
	CacheDashboardTTL   time.Duration

	// Logging
	LogLevel string

	// Authentication
	JWTSecret string
	JWTIssuer string

	// Feature flags
	EnableMetrics bool
	EnableTracing bool
	EnableCORS    bool
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		AWSRegion:     getEnv("AWS_REGION", "us-west-2"),
		DynamoDBTable: getEnv("TABLE_NAME", "clubgraph"),
		IndexName:     getEnv("INDEX_NAME", "EntityTypeIndex"),
		EventBusName:  getEnv("EVENT_BUS_NAME", "clubgraph-events"),

		RepositoryDriver: getEnv("REPOSITORY_DRIVER", "dynamodb"),

		CacheDefaultTTL:     getEnvDuration("CACHE_DEFAULT_TTL", 5*time.Minute),
		CacheClubsTTL:       getEnvDuration("CACHE_CLUBS_TTL", 5*time.Minute),
		CacheConnectionsTTL: getEnvDuration("CACHE_CONNECTIONS_TTL", 5*time.Minute),
		CacheGraphTTL:       getEnvDuration("CACHE_GRAPH_TTL", 10*time.Minute),
		CacheDashboardTTL:   getEnvDuration("CACHE_DASHBOARD_TTL", 10*time.Minute),

		JWTSecret: getEnv("JWT_SECRET", ""),
		JWTIssuer: getEnv("JWT_ISSUER", "clubgraph"),

		LogLevel:      getEnv("LOG_LEVEL", "info"),
		EnableMetrics: getEnvBool("ENABLE_METRICS", false),
		EnableTracing: getEnvBool("ENABLE_TRACING", false),
		EnableCORS:    getEnvBool("ENABLE_CORS", true),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	if c.RepositoryDriver != DriverDynamoDB && c.RepositoryDriver != DriverMemory {
		return fmt.Errorf("unknown REPOSITORY_DRIVER %q", c.RepositoryDriver)
	}
	if c.Environment == "production" {
		if c.JWTSecret == "" {
			return fmt.Errorf("JWT_SECRET is required in production")
		}
		if c.RepositoryDriver == DriverDynamoDB && c.DynamoDBTable == "" {
			return fmt.Errorf("TABLE_NAME is required")
		}
	}

	return nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvDuration gets a duration environment variable with a default value
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		if secs, err := strconv.Atoi(value); err == nil {
			return time.Duration(secs) * time.Second
		}
	}
	return defaultValue
}
