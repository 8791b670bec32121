package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration, sourced from environment variables
// (loaded from .env for local runs). CatalogDSN and RedisURL are optional:
// without them the service runs fully in memory, which is the behavior the
// storefront was built around.
type Config struct {
	HTTPAddr        string        `envconfig:"HTTP_ADDR" default:":8080"`
	Environment     string        `envconfig:"APP_ENV" default:"development"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`

	// CatalogDSN switches the catalog from the built-in seed to Postgres.
	CatalogDSN string `envconfig:"CATALOG_DSN"`

	// RedisURL switches session storage from the in-process map to Redis.
	RedisURL string `envconfig:"REDIS_URL"`

	SessionTTL time.Duration `envconfig:"SESSION_TTL" default:"12h"`

	// GeminiAPIKey may be empty; availability checks then always answer with
	// the staff-review fallback instead of failing.
	GeminiAPIKey string `envconfig:"GEMINI_API_KEY"`
	GeminiModel  string `envconfig:"GEMINI_MODEL" default:"gemini-3-flash-preview"`

	CORSOrigins []string `envconfig:"CORS_ORIGINS" default:"*"`
}

// Load reads .env if present, then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("process environment config: %w", err)
	}
	return cfg, nil
}
