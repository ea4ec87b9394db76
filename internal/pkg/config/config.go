package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config is the full runtime configuration, read from the environment.
type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// JWTSecret signs the session cookie. Required outside development.
	JWTSecret string `env:"JWT_SECRET"`

	// SessionStore selects the durable session backend: redis or mongo.
	SessionStore string        `env:"SESSION_STORE, default=redis"`
	SessionTTL   time.Duration `env:"SESSION_TTL,   default=168h"`
	CookieName   string        `env:"SESSION_COOKIE, default=gt_session"`

	// UpstreamURL is the base URL of the QuickCourt REST backend every
	// data operation is delegated to.
	UpstreamURL string `env:"UPSTREAM_URL, default=http://localhost:9000/api"`

	// AdminAccessKeyHash is the bcrypt hash of the admin-access gate key.
	// Empty disables the gate.
	AdminAccessKeyHash string `env:"ADMIN_ACCESS_KEY_HASH"`

	ActivityWorkers int `env:"ACTIVITY_WORKERS, default=4"`

	Redis RedisConfig
	Mongo MongoConfig
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=gametime_portal"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return validate(&cfg)
}

func validate(cfg *Config) (*Config, error) {
	if cfg.SessionStore != "redis" && cfg.SessionStore != "mongo" {
		return nil, fmt.Errorf("config: SESSION_STORE must be redis or mongo, got %q", cfg.SessionStore)
	}
	return cfg, nil
}
