package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=3000"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Session SessionConfig
	Redis   RedisConfig
	Backend BackendConfig
	Login   LoginConfig
}

type SessionConfig struct {
	// Secret signs the session cookie. Required outside development.
	Secret string        `env:"SESSION_SECRET, default=dev-insecure-secret"`
	TTL    time.Duration `env:"SESSION_TTL,    default=24h"`
	Cookie string        `env:"SESSION_COOKIE, default=healthcare_session"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type BackendConfig struct {
	BaseURL string        `env:"BACKEND_BASE_URL, default=http://localhost:8080"`
	Timeout time.Duration `env:"BACKEND_TIMEOUT,  default=10s"`
}

type LoginConfig struct {
	// Rate and Burst bound POST /login attempts per client IP.
	Rate  float64 `env:"LOGIN_RATE,  default=5"`
	Burst int     `env:"LOGIN_BURST, default=10"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
