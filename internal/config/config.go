package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv   string `env:"APP_ENV" envDefault:"development"`
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`

	Postgres PostgresConfig
	Redis    RedisConfig
	Auth     AuthConfig
	Profile  ProfileConfig
	Limits   RateLimitConfig

	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"https://*,http://localhost:3000"`

	// Optional overrides for the embedded data tables.
	HullsFile string `env:"HULLS_FILE"`
	RolesFile string `env:"ROLES_FILE"`
}

type PostgresConfig struct {
	Host     string `env:"PG_HOST" envDefault:"localhost"`
	Port     string `env:"PG_PORT" envDefault:"5432"`
	User     string `env:"PG_USER"`
	Password string `env:"PG_PASSWORD"`
	DB       string `env:"PG_DB"`
}

// DSN returns the postgres connection string shared by sqlx and GORM.
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", c.User, c.Password, c.Host, c.Port, c.DB)
}

type RedisConfig struct {
	Host     string `env:"REDIS_HOST"`
	Port     string `env:"REDIS_PORT" envDefault:"6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

// Enabled reports whether a Redis host was configured. Without one the in-memory cache is used.
func (c RedisConfig) Enabled() bool { return c.Host != "" }

func (c RedisConfig) Addr() string { return fmt.Sprintf("%s:%s", c.Host, c.Port) }

type AuthConfig struct {
	JWTSecret      string        `env:"JWT_SECRET"`
	AccessCacheTTL time.Duration `env:"ACCESS_CACHE_TTL" envDefault:"60s"`
}

type ProfileConfig struct {
	FetchConcurrency int `env:"PROFILE_FETCH_CONCURRENCY" envDefault:"4"`
}

type RateLimitConfig struct {
	RPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"5"`
	Burst int     `env:"RATE_LIMIT_BURST" envDefault:"20"`
}

// Load reads an optional .env file and then parses the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Profile.FetchConcurrency < 1 {
		cfg.Profile.FetchConcurrency = 1
	}
	return &cfg, nil
}
