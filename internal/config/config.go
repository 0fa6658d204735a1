package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/avant-dev/usersvc/internal/pkg/env"
)

// Storage backend names accepted in config.
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	StorageSQLite   = "sqlite"
	StorageRedis    = "redis"
)

type HTTPConfig struct {
	Addr        string   `yaml:"addr"`
	CORSOrigins []string `yaml:"cors_origins"`
}

type PostgresConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
}

// DSN renders the postgres connection string. SSL stays off; TLS
// termination is the deployment's concern.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", p.User, p.Password, p.Host, p.Port, p.Name)
}

type SQLiteConfig struct {
	Path string `yaml:"path"`
}

type RedisConfig struct {
	Addr string `yaml:"addr"`
	DB   int    `yaml:"db"`
}

type TracingConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Exporter string `yaml:"exporter"` // "stdout" or "otlp"
	Endpoint string `yaml:"endpoint"` // otlp collector, host:port
}

type Config struct {
	LogMode  string         `yaml:"log_mode"`
	LogLevel string         `yaml:"log_level"`
	Storage  string         `yaml:"storage"`
	HTTP     HTTPConfig     `yaml:"http"`
	Postgres PostgresConfig `yaml:"postgres"`
	SQLite   SQLiteConfig   `yaml:"sqlite"`
	Redis    RedisConfig    `yaml:"redis"`
	Tracing  TracingConfig  `yaml:"tracing"`
}

func defaults() Config {
	return Config{
		LogMode:  "development",
		LogLevel: "debug",
		Storage:  StorageMemory,
		HTTP: HTTPConfig{
			Addr:        ":8080",
			CORSOrigins: []string{"http://localhost:3000"},
		},
		Postgres: PostgresConfig{
			Host: "localhost",
			Port: "5432",
			User: "postgres",
			Name: "usersvc",
		},
		SQLite: SQLiteConfig{Path: "usersvc.db"},
		Redis:  RedisConfig{Addr: "localhost:6379"},
		Tracing: TracingConfig{
			Exporter: "stdout",
		},
	}
}

// Load reads the YAML file at path (skipped when path is empty or the
// file is absent), then applies environment overrides on top. Env wins
// over file, file wins over defaults.
func Load(path string) (Config, error) {
	cfg := defaults()

	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Fall through to env-only config.
		case err != nil:
			return Config{}, fmt.Errorf("reading config %q: %w", path, err)
		default:
			if err := yaml.Unmarshal(raw, &cfg); err != nil {
				return Config{}, fmt.Errorf("parsing config %q: %w", path, err)
			}
		}
	}

	applyEnv(&cfg)

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.LogMode = env.Get("LOG_MODE", cfg.LogMode)
	cfg.LogLevel = env.Get("LOG_LEVEL", cfg.LogLevel)
	cfg.Storage = env.Get("STORAGE_BACKEND", cfg.Storage)
	cfg.HTTP.Addr = env.Get("HTTP_ADDR", cfg.HTTP.Addr)
	if origins := env.Get("CORS_ORIGINS", ""); origins != "" {
		cfg.HTTP.CORSOrigins = splitAndTrim(origins)
	}
	cfg.Postgres.Host = env.Get("POSTGRES_HOST", cfg.Postgres.Host)
	cfg.Postgres.Port = env.Get("POSTGRES_PORT", cfg.Postgres.Port)
	cfg.Postgres.User = env.Get("POSTGRES_USER", cfg.Postgres.User)
	cfg.Postgres.Password = env.Get("POSTGRES_PASSWORD", cfg.Postgres.Password)
	cfg.Postgres.Name = env.Get("POSTGRES_NAME", cfg.Postgres.Name)
	cfg.SQLite.Path = env.Get("SQLITE_PATH", cfg.SQLite.Path)
	cfg.Redis.Addr = env.Get("REDIS_ADDR", cfg.Redis.Addr)
	cfg.Redis.DB = env.GetInt("REDIS_DB", cfg.Redis.DB)
	cfg.Tracing.Enabled = env.GetBool("OTEL_ENABLED", cfg.Tracing.Enabled)
	cfg.Tracing.Exporter = env.Get("OTEL_EXPORTER", cfg.Tracing.Exporter)
	cfg.Tracing.Endpoint = env.Get("OTEL_ENDPOINT", cfg.Tracing.Endpoint)
}

func (c Config) validate() error {
	switch strings.ToLower(c.Storage) {
	case StorageMemory, StoragePostgres, StorageSQLite, StorageRedis:
		return nil
	}
	return fmt.Errorf("unknown storage backend %q", c.Storage)
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
