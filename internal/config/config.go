// Package config reads process configuration from the environment, after an
// optional .env file in the working directory.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Env string

const (
	EnvDevelopment Env = "development"
	EnvProduction  Env = "production"
)

type Config struct {
	Env Env

	// DBPath is a SQLite path or URI; DatabaseURL, when set, is a Postgres
	// DSN and takes precedence.
	DBPath      string
	DatabaseURL string

	LogLevel string

	HTTPAddr    string
	CORSOrigins []string

	// LLMRetention is how long LLM request events are kept by `serve`.
	LLMRetention time.Duration
}

// DSN returns the database to open: DatabaseURL when set, else DBPath.
func (c Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DBPath
}

// Load reads .env (a missing file is fine) and then the environment.
func Load() Config {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Config from the process environment.
func FromEnv() Config {
	return Config{
		Env:          Env(envOr("MATHCOACH_ENV", string(EnvProduction))),
		DBPath:       os.Getenv("MATHCOACH_DB"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		LogLevel:     os.Getenv("LOG_LEVEL"),
		HTTPAddr:     envOr("MATHCOACH_ADDR", ":8080"),
		CORSOrigins:  csvOr("MATHCOACH_CORS_ORIGINS", "http://localhost:3000"),
		LLMRetention: durationOr("MATHCOACH_LLM_RETENTION", 30*24*time.Hour),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func durationOr(k string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(k))
	if err != nil || d <= 0 {
		return def
	}
	return d
}
