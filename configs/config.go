package configs

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Environment string
	DBDriver    string
	DBSource    string
	Port        string
	CORSOrigins []string
	AutoMigrate bool
	Seed        bool
}

func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// envFiles are read in order; values already set win, so production.env
// shadows .env and the real environment shadows both.
var envFiles = []string{"production.env", ".env"}

// LoadConfig reads the optional env files and then the environment.
func LoadConfig() (*Config, error) {
	for _, f := range envFiles {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Environment: strings.ToLower(getEnv("APP_ENVIRONMENT", EnvDevelopment)),
		DBDriver:    strings.ToLower(getEnv("DB_DRIVER", DriverSQLite)),
		DBSource:    getEnv("APP_DB_PATH", getEnv("DB_SOURCE", "var/data.sqlite")),
		Port:        getEnv("PORT", "8080"),
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "*")),
	}
	if cfg.Environment != EnvDevelopment && cfg.Environment != EnvProduction {
		return nil, fmt.Errorf("APP_ENVIRONMENT must be %q or %q, got %q", EnvDevelopment, EnvProduction, cfg.Environment)
	}
	switch cfg.DBDriver {
	case DriverSQLite, DriverPostgres, DriverMySQL:
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
	if cfg.DBSource == "" {
		return nil, errors.New("APP_DB_PATH must not be empty")
	}

	var err error
	if cfg.AutoMigrate, err = getBool("DB_AUTO_MIGRATE", !cfg.IsProduction()); err != nil {
		return nil, err
	}
	if cfg.Seed, err = getBool("DB_SEED", false); err != nil {
		return nil, err
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) (bool, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
