package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Backend BackendConfig
	Limits  LimitsConfig
}

type ServerConfig struct {
	Port string
}

// BackendConfig points at the banking backend that owns all business
// logic and persistence. The console never talks to a database itself.
type BackendConfig struct {
	Host string
}

type LimitsConfig struct {
	LoginPerMinute int
	ViewPerMinute  int
}

func Load() (*Config, error) {
	// .env is optional; deployments usually set the environment directly
	godotenv.Load()

	cfg := &Config{}

	cfg.Server.Port = os.Getenv("PORT")
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}

	cfg.Backend.Host = os.Getenv("BACKEND_HOST")
	if cfg.Backend.Host == "" {
		cfg.Backend.Host = "http://localhost:8085"
	}

	cfg.Limits.LoginPerMinute = getEnvAsInt("LOGIN_RATE_LIMIT", 30)
	cfg.Limits.ViewPerMinute = getEnvAsInt("VIEW_RATE_LIMIT", 1200)

	return cfg, nil
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
