package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Log       LogConfig
	Telemetry TelemetryConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	AllowedHosts []string
}

type LogConfig struct {
	Level       string
	Development bool
}

type TelemetryConfig struct {
	Enabled      bool
	ServiceName  string
	Environment  string
	OTLPEndpoint string
	MetricsPort  string
}

var logLevels = map[string]struct{}{
	"debug": {}, "info": {}, "warn": {}, "error": {},
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present; real environment variables win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	// Parse allowed hosts (comma-separated list)
	var allowedHosts []string
	for _, host := range strings.Split(getEnv("ALLOWED_HOSTS", ""), ",") {
		host = strings.TrimSpace(host)
		if host != "" {
			allowedHosts = append(allowedHosts, host)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			Host:         getEnv("HOST", "0.0.0.0"),
			AllowedHosts: allowedHosts,
		},
		Log: LogConfig{
			Level:       strings.ToLower(getEnv("LOG_LEVEL", "info")),
			Development: getBoolEnv("LOG_DEVELOPMENT", false),
		},
		Telemetry: TelemetryConfig{
			Enabled:      getBoolEnv("OTEL_ENABLED", false),
			ServiceName:  getEnv("OTEL_SERVICE_NAME", "gicbank"),
			Environment:  getEnv("OTEL_ENVIRONMENT", "development"),
			OTLPEndpoint: getEnv("OTEL_EXPORTER_ENDPOINT", "localhost:4317"),
			MetricsPort:  getEnv("METRICS_PORT", "9464"),
		},
	}

	if _, err := strconv.Atoi(cfg.Server.Port); err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}
	if _, ok := logLevels[cfg.Log.Level]; !ok {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: must be one of debug, info, warn, error", cfg.Log.Level)
	}
	if cfg.Telemetry.Enabled {
		if _, err := strconv.Atoi(cfg.Telemetry.MetricsPort); err != nil {
			return nil, fmt.Errorf("invalid METRICS_PORT: %w", err)
		}
	}

	return cfg, nil
}

// Addr returns the host:port the HTTP server listens on.
func (c *ServerConfig) Addr() string {
	return c.Host + ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	// Accept: true, false, 1, 0, yes, no (case-insensitive)
	switch strings.ToLower(value) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	default:
		return defaultValue
	}
}
