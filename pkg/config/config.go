// Package config loads the application configuration from the environment,
// optionally seeded from a .env file.
package config

import (
	"fmt"
	"log/slog"
)

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Host        string
	Port        int
	CORSOrigins string
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// AppConfig is the top-level application configuration.
type AppConfig struct {
	Env          string
	Server       ServerConfig
	SeedDemoData bool
}

// Load reads the configuration from the environment, loading the given .env
// file first if present.
func Load(envFilePath string) (*AppConfig, error) {
	LoadEnv(slog.Default(), envFilePath)

	cfg := &AppConfig{
		Env: GetEnv("APP_ENV", "development"),
		Server: ServerConfig{
			Host:        GetEnv("SERVER_HOST", "0.0.0.0"),
			Port:        GetEnvAsInt("SERVER_PORT", 8080),
			CORSOrigins: GetEnv("CORS_ORIGINS", "http://localhost:3000"),
		},
		SeedDemoData: GetEnvAsBool("SEED_DEMO_DATA", true),
	}
	return cfg, nil
}
