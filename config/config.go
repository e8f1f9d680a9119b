// Package config provides configuration management for the label engine service.
package config

import (
	"os"
	"strconv"
)

// Config holds the complete service configuration.
type Config struct {
	Server ServerConfig
	Engine EngineConfig
	Log    LogConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port        string
	CORSEnabled bool
}

// EngineConfig selects the exact-tier codec implementation.
type EngineConfig struct {
	// Codec is "pattern" (internal symbol table) or "image" (boombuler)
	Codec string
	// MaxScale bounds the ?scale= output multiplier
	MaxScale int
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string
	Pretty bool
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8090"),
			CORSEnabled: getEnvBool("CORS_ENABLED", true),
		},
		Engine: EngineConfig{
			Codec:    getEnv("LABEL_CODEC", "pattern"),
			MaxScale: getEnvInt("LABEL_MAX_SCALE", 8),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Pretty: getEnvBool("LOG_PRETTY", false),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultValue
}
