// Package config reads server configuration from the environment, with an
// optional .env file for development.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds server configuration. Command-line flags override these
// values where both exist.
type Config struct {
	Addr     string // listen address
	DBPath   string // SQLite database for accounts and auth
	DataDir  string // directory holding per-user forest files
	BaseURL  string // public URL used when building login links
	LogPath  string // optional log file
	SMTPHost string
	SMTPPort int
	SMTPFrom string
}

// Load reads configuration from environment variables, consulting a .env
// file if one exists.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Addr:     getEnv("SKRINJA_ADDR", ":8080"),
		DBPath:   getEnv("SKRINJA_DB", "skrinja.sqlite3"),
		DataDir:  getEnv("SKRINJA_DATA_DIR", "data"),
		BaseURL:  getEnv("SKRINJA_BASE_URL", "http://localhost:8080"),
		LogPath:  getEnv("SKRINJA_LOG", ""),
		SMTPHost: getEnv("SMTP_HOST", ""),
		SMTPPort: getEnvAsInt("SMTP_PORT", 25),
		SMTPFrom: getEnv("SMTP_FROM", "skrinja@localhost"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
