// Package config reads process configuration from the environment,
// optionally seeded from a local .env file.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// LoadEnv loads variables from a .env file if present. Missing files
// are fine; deployed environments configure through real env vars.
func LoadEnv() {
	_ = godotenv.Load()
}

// GetEnv returns an environment variable or a default value. Empty
// values count as unset.
func GetEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultVal
}

// GetIntEnv returns an int environment variable or a default value.
func GetIntEnv(key string, defaultVal int) int {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// IsProduction reports whether the app runs in production mode.
func IsProduction() bool {
	return GetEnv("ENV", "development") == "production"
}
