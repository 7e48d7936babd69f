// Package config loads the iban-check configuration: a .env file through
// godotenv, then the Viper hierarchy in viper.go.
package config

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var (
	once sync.Once
	// Logger is used for messages emitted before a container exists.
	Logger = logrus.New()
)

// LoadEnv loads environment variables from a .env file if one exists in
// the working directory or its parent. Variables already set are kept.
func LoadEnv() {
	once.Do(func() {
		envFile, ok := findEnvFile()
		if !ok {
			Logger.Debug("No .env file found, using environment variables")
			return
		}

		if err := godotenv.Load(envFile); err != nil {
			Logger.Warnf("Error loading .env file: %v", err)
			return
		}
		Logger.Debugf("Loaded environment variables from %s", envFile)
	})
}

func findEnvFile() (string, bool) {
	for _, candidate := range []string{".env", filepath.Join("..", ".env")} {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}
	return "", false
}

// GetEnv retrieves an environment variable with a fallback value if not set
func GetEnv(key, fallback string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	return value
}
