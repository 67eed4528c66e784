package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	API     APIConfig
	Storage StorageConfig
	Logging LoggingConfig
}

type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type StorageConfig struct {
	Path string
}

type LoggingConfig struct {
	Level string
}

func Load() (*Config, error) {
	// Cargar .env si existe
	if err := godotenv.Load(); err != nil {
		// No es crítico si no existe el archivo .env
	}

	config := &Config{
		API: APIConfig{
			BaseURL: getEnv("API_BASE_URL", "http://localhost:3000/api"),
			Timeout: time.Duration(getEnvAsInt("API_TIMEOUT_SECONDS", 30)) * time.Second,
		},
		Storage: StorageConfig{
			Path: getEnv("STORAGE_PATH", "data/session.db"),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
