package infrastructure

import (
	"fmt"
	"os"
	"strconv"

	"storefront/internal/storage"
)

// StorageConfig selects and parameterizes the key-value driver.
type StorageConfig struct {
	// Driver is one of memory, file, redis, postgres.
	Driver string

	// FileDir is the snapshot directory for the file driver.
	FileDir string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	Postgres *storage.PostgresConfig
}

// DefaultStorageConfig reads the storage configuration from the environment,
// defaulting to file snapshots under ./data.
func DefaultStorageConfig() *StorageConfig {
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	return &StorageConfig{
		Driver:        getEnv("STORAGE_DRIVER", "file"),
		FileDir:       getEnv("STORAGE_DIR", "data"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       redisDB,
		Postgres: &storage.PostgresConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			Database: getEnv("DB_NAME", "storefront"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
	}
}

// OpenDriver instantiates the configured storage driver. Unknown driver
// names are a startup error, not a silent fallback.
func OpenDriver(config *StorageConfig) (storage.Driver, error) {
	switch config.Driver {
	case "memory":
		return storage.NewMemoryDriver(), nil
	case "file":
		return storage.NewFileDriver(config.FileDir)
	case "redis":
		return storage.NewRedisDriver(config.RedisAddr, config.RedisPassword, config.RedisDB)
	case "postgres":
		return storage.NewPostgresDriver(config.Postgres)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", config.Driver)
	}
}

// getEnv gets environment variable with fallback
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
