package environments

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Storage  StorageConfig
	Fetch    FetchConfig
	Card     CardConfig
	Auth     AuthConfig
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// StorageConfig points at the Supabase storage API used as the blob store
// for generated cards and user uploads.
type StorageConfig struct {
	URL        string
	ServiceKey string
	Bucket     string
	Timeout    time.Duration
}

// FetchConfig bounds background-image downloads. The timeout is mandatory:
// a hanging origin must fail the render call, not park it forever.
type FetchConfig struct {
	Timeout time.Duration
}

type CardConfig struct {
	Width  int
	Height int
}

type AuthConfig struct {
	ImagesAPIKey string
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: GetEnv("SERVER_PORT", "8080"),
		},
		Database: DatabaseConfig{
			Host:     GetEnv("DB_HOST", "localhost"),
			Port:     GetEnv("DB_PORT", "3306"),
			User:     GetEnv("DB_USER", "festwish"),
			Password: GetEnv("DB_PASSWORD", "festwish123"),
			DBName:   GetEnv("DB_NAME", "festwish"),
		},
		Redis: RedisConfig{
			Host:     GetEnv("REDIS_HOST", "localhost"),
			Port:     GetEnv("REDIS_PORT", "6379"),
			Password: GetEnv("REDIS_PASSWORD", ""),
			DB:       GetEnvAsInt("REDIS_DB", 0),
		},
		Storage: StorageConfig{
			URL:        GetEnv("STORAGE_URL", "http://localhost:54321"),
			ServiceKey: GetEnv("STORAGE_SERVICE_KEY", ""),
			Bucket:     GetEnv("STORAGE_BUCKET", "festival-images"),
			Timeout:    GetEnvAsDuration("STORAGE_TIMEOUT", 15*time.Second),
		},
		Fetch: FetchConfig{
			Timeout: GetEnvAsDuration("IMAGE_FETCH_TIMEOUT", 10*time.Second),
		},
		Card: CardConfig{
			Width:  GetEnvAsInt("CARD_WIDTH", 1080),
			Height: GetEnvAsInt("CARD_HEIGHT", 1350),
		},
		Auth: AuthConfig{
			ImagesAPIKey: GetEnv("IMAGES_API_KEY", ""),
		},
	}
}

func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func GetEnvAsInt(key string, fallback int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return fallback
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return fallback
	}

	return value
}

func GetEnvAsDuration(key string, fallback time.Duration) time.Duration {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return fallback
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return fallback
	}

	return value
}
