package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
// It is the single source of truth for runtime parameters.
type Config struct {
	Port      string
	Env       string
	JWTSecret string

	// IssuedAtCity is the fixed city name printed on the
	// "Ditetapkan di ..." line of every generated document.
	IssuedAtCity string

	DB       DatabaseConfig
	Redis    RedisConfig
	Storage  StorageConfig
	Worker   WorkerConfig
	Document DocumentConfig
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// RedisConfig contains Redis connection parameters.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// StorageConfig contains S3-compatible object storage configuration used
// for letterhead and attachment uploads.
type StorageConfig struct {
	Region          string
	Bucket          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	PublicBaseURL   string
}

// WorkerConfig contains interval configuration for background workers.
type WorkerConfig struct {
	StatsRefreshInterval time.Duration
}

// DocumentConfig contains knobs for document generation.
type DocumentConfig struct {
	// LetterheadFetchTimeout bounds the kop surat image download before the
	// renderer falls back to the text header.
	LetterheadFetchTimeout time.Duration
}

// Load reads configuration from the environment, with a best-effort .env load.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		Env:          getEnv("APP_ENV", "development"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		IssuedAtCity: getEnv("DOCUMENT_ISSUED_AT", "Sungai Raya"),
		DB: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     getEnv("DB_NAME", "siperdin"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Storage: StorageConfig{
			Region:          getEnv("STORAGE_REGION", "ap-southeast-1"),
			Bucket:          os.Getenv("STORAGE_BUCKET"),
			Endpoint:        os.Getenv("STORAGE_ENDPOINT"),
			AccessKeyID:     os.Getenv("STORAGE_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("STORAGE_SECRET_ACCESS_KEY"),
			PublicBaseURL:   os.Getenv("STORAGE_PUBLIC_BASE_URL"),
		},
		Worker: WorkerConfig{
			StatsRefreshInterval: getEnvDuration("WORKER_STATS_REFRESH_INTERVAL", 5*time.Minute),
		},
		Document: DocumentConfig{
			LetterheadFetchTimeout: getEnvDuration("DOCUMENT_LETTERHEAD_TIMEOUT", 10*time.Second),
		},
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
