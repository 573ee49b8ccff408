package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Client  ClientConfig
	Storage StorageConfig
	Worker  WorkerConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type ClientConfig struct {
	APIBaseURL    string
	MaxFileSize   int64
	RedirectDelay time.Duration
	MessageTTL    time.Duration
}

type StorageConfig struct {
	UploadPath  string
	MaxFileSize int64
}

type WorkerConfig struct {
	Concurrency int
}

// 16 MiB, matching the server-side upload limit.
const defaultMaxFileSize = 16 * 1024 * 1024

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	maxFileSize := getEnvAsInt64("MAX_FILE_SIZE", defaultMaxFileSize)

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		Client: ClientConfig{
			APIBaseURL:    getEnv("API_BASE_URL", "http://localhost:3000"),
			MaxFileSize:   maxFileSize,
			RedirectDelay: getEnvAsDuration("REDIRECT_DELAY", "3s"),
			MessageTTL:    getEnvAsDuration("MESSAGE_TTL", "5s"),
		},
		Storage: StorageConfig{
			UploadPath:  getEnv("UPLOAD_PATH", "./uploads"),
			MaxFileSize: maxFileSize,
		},
		Worker: WorkerConfig{
			Concurrency: getEnvAsInt("WORKER_CONCURRENCY", 3),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
