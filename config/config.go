package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	API     API
	Server  Server
	Storage Storage
	Session Session
}

type API struct {
	Endpoint string
	Timeout  time.Duration
}

type Server struct {
	Port      string
	PublicURL string // base path for static assets (icons, logo)
}

type Storage struct {
	Endpoint string
	Bucket   string
	APIKey   string
}

type Session struct {
	Dir string // directory for the file-backed credential store
}

func Load() (*Config, error) {
	// Not fatal if missing so the app still runs on platforms that
	// inject env directly.
	_ = godotenv.Load()

	timeoutSec, _ := strconv.Atoi(getEnv("HTTP_TIMEOUT", "15"))

	return &Config{
		API: API{
			Endpoint: getEnv("API_ENDPOINT", "http://localhost:5000"),
			Timeout:  time.Duration(timeoutSec) * time.Second,
		},
		Server: Server{
			Port:      getEnv("PORT", "3000"),
			PublicURL: getEnv("PUBLIC_URL", ""),
		},
		Storage: Storage{
			Endpoint: getEnv("STORAGE_ENDPOINT", "https://firebasestorage.googleapis.com"),
			Bucket:   getEnv("STORAGE_BUCKET", ""),
			APIKey:   getEnv("STORAGE_API_KEY", ""),
		},
		Session: Session{
			Dir: getEnv("SESSION_DIR", ".sessions"),
		},
	}, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
