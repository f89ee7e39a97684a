package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"API_ENDPOINT", "HTTP_TIMEOUT", "PORT", "PUBLIC_URL",
		"STORAGE_ENDPOINT", "STORAGE_BUCKET", "STORAGE_API_KEY", "SESSION_DIR",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.API.Endpoint != "http://localhost:5000" {
		t.Errorf("api endpoint = %q", cfg.API.Endpoint)
	}
	if cfg.API.Timeout != 15*time.Second {
		t.Errorf("timeout = %v", cfg.API.Timeout)
	}
	if cfg.Server.Port != "3000" {
		t.Errorf("port = %q", cfg.Server.Port)
	}
	if cfg.Session.Dir != ".sessions" {
		t.Errorf("session dir = %q", cfg.Session.Dir)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("API_ENDPOINT", "https://api.example.com")
	t.Setenv("HTTP_TIMEOUT", "30")
	t.Setenv("PORT", "8080")
	t.Setenv("STORAGE_BUCKET", "media.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.API.Endpoint != "https://api.example.com" {
		t.Errorf("api endpoint = %q", cfg.API.Endpoint)
	}
	if cfg.API.Timeout != 30*time.Second {
		t.Errorf("timeout = %v", cfg.API.Timeout)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("port = %q", cfg.Server.Port)
	}
	if cfg.Storage.Bucket != "media.example.com" {
		t.Errorf("bucket = %q", cfg.Storage.Bucket)
	}
}
