// README: Config loader with env defaults; required API keys fail startup.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// ErrMissing marks a required configuration value that was absent at startup.
// It is reported once, before any input surface becomes usable.
var ErrMissing = errors.New("missing required configuration")

type Config struct {
	HTTP struct {
		Addr string
	}
	AI struct {
		GeminiKey string
		Model     string
	}
	Maps struct {
		APIKey string
	}
	OCR struct {
		Enabled bool
	}
	RequestTimeout time.Duration
}

// Load reads configuration from the process environment, after loading an
// optional .env file. It returns ErrMissing when a required secret is absent.
func Load() (Config, error) {
	// A missing .env file is fine; the environment may be set directly.
	_ = godotenv.Load()

	var cfg Config
	cfg.HTTP.Addr = envOrDefault("AKSHAR_HTTP_ADDR", ":8080")
	cfg.AI.Model = envOrDefault("AKSHAR_GEMINI_MODEL", "gemini-2.0-flash")
	cfg.OCR.Enabled = envOrDefaultBool("AKSHAR_OCR_ENABLED", false)
	cfg.RequestTimeout = time.Duration(envOrDefaultInt("AKSHAR_REQUEST_TIMEOUT_SECONDS", 15)) * time.Second

	var err error
	if cfg.AI.GeminiKey, err = envOrError("GEMINI_API_KEY"); err != nil {
		return Config{}, err
	}
	if cfg.Maps.APIKey, err = envOrError("GOOGLE_MAPS_API_KEY"); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrError(key string) (string, error) {
	if v := os.Getenv(key); v != "" {
		return v, nil
	}
	return "", fmt.Errorf("%w: %s", ErrMissing, key)
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envOrDefaultBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
