package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is process-wide configuration, loaded once at startup.
//
// TokenSecret signs bearer tokens; rotating it invalidates all outstanding
// tokens, which is acceptable because there is no revocation list.
type Config struct {
	Port string
	Env  string

	StorageBackend string
	DatabaseURL    string

	TokenSecret []byte
	TokenTTL    time.Duration

	BcryptCost int
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present (local development convenience).
func Load() (Config, error) {
	_ = godotenv.Load()

	secret := os.Getenv("TOKEN_SECRET")
	if secret == "" {
		return Config{}, fmt.Errorf("missing required env var: TOKEN_SECRET")
	}

	cfg := Config{
		Port:           getenv("PORT", "8080"),
		Env:            getenv("APP_ENV", "production"),
		StorageBackend: getenv("STORAGE_BACKEND", "memory"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		TokenSecret:    []byte(secret),
		TokenTTL:       2 * time.Hour,
		BcryptCost:     10,
	}

	if v := os.Getenv("TOKEN_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("TOKEN_TTL must be a duration (e.g. 2h): %w", err)
		}
		cfg.TokenTTL = d
	}
	if v := os.Getenv("BCRYPT_COST"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("BCRYPT_COST must be an integer: %w", err)
		}
		cfg.BcryptCost = n
	}
	if cfg.StorageBackend == "postgres" && cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("STORAGE_BACKEND=postgres requires DATABASE_URL")
	}

	return cfg, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
