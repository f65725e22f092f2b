// Package config holds the fixed domain constants of the complaint system and
// the runtime configuration loaded from the environment.
package config

import (
	"os"
	"strconv"
	"strings"
)

// Config is the runtime configuration of the server and admin CLI.
// Values come from the environment (a .env file is loaded in main when present).
type Config struct {
	HTTPAddr string

	// Backend selects the persistence substrate: "redis", "postgres" or "memory".
	Backend string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	PostgresDSN string

	JWTSecret string

	// Telegram notification sink; disabled when the token is empty.
	TelegramToken  string
	TelegramChatID int64

	AllowOrigins []string
}

// Load reads the configuration from environment variables, applying defaults
// suitable for local development.
func Load() Config {
	cfg := Config{
		HTTPAddr:      getEnv("HTTP_ADDR", ":8080"),
		Backend:       getEnv("STORE_BACKEND", "redis"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		PostgresDSN:   getEnv("POSTGRES_DSN", "host=localhost user=user password=password dbname=hostelhub port=5432 sslmode=disable"),
		JWTSecret:     getEnv("JWT_SECRET", "dev-only-secret"),
		TelegramToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
	}

	if db, err := strconv.Atoi(os.Getenv("REDIS_DB")); err == nil {
		cfg.RedisDB = db
	}
	if chatID, err := strconv.ParseInt(os.Getenv("TELEGRAM_CHAT_ID"), 10, 64); err == nil {
		cfg.TelegramChatID = chatID
	}

	origins := getEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowOrigins = append(cfg.AllowOrigins, o)
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
