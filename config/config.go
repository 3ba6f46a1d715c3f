package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

var (
	PORT      string
	DB_URL    string
	MEDIA_DIR string

	CONTENT_BASE_URL   string
	PREVIEW_JWT_SECRET string
	CORS_ORIGIN        string

	SITE_PORT string
)

// LoadServerEnv loads configuration for the content API server.
// DB access is mandatory there.
func LoadServerEnv() {
	loadDotEnv()

	PORT = getEnv("PORT", "8080")
	DB_URL = mustEnv("DB_URL")
	MEDIA_DIR = getEnv("MEDIA_DIR", "./media")
	CONTENT_BASE_URL = getEnv("CONTENT_BASE_URL", "http://localhost:8080")
	PREVIEW_JWT_SECRET = mustEnv("PREVIEW_JWT_SECRET")
	CORS_ORIGIN = getEnv("CORS_ORIGIN", "*")
}

// LoadSiteEnv loads configuration for the site renderer, which talks to the
// content API over HTTP and never opens the database.
func LoadSiteEnv() {
	loadDotEnv()

	SITE_PORT = getEnv("SITE_PORT", "3000")
	CONTENT_BASE_URL = getEnv("CONTENT_BASE_URL", "http://localhost:8080")
}

func loadDotEnv() {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found. Using system environment variables.")
	}
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatal().Str("key", key).Msg("Missing required environment variable")
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
