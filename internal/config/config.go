package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	APIPort  string
	LogLevel string

	OpenAIURL         string
	OpenAIAPIKey      string
	OpenAIModel       string
	OpenAIMaxTokens   int
	OpenAITemperature float64

	OCRURL      string
	OCRLanguage string

	UploadsPath    string
	MaxUploadBytes int64
	ExcerptLimit   int

	CORSAllowedOrigin string
}

func Load() Config {
	// Local development convenience; missing .env is not an error.
	_ = godotenv.Load()

	return Config{
		APIPort:  mustEnv("API_PORT", "8080"),
		LogLevel: mustEnv("LOG_LEVEL", "info"),

		OpenAIURL:         mustEnv("OPENAI_URL", "https://api.openai.com"),
		OpenAIAPIKey:      mustEnv("OPENAI_API_KEY", ""),
		OpenAIModel:       mustEnv("OPENAI_MODEL", "gpt-3.5-turbo-instruct"),
		OpenAIMaxTokens:   mustEnvInt("OPENAI_MAX_TOKENS", 500),
		OpenAITemperature: mustEnvFloat("OPENAI_TEMPERATURE", 0.3),

		OCRURL:      mustEnv("OCR_URL", "http://localhost:8884"),
		OCRLanguage: mustEnv("OCR_LANGUAGE", "eng"),

		UploadsPath:    mustEnv("UPLOADS_PATH", "./uploads"),
		MaxUploadBytes: mustEnvInt64("MAX_UPLOAD_BYTES", 20<<20),
		ExcerptLimit:   mustEnvInt("EXCERPT_LIMIT", 1000),

		CORSAllowedOrigin: mustEnv("CORS_ALLOWED_ORIGIN", "*"),
	}
}

func mustEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func mustEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func mustEnvInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return fallback
	}
	return n
}

func mustEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return fallback
	}
	return f
}
