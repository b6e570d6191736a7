// Package config loads application configuration from environment
// variables, optionally seeded from a .env file by the entrypoints.
package config

import (
	"os"
	"strconv"
)

// Config holds all runtime settings for the service binaries.
type Config struct {
	// Port the web server listens on.
	Port string
	// CatalogPath is the enriched catalog snapshot consumed at startup.
	CatalogPath string
	// EngineConfigPath points at the engine's config.json tuning file.
	EngineConfigPath string
	// PosterBaseURL prefixes poster identifiers into image URLs.
	PosterBaseURL string

	// TMDBAPIKey authenticates the enrichment jobs.
	TMDBAPIKey string
	// TMDBRateLimit caps metadata requests per second.
	TMDBRateLimit float64

	// SentimentBackend selects the classifier: "vader" or "onnx".
	SentimentBackend string
	// OrtLibPath locates the onnxruntime shared library (onnx backend).
	OrtLibPath string
	// SentimentModelPath is the exported ONNX sentiment model.
	SentimentModelPath string
	// SentimentTokenizerPath is the matching tokenizer.json.
	SentimentTokenizerPath string
}

// Load reads configuration from environment variables with defaults.
func Load() *Config {
	rateLimit, err := strconv.ParseFloat(getEnv("TMDB_RATE_LIMIT", "2"), 64)
	if err != nil || rateLimit <= 0 {
		rateLimit = 2
	}
	return &Config{
		Port:                   getEnv("PORT", "8080"),
		CatalogPath:            getEnv("CATALOG_PATH", "data/latest_movies_with_genres.csv"),
		EngineConfigPath:       getEnv("ENGINE_CONFIG_PATH", "config.json"),
		PosterBaseURL:          getEnv("POSTER_BASE_URL", "https://image.tmdb.org/t/p/w200"),
		TMDBAPIKey:             getEnv("TMDB_API_KEY", ""),
		TMDBRateLimit:          rateLimit,
		SentimentBackend:       getEnv("SENTIMENT_BACKEND", "vader"),
		OrtLibPath:             getEnv("ORT_LIB_PATH", ""),
		SentimentModelPath:     getEnv("SENTIMENT_MODEL_PATH", ""),
		SentimentTokenizerPath: getEnv("SENTIMENT_TOKENIZER_PATH", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
