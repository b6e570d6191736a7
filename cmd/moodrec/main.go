// Command moodrec serves the mood-based movie recommendation web app.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/sanamulla68/Sentiment-Enhanced-Movie-Recommendation-System/internal/config"
	"github.com/sanamulla68/Sentiment-Enhanced-Movie-Recommendation-System/internal/sentiment"
	"github.com/sanamulla68/Sentiment-Enhanced-Movie-Recommendation-System/internal/web"
	"github.com/sanamulla68/Sentiment-Enhanced-Movie-Recommendation-System/recommender"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "moodrec: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()
	cfg := config.Load()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	catalog, err := recommender.LoadCatalogCSV(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	engineCfg, err := recommender.LoadConfig(cfg.EngineConfigPath)
	if err != nil {
		return fmt.Errorf("load engine config: %w", err)
	}
	engine, err := recommender.NewService(catalog, engineCfg, recommender.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("init engine: %w", err)
	}

	analyzer, closeAnalyzer := buildAnalyzer(cfg, logger)
	defer closeAnalyzer()

	logger.Info().
		Int("movies", engine.CatalogSize()).
		Str("backend", cfg.SentimentBackend).
		Str("port", cfg.Port).
		Msg("starting server")

	srv := web.New(engine, analyzer, cfg.PosterBaseURL, logger)
	return srv.Router().Run(":" + cfg.Port)
}

// buildAnalyzer selects the sentiment backend. An ONNX backend that fails to
// initialize falls back to VADER so the service still comes up.
func buildAnalyzer(cfg *config.Config, logger zerolog.Logger) (sentiment.Analyzer, func()) {
	if cfg.SentimentBackend == "onnx" {
		clf, err := sentiment.NewOrtClassifier(sentiment.OrtConfig{
			OrtLib:        cfg.OrtLibPath,
			ModelPath:     cfg.SentimentModelPath,
			TokenizerPath: cfg.SentimentTokenizerPath,
		})
		if err == nil {
			return clf, func() { _ = clf.Close() }
		}
		logger.Warn().Err(err).Msg("onnx sentiment backend unavailable, using vader")
	}
	return sentiment.NewVaderAnalyzer(), func() {}
}
