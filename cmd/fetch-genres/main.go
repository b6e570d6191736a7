// Command fetch-genres fills missing genre lists in a movie catalog CSV by
// resolving each title through TMDB search and details lookups. Interrupted
// runs resume from the output file.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"

	"github.com/sanamulla68/Sentiment-Enhanced-Movie-Recommendation-System/internal/enrich"
	"github.com/sanamulla68/Sentiment-Enhanced-Movie-Recommendation-System/internal/tmdb"
)

type cliOptions struct {
	inputPath  string
	outputPath string
	apiKey     string
	rateLimit  float64
}

func main() {
	opts, err := parseFlags()
	if err != nil {
		log.Fatalf("fetch-genres: %v", err)
	}
	if err := run(opts); err != nil {
		log.Fatalf("fetch-genres: %v", err)
	}
}

func parseFlags() (cliOptions, error) {
	_ = godotenv.Load()

	var opts cliOptions
	flag.StringVar(&opts.inputPath, "input", "data/latest_movies_with_posters.csv", "Catalog CSV to enrich")
	flag.StringVar(&opts.outputPath, "output", "data/latest_movies_with_genres.csv", "Enriched CSV to write (resumed if it exists)")
	flag.StringVar(&opts.apiKey, "key", os.Getenv("TMDB_API_KEY"), "TMDB API key (defaults to TMDB_API_KEY)")
	flag.Float64Var(&opts.rateLimit, "rate", 2, "Maximum TMDB requests per second")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s --input FILE --output FILE [options]\n\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	opts.apiKey = strings.TrimSpace(opts.apiKey)
	if opts.apiKey == "" {
		flag.Usage()
		return opts, errors.New("missing TMDB API key (--key or TMDB_API_KEY)")
	}
	return opts, nil
}

func run(opts cliOptions) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	rows, resumed, err := loadRows(opts.inputPath, opts.outputPath)
	if err != nil {
		return err
	}
	if resumed {
		logger.Info().Str("path", opts.outputPath).Msg("resuming from existing output")
	}

	client := tmdb.NewClient(opts.apiKey,
		tmdb.WithRateLimit(opts.rateLimit),
		tmdb.WithLogger(logger),
	)

	var bar *progressbar.ProgressBar
	job := &enrich.Job{
		Source: client,
		Save: func(rows []enrich.Row) error {
			return enrich.WriteDataset(opts.outputPath, rows)
		},
		Progress: func(done, total int) {
			if bar == nil {
				bar = progressbar.Default(int64(total), "genres")
			}
			_ = bar.Set(done)
		},
		Logger: logger,
	}

	filled, err := job.FillGenres(ctx, rows)
	if err != nil {
		return fmt.Errorf("fill genres: %w", err)
	}
	logger.Info().Int("filled", filled).Str("output", opts.outputPath).Msg("done")
	return nil
}

func loadRows(inputPath, outputPath string) ([]enrich.Row, bool, error) {
	if _, err := os.Stat(outputPath); err == nil {
		rows, err := enrich.ReadDataset(outputPath)
		if err != nil {
			return nil, false, fmt.Errorf("read %s: %w", outputPath, err)
		}
		return rows, true, nil
	}
	rows, err := enrich.ReadDataset(inputPath)
	if err != nil {
		return nil, false, fmt.Errorf("read %s: %w", inputPath, err)
	}
	return rows, false, nil
}
