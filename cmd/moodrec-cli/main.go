// Command moodrec-cli prints recommendations for a mood given on the
// command line, without starting the web server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/sanamulla68/Sentiment-Enhanced-Movie-Recommendation-System/internal/sentiment"
	"github.com/sanamulla68/Sentiment-Enhanced-Movie-Recommendation-System/recommender"
)

type cliOptions struct {
	configPath  string
	catalogPath string
	mood        string
	include     string
	exclude     string
	shuffle     bool
	seed        int64
}

func main() {
	opts, err := parseFlags()
	if err != nil {
		log.Fatalf("moodrec-cli: %v", err)
	}
	if err := run(opts); err != nil {
		log.Fatalf("moodrec-cli: %v", err)
	}
}

func parseFlags() (cliOptions, error) {
	var opts cliOptions
	flag.StringVar(&opts.configPath, "config", "config.json", "Path to the engine config file")
	flag.StringVar(&opts.catalogPath, "catalog", "data/latest_movies_with_genres.csv", "Movie catalog CSV")
	flag.StringVar(&opts.mood, "mood", "", "Mood description to recommend for")
	flag.StringVar(&opts.include, "include", "", "Comma separated genres to include")
	flag.StringVar(&opts.exclude, "exclude", "", "Comma separated genres to exclude")
	flag.BoolVar(&opts.shuffle, "shuffle", false, "Shuffle the candidate pool before picking")
	flag.Int64Var(&opts.seed, "seed", 0, "Shuffle seed (0 means time based)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s --mood TEXT [options]\n\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	opts.mood = strings.TrimSpace(opts.mood)
	if opts.mood == "" {
		flag.Usage()
		return opts, errors.New("missing required --mood text")
	}
	return opts, nil
}

func run(opts cliOptions) error {
	catalog, err := recommender.LoadCatalogCSV(opts.catalogPath)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	cfg, err := recommender.LoadConfig(opts.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	var engineOpts []recommender.Option
	if opts.seed != 0 {
		engineOpts = append(engineOpts, recommender.WithRand(rand.New(rand.NewSource(opts.seed))))
	}
	engine, err := recommender.NewService(catalog, cfg, engineOpts...)
	if err != nil {
		return fmt.Errorf("init engine: %w", err)
	}

	analyzer := sentiment.NewVaderAnalyzer()
	detected, err := analyzer.Classify(context.Background(), opts.mood)
	if err != nil {
		return fmt.Errorf("classify mood: %w", err)
	}

	movies, err := engine.Recommend(recommender.Request{
		Text:          opts.mood,
		Sentiment:     recommender.ParseSentiment(string(detected.Label)),
		IncludeGenres: splitList(opts.include),
		ExcludeGenres: splitList(opts.exclude),
		Shuffle:       opts.shuffle,
	})
	if err != nil {
		return fmt.Errorf("recommend: %w", err)
	}

	fmt.Printf("Detected sentiment: %s (%.3f)\n\n", detected.Label, detected.Score)
	if len(movies) == 0 {
		fmt.Println("No movies matched the genre filters.")
		return nil
	}
	for i, m := range movies {
		fmt.Printf("%d. %s [%s]\n   %s\n", i+1, m.Title, strings.Join(m.Genres, ", "), m.Overview)
	}
	return nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
