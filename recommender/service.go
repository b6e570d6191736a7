package recommender

import (
	"errors"
	"math/rand"
	"time"

	"github.com/rs/zerolog"
)

// ErrEmptyMood is returned when a request carries no mood text. Callers are
// expected to validate input before invoking the engine; this is a
// precondition violation, not a recoverable runtime error.
var ErrEmptyMood = errors.New("mood text is empty")

// Service is the recommendation engine. It scores the whole catalog against
// the request's mood text, adjusts for the detected polarity, applies genre
// constraints and selects a bounded result set. The catalog is shared
// read-only; all scoring state is request-scoped, so a Service is safe for
// concurrent use.
type Service struct {
	catalog *Catalog
	cfg     Config
	logger  zerolog.Logger

	// rng, when set, drives shuffled selection; tests inject a fixed seed
	// to assert exact output. When nil each shuffled call draws a fresh
	// time-seeded generator.
	rng *rand.Rand
}

// Option customizes a Service.
type Option func(*Service)

// WithLogger attaches a structured logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithRand fixes the randomness source used for shuffled selection.
// The Service is no longer safe for concurrent shuffled calls when a shared
// source is injected.
func WithRand(rng *rand.Rand) Option {
	return func(s *Service) { s.rng = rng }
}

// NewService constructs the engine over a loaded catalog.
func NewService(catalog *Catalog, cfg Config, opts ...Option) (*Service, error) {
	if catalog == nil {
		return nil, errors.New("catalog is required")
	}
	s := &Service{
		catalog: catalog,
		cfg:     sanitizeConfig(cfg),
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Config returns a copy of the engine configuration.
func (s *Service) Config() Config {
	return s.cfg
}

// Genres returns the sorted distinct genre names of the catalog.
func (s *Service) Genres() []string {
	return s.catalog.Genres()
}

// CatalogSize returns the number of scorable movies.
func (s *Service) CatalogSize() int {
	return s.catalog.Len()
}

// Recommend converts a mood description and a detected polarity into a
// ranked, filtered subset of the catalog. It returns at most Config.TopN
// movies; an empty result after genre filtering is a valid outcome. Scores
// are recomputed from scratch on every call because the vector space
// includes the mood text as a pseudo-document.
func (s *Service) Recommend(req Request) ([]Movie, error) {
	text := NormalizeText(req.Text)
	if text == "" {
		return nil, ErrEmptyMood
	}

	sims := tfidfSimilarities(text, s.catalog.overviews)
	candidates := make([]ScoredMovie, len(sims))
	for i, m := range s.catalog.movies {
		candidates[i] = ScoredMovie{Movie: m, Similarity: sims[i]}
	}

	label := ParseSentiment(string(req.Sentiment))
	candidates = applySentiment(candidates, label, s.cfg.UpliftBoost)

	include := req.IncludeGenres
	if len(include) == 0 {
		include = MapMoodToGenres(text)
	}
	candidates = filterByGenres(candidates, NewGenreSet(include), NewGenreSet(req.ExcludeGenres))

	rng := s.rng
	if req.Shuffle && rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	result := rankAndSelect(candidates, s.cfg.TopN, s.cfg.PoolSize, req.Shuffle, rng)

	s.logger.Debug().
		Str("sentiment", string(label)).
		Int("candidates", len(candidates)).
		Int("results", len(result)).
		Bool("shuffle", req.Shuffle).
		Msg("recommendation computed")
	return result, nil
}
