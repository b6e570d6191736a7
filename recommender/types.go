package recommender

// Sentiment is the coarse polarity label supplied by the external classifier.
type Sentiment string

const (
	// SentimentPositive indicates an upbeat mood description.
	SentimentPositive Sentiment = "POSITIVE"
	// SentimentNegative indicates a downbeat mood description and triggers
	// dark-theme suppression and uplift boosting.
	SentimentNegative Sentiment = "NEGATIVE"
	// SentimentNeutral leaves the lexical ranking untouched.
	SentimentNeutral Sentiment = "NEUTRAL"
)

// Movie is a single catalog entry. Entries are immutable once loaded.
type Movie struct {
	Title      string   `json:"title"`
	Overview   string   `json:"overview"`
	Genres     []string `json:"genres,omitempty"`
	PosterPath string   `json:"posterPath,omitempty"`
}

// ScoredMovie pairs a catalog entry with its per-request similarity.
// Scores start in [0,1] and may exceed 1 after uplift boosting.
type ScoredMovie struct {
	Movie
	Similarity float64 `json:"similarity"`
}

// Request describes a single recommendation call.
type Request struct {
	Text          string    `json:"text"`
	Sentiment     Sentiment `json:"sentiment"`
	IncludeGenres []string  `json:"includeGenres,omitempty"`
	ExcludeGenres []string  `json:"excludeGenres,omitempty"`
	Shuffle       bool      `json:"shuffle"`
}

// Config aggregates engine tuning knobs persisted to config.json.
type Config struct {
	// TopN is the size of the final result set.
	TopN int `json:"topN"`
	// PoolSize bounds the ranked candidate pool considered before selection.
	PoolSize int `json:"poolSize"`
	// UpliftBoost is added to the similarity of uplifting candidates when
	// the detected polarity is negative.
	UpliftBoost float64 `json:"upliftBoost"`
}

// ApplyDefaults populates zero values with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.TopN <= 0 {
		c.TopN = 5
	}
	if c.PoolSize <= 0 {
		c.PoolSize = 30
	}
	if c.UpliftBoost == 0 {
		c.UpliftBoost = 0.2
	}
}

func sanitizeConfig(cfg Config) Config {
	cfg.ApplyDefaults()
	if cfg.PoolSize < cfg.TopN {
		cfg.PoolSize = cfg.TopN
	}
	if cfg.UpliftBoost < 0 {
		cfg.UpliftBoost = 0
	}
	return cfg
}
