// Package sentiment classifies free text into a coarse polarity label.
// The engine treats it as a black box: only the label feeds the
// recommendation pipeline, the score is informational.
package sentiment

import (
	"context"
	"strings"
	"sync"

	"github.com/jonreiter/govader"
)

// Label is the coarse polarity classification output.
type Label string

const (
	LabelPositive Label = "POSITIVE"
	LabelNegative Label = "NEGATIVE"
	LabelNeutral  Label = "NEUTRAL"
)

// ParseLabel normalizes arbitrary label strings; unknown input maps to
// neutral.
func ParseLabel(s string) Label {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(LabelPositive):
		return LabelPositive
	case string(LabelNegative):
		return LabelNegative
	default:
		return LabelNeutral
	}
}

// Result holds the classification output for a piece of text.
type Result struct {
	Label Label   `json:"label"`
	Score float64 `json:"score"`
}

// Neutral is the degraded result used when the classifier is unavailable.
var Neutral = Result{Label: LabelNeutral, Score: 0}

// Analyzer exposes the minimal surface required by the recommendation layer.
type Analyzer interface {
	Classify(ctx context.Context, text string) (Result, error)
}

// VaderAnalyzer scores text with the VADER lexicon. It needs no model files
// and is the default backend. Safe for concurrent use.
type VaderAnalyzer struct {
	sia *govader.SentimentIntensityAnalyzer
	mu  sync.Mutex
}

// NewVaderAnalyzer constructs the lexicon analyzer.
func NewVaderAnalyzer() *VaderAnalyzer {
	return &VaderAnalyzer{sia: govader.NewSentimentIntensityAnalyzer()}
}

// Classify maps the VADER compound score to a polarity label using the
// conventional ±0.05 neutrality band.
func (a *VaderAnalyzer) Classify(_ context.Context, text string) (Result, error) {
	if strings.TrimSpace(text) == "" {
		return Neutral, nil
	}
	a.mu.Lock()
	scores := a.sia.PolarityScores(text)
	a.mu.Unlock()

	switch {
	case scores.Compound >= 0.05:
		return Result{Label: LabelPositive, Score: scores.Compound}, nil
	case scores.Compound <= -0.05:
		return Result{Label: LabelNegative, Score: -scores.Compound}, nil
	default:
		return Result{Label: LabelNeutral, Score: scores.Neutral}, nil
	}
}
