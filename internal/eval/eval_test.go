package eval

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanamulla68/Sentiment-Enhanced-Movie-Recommendation-System/internal/sentiment"
)

// keywordAnalyzer predicts from a trivial rule so expected metrics are exact.
type keywordAnalyzer struct{}

func (keywordAnalyzer) Classify(_ context.Context, text string) (sentiment.Result, error) {
	switch {
	case strings.Contains(text, "good"):
		return sentiment.Result{Label: sentiment.LabelPositive, Score: 1}, nil
	case strings.Contains(text, "bad"):
		return sentiment.Result{Label: sentiment.LabelNegative, Score: 1}, nil
	default:
		return sentiment.Neutral, nil
	}
}

func TestEvaluate(t *testing.T) {
	samples := []Sample{
		{Text: "good day", Label: sentiment.LabelPositive},
		{Text: "good vibes", Label: sentiment.LabelPositive},
		{Text: "bad day", Label: sentiment.LabelNegative},
		{Text: "bad news", Label: sentiment.LabelPositive}, // misprediction
	}
	report, err := Evaluate(context.Background(), keywordAnalyzer{}, samples)
	require.NoError(t, err)

	assert.InDelta(t, 0.75, report.Accuracy, 1e-9)
	assert.Equal(t, 4, report.Total)

	pos := report.PerLabel[sentiment.LabelPositive]
	assert.InDelta(t, 1.0, pos.Precision, 1e-9)
	assert.InDelta(t, 2.0/3.0, pos.Recall, 1e-9)
	assert.Equal(t, 3, pos.Support)

	neg := report.PerLabel[sentiment.LabelNegative]
	assert.InDelta(t, 0.5, neg.Precision, 1e-9)
	assert.InDelta(t, 1.0, neg.Recall, 1e-9)
	assert.Equal(t, 1, neg.Support)
}

func TestEvaluateEmpty(t *testing.T) {
	_, err := Evaluate(context.Background(), keywordAnalyzer{}, nil)
	assert.Error(t, err)
}

func TestReportString(t *testing.T) {
	report, err := Evaluate(context.Background(), keywordAnalyzer{}, []Sample{
		{Text: "good", Label: sentiment.LabelPositive},
	})
	require.NoError(t, err)
	out := report.String()
	assert.Contains(t, out, "positive")
	assert.Contains(t, out, "accuracy: 1.0000")
}

func TestLoadSamples(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.csv")
	data := "text,label\n" +
		"I loved it,positive\n" +
		"I hated it,negative\n" +
		",positive\n" +
		"meh,unknown\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	samples, err := LoadSamples(path)
	require.NoError(t, err)
	require.Len(t, samples, 3)
	assert.Equal(t, sentiment.LabelPositive, samples[0].Label)
	assert.Equal(t, sentiment.LabelNegative, samples[1].Label)
	// Unknown labels normalize to neutral.
	assert.Equal(t, sentiment.LabelNeutral, samples[2].Label)
}

func TestLoadSamplesMissingColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b\n1,2\n"), 0o644))
	_, err := LoadSamples(path)
	assert.Error(t, err)
}
