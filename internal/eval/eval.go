// Package eval measures classifier accuracy against a labeled test set,
// producing a classification-report style summary.
package eval

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/sanamulla68/Sentiment-Enhanced-Movie-Recommendation-System/internal/sentiment"
)

// Sample is one labeled test case.
type Sample struct {
	Text  string
	Label sentiment.Label
}

// LoadSamples reads a labeled CSV with text and label columns.
func LoadSamples(path string) ([]Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open test set: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read test set: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("test set %s has no samples", path)
	}

	textCol, labelCol := -1, -1
	for idx, name := range records[0] {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "text":
			textCol = idx
		case "label":
			labelCol = idx
		}
	}
	if textCol < 0 || labelCol < 0 {
		return nil, fmt.Errorf("test set %s is missing text/label columns", path)
	}

	samples := make([]Sample, 0, len(records)-1)
	for _, rec := range records[1:] {
		if textCol >= len(rec) || labelCol >= len(rec) {
			continue
		}
		text := strings.TrimSpace(rec[textCol])
		if text == "" {
			continue
		}
		samples = append(samples, Sample{
			Text:  text,
			Label: sentiment.ParseLabel(rec[labelCol]),
		})
	}
	return samples, nil
}

// Metrics holds per-label precision, recall and F1.
type Metrics struct {
	Precision float64
	Recall    float64
	F1        float64
	Support   int
}

// Report summarizes an evaluation run.
type Report struct {
	Accuracy float64
	PerLabel map[sentiment.Label]Metrics
	Total    int
}

// Evaluate classifies every sample and scores predictions against the truth.
func Evaluate(ctx context.Context, analyzer sentiment.Analyzer, samples []Sample) (Report, error) {
	if len(samples) == 0 {
		return Report{}, fmt.Errorf("no samples to evaluate")
	}

	truePositives := make(map[sentiment.Label]int)
	predicted := make(map[sentiment.Label]int)
	actual := make(map[sentiment.Label]int)
	correct := 0

	for _, s := range samples {
		if err := ctx.Err(); err != nil {
			return Report{}, err
		}
		res, err := analyzer.Classify(ctx, s.Text)
		if err != nil {
			return Report{}, fmt.Errorf("classify %q: %w", s.Text, err)
		}
		predicted[res.Label]++
		actual[s.Label]++
		if res.Label == s.Label {
			truePositives[s.Label]++
			correct++
		}
	}

	report := Report{
		Accuracy: float64(correct) / float64(len(samples)),
		PerLabel: make(map[sentiment.Label]Metrics),
		Total:    len(samples),
	}
	for label := range actual {
		m := Metrics{Support: actual[label]}
		if predicted[label] > 0 {
			m.Precision = float64(truePositives[label]) / float64(predicted[label])
		}
		if actual[label] > 0 {
			m.Recall = float64(truePositives[label]) / float64(actual[label])
		}
		if m.Precision+m.Recall > 0 {
			m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
		}
		report.PerLabel[label] = m
	}
	return report, nil
}

// String renders the report as a fixed-width classification table.
func (r Report) String() string {
	labels := make([]string, 0, len(r.PerLabel))
	for label := range r.PerLabel {
		labels = append(labels, string(label))
	}
	sort.Strings(labels)

	var b strings.Builder
	fmt.Fprintf(&b, "%-10s %9s %9s %9s %9s\n", "", "precision", "recall", "f1-score", "support")
	for _, label := range labels {
		m := r.PerLabel[sentiment.Label(label)]
		fmt.Fprintf(&b, "%-10s %9.4f %9.4f %9.4f %9d\n",
			strings.ToLower(label), m.Precision, m.Recall, m.F1, m.Support)
	}
	fmt.Fprintf(&b, "\naccuracy: %.4f (%d samples)\n", r.Accuracy, r.Total)
	return b.String()
}
