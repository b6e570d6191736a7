package recommender

import "regexp"

// Fixed lexicons used to bias scoring under negative sentiment. Matches are
// whole-word and case-insensitive so "deathly" does not trip "death".
var (
	darkThemePattern = regexp.MustCompile(`(?i)\b(thriller|horror|murder|death|crime|killer|revenge)\b`)
	upliftPattern    = regexp.MustCompile(`(?i)\b(love|friendship|happy|family|joy|fun|dream|hope|adventure)\b`)
)

// applySentiment adjusts the scored candidate set for the detected polarity.
// Positive and neutral moods pass through unchanged. A negative mood removes
// candidates whose overview matches a dark-theme keyword and boosts the
// similarity of candidates whose overview matches an uplift keyword, steering
// the result away from more sad content than the mood text alone would rank.
func applySentiment(candidates []ScoredMovie, label Sentiment, boost float64) []ScoredMovie {
	if label != SentimentNegative {
		return candidates
	}
	out := make([]ScoredMovie, 0, len(candidates))
	for _, c := range candidates {
		if darkThemePattern.MatchString(c.Overview) {
			continue
		}
		if upliftPattern.MatchString(c.Overview) {
			c.Similarity += boost
		}
		out = append(out, c)
	}
	return out
}
