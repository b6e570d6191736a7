package recommender

import (
	"math"
	"regexp"
	"strings"
)

// tokenPattern matches the vectorizer's notion of a word: a run of at least
// two word characters. Single-letter tokens carry no signal and are dropped.
var tokenPattern = regexp.MustCompile(`\b\w\w+\b`)

// tokenize lowercases the text and extracts non-stop-word tokens.
func tokenize(text string) []string {
	lowered := strings.ToLower(text)
	raw := tokenPattern.FindAllString(lowered, -1)
	tokens := make([]string, 0, len(raw))
	for _, t := range raw {
		if isStopWord(t) {
			continue
		}
		tokens = append(tokens, t)
	}
	return tokens
}

// tfidfSimilarities computes the cosine similarity between the query text
// and every document. The vector space is built fresh over the pseudo-corpus
// {query} ∪ documents with smooth inverse document frequency
// (ln((1+n)/(1+df))+1) and L2-normalized raw-count term weights, so the
// cosine of two vectors reduces to their dot product.
func tfidfSimilarities(query string, documents []string) []float64 {
	n := len(documents) + 1
	counts := make([]map[string]float64, n)
	counts[0] = termCounts(tokenize(query))
	for i, doc := range documents {
		counts[i+1] = termCounts(tokenize(doc))
	}

	df := make(map[string]int)
	for _, c := range counts {
		for term := range c {
			df[term]++
		}
	}
	idf := make(map[string]float64, len(df))
	for term, freq := range df {
		idf[term] = math.Log(float64(1+n)/float64(1+freq)) + 1
	}

	queryVec := weightedVector(counts[0], idf)
	sims := make([]float64, len(documents))
	for i := range documents {
		sims[i] = dot(queryVec, weightedVector(counts[i+1], idf))
	}
	return sims
}

func termCounts(tokens []string) map[string]float64 {
	counts := make(map[string]float64, len(tokens))
	for _, t := range tokens {
		counts[t]++
	}
	return counts
}

// weightedVector applies idf weights and L2-normalizes in place.
func weightedVector(counts map[string]float64, idf map[string]float64) map[string]float64 {
	vec := make(map[string]float64, len(counts))
	var norm float64
	for term, count := range counts {
		w := count * idf[term]
		vec[term] = w
		norm += w * w
	}
	if norm == 0 {
		return vec
	}
	norm = math.Sqrt(norm)
	for term := range vec {
		vec[term] /= norm
	}
	return vec
}

func dot(a, b map[string]float64) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	var sum float64
	for term, w := range a {
		sum += w * b[term]
	}
	return sum
}
