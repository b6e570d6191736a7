package recommender

import (
	"math/rand"
	"sort"
)

// rankAndSelect sorts candidates by adjusted similarity descending, bounds
// the ranked pool and picks the final result set. The sort is stable so
// zero-score ties keep the catalog's load order and identical inputs produce
// identical output. With shuffle the whole pool is permuted uniformly before
// selection, yielding alternative-but-still-relevant picks without
// re-scoring. Fewer surviving candidates than topN is not an error; all of
// them are returned.
func rankAndSelect(candidates []ScoredMovie, topN, poolSize int, shuffle bool, rng *rand.Rand) []Movie {
	ranked := make([]ScoredMovie, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Similarity > ranked[j].Similarity
	})

	if len(ranked) > poolSize {
		ranked = ranked[:poolSize]
	}
	if shuffle {
		rng.Shuffle(len(ranked), func(i, j int) {
			ranked[i], ranked[j] = ranked[j], ranked[i]
		})
	}
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}

	out := make([]Movie, len(ranked))
	for i, c := range ranked {
		out[i] = c.Movie
	}
	return out
}
