package recommender

// GenreSet holds normalized genre names for exact membership tests.
// Matching is equality on full names, never substrings.
type GenreSet map[string]struct{}

// NewGenreSet builds a set from raw genre names, dropping empties.
func NewGenreSet(names []string) GenreSet {
	set := make(GenreSet, len(names))
	for _, name := range uniqueNormalized(names) {
		set[name] = struct{}{}
	}
	return set
}

// Contains reports whether the exact genre name is in the set.
func (s GenreSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Empty reports whether the set imposes no constraint.
func (s GenreSet) Empty() bool {
	return len(s) == 0
}

// filterByGenres narrows the candidate set. A non-empty include set keeps
// movies with at least one genre in it; a non-empty exclude set drops movies
// with any genre in it. Exclude wins when a genre appears in both sets.
func filterByGenres(candidates []ScoredMovie, include, exclude GenreSet) []ScoredMovie {
	if include.Empty() && exclude.Empty() {
		return candidates
	}
	out := make([]ScoredMovie, 0, len(candidates))
	for _, c := range candidates {
		if !include.Empty() && !hasAnyGenre(c.Genres, include) {
			continue
		}
		if !exclude.Empty() && hasAnyGenre(c.Genres, exclude) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func hasAnyGenre(genres []string, set GenreSet) bool {
	for _, g := range genres {
		if set.Contains(g) {
			return true
		}
	}
	return false
}
